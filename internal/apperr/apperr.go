// Package apperr defines the error kinds handlers surface to the HTTP layer.
package apperr

import "fmt"

type Kind int

const (
	KindDatabase Kind = iota
	KindNotFound
	KindValidation
	KindTemplate
)

func (k Kind) String() string {
	switch k {
	case KindDatabase:
		return "database error"
	case KindNotFound:
		return "not found"
	case KindValidation:
		return "validation error"
	case KindTemplate:
		return "template error"
	}
	return "unknown error"
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Database(message string) *Error {
	return &Error{Kind: KindDatabase, Message: message}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Template(name string, err error) *Error {
	return &Error{Kind: KindTemplate, Message: "failed to render " + name, Err: err}
}
