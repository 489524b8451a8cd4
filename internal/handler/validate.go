package handler

import (
	"errors"
	"reflect"
	"strings"

	"github.com/abdusco/scanlink/internal/apperr"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// Validator adapts go-playground/validator to echo's Validator interface.
// Failures come back as validation errors naming the offending fields by
// their JSON names.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := lo.Map(fieldErrs, func(fe validator.FieldError, _ int) string {
			return fe.Field()
		})
		return apperr.Validation("missing or invalid field(s): %s", strings.Join(fields, ", "))
	}
	return apperr.Validation("invalid request: %v", err)
}
