package handler

import (
	"errors"
	"net/http"

	"github.com/abdusco/scanlink/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindDatabase, apperr.KindTemplate:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// ErrorHandler turns handler errors into JSON error responses. Set as
// the echo instance's HTTPErrorHandler.
func ErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := "internal server error"

	var appErr *apperr.Error
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		code = statusFor(appErr.Kind)
		message = appErr.Message
	case errors.As(err, &httpErr):
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	evt := log.Warn()
	if code >= http.StatusInternalServerError {
		evt = log.Error()
	}
	evt.
		Int("code", code).
		Str("method", c.Request().Method).
		Str("path", c.Request().URL.Path).
		Err(err).
		Msg("http error")

	if c.Response().Committed {
		return
	}

	if err := c.JSON(code, map[string]any{"error": message}); err != nil {
		log.Error().Err(err).Msg("failed to write error response")
	}
}
