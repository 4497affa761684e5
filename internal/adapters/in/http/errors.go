package http

import (
	"errors"
	"net/http"

	"loanaudit/internal/generated/servers"
	"loanaudit/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps an error from the core to an HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrVersionConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error response for err. Internal errors are logged and
// their text is not sent to the client.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusOf(err)

	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return writeError(ctx, code, http.StatusText(code), nil)
	}

	var fields []string
	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		fields = validationErr.Fields
	}

	return writeError(ctx, code, err.Error(), fields)
}

func writeError(ctx echo.Context, code int, message string, fields []string) error {
	body := servers.Error{Code: code, Message: message}
	if len(fields) > 0 {
		body.Fields = &fields
	}
	return ctx.JSON(code, body)
}
