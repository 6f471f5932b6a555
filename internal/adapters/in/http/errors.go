package http

import (
	"errors"
	"fmt"
	"net/http"

	"loadboard/internal/generated/servers"
	"loadboard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps an application error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrBusinessRuleViolation),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Internal errors are logged and their
// details withheld from the client.
func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = "Internal server error"
	}

	return ctx.JSON(status, servers.Error{
		Code:    int32(status),
		Message: message,
	})
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

// ErrorHandler renders errors that escape the handlers, such as parameter
// binding failures and unknown routes, in the same Error shape.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(code)
		return
	}
	_ = ctx.JSON(code, servers.Error{Code: int32(code), Message: message})
}
