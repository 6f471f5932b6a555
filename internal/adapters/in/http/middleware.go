package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"loadboard/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RequestObserver receives one call per finished request.
type RequestObserver interface {
	ObserveHTTPRequest(method, path string, status int, took time.Duration)
}

// RequestValidator rejects requests that do not match the OpenAPI document
// with 400. Paths the document does not describe pass through untouched.
func RequestValidator(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacyrouter.NewRouter(swagger)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		MultiError: false,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: validationMessage(err),
				})
			}

			return next(ctx)
		}
	}, nil
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		// The first line names the parameter or body and the failed rule;
		// the rest repeats the schema.
		msg, _, _ := strings.Cut(reqErr.Error(), "\n")
		return msg
	}
	return err.Error()
}

// Metrics records method, route template, status and latency of every request.
func Metrics(observer RequestObserver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			status := ctx.Response().Status
			if err != nil {
				var httpErr *echo.HTTPError
				if errors.As(err, &httpErr) {
					status = httpErr.Code
				} else if status < http.StatusBadRequest {
					status = http.StatusInternalServerError
				}
			}

			path := ctx.Path()
			if path == "" {
				path = "unmatched"
			}
			observer.ObserveHTTPRequest(ctx.Request().Method, path, status, time.Since(start))
			return err
		}
	}
}

// RequestLogger logs one line per request through slog.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			logger.LogAttrs(ctx.Request().Context(), level, "Request handled", attrs...)
			return nil
		},
	})
}
