package http

import (
	"log/slog"
	"net/http"

	"loadboard/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig carries the ambient dependencies of the HTTP surface.
type RouterConfig struct {
	Logger *slog.Logger
	// Observer receives request metrics. Nil disables them.
	Observer RequestObserver
	// Gatherer is exposed on /metrics. Nil leaves the route out.
	Gatherer prometheus.Gatherer
}

// NewRouter builds the echo instance serving the API, its OpenAPI document,
// Swagger UI, /metrics and /health.
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	validator, err := RequestValidator(swagger)
	if err != nil {
		return nil, err
	}

	if err := registerSwaggerDoc(swagger); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))
	if cfg.Observer != nil {
		e.Use(Metrics(cfg.Observer))
	}
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, swagger)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if cfg.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	servers.RegisterHandlers(e, server)

	return e, nil
}
