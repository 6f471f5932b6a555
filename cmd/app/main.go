package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loadboard/cmd"

	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 15 * time.Second

func main() {
	config, err := cmd.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, logCloser, err := cmd.NewLogger(config)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logCloser.Close()
	slog.SetDefault(logger)

	app, err := cmd.NewCompositionRoot(config, logger)
	if err != nil {
		log.Fatalf("Error creating application: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("Failed to release resources", "error", err)
		}
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := startWebServer(ctx, app, config.HTTPPort, logger); err != nil {
		logger.Error("Web server stopped with error", "error", err)
	}
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e, err := app.CreateRouter()
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Web server started", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
