package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"AstroPulse/pkg/config"
	xhttp "AstroPulse/pkg/http"
	applogger "AstroPulse/pkg/logger"
)

// App encapsulates the application lifecycle: one HTTP server and its
// registered handlers.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	handlers   []xhttp.Handler
	httpServer *xhttp.Server
}

// New creates the App with all handlers already constructed.
func New(cfg *config.Config, logger *applogger.Logger, handlers []xhttp.Handler) *App {
	return &App{cfg: cfg, logger: logger, handlers: handlers}
}

// Run starts the HTTP server and blocks until interrupted.
func (a *App) Run() error {
	opts := []xhttp.ServerOption{
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	}
	if !a.cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetricsPath(""))
	} else if a.cfg.Metrics.Path != "" {
		opts = append(opts, xhttp.WithMetricsPath(a.cfg.Metrics.Path))
	}

	a.httpServer = xhttp.NewServer(a.handlers, opts...)

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("server started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("environment", a.cfg.Environment))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.logger.Error("http server stop error", applogger.Error(err))
		return err
	}
	a.logger.Info("shutdown complete")
	return nil
}
