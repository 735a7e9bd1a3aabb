package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bengobox/clock-service/internal/config"
	"github.com/bengobox/clock-service/internal/httpapi"
	"github.com/bengobox/clock-service/internal/httpapi/handlers"
	httpmiddleware "github.com/bengobox/clock-service/internal/httpapi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App wires core dependencies and exposes server lifecycle controls.
type App struct {
	cfg        *config.Config
	logger     *zap.Logger
	httpServer *http.Server
}

// New constructs the application. clock may be nil to use the system clock.
func New(cfg *config.Config, logger *zap.Logger, clock handlers.Clock) *App {
	deps := httpapi.RouterDeps{
		HealthHandler:  handlers.Health,
		DateHandler:    handlers.Date(clock),
		EnableDocs:     cfg.HTTP.EnableDocs,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RequestTimeout: cfg.HTTP.RequestTimeout,
		AccessLog:      httpmiddleware.NewAccessLog(logger).Handler,
	}

	if cfg.HTTP.EnableMetrics {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		deps.Instrument = httpmiddleware.NewMetrics(registry).Instrument
		deps.MetricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
	}

	server := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           httpapi.NewRouter(deps),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		httpServer: server,
	}
}

// Handler exposes the routed handler, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.httpServer.Handler
}

// Run starts the HTTP server and blocks until it stops. A server closed by
// Shutdown returns nil.
func (a *App) Run() error {
	a.logger.Info("starting HTTP server",
		zap.String("addr", a.httpServer.Addr),
		zap.Bool("metrics", a.cfg.HTTP.EnableMetrics),
		zap.Bool("docs", a.cfg.HTTP.EnableDocs),
	)
	if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (a *App) Shutdown(ctx context.Context) error {
	start := time.Now()
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Warn("http server shutdown incomplete", zap.Error(err))
		return err
	}
	a.logger.Info("http server stopped", zap.Duration("took", time.Since(start)))
	return nil
}
