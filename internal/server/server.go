package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"league-office-service/internal/app/market"
	"league-office-service/internal/app/seasons"
	"league-office-service/internal/app/trades"
	"league-office-service/internal/config"
	httpserver "league-office-service/internal/http"
	"league-office-service/internal/http/handlers"
	"league-office-service/internal/http/middleware"
	"league-office-service/internal/metrics"
	"league-office-service/internal/rng"
	"league-office-service/internal/store"
)

var metricsSetup = metrics.Setup

// Server owns the HTTP listener, the metrics listener, and the app services.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	seasonSvc     *seasons.Service
	marketSvc     *market.Service
	tradeSvc      *trades.Service
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	closeStore    func() error
}

// New constructs a server with default store and service wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithStore(cfg, logger, nil, nil)
}

func newServerWithStore(cfg config.Config, logger *slog.Logger, gameStore store.GameStore, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	closeStore := func() error { return nil }
	if gameStore == nil {
		gameStore, closeStore = buildStore(cfg, logger)
	}

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	random := rng.NewLocked(seed)

	seasonSvc := seasons.NewService(gameStore, logger, recorder, random)
	marketSvc := market.NewService(logger, recorder, random)
	tradeSvc := trades.NewService(logger, recorder)

	handler := handlers.NewHandler(seasonSvc, marketSvc, tradeSvc, logger)
	router := httpserver.NewRouter(handler)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		seasonSvc:     seasonSvc,
		marketSvc:     marketSvc,
		tradeSvc:      tradeSvc,
		httpServer:    stdHTTPServer{inner: srv},
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		closeStore:    closeStore,
	}
}

// buildStore picks Postgres when configured, falling back to memory.
func buildStore(cfg config.Config, logger *slog.Logger) (store.GameStore, func() error) {
	if !cfg.Database.Enabled {
		return store.NewMemoryStore(), func() error { return nil }
	}

	pg, err := store.NewPostgresStore(cfg.Database.URL)
	if err != nil {
		if logger != nil {
			logger.Warn("database unavailable, using in-memory store", "error", err)
		}
		return store.NewMemoryStore(), func() error { return nil }
	}
	if err := pg.Migrate(context.Background()); err != nil {
		if logger != nil {
			logger.Warn("database migration failed, using in-memory store", "error", err)
		}
		return store.NewMemoryStore(), func() error { return nil }
	}
	return pg, pg.Close
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = stdHTTPServer{
			inner: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

// Run starts the listeners, then waits for context cancellation to shut down
// gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.closeStore != nil {
		if err := s.closeStore(); err != nil && s.logger != nil {
			s.logger.Warn("store close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
