package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/bruins-live-service/internal/app/today"
	"github.com/preston-bernstein/bruins-live-service/internal/config"
	httpserver "github.com/preston-bernstein/bruins-live-service/internal/http"
	"github.com/preston-bernstein/bruins-live-service/internal/http/handlers"
	"github.com/preston-bernstein/bruins-live-service/internal/logging"
	"github.com/preston-bernstein/bruins-live-service/internal/metrics"
	"github.com/preston-bernstein/bruins-live-service/internal/poller"
	"github.com/preston-bernstein/bruins-live-service/internal/providers"
	"github.com/preston-bernstein/bruins-live-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         store.Backend
	todayService  *today.Service
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
	closers       []func() error
}

// New constructs a server with the configured store, provider and poll loop.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, nil)
	provider := newProviderFactory(logger, recorder).build(cfg)
	srv, err := newServerWithProvider(ctx, cfg, logger, provider, recorder)
	if err != nil {
		if metricsShutdown != nil {
			_ = metricsShutdown(context.Background())
		}
		return nil, err
	}
	srv.metricsServer = metricsSrv
	srv.metricsStop = metricsShutdown
	return srv, nil
}

func newServerWithProvider(ctx context.Context, cfg config.Config, logger *slog.Logger, provider providers.ScheduleProvider, recorder *metrics.Recorder) (*Server, error) {
	backend, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	closers := []func() error{backend.Close}

	orch, notifierClose, err := buildOrchestrator(ctx, cfg, logger, provider, backend, recorder)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}
	if notifierClose != nil {
		closers = append(closers, notifierClose)
	}

	plr, err := poller.New(orch, poller.Config{Schedule: cfg.PollSchedule, RunOnStart: cfg.PollOnStart}, logger, recorder)
	if err != nil {
		closeAll(closers, logger)
		return nil, err
	}

	svc := today.NewService(backend)
	httpSrv := buildHTTPServer(cfg, svc, logger, recorder, plr)

	return &Server{
		cfg:          cfg,
		logger:       logger,
		metrics:      recorder,
		store:        backend,
		todayService: svc,
		httpServer:   httpSrv,
		poller:       plr,
		closers:      closers,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, svc *today.Service, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:          cfg,
		logger:       logger,
		todayService: svc,
		httpServer:   httpSrv,
		poller:       plr,
	}
}

func buildOrchestrator(ctx context.Context, cfg config.Config, logger *slog.Logger, provider providers.ScheduleProvider, backend store.Store, recorder *metrics.Recorder) (*poller.Orchestrator, func() error, error) {
	opts := []poller.Option{
		poller.WithLogger(logger),
		poller.WithRecorder(recorder),
		poller.WithTeam(cfg.NHL.TeamAbbrev),
	}
	notifier, closeFn, err := buildNotifier(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if notifier != nil {
		opts = append(opts, poller.WithNotifier(notifier))
		logging.Info(logger, "publishing updates", "stream", notifier.Stream())
	}
	return poller.NewOrchestrator(provider, backend, opts...), closeFn, nil
}

func buildHTTPServer(cfg config.Config, svc *today.Service, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	var statusFn func() poller.Status
	var runner handlers.PollRunner
	if plr != nil {
		statusFn = plr.Status
		runner = plr
	}

	var admin *handlers.AdminHandler
	if cfg.AdminEnabled() {
		admin = handlers.NewAdminHandler(svc, runner, logger)
	}
	router := httpserver.NewRouter(httpserver.RouterConfig{
		Handler:     handlers.NewHandler(svc, logger, statusFn),
		Admin:       admin,
		AdminToken:  cfg.AdminToken,
		CORSOrigins: cfg.CORSOrigins,
		Logger:      logger,
		Metrics:     recorder,
	})
	return newNetHTTPServer(":"+cfg.Port, router)
}

// Run starts the poll loop and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) error {
	s.startMetrics()
	s.startServer(stop)
	if err := s.poller.Start(ctx); err != nil {
		s.gracefulShutdown()
		return fmt.Errorf("start poller: %w", err)
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
	return nil
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
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
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	closeAll(s.closers, s.logger)
	logging.Info(s.logger, "shutdown complete")
}

func closeAll(closers []func() error, logger *slog.Logger) {
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i](); err != nil {
			logging.Warn(logger, "close failed", "error", err)
		}
	}
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
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              cfg.Metrics.Addr(),
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
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

// Poller exposes the poll loop (used by the one-shot CLI path and tests).
func (s *Server) Poller() Poller {
	return s.poller
}
