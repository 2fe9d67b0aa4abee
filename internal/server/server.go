package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/worldcup-dashboard/internal/analysis"
	appchat "github.com/preston-bernstein/worldcup-dashboard/internal/app/chat"
	"github.com/preston-bernstein/worldcup-dashboard/internal/chatbot"
	"github.com/preston-bernstein/worldcup-dashboard/internal/config"
	"github.com/preston-bernstein/worldcup-dashboard/internal/dataset"
	httpserver "github.com/preston-bernstein/worldcup-dashboard/internal/http"
	"github.com/preston-bernstein/worldcup-dashboard/internal/http/handlers"
	"github.com/preston-bernstein/worldcup-dashboard/internal/logging"
	"github.com/preston-bernstein/worldcup-dashboard/internal/metrics"
	"github.com/preston-bernstein/worldcup-dashboard/internal/sources"
	"github.com/preston-bernstein/worldcup-dashboard/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg             config.Config
	logger          *slog.Logger
	metrics         *metrics.Recorder
	state           dataset.State
	analysisService *analysis.Service
	chatService     *appchat.Service
	httpServer      httpServer
	metricsServer   httpServer
	metricsStop     func(context.Context) error
}

// New loads the dataset once and wires the dashboard. A failed load does not
// fail construction; the server starts in the halted state.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithSource(cfg config.Config, logger *slog.Logger, src sources.MatchSource) *Server {
	return newServerWithMetrics(cfg, logger, src, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, src sources.MatchSource, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if src == nil {
		src = buildSource(cfg.Dataset, logger)
	}
	state := dataset.NewLoader(src, logger, recorder).Load(context.Background())
	if !state.Ready() {
		logging.Warn(logger, "dashboard halted", "reason", dataset.HaltedMessage)
	}

	analysisSvc, chatSvc := buildServices(cfg, state, logger, recorder)
	httpSrv := buildHTTPServer(cfg, state, analysisSvc, chatSvc, logger, recorder)

	return &Server{
		cfg:             cfg,
		logger:          logger,
		metrics:         recorder,
		state:           state,
		analysisService: analysisSvc,
		chatService:     chatSvc,
		httpServer:      httpSrv,
		metricsServer:   metricsSrv,
		metricsStop:     metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildServices(cfg config.Config, state dataset.State, logger *slog.Logger, recorder *metrics.Recorder) (*analysis.Service, *appchat.Service) {
	bot := chatbot.New(loadCorpus(cfg.ChatCorpus, logger))
	return analysis.NewService(state.Dataset, logger, recorder),
		appchat.NewService(store.NewSessionStore(), bot, logger, recorder)
}

// loadCorpus falls back to the built-in corpus when the configured file is unusable.
func loadCorpus(path string, logger *slog.Logger) chatbot.Corpus {
	if path == "" {
		return chatbot.DefaultCorpus()
	}
	corpus, err := chatbot.LoadCorpus(path)
	if err != nil {
		logging.Warn(logger, "chatbot corpus unavailable, using built-in corpus", logging.FieldFile, path, "error", err)
		return chatbot.DefaultCorpus()
	}
	logging.Info(logger, "chatbot corpus loaded", logging.FieldFile, path, logging.FieldCount, len(corpus.Entries))
	return corpus
}

func buildHTTPServer(cfg config.Config, state dataset.State, analysisSvc *analysis.Service, chatSvc *appchat.Service, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	handler := handlers.NewHandler(handlers.Deps{
		State:         state,
		Analysis:      analysisSvc,
		Chat:          chatSvc,
		Logger:        logger,
		SessionCookie: cfg.SessionCookie,
		PreviewRows:   cfg.Dataset.PreviewRows,
	})
	router := httpserver.NewRouter(handler, logger, recorder)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
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

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
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
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
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

// Ready reports whether the dataset loaded.
func (s *Server) Ready() bool {
	return s.state.Ready()
}
