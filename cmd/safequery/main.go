package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/safequery/safequery/internal/config"
	"github.com/safequery/safequery/internal/corpus"
	logpkg "github.com/safequery/safequery/internal/logger"
	"github.com/safequery/safequery/internal/metrics"
	"github.com/safequery/safequery/internal/privacy"
	feedbackrepo "github.com/safequery/safequery/internal/repository/feedback"
	chiTransport "github.com/safequery/safequery/internal/transport/chi"
	feedbackuc "github.com/safequery/safequery/internal/usecase/feedback"
	healthuc "github.com/safequery/safequery/internal/usecase/health"
	searchuc "github.com/safequery/safequery/internal/usecase/search"
	statsuc "github.com/safequery/safequery/internal/usecase/stats"
	suggestuc "github.com/safequery/safequery/internal/usecase/suggest"
	"github.com/safequery/safequery/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting SafeQuery API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
	)

	// Load the static datasets — immutable for the process lifetime.
	docs, err := corpus.LoadCorpus(cfg.Data.CorpusPath)
	if err != nil {
		logger.Fatal("Failed to load corpus", zap.Error(err))
	}
	catalog, err := corpus.LoadCatalog(cfg.Data.CatalogPath)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}
	logger.Info("Datasets loaded",
		zap.Int("corpus_documents", len(docs)),
		zap.Int("catalog_questions", len(catalog)),
	)

	// Register search metrics explicitly (no init())
	metrics.RegisterCoreMetrics()

	// Anonymized query log with a fresh per-process key.
	queryLog, err := privacy.NewQueryLog(cfg.Privacy.QueryLogPath, logger)
	if err != nil {
		logger.Fatal("Failed to create query log", zap.Error(err))
	}

	feedbackStore := feedbackrepo.NewFileStore(cfg.Privacy.FeedbackLogPath)

	// Create use case services
	searchSvc := searchuc.New(docs)
	suggestSvc := suggestuc.New(catalog)
	feedbackSvc := feedbackuc.New(feedbackStore)
	statsSvc := statsuc.New(len(docs), len(catalog))
	healthSvc := healthuc.New(len(docs), len(catalog), feedbackStore)

	// Create chi server
	server := chiTransport.NewServer(
		searchSvc, suggestSvc, feedbackSvc, statsSvc, healthSvc, queryLog, logger,
	)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id. The query itself is never
			// logged; only the anonymized query log sees it.
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
