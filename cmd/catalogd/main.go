package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/nearmart/catalogd/internal/config"
	"github.com/nearmart/catalogd/internal/db"
	dbMemory "github.com/nearmart/catalogd/internal/db/memory"
	dbRedis "github.com/nearmart/catalogd/internal/db/redis"
	"github.com/nearmart/catalogd/internal/domain/geo"
	logpkg "github.com/nearmart/catalogd/internal/logger"
	"github.com/nearmart/catalogd/internal/metrics"
	catalogrepo "github.com/nearmart/catalogd/internal/repository/catalog"
	chiTransport "github.com/nearmart/catalogd/internal/transport/chi"
	cataloguc "github.com/nearmart/catalogd/internal/usecase/catalog"
	healthuc "github.com/nearmart/catalogd/internal/usecase/health"
	searchuc "github.com/nearmart/catalogd/internal/usecase/search"
	"github.com/nearmart/catalogd/internal/version"
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

	logger.Info("Starting catalogd API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	// Create catalog store based on driver
	var store db.Store
	switch cfg.Database.Driver {
	case "memory":
		store, err = dbMemory.NewStore(dbMemory.Config{
			DatasetPath: cfg.Catalog.DatasetPath,
		})
	case "redis", "valkey":
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Username: cfg.Database.Username,
			Password: cfg.Database.Password,
			DB:       cfg.Database.DB,
		})
	default:
		logger.Fatal("Unknown database driver", zap.String("driver", cfg.Database.Driver))
	}
	if err != nil {
		logger.Fatal("Failed to create catalog store", zap.Error(err))
	}
	defer store.Close()

	// Wait for store to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Catalog store not ready", zap.Error(err))
	}
	logger.Info("Connected to catalog store")

	if cfg.Catalog.SeedOnStart {
		if err := seedIfEmpty(ctx, store, cfg.Catalog.DatasetPath, logger); err != nil {
			logger.Fatal("Failed to seed catalog store", zap.Error(err))
		}
	}

	// Register query metrics explicitly (no init())
	metrics.RegisterQueryMetrics()

	// Load the immutable catalog once at startup
	repo, err := catalogrepo.Load(ctx, store, logger)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}

	listings := 0
	for _, v := range repo.Vendors() {
		listings += len(v.Listings())
	}
	metrics.CatalogEntities.WithLabelValues("products").Set(float64(len(repo.Products())))
	metrics.CatalogEntities.WithLabelValues("vendors").Set(float64(len(repo.Vendors())))
	metrics.CatalogEntities.WithLabelValues("listings").Set(float64(listings))

	// Create use case services
	searchSvc := searchuc.New(repo)
	catalogSvc := cataloguc.New(repo)
	healthSvc := healthuc.New(store, repo)

	// Create chi server; requests without lat/lng rank from the configured origin
	defaultOrigin := geo.Point{Lat: cfg.Catalog.OriginLat, Lon: cfg.Catalog.OriginLng}
	server := chiTransport.NewServer(searchSvc, catalogSvc, healthSvc, defaultOrigin, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

// seedIfEmpty writes the dataset into the store when no catalog is present.
// The memory store always has a catalog, so this only affects redis/valkey.
func seedIfEmpty(ctx context.Context, store db.Store, datasetPath string, logger *zap.Logger) error {
	seeder, ok := store.(db.Seeder)
	if !ok {
		return nil
	}

	_, err := store.LoadCatalog(ctx)
	switch {
	case err == nil:
		logger.Info("Catalog already seeded")
		return nil
	case !errors.Is(err, db.ErrCatalogNotFound):
		return fmt.Errorf("check existing catalog: %w", err)
	}

	src, err := dbMemory.NewStore(dbMemory.Config{DatasetPath: datasetPath})
	if err != nil {
		return fmt.Errorf("open seed dataset: %w", err)
	}
	catalog, err := src.LoadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("read seed dataset: %w", err)
	}
	if err := seeder.SeedCatalog(ctx, catalog); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	logger.Info("Seeded catalog store",
		zap.Int("products", len(catalog.Products)),
		zap.Int("vendors", len(catalog.Vendors)),
	)
	return nil
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

			// Per-request logger with request_id
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
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
