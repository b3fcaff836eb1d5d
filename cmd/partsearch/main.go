package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/partsearch/internal/config"
	"github.com/kailas-cloud/partsearch/internal/db"
	dbRedis "github.com/kailas-cloud/partsearch/internal/db/redis"
	domdict "github.com/kailas-cloud/partsearch/internal/domain/dictionary"
	logpkg "github.com/kailas-cloud/partsearch/internal/logger"
	"github.com/kailas-cloud/partsearch/internal/metrics"
	catalogrepo "github.com/kailas-cloud/partsearch/internal/repository/catalog"
	dictrepo "github.com/kailas-cloud/partsearch/internal/repository/dictionary"
	"github.com/kailas-cloud/partsearch/internal/repository/querycache"
	chiTransport "github.com/kailas-cloud/partsearch/internal/transport/chi"
	catalogsvc "github.com/kailas-cloud/partsearch/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/partsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/partsearch/internal/usecase/search"
	"github.com/kailas-cloud/partsearch/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, logpkg.Options{
		Level:      cfg.Logging.Level,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting partsearch API server",
		zap.String("version", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_source", cfg.Catalog.Source),
	)

	metrics.RegisterSearchMetrics()

	ctx := context.Background()

	// KV store is only needed for the kv catalog source.
	var store db.Store
	if cfg.Catalog.Source == config.SourceKV {
		store = connectStore(ctx, cfg, logger)
		defer store.Close()
	}

	dict := domdict.Default()
	if cfg.Dictionary.Path != "" {
		dict, err = dictrepo.LoadFile(cfg.Dictionary.Path)
		if err != nil {
			logger.Fatal("Failed to load dictionary", zap.Error(err))
		}
	}
	corrections, synonyms := dict.Len()
	logger.Info("Dictionary loaded",
		zap.String("path", cfg.Dictionary.Path),
		zap.Int("corrections", corrections),
		zap.Int("synonyms", synonyms),
	)

	var loader catalogsvc.Loader
	switch cfg.Catalog.Source {
	case config.SourceKV:
		loader = catalogrepo.NewKVLoader(store, cfg.Catalog.Key)
	default:
		loader = catalogrepo.NewFileLoader(cfg.Catalog.Path)
	}

	// Create use case services
	var (
		cache        *querycache.Cache
		invalidators []catalogsvc.Invalidator
	)
	if cfg.CacheEnabled() {
		cache = querycache.New(
			time.Duration(cfg.Cache.TTLSec)*time.Second,
			time.Duration(cfg.Cache.CleanupSec)*time.Second,
		)
		invalidators = append(invalidators, cache)
	}

	catalogSvc := catalogsvc.New(loader, invalidators...)
	reloadCtx := logpkg.ContextWithLogger(ctx, logger)
	if _, err := catalogSvc.Reload(logpkg.WithFields(reloadCtx, zap.String("trigger", "startup"))); err != nil {
		// Degraded start: searches return nothing until a reload succeeds.
		logger.Error("Initial catalog load failed, starting with an empty catalog", zap.Error(err))
	}

	searchSvc := searchuc.New(catalogSvc, searchuc.NewEngine(dict))
	if cache != nil {
		searchSvc.WithCache(cache)
	}

	// Pass nil interface (not typed nil pointer) when there is no store.
	var pinger healthuc.StorePinger
	if store != nil {
		pinger = store
	}
	healthSvc := healthuc.New(catalogSvc, pinger)

	// Create chi server
	server := chiTransport.NewServer(searchSvc, catalogSvc, healthSvc, logger).
		WithMinQueryLength(cfg.Search.MinQueryLength).
		WithStaticDir(cfg.Static.Dir)

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

	// SIGHUP reloads the catalog in place
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		for range hup {
			logger.Info("Received SIGHUP, reloading catalog")
			_, _ = catalogSvc.Reload(logpkg.WithFields(reloadCtx, zap.String("trigger", "sighup")))
		}
	}()

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
	signal.Stop(hup)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// connectStore creates the Valkey/Redis client. An unreachable store is not
// fatal: the service starts degraded and health reports the store check.
func connectStore(ctx context.Context, cfg config.Config, logger *zap.Logger) db.Store {
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}

	timeout := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
	if err := store.WaitForReady(ctx, timeout); err != nil {
		logger.Warn("Database not ready", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	} else {
		logger.Info("Connected to database",
			zap.String("driver", cfg.Database.Driver),
			zap.Strings("addrs", cfg.Database.Addrs),
		)
	}
	return store
}
