package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	config "github.com/avatarctic/catalog-edge/configs"
	"github.com/avatarctic/catalog-edge/internal/application/services"
	"github.com/avatarctic/catalog-edge/internal/core/ports"
	"github.com/avatarctic/catalog-edge/internal/infrastructure/catalogapi"
	"github.com/avatarctic/catalog-edge/internal/infrastructure/health"
	"github.com/avatarctic/catalog-edge/internal/infrastructure/httpserver"
	"github.com/avatarctic/catalog-edge/internal/infrastructure/jobs"
	"github.com/avatarctic/catalog-edge/internal/infrastructure/memcache"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting catalog edge cache...")

	ttl := services.TTLPolicy{
		Trending:        cfg.Cache.TrendingTTL,
		Videos:          cfg.Cache.VideosTTL,
		Video:           cfg.Cache.VideoTTL,
		Recommendations: cfg.Cache.RecommendationsTTL,
		Categories:      cfg.Cache.CategoriesTTL,
	}
	if err := ttl.Validate(); err != nil {
		logger.Fatal("Invalid cache TTL policy: ", err)
	}

	store := memcache.NewStore(cfg.Cache.Capacity, cfg.Cache.DefaultTTL, memcache.WithObserver(memcache.PrometheusObserver{}))

	backend := catalogapi.NewClient(catalogapi.Config{
		BaseURL:      cfg.Backend.URL,
		ServiceToken: cfg.Backend.ServiceToken,
		Timeout:      cfg.Backend.Timeout,
		Breaker: catalogapi.BreakerSettings{
			MaxRequests:      cfg.Backend.BreakerMaxRequests,
			Interval:         cfg.Backend.BreakerInterval,
			Timeout:          cfg.Backend.BreakerTimeout,
			FailureThreshold: cfg.Backend.BreakerFailureThreshold,
			MinRequests:      cfg.Backend.BreakerMinRequests,
		},
	}, logger)

	// Wire the cache facade over the backend client
	videoService := services.NewVideoService(backend, store, ttl, logger)
	categoryService := services.NewCategoryService(backend, store, ttl, logger)
	warmupService := services.NewWarmupService(videoService, categoryService, logger)
	tokenService := services.NewTokenService(cfg.JWT.Secret, logger)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	sweeper := memcache.NewSweeper(store, cfg.Cache.SweepInterval, logger)
	sweeper.Start(ctx)
	warmer := jobs.NewPeriodic("cache-warm", cfg.Cache.WarmInterval, func(ctx context.Context) {
		warmupService.Warm(ctx)
	}, logger)
	warmer.Start(ctx)

	if cfg.Cache.PreloadOnBoot {
		go func() {
			preloadCtx, cancel := context.WithTimeout(ctx, cfg.Backend.Timeout)
			defer cancel()
			warmupService.Preload(preloadCtx)
		}()
	}

	hcSlice := []ports.HealthChecker{health.NewBackendHealthChecker(backend), health.NewCacheHealthChecker(store)}

	// Create server configuration
	serverConfig := &httpserver.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		TLSCertFile:    cfg.Server.TLSCertFile,
		TLSKeyFile:     cfg.Server.TLSKeyFile,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Environment:    cfg.Server.Environment,
		LikeRateLimit:  cfg.Server.LikeRateLimit,
	}

	deps := httpserver.ServerDeps{
		VideoService:    videoService,
		CategoryService: categoryService,
		WarmupService:   warmupService,
		Cache:           store,
		TokenVerifier:   tokenService,
		HealthCheckers:  hcSlice,
	}

	server := httpserver.NewServer(serverConfig, logger, deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.WithFields(logrus.Fields{
		"capacity": store.Capacity(),
		"backend":  cfg.Backend.URL,
	}).Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	warmer.Stop()
	sweeper.Stop()
	stop()

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
