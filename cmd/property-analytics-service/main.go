package main

import (
	"fmt"
	"os"
	"time"

	"property-analytics-service/internal/auth"
	"property-analytics-service/internal/cache"
	"property-analytics-service/internal/config"
	"property-analytics-service/internal/db"
	httphandler "property-analytics-service/internal/http"
	"property-analytics-service/internal/http/middleware"
	"property-analytics-service/internal/logger"
	"property-analytics-service/internal/repository"
	"property-analytics-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	var overviewCache service.OverviewCache
	if cfg.Cache.RedisAddr != "" {
		ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
		overviewCache = cache.New(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, ttl, appLogger)
		appLogger.Info().Str("addr", cfg.Cache.RedisAddr).Msg("overview cache enabled")
	}

	scopeRepo := repository.NewScopeRepository(database)
	analyticsRepo := repository.NewAnalyticsRepository(database)
	analyticsService := service.NewAnalyticsService(scopeRepo, analyticsRepo, overviewCache, cfg.Analytics.MaxRangeDays)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	handler := httphandler.NewHandler(analyticsService, appLogger)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting property analytics service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
