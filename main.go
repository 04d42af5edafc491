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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"floorplan-web/internal/cache"
	"floorplan-web/internal/config"
	"floorplan-web/internal/controllers"
	"floorplan-web/internal/logging"
	"floorplan-web/internal/middleware"
	"floorplan-web/internal/routes"
	"floorplan-web/internal/service"
	"floorplan-web/internal/validation"
)

func main() {
	// Load configuration
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	// Rate limiters: shared Redis counters when configured, in-memory buckets otherwise
	limiters, closeLimiters := buildLimiters(cfg, logger)
	defer closeLimiters()

	validator := validation.New()

	// Initialize services
	authService := service.NewAuthService(logger)
	floorPlanService := service.NewFloorPlanService(cfg.GenerationDelay, logger)
	tutorialService := service.NewTutorialService()

	// Initialize controllers
	handlers := routes.Handlers{
		Auth:      controllers.NewAuthController(authService, validator, logger),
		FloorPlan: controllers.NewFloorPlanController(floorPlanService, validator, logger),
		Tutorial:  controllers.NewTutorialController(tutorialService),
		Pages:     controllers.NewPageController(authService, floorPlanService, validator, logger),
	}

	router, err := routes.New(handlers, limiters, cfg.CORSAllowedOrigin, logger)
	if err != nil {
		logger.Fatal("Failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server starting", zap.String("addr", "http://localhost:"+cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GenerationDelay+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}

func buildLimiters(cfg *config.Config, logger *zap.Logger) (routes.Limiters, func()) {
	if cfg.RedisURL != "" {
		counter, err := cache.NewRedisCache(cfg.RedisURL)
		if err == nil {
			logger.Info("Connected to Redis, using shared rate limits")
			return routes.Limiters{
				General:  middleware.NewRedisRateLimiter(counter, "general", cfg.RateLimitRPS, cfg.RateLimitBurst),
				Auth:     middleware.NewRedisRateLimiter(counter, "auth", cfg.RateLimitAuthRPS, cfg.RateLimitAuthBurst),
				Generate: middleware.NewRedisRateLimiter(counter, "generate", cfg.RateLimitGenerateRPS, cfg.RateLimitGenerateBurst),
			}, func() { _ = counter.Close() }
		}
		logger.Warn("Failed to connect to Redis. Continuing with in-memory rate limits.", zap.Error(err))
	}

	general := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	auth := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)
	generate := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitGenerateRPS), cfg.RateLimitGenerateBurst)
	return routes.Limiters{General: general, Auth: auth, Generate: generate}, func() {
		general.Close()
		auth.Close()
		generate.Close()
	}
}
