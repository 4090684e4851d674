package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SHARMA1525/v0-campus-map-integration/internal/application"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/auth"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/config"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/database"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/domain/campus"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/events"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/handler"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/health"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/logger"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/metrics"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/middleware"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "campus-nav")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting campus-nav",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.AppEnv),
	)

	// Connect to database
	db, err := database.Connect(cfg.DBConfig, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(
			&repository.LocationModel{},
			&repository.RouteRequestModel{},
			&repository.UserModel{},
		); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	} else {
		if err := database.RunMigrations(database.URL(cfg.DBConfig), "migrations", log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Initialize repositories
	locationRepo := repository.NewGormLocationRepository(db)
	historyRepo := repository.NewGormHistoryRepository(db)
	userRepo := repository.NewGormUserRepository(db)

	// Seed campus locations on first boot
	ctx := context.Background()
	count, err := locationRepo.Count(ctx)
	if err != nil {
		log.Fatal("failed to count locations", zap.Error(err))
	}
	if count == 0 {
		imported, err := locationRepo.SeedFromFile(ctx, cfg.CampusDataFile)
		if err != nil {
			log.Fatal("failed to seed campus data", zap.Error(err))
		}
		log.Info("campus data imported", zap.Int("locations", imported))
	}

	// Load the location registry into memory. It is read-only for the
	// lifetime of the process.
	locations, err := locationRepo.FindAll(ctx)
	if err != nil {
		log.Fatal("failed to load locations", zap.Error(err))
	}
	registry := campus.NewRegistry(locations)
	log.Info("location registry loaded", zap.Int("locations", registry.Len()))

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWTConfig.Secret, cfg.JWTConfig.AccessTTL)

	// Initialize event producer (disabled when no brokers configured)
	var producer events.Publisher = events.NopPublisher{}
	if cfg.KafkaConfig.Enabled() {
		kafkaProducer := events.NewProducer(cfg.KafkaConfig.Brokers, log)
		defer func() { _ = kafkaProducer.Close() }()
		producer = kafkaProducer
		log.Info("event producer enabled", zap.Strings("brokers", cfg.KafkaConfig.Brokers))
	}

	// Initialize application services
	navigationService := application.NewNavigationService(registry, historyRepo, producer, log)
	assistantService := application.NewAssistantService(registry, producer, log)
	userService := application.NewUserService(userRepo, jwtManager, log)

	// Initialize HTTP handlers
	navigationHandler := handler.NewNavigationHandler(navigationService)
	assistantHandler := handler.NewAssistantHandler(assistantService)
	authHandler := handler.NewAuthHandler(userService)
	adminHandler := handler.NewAdminHandler(navigationService)

	// Setup Gin router
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(metrics.Middleware())

	// Register health check and metrics routes
	healthHandler := health.NewHandler(db, "campus-nav")
	healthHandler.RegisterRoutes(router)
	router.GET("/metrics", metrics.Handler())

	// Register routes
	navigationHandler.RegisterRoutes(&router.RouterGroup, jwtManager)
	assistantHandler.RegisterRoutes(&router.RouterGroup)
	authHandler.RegisterRoutes(&router.RouterGroup)
	adminHandler.RegisterRoutes(&router.RouterGroup, jwtManager)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down campus-nav...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("campus-nav stopped")
}
