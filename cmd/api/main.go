// Package main is the entry point for the logbook API.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	_ "github.com/azpsen/tailfin-api/docs"
	"github.com/azpsen/tailfin-api/internal/config"
	"github.com/azpsen/tailfin-api/internal/handlers"
	"github.com/azpsen/tailfin-api/internal/repository"
	"github.com/azpsen/tailfin-api/internal/routes"
	"github.com/azpsen/tailfin-api/internal/service"
	"github.com/azpsen/tailfin-api/pkg/mongo"
	"github.com/azpsen/tailfin-api/pkg/redis"
)

// @title Tailfin Logbook API
// @version 1.0
// @description Self-hosted personal flight logbook API
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if cfg.Environment == "production" {
		log.SetFormatter(&log.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Initialize database
	db, err := mongo.Connect(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	// Initialize Redis
	redisClient, err := redis.NewClient(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to redis")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	flightRepo := repository.NewFlightRepository(db)
	aircraftRepo := repository.NewAircraftRepository(db)
	imageRepo, err := repository.NewImageRepository(db)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize image store")
	}

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.WithError(err).Fatal("Failed to create database indexes")
	}

	// Initialize services
	tokenService, err := service.NewTokenService(cfg.JWTSecretKey, cfg.JWTRefreshSecretKey, cfg.AccessTokenExpiry, cfg.RefreshTokenExpiry)
	if err != nil {
		log.WithError(err).Fatal("Invalid token configuration")
	}
	authService := service.NewAuthService(userRepo, tokenService, redisClient)
	userService := service.NewUserService(userRepo, flightRepo, aircraftRepo)
	flightService := service.NewFlightService(flightRepo)
	aircraftService := service.NewAircraftService(aircraftRepo)
	imageService := service.NewImageService(imageRepo)

	// Seed the default administrator on first run
	if err := service.EnsureDefaultAdmin(ctx, userRepo, cfg.DefaultAdminUsername, cfg.DefaultAdminPassword); err != nil {
		log.WithError(err).Fatal("Failed to create default admin user")
	}

	// Initialize handlers
	h := routes.Handlers{
		Auth:     handlers.NewAuthHandler(authService),
		Users:    handlers.NewUserHandler(userService),
		Flights:  handlers.NewFlightHandler(flightService),
		Aircraft: handlers.NewAircraftHandler(aircraftService),
		Images:   handlers.NewImageHandler(imageService),
		Health:   handlers.NewHealthHandler(),
	}

	// Setup router
	router := gin.Default()

	// Setup routes
	routes.Setup(router, h, authService, cfg)

	// Start server
	log.WithField("port", cfg.Port).Info("Starting tailfin API")
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
