package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/CasualJavaUser/FlashcardApi/config"
	"github.com/CasualJavaUser/FlashcardApi/db"
	authhandler "github.com/CasualJavaUser/FlashcardApi/internal/auth/handler"
	"github.com/CasualJavaUser/FlashcardApi/internal/auth/registry"
	authrepo "github.com/CasualJavaUser/FlashcardApi/internal/auth/repository/postgres"
	authservice "github.com/CasualJavaUser/FlashcardApi/internal/auth/service"
	statshandler "github.com/CasualJavaUser/FlashcardApi/internal/stats/handler"
	statsrepo "github.com/CasualJavaUser/FlashcardApi/internal/stats/repository/postgres"
	statsservice "github.com/CasualJavaUser/FlashcardApi/internal/stats/service"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cfg := config.Load()
	ctx := context.Background()

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		log.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	userRepo := authrepo.NewUserRepository(dbPool)

	refreshRegistry := registry.NewInMemoryRegistry(
		time.Duration(cfg.RefreshExpiryMin)*time.Minute, cfg.RegistryMaxEntries)
	defer refreshRegistry.Close()

	tokenService := authservice.NewTokenService(
		cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience,
		cfg.AccessExpirySec, cfg.RefreshExpiryMin, userRepo)
	userService := authservice.NewUserService(userRepo, tokenService, refreshRegistry)
	statsService := statsservice.NewStatsService(statsrepo.NewStatsRepository(dbPool))

	app := fiber.New()
	app.Use(fiberlogger.New())

	authhandler.RegisterRoutes(app, authhandler.NewAuthHandler(userService))
	statshandler.RegisterRoutes(app, statshandler.NewStatsHandler(statsService),
		authhandler.AuthRequired(tokenService))

	log.Info("starting server", "port", cfg.Port, "env", cfg.Env)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
