package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tasktrade/internal/auth"
	"tasktrade/internal/cache"
	"tasktrade/internal/config"
	"tasktrade/internal/db"
	"tasktrade/internal/handler"
	"tasktrade/internal/repository"
	"tasktrade/internal/router"
	"tasktrade/internal/service"
)

// @title TaskTrade API
// @version 1.0
// @description Services marketplace API: providers list services, customers book them, both review. Authentication via an HTTP-only JWT cookie.
// @host localhost:5000
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()

	if !cfg.Production {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if cfg.MongoURI == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}
	if cfg.TokenSecret == "" {
		log.Fatal().Msg("ACCESS_TOKEN_SECRET is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := db.NewMongo(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo init")
	}
	database := db.Database(client)

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	serviceRepo := repository.NewServiceRepository(database, db.ServicesCollection)
	userRepo := repository.NewUserRepository(database, db.UsersCollection)
	bookingRepo := repository.NewBookingRepository(database, db.BookingsCollection)
	reviewRepo := repository.NewReviewRepository(database, db.ReviewsCollection)

	// Auth
	tokenService := auth.NewTokenService(cfg.TokenSecret)
	gate := auth.Gate(tokenService)

	// Services
	serviceService := service.NewServiceService(serviceRepo, userRepo, cacheClient)
	bookingService := service.NewBookingService(bookingRepo, serviceRepo, cacheClient)
	reviewService := service.NewReviewService(reviewRepo)
	userService := service.NewUserService(userRepo, cacheClient)

	// Handlers
	authHandler := handler.NewAuthHandler(tokenService, cfg.Production)
	serviceHandler := handler.NewServiceHandler(serviceService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	userHandler := handler.NewUserHandler(userService)

	e := echo.New()
	e.HideBanner = true
	router.Register(
		e,
		cfg,
		gate,
		authHandler,
		serviceHandler,
		bookingHandler,
		reviewHandler,
		userHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("server starting")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
