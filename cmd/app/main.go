package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/travelgo/config"
	"github.com/Domenick1991/travelgo/internal/auth"
	"github.com/Domenick1991/travelgo/internal/bootstrap"
	"github.com/Domenick1991/travelgo/internal/cache"
	"github.com/Domenick1991/travelgo/internal/kafka"
	"github.com/Domenick1991/travelgo/internal/repository"
	"github.com/Domenick1991/travelgo/internal/service/bookings"
	"github.com/Domenick1991/travelgo/internal/service/destinations"
	"github.com/Domenick1991/travelgo/internal/service/users"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Destinations.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	tokens := auth.NewTokenManager(cfg.Auth.Secret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	userRepo := repository.NewUserRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	destinationRepo := repository.NewDestinationRepository(pool)

	userService := users.NewUserService(userRepo, tokens)
	bookingService := bookings.NewBookingService(
		bookingRepo,
		producer,
		cfg.Kafka.BookingTopic,
		bookings.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	destinationService := destinations.NewDestinationService(destinationRepo, redisCache)

	svc := bootstrap.Services{
		Users:        userService,
		Bookings:     bookingService,
		Destinations: destinationService,
		Tokens:       tokens,
	}

	if err := bootstrap.Run(ctx, cfg, svc); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
