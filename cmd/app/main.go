package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyways/skybook/api"
	"github.com/skyways/skybook/config"
	"github.com/skyways/skybook/internal/bootstrap"
	"github.com/skyways/skybook/internal/cache"
	"github.com/skyways/skybook/internal/catalog"
	"github.com/skyways/skybook/internal/kafka"
	"github.com/skyways/skybook/internal/payment"
	"github.com/skyways/skybook/internal/service/booking"
	"github.com/skyways/skybook/internal/service/flights"
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

	var flightCatalog catalog.Catalog
	switch cfg.Catalog.Driver {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()
		flightCatalog = catalog.NewPG(pool)
	default:
		flightCatalog, err = catalog.NewMemoryFromFile(cfg.Catalog.FixturePath)
		if err != nil {
			log.Fatalf("load flight catalog: %v", err)
		}
	}

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Catalog.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightService := flights.NewService(flightCatalog, redisCache)
	gateway := payment.NewStub(time.Duration(cfg.Payment.DelayMillis) * time.Millisecond)

	sessionOpts := []booking.SessionOption{
		booking.WithProducer(producer, cfg.Kafka.BookingEventsTopic),
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	}
	if cfg.Payment.StrictAmountCheck {
		sessionOpts = append(sessionOpts, booking.WithStrictAmountCheck())
	}
	sessions := api.NewSessionRegistry(func() *booking.Session {
		return booking.NewSession(gateway, sessionOpts...)
	})

	if err := bootstrap.Run(ctx, cfg, flightService, sessions); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
