package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skyways/skybook/config"
	"github.com/skyways/skybook/internal/email"
	"github.com/skyways/skybook/internal/kafka"
	"github.com/skyways/skybook/internal/repository"
)

// The worker consumes booking notifications, sends confirmation emails,
// and archives the event stream to Postgres.
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

	archive := repository.NewBookingArchive(pool)
	emailSender := email.NewSender()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	err = consumer.ConsumeEvents(ctx, func(ctx context.Context, event kafka.BookingEvent) error {
		if err := archive.Save(ctx, event); err != nil {
			log.Printf("archive booking %s error: %v", event.BookingID, err)
		}
		return emailSender.Send(ctx, event)
	})
	if err != nil && ctx.Err() == nil {
		log.Printf("consumer stopped: %v", err)
	}
}
