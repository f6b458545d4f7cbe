package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/shreyansh404/attendanceManagment/internal/config"
	"github.com/shreyansh404/attendanceManagment/internal/messaging/kafka"
	"github.com/shreyansh404/attendanceManagment/internal/messaging/kafka/producer"
	"github.com/shreyansh404/attendanceManagment/internal/shared/connection"
)

// RunWorker drains the outbox table to Kafka until the context is cancelled.
func RunWorker(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	db, err := connection.ConnectGORMWithRetry(cfg.Postgres, 5)
	if err != nil {
		return err
	}

	writer, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, 5)
	if err != nil {
		return err
	}
	defer writer.Close()

	producer.ProcessOutboxEvents(ctx, kafka.NewOutboxRepository(db), writer, logger, 3*time.Second)
	return nil
}
