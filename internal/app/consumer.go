package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/shreyansh404/attendanceManagment/internal/config"
	"github.com/shreyansh404/attendanceManagment/internal/events"
	"github.com/shreyansh404/attendanceManagment/internal/messaging/kafka/consumer"
	"github.com/shreyansh404/attendanceManagment/internal/shared/connection"
)

// RunConsumer feeds the last-check-in cache from the check-in event stream
// until the context is cancelled.
func RunConsumer(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis, 5)
	if err != nil {
		return err
	}

	reader := connection.NewKafkaReader(cfg.Kafka.Broker, cfg.Kafka.ConsumerGroup, events.CheckInRecordedTopic)
	defer reader.Close()

	consumer.ConsumeCheckInEvents(ctx, reader, rdb, logger)
	return nil
}
