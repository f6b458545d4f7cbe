package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/shreyansh404/attendanceManagment/internal/events"
)

const lastCheckInHashKey = "attendance:last_checkin"

// LastCheckInKey names the redis hash that maps staff id to their most
// recent check-in.
func LastCheckInKey() string {
	return lastCheckInHashKey
}

// ConsumeCheckInEvents keeps the per-staff last-check-in cache warm from the
// published check-in stream.
func ConsumeCheckInEvents(
	ctx context.Context,
	reader *kafkago.Reader,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.checkin")
	log.Info("check-in consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("check-in consumer stopped")
				return
			}
			log.Error("fetch check-in message failed", zap.Error(err))
			continue
		}

		var event events.CheckInRecordedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode check-in event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := RecordLastCheckIn(ctx, rdb, event); err != nil {
			log.Error("update last check-in cache failed",
				zap.String("staff_id", event.StaffID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit check-in message failed", zap.Error(err))
			continue
		}

		log.Info("last check-in cache updated",
			zap.String("staff_id", event.StaffID),
			zap.String("date", event.Date),
		)
	}
}

func RecordLastCheckIn(ctx context.Context, rdb *redis.Client, event events.CheckInRecordedEvent) error {
	value := fmt.Sprintf("%s %s", event.Date, event.TimeIn)
	return rdb.HSet(ctx, lastCheckInHashKey, event.StaffID, value).Err()
}
