package services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-fund-subscriptions/internal/logger"
	"github.com/sbilibin2017/gw-fund-subscriptions/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// NotificationService delivers human-readable transaction notifications over
// a per-channel Kafka topic. A missing channel configuration is not an error:
// the notification is skipped.
type NotificationService struct {
	writer KafkaWriter
	topics map[string]string // channel -> topic
}

// NewNotificationService creates a NotificationService.
// topics maps a notification channel ("email", "sms") to its Kafka topic.
func NewNotificationService(writer KafkaWriter, topics map[string]string) *NotificationService {
	return &NotificationService{writer: writer, topics: topics}
}

// Notify dispatches a notification for a completed transaction.
// It returns whether a message was actually dispatched: an empty channel or a
// channel with no configured topic is a silent no-op that succeeds.
// A delivery failure is returned to the caller.
func (s *NotificationService) Notify(ctx context.Context, userID, fundID, transactionType, notificationType string) (bool, error) {
	if notificationType == "" {
		logger.Log.Infow("no notification type provided, skipping notification",
			"user_id", userID, "id_fund", fundID)
		return false, nil
	}

	topic, ok := s.topics[notificationType]
	if !ok || topic == "" {
		logger.Log.Warnw("topic for notification channel not configured, notification skipped",
			"notification_type", notificationType, "user_id", userID, "id_fund", fundID)
		return false, nil
	}

	if s.writer == nil {
		logger.Log.Warnw("kafka writer not configured, notification skipped",
			"notification_type", notificationType, "user_id", userID, "id_fund", fundID)
		return false, nil
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(userID),
		Value: []byte(fmt.Sprintf("User %s performed a '%s' operation on fund %s.", userID, transactionType, fundID)),
	}
	if notificationType == models.NotificationTypeSMS {
		msg.Headers = []kafka.Header{
			{Key: "sms_type", Value: []byte("transactional")},
		}
	}

	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish notification",
			"notification_type", notificationType, "topic", topic,
			"user_id", userID, "id_fund", fundID, "error", err)
		return false, err
	}

	logger.Log.Infow("notification published",
		"notification_type", notificationType, "topic", topic,
		"user_id", userID, "id_fund", fundID)
	return true, nil
}
