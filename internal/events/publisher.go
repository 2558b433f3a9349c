// Package events publishes driver lifecycle events for downstream consumers
// (the realtime driver service, notifications). Best effort: the admin
// action never fails because Kafka is down.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Event types, as consumed downstream.
const (
	DriverCreated   = "driver_created"
	DriverUpdated   = "driver_updated"
	DriverActivated = "driver_activated"
	DriverSuspended = "driver_suspended"
	DriverAccepted  = "driver_accepted"
	DriverRejected  = "driver_rejected"
	DriverDeleted   = "driver_deleted"
)

type driverEvent struct {
	EventType string `json:"event_type"`
	DriverID  int64  `json:"driver_id"`
	Timestamp string `json:"timestamp"`
}

type Publisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// NewPublisher creates a publisher for the driver_events topic. Returns nil
// when no brokers are configured; all methods are nil-safe.
func NewPublisher(brokers []string, topic string, logger *zap.Logger) *Publisher {
	if len(brokers) == 0 {
		return nil
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
			WriteTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// DriverEvent publishes one event, logging instead of failing on error.
func (p *Publisher) DriverEvent(ctx context.Context, eventType string, driverID int64) {
	if p == nil || p.writer == nil {
		return
	}
	raw, err := json.Marshal(driverEvent{
		EventType: eventType,
		DriverID:  driverID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := p.writer.WriteMessages(ctx, kafka.Message{Value: raw, Time: time.Now()}); err != nil && p.logger != nil {
		p.logger.Warn("driver event publish failed",
			zap.String("event_type", eventType),
			zap.Int64("driver_id", driverID),
			zap.Error(err),
		)
	}
}

func (p *Publisher) Close() {
	if p == nil || p.writer == nil {
		return
	}
	_ = p.writer.Close()
}
