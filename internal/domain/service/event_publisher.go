package service

import (
	"context"
	"time"
)

// RecordEvent announces a committed change to an owned record.
type RecordEvent struct {
	RequestID  string    `json:"request_id,omitempty"`
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	RecordID   int64     `json:"record_id"`
	UserID     string    `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRecordEvent publishes a record change event
	PublishRecordEvent(ctx context.Context, event *RecordEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
