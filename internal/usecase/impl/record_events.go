// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "labgas/internal/delivery/context"
	"labgas/internal/domain/service"

	"github.com/google/uuid"
)

// recordEvents announces committed changes. A failed publish is logged and
// never fails the caller.
type recordEvents struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func newRecordEvents(publisher service.EventPublisher, logger *slog.Logger) *recordEvents {
	return &recordEvents{
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (r *recordEvents) emit(ctx context.Context, owner uuid.UUID, entityName, action string, id int64) {
	if r == nil || r.publisher == nil {
		return
	}

	event := &service.RecordEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Entity:     entityName,
		Action:     action,
		RecordID:   id,
		UserID:     owner.String(),
		OccurredAt: r.now().UTC(),
	}

	if err := r.publisher.PublishRecordEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, r.logger).WarnContext(ctx, "Failed to publish record event",
			slog.String("entity", entityName),
			slog.String("action", action),
			slog.Int64("record_id", id),
			slog.Any("error", err),
		)
	}
}

// indexByID builds an id lookup used to join records with their references.
func indexByID[T any](items []*T, id func(*T) int64) map[int64]*T {
	index := make(map[int64]*T, len(items))
	for _, item := range items {
		index[id(item)] = item
	}

	return index
}
