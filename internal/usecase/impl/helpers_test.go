package impl

import (
	"io"
	"log/slog"

	"labgas/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T {
	return &v
}

// recordEvent matches the event published for entity/action on id.
func recordEvent(entityName, action string, id int64) any {
	return mock.MatchedBy(func(e *service.RecordEvent) bool {
		return e.Entity == entityName && e.Action == action && e.RecordID == id
	})
}
