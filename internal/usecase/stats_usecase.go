package usecase

import (
	"context"

	"labgas/internal/domain/entity"

	"github.com/google/uuid"
)

// StatsUsecase reports per-owner record counts.
type StatsUsecase interface {
	Counts(ctx context.Context, owner uuid.UUID) (*entity.RecordCounts, error)
}
