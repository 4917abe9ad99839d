package usecase

import (
	"context"

	"labgas/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateFlameTimeInput holds a measured flame duration. Hours, minutes and
// seconds are required.
type CreateFlameTimeInput struct {
	Hours      *int
	Minutes    *int
	Seconds    *int
	CylinderID *int64
	ElementID  *int64
}

// FlameTimeUsecase defines the flame time log operations. Consumption is
// always computed from the element's current rate.
type FlameTimeUsecase interface {
	ListFlameTimes(ctx context.Context, owner uuid.UUID) ([]*entity.FlameTimeView, error)
	GetFlameTime(ctx context.Context, owner uuid.UUID, id int64) (*entity.FlameTimeView, error)
	CreateFlameTime(ctx context.Context, owner uuid.UUID, input *CreateFlameTimeInput) (*entity.FlameTimeView, error)
	DeleteFlameTime(ctx context.Context, owner uuid.UUID, id int64) error
	Summary(ctx context.Context, owner uuid.UUID) (*entity.ConsumptionSummary, error)
}
