package usecase

import (
	"context"

	"labgas/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateSampleInput holds a new sample. Time accepts HH:MM or HH:MM:SS.
type CreateSampleInput struct {
	Date             entity.Date
	Time             string
	CylinderID       *int64
	ElementID        *int64
	FlameTimeSeconds *int
	Quantity         *int
}

// UpdateSampleInput is a merge patch: nil fields keep their stored value.
type UpdateSampleInput struct {
	Date             *entity.Date
	Time             *string
	CylinderID       *int64
	ElementID        *int64
	FlameTimeSeconds *int
	Quantity         *int

	// ClearCylinder and ClearElement unlink the reference and win over the ids.
	ClearCylinder bool
	ClearElement  bool
}

// SampleUsecase defines the sample log operations.
type SampleUsecase interface {
	ListSamples(ctx context.Context, owner uuid.UUID) ([]*entity.SampleView, error)
	GetSample(ctx context.Context, owner uuid.UUID, id int64) (*entity.SampleView, error)
	CreateSample(ctx context.Context, owner uuid.UUID, input *CreateSampleInput) (*entity.Sample, error)
	UpdateSample(ctx context.Context, owner uuid.UUID, id int64, input *UpdateSampleInput) (*entity.Sample, error)
	DeleteSample(ctx context.Context, owner uuid.UUID, id int64) error
}
