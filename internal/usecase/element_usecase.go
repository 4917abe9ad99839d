package usecase

import (
	"context"

	"labgas/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateElementInput holds a new element. A nil rate takes the default.
type CreateElementInput struct {
	Name           string
	ConsumptionLPM *float64
}

// UpdateElementInput is a merge patch: nil fields keep their stored value.
type UpdateElementInput struct {
	Name           *string
	ConsumptionLPM *float64
}

// ElementUsecase defines the element catalog operations.
type ElementUsecase interface {
	// ListElements seeds the default catalog first when owner has no elements.
	ListElements(ctx context.Context, owner uuid.UUID) ([]*entity.Element, error)
	GetElement(ctx context.Context, owner uuid.UUID, id int64) (*entity.Element, error)
	CreateElement(ctx context.Context, owner uuid.UUID, input *CreateElementInput) (*entity.Element, error)
	UpdateElement(ctx context.Context, owner uuid.UUID, id int64, input *UpdateElementInput) (*entity.Element, error)
	DeleteElement(ctx context.Context, owner uuid.UUID, id int64) error
	// EnsureSeeded inserts the catalog when owner has no elements and returns how many were inserted.
	EnsureSeeded(ctx context.Context, owner uuid.UUID) (int, error)
}
