package repository

import (
	"context"

	"labgas/internal/domain/entity"

	"github.com/google/uuid"
)

// ReferenceCounter counts records pointing at a cylinder or an element.
type ReferenceCounter interface {
	CountByCylinder(ctx context.Context, owner uuid.UUID, cylinderID int64) (int64, error)
	CountByElement(ctx context.Context, owner uuid.UUID, elementID int64) (int64, error)
}

// SampleRepository persists samples.
type SampleRepository interface {
	OwnedRepository[entity.Sample]
	ReferenceCounter
}

// FlameTimeRepository persists flame time records.
type FlameTimeRepository interface {
	OwnedRepository[entity.FlameTimeRecord]
	ReferenceCounter
}
