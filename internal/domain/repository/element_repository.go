package repository

import (
	"context"

	"labgas/internal/domain/entity"

	"github.com/google/uuid"
)

// ElementRepository persists elements. A duplicate (owner, name) yields
// errors.ErrDuplicateElementName.
type ElementRepository interface {
	OwnedRepository[entity.Element]

	// InsertBatch persists all elements in a single statement.
	InsertBatch(ctx context.Context, owner uuid.UUID, elements []*entity.Element) error
}
