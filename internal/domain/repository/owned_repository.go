// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"github.com/google/uuid"
)

// OwnedRepository is the storage contract shared by every owner-scoped entity.
// Every operation filters by owner; rows of other owners are never read or written.
type OwnedRepository[T any] interface {
	// List returns all records of owner ordered by id.
	List(ctx context.Context, owner uuid.UUID) ([]*T, error)

	// Get returns the record with id, or the entity's not-found error.
	Get(ctx context.Context, owner uuid.UUID, id int64) (*T, error)

	// Insert persists record under owner and fills its generated fields.
	Insert(ctx context.Context, owner uuid.UUID, record *T) error

	// Update overwrites the stored record with the same id. A miss yields the
	// entity's not-found error.
	Update(ctx context.Context, owner uuid.UUID, record *T) error

	// Delete removes the record with id. A miss yields the entity's not-found error.
	Delete(ctx context.Context, owner uuid.UUID, id int64) error

	// Count returns how many records owner has.
	Count(ctx context.Context, owner uuid.UUID) (int64, error)
}
