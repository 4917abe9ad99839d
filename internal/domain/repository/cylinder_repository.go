package repository

import (
	"context"

	"labgas/internal/domain/entity"

	"github.com/google/uuid"
)

// CylinderRepository persists cylinders. A duplicate (owner, code) yields
// errors.ErrDuplicateCylinderCode.
type CylinderRepository interface {
	OwnedRepository[entity.Cylinder]

	ListByStatus(ctx context.Context, owner uuid.UUID, status entity.CylinderStatus) ([]*entity.Cylinder, error)
	// CountByStatus reports only the statuses owner has cylinders in.
	CountByStatus(ctx context.Context, owner uuid.UUID) (map[entity.CylinderStatus]int64, error)
}
