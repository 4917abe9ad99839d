package usecase

import (
	"context"

	"labgas/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCylinderInput holds a new cylinder. Nil optional fields take the defaults.
type CreateCylinderInput struct {
	Code         string
	PurchaseDate entity.Date
	GasKg        *float64
	Cost         *float64
	Status       *entity.CylinderStatus
}

// UpdateCylinderInput is a merge patch: nil fields keep their stored value.
type UpdateCylinderInput struct {
	Code         *string
	PurchaseDate *entity.Date
	GasKg        *float64
	Cost         *float64
	Status       *entity.CylinderStatus
}

// CylinderFilter narrows ListCylinders. The zero value lists every cylinder.
type CylinderFilter struct {
	Status *entity.CylinderStatus
}

// CylinderUsecase defines the cylinder inventory operations.
type CylinderUsecase interface {
	ListCylinders(ctx context.Context, owner uuid.UUID, filter CylinderFilter) ([]*entity.Cylinder, error)
	GetCylinder(ctx context.Context, owner uuid.UUID, id int64) (*entity.Cylinder, error)
	CreateCylinder(ctx context.Context, owner uuid.UUID, input *CreateCylinderInput) (*entity.Cylinder, error)
	UpdateCylinder(ctx context.Context, owner uuid.UUID, id int64, input *UpdateCylinderInput) (*entity.Cylinder, error)
	// DeleteCylinder fails with errors.ErrHasDependents while samples or flame times reference the cylinder.
	DeleteCylinder(ctx context.Context, owner uuid.UUID, id int64) error
	// CylinderLabel renders the printable QR label of a cylinder as PNG.
	CylinderLabel(ctx context.Context, owner uuid.UUID, id int64) ([]byte, error)
}
