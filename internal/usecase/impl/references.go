package impl

import (
	"context"

	"labgas/internal/domain/entity"
	domainerrors "labgas/internal/domain/errors"
	"labgas/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// references resolves the weak cylinder and element links carried by samples
// and flame times.
type references struct {
	cylinderRepo repository.CylinderRepository
	elementRepo  repository.ElementRepository
}

// validate rejects ids that do not name a record of owner.
func (r *references) validate(ctx context.Context, owner uuid.UUID, cylinderID, elementID *int64) error {
	if cylinderID != nil {
		if _, err := r.cylinderRepo.Get(ctx, owner, *cylinderID); err != nil {
			if errors.Is(err, domainerrors.ErrCylinderNotFound) {
				return domainerrors.ErrInvalidReference.WithDetails("cilindro inexistente")
			}

			return err
		}
	}

	if elementID != nil {
		if _, err := r.elementRepo.Get(ctx, owner, *elementID); err != nil {
			if errors.Is(err, domainerrors.ErrElementNotFound) {
				return domainerrors.ErrInvalidReference.WithDetails("elemento inexistente")
			}

			return err
		}
	}

	return nil
}

// lookup is one id index of owner's cylinders and elements.
type lookup struct {
	cylinders map[int64]*entity.Cylinder
	elements  map[int64]*entity.Element
}

func (r *references) load(ctx context.Context, owner uuid.UUID) (*lookup, error) {
	cylinders, err := r.cylinderRepo.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	elements, err := r.elementRepo.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	return &lookup{
		cylinders: indexByID(cylinders, func(c *entity.Cylinder) int64 { return c.ID }),
		elements:  indexByID(elements, func(e *entity.Element) int64 { return e.ID }),
	}, nil
}

// loadFor resolves only the two ids given. Dangling ids resolve to nothing.
func (r *references) loadFor(ctx context.Context, owner uuid.UUID, cylinderID, elementID *int64) (*lookup, error) {
	l := &lookup{
		cylinders: map[int64]*entity.Cylinder{},
		elements:  map[int64]*entity.Element{},
	}

	if cylinderID != nil {
		cylinder, err := r.cylinderRepo.Get(ctx, owner, *cylinderID)
		switch {
		case err == nil:
			l.cylinders[cylinder.ID] = cylinder
		case !errors.Is(err, domainerrors.ErrCylinderNotFound):
			return nil, err
		}
	}

	if elementID != nil {
		element, err := r.elementRepo.Get(ctx, owner, *elementID)
		switch {
		case err == nil:
			l.elements[element.ID] = element
		case !errors.Is(err, domainerrors.ErrElementNotFound):
			return nil, err
		}
	}

	return l, nil
}

func (l *lookup) cylinder(id *int64) *entity.Cylinder {
	if id == nil {
		return nil
	}

	return l.cylinders[*id]
}

func (l *lookup) element(id *int64) *entity.Element {
	if id == nil {
		return nil
	}

	return l.elements[*id]
}

func (l *lookup) cylinderCode(id *int64) string {
	if c := l.cylinder(id); c != nil {
		return c.Code
	}

	return ""
}

func (l *lookup) elementName(id *int64) string {
	if e := l.element(id); e != nil {
		return e.Name
	}

	return ""
}
