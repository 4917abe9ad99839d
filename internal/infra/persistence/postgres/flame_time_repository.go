package postgres

import (
	"context"

	"labgas/internal/domain/entity"
	domainerrors "labgas/internal/domain/errors"
	"labgas/internal/domain/repository"
	"labgas/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// flameTimeRepository implements the repository.FlameTimeRepository interface.
type flameTimeRepository struct {
	*ownedRepository[entity.FlameTimeRecord, model.FlameTimeModel]
}

// NewFlameTimeRepository is the constructor for flameTimeRepository.
func NewFlameTimeRepository(db *gorm.DB) repository.FlameTimeRepository {
	return &flameTimeRepository{
		ownedRepository: newOwnedRepository(db, "flame time", ownedMapper[entity.FlameTimeRecord, model.FlameTimeModel]{
			toDomain:   toFlameTimeDomain,
			fromDomain: fromFlameTimeDomain,
			idOf:       func(f *entity.FlameTimeRecord) int64 { return f.ID },
		}, domainerrors.ErrFlameTimeNotFound, nil),
	}
}

// CountByCylinder counts owner's flame time records that reference cylinderID.
func (repo *flameTimeRepository) CountByCylinder(ctx context.Context, owner uuid.UUID, cylinderID int64) (int64, error) {
	return repo.countWhere(ctx, owner, "cylinder_id", cylinderID)
}

// CountByElement counts owner's flame time records that reference elementID.
func (repo *flameTimeRepository) CountByElement(ctx context.Context, owner uuid.UUID, elementID int64) (int64, error) {
	return repo.countWhere(ctx, owner, "element_id", elementID)
}

// --- Mapper Functions ---

func toFlameTimeDomain(data *model.FlameTimeModel) *entity.FlameTimeRecord {
	return &entity.FlameTimeRecord{
		ID:         data.ID,
		UserID:     data.UserID,
		Hours:      data.Hours,
		Minutes:    data.Minutes,
		Seconds:    data.Seconds,
		CylinderID: data.CylinderID,
		ElementID:  data.ElementID,
		CreatedAt:  data.CreatedAt,
	}
}

func fromFlameTimeDomain(owner uuid.UUID, data *entity.FlameTimeRecord) *model.FlameTimeModel {
	return &model.FlameTimeModel{
		ID:         data.ID,
		UserID:     owner,
		Hours:      data.Hours,
		Minutes:    data.Minutes,
		Seconds:    data.Seconds,
		CylinderID: data.CylinderID,
		ElementID:  data.ElementID,
		CreatedAt:  data.CreatedAt,
	}
}
