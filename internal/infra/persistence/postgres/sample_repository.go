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

// sampleRepository implements the repository.SampleRepository interface.
type sampleRepository struct {
	*ownedRepository[entity.Sample, model.SampleModel]
}

// NewSampleRepository is the constructor for sampleRepository.
func NewSampleRepository(db *gorm.DB) repository.SampleRepository {
	return &sampleRepository{
		ownedRepository: newOwnedRepository(db, "sample", ownedMapper[entity.Sample, model.SampleModel]{
			toDomain:   toSampleDomain,
			fromDomain: fromSampleDomain,
			idOf:       func(s *entity.Sample) int64 { return s.ID },
		}, domainerrors.ErrSampleNotFound, nil),
	}
}

// CountByCylinder counts owner's samples that reference cylinderID.
func (repo *sampleRepository) CountByCylinder(ctx context.Context, owner uuid.UUID, cylinderID int64) (int64, error) {
	return repo.countWhere(ctx, owner, "cylinder_id", cylinderID)
}

// CountByElement counts owner's samples that reference elementID.
func (repo *sampleRepository) CountByElement(ctx context.Context, owner uuid.UUID, elementID int64) (int64, error) {
	return repo.countWhere(ctx, owner, "element_id", elementID)
}

// --- Mapper Functions ---

func toSampleDomain(data *model.SampleModel) *entity.Sample {
	return &entity.Sample{
		ID:               data.ID,
		UserID:           data.UserID,
		Date:             entity.NewDate(data.Date),
		Time:             data.Time,
		CylinderID:       data.CylinderID,
		ElementID:        data.ElementID,
		FlameTimeSeconds: data.FlameTimeSeconds,
		Quantity:         data.Quantity,
		CreatedAt:        data.CreatedAt,
	}
}

func fromSampleDomain(owner uuid.UUID, data *entity.Sample) *model.SampleModel {
	return &model.SampleModel{
		ID:               data.ID,
		UserID:           owner,
		Date:             data.Date.Time,
		Time:             data.Time,
		CylinderID:       data.CylinderID,
		ElementID:        data.ElementID,
		FlameTimeSeconds: data.FlameTimeSeconds,
		Quantity:         data.Quantity,
		CreatedAt:        data.CreatedAt,
	}
}
