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

// elementRepository implements the repository.ElementRepository interface.
type elementRepository struct {
	*ownedRepository[entity.Element, model.ElementModel]
}

// NewElementRepository is the constructor for elementRepository.
func NewElementRepository(db *gorm.DB) repository.ElementRepository {
	return &elementRepository{
		ownedRepository: newOwnedRepository(db, "element", ownedMapper[entity.Element, model.ElementModel]{
			toDomain:   toElementDomain,
			fromDomain: fromElementDomain,
			idOf:       func(e *entity.Element) int64 { return e.ID },
		}, domainerrors.ErrElementNotFound, domainerrors.ErrDuplicateElementName),
	}
}

// InsertBatch persists all elements in one INSERT and fills their generated ids.
func (repo *elementRepository) InsertBatch(ctx context.Context, owner uuid.UUID, elements []*entity.Element) error {
	if len(elements) == 0 {
		return nil
	}

	models := make([]*model.ElementModel, 0, len(elements))
	for _, e := range elements {
		models = append(models, fromElementDomain(owner, e))
	}

	if err := repo.db.WithContext(ctx).Create(&models).Error; err != nil {
		return repo.translateWriteError(err, "failed to insert element batch")
	}

	for i, m := range models {
		*elements[i] = *toElementDomain(m)
	}

	return nil
}

// --- Mapper Functions ---

func toElementDomain(data *model.ElementModel) *entity.Element {
	return &entity.Element{
		ID:             data.ID,
		UserID:         data.UserID,
		Name:           data.Name,
		ConsumptionLPM: data.ConsumptionLPM,
		CreatedAt:      data.CreatedAt,
	}
}

func fromElementDomain(owner uuid.UUID, data *entity.Element) *model.ElementModel {
	return &model.ElementModel{
		ID:             data.ID,
		UserID:         owner,
		Name:           data.Name,
		ConsumptionLPM: data.ConsumptionLPM,
		CreatedAt:      data.CreatedAt,
	}
}
