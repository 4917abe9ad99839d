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

// cylinderRepository implements the repository.CylinderRepository interface.
type cylinderRepository struct {
	*ownedRepository[entity.Cylinder, model.CylinderModel]
}

// NewCylinderRepository is the constructor for cylinderRepository.
func NewCylinderRepository(db *gorm.DB) repository.CylinderRepository {
	return &cylinderRepository{
		ownedRepository: newOwnedRepository(db, "cylinder", ownedMapper[entity.Cylinder, model.CylinderModel]{
			toDomain:   toCylinderDomain,
			fromDomain: fromCylinderDomain,
			idOf:       func(c *entity.Cylinder) int64 { return c.ID },
		}, domainerrors.ErrCylinderNotFound, domainerrors.ErrDuplicateCylinderCode),
	}
}

// --- Mapper Functions ---

func toCylinderDomain(data *model.CylinderModel) *entity.Cylinder {
	return &entity.Cylinder{
		ID:               data.ID,
		UserID:           data.UserID,
		Code:             data.Code,
		PurchaseDate:     entity.NewDate(data.PurchaseDate),
		GasKg:            data.GasKg,
		LitersEquivalent: data.LitersEquivalent,
		Cost:             data.Cost,
		Status:           entity.CylinderStatus(data.Status),
		CreatedAt:        data.CreatedAt,
	}
}

func fromCylinderDomain(owner uuid.UUID, data *entity.Cylinder) *model.CylinderModel {
	return &model.CylinderModel{
		ID:               data.ID,
		UserID:           owner,
		Code:             data.Code,
		PurchaseDate:     data.PurchaseDate.Time,
		GasKg:            data.GasKg,
		LitersEquivalent: data.LitersEquivalent,
		Cost:             data.Cost,
		Status:           string(data.Status),
		CreatedAt:        data.CreatedAt,
	}
}

// ListByStatus retrieves owner's cylinders in status ordered by id.
func (repo *cylinderRepository) ListByStatus(ctx context.Context, owner uuid.UUID, status entity.CylinderStatus) ([]*entity.Cylinder, error) {
	return repo.listWhere(ctx, owner, "status", string(status))
}

type statusCount struct {
	Status string
	N      int64
}

// CountByStatus groups owner's cylinders by stored status. Statuses without
// cylinders are absent from the result.
func (repo *cylinderRepository) CountByStatus(ctx context.Context, owner uuid.UUID) (map[entity.CylinderStatus]int64, error) {
	var rows []statusCount

	if err := repo.db.WithContext(ctx).
		Model(&model.CylinderModel{}).
		Select("status, count(*) AS n").
		Where("user_id = ?", owner).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count cylinder by status")
	}

	counts := make(map[entity.CylinderStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.CylinderStatus(row.Status)] = row.N
	}

	return counts, nil
}
