// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	domainerrors "labgas/internal/domain/errors"
	"labgas/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// immutableColumns are never rewritten by Update.
var immutableColumns = []string{"id", "user_id", "created_at"}

// ownedMapper converts between a domain entity T and its GORM model M.
type ownedMapper[T any, M any] struct {
	toDomain   func(*M) *T
	fromDomain func(owner uuid.UUID, record *T) *M
	idOf       func(*T) int64
}

// ownedRepository implements repository.OwnedRepository for any owner-scoped table.
type ownedRepository[T any, M any] struct {
	db        *gorm.DB
	mapper    ownedMapper[T, M]
	entity    string
	notFound  error
	duplicate error
}

func newOwnedRepository[T any, M any](db *gorm.DB, entity string, mapper ownedMapper[T, M], notFound, duplicate error) *ownedRepository[T, M] {
	if duplicate == nil {
		duplicate = domainerrors.ErrDuplicateKey
	}

	return &ownedRepository[T, M]{
		db:        db,
		mapper:    mapper,
		entity:    entity,
		notFound:  notFound,
		duplicate: duplicate,
	}
}

// List retrieves every record of owner ordered by id.
func (repo *ownedRepository[T, M]) List(ctx context.Context, owner uuid.UUID) ([]*T, error) {
	return repo.find(repo.db.WithContext(ctx).Where("user_id = ?", owner), "failed to list "+repo.entity)
}

// listWhere lists owner's records matching an extra column condition, ordered by id.
func (repo *ownedRepository[T, M]) listWhere(ctx context.Context, owner uuid.UUID, column string, value any) ([]*T, error) {
	return repo.find(
		repo.db.WithContext(ctx).Where("user_id = ?", owner).Where(column+" = ?", value),
		"failed to list "+repo.entity+" by "+column,
	)
}

func (repo *ownedRepository[T, M]) find(query *gorm.DB, details string) ([]*T, error) {
	var models []*M

	if err := query.Order("id").Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	records := make([]*T, 0, len(models))
	for _, m := range models {
		records = append(records, repo.mapper.toDomain(m))
	}

	return records, nil
}

// Get retrieves a single record by id within owner scope.
func (repo *ownedRepository[T, M]) Get(ctx context.Context, owner uuid.UUID, id int64) (*T, error) {
	var m M

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, owner).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repo.notFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to get "+repo.entity)
	}

	return repo.mapper.toDomain(&m), nil
}

// Insert persists record under owner and copies generated values back into it.
func (repo *ownedRepository[T, M]) Insert(ctx context.Context, owner uuid.UUID, record *T) error {
	m := repo.mapper.fromDomain(owner, record)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return repo.translateWriteError(err, "failed to insert "+repo.entity)
	}

	*record = *repo.mapper.toDomain(m)

	return nil
}

// Update overwrites all mutable columns of the record with the same id.
func (repo *ownedRepository[T, M]) Update(ctx context.Context, owner uuid.UUID, record *T) error {
	id := repo.mapper.idOf(record)
	m := repo.mapper.fromDomain(owner, record)

	result := repo.db.WithContext(ctx).
		Model(new(M)).
		Where("id = ? AND user_id = ?", id, owner).
		Select("*").
		Omit(immutableColumns...).
		Updates(m)

	if result.Error != nil {
		return repo.translateWriteError(result.Error, "failed to update "+repo.entity)
	}

	if result.RowsAffected == 0 {
		return repo.notFound
	}

	return nil
}

// Delete removes the record with id within owner scope.
func (repo *ownedRepository[T, M]) Delete(ctx context.Context, owner uuid.UUID, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, owner).
		Delete(new(M))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete "+repo.entity)
	}

	if result.RowsAffected == 0 {
		return repo.notFound
	}

	return nil
}

// Count returns the number of records owner has.
func (repo *ownedRepository[T, M]) Count(ctx context.Context, owner uuid.UUID) (int64, error) {
	var n int64

	if err := repo.db.WithContext(ctx).
		Model(new(M)).
		Where("user_id = ?", owner).
		Count(&n).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count "+repo.entity)
	}

	return n, nil
}

// countWhere counts owner's records matching an extra column condition.
func (repo *ownedRepository[T, M]) countWhere(ctx context.Context, owner uuid.UUID, column string, value any) (int64, error) {
	var n int64

	if err := repo.db.WithContext(ctx).
		Model(new(M)).
		Where("user_id = ?", owner).
		Where(column+" = ?", value).
		Count(&n).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count "+repo.entity+" by "+column)
	}

	return n, nil
}

func (repo *ownedRepository[T, M]) translateWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return repo.duplicate
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
