package postgres

import (
	"context"

	"labgas/internal/domain/repository"
	"labgas/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory builds repositories bound to one open transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) CylinderRepo() repository.CylinderRepository {
	return NewCylinderRepository(f.tx)
}

func (f *gormRepositoryFactory) ElementRepo() repository.ElementRepository {
	return NewElementRepository(f.tx)
}

func (f *gormRepositoryFactory) SampleRepo() repository.SampleRepository {
	return NewSampleRepository(f.tx)
}

func (f *gormRepositoryFactory) FlameTimeRepo() repository.FlameTimeRepository {
	return NewFlameTimeRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn within a single database transaction. A panic inside fn
// rolls back and is re-raised.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
