package postgres

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"labgas/internal/domain/entity"
	domainerrors "labgas/internal/domain/errors"
	"labgas/internal/domain/repository"
	"labgas/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestCylinderRepository_ListScopesByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCylinderRepository(db)
	owner := uuid.New()
	purchased := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "user_id", "code", "purchase_date", "gas_kg", "liters_equivalent", "cost", "status", "created_at"}).
		AddRow(1, owner.String(), "CIL-001", purchased, 1.0, 956.0, 290.0, "active", time.Now()).
		AddRow(2, owner.String(), "CIL-002", purchased, 2.0, 1912.0, 310.5, "in_use", time.Now())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "cylinders" WHERE user_id = $1 ORDER BY id`)).
		WithArgs(owner).
		WillReturnRows(rows)

	cylinders, err := repo.List(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, cylinders, 2)
	assert.Equal(t, "CIL-001", cylinders[0].Code)
	assert.Equal(t, "2024-03-01", cylinders[0].PurchaseDate.String())
	assert.Equal(t, entity.CylinderStatusInUse, cylinders[1].Status)
	assert.InDelta(t, 1912.0, cylinders[1].LitersEquivalent, 1e-9)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCylinderRepository_ListByStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCylinderRepository(db)
	owner := uuid.New()
	purchased := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "user_id", "code", "purchase_date", "gas_kg", "liters_equivalent", "cost", "status", "created_at"}).
		AddRow(3, owner.String(), "CIL-003", purchased, 1.0, 956.0, 290.0, "depleted", time.Now())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "cylinders" WHERE user_id = $1 AND status = $2 ORDER BY id`)).
		WithArgs(owner, "depleted").
		WillReturnRows(rows)

	cylinders, err := repo.ListByStatus(context.Background(), owner, entity.CylinderStatusDepleted)
	require.NoError(t, err)
	require.Len(t, cylinders, 1)
	assert.Equal(t, "CIL-003", cylinders[0].Code)
	assert.Equal(t, entity.CylinderStatusDepleted, cylinders[0].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCylinderRepository_CountByStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCylinderRepository(db)
	owner := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status, count(*) AS n FROM "cylinders" WHERE user_id = $1 GROUP BY`)).
		WithArgs(owner).
		WillReturnRows(sqlmock.NewRows([]string{"status", "n"}).
			AddRow("active", 3).
			AddRow("in_use", 1))

	counts, err := repo.CountByStatus(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, map[entity.CylinderStatus]int64{
		entity.CylinderStatusActive: 3,
		entity.CylinderStatusInUse:  1,
	}, counts)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCylinderRepository_CountByStatusError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCylinderRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status, count(*) AS n FROM "cylinders"`)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CountByStatus(context.Background(), uuid.New())
	require.Error(t, err)

	var dbErr *domainerrors.DatabaseExecuteError
	assert.True(t, errors.As(err, &dbErr))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCylinderRepository_GetNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCylinderRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "cylinders" WHERE id = $1 AND user_id = $2`)).
		WillReturnError(gorm.ErrRecordNotFound)

	_, err := repo.Get(context.Background(), uuid.New(), 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCylinderNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCylinderRepository_InsertFillsID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCylinderRepository(db)
	owner := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "cylinders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	cylinder := &entity.Cylinder{
		Code:         "CIL-011",
		PurchaseDate: entity.NewDate(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)),
		Status:       entity.CylinderStatusActive,
	}
	cylinder.SetGasKg(1.5)

	require.NoError(t, repo.Insert(context.Background(), owner, cylinder))
	assert.Equal(t, int64(11), cylinder.ID)
	assert.Equal(t, owner, cylinder.UserID)
	assert.InDelta(t, 1434.0, cylinder.LitersEquivalent, 1e-9)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCylinderRepository_InsertDuplicateCode(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCylinderRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "cylinders"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_cylinders_user_code"})

	err := repo.Insert(context.Background(), uuid.New(), &entity.Cylinder{Code: "CIL-001"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateCylinderCode))
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateKey))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCylinderRepository_SameCodeForAnotherOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCylinderRepository(db)
	first, second := uuid.New(), uuid.New()
	anyRest := []driver.Value{sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "cylinders"`)).
		WithArgs(append([]driver.Value{first, "CIL-001"}, anyRest...)...).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "cylinders"`)).
		WithArgs(append([]driver.Value{second, "CIL-001"}, anyRest...)...).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

	for _, owner := range []uuid.UUID{first, second} {
		cylinder := &entity.Cylinder{Code: "CIL-001", Status: entity.CylinderStatusActive}
		require.NoError(t, repo.Insert(context.Background(), owner, cylinder))
		assert.Equal(t, owner, cylinder.UserID)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCylinderRepository_UpdateMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCylinderRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "cylinders" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), uuid.New(), &entity.Cylinder{ID: 5, Code: "CIL-005"})
	assert.True(t, errors.Is(err, domainerrors.ErrCylinderNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestElementRepository_UpdateAndDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewElementRepository(db)
	owner := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "elements" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "elements" WHERE id = $1 AND user_id = $2`)).
		WithArgs(int64(3), owner).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "elements" WHERE id = $1 AND user_id = $2`)).
		WithArgs(int64(3), owner).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ctx := context.Background()
	require.NoError(t, repo.Update(ctx, owner, &entity.Element{ID: 3, Name: "Cobre", ConsumptionLPM: 1.6}))
	require.NoError(t, repo.Delete(ctx, owner, 3))
	assert.True(t, errors.Is(repo.Delete(ctx, owner, 3), domainerrors.ErrElementNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestElementRepository_InsertBatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewElementRepository(db)
	owner := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "elements"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21).AddRow(22))

	elements := []*entity.Element{
		{Name: "Cobre", ConsumptionLPM: 1.5},
		{Name: "Zinco", ConsumptionLPM: 1.5},
	}

	require.NoError(t, repo.InsertBatch(context.Background(), owner, elements))
	assert.Equal(t, int64(21), elements[0].ID)
	assert.Equal(t, int64(22), elements[1].ID)
	assert.Equal(t, owner, elements[1].UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestElementRepository_InsertBatchEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewElementRepository(db)

	require.NoError(t, repo.InsertBatch(context.Background(), uuid.New(), nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSampleRepository_Counts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSampleRepository(db)
	owner := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "samples" WHERE user_id = $1`)).
		WithArgs(owner).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "samples" WHERE user_id = $1 AND cylinder_id = $2`)).
		WithArgs(owner, int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	ctx := context.Background()

	total, err := repo.Count(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	byCylinder, err := repo.CountByCylinder(ctx, owner, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), byCylinder)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFlameTimeRepository_CountByElementError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFlameTimeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "flame_times" WHERE user_id = $1 AND element_id = $2`)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CountByElement(context.Background(), uuid.New(), 3)
	require.Error(t, err)

	var dbErr *domainerrors.DatabaseExecuteError
	assert.True(t, errors.As(err, &dbErr))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFlameTimeRepository_GetMapsReferences(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFlameTimeRepository(db)
	owner := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "flame_times" WHERE id = $1 AND user_id = $2`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "hours", "minutes", "seconds", "cylinder_id", "element_id", "created_at"}).
			AddRow(8, owner.String(), 1, 2, 3, 4, nil, time.Now()))

	record, err := repo.Get(context.Background(), owner, 8)
	require.NoError(t, err)
	assert.Equal(t, 3723, record.TotalSeconds())
	require.NotNil(t, record.CylinderID)
	assert.Equal(t, int64(4), *record.CylinderID)
	assert.Nil(t, record.ElementID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmailNormalizes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WithArgs("lab@example.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "role", "password_hash", "created_at", "updated_at"}).
			AddRow(id.String(), "lab@example.com", "Lab", "admin", "hash", time.Now(), time.Now()))

	user, err := repo.FindByEmail(context.Background(), "  Lab@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &entity.User{Email: "lab@example.com", PasswordHash: "x"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)
	owner := uuid.New()
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "cylinders"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.CylinderRepo().Delete(ctx, owner, 1)
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err = tm.Execute(ctx, func(repository.RepositoryFactory) error {
		return domainerrors.ErrHasDependents
	})
	assert.True(t, errors.Is(err, domainerrors.ErrHasDependents))
	require.NoError(t, mock.ExpectationsWereMet())
}
