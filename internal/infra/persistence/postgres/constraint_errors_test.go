package postgres

import (
	"testing"

	"labgas/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintClassification(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "uq_cylinders_user_code"}
	notNull := &pgconn.PgError{Code: "23502", ColumnName: "code"}
	check := &pgconn.PgError{Code: "23514"}

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(unique, "insert")))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(notNull))
	assert.False(t, isUniqueConstraintViolation(errors.New("boom")))

	assert.True(t, isNotNullConstraintViolation(notNull))
	assert.False(t, isNotNullConstraintViolation(unique))

	assert.True(t, isCheckConstraintViolation(check))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.False(t, isCheckConstraintViolation(unique))
}
