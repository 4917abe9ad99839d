package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaStatements(t *testing.T) {
	statements := schemaStatements()

	require.Len(t, statements, 15)
	assert.Contains(t, statements[0], "pgcrypto")
	for _, stmt := range statements {
		assert.NotContains(t, stmt, ";")
	}
}

func TestSchemaStatements_UniquenessIsPerOwner(t *testing.T) {
	statements := schemaStatements()

	assert.Contains(t, statements, "CREATE UNIQUE INDEX IF NOT EXISTS uq_cylinders_user_code ON cylinders (user_id, code)")
	assert.Contains(t, statements, "CREATE UNIQUE INDEX IF NOT EXISTS uq_elements_user_name ON elements (user_id, name)")
}

func TestApplySchema(t *testing.T) {
	db, mock := newMockDB(t)

	for range schemaStatements() {
		mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, ApplySchema(context.Background(), db))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplySchema_StopsOnError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(".*").WillReturnError(assert.AnError)

	err := ApplySchema(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "statement 2")
	require.NoError(t, mock.ExpectationsWereMet())
}
