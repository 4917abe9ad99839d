package postgres

import (
	"context"
	_ "embed"
	"strings"

	"labgas/internal/errors"

	"gorm.io/gorm"
)

//go:embed schema.sql
var schemaSQL string

// schemaStatements splits schema.sql into individual statements.
func schemaStatements() []string {
	var statements []string

	for _, stmt := range strings.Split(schemaSQL, ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}

	return statements
}

// ApplySchema creates missing tables and indexes. Every statement is
// idempotent, so it is safe to run on each start.
func ApplySchema(ctx context.Context, db *gorm.DB) error {
	for i, stmt := range schemaStatements() {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "apply schema statement %d", i+1)
		}
	}

	return nil
}
