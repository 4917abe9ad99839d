package model

import (
	"time"

	"github.com/google/uuid"
)

// CylinderModel is the GORM-specific struct for the 'cylinders' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type CylinderModel struct {
	ID               int64     `gorm:"primaryKey;autoIncrement"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_cylinders_user_code,priority:1"`
	Code             string    `gorm:"type:varchar(64);not null;uniqueIndex:uq_cylinders_user_code,priority:2"`
	PurchaseDate     time.Time `gorm:"type:date;not null"`
	GasKg            float64   `gorm:"type:numeric(10,3);not null"`
	LitersEquivalent float64   `gorm:"type:numeric(12,3);not null"`
	Cost             float64   `gorm:"type:numeric(12,2);not null"`
	Status           string    `gorm:"type:varchar(16);not null"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (CylinderModel) TableName() string {
	return "cylinders"
}
