package model

import (
	"time"

	"github.com/google/uuid"
)

// ElementModel mirrors the 'elements' table.
type ElementModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_elements_user_name,priority:1"`
	Name           string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_elements_user_name,priority:2"`
	ConsumptionLPM float64   `gorm:"column:consumption_lpm;type:numeric(8,3);not null"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ElementModel) TableName() string {
	return "elements"
}
