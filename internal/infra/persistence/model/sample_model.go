package model

import (
	"time"

	"github.com/google/uuid"
)

// SampleModel mirrors the 'samples' table. CylinderID and ElementID are
// lookup keys without foreign key constraints.
type SampleModel struct {
	ID               int64     `gorm:"primaryKey;autoIncrement"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Date             time.Time `gorm:"type:date;not null"`
	Time             string    `gorm:"type:varchar(8);not null"`
	CylinderID       *int64    `gorm:"index"`
	ElementID        *int64    `gorm:"index"`
	FlameTimeSeconds int       `gorm:"not null"`
	Quantity         int       `gorm:"not null"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (SampleModel) TableName() string {
	return "samples"
}
