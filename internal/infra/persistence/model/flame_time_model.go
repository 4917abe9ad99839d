package model

import (
	"time"

	"github.com/google/uuid"
)

// FlameTimeModel mirrors the 'flame_times' table. Derived consumption is not stored.
type FlameTimeModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Hours      int       `gorm:"not null"`
	Minutes    int       `gorm:"not null"`
	Seconds    int       `gorm:"not null"`
	CylinderID *int64    `gorm:"index"`
	ElementID  *int64    `gorm:"index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FlameTimeModel) TableName() string {
	return "flame_times"
}
