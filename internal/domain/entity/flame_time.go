package entity

import (
	"time"

	"github.com/google/uuid"
)

// FlameTimeRecord is a measured flame duration. Consumption is never stored;
// it is derived from the element's current rate at read time.
type FlameTimeRecord struct {
	ID         int64     `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Hours      int       `json:"hours"`
	Minutes    int       `json:"minutes"`
	Seconds    int       `json:"seconds"`
	CylinderID *int64    `json:"cylinder_id"`
	ElementID  *int64    `json:"element_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// TotalSeconds returns h*3600 + m*60 + s.
func (f *FlameTimeRecord) TotalSeconds() int {
	return f.Hours*3600 + f.Minutes*60 + f.Seconds
}

// FlameTimeView is a record with its derived fields resolved.
type FlameTimeView struct {
	*FlameTimeRecord
	TotalSeconds      int     `json:"total_seconds"`
	ConsumptionLiters float64 `json:"consumption_liters"`
	CylinderCode      string  `json:"cylinder_code"`
	ElementName       string  `json:"element_name"`
}

// ConsumptionSummary aggregates flame time consumption for one owner.
type ConsumptionSummary struct {
	TotalSeconds     int                `json:"total_seconds"`
	TotalLiters      float64            `json:"total_liters"`
	TotalKilograms   float64            `json:"total_kilograms"`
	LitersByElement  map[string]float64 `json:"liters_by_element"`
	LitersByCylinder map[string]float64 `json:"liters_by_cylinder"`
	RecordCount      int                `json:"record_count"`
}

// RecordCounts is the number of records an owner has of each kind.
type RecordCounts struct {
	Cylinders  int64 `json:"cylinders"`
	Elements   int64 `json:"elements"`
	Samples    int64 `json:"samples"`
	FlameTimes int64 `json:"flame_times"`

	// StatusCounts holds every CylinderStatuses entry, zero when unused.
	StatusCounts map[CylinderStatus]int64 `json:"status_counts"`
}
