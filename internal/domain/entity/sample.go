package entity

import (
	"time"

	"github.com/google/uuid"
)

// Sample is one analysis run. Cylinder and element are weak references.
type Sample struct {
	ID               int64     `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	Date             Date      `json:"date"`
	Time             string    `json:"time"`
	CylinderID       *int64    `json:"cylinder_id"`
	ElementID        *int64    `json:"element_id"`
	FlameTimeSeconds int       `json:"flame_time_seconds"`
	Quantity         int       `json:"quantity"`
	CreatedAt        time.Time `json:"created_at"`
}

// SampleView is a sample joined with the display names of its references.
// Names are empty when the reference is unset or no longer exists.
type SampleView struct {
	*Sample
	CylinderCode string `json:"cylinder_code"`
	ElementName  string `json:"element_name"`
}
