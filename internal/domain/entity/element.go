package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultConsumptionLPM is the flame consumption rate assumed when none is given.
const DefaultConsumptionLPM = 1.5

// Element is an analyte measured on the spectrometer together with the
// acetylene flow its flame consumes. Name is unique per owner.
type Element struct {
	ID             int64     `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Name           string    `json:"name"`
	ConsumptionLPM float64   `json:"consumption_lpm"`
	CreatedAt      time.Time `json:"created_at"`
}
