package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// LitersPerKilogram converts a cylinder's gas mass into gaseous liters.
	LitersPerKilogram = 956.0
	// DefaultGasKg is the mass assumed when a cylinder is created without one.
	DefaultGasKg = 1.0
	// DefaultCylinderCost is the purchase cost assumed when none is given.
	DefaultCylinderCost = 290.00
)

// CylinderStatus is advisory. Any status may move to any other.
type CylinderStatus string

const (
	CylinderStatusActive   CylinderStatus = "active"
	CylinderStatusInUse    CylinderStatus = "in_use"
	CylinderStatusDepleted CylinderStatus = "depleted"
	CylinderStatusInactive CylinderStatus = "inactive"
)

// CylinderStatuses lists the accepted statuses in display order.
var CylinderStatuses = []CylinderStatus{
	CylinderStatusActive,
	CylinderStatusInUse,
	CylinderStatusDepleted,
	CylinderStatusInactive,
}

// IsValid checks if the status is one of the known values.
func (s CylinderStatus) IsValid() bool {
	switch s {
	case CylinderStatusActive, CylinderStatusInUse, CylinderStatusDepleted, CylinderStatusInactive:
		return true
	default:
		return false
	}
}

// Cylinder is a purchased gas cylinder. Code is unique per owner.
type Cylinder struct {
	ID               int64          `json:"id"`
	UserID           uuid.UUID      `json:"user_id"`
	Code             string         `json:"code"`
	PurchaseDate     Date           `json:"purchase_date"`
	GasKg            float64        `json:"gas_kg"`
	LitersEquivalent float64        `json:"liters_equivalent"`
	Cost             float64        `json:"cost"`
	Status           CylinderStatus `json:"status"`
	CreatedAt        time.Time      `json:"created_at"`
}

// SetGasKg updates the mass and keeps LitersEquivalent in step with it.
func (c *Cylinder) SetGasKg(kg float64) {
	c.GasKg = kg
	c.LitersEquivalent = LitersForMass(kg)
}
