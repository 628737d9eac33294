package models

import "time"

// CustomsClearance tracks one clearance episode at one port. A shipment
// may accumulate several of these.
type CustomsClearance struct {
	ID         int64     `json:"clearance_id" db:"clearance_id"`
	ShipmentID int64     `json:"shipment_id" db:"shipment_id"`
	LocationID *int64    `json:"location_id,omitempty" db:"location_id"`
	Status     string    `json:"status" db:"status"` // SUBMITTED | HOLD | RELEASED (open vocabulary)
	Notes      *string   `json:"notes,omitempty" db:"notes"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

const (
	CustomsSubmitted = "SUBMITTED"
	CustomsHold      = "HOLD"
	CustomsReleased  = "RELEASED"
)
