package models

import "time"

type Shipment struct {
	ID                int64          `json:"shipment_id" db:"shipment_id"`
	ReferenceNo       string         `json:"reference_no" db:"reference_no"`
	CustomerID        int64          `json:"customer_id" db:"customer_id"`
	OriginID          int64          `json:"origin_id" db:"origin_id"`
	DestinationID     int64          `json:"destination_id" db:"destination_id"`
	Status            ShipmentStatus `json:"status" db:"status"`
	Incoterm          *string        `json:"incoterm,omitempty" db:"incoterm"`
	ETAFinal          *time.Time     `json:"eta_final,omitempty" db:"eta_final"`
	DepartedAt        *time.Time     `json:"departed_at,omitempty" db:"departed_at"`
	CurrentLocationID *int64         `json:"current_location_id,omitempty" db:"current_location_id"`
	ReportURL         *string        `json:"report_url,omitempty" db:"report_url"`
	CreatedAt         time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt         *time.Time     `json:"updated_at,omitempty" db:"updated_at"`

	// Nested objects for responses (denormalized)
	Customer        *Customer     `json:"customer,omitempty"`
	Origin          *Location     `json:"origin,omitempty"`
	Destination     *Location     `json:"destination,omitempty"`
	CurrentLocation *Location     `json:"current_location,omitempty"`
	Legs            []ShipmentLeg `json:"legs,omitempty"`
	ContainerIDs    []int64       `json:"container_ids,omitempty"`
}

// CurrentLeg mirrors the selection rule of v_shipment_current_progress:
// the leg with the highest leg_no is current, positional not temporal.
// A later leg with no events yet is still the current leg. Nil when the
// shipment has no legs.
func CurrentLeg(legs []ShipmentLeg) *ShipmentLeg {
	var cur *ShipmentLeg
	for i := range legs {
		if cur == nil || legs[i].LegNo > cur.LegNo {
			cur = &legs[i]
		}
	}
	return cur
}

type ShipmentLeg struct {
	ID            int64      `json:"leg_id" db:"leg_id"`
	ShipmentID    int64      `json:"shipment_id" db:"shipment_id"`
	LegNo         int        `json:"leg_no" db:"leg_no"`
	Mode          string     `json:"mode" db:"mode"`
	CarrierID     *int64     `json:"carrier_id,omitempty" db:"carrier_id"`
	VesselID      *int64     `json:"vessel_id,omitempty" db:"vessel_id"`
	OriginID      int64      `json:"origin_id" db:"origin_id"`
	DestinationID int64      `json:"destination_id" db:"destination_id"`
	ETD           *time.Time `json:"etd,omitempty" db:"etd"`
	ETA           *time.Time `json:"eta,omitempty" db:"eta"`
	ATA           *time.Time `json:"ata,omitempty" db:"ata"`
	Status        LegStatus  `json:"status" db:"status"`
}
