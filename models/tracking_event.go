package models

import (
	"encoding/json"
	"time"
)

// Payload is the freeform event detail document. It is stored opaquely
// as JSONB and round-trips structurally; no shape is imposed on it.
type Payload map[string]interface{}

// String returns the value for key if it is a string, else "".
func (p Payload) String(key string) string {
	if p == nil {
		return ""
	}
	if s, ok := p[key].(string); ok {
		return s
	}
	return ""
}

func (p Payload) Marshal() ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

// TrackingEvent is a row of the append-only event log. Rows are never
// updated or deleted once written.
type TrackingEvent struct {
	ID          int64           `json:"event_id" db:"event_id"`
	ShipmentID  int64           `json:"shipment_id" db:"shipment_id"`
	LegID       *int64          `json:"leg_id,omitempty" db:"leg_id"`
	ContainerID *int64          `json:"container_id,omitempty" db:"container_id"`
	VesselID    *int64          `json:"vessel_id,omitempty" db:"vessel_id"`
	LocationID  *int64          `json:"location_id,omitempty" db:"location_id"`
	Event       EventKind       `json:"event" db:"event"`
	OccurredAt  time.Time       `json:"occurred_at" db:"occurred_at"`
	RecordedAt  time.Time       `json:"recorded_at" db:"recorded_at"`
	StatusHint  *ShipmentStatus `json:"status_hint,omitempty" db:"status_hint"`
	Details     Payload         `json:"details,omitempty" db:"details"`
}

// LatestOf mirrors the selection rule of v_shipment_latest_event: the
// highest occurred_at wins, ties fall back to the highest event_id
// (insertion order, not business order). Nil when events is empty.
func LatestOf(events []*TrackingEvent) *TrackingEvent {
	var latest *TrackingEvent
	for _, ev := range events {
		if latest == nil ||
			ev.OccurredAt.After(latest.OccurredAt) ||
			(ev.OccurredAt.Equal(latest.OccurredAt) && ev.ID > latest.ID) {
			latest = ev
		}
	}
	return latest
}

// LatestEvent is a row of v_shipment_latest_event, joined with the
// shipment and location for the "what's happening now" read.
type LatestEvent struct {
	ShipmentID   int64     `json:"shipment_id" db:"shipment_id"`
	ReferenceNo  string    `json:"reference_no" db:"reference_no"`
	Status       string    `json:"status" db:"status"`
	Event        EventKind `json:"event" db:"event"`
	LocationName *string   `json:"current_location,omitempty" db:"current_location"`
	Unlocode     *string   `json:"unlocode,omitempty" db:"unlocode"`
	OccurredAt   time.Time `json:"occurred_at" db:"occurred_at"`
	Details      Payload   `json:"details,omitempty" db:"details"`
}

// Progress is a row of v_shipment_current_progress: the shipment joined
// to its highest-numbered leg.
type Progress struct {
	ShipmentID       int64      `json:"shipment_id" db:"shipment_id"`
	ReferenceNo      string     `json:"reference_no" db:"reference_no"`
	ShipmentStatus   string     `json:"shipment_status" db:"shipment_status"`
	LegID            *int64     `json:"leg_id,omitempty" db:"leg_id"`
	LegNo            *int       `json:"leg_no,omitempty" db:"leg_no"`
	Mode             *string    `json:"mode,omitempty" db:"mode"`
	LegStatus        *string    `json:"leg_status,omitempty" db:"leg_status"`
	LegOriginID      *int64     `json:"leg_origin_id,omitempty" db:"leg_origin_id"`
	LegDestinationID *int64     `json:"leg_destination_id,omitempty" db:"leg_destination_id"`
	ETD              *time.Time `json:"etd,omitempty" db:"etd"`
	ETA              *time.Time `json:"eta,omitempty" db:"eta"`
	ATA              *time.Time `json:"ata,omitempty" db:"ata"`
}
