package models

import "time"

type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

func (s Severity) Valid() bool {
	return s == SeverityLow || s == SeverityMedium || s == SeverityHigh
}

// Exception is a per-shipment anomaly record. Open while closed_at is
// null; closed when resolved; never deleted.
type Exception struct {
	ID         int64      `json:"exception_id" db:"exception_id"`
	ShipmentID int64      `json:"shipment_id" db:"shipment_id"`
	Severity   Severity   `json:"severity" db:"severity"`
	Category   string     `json:"category" db:"category"` // DELAY, DAMAGE, DOCUMENTS, CUSTOMS, WEATHER, ...
	Summary    string     `json:"summary" db:"summary"`
	Details    Payload    `json:"details,omitempty" db:"details"`
	OpenedAt   time.Time  `json:"opened_at" db:"opened_at"`
	ClosedAt   *time.Time `json:"closed_at,omitempty" db:"closed_at"`
}
