package models

import "time"

type RiskStatus string

const (
	RiskUnknown RiskStatus = "UNKNOWN"
	RiskAtRisk  RiskStatus = "AT_RISK"
	RiskOnTrack RiskStatus = "ON_TRACK"
)

func (s RiskStatus) Valid() bool {
	switch s {
	case RiskUnknown, RiskAtRisk, RiskOnTrack:
		return true
	}
	return false
}

// RiskEntry is one row of the materialized risk classification. Results
// may lag the underlying shipment/leg writes by up to one refresh cycle.
type RiskEntry struct {
	ShipmentID  int64      `json:"shipment_id" db:"shipment_id"`
	ReferenceNo string     `json:"reference_no" db:"reference_no"`
	ETA         *time.Time `json:"eta,omitempty" db:"eta"`
	ETAFinal    *time.Time `json:"eta_final,omitempty" db:"eta_final"`
	ETAStatus   RiskStatus `json:"eta_status" db:"eta_status"`
}

// ClassifyRisk mirrors the CASE expression in mv_eta_risk: no current-leg
// ETA means UNKNOWN, a leg ETA past the committed final ETA means AT_RISK.
func ClassifyRisk(etaFinal, legETA *time.Time) RiskStatus {
	if legETA == nil {
		return RiskUnknown
	}
	if etaFinal != nil && legETA.After(*etaFinal) {
		return RiskAtRisk
	}
	return RiskOnTrack
}
