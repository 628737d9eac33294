package repository

import "shiptrack/models"

// DerivedRepository reads the derived-state views. GetRiskList reads a
// materialized classification and may lag the underlying shipment/leg
// writes by up to one refresh cycle; RefreshRisk closes that gap.
type DerivedRepository interface {
	GetLatestEvent(referenceNo string) (*models.LatestEvent, error)
	GetProgress(referenceNo string) (*models.Progress, error)

	// GetRiskList returns all classifications, or only those matching
	// status when it is non-empty.
	GetRiskList(status models.RiskStatus) ([]*models.RiskEntry, error)

	// RefreshRisk rebuilds the risk classification. Idempotent and safe
	// to run concurrently with writers.
	RefreshRisk() error
}
