package repository

import "shiptrack/models"

// ReportRepository combines the reads a status report needs.
type ReportRepository struct {
	ShipmentRepo ShipmentRepository
	DerivedRepo  DerivedRepository
	EventRepo    EventRepository
}

type ReportData struct {
	Shipment *models.Shipment
	Progress *models.Progress
	Events   []*models.TrackingEvent
	Risk     models.RiskStatus
}

func (r *ReportRepository) GetReportData(referenceNo string) (*ReportData, error) {
	s, err := r.ShipmentRepo.GetShipmentByReference(referenceNo)
	if err != nil {
		return nil, err
	}
	p, err := r.DerivedRepo.GetProgress(referenceNo)
	if err != nil {
		return nil, err
	}
	events, err := r.EventRepo.GetEvents(s.ID)
	if err != nil {
		return nil, err
	}
	// Classified live for the report; the materialized view serves the
	// list endpoints.
	risk := models.ClassifyRisk(s.ETAFinal, p.ETA)

	return &ReportData{Shipment: s, Progress: p, Events: events, Risk: risk}, nil
}
