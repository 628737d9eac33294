package repository

import "shiptrack/models"

type EventRepository interface {
	// IngestEvent appends a tracking event and applies its side effects
	// (status hint, current location, leg status, customs/exception
	// records) in one transaction. Returns ErrDuplicateEvent when the
	// (shipment, occurred_at, event) triple is already recorded.
	IngestEvent(ev *models.TrackingEvent) error

	GetEvents(shipmentID int64) ([]*models.TrackingEvent, error)
	GetContainerEvents(containerNo string) ([]*models.TrackingEvent, error)
}
