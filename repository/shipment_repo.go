package repository

import "shiptrack/models"

type ShipmentRepository interface {
	// CreateShipmentWithLegs inserts the shipment, its legs and its
	// container links, and records the opening CREATED event, all in
	// one transaction.
	CreateShipmentWithLegs(s *models.Shipment) error

	GetShipments(filters map[string]interface{}, single bool) ([]*models.Shipment, error)
	GetShipmentByReference(referenceNo string) (*models.Shipment, error)
	AddLeg(leg *models.ShipmentLeg) error
	AttachContainer(shipmentID, containerID int64) error
	UpdateReportURL(shipmentID int64, url string) error
}
