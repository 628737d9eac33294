package repository

import (
	"time"

	"shiptrack/models"
)

// RawFeedMessage is the verbatim upstream message behind an ingested
// event, kept for audit and replay. The relational store stays
// authoritative; the archive is advisory.
type RawFeedMessage struct {
	ShipmentID int64          `bson:"shipment_id"`
	Event      string         `bson:"event"`
	OccurredAt time.Time      `bson:"occurred_at"`
	ReceivedAt time.Time      `bson:"received_at"`
	Source     string         `bson:"source,omitempty"`
	Body       models.Payload `bson:"body,omitempty"`
}

type ArchiveRepository interface {
	ArchiveRaw(msg *RawFeedMessage) error
	GetRawByShipment(shipmentID int64) ([]*RawFeedMessage, error)
}
