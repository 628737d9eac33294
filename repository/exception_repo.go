package repository

import "shiptrack/models"

// ExceptionRepository covers the customs/exception satellite records.
// Events open these automatically (see EventRepository); these
// operations are for manual follow-up and the read side.
type ExceptionRepository interface {
	OpenException(e *models.Exception) error
	CloseException(exceptionID int64) error

	// GetOpenExceptions lists exceptions with no closed_at; shipmentID 0
	// means all shipments.
	GetOpenExceptions(shipmentID int64) ([]*models.Exception, error)

	UpsertCustoms(c *models.CustomsClearance) error
	GetCustoms(shipmentID int64) ([]*models.CustomsClearance, error)
}
