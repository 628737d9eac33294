package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"shiptrack/models"
)

type PostgresExceptionRepo struct {
	DB *sql.DB
}

func NewPostgresExceptionRepo(db *sql.DB) *PostgresExceptionRepo {
	return &PostgresExceptionRepo{DB: db}
}

// ------------------------ Exceptions ------------------------

func (r *PostgresExceptionRepo) OpenException(e *models.Exception) error {
	if !e.Severity.Valid() {
		return &models.ErrInvalidEnum{Field: "severity", Value: string(e.Severity)}
	}
	if e.Category == "" || e.Summary == "" {
		return errors.New("category and summary are required")
	}
	details, err := e.Details.Marshal()
	if err != nil {
		return err
	}
	err = r.DB.QueryRow(`
		INSERT INTO exceptions(shipment_id,severity,category,summary,details)
		VALUES($1,$2,$3,$4,$5)
		RETURNING exception_id,opened_at
	`, e.ShipmentID, e.Severity, e.Category, e.Summary, details,
	).Scan(&e.ID, &e.OpenedAt)
	return translateError(err)
}

func (r *PostgresExceptionRepo) CloseException(exceptionID int64) error {
	res, err := r.DB.Exec(`
		UPDATE exceptions SET closed_at=now()
		WHERE exception_id=$1 AND closed_at IS NULL
	`, exceptionID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: open exception %d", ErrNotFound, exceptionID)
	}
	return nil
}

func (r *PostgresExceptionRepo) GetOpenExceptions(shipmentID int64) ([]*models.Exception, error) {
	query := `
		SELECT exception_id,shipment_id,severity,category,summary,details,opened_at,closed_at
		FROM exceptions
		WHERE closed_at IS NULL
	`
	args := []interface{}{}
	if shipmentID != 0 {
		query += " AND shipment_id=$1"
		args = append(args, shipmentID)
	}
	query += " ORDER BY opened_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Exception
	for rows.Next() {
		var e models.Exception
		var details []byte
		if err := rows.Scan(&e.ID, &e.ShipmentID, &e.Severity, &e.Category,
			&e.Summary, &details, &e.OpenedAt, &e.ClosedAt); err != nil {
			return nil, err
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &e.Details); err != nil {
				return nil, err
			}
		}
		result = append(result, &e)
	}
	return result, rows.Err()
}

// ------------------------ Customs ------------------------

func (r *PostgresExceptionRepo) UpsertCustoms(c *models.CustomsClearance) error {
	if c.Status == "" {
		c.Status = models.CustomsSubmitted
	}
	if c.ID != 0 {
		res, err := r.DB.Exec(`
			UPDATE customs_clearances SET status=$1, notes=$2, updated_at=now()
			WHERE clearance_id=$3
		`, c.Status, c.Notes, c.ID)
		if err != nil {
			return translateError(err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("%w: clearance %d", ErrNotFound, c.ID)
		}
		return nil
	}
	err := r.DB.QueryRow(`
		INSERT INTO customs_clearances(shipment_id,location_id,status,notes)
		VALUES($1,$2,$3,$4)
		RETURNING clearance_id,updated_at
	`, c.ShipmentID, c.LocationID, c.Status, c.Notes).Scan(&c.ID, &c.UpdatedAt)
	return translateError(err)
}

func (r *PostgresExceptionRepo) GetCustoms(shipmentID int64) ([]*models.CustomsClearance, error) {
	rows, err := r.DB.Query(`
		SELECT clearance_id,shipment_id,location_id,status,notes,updated_at
		FROM customs_clearances
		WHERE shipment_id=$1
		ORDER BY updated_at DESC
	`, shipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.CustomsClearance
	for rows.Next() {
		var c models.CustomsClearance
		if err := rows.Scan(&c.ID, &c.ShipmentID, &c.LocationID, &c.Status, &c.Notes, &c.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, &c)
	}
	return result, rows.Err()
}
