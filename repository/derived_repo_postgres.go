package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"shiptrack/models"
)

type PostgresDerivedRepo struct {
	DB *sql.DB
}

func NewPostgresDerivedRepo(db *sql.DB) *PostgresDerivedRepo {
	return &PostgresDerivedRepo{DB: db}
}

func (r *PostgresDerivedRepo) GetLatestEvent(referenceNo string) (*models.LatestEvent, error) {
	var le models.LatestEvent
	var details []byte
	err := r.DB.QueryRow(`
		SELECT s.shipment_id, s.reference_no, s.status,
		       le.event, loc.name AS current_location, loc.unlocode,
		       le.occurred_at, le.details
		FROM shipments s
		JOIN v_shipment_latest_event le ON le.shipment_id = s.shipment_id
		LEFT JOIN locations loc ON loc.location_id = le.location_id
		WHERE s.reference_no = $1
	`, referenceNo).Scan(
		&le.ShipmentID, &le.ReferenceNo, &le.Status,
		&le.Event, &le.LocationName, &le.Unlocode,
		&le.OccurredAt, &details,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: shipment %s", ErrNotFound, referenceNo)
	}
	if err != nil {
		return nil, err
	}
	if len(details) > 0 {
		if err := json.Unmarshal(details, &le.Details); err != nil {
			return nil, err
		}
	}
	return &le, nil
}

func (r *PostgresDerivedRepo) GetProgress(referenceNo string) (*models.Progress, error) {
	var p models.Progress
	err := r.DB.QueryRow(`
		SELECT shipment_id, reference_no, shipment_status,
		       leg_id, leg_no, mode, leg_status,
		       leg_origin_id, leg_destination_id, etd, eta, ata
		FROM v_shipment_current_progress
		WHERE reference_no = $1
	`, referenceNo).Scan(
		&p.ShipmentID, &p.ReferenceNo, &p.ShipmentStatus,
		&p.LegID, &p.LegNo, &p.Mode, &p.LegStatus,
		&p.LegOriginID, &p.LegDestinationID, &p.ETD, &p.ETA, &p.ATA,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: shipment %s", ErrNotFound, referenceNo)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresDerivedRepo) GetRiskList(status models.RiskStatus) ([]*models.RiskEntry, error) {
	if status != "" && !status.Valid() {
		return nil, &models.ErrInvalidEnum{Field: "eta_status", Value: string(status)}
	}

	query := `
		SELECT shipment_id, reference_no, eta, eta_final, eta_status
		FROM mv_eta_risk
	`
	args := []interface{}{}
	if status != "" {
		query += " WHERE eta_status = $1"
		args = append(args, string(status))
	}
	query += " ORDER BY eta DESC NULLS LAST"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.RiskEntry
	for rows.Next() {
		var e models.RiskEntry
		if err := rows.Scan(&e.ShipmentID, &e.ReferenceNo, &e.ETA, &e.ETAFinal, &e.ETAStatus); err != nil {
			return nil, err
		}
		result = append(result, &e)
	}
	return result, rows.Err()
}

func (r *PostgresDerivedRepo) RefreshRisk() error {
	// CONCURRENTLY so readers keep the previous snapshot and writers
	// are never blocked while the classification rebuilds.
	_, err := r.DB.Exec(`REFRESH MATERIALIZED VIEW CONCURRENTLY mv_eta_risk`)
	return err
}
