package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shiptrack/models"
)

type PostgresEventRepo struct {
	DB *sql.DB
}

func NewPostgresEventRepo(db *sql.DB) *PostgresEventRepo {
	return &PostgresEventRepo{DB: db}
}

// ------------------------ Ingest ------------------------

func (r *PostgresEventRepo) IngestEvent(ev *models.TrackingEvent) error {
	if !ev.Event.Valid() {
		return &models.ErrInvalidEnum{Field: "event", Value: string(ev.Event)}
	}
	if ev.StatusHint != nil && !ev.StatusHint.Valid() {
		return &models.ErrInvalidEnum{Field: "status_hint", Value: string(*ev.StatusHint)}
	}
	if ev.OccurredAt.IsZero() {
		return errors.New("occurred_at cannot be empty")
	}

	details, err := ev.Details.Marshal()
	if err != nil {
		return err
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Lock the shipment row so concurrent ingestions for the same
	// shipment serialize their status/location mutation.
	var status models.ShipmentStatus
	err = tx.QueryRow(`
		SELECT status FROM shipments WHERE shipment_id=$1 FOR UPDATE
	`, ev.ShipmentID).Scan(&status)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: shipment %d", ErrReference, ev.ShipmentID)
	}
	if err != nil {
		return err
	}

	err = tx.QueryRow(`
		INSERT INTO tracking_events(
			shipment_id,leg_id,container_id,vessel_id,location_id,
			event,occurred_at,status_hint,details
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT(shipment_id,occurred_at,event) DO NOTHING
		RETURNING event_id,recorded_at
	`, ev.ShipmentID, ev.LegID, ev.ContainerID, ev.VesselID, ev.LocationID,
		ev.Event, ev.OccurredAt, ev.StatusHint, details,
	).Scan(&ev.ID, &ev.RecordedAt)
	if err == sql.ErrNoRows {
		// Replay of the same upstream fact: keep the stored event,
		// apply no side effects.
		return ErrDuplicateEvent
	}
	if err != nil {
		return translateError(err)
	}

	if err := r.applySideEffects(tx, ev, status); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresEventRepo) applySideEffects(tx *sql.Tx, ev *models.TrackingEvent, current models.ShipmentStatus) error {
	if ev.StatusHint != nil {
		if next, ok := models.ApplyHint(current, *ev.StatusHint); ok {
			if _, err := tx.Exec(`
				UPDATE shipments SET status=$1, updated_at=now() WHERE shipment_id=$2
			`, next, ev.ShipmentID); err != nil {
				return translateError(err)
			}
		}
	}

	if ev.LocationID != nil {
		if _, err := tx.Exec(`
			UPDATE shipments SET current_location_id=$1, updated_at=now() WHERE shipment_id=$2
		`, ev.LocationID, ev.ShipmentID); err != nil {
			return translateError(err)
		}
	}

	switch ev.Event {
	case models.EventDepartedPort:
		if _, err := tx.Exec(`
			UPDATE shipments SET departed_at=COALESCE(departed_at,$1) WHERE shipment_id=$2
		`, ev.OccurredAt, ev.ShipmentID); err != nil {
			return translateError(err)
		}
		if ev.LegID != nil {
			if _, err := tx.Exec(`
				UPDATE shipment_legs SET status='DEPARTED' WHERE leg_id=$1 AND status='PENDING'
			`, ev.LegID); err != nil {
				return translateError(err)
			}
		}

	case models.EventArrivedPort, models.EventDischarged:
		if ev.LegID != nil {
			if _, err := tx.Exec(`
				UPDATE shipment_legs SET status='ARRIVED', ata=COALESCE(ata,$1)
				WHERE leg_id=$2 AND status NOT IN ('ARRIVED','CANCELLED')
			`, ev.OccurredAt, ev.LegID); err != nil {
				return translateError(err)
			}
		}

	case models.EventDelay:
		if ev.LegID != nil {
			if _, err := tx.Exec(`
				UPDATE shipment_legs SET status='DELAYED'
				WHERE leg_id=$1 AND status NOT IN ('ARRIVED','CANCELLED')
			`, ev.LegID); err != nil {
				return translateError(err)
			}
		}
		summary := ev.Details.String("reason")
		if summary == "" {
			summary = "carrier reported delay"
		}
		if err := r.openException(tx, ev, models.SeverityMedium, "DELAY", summary); err != nil {
			return err
		}

	case models.EventExceptionNote:
		category := ev.Details.String("category")
		if category == "" {
			category = "OTHER"
		}
		summary := ev.Details.String("summary")
		if summary == "" {
			summary = ev.Details.String("reason")
		}
		if summary == "" {
			summary = "exception reported upstream"
		}
		if err := r.openException(tx, ev, models.SeverityHigh, category, summary); err != nil {
			return err
		}

	case models.EventCustomsHold:
		var notes interface{}
		if reason := ev.Details.String("reason"); reason != "" {
			notes = reason
		}
		if _, err := tx.Exec(`
			INSERT INTO customs_clearances(shipment_id,location_id,status,notes,updated_at)
			VALUES($1,$2,'HOLD',$3,now())
		`, ev.ShipmentID, ev.LocationID, notes); err != nil {
			return translateError(err)
		}

	case models.EventCustomsRelease:
		if _, err := tx.Exec(`
			UPDATE customs_clearances SET status='RELEASED', updated_at=now()
			WHERE shipment_id=$1 AND status='HOLD'
		`, ev.ShipmentID); err != nil {
			return translateError(err)
		}

	case models.EventETAUpdate:
		if raw := ev.Details.String("eta_final"); raw != "" {
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return fmt.Errorf("%w: eta_final in event details: %v", ErrInvalidValue, err)
			}
			if _, err := tx.Exec(`
				UPDATE shipments SET eta_final=$1, updated_at=now() WHERE shipment_id=$2
			`, t, ev.ShipmentID); err != nil {
				return translateError(err)
			}
		}
		if raw := ev.Details.String("eta"); raw != "" && ev.LegID != nil {
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return fmt.Errorf("%w: eta in event details: %v", ErrInvalidValue, err)
			}
			if _, err := tx.Exec(`
				UPDATE shipment_legs SET eta=$1 WHERE leg_id=$2
			`, t, ev.LegID); err != nil {
				return translateError(err)
			}
		}
	}

	return nil
}

func (r *PostgresEventRepo) openException(tx *sql.Tx, ev *models.TrackingEvent, severity models.Severity, category, summary string) error {
	details, err := ev.Details.Marshal()
	if err != nil {
		return err
	}
	_, err = tx.Exec(`
		INSERT INTO exceptions(shipment_id,severity,category,summary,details,opened_at)
		VALUES($1,$2,$3,$4,$5,$6)
	`, ev.ShipmentID, severity, category, summary, details, ev.OccurredAt)
	return translateError(err)
}

// ------------------------ Reads ------------------------

const eventColumns = `
	event_id,shipment_id,leg_id,container_id,vessel_id,location_id,
	event,occurred_at,recorded_at,status_hint,details`

func (r *PostgresEventRepo) GetEvents(shipmentID int64) ([]*models.TrackingEvent, error) {
	rows, err := r.DB.Query(`
		SELECT `+eventColumns+`
		FROM tracking_events
		WHERE shipment_id=$1
		ORDER BY occurred_at ASC, event_id ASC
	`, shipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (r *PostgresEventRepo) GetContainerEvents(containerNo string) ([]*models.TrackingEvent, error) {
	rows, err := r.DB.Query(`
		SELECT
			e.event_id,e.shipment_id,e.leg_id,e.container_id,e.vessel_id,e.location_id,
			e.event,e.occurred_at,e.recorded_at,e.status_hint,e.details
		FROM tracking_events e
		JOIN containers c ON c.container_id = e.container_id
		WHERE c.container_no=$1
		ORDER BY e.occurred_at ASC, e.event_id ASC
	`, containerNo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]*models.TrackingEvent, error) {
	var result []*models.TrackingEvent
	for rows.Next() {
		var ev models.TrackingEvent
		var details []byte
		if err := rows.Scan(
			&ev.ID, &ev.ShipmentID, &ev.LegID, &ev.ContainerID, &ev.VesselID, &ev.LocationID,
			&ev.Event, &ev.OccurredAt, &ev.RecordedAt, &ev.StatusHint, &details,
		); err != nil {
			return nil, err
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &ev.Details); err != nil {
				return nil, err
			}
		}
		result = append(result, &ev)
	}
	return result, rows.Err()
}
