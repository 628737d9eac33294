package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"shiptrack/models"
)

type PostgresShipmentRepo struct {
	DB *sql.DB
}

func NewPostgresShipmentRepo(db *sql.DB) *PostgresShipmentRepo {
	return &PostgresShipmentRepo{DB: db}
}

// ------------------------ Create ------------------------

func (r *PostgresShipmentRepo) CreateShipmentWithLegs(s *models.Shipment) error {
	if s.ReferenceNo == "" {
		return errors.New("reference_no cannot be empty")
	}
	if s.Status == "" {
		s.Status = models.StatusCreated
	}
	if !s.Status.Valid() {
		return &models.ErrInvalidEnum{Field: "status", Value: string(s.Status)}
	}
	for i := range s.Legs {
		leg := &s.Legs[i]
		if leg.Status == "" {
			leg.Status = models.LegPending
		}
		if !leg.Status.Valid() {
			return &models.ErrInvalidEnum{Field: "leg status", Value: string(leg.Status)}
		}
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO shipments(
			reference_no,customer_id,origin_id,destination_id,status,
			incoterm,eta_final
		)
		VALUES($1,$2,$3,$4,$5,$6,$7)
		RETURNING shipment_id,created_at
	`, s.ReferenceNo, s.CustomerID, s.OriginID, s.DestinationID, s.Status,
		s.Incoterm, s.ETAFinal,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return translateError(err)
	}

	for i := range s.Legs {
		leg := &s.Legs[i]
		leg.ShipmentID = s.ID
		if err := insertLeg(tx, leg); err != nil {
			return err
		}
	}

	for _, containerID := range s.ContainerIDs {
		if _, err := tx.Exec(`
			INSERT INTO shipment_containers(shipment_id,container_id) VALUES($1,$2)
		`, s.ID, containerID); err != nil {
			return translateError(err)
		}
	}

	// The booking itself is the first fact in the event log.
	if _, err := tx.Exec(`
		INSERT INTO tracking_events(shipment_id,location_id,event,occurred_at,status_hint)
		VALUES($1,$2,'CREATED',$3,'CREATED')
		ON CONFLICT(shipment_id,occurred_at,event) DO NOTHING
	`, s.ID, s.OriginID, s.CreatedAt); err != nil {
		return translateError(err)
	}

	return tx.Commit()
}

func insertLeg(tx *sql.Tx, leg *models.ShipmentLeg) error {
	err := tx.QueryRow(`
		INSERT INTO shipment_legs(
			shipment_id,leg_no,mode,carrier_id,vessel_id,
			origin_id,destination_id,etd,eta,ata,status
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING leg_id
	`, leg.ShipmentID, leg.LegNo, leg.Mode, leg.CarrierID, leg.VesselID,
		leg.OriginID, leg.DestinationID, leg.ETD, leg.ETA, leg.ATA, leg.Status,
	).Scan(&leg.ID)
	return translateError(err)
}

func (r *PostgresShipmentRepo) AddLeg(leg *models.ShipmentLeg) error {
	if leg.Status == "" {
		leg.Status = models.LegPending
	}
	if !leg.Status.Valid() {
		return &models.ErrInvalidEnum{Field: "leg status", Value: string(leg.Status)}
	}
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if err := insertLeg(tx, leg); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PostgresShipmentRepo) AttachContainer(shipmentID, containerID int64) error {
	_, err := r.DB.Exec(`
		INSERT INTO shipment_containers(shipment_id,container_id)
		VALUES($1,$2)
		ON CONFLICT DO NOTHING
	`, shipmentID, containerID)
	return translateError(err)
}

func (r *PostgresShipmentRepo) UpdateReportURL(shipmentID int64, url string) error {
	res, err := r.DB.Exec(`
		UPDATE shipments SET report_url=$1, updated_at=now() WHERE shipment_id=$2
	`, url, shipmentID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: shipment %d", ErrNotFound, shipmentID)
	}
	return nil
}

// ------------------------ GetShipments ------------------------

// Filter keys accepted from callers; anything else is rejected rather
// than interpolated into SQL.
var shipmentFilterColumns = map[string]string{
	"shipment_id":  "s.shipment_id",
	"reference_no": "s.reference_no",
	"customer_id":  "s.customer_id",
	"status":       "s.status",
}

func (r *PostgresShipmentRepo) GetShipments(filters map[string]interface{}, single bool) ([]*models.Shipment, error) {
	query := `
		SELECT
			s.shipment_id, s.reference_no, s.customer_id, s.origin_id, s.destination_id,
			s.status, s.incoterm, s.eta_final, s.departed_at, s.current_location_id,
			s.report_url, s.created_at, s.updated_at,

			-- Customer
			c.customer_id, c.name, c.account_code, c.contact_email, c.created_at,
			-- Origin
			lo.location_id, lo.name, lo.unlocode, lo.country_code, lo.timezone, lo.latitude, lo.longitude, lo.created_at,
			-- Destination
			ld.location_id, ld.name, ld.unlocode, ld.country_code, ld.timezone, ld.latitude, ld.longitude, ld.created_at,
			-- Current location
			lc.location_id, lc.name, lc.unlocode, lc.country_code, lc.timezone, lc.latitude, lc.longitude, lc.created_at
		FROM shipments s
		LEFT JOIN customers c ON s.customer_id = c.customer_id
		LEFT JOIN locations lo ON s.origin_id = lo.location_id
		LEFT JOIN locations ld ON s.destination_id = ld.location_id
		LEFT JOIN locations lc ON s.current_location_id = lc.location_id
	`

	args := []interface{}{}
	where := []string{}
	i := 1
	for k, v := range filters {
		col, ok := shipmentFilterColumns[k]
		if !ok {
			return nil, fmt.Errorf("unsupported filter: %s", k)
		}
		where = append(where, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, v)
		i++
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	if !single {
		query += " ORDER BY s.created_at DESC"
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Shipment
	for rows.Next() {
		var s models.Shipment
		var customer models.Customer
		var origin, destination models.Location
		var currentID *int64
		var currentName, currentUnlocode, currentCountry, currentTZ *string
		var currentLat, currentLon *float64
		var currentCreated *time.Time

		err := rows.Scan(
			&s.ID, &s.ReferenceNo, &s.CustomerID, &s.OriginID, &s.DestinationID,
			&s.Status, &s.Incoterm, &s.ETAFinal, &s.DepartedAt, &s.CurrentLocationID,
			&s.ReportURL, &s.CreatedAt, &s.UpdatedAt,

			&customer.ID, &customer.Name, &customer.AccountCode, &customer.ContactEmail, &customer.CreatedAt,
			&origin.ID, &origin.Name, &origin.Unlocode, &origin.CountryCode, &origin.Timezone, &origin.Latitude, &origin.Longitude, &origin.CreatedAt,
			&destination.ID, &destination.Name, &destination.Unlocode, &destination.CountryCode, &destination.Timezone, &destination.Latitude, &destination.Longitude, &destination.CreatedAt,
			&currentID, &currentName, &currentUnlocode, &currentCountry, &currentTZ, &currentLat, &currentLon, &currentCreated,
		)
		if err != nil {
			return nil, err
		}

		if customer.ID != 0 {
			s.Customer = &customer
		}
		if origin.ID != 0 {
			s.Origin = &origin
		}
		if destination.ID != 0 {
			s.Destination = &destination
		}
		if currentID != nil {
			s.CurrentLocation = &models.Location{
				ID: *currentID, Name: *currentName, Unlocode: *currentUnlocode,
				CountryCode: *currentCountry, Timezone: currentTZ,
				Latitude: currentLat, Longitude: currentLon, CreatedAt: *currentCreated,
			}
		}

		result = append(result, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Load all legs and container links in one go (to avoid N+1)
	if len(result) > 0 {
		byID := make(map[int64]*models.Shipment, len(result))
		ids := make([]int64, 0, len(result))
		for _, s := range result {
			byID[s.ID] = s
			ids = append(ids, s.ID)
		}

		legRows, err := r.DB.Query(`
			SELECT leg_id,shipment_id,leg_no,mode,carrier_id,vessel_id,
			       origin_id,destination_id,etd,eta,ata,status
			FROM shipment_legs
			WHERE shipment_id = ANY($1)
			ORDER BY shipment_id, leg_no
		`, pq.Array(ids))
		if err != nil {
			return nil, err
		}
		defer legRows.Close()
		for legRows.Next() {
			var leg models.ShipmentLeg
			if err := legRows.Scan(
				&leg.ID, &leg.ShipmentID, &leg.LegNo, &leg.Mode, &leg.CarrierID, &leg.VesselID,
				&leg.OriginID, &leg.DestinationID, &leg.ETD, &leg.ETA, &leg.ATA, &leg.Status,
			); err != nil {
				return nil, err
			}
			if s, ok := byID[leg.ShipmentID]; ok {
				s.Legs = append(s.Legs, leg)
			}
		}
		if err := legRows.Err(); err != nil {
			return nil, err
		}

		linkRows, err := r.DB.Query(`
			SELECT shipment_id, container_id
			FROM shipment_containers
			WHERE shipment_id = ANY($1)
		`, pq.Array(ids))
		if err != nil {
			return nil, err
		}
		defer linkRows.Close()
		for linkRows.Next() {
			var shipmentID, containerID int64
			if err := linkRows.Scan(&shipmentID, &containerID); err != nil {
				return nil, err
			}
			if s, ok := byID[shipmentID]; ok {
				s.ContainerIDs = append(s.ContainerIDs, containerID)
			}
		}
		if err := linkRows.Err(); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (r *PostgresShipmentRepo) GetShipmentByReference(referenceNo string) (*models.Shipment, error) {
	list, err := r.GetShipments(map[string]interface{}{"reference_no": referenceNo}, true)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: shipment %s", ErrNotFound, referenceNo)
	}
	return list[0], nil
}
