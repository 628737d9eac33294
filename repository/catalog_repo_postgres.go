package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"shiptrack/models"
)

type PostgresCatalogRepo struct {
	DB *sql.DB
}

func NewPostgresCatalogRepo(db *sql.DB) *PostgresCatalogRepo {
	return &PostgresCatalogRepo{DB: db}
}

// ------------------------ Locations ------------------------

func (r *PostgresCatalogRepo) CreateLocation(loc *models.Location) error {
	if loc.Name == "" || loc.Unlocode == "" || loc.CountryCode == "" {
		return errors.New("name, unlocode and country_code are required")
	}
	err := r.DB.QueryRow(`
		INSERT INTO locations(name,unlocode,country_code,timezone,latitude,longitude)
		VALUES($1,$2,$3,$4,$5,$6)
		RETURNING location_id,created_at
	`, loc.Name, loc.Unlocode, loc.CountryCode, loc.Timezone, loc.Latitude, loc.Longitude,
	).Scan(&loc.ID, &loc.CreatedAt)
	return translateError(err)
}

func (r *PostgresCatalogRepo) GetLocations() ([]*models.Location, error) {
	rows, err := r.DB.Query(`
		SELECT location_id,name,unlocode,country_code,timezone,latitude,longitude,created_at
		FROM locations ORDER BY unlocode
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Location
	for rows.Next() {
		var loc models.Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Unlocode, &loc.CountryCode,
			&loc.Timezone, &loc.Latitude, &loc.Longitude, &loc.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &loc)
	}
	return result, rows.Err()
}

func (r *PostgresCatalogRepo) GetLocationByUnlocode(unlocode string) (*models.Location, error) {
	var loc models.Location
	err := r.DB.QueryRow(`
		SELECT location_id,name,unlocode,country_code,timezone,latitude,longitude,created_at
		FROM locations WHERE unlocode=$1
	`, unlocode).Scan(&loc.ID, &loc.Name, &loc.Unlocode, &loc.CountryCode,
		&loc.Timezone, &loc.Latitude, &loc.Longitude, &loc.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: location %s", ErrNotFound, unlocode)
	}
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

// ------------------------ Carriers ------------------------

func (r *PostgresCatalogRepo) CreateCarrier(c *models.Carrier) error {
	if c.Name == "" || c.SCAC == "" {
		return errors.New("name and scac are required")
	}
	err := r.DB.QueryRow(`
		INSERT INTO carriers(name,scac) VALUES($1,$2)
		RETURNING carrier_id,created_at
	`, c.Name, c.SCAC).Scan(&c.ID, &c.CreatedAt)
	return translateError(err)
}

func (r *PostgresCatalogRepo) GetCarriers() ([]*models.Carrier, error) {
	rows, err := r.DB.Query(`SELECT carrier_id,name,scac,created_at FROM carriers ORDER BY scac`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Carrier
	for rows.Next() {
		var c models.Carrier
		if err := rows.Scan(&c.ID, &c.Name, &c.SCAC, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &c)
	}
	return result, rows.Err()
}

// ------------------------ Vessels ------------------------

func (r *PostgresCatalogRepo) CreateVessel(v *models.Vessel) error {
	if v.Name == "" {
		return errors.New("name is required")
	}
	err := r.DB.QueryRow(`
		INSERT INTO vessels(name,imo_no,mmsi,carrier_id,active)
		VALUES($1,$2,$3,$4,$5)
		RETURNING vessel_id,created_at
	`, v.Name, v.IMONo, v.MMSI, v.CarrierID, v.Active).Scan(&v.ID, &v.CreatedAt)
	return translateError(err)
}

func (r *PostgresCatalogRepo) GetVessels() ([]*models.Vessel, error) {
	rows, err := r.DB.Query(`
		SELECT vessel_id,name,imo_no,mmsi,carrier_id,active,created_at
		FROM vessels ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Vessel
	for rows.Next() {
		var v models.Vessel
		if err := rows.Scan(&v.ID, &v.Name, &v.IMONo, &v.MMSI, &v.CarrierID, &v.Active, &v.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &v)
	}
	return result, rows.Err()
}

// ------------------------ Containers ------------------------

func (r *PostgresCatalogRepo) CreateContainer(c *models.Container) error {
	if !models.ValidContainerNo(c.ContainerNo) {
		return fmt.Errorf("invalid container number: %q", c.ContainerNo)
	}
	if !c.Type.Valid() {
		return &models.ErrInvalidEnum{Field: "container type", Value: string(c.Type)}
	}
	err := r.DB.QueryRow(`
		INSERT INTO containers(container_no,type,carrier_id,reefer_setpoint_c,active)
		VALUES($1,$2,$3,$4,$5)
		RETURNING container_id,created_at
	`, c.ContainerNo, c.Type, c.CarrierID, c.ReeferSetpointC, c.Active).Scan(&c.ID, &c.CreatedAt)
	return translateError(err)
}

func (r *PostgresCatalogRepo) GetContainers() ([]*models.Container, error) {
	rows, err := r.DB.Query(`
		SELECT container_id,container_no,type,carrier_id,reefer_setpoint_c,active,created_at
		FROM containers ORDER BY container_no
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Container
	for rows.Next() {
		var c models.Container
		if err := rows.Scan(&c.ID, &c.ContainerNo, &c.Type, &c.CarrierID,
			&c.ReeferSetpointC, &c.Active, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &c)
	}
	return result, rows.Err()
}

// ------------------------ Customers ------------------------

func (r *PostgresCatalogRepo) CreateCustomer(c *models.Customer) error {
	if c.Name == "" || c.AccountCode == "" {
		return errors.New("name and account_code are required")
	}
	err := r.DB.QueryRow(`
		INSERT INTO customers(name,account_code,contact_email)
		VALUES($1,$2,$3)
		RETURNING customer_id,created_at
	`, c.Name, c.AccountCode, c.ContactEmail).Scan(&c.ID, &c.CreatedAt)
	return translateError(err)
}

func (r *PostgresCatalogRepo) GetCustomers() ([]*models.Customer, error) {
	rows, err := r.DB.Query(`
		SELECT customer_id,name,account_code,contact_email,created_at
		FROM customers ORDER BY account_code
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.AccountCode, &c.ContactEmail, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &c)
	}
	return result, rows.Err()
}
