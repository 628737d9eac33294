package models

import (
	"regexp"
	"time"
)

type Location struct {
	ID          int64     `json:"location_id" db:"location_id"`
	Name        string    `json:"name" db:"name"`
	Unlocode    string    `json:"unlocode" db:"unlocode"`
	CountryCode string    `json:"country_code" db:"country_code"`
	Timezone    *string   `json:"timezone,omitempty" db:"timezone"`
	Latitude    *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude   *float64  `json:"longitude,omitempty" db:"longitude"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type Carrier struct {
	ID        int64     `json:"carrier_id" db:"carrier_id"`
	Name      string    `json:"name" db:"name"`
	SCAC      string    `json:"scac" db:"scac"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Vessel struct {
	ID        int64     `json:"vessel_id" db:"vessel_id"`
	Name      string    `json:"name" db:"name"`
	IMONo     *string   `json:"imo_no,omitempty" db:"imo_no"`
	MMSI      *string   `json:"mmsi,omitempty" db:"mmsi"`
	CarrierID *int64    `json:"carrier_id,omitempty" db:"carrier_id"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Container struct {
	ID              int64         `json:"container_id" db:"container_id"`
	ContainerNo     string        `json:"container_no" db:"container_no"`
	Type            ContainerType `json:"type" db:"type"`
	CarrierID       *int64        `json:"carrier_id,omitempty" db:"carrier_id"`
	ReeferSetpointC *float64      `json:"reefer_setpoint_c,omitempty" db:"reefer_setpoint_c"`
	Active          bool          `json:"active" db:"active"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
}

// ISO 6346 owner prefix plus serial and check digit.
var containerNoPattern = regexp.MustCompile(`^[A-Z]{4}[0-9]{7}$`)

func ValidContainerNo(no string) bool {
	return containerNoPattern.MatchString(no)
}

type Customer struct {
	ID           int64     `json:"customer_id" db:"customer_id"`
	Name         string    `json:"name" db:"name"`
	AccountCode  string    `json:"account_code" db:"account_code"`
	ContactEmail *string   `json:"contact_email,omitempty" db:"contact_email"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
