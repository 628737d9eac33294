package repository

import "shiptrack/models"

// CatalogRepository manages the slow-changing reference entities:
// locations, carriers, vessels, containers and customers.
type CatalogRepository interface {
	CreateLocation(loc *models.Location) error
	GetLocations() ([]*models.Location, error)
	GetLocationByUnlocode(unlocode string) (*models.Location, error)

	CreateCarrier(c *models.Carrier) error
	GetCarriers() ([]*models.Carrier, error)

	CreateVessel(v *models.Vessel) error
	GetVessels() ([]*models.Vessel, error)

	CreateContainer(c *models.Container) error
	GetContainers() ([]*models.Container, error)

	CreateCustomer(c *models.Customer) error
	GetCustomers() ([]*models.Customer, error)
}
