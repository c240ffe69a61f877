package property

import (
	"errors"

	propertyRepo "homestay/database/repository/property"
	"homestay/models"
)

var (
	ErrNotFound  = errors.New("property not found")
	ErrForbidden = errors.New("caller does not own this property")
)

// PropertyService defines listing management for hosts.
type PropertyService interface {
	CreateProperty(hostID string, input models.PropertyInput) (*models.Property, error)
	GetProperty(id string) (*models.Property, error)
	MyProperties(hostID string) ([]models.Property, error)
	UpdateProperty(hostID, id string, input models.PropertyInput) (*models.Property, error)
	DeleteProperty(hostID, id string) error
}

// DefaultPropertyService implements PropertyService.
type DefaultPropertyService struct {
	Repo propertyRepo.PropertyRepository
}
