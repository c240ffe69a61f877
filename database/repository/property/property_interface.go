package propertyRepo

import "homestay/models"

// PropertyRepository defines the data access methods for rental listings.
type PropertyRepository interface {
	Create(property *models.Property) error
	// GetByID retrieves a property by its unique ID; (nil, nil) when absent.
	GetByID(id string) (*models.Property, error)
	GetByHost(hostID string) ([]models.Property, error)
	Update(property *models.Property) error
	Delete(id string) error
}
