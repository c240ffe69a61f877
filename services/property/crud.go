package property

import (
	"homestay/models"

	"github.com/google/uuid"
)

// CreateProperty registers a new listing owned by the caller.
func (s *DefaultPropertyService) CreateProperty(hostID string, input models.PropertyInput) (*models.Property, error) {
	property := &models.Property{
		ID:           uuid.New().String(),
		HostID:       hostID,
		Title:        input.Title,
		Description:  input.Description,
		City:         input.City,
		Country:      input.Country,
		NightlyPrice: input.NightlyPrice,
		MaxGuests:    input.MaxGuests,
		Currency:     input.Currency,
		IsActive:     true,
	}
	if err := s.Repo.Create(property); err != nil {
		return nil, err
	}
	return property, nil
}

// GetProperty retrieves a listing by ID.
func (s *DefaultPropertyService) GetProperty(id string) (*models.Property, error) {
	property, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrNotFound
	}
	return property, nil
}

// MyProperties lists the caller's own listings.
func (s *DefaultPropertyService) MyProperties(hostID string) ([]models.Property, error) {
	return s.Repo.GetByHost(hostID)
}

// UpdateProperty edits a listing. Host only.
func (s *DefaultPropertyService) UpdateProperty(hostID, id string, input models.PropertyInput) (*models.Property, error) {
	property, err := s.GetProperty(id)
	if err != nil {
		return nil, err
	}
	if property.HostID != hostID {
		return nil, ErrForbidden
	}

	property.Title = input.Title
	property.Description = input.Description
	property.City = input.City
	property.Country = input.Country
	property.NightlyPrice = input.NightlyPrice
	property.MaxGuests = input.MaxGuests
	property.Currency = input.Currency

	if err := s.Repo.Update(property); err != nil {
		return nil, err
	}
	return property, nil
}

// DeleteProperty removes a listing. Host only.
func (s *DefaultPropertyService) DeleteProperty(hostID, id string) error {
	property, err := s.GetProperty(id)
	if err != nil {
		return err
	}
	if property.HostID != hostID {
		return ErrForbidden
	}
	return s.Repo.Delete(id)
}
