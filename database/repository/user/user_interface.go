package userRepo

import "homestay/models"

// UserRepository defines the data access methods for user accounts.
type UserRepository interface {
	Create(user *models.User) error
	// GetByID retrieves a user by its unique ID; (nil, nil) when absent.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by email; (nil, nil) when absent.
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	// SetTokenHash stores the SHA-256 hash of the user's active JWT.
	SetTokenHash(id, tokenHash string) error
	Delete(id string) error
}
