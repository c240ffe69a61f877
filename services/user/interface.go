package user

import (
	"errors"

	userRepo "homestay/database/repository/user"
	"homestay/models"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("user not found")
)

// UserService defines account operations.
type UserService interface {
	RegisterUser(reg models.UserRegistration) (*models.AuthResponse, error)
	AuthenticateUser(creds models.UserCredentials) (*models.AuthResponse, error)
	GetUserByID(id string) (*models.User, error)
	UpdateFCMToken(id, token string) error
	RevokeAuthToken(id string) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
