package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"homestay/models"
	"homestay/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is the lifetime of issued JWTs.
const tokenTTL = 72 * time.Hour

// RegisterUser creates an account and signs the user in.
func (s *DefaultUserService) RegisterUser(reg models.UserRegistration) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(reg.Email))

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Name:         reg.Name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, err
	}

	return s.issueToken(usr)
}

// AuthenticateUser verifies credentials and issues a fresh JWT.
func (s *DefaultUserService) AuthenticateUser(creds models.UserCredentials) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))

	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(usr)
}

// issueToken signs a JWT, persists its hash and primes the auth cache.
func (s *DefaultUserService) issueToken(usr *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(usr.ID, tokenHash); err != nil {
		return nil, err
	}
	usr.TokenHash = tokenHash

	authCache := utils.GetAuthCacheClient()
	if authCache != nil {
		key := utils.AuthCachePrefix + usr.ID
		if err := authCache.Set(context.Background(), key, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to prime auth cache", zap.String("userID", usr.ID), zap.Error(err))
		}
	}

	return &models.AuthResponse{User: usr, Token: token}, nil
}

// GetUserByID fetches a user profile.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, ErrNotFound
	}
	return usr, nil
}

// UpdateFCMToken stores the device push token for the user.
func (s *DefaultUserService) UpdateFCMToken(id, token string) error {
	usr, err := s.GetUserByID(id)
	if err != nil {
		return err
	}
	usr.FCMToken = token
	return s.Repo.Update(usr)
}

// RevokeAuthToken signs the user out everywhere by clearing the stored
// token hash and evicting the auth cache entry.
func (s *DefaultUserService) RevokeAuthToken(id string) error {
	if err := s.Repo.SetTokenHash(id, ""); err != nil {
		return err
	}
	authCache := utils.GetAuthCacheClient()
	if authCache != nil {
		_ = authCache.Del(context.Background(), utils.AuthCachePrefix+id).Err()
	}
	return nil
}
