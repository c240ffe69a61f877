package models

import "time"

// User represents an account. A user acts as guest on bookings they created
// and as host on properties they own; there is no separate role field.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"` // SHA-256 of the active JWT
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	IsAdmin      bool      `bson:"is_admin,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// UserRegistration is the signup payload.
type UserRegistration struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UserCredentials is the sign-in payload.
type UserCredentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on successful registration or sign-in.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
