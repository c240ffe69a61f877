package models

import "time"

// Property represents a rental listing owned by a host user.
type Property struct {
	ID           string    `bson:"id" json:"id"`
	HostID       string    `bson:"host_id" json:"host_id"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	City         string    `bson:"city,omitempty" json:"city,omitempty"`
	Country      string    `bson:"country,omitempty" json:"country,omitempty"`
	NightlyPrice float64   `bson:"nightly_price" json:"nightly_price"`
	MaxGuests    int       `bson:"max_guests" json:"max_guests"`
	Currency     string    `bson:"currency,omitempty" json:"currency,omitempty"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// PropertyInput is the payload for creating or updating a listing.
type PropertyInput struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	City         string  `json:"city"`
	Country      string  `json:"country"`
	NightlyPrice float64 `json:"nightlyPrice" binding:"required,gt=0"`
	MaxGuests    int     `json:"maxGuests" binding:"required,gt=0"`
	Currency     string  `json:"currency"`
}
