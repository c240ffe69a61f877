package models

import "time"

// PublicBookingData is the API-facing view of a booking.
type PublicBookingData struct {
	ID             string    `json:"id"`
	PropertyID     string    `json:"propertyID"`
	GuestID        string    `json:"guestID"`
	CheckIn        string    `json:"checkIn"`
	CheckOut       string    `json:"checkOut"`
	NumberOfGuests int       `json:"numberOfGuests"`
	TotalPrice     float64   `json:"totalPrice"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"paymentStatus"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// BookingResult is the envelope returned by booking mutations.
type BookingResult struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Booking *PublicBookingData `json:"booking,omitempty"`
}

// AvailabilityResult is the envelope returned by checkAvailability.
type AvailabilityResult struct {
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`
}
