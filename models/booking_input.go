package models

// CreateBookingInput holds the request payload for creating a booking.
type CreateBookingInput struct {
	PropertyID     string `json:"propertyID"`
	CheckIn        string `json:"checkIn"`  // YYYY-MM-DD
	CheckOut       string `json:"checkOut"` // YYYY-MM-DD
	NumberOfGuests int    `json:"numberOfGuests"`
}

// UpdateBookingInput holds the request payload for editing a booking.
// Nil fields are left unchanged.
type UpdateBookingInput struct {
	BookingID      string  `json:"bookingID"`
	CheckIn        *string `json:"checkIn,omitempty"`
	CheckOut       *string `json:"checkOut,omitempty"`
	NumberOfGuests *int    `json:"numberOfGuests,omitempty"`
}

// AvailabilityInput holds the request payload for a standalone availability check.
type AvailabilityInput struct {
	PropertyID string `json:"propertyID"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
}
