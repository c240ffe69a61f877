package models

import (
	"strings"
	"time"
)

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Public returns the upper-case wire form (e.g. "PENDING").
func (s BookingStatus) Public() string {
	return strings.ToUpper(string(s))
}

// Terminal reports whether no further lifecycle transition is allowed.
func (s BookingStatus) Terminal() bool {
	return s == BookingCancelled || s == BookingCompleted
}

// PaymentStatus tracks the payment side of a booking, independent of the lifecycle state.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Public() string {
	return strings.ToUpper(string(s))
}

// Booking represents a stay reservation on a property.
// CheckIn and CheckOut are dates normalized to midnight UTC.
type Booking struct {
	ID             string        `bson:"id" json:"id"`                             // Unique booking identifier (UUID)
	PropertyID     string        `bson:"property_id" json:"property_id"`           // Property being booked
	GuestID        string        `bson:"guest_id" json:"guest_id"`                 // User who made the booking
	CheckIn        time.Time     `bson:"check_in" json:"check_in"`                 // Stay start date
	CheckOut       time.Time     `bson:"check_out" json:"check_out"`               // Stay end date
	NumberOfGuests int           `bson:"number_of_guests" json:"number_of_guests"` // Guests staying
	TotalPrice     float64       `bson:"total_price" json:"total_price"`           // nightly price * nights
	Status         BookingStatus `bson:"status" json:"status"`
	PaymentStatus  PaymentStatus `bson:"payment_status" json:"payment_status"`
	PaymentRef     string        `bson:"payment_ref,omitempty" json:"-"` // Stripe payment intent ID
	CreatedAt      time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time     `bson:"updated_at" json:"updated_at"`
}

// Active reports whether the booking blocks availability. Every status
// except cancelled holds its dates.
func (b *Booking) Active() bool {
	return b.Status != BookingCancelled
}

// Public converts the booking to its API representation; statuses are
// exchanged upper-case at the boundary.
func (b *Booking) Public() *PublicBookingData {
	return &PublicBookingData{
		ID:             b.ID,
		PropertyID:     b.PropertyID,
		GuestID:        b.GuestID,
		CheckIn:        b.CheckIn.Format(DateLayout),
		CheckOut:       b.CheckOut.Format(DateLayout),
		NumberOfGuests: b.NumberOfGuests,
		TotalPrice:     b.TotalPrice,
		Status:         b.Status.Public(),
		PaymentStatus:  b.PaymentStatus.Public(),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
