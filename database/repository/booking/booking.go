package bookingRepo

import (
	"context"
	"errors"
	"time"

	"homestay/models"
)

// Storage-level failures the service layer maps onto its error taxonomy.
var (
	// ErrInvalidDates signals check_out <= check_in or a check-in in the past.
	ErrInvalidDates = errors.New("invalid booking dates")
	// ErrCapacityExceeded signals number_of_guests above the property capacity.
	ErrCapacityExceeded = errors.New("number of guests exceeds property capacity")
	// ErrOverlap signals a conflicting active booking detected inside the
	// transactional create.
	ErrOverlap = errors.New("booking dates overlap an existing active booking")
)

// BookingRepository defines the data access methods for booking records.
// The repository is the last line of defense for data invariants: date
// ordering and guest capacity are re-validated here regardless of what the
// service layer already checked.
type BookingRepository interface {
	// Create persists a new booking after validating store invariants.
	Create(booking *models.Booking) error
	// CreateTransactionally re-runs the overlap check and inserts the booking
	// inside a single Mongo session transaction. Returns ErrOverlap when a
	// conflicting active booking exists.
	CreateTransactionally(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID; (nil, nil) when absent.
	GetByID(id string) (*models.Booking, error)
	// Update replaces a booking document after re-validating store invariants.
	Update(booking *models.Booking) error
	// Delete physically removes a booking (admin path only; normal flows cancel).
	Delete(id string) error
	// FindOverlapping returns active bookings on the property whose date range
	// overlaps [checkIn, checkOut] under the closed-interval test. excludeID,
	// when non-empty, removes that booking from the overlap set.
	FindOverlapping(propertyID string, checkIn, checkOut time.Time, excludeID string) ([]models.Booking, error)
	// GetByGuest returns all bookings created by the given user.
	GetByGuest(guestID string) ([]models.Booking, error)
	// GetByProperty returns all bookings for the given property.
	GetByProperty(propertyID string) ([]models.Booking, error)
}
