package booking

import (
	"context"

	bookingRepo "homestay/database/repository/booking"
	propertyRepo "homestay/database/repository/property"
	userRepo "homestay/database/repository/user"
	"homestay/models"
	"homestay/services/notification"
)

// BookingService defines the booking availability and lifecycle operations.
type BookingService interface {
	CheckAvailability(input models.AvailabilityInput) (*models.AvailabilityResult, error)
	CreateBooking(ctx context.Context, guestID string, input models.CreateBookingInput) (*models.Booking, error)
	UpdateBooking(ctx context.Context, actorID string, input models.UpdateBookingInput) (*models.Booking, error)
	CancelBooking(ctx context.Context, actorID, bookingID string) (*models.Booking, error)
	ConfirmBooking(ctx context.Context, actorID, bookingID string) (*models.Booking, error)
	CompleteBooking(actorID, bookingID string) (*models.Booking, error)
	GetBooking(actorID, bookingID string) (*models.Booking, error)
	MyBookings(guestID string) ([]models.Booking, error)
	PropertyBookings(actorID, propertyID string) ([]models.Booking, error)
	DeleteBooking(actorID, bookingID string) error
}

// ReminderScheduler enqueues check-in reminders for confirmed bookings.
type ReminderScheduler interface {
	ScheduleCheckInReminder(booking *models.Booking) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	PropertyRepo propertyRepo.PropertyRepository
	UserRepo     userRepo.UserRepository
	Payments     PaymentHandler                   // optional
	Notification notification.NotificationService // optional
	Reminders    ReminderScheduler                // optional
}
