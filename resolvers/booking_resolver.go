package resolvers

import (
	"context"
	"errors"

	"homestay/models"
	"homestay/services/booking"
	"homestay/utils"

	"go.uber.org/zap"
)

// genericFailure hides infrastructure details from callers.
var errInternal = errors.New("an unexpected error occurred")

// Resolver exposes the booking operations with their API envelope
// semantics: business-rule failures become {success:false, message} while
// infrastructure faults are logged and surfaced generically. Query-style
// reads propagate authentication/authorization errors as request failures.
type Resolver struct {
	BookingSvc booking.BookingService
}

func NewResolver(bookingSvc booking.BookingService) *Resolver {
	return &Resolver{BookingSvc: bookingSvc}
}

// failure converts an error into a mutation envelope, or reports an
// infrastructure fault.
func failure(op string, err error) (*models.BookingResult, error) {
	if be := booking.AsBusinessError(err); be != nil {
		return &models.BookingResult{Success: false, Message: be.Message}, nil
	}
	utils.GetLogger().Error("booking operation failed", zap.String("op", op), zap.Error(err))
	return nil, errInternal
}

func success(b *models.Booking, message string) *models.BookingResult {
	return &models.BookingResult{Success: true, Message: message, Booking: b.Public()}
}

// CheckAvailability resolves the standalone availability query.
func (r *Resolver) CheckAvailability(ctx context.Context, input models.AvailabilityInput) (*models.AvailabilityResult, error) {
	result, err := r.BookingSvc.CheckAvailability(input)
	if err != nil {
		if be := booking.AsBusinessError(err); be != nil {
			return &models.AvailabilityResult{Available: false, Message: be.Message}, nil
		}
		utils.GetLogger().Error("availability check failed", zap.Error(err))
		return nil, errInternal
	}
	return result, nil
}

// CreateBooking resolves the createBooking mutation.
func (r *Resolver) CreateBooking(ctx context.Context, guestID string, input models.CreateBookingInput) (*models.BookingResult, error) {
	b, err := r.BookingSvc.CreateBooking(ctx, guestID, input)
	if err != nil {
		return failure("createBooking", err)
	}
	return success(b, "Booking created"), nil
}

// UpdateBooking resolves the updateBooking mutation.
func (r *Resolver) UpdateBooking(ctx context.Context, actorID string, input models.UpdateBookingInput) (*models.BookingResult, error) {
	b, err := r.BookingSvc.UpdateBooking(ctx, actorID, input)
	if err != nil {
		return failure("updateBooking", err)
	}
	return success(b, "Booking updated"), nil
}

// CancelBooking resolves the cancelBooking mutation.
func (r *Resolver) CancelBooking(ctx context.Context, actorID, bookingID string) (*models.BookingResult, error) {
	b, err := r.BookingSvc.CancelBooking(ctx, actorID, bookingID)
	if err != nil {
		return failure("cancelBooking", err)
	}
	return success(b, "Booking cancelled"), nil
}

// ConfirmBooking resolves the confirmBooking mutation.
func (r *Resolver) ConfirmBooking(ctx context.Context, actorID, bookingID string) (*models.BookingResult, error) {
	b, err := r.BookingSvc.ConfirmBooking(ctx, actorID, bookingID)
	if err != nil {
		return failure("confirmBooking", err)
	}
	return success(b, "Booking confirmed"), nil
}

// CompleteBooking resolves the completeBooking mutation.
func (r *Resolver) CompleteBooking(ctx context.Context, actorID, bookingID string) (*models.BookingResult, error) {
	b, err := r.BookingSvc.CompleteBooking(actorID, bookingID)
	if err != nil {
		return failure("completeBooking", err)
	}
	return success(b, "Booking completed"), nil
}

// Booking resolves a single booking read. Errors propagate.
func (r *Resolver) Booking(ctx context.Context, actorID, bookingID string) (*models.PublicBookingData, error) {
	b, err := r.BookingSvc.GetBooking(actorID, bookingID)
	if err != nil {
		return nil, err
	}
	return b.Public(), nil
}

// MyBookings resolves all bookings where the caller is guest. Errors propagate.
func (r *Resolver) MyBookings(ctx context.Context, guestID string) ([]*models.PublicBookingData, error) {
	bookings, err := r.BookingSvc.MyBookings(guestID)
	if err != nil {
		return nil, err
	}
	return publicViews(bookings), nil
}

// PropertyBookings resolves all bookings for a hosted property. Errors propagate.
func (r *Resolver) PropertyBookings(ctx context.Context, actorID, propertyID string) ([]*models.PublicBookingData, error) {
	bookings, err := r.BookingSvc.PropertyBookings(actorID, propertyID)
	if err != nil {
		return nil, err
	}
	return publicViews(bookings), nil
}

func publicViews(bookings []models.Booking) []*models.PublicBookingData {
	views := make([]*models.PublicBookingData, 0, len(bookings))
	for i := range bookings {
		views = append(views, bookings[i].Public())
	}
	return views
}
