package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "homestay/database/repository/booking"
	"homestay/models"
	"homestay/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fetchProperty resolves a property or returns a not-found business error.
func (s *DefaultBookingService) fetchProperty(propertyID string) (*models.Property, error) {
	property, err := s.PropertyRepo.GetByID(propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, NewNotFoundError(fmt.Sprintf("property %s not found", propertyID))
	}
	return property, nil
}

// fetchBooking resolves a booking or returns a not-found business error.
func (s *DefaultBookingService) fetchBooking(bookingID string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, NewNotFoundError(fmt.Sprintf("booking %s not found", bookingID))
	}
	return booking, nil
}

// mapStoreError converts storage-invariant violations to business errors.
func mapStoreError(err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrOverlap):
		return NewConflictError("property is not available for the selected dates")
	case errors.Is(err, bookingRepo.ErrInvalidDates):
		return NewValidationError("invalid booking dates")
	case errors.Is(err, bookingRepo.ErrCapacityExceeded):
		return NewValidationError("number of guests exceeds property capacity")
	default:
		return err
	}
}

// CreateBooking validates the request, checks availability and persists a
// new pending booking. The availability check and insert run under the
// property lock, with the repository transaction as the second guard.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, guestID string, input models.CreateBookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	if guestID == "" {
		return nil, NewAuthenticationError("no caller identity")
	}

	in, out, err := parseStayRange(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, err
	}
	if input.NumberOfGuests <= 0 {
		return nil, NewValidationError("number of guests must be positive")
	}

	property, err := s.fetchProperty(input.PropertyID)
	if err != nil {
		return nil, err
	}
	if input.NumberOfGuests > property.MaxGuests {
		return nil, NewValidationError(fmt.Sprintf("property sleeps at most %d guests", property.MaxGuests))
	}

	unlock := lockProperty(property.ID)
	defer unlock()

	ok, err := s.available(property.ID, in, out, "")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewConflictError("property is not available for the selected dates")
	}

	booking := &models.Booking{
		ID:             uuid.New().String(),
		PropertyID:     property.ID,
		GuestID:        guestID,
		CheckIn:        in,
		CheckOut:       out,
		NumberOfGuests: input.NumberOfGuests,
		TotalPrice:     CalculateTotalPrice(property.NightlyPrice, in, out),
		Status:         models.BookingPending,
		PaymentStatus:  models.PaymentPending,
	}

	if err := s.Repo.CreateTransactionally(ctx, booking); err != nil {
		return nil, mapStoreError(err)
	}

	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("propertyID", property.ID),
		zap.Float64("totalPrice", booking.TotalPrice))

	s.notifyHost(ctx, property, "New booking request",
		fmt.Sprintf("%s → %s, %d guest(s)", input.CheckIn, input.CheckOut, input.NumberOfGuests), booking)

	return booking, nil
}

// UpdateBooking applies guest edits. Date changes re-run the availability
// check with the booking's own record excluded from the overlap set, and
// the total price is recomputed.
func (s *DefaultBookingService) UpdateBooking(ctx context.Context, actorID string, input models.UpdateBookingInput) (*models.Booking, error) {
	if actorID == "" {
		return nil, NewAuthenticationError("no caller identity")
	}

	booking, err := s.fetchBooking(input.BookingID)
	if err != nil {
		return nil, err
	}
	if booking.GuestID != actorID {
		return nil, NewAuthorizationError("only the booking guest may update it")
	}
	if booking.Status.Terminal() {
		return nil, NewInvalidStateError(fmt.Sprintf("booking is %s and can no longer be edited", booking.Status.Public()))
	}

	property, err := s.fetchProperty(booking.PropertyID)
	if err != nil {
		return nil, err
	}

	if input.NumberOfGuests != nil {
		if *input.NumberOfGuests <= 0 {
			return nil, NewValidationError("number of guests must be positive")
		}
		if *input.NumberOfGuests > property.MaxGuests {
			return nil, NewValidationError(fmt.Sprintf("property sleeps at most %d guests", property.MaxGuests))
		}
		booking.NumberOfGuests = *input.NumberOfGuests
	}

	if input.CheckIn != nil || input.CheckOut != nil {
		checkIn := booking.CheckIn.Format(models.DateLayout)
		checkOut := booking.CheckOut.Format(models.DateLayout)
		if input.CheckIn != nil {
			checkIn = *input.CheckIn
		}
		if input.CheckOut != nil {
			checkOut = *input.CheckOut
		}
		in, out, err := parseStayRange(checkIn, checkOut)
		if err != nil {
			return nil, err
		}

		unlock := lockProperty(booking.PropertyID)
		defer unlock()

		ok, err := s.available(booking.PropertyID, in, out, booking.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, NewConflictError("property is not available for the new dates")
		}

		booking.CheckIn = in
		booking.CheckOut = out
		booking.TotalPrice = CalculateTotalPrice(property.NightlyPrice, in, out)
	}

	if err := s.Repo.Update(booking); err != nil {
		return nil, mapStoreError(err)
	}
	return booking, nil
}
