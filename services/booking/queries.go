package booking

import (
	"fmt"

	"homestay/models"
)

// GetBooking returns a single booking. Only the guest or the property host
// may read it.
func (s *DefaultBookingService) GetBooking(actorID, bookingID string) (*models.Booking, error) {
	if actorID == "" {
		return nil, NewAuthenticationError("no caller identity")
	}
	booking, err := s.fetchBooking(bookingID)
	if err != nil {
		return nil, err
	}
	host, _, err := s.isHost(actorID, booking)
	if err != nil {
		return nil, err
	}
	if booking.GuestID != actorID && !host {
		return nil, NewAuthorizationError("not a party to this booking")
	}
	return booking, nil
}

// MyBookings returns all bookings where the caller is the guest.
func (s *DefaultBookingService) MyBookings(guestID string) ([]models.Booking, error) {
	if guestID == "" {
		return nil, NewAuthenticationError("no caller identity")
	}
	return s.Repo.GetByGuest(guestID)
}

// PropertyBookings returns all bookings for a property the caller hosts.
func (s *DefaultBookingService) PropertyBookings(actorID, propertyID string) ([]models.Booking, error) {
	if actorID == "" {
		return nil, NewAuthenticationError("no caller identity")
	}
	property, err := s.fetchProperty(propertyID)
	if err != nil {
		return nil, err
	}
	if property.HostID != actorID {
		return nil, NewAuthorizationError("only the property host may list its bookings")
	}
	return s.Repo.GetByProperty(propertyID)
}

// DeleteBooking physically removes a booking record. Admin only; normal
// flows cancel instead.
func (s *DefaultBookingService) DeleteBooking(actorID, bookingID string) error {
	if actorID == "" {
		return NewAuthenticationError("no caller identity")
	}
	actor, err := s.UserRepo.GetByID(actorID)
	if err != nil {
		return err
	}
	if actor == nil || !actor.IsAdmin {
		return NewAuthorizationError("admin privileges required")
	}
	if _, err := s.fetchBooking(bookingID); err != nil {
		return err
	}
	if err := s.Repo.Delete(bookingID); err != nil {
		return fmt.Errorf("failed to delete booking %s: %w", bookingID, err)
	}
	return nil
}
