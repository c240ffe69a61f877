package booking

import (
	"context"
	"fmt"

	"homestay/models"
	"homestay/utils"

	"go.uber.org/zap"
)

// isHost reports whether the actor owns the property behind the booking.
func (s *DefaultBookingService) isHost(actorID string, booking *models.Booking) (bool, *models.Property, error) {
	property, err := s.fetchProperty(booking.PropertyID)
	if err != nil {
		return false, nil, err
	}
	return property.HostID == actorID, property, nil
}

// CancelBooking cancels from pending or confirmed. Guest or host may cancel;
// paymentStatus moves to refunded, with a Stripe refund when a charge exists.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, actorID, bookingID string) (*models.Booking, error) {
	logger := utils.GetLogger()

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
		return nil, NewAuthorizationError("only the booking guest or the property host may cancel")
	}
	if booking.Status.Terminal() {
		return nil, NewInvalidStateError(fmt.Sprintf("booking is already %s", booking.Status.Public()))
	}

	wasPaid := booking.PaymentStatus == models.PaymentPaid
	booking.Status = models.BookingCancelled
	booking.PaymentStatus = models.PaymentRefunded

	if err := s.Repo.Update(booking); err != nil {
		return nil, mapStoreError(err)
	}

	if wasPaid && s.Payments != nil {
		if err := s.Payments.Refund(ctx, booking); err != nil {
			logger.Error("refund failed, booking cancelled regardless",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	s.notifyGuest(ctx, booking, "Booking cancelled",
		fmt.Sprintf("Your stay starting %s was cancelled", booking.CheckIn.Format(models.DateLayout)))

	return booking, nil
}

// ConfirmBooking moves a pending booking to confirmed. Host only. The
// payment is captured before the transition and a check-in reminder is
// scheduled afterwards.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, actorID, bookingID string) (*models.Booking, error) {
	logger := utils.GetLogger()

	if actorID == "" {
		return nil, NewAuthenticationError("no caller identity")
	}
	booking, err := s.fetchBooking(bookingID)
	if err != nil {
		return nil, err
	}

	host, property, err := s.isHost(actorID, booking)
	if err != nil {
		return nil, err
	}
	if !host {
		return nil, NewAuthorizationError("only the property host may confirm a booking")
	}
	if booking.Status != models.BookingPending {
		return nil, NewInvalidStateError(fmt.Sprintf("cannot confirm a %s booking", booking.Status.Public()))
	}

	if s.Payments != nil {
		ref, err := s.Payments.Charge(ctx, booking, property)
		if err != nil {
			return nil, fmt.Errorf("payment capture failed for booking %s: %w", booking.ID, err)
		}
		booking.PaymentRef = ref
	}

	booking.Status = models.BookingConfirmed
	booking.PaymentStatus = models.PaymentPaid

	if err := s.Repo.Update(booking); err != nil {
		return nil, mapStoreError(err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleCheckInReminder(booking); err != nil {
			logger.Warn("failed to schedule check-in reminder",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	s.notifyGuest(ctx, booking, "Booking confirmed",
		fmt.Sprintf("Your stay at %s is confirmed for %s", property.Title, booking.CheckIn.Format(models.DateLayout)))

	return booking, nil
}

// CompleteBooking moves a confirmed booking to completed. Host only.
func (s *DefaultBookingService) CompleteBooking(actorID, bookingID string) (*models.Booking, error) {
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
	if !host {
		return nil, NewAuthorizationError("only the property host may complete a booking")
	}
	if booking.Status != models.BookingConfirmed {
		return nil, NewInvalidStateError(fmt.Sprintf("cannot complete a %s booking", booking.Status.Public()))
	}

	booking.Status = models.BookingCompleted
	if err := s.Repo.Update(booking); err != nil {
		return nil, mapStoreError(err)
	}
	return booking, nil
}

// notifyGuest sends a best-effort push to the booking guest.
func (s *DefaultBookingService) notifyGuest(ctx context.Context, booking *models.Booking, title, body string) {
	if s.Notification == nil {
		return
	}
	data := map[string]string{"bookingID": booking.ID}
	if err := s.Notification.SendUserPushNotification(ctx, booking.GuestID, title, body, data); err != nil {
		utils.GetLogger().Warn("guest push failed", zap.String("bookingID", booking.ID), zap.Error(err))
	}
}

// notifyHost sends a best-effort push to the property host.
func (s *DefaultBookingService) notifyHost(ctx context.Context, property *models.Property, title, body string, booking *models.Booking) {
	if s.Notification == nil {
		return
	}
	data := map[string]string{"bookingID": booking.ID, "propertyID": property.ID}
	if err := s.Notification.SendUserPushNotification(ctx, property.HostID, title, body, data); err != nil {
		utils.GetLogger().Warn("host push failed", zap.String("bookingID", booking.ID), zap.Error(err))
	}
}
