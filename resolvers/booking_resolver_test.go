package resolvers_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"homestay/models"
	"homestay/resolvers"
	"homestay/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBookingService lets each test script the service outcome. Unstubbed
// methods fall through to the embedded nil interface and panic.
type stubBookingService struct {
	booking.BookingService
	createErr error
	booking   *models.Booking
	availErr  error
	getErr    error
}

func (s *stubBookingService) CreateBooking(ctx context.Context, guestID string, input models.CreateBookingInput) (*models.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.booking, nil
}

func (s *stubBookingService) CheckAvailability(input models.AvailabilityInput) (*models.AvailabilityResult, error) {
	if s.availErr != nil {
		return nil, s.availErr
	}
	return &models.AvailabilityResult{Available: true}, nil
}

func (s *stubBookingService) GetBooking(actorID, bookingID string) (*models.Booking, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.booking, nil
}

func sampleBooking() *models.Booking {
	return &models.Booking{
		ID:             "bk-1",
		PropertyID:     "prop-1",
		GuestID:        "guest-1",
		CheckIn:        time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:       time.Date(2030, time.June, 4, 0, 0, 0, 0, time.UTC),
		NumberOfGuests: 2,
		TotalPrice:     300,
		Status:         models.BookingPending,
		PaymentStatus:  models.PaymentPending,
	}
}

func TestCreateBookingEnvelopeOnSuccess(t *testing.T) {
	r := resolvers.NewResolver(&stubBookingService{booking: sampleBooking()})

	result, err := r.CreateBooking(context.Background(), "guest-1", models.CreateBookingInput{})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Success)
	assert.Equal(t, "Booking created", result.Message)
	require.NotNil(t, result.Booking)
	assert.Equal(t, "PENDING", result.Booking.Status)
	assert.Equal(t, "PENDING", result.Booking.PaymentStatus)
	assert.Equal(t, "2030-06-01", result.Booking.CheckIn)
}

// Business-rule failures land in the envelope, not in the error return.
func TestCreateBookingEnvelopeOnBusinessError(t *testing.T) {
	r := resolvers.NewResolver(&stubBookingService{
		createErr: booking.NewConflictError("property is not available for the selected dates"),
	})

	result, err := r.CreateBooking(context.Background(), "guest-1", models.CreateBookingInput{})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.False(t, result.Success)
	assert.Equal(t, "property is not available for the selected dates", result.Message)
	assert.Nil(t, result.Booking)
}

// Infrastructure faults surface generically, with no internals leaked.
func TestCreateBookingHidesInfrastructureFaults(t *testing.T) {
	r := resolvers.NewResolver(&stubBookingService{
		createErr: errors.New("mongo: connection reset by peer"),
	})

	result, err := r.CreateBooking(context.Background(), "guest-1", models.CreateBookingInput{})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.NotContains(t, err.Error(), "mongo")
}

func TestCheckAvailabilityBusinessErrorBecomesResult(t *testing.T) {
	r := resolvers.NewResolver(&stubBookingService{
		availErr: booking.NewValidationError("check-out must be after check-in"),
	})

	result, err := r.CheckAvailability(context.Background(), models.AvailabilityInput{})
	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, "check-out must be after check-in", result.Message)
}

// Query reads propagate authorization failures instead of wrapping them.
func TestBookingQueryPropagatesAuthErrors(t *testing.T) {
	r := resolvers.NewResolver(&stubBookingService{
		getErr: booking.NewAuthorizationError("not a party to this booking"),
	})

	_, err := r.Booking(context.Background(), "stranger-1", "bk-1")
	assert.True(t, booking.HasCode(err, booking.CodeAuthorization))
}

func TestBookingQueryReturnsPublicView(t *testing.T) {
	r := resolvers.NewResolver(&stubBookingService{booking: sampleBooking()})

	view, err := r.Booking(context.Background(), "guest-1", "bk-1")
	require.NoError(t, err)
	assert.Equal(t, "bk-1", view.ID)
	assert.Equal(t, "2030-06-04", view.CheckOut)
	assert.InDelta(t, 300.0, view.TotalPrice, 1e-9)
}
