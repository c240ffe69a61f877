package booking_test

import (
	"context"
	"sync"
	"testing"

	"homestay/models"
	"homestay/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking(t *testing.T) {
	svc, repo, _, _ := newTestService("prop-create-1")
	ctx := context.Background()

	b, err := svc.CreateBooking(ctx, testGuestID, models.CreateBookingInput{
		PropertyID:     "prop-create-1",
		CheckIn:        "2030-06-01",
		CheckOut:       "2030-06-04",
		NumberOfGuests: 2,
	})
	require.NoError(t, err)
	require.NotNil(t, b)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, testGuestID, b.GuestID)
	assert.Equal(t, models.BookingPending, b.Status)
	assert.Equal(t, models.PaymentPending, b.PaymentStatus)
	assert.Equal(t, "PENDING", b.Status.Public())
	assert.InDelta(t, 300.0, b.TotalPrice, 1e-9)

	stored, err := repo.GetByID(b.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, b.CheckIn, stored.CheckIn)
}

func TestCreateBookingRejectsAnonymousCaller(t *testing.T) {
	svc, _, _, _ := newTestService("prop-create-2")

	_, err := svc.CreateBooking(context.Background(), "", models.CreateBookingInput{
		PropertyID:     "prop-create-2",
		CheckIn:        "2030-06-01",
		CheckOut:       "2030-06-04",
		NumberOfGuests: 2,
	})
	assert.True(t, booking.HasCode(err, booking.CodeAuthentication))
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _, _, _ := newTestService("prop-create-3")
	ctx := context.Background()

	// Guests above the property capacity of 4.
	_, err := svc.CreateBooking(ctx, testGuestID, models.CreateBookingInput{
		PropertyID:     "prop-create-3",
		CheckIn:        "2030-06-01",
		CheckOut:       "2030-06-04",
		NumberOfGuests: 9,
	})
	assert.True(t, booking.HasCode(err, booking.CodeValidation))

	_, err = svc.CreateBooking(ctx, testGuestID, models.CreateBookingInput{
		PropertyID:     "prop-create-3",
		CheckIn:        "2030-06-01",
		CheckOut:       "2030-06-04",
		NumberOfGuests: 0,
	})
	assert.True(t, booking.HasCode(err, booking.CodeValidation))

	_, err = svc.CreateBooking(ctx, testGuestID, models.CreateBookingInput{
		PropertyID:     "prop-create-3",
		CheckIn:        "2030-06-04",
		CheckOut:       "2030-06-01",
		NumberOfGuests: 2,
	})
	assert.True(t, booking.HasCode(err, booking.CodeValidation))

	_, err = svc.CreateBooking(ctx, testGuestID, models.CreateBookingInput{
		PropertyID:     "no-such-property",
		CheckIn:        "2030-06-01",
		CheckOut:       "2030-06-04",
		NumberOfGuests: 2,
	})
	assert.True(t, booking.HasCode(err, booking.CodeNotFound))
}

func TestCreateBookingConflict(t *testing.T) {
	svc, _, _, _ := newTestService("prop-create-4")
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, testGuestID, models.CreateBookingInput{
		PropertyID:     "prop-create-4",
		CheckIn:        "2030-06-01",
		CheckOut:       "2030-06-04",
		NumberOfGuests: 2,
	})
	require.NoError(t, err)

	_, err = svc.CreateBooking(ctx, testStrangerID, models.CreateBookingInput{
		PropertyID:     "prop-create-4",
		CheckIn:        "2030-06-04",
		CheckOut:       "2030-06-06",
		NumberOfGuests: 1,
	})
	assert.True(t, booking.HasCode(err, booking.CodeConflict))
}

// Concurrent attempts for the same dates must produce exactly one booking.
func TestCreateBookingConcurrentAttempts(t *testing.T) {
	svc, repo, _, _ := newTestService("prop-race-1")
	ctx := context.Background()

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateBooking(ctx, testGuestID, models.CreateBookingInput{
				PropertyID:     "prop-race-1",
				CheckIn:        "2030-06-01",
				CheckOut:       "2030-06-04",
				NumberOfGuests: 2,
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, booking.HasCode(err, booking.CodeConflict))
		}
	}
	assert.Equal(t, 1, succeeded)

	stored, err := repo.GetByProperty("prop-race-1")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestUpdateBookingGuestOnly(t *testing.T) {
	svc, _, _, _ := newTestService("prop-update-1")
	ctx := context.Background()

	b, err := svc.CreateBooking(ctx, testGuestID, models.CreateBookingInput{
		PropertyID:     "prop-update-1",
		CheckIn:        "2030-06-01",
		CheckOut:       "2030-06-04",
		NumberOfGuests: 2,
	})
	require.NoError(t, err)

	guests := 3
	_, err = svc.UpdateBooking(ctx, testHostID, models.UpdateBookingInput{
		BookingID:      b.ID,
		NumberOfGuests: &guests,
	})
	assert.True(t, booking.HasCode(err, booking.CodeAuthorization))
}

func TestUpdateBookingRecomputesPrice(t *testing.T) {
	svc, _, _, _ := newTestService("prop-update-2")
	ctx := context.Background()

	b, err := svc.CreateBooking(ctx, testGuestID, models.CreateBookingInput{
		PropertyID:     "prop-update-2",
		CheckIn:        "2030-06-01",
		CheckOut:       "2030-06-04",
		NumberOfGuests: 2,
	})
	require.NoError(t, err)
	require.InDelta(t, 300.0, b.TotalPrice, 1e-9)

	checkOut := "2030-06-06"
	updated, err := svc.UpdateBooking(ctx, testGuestID, models.UpdateBookingInput{
		BookingID: b.ID,
		CheckOut:  &checkOut,
	})
	require.NoError(t, err)
	assert.InDelta(t, 500.0, updated.TotalPrice, 1e-9)
	assert.Equal(t, "2030-06-06", updated.CheckOut.Format(models.DateLayout))
}

// A booking's own dates must not block its edit.
func TestUpdateBookingExcludesItselfFromOverlapCheck(t *testing.T) {
	svc, _, _, _ := newTestService("prop-update-3")
	ctx := context.Background()

	b, err := svc.CreateBooking(ctx, testGuestID, models.CreateBookingInput{
		PropertyID:     "prop-update-3",
		CheckIn:        "2030-06-01",
		CheckOut:       "2030-06-04",
		NumberOfGuests: 2,
	})
	require.NoError(t, err)

	checkIn, checkOut := "2030-06-02", "2030-06-05"
	updated, err := svc.UpdateBooking(ctx, testGuestID, models.UpdateBookingInput{
		BookingID: b.ID,
		CheckIn:   &checkIn,
		CheckOut:  &checkOut,
	})
	require.NoError(t, err)
	assert.Equal(t, "2030-06-02", updated.CheckIn.Format(models.DateLayout))
}

func TestUpdateBookingConflictsWithOtherBooking(t *testing.T) {
	svc, _, _, _ := newTestService("prop-update-4")
	ctx := context.Background()

	b, err := svc.CreateBooking(ctx, testGuestID, models.CreateBookingInput{
		PropertyID:     "prop-update-4",
		CheckIn:        "2030-06-01",
		CheckOut:       "2030-06-04",
		NumberOfGuests: 2,
	})
	require.NoError(t, err)

	_, err = svc.CreateBooking(ctx, testStrangerID, models.CreateBookingInput{
		PropertyID:     "prop-update-4",
		CheckIn:        "2030-06-10",
		CheckOut:       "2030-06-12",
		NumberOfGuests: 1,
	})
	require.NoError(t, err)

	checkIn, checkOut := "2030-06-09", "2030-06-11"
	_, err = svc.UpdateBooking(ctx, testGuestID, models.UpdateBookingInput{
		BookingID: b.ID,
		CheckIn:   &checkIn,
		CheckOut:  &checkOut,
	})
	assert.True(t, booking.HasCode(err, booking.CodeConflict))
}

func TestUpdateBookingRejectsTerminalStates(t *testing.T) {
	svc, _, _, _ := newTestService("prop-update-5")
	ctx := context.Background()

	b, err := svc.CreateBooking(ctx, testGuestID, models.CreateBookingInput{
		PropertyID:     "prop-update-5",
		CheckIn:        "2030-06-01",
		CheckOut:       "2030-06-04",
		NumberOfGuests: 2,
	})
	require.NoError(t, err)

	_, err = svc.CancelBooking(ctx, testGuestID, b.ID)
	require.NoError(t, err)

	guests := 3
	_, err = svc.UpdateBooking(ctx, testGuestID, models.UpdateBookingInput{
		BookingID:      b.ID,
		NumberOfGuests: &guests,
	})
	assert.True(t, booking.HasCode(err, booking.CodeInvalidState))
}
