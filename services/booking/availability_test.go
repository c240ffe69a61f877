package booking_test

import (
	"context"
	"testing"
	"time"

	"homestay/models"
	"homestay/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangesOverlap(t *testing.T) {
	jun := func(d int) time.Time { return date(2030, time.June, d) }

	cases := []struct {
		name                   string
		aIn, aOut, bIn, bOut   int
		want                   bool
	}{
		{"identical ranges", 1, 4, 1, 4, true},
		{"partial overlap", 3, 5, 1, 4, true},
		{"containment", 2, 3, 1, 4, true},
		{"check-in on existing check-out day", 4, 6, 1, 4, true},
		{"check-out on existing check-in day", 1, 3, 3, 6, true},
		{"disjoint after", 5, 7, 1, 4, false},
		{"disjoint before", 1, 2, 3, 6, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := booking.RangesOverlap(jun(tc.aIn), jun(tc.aOut), jun(tc.bIn), jun(tc.bOut))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCheckAvailabilityFreeProperty(t *testing.T) {
	svc, _, _, _ := newTestService("prop-avail-1")

	result, err := svc.CheckAvailability(models.AvailabilityInput{
		PropertyID: "prop-avail-1",
		CheckIn:    "2030-06-01",
		CheckOut:   "2030-06-04",
	})
	require.NoError(t, err)
	assert.True(t, result.Available)
}

func TestCheckAvailabilityBlockedByActiveBooking(t *testing.T) {
	svc, _, _, _ := newTestService("prop-avail-2")

	_, err := svc.CreateBooking(context.Background(), testGuestID, models.CreateBookingInput{
		PropertyID:     "prop-avail-2",
		CheckIn:        "2030-06-01",
		CheckOut:       "2030-06-04",
		NumberOfGuests: 2,
	})
	require.NoError(t, err)

	// Overlapping stay.
	result, err := svc.CheckAvailability(models.AvailabilityInput{
		PropertyID: "prop-avail-2",
		CheckIn:    "2030-06-03",
		CheckOut:   "2030-06-05",
	})
	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, "Property is not available for the selected dates", result.Message)

	// Same-day turnover counts as an overlap.
	result, err = svc.CheckAvailability(models.AvailabilityInput{
		PropertyID: "prop-avail-2",
		CheckIn:    "2030-06-04",
		CheckOut:   "2030-06-06",
	})
	require.NoError(t, err)
	assert.False(t, result.Available)

	// The day after the existing check-out is free.
	result, err = svc.CheckAvailability(models.AvailabilityInput{
		PropertyID: "prop-avail-2",
		CheckIn:    "2030-06-05",
		CheckOut:   "2030-06-07",
	})
	require.NoError(t, err)
	assert.True(t, result.Available)
}

func TestCheckAvailabilityIgnoresCancelledBookings(t *testing.T) {
	svc, _, _, _ := newTestService("prop-avail-3")
	ctx := context.Background()

	b, err := svc.CreateBooking(ctx, testGuestID, models.CreateBookingInput{
		PropertyID:     "prop-avail-3",
		CheckIn:        "2030-06-01",
		CheckOut:       "2030-06-04",
		NumberOfGuests: 2,
	})
	require.NoError(t, err)

	_, err = svc.CancelBooking(ctx, testGuestID, b.ID)
	require.NoError(t, err)

	result, err := svc.CheckAvailability(models.AvailabilityInput{
		PropertyID: "prop-avail-3",
		CheckIn:    "2030-06-02",
		CheckOut:   "2030-06-05",
	})
	require.NoError(t, err)
	assert.True(t, result.Available)
}

func TestCheckAvailabilityValidation(t *testing.T) {
	svc, _, _, _ := newTestService("prop-avail-4")

	_, err := svc.CheckAvailability(models.AvailabilityInput{
		PropertyID: "prop-avail-4",
		CheckIn:    "June 1st",
		CheckOut:   "2030-06-04",
	})
	assert.True(t, booking.HasCode(err, booking.CodeValidation))

	_, err = svc.CheckAvailability(models.AvailabilityInput{
		PropertyID: "prop-avail-4",
		CheckIn:    "2030-06-04",
		CheckOut:   "2030-06-04",
	})
	assert.True(t, booking.HasCode(err, booking.CodeValidation))

	_, err = svc.CheckAvailability(models.AvailabilityInput{
		PropertyID: "no-such-property",
		CheckIn:    "2030-06-01",
		CheckOut:   "2030-06-04",
	})
	assert.True(t, booking.HasCode(err, booking.CodeNotFound))
}
