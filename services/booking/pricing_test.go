package booking_test

import (
	"testing"
	"time"

	"homestay/services/booking"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	assert.Equal(t, 3, booking.Nights(date(2030, time.June, 1), date(2030, time.June, 4)))
	assert.Equal(t, 1, booking.Nights(date(2030, time.June, 1), date(2030, time.June, 2)))
	assert.Equal(t, 31, booking.Nights(date(2030, time.January, 1), date(2030, time.February, 1)))
}

func TestNightsRoundsPartialDaysUp(t *testing.T) {
	in := time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC)
	out := time.Date(2030, time.June, 3, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, booking.Nights(in, out))
}

func TestCalculateTotalPrice(t *testing.T) {
	in := date(2030, time.June, 1)
	out := date(2030, time.June, 4)
	assert.InDelta(t, 300.0, booking.CalculateTotalPrice(100, in, out), 1e-9)
	assert.InDelta(t, 149.85, booking.CalculateTotalPrice(49.95, in, out), 1e-9)
}
