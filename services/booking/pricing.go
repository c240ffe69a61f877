package booking

import (
	"math"
	"time"
)

// Nights returns the number of billable nights between check-in and
// check-out, rounding partial days up.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// CalculateTotalPrice computes nightlyPrice * nights for the stay.
func CalculateTotalPrice(nightlyPrice float64, checkIn, checkOut time.Time) float64 {
	return nightlyPrice * float64(Nights(checkIn, checkOut))
}
