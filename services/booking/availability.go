package booking

import (
	"fmt"
	"time"

	"homestay/models"
)

// RangesOverlap is the closed-interval overlap test: two stays overlap iff
// a.checkIn <= b.checkOut AND a.checkOut >= b.checkIn. Under this policy a
// checkout on the same day as another booking's check-in counts as an
// overlap, so same-day turnover is not allowed.
// TODO(product): confirm whether same-day turnover should be permitted
// (half-open intervals); the current comparator forbids it.
func RangesOverlap(aIn, aOut, bIn, bOut time.Time) bool {
	return !aIn.After(bOut) && !aOut.Before(bIn)
}

// parseDate parses a YYYY-MM-DD wire date into midnight UTC.
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return time.Time{}, NewValidationError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value))
	}
	return t.UTC(), nil
}

// parseStayRange parses and validates a check-in/check-out pair.
func parseStayRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := parseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	out, err := parseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !in.Before(out) {
		return time.Time{}, time.Time{}, NewValidationError("check-out must be after check-in")
	}
	return in, out, nil
}

// available reports whether the property has no active booking overlapping
// [checkIn, checkOut]. Pure read, no side effects.
func (s *DefaultBookingService) available(propertyID string, checkIn, checkOut time.Time, excludeID string) (bool, error) {
	overlapping, err := s.Repo.FindOverlapping(propertyID, checkIn, checkOut, excludeID)
	if err != nil {
		return false, fmt.Errorf("failed to check availability for property %s: %w", propertyID, err)
	}
	return len(overlapping) == 0, nil
}

// CheckAvailability is the standalone availability query.
func (s *DefaultBookingService) CheckAvailability(input models.AvailabilityInput) (*models.AvailabilityResult, error) {
	in, out, err := parseStayRange(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, err
	}

	property, err := s.PropertyRepo.GetByID(input.PropertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, NewNotFoundError(fmt.Sprintf("property %s not found", input.PropertyID))
	}

	ok, err := s.available(input.PropertyID, in, out, "")
	if err != nil {
		return nil, err
	}
	if !ok {
		return &models.AvailabilityResult{
			Available: false,
			Message:   "Property is not available for the selected dates",
		}, nil
	}
	return &models.AvailabilityResult{Available: true}, nil
}
