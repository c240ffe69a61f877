package bookingRepo

import (
	"fmt"
	"time"

	"homestay/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// overlapFilter builds the active-booking overlap query. The comparator is
// deliberately closed-interval: a checkout sharing a date with another
// booking's check-in still counts as an overlap (no same-day turnover).
func overlapFilter(propertyID string, checkIn, checkOut time.Time, excludeID string) bson.M {
	filter := bson.M{
		"property_id": propertyID,
		"status":      bson.M{"$nin": bson.A{models.BookingCancelled}},
		"check_in":    bson.M{"$lte": checkOut},
		"check_out":   bson.M{"$gte": checkIn},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	return filter
}

// FindOverlapping returns active bookings on the property overlapping the
// given range. Served by the (property_id, check_in, check_out) index.
func (r *MongoBookingRepo) FindOverlapping(propertyID string, checkIn, checkOut time.Time, excludeID string) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.bookingColl.Find(ctx, overlapFilter(propertyID, checkIn, checkOut, excludeID))
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode overlapping bookings: %w", err)
	}
	return bookings, nil
}

// GetByGuest returns all bookings created by the given user, newest first.
func (r *MongoBookingRepo) GetByGuest(guestID string) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.bookingColl.Find(ctx, bson.M{"guest_id": guestID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings for guest %s: %w", guestID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode guest bookings: %w", err)
	}
	return bookings, nil
}

// GetByProperty returns all bookings for the given property, earliest check-in first.
func (r *MongoBookingRepo) GetByProperty(propertyID string) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "check_in", Value: 1}})
	cursor, err := r.bookingColl.Find(ctx, bson.M{"property_id": propertyID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings for property %s: %w", propertyID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode property bookings: %w", err)
	}
	return bookings, nil
}
