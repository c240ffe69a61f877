package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"homestay/database"
	"homestay/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository using MongoDB. It holds a
// handle on the properties collection as well, so capacity can be
// re-validated at the storage layer.
type MongoBookingRepo struct {
	bookingColl  *mongo.Collection
	propertyColl *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	repo := &MongoBookingRepo{
		bookingColl:  db.Collection("bookings"),
		propertyColl: db.Collection("properties"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// validate enforces the store invariants. Past check-in is only rejected on
// insert: an existing booking legitimately ages past its check-in date.
func (r *MongoBookingRepo) validate(ctx context.Context, booking *models.Booking, insert bool) error {
	if !booking.CheckIn.Before(booking.CheckOut) {
		return ErrInvalidDates
	}
	if insert {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		if booking.CheckIn.Before(today) {
			return ErrInvalidDates
		}
	}
	if booking.NumberOfGuests <= 0 {
		return ErrCapacityExceeded
	}

	var prop struct {
		MaxGuests int `bson:"max_guests"`
	}
	err := r.propertyColl.FindOne(ctx, bson.M{"id": booking.PropertyID}).Decode(&prop)
	if err != nil {
		return fmt.Errorf("failed to fetch property %s for validation: %w", booking.PropertyID, err)
	}
	if booking.NumberOfGuests > prop.MaxGuests {
		return ErrCapacityExceeded
	}
	return nil
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if err := r.validate(ctx, booking, true); err != nil {
		return err
	}

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.bookingColl.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.bookingColl.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// Update replaces an existing booking document.
func (r *MongoBookingRepo) Update(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if err := r.validate(ctx, booking, false); err != nil {
		return err
	}

	booking.UpdatedAt = time.Now()
	filter := bson.M{"id": booking.ID}
	update := bson.M{"$set": booking}

	result, err := r.bookingColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update booking with id %s: %w", booking.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", booking.ID)
	}
	return nil
}

// Delete removes a booking document by its ID.
func (r *MongoBookingRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.bookingColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete booking with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("booking with id %s not found", id)
	}
	return nil
}
