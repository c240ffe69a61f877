package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"homestay/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CreateTransactionally validates, re-checks the overlap and inserts the
// booking inside a single Mongo session transaction. The service layer
// already serializes per property in-process; this transaction is the guard
// against concurrent writers in other processes.
func (r *MongoBookingRepo) CreateTransactionally(ctx context.Context, booking *models.Booking) error {
	client := r.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if err := r.validate(sc, booking, true); err != nil {
			return err
		}

		count, err := r.bookingColl.CountDocuments(sc,
			overlapFilter(booking.PropertyID, booking.CheckIn, booking.CheckOut, ""))
		if err != nil {
			return fmt.Errorf("overlap re-check failed: %w", err)
		}
		if count > 0 {
			return ErrOverlap
		}

		now := time.Now()
		booking.CreatedAt = now
		booking.UpdatedAt = now

		if _, err := r.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}

	return nil
}
