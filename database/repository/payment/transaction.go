package paymentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fixify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// completeBooking moves a confirmed, unpaid booking to completed and
// links the payment. Zero matches means the booking was already paid,
// cancelled or never existed, and the whole settlement must abort.
func (r *MongoPaymentRepo) completeBooking(sc mongo.SessionContext, bookingID, paymentID string) error {
	filter := bson.M{
		"id":         bookingID,
		"status":     models.BookingConfirmed,
		"payment_id": "",
	}
	update := bson.M{"$set": bson.M{
		"payment_id": paymentID,
		"status":     models.BookingCompleted,
		"updated_at": time.Now(),
	}}

	res, err := r.bookingColl.UpdateOne(sc, filter, update)
	if err != nil {
		return fmt.Errorf("complete booking failed: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrBookingNotPayable
	}
	return nil
}

func (r *MongoPaymentRepo) inTransaction(ctx context.Context, fn func(mongo.SessionContext) error) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}

// SettleCashTransactionally inserts the completed cash payment and
// completes the booking as one unit. A crash or failure between the two
// writes can never leave a completed payment beside an unpaid booking.
func (r *MongoPaymentRepo) SettleCashTransactionally(ctx context.Context, payment *models.Payment) error {
	now := time.Now()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	err := r.inTransaction(ctx, func(sc mongo.SessionContext) error {
		if _, err := r.coll.InsertOne(sc, payment); err != nil {
			return fmt.Errorf("insert payment failed: %w", err)
		}
		return r.completeBooking(sc, payment.BookingID, payment.ID)
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotPayable) {
			return ErrBookingNotPayable
		}
		return fmt.Errorf("cash settlement failed: %w", err)
	}
	return nil
}

// SettleIntentTransactionally finalizes a pending online payment and
// completes the booking as one unit. The pending guard on the payment
// update makes a concurrent double confirmation abort cleanly.
func (r *MongoPaymentRepo) SettleIntentTransactionally(ctx context.Context, paymentID, bookingID string, siteFee int64) error {
	err := r.inTransaction(ctx, func(sc mongo.SessionContext) error {
		res, err := r.coll.UpdateOne(sc,
			bson.M{"id": paymentID, "payment_status": models.PaymentPending},
			bson.M{"$set": bson.M{
				"payment_status": models.PaymentCompleted,
				"site_fee":       siteFee,
				"updated_at":     time.Now(),
			}},
		)
		if err != nil {
			return fmt.Errorf("complete payment failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrNotFound
		}
		return r.completeBooking(sc, bookingID, paymentID)
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotPayable) || errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("online settlement failed: %w", err)
	}
	return nil
}
