package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fixify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AppendRequestIfSlotAvailable appends a pending request in a single
// guarded write. The filter only matches while the target slot is still
// available, so the MatchedCount check doubles as the compare-and-swap:
// two concurrent appends for the last available slot cannot both land
// once the first acceptance consumes it.
func (r *MongoScheduleRepo) AppendRequestIfSlotAvailable(scheduleID, slotTime string, req models.Request) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id": scheduleID,
		"slots": bson.M{
			"$elemMatch": bson.M{
				"time":   slotTime,
				"status": models.SlotAvailable,
			},
		},
	}
	update := bson.M{
		"$push": bson.M{"requests": req},
		"$inc":  bson.M{"version": 1},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to append booking request: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrSlotUnavailable
	}
	return nil
}

// UpdateRequestStatus moves an embedded request out of pending. The
// pending guard in the filter enforces the once-only transition.
func (r *MongoScheduleRepo) UpdateRequestStatus(requestID, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"requests": bson.M{
			"$elemMatch": bson.M{
				"id":     requestID,
				"status": models.RequestPending,
			},
		},
	}
	update := bson.M{
		"$set": bson.M{
			"requests.$.status": status,
			"updated_at":        time.Now(),
		},
		"$inc": bson.M{"version": 1},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrRequestNotPending
	}
	return nil
}

// AcceptRequestTransactionally performs the three acceptance writes as
// one unit: insert the booking, mark the slot booked and mark the
// request booked. The slot and request guards sit in the update filter,
// so a concurrent acceptance of the same request (or of another request
// on the same slot) aborts with no partial state left behind.
func (r *MongoScheduleRepo) AcceptRequestTransactionally(
	ctx context.Context,
	scheduleID string,
	req models.Request,
	booking *models.Booking,
) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}

		filter := bson.M{
			"id": scheduleID,
			"slots": bson.M{
				"$elemMatch": bson.M{
					"time":   req.Time,
					"status": models.SlotAvailable,
				},
			},
			"requests": bson.M{
				"$elemMatch": bson.M{
					"id":     req.ID,
					"status": models.RequestPending,
				},
			},
		}
		update := bson.M{
			"$set": bson.M{
				"slots.$[slot].status":   models.SlotBooked,
				"requests.$[req].status": models.RequestBooked,
				"updated_at":             time.Now(),
			},
			"$inc": bson.M{"version": 1},
		}
		opts := options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{
				bson.M{"slot.time": req.Time},
				bson.M{"req.id": req.ID},
			},
		})

		res, err := r.coll.UpdateOne(sc, filter, update, opts)
		if err != nil {
			return fmt.Errorf("consume slot failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrSlotUnavailable
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
		if errors.Is(err, ErrSlotUnavailable) {
			return ErrSlotUnavailable
		}
		return fmt.Errorf("acceptance transaction failed: %w", err)
	}

	return nil
}

// ReleaseSlotTransactionally undoes a confirmed booking: the booking is
// cancelled, the slot goes back to available and the originating request
// is marked cancelled, all-or-nothing.
func (r *MongoScheduleRepo) ReleaseSlotTransactionally(
	ctx context.Context,
	scheduleID, requestID, slotTime, bookingID string,
) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		res, err := r.bookingColl.UpdateOne(sc,
			bson.M{"id": bookingID, "status": models.BookingConfirmed},
			bson.M{"$set": bson.M{"status": models.BookingCancelled, "updated_at": time.Now()}},
		)
		if err != nil {
			return fmt.Errorf("cancel booking failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrNotFound
		}

		update := bson.M{
			"$set": bson.M{
				"slots.$[slot].status":   models.SlotAvailable,
				"requests.$[req].status": models.RequestCancelled,
				"updated_at":             time.Now(),
			},
			"$inc": bson.M{"version": 1},
		}
		opts := options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{
				bson.M{"slot.time": slotTime},
				bson.M{"req.id": requestID},
			},
		})

		res, err = r.coll.UpdateOne(sc, bson.M{"id": scheduleID}, update, opts)
		if err != nil {
			return fmt.Errorf("release slot failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrNotFound
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
		return fmt.Errorf("release transaction failed: %w", err)
	}

	return nil
}
