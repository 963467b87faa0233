package paymentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fixify/database"
	"fixify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound distinguishes a missing payment from a database failure.
var ErrNotFound = errors.New("payment not found")

// ErrBookingNotPayable reports that the booking guarded by a settlement
// is no longer confirmed-and-unpaid, so the settlement was aborted.
var ErrBookingNotPayable = errors.New("booking is not awaiting payment")

// PaymentRepository defines data access for payments.
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByID(id string) (*models.Payment, error)
	GetByIntentID(intentID string) (*models.Payment, error)
	// SettleCashTransactionally inserts a completed cash payment and
	// moves the booking to completed, all-or-nothing.
	SettleCashTransactionally(ctx context.Context, payment *models.Payment) error
	// SettleIntentTransactionally finalizes a pending online payment,
	// records the site fee and moves the booking to completed,
	// all-or-nothing.
	SettleIntentTransactionally(ctx context.Context, paymentID, bookingID string, siteFee int64) error
	MarkFailed(id string) error
}

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll        *mongo.Collection
	bookingColl *mongo.Collection
}

// NewMongoPaymentRepo creates a new instance of PaymentRepository using MongoDB.
func NewMongoPaymentRepo() PaymentRepository {
	repo := &MongoPaymentRepo{
		coll:        database.Collection("payments"),
		bookingColl: database.Collection("bookings"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPaymentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		// At most one completed payment may ever reference a booking.
		{
			Keys: bson.D{{Key: "booking_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(
				bson.M{"payment_status": models.PaymentCompleted},
			),
		},
		{Keys: bson.D{{Key: "intent_id", Value: 1}}, Options: options.Index().SetSparse(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoPaymentRepo) Create(payment *models.Payment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

func (r *MongoPaymentRepo) GetByID(id string) (*models.Payment, error) {
	return r.findOne(bson.M{"id": id})
}

func (r *MongoPaymentRepo) GetByIntentID(intentID string) (*models.Payment, error) {
	return r.findOne(bson.M{"intent_id": intentID})
}

func (r *MongoPaymentRepo) findOne(filter bson.M) (*models.Payment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var payment models.Payment
	if err := r.coll.FindOne(ctx, filter).Decode(&payment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch payment: %w", err)
	}
	return &payment, nil
}

func (r *MongoPaymentRepo) MarkFailed(id string) error {
	return r.transition(id, models.PaymentFailed, bson.M{})
}

func (r *MongoPaymentRepo) transition(id, status string, extra bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	extra["payment_status"] = status
	extra["updated_at"] = time.Now()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "payment_status": models.PaymentPending},
		bson.M{"$set": extra},
	)
	if err != nil {
		return fmt.Errorf("failed to update payment %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
