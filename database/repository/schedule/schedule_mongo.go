package scheduleRepo

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

// MongoScheduleRepo implements ScheduleRepository using MongoDB. It holds
// the bookings collection as well because request acceptance writes both
// documents inside one transaction.
type MongoScheduleRepo struct {
	coll        *mongo.Collection
	bookingColl *mongo.Collection
}

// NewMongoScheduleRepo creates a new instance of ScheduleRepository using MongoDB.
func NewMongoScheduleRepo() ScheduleRepository {
	repo := &MongoScheduleRepo{
		coll:        database.Collection("schedules"),
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

func (r *MongoScheduleRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "provider_id", Value: 1}, {Key: "date", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "requests.id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoScheduleRepo) Create(schedule *models.Schedule) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	schedule.CreatedAt = now
	schedule.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, schedule); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSchedule
		}
		return fmt.Errorf("failed to create schedule: %w", err)
	}
	return nil
}

func (r *MongoScheduleRepo) GetByID(id string) (*models.Schedule, error) {
	return r.findOne(bson.M{"id": id})
}

func (r *MongoScheduleRepo) GetByRequestID(requestID string) (*models.Schedule, error) {
	return r.findOne(bson.M{"requests.id": requestID})
}

func (r *MongoScheduleRepo) GetByProviderAndDate(providerID, date string) (*models.Schedule, error) {
	return r.findOne(bson.M{"provider_id": providerID, "date": date})
}

func (r *MongoScheduleRepo) findOne(filter bson.M) (*models.Schedule, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var schedule models.Schedule
	if err := r.coll.FindOne(ctx, filter).Decode(&schedule); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}
	return &schedule, nil
}

func (r *MongoScheduleRepo) ListByProvider(providerID string) ([]models.Schedule, error) {
	return r.list(bson.M{"provider_id": providerID})
}

func (r *MongoScheduleRepo) ListFromDate(providerID, date string) ([]models.Schedule, error) {
	return r.list(bson.M{"provider_id": providerID, "date": bson.M{"$gte": date}})
}

func (r *MongoScheduleRepo) list(filter bson.M) ([]models.Schedule, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer cursor.Close(ctx)

	var schedules []models.Schedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, fmt.Errorf("failed to decode schedules: %w", err)
	}
	return schedules, nil
}
