package approvalRepo

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

var (
	// ErrNotFound distinguishes a missing approval from a database failure.
	ErrNotFound = errors.New("approval not found")
	// ErrAlreadyPending is returned when the provider already has an
	// undecided application.
	ErrAlreadyPending = errors.New("a pending approval already exists for this provider")
	// ErrAlreadyDecided is returned when the application has left Pending;
	// a decision is taken exactly once.
	ErrAlreadyDecided = errors.New("approval has already been decided")
)

// ApprovalRepository defines data access for provider applications.
type ApprovalRepository interface {
	Create(approval *models.Approval) error
	GetByID(id string) (*models.Approval, error)
	GetPendingByProvider(providerID string) (*models.Approval, error)
	ListAll() ([]models.Approval, error)
	ListPending() ([]models.Approval, error)
	// Decide moves a Pending application to Approved or Rejected.
	Decide(id, status string) error
}

// MongoApprovalRepo implements ApprovalRepository using MongoDB.
type MongoApprovalRepo struct {
	coll *mongo.Collection
}

// NewMongoApprovalRepo creates a new instance of ApprovalRepository using MongoDB.
func NewMongoApprovalRepo() ApprovalRepository {
	repo := &MongoApprovalRepo{coll: database.Collection("approvals")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoApprovalRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "provider_id", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoApprovalRepo) Create(approval *models.Approval) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	existing := r.coll.FindOne(ctx, bson.M{
		"provider_id": approval.ProviderID,
		"status":      models.ApprovalPending,
	})
	if existing.Err() == nil {
		return ErrAlreadyPending
	}
	if !errors.Is(existing.Err(), mongo.ErrNoDocuments) {
		return fmt.Errorf("failed to check pending approvals: %w", existing.Err())
	}

	now := time.Now()
	approval.CreatedAt = now
	approval.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, approval); err != nil {
		return fmt.Errorf("failed to create approval: %w", err)
	}
	return nil
}

func (r *MongoApprovalRepo) GetByID(id string) (*models.Approval, error) {
	return r.findOne(bson.M{"id": id})
}

func (r *MongoApprovalRepo) GetPendingByProvider(providerID string) (*models.Approval, error) {
	return r.findOne(bson.M{"provider_id": providerID, "status": models.ApprovalPending})
}

func (r *MongoApprovalRepo) findOne(filter bson.M) (*models.Approval, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var approval models.Approval
	if err := r.coll.FindOne(ctx, filter).Decode(&approval); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch approval: %w", err)
	}
	return &approval, nil
}

func (r *MongoApprovalRepo) ListAll() ([]models.Approval, error) {
	return r.list(bson.M{})
}

func (r *MongoApprovalRepo) ListPending() ([]models.Approval, error) {
	return r.list(bson.M{"status": models.ApprovalPending})
}

func (r *MongoApprovalRepo) list(filter bson.M) ([]models.Approval, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list approvals: %w", err)
	}
	defer cursor.Close(ctx)

	var approvals []models.Approval
	if err := cursor.All(ctx, &approvals); err != nil {
		return nil, fmt.Errorf("failed to decode approvals: %w", err)
	}
	return approvals, nil
}

func (r *MongoApprovalRepo) Decide(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "status": models.ApprovalPending},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to decide approval %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrAlreadyDecided
	}
	return nil
}
