package reportRepo

import (
	"context"
	"fmt"
	"time"

	"fixify/database"
	"fixify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReportRepository defines data access for abuse reports.
type ReportRepository interface {
	Create(report *models.Report) error
	ListAll() ([]models.Report, error)
	ListByReported(reportedID string) ([]models.Report, error)
}

// MongoReportRepo implements ReportRepository using MongoDB.
type MongoReportRepo struct {
	coll *mongo.Collection
}

// NewMongoReportRepo creates a new instance of ReportRepository using MongoDB.
func NewMongoReportRepo() ReportRepository {
	return &MongoReportRepo{coll: database.Collection("reports")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReportRepo) Create(report *models.Report) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	report.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, report); err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

func (r *MongoReportRepo) ListAll() ([]models.Report, error) {
	return r.list(bson.M{})
}

func (r *MongoReportRepo) ListByReported(reportedID string) ([]models.Report, error) {
	return r.list(bson.M{"reported_id": reportedID})
}

func (r *MongoReportRepo) list(filter bson.M) ([]models.Report, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer cursor.Close(ctx)

	var reports []models.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode reports: %w", err)
	}
	return reports, nil
}
