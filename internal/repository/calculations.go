package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/salinity-service/internal/domain/model"
)

// ErrCalculationNotFound is returned when a calculation record does not exist.
var ErrCalculationNotFound = errors.New("calculation not found")

// CalculationRecord is one summarised calculation kept for history.
type CalculationRecord struct {
	ID          primitive.ObjectID       `bson:"_id,omitempty" json:"id"`
	Fingerprint string                   `bson:"fingerprint" json:"-"`
	Inputs      model.IonMeasurement     `bson:"inputs" json:"inputs"`
	Assumptions model.Assumptions        `bson:"assumptions" json:"assumptions"`
	Summary     model.CalculationSummary `bson:"summary" json:"summary"`
	RequestID   string                   `bson:"request_id,omitempty" json:"request_id,omitempty"`
	CreatedAt   time.Time                `bson:"created_at" json:"created_at"`
}

// CalculationQueryOptions provides options for listing calculation records.
type CalculationQueryOptions struct {
	Since *time.Time
	Until *time.Time
	Limit int
	Skip  int
}

func (opts CalculationQueryOptions) filter() bson.M {
	filter := bson.M{}
	if opts.Since != nil || opts.Until != nil {
		created := bson.M{}
		if opts.Since != nil {
			created["$gte"] = *opts.Since
		}
		if opts.Until != nil {
			created["$lte"] = *opts.Until
		}
		filter["created_at"] = created
	}
	return filter
}

// CalculationsRepository provides methods for calculation history operations.
type CalculationsRepository struct {
	collection *mongo.Collection
}

// NewCalculationsRepository creates a new calculations repository.
func NewCalculationsRepository(db *MongoDB) *CalculationsRepository {
	return &CalculationsRepository{
		collection: db.Calculations,
	}
}

// Create inserts a calculation record.
func (r *CalculationsRepository) Create(ctx context.Context, record *CalculationRecord) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, record)
	return err
}

// GetByID returns the record with the given ID.
func (r *CalculationsRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*CalculationRecord, error) {
	var record CalculationRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrCalculationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns calculation records, newest first.
func (r *CalculationsRepository) List(ctx context.Context, opts CalculationQueryOptions) ([]CalculationRecord, error) {
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	if opts.Limit > 0 {
		findOptions.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, opts.filter(), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var records []CalculationRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Count returns the number of records matching the options.
func (r *CalculationsRepository) Count(ctx context.Context, opts CalculationQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, opts.filter())
}
