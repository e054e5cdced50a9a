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

// AssumptionProfile is a stored set of calculation assumptions. At most one
// profile is active; it replaces the built-in defaults for requests.
type AssumptionProfile struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Assumptions model.Assumptions  `bson:"assumptions" json:"assumptions"`
	Active      bool               `bson:"active" json:"active"`
	Version     int                `bson:"version" json:"version"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
	CreatedBy   string             `bson:"created_by,omitempty" json:"created_by,omitempty"`
}

// AssumptionProfilesRepository provides methods for assumption profile operations.
type AssumptionProfilesRepository struct {
	collection *mongo.Collection
}

// NewAssumptionProfilesRepository creates a new assumption profiles repository.
func NewAssumptionProfilesRepository(db *MongoDB) *AssumptionProfilesRepository {
	return &AssumptionProfilesRepository{
		collection: db.AssumptionProfiles,
	}
}

// GetActive returns the active profile, or nil when none is stored.
func (r *AssumptionProfilesRepository) GetActive(ctx context.Context) (*AssumptionProfile, error) {
	var profile AssumptionProfile
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Create deactivates the current profile and stores a new active one. The
// version continues from the latest stored profile.
func (r *AssumptionProfilesRepository) Create(ctx context.Context, assumptions model.Assumptions, createdBy string) (*AssumptionProfile, error) {
	version := 1
	var latest AssumptionProfile
	err := r.collection.FindOne(ctx, bson.M{}, options.FindOne().SetSort(bson.M{"version": -1})).Decode(&latest)
	switch {
	case err == nil:
		version = latest.Version + 1
	case !errors.Is(err, mongo.ErrNoDocuments):
		return nil, err
	}

	now := time.Now()
	_, err = r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": now}},
	)
	if err != nil {
		return nil, err
	}

	profile := AssumptionProfile{
		ID:          primitive.NewObjectID(),
		Assumptions: assumptions,
		Active:      true,
		Version:     version,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   createdBy,
	}

	if _, err := r.collection.InsertOne(ctx, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// List returns stored profiles, newest first.
func (r *AssumptionProfilesRepository) List(ctx context.Context, limit int) ([]AssumptionProfile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "version", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var profiles []AssumptionProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
