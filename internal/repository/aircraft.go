package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/azpsen/tailfin-api/internal/models"
)

// AircraftRepository defines the interface for aircraft data operations.
type AircraftRepository interface {
	List(ctx context.Context, owner *primitive.ObjectID) ([]models.Aircraft, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Aircraft, error)
	Create(ctx context.Context, aircraft *models.Aircraft) (primitive.ObjectID, error)
	Replace(ctx context.Context, id primitive.ObjectID, aircraft *models.Aircraft) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByOwner(ctx context.Context, owner primitive.ObjectID) (int64, error)
}

type aircraftRepository struct {
	coll *mongo.Collection
}

// NewAircraftRepository creates a new AircraftRepository instance.
func NewAircraftRepository(db *mongo.Database) AircraftRepository {
	return &aircraftRepository{coll: db.Collection(models.Aircraft{}.Collection())}
}

func (r *aircraftRepository) List(ctx context.Context, owner *primitive.ObjectID) ([]models.Aircraft, error) {
	filter := bson.M{}
	if owner != nil {
		filter["user"] = *owner
	}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list aircraft: %w", err)
	}
	defer cur.Close(ctx)

	var aircraft []models.Aircraft
	if err := cur.All(ctx, &aircraft); err != nil {
		return nil, fmt.Errorf("failed to decode aircraft: %w", err)
	}
	return aircraft, nil
}

func (r *aircraftRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Aircraft, error) {
	var aircraft models.Aircraft
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&aircraft)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find aircraft %s: %w", id.Hex(), err)
	}
	return &aircraft, nil
}

func (r *aircraftRepository) Create(ctx context.Context, aircraft *models.Aircraft) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, aircraft)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create aircraft: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (r *aircraftRepository) Replace(ctx context.Context, id primitive.ObjectID, aircraft *models.Aircraft) error {
	aircraft.ID = id
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, aircraft)
	if err != nil {
		return fmt.Errorf("failed to update aircraft %s: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *aircraftRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete aircraft %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *aircraftRepository) DeleteByOwner(ctx context.Context, owner primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"user": owner})
	if err != nil {
		return 0, fmt.Errorf("failed to delete aircraft for user %s: %w", owner.Hex(), err)
	}
	return res.DeletedCount, nil
}
