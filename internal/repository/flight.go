package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/azpsen/tailfin-api/internal/models"
)

// FlightRepository defines the interface for flight data operations.
type FlightRepository interface {
	// List returns flights sorted by the given field, optionally filtered
	// by owner. A nil owner returns flights for every user.
	List(ctx context.Context, owner *primitive.ObjectID, sortField string, descending bool) ([]models.Flight, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Flight, error)
	Create(ctx context.Context, flight *models.Flight) (primitive.ObjectID, error)
	Replace(ctx context.Context, id primitive.ObjectID, flight *models.Flight) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByOwner(ctx context.Context, owner primitive.ObjectID) (int64, error)
}

type flightRepository struct {
	coll *mongo.Collection
}

// NewFlightRepository creates a new FlightRepository instance.
func NewFlightRepository(db *mongo.Database) FlightRepository {
	return &flightRepository{coll: db.Collection(models.Flight{}.Collection())}
}

func (r *flightRepository) List(ctx context.Context, owner *primitive.ObjectID, sortField string, descending bool) ([]models.Flight, error) {
	filter := bson.M{}
	if owner != nil {
		filter["user"] = *owner
	}
	if sortField == "" {
		sortField = "date"
	}
	order := 1
	if descending {
		order = -1
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: sortField, Value: order}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}
	defer cur.Close(ctx)

	var flights []models.Flight
	if err := cur.All(ctx, &flights); err != nil {
		return nil, fmt.Errorf("failed to decode flights: %w", err)
	}
	return flights, nil
}

func (r *flightRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Flight, error) {
	var flight models.Flight
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&flight)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find flight %s: %w", id.Hex(), err)
	}
	return &flight, nil
}

func (r *flightRepository) Create(ctx context.Context, flight *models.Flight) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, flight)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create flight: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (r *flightRepository) Replace(ctx context.Context, id primitive.ObjectID, flight *models.Flight) error {
	flight.ID = id
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, flight)
	if err != nil {
		return fmt.Errorf("failed to update flight %s: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *flightRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete flight %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *flightRepository) DeleteByOwner(ctx context.Context, owner primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"user": owner})
	if err != nil {
		return 0, fmt.Errorf("failed to delete flights for user %s: %w", owner.Hex(), err)
	}
	return res.DeletedCount, nil
}
