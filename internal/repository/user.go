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

// UserUpdate describes a partial update to a user document. Nil fields are
// left untouched.
type UserUpdate struct {
	Username     *string
	PasswordHash *string
	Level        *models.AuthLevel
}

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, upd UserUpdate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountByLevel(ctx context.Context, level models.AuthLevel) (int64, error)
	CountByUsername(ctx context.Context, username string) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{coll: db.Collection(models.User{}.Collection())}
}

func (r *userRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create username index: %w", err)
	}
	return nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by id %s: %w", id.Hex(), err)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrDuplicate
		}
		return primitive.NilObjectID, fmt.Errorf("failed to create user: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (r *userRepository) Update(ctx context.Context, id primitive.ObjectID, upd UserUpdate) error {
	set := bson.M{}
	if upd.Username != nil {
		set["username"] = *upd.Username
	}
	if upd.PasswordHash != nil {
		set["password"] = *upd.PasswordHash
	}
	if upd.Level != nil {
		set["level"] = *upd.Level
	}
	if len(set) == 0 {
		return nil
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to update user %s: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) CountByLevel(ctx context.Context, level models.AuthLevel) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"level": level})
	if err != nil {
		return 0, fmt.Errorf("failed to count users by level: %w", err)
	}
	return count, nil
}

func (r *userRepository) CountByUsername(ctx context.Context, username string) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"username": username})
	if err != nil {
		return 0, fmt.Errorf("failed to count users by username: %w", err)
	}
	return count, nil
}
