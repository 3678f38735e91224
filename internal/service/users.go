package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/azpsen/tailfin-api/internal/models"
	"github.com/azpsen/tailfin-api/internal/repository"
)

// ProfileUpdate describes a profile edit. Nil fields are left unchanged.
type ProfileUpdate struct {
	Username *string
	Password *string
	Level    *models.AuthLevel
}

// UserService manages accounts. Deleting a user also removes everything the
// user owns.
type UserService interface {
	Create(ctx context.Context, username, password string, level models.AuthLevel) (primitive.ObjectID, error)
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// UpdateProfile applies upd to the given user on behalf of actor. Only
	// administrators may change auth levels.
	UpdateProfile(ctx context.Context, actor *models.User, id primitive.ObjectID, upd ProfileUpdate) (*models.User, error)
}

type userService struct {
	users    repository.UserRepository
	flights  repository.FlightRepository
	aircraft repository.AircraftRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(users repository.UserRepository, flights repository.FlightRepository, aircraft repository.AircraftRepository) UserService {
	return &userService{
		users:    users,
		flights:  flights,
		aircraft: aircraft,
	}
}

func (s *userService) Create(ctx context.Context, username, password string, level models.AuthLevel) (primitive.ObjectID, error) {
	if err := ValidateUsername(username); err != nil {
		return primitive.NilObjectID, err
	}
	if err := ValidatePassword(password); err != nil {
		return primitive.NilObjectID, err
	}
	if !level.Valid() {
		return primitive.NilObjectID, fmt.Errorf("invalid auth level %d", level)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return primitive.NilObjectID, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		Level:        level,
		CreatedAt:    time.Now().UTC(),
	}
	id, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return primitive.NilObjectID, ErrUsernameTaken
		}
		return primitive.NilObjectID, err
	}

	logrus.WithFields(logrus.Fields{
		"username": username,
		"level":    level.String(),
	}).Info("Created user")
	return id, nil
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *userService) Get(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	// Cascade to everything the user owned.
	if _, err := s.flights.DeleteByOwner(ctx, id); err != nil {
		return err
	}
	if _, err := s.aircraft.DeleteByOwner(ctx, id); err != nil {
		return err
	}

	logrus.WithField("user_id", id.Hex()).Info("Deleted user and owned records")
	return nil
}

func (s *userService) UpdateProfile(ctx context.Context, actor *models.User, id primitive.ObjectID, upd ProfileUpdate) (*models.User, error) {
	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	repoUpd := repository.UserUpdate{}

	if upd.Username != nil && *upd.Username != target.Username {
		if err := ValidateUsername(*upd.Username); err != nil {
			return nil, err
		}
		taken, err := s.users.CountByUsername(ctx, *upd.Username)
		if err != nil {
			return nil, err
		}
		if taken > 0 {
			return nil, ErrUsernameTaken
		}
		repoUpd.Username = upd.Username
	}

	if upd.Password != nil {
		if err := ValidatePassword(*upd.Password); err != nil {
			return nil, err
		}
		hash, err := HashPassword(*upd.Password)
		if err != nil {
			return nil, err
		}
		repoUpd.PasswordHash = &hash
	}

	if upd.Level != nil && *upd.Level != target.Level {
		if !upd.Level.Valid() {
			return nil, fmt.Errorf("invalid auth level %d", *upd.Level)
		}
		if !actor.IsAdmin() {
			logrus.WithField("username", actor.Username).Warn("Unauthorized attempt to change auth level")
			return nil, ErrForbidden
		}
		repoUpd.Level = upd.Level
	}

	if err := s.users.Update(ctx, id, repoUpd); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return s.users.FindByID(ctx, id)
}
