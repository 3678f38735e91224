package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/azpsen/tailfin-api/internal/models"
	"github.com/azpsen/tailfin-api/internal/repository"
)

// AircraftService manages per-user aircraft records under the same
// isolation contract as flights.
type AircraftService interface {
	ListOwn(ctx context.Context, user *models.User) ([]models.Aircraft, error)
	ListAll(ctx context.Context) ([]models.Aircraft, error)
	Get(ctx context.Context, actor *models.User, id primitive.ObjectID) (*models.Aircraft, error)
	Create(ctx context.Context, actor *models.User, aircraft *models.Aircraft) (primitive.ObjectID, error)
	Update(ctx context.Context, actor *models.User, id primitive.ObjectID, aircraft *models.Aircraft) (*models.Aircraft, error)
	Delete(ctx context.Context, actor *models.User, id primitive.ObjectID) (*models.Aircraft, error)
}

type aircraftService struct {
	aircraft repository.AircraftRepository
}

// NewAircraftService creates a new AircraftService instance.
func NewAircraftService(aircraft repository.AircraftRepository) AircraftService {
	return &aircraftService{aircraft: aircraft}
}

func (s *aircraftService) ListOwn(ctx context.Context, user *models.User) ([]models.Aircraft, error) {
	return s.aircraft.List(ctx, &user.ID)
}

func (s *aircraftService) ListAll(ctx context.Context) ([]models.Aircraft, error) {
	return s.aircraft.List(ctx, nil)
}

func (s *aircraftService) Get(ctx context.Context, actor *models.User, id primitive.ObjectID) (*models.Aircraft, error) {
	return s.find(ctx, actor, id)
}

func (s *aircraftService) Create(ctx context.Context, actor *models.User, aircraft *models.Aircraft) (primitive.ObjectID, error) {
	if err := models.ValidateCategoryClass(aircraft.AircraftCategory, aircraft.AircraftClass); err != nil {
		return primitive.NilObjectID, err
	}
	aircraft.ID = primitive.NilObjectID
	aircraft.User = actor.ID
	return s.aircraft.Create(ctx, aircraft)
}

func (s *aircraftService) Update(ctx context.Context, actor *models.User, id primitive.ObjectID, aircraft *models.Aircraft) (*models.Aircraft, error) {
	if err := models.ValidateCategoryClass(aircraft.AircraftCategory, aircraft.AircraftClass); err != nil {
		return nil, err
	}

	existing, err := s.find(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	aircraft.User = existing.User
	if err := s.aircraft.Replace(ctx, id, aircraft); err != nil {
		return nil, err
	}
	return aircraft, nil
}

func (s *aircraftService) Delete(ctx context.Context, actor *models.User, id primitive.ObjectID) (*models.Aircraft, error) {
	aircraft, err := s.find(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.aircraft.Delete(ctx, id); err != nil {
		return nil, err
	}
	return aircraft, nil
}

func (s *aircraftService) find(ctx context.Context, actor *models.User, id primitive.ObjectID) (*models.Aircraft, error) {
	aircraft, err := s.aircraft.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !Authorize(actor, aircraft.User) {
		logrus.WithFields(logrus.Fields{
			"username":    actor.Username,
			"aircraft_id": id.Hex(),
		}).Warn("Attempted access to unauthorized aircraft")
		return nil, ErrForbidden
	}
	return aircraft, nil
}
