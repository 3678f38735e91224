package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/azpsen/tailfin-api/internal/models"
	"github.com/azpsen/tailfin-api/internal/repository"
)

// FlightService is the logbook CRUD layer. Every operation that targets a
// single entry goes through the ownership check; listing all entries is
// reserved for administrators at the handler level.
type FlightService interface {
	ListOwn(ctx context.Context, user *models.User, sortField string, descending bool) ([]models.FlightConcise, error)
	ListAll(ctx context.Context, sortField string, descending bool) ([]models.FlightConcise, error)
	Get(ctx context.Context, actor *models.User, id primitive.ObjectID) (*models.Flight, error)
	Create(ctx context.Context, actor *models.User, flight *models.Flight) (primitive.ObjectID, error)
	Update(ctx context.Context, actor *models.User, id primitive.ObjectID, flight *models.Flight) (*models.Flight, error)
	Delete(ctx context.Context, actor *models.User, id primitive.ObjectID) (*models.Flight, error)
}

type flightService struct {
	flights repository.FlightRepository
}

// NewFlightService creates a new FlightService instance.
func NewFlightService(flights repository.FlightRepository) FlightService {
	return &flightService{flights: flights}
}

func (s *flightService) ListOwn(ctx context.Context, user *models.User, sortField string, descending bool) ([]models.FlightConcise, error) {
	flights, err := s.flights.List(ctx, &user.ID, sortField, descending)
	if err != nil {
		return nil, err
	}
	return concise(flights), nil
}

func (s *flightService) ListAll(ctx context.Context, sortField string, descending bool) ([]models.FlightConcise, error) {
	flights, err := s.flights.List(ctx, nil, sortField, descending)
	if err != nil {
		return nil, err
	}
	return concise(flights), nil
}

func (s *flightService) Get(ctx context.Context, actor *models.User, id primitive.ObjectID) (*models.Flight, error) {
	flight, err := s.find(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return flight, nil
}

func (s *flightService) Create(ctx context.Context, actor *models.User, flight *models.Flight) (primitive.ObjectID, error) {
	flight.ID = primitive.NilObjectID
	flight.User = actor.ID
	return s.flights.Create(ctx, flight)
}

func (s *flightService) Update(ctx context.Context, actor *models.User, id primitive.ObjectID, flight *models.Flight) (*models.Flight, error) {
	existing, err := s.find(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	// Ownership never transfers on update.
	flight.User = existing.User
	if err := s.flights.Replace(ctx, id, flight); err != nil {
		return nil, err
	}
	return flight, nil
}

func (s *flightService) Delete(ctx context.Context, actor *models.User, id primitive.ObjectID) (*models.Flight, error) {
	flight, err := s.find(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.flights.Delete(ctx, id); err != nil {
		return nil, err
	}
	return flight, nil
}

// find loads a flight and enforces the data-isolation contract.
func (s *flightService) find(ctx context.Context, actor *models.User, id primitive.ObjectID) (*models.Flight, error) {
	flight, err := s.flights.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !Authorize(actor, flight.User) {
		logrus.WithFields(logrus.Fields{
			"username":  actor.Username,
			"flight_id": id.Hex(),
		}).Warn("Attempted access to unauthorized flight")
		return nil, ErrForbidden
	}
	return flight, nil
}

func concise(flights []models.Flight) []models.FlightConcise {
	out := make([]models.FlightConcise, 0, len(flights))
	for i := range flights {
		out = append(out, flights[i].Concise())
	}
	return out
}
