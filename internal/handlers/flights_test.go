package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/azpsen/tailfin-api/internal/middleware"
	"github.com/azpsen/tailfin-api/internal/models"
	"github.com/azpsen/tailfin-api/internal/service"
)

// =============================================================================
// Mock FlightService
// =============================================================================

type mockFlightService struct {
	listOwnFunc func(ctx context.Context, user *models.User, sortField string, descending bool) ([]models.FlightConcise, error)
	listAllFunc func(ctx context.Context, sortField string, descending bool) ([]models.FlightConcise, error)
	getFunc     func(ctx context.Context, actor *models.User, id primitive.ObjectID) (*models.Flight, error)
	createFunc  func(ctx context.Context, actor *models.User, flight *models.Flight) (primitive.ObjectID, error)
	updateFunc  func(ctx context.Context, actor *models.User, id primitive.ObjectID, flight *models.Flight) (*models.Flight, error)
	deleteFunc  func(ctx context.Context, actor *models.User, id primitive.ObjectID) (*models.Flight, error)
}

func (m *mockFlightService) ListOwn(ctx context.Context, user *models.User, sortField string, descending bool) ([]models.FlightConcise, error) {
	if m.listOwnFunc != nil {
		return m.listOwnFunc(ctx, user, sortField, descending)
	}
	return nil, errors.New("not implemented")
}

func (m *mockFlightService) ListAll(ctx context.Context, sortField string, descending bool) ([]models.FlightConcise, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx, sortField, descending)
	}
	return nil, errors.New("not implemented")
}

func (m *mockFlightService) Get(ctx context.Context, actor *models.User, id primitive.ObjectID) (*models.Flight, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, actor, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockFlightService) Create(ctx context.Context, actor *models.User, flight *models.Flight) (primitive.ObjectID, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, actor, flight)
	}
	return primitive.NilObjectID, errors.New("not implemented")
}

func (m *mockFlightService) Update(ctx context.Context, actor *models.User, id primitive.ObjectID, flight *models.Flight) (*models.Flight, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, actor, id, flight)
	}
	return nil, errors.New("not implemented")
}

func (m *mockFlightService) Delete(ctx context.Context, actor *models.User, id primitive.ObjectID) (*models.Flight, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, actor, id)
	}
	return nil, errors.New("not implemented")
}

// =============================================================================
// Test Helpers
// =============================================================================

var testActor = &models.User{
	ID:       primitive.NewObjectID(),
	Username: "pilot",
	Level:    models.AuthLevelUser,
}

// flightRouter mounts the handler behind a gateway that always resolves to
// testActor.
func flightRouter(mockService *mockFlightService) *gin.Engine {
	auth := &mockAuthService{
		authenticateFunc: func(ctx context.Context, tokenString string) (*models.User, error) {
			return testActor, nil
		},
	}
	handler := NewFlightHandler(mockService)

	router := gin.New()
	guard := middleware.RequireAuth(auth, models.AuthLevelUser)
	router.GET("/flights", guard, handler.List)
	router.GET("/flights/:id", guard, handler.Get)
	router.POST("/flights", guard, handler.Create)
	router.PUT("/flights/:id", guard, handler.Update)
	router.DELETE("/flights/:id", guard, handler.Delete)
	return router
}

func doRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		data, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(data))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// =============================================================================
// List Tests
// =============================================================================

func TestFlightList_SortParams(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		wantSort       string
		wantDescending bool
	}{
		{
			name:           "defaults",
			query:          "",
			wantSort:       "date",
			wantDescending: true,
		},
		{
			name:           "ascending by aircraft",
			query:          "?sort=aircraft&order=asc",
			wantSort:       "aircraft",
			wantDescending: false,
		},
		{
			name:           "explicit descending",
			query:          "?order=desc",
			wantSort:       "date",
			wantDescending: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotSort string
			var gotDescending bool
			mockService := &mockFlightService{
				listOwnFunc: func(ctx context.Context, user *models.User, sortField string, descending bool) ([]models.FlightConcise, error) {
					gotSort = sortField
					gotDescending = descending
					return []models.FlightConcise{}, nil
				},
			}
			router := flightRouter(mockService)

			w := doRequest(router, http.MethodGet, "/flights"+tt.query, nil)

			if w.Code != http.StatusOK {
				t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
			}
			if gotSort != tt.wantSort {
				t.Errorf("Sort field = %q, want %q", gotSort, tt.wantSort)
			}
			if gotDescending != tt.wantDescending {
				t.Errorf("Descending = %v, want %v", gotDescending, tt.wantDescending)
			}
		})
	}
}

// =============================================================================
// Get Tests
// =============================================================================

func TestFlightGet_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "missing entry",
			err:        service.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "another user's entry",
			err:        service.ErrForbidden,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "backend failure",
			err:        errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mockFlightService{
				getFunc: func(ctx context.Context, actor *models.User, id primitive.ObjectID) (*models.Flight, error) {
					return nil, tt.err
				},
			}
			router := flightRouter(mockService)

			w := doRequest(router, http.MethodGet, "/flights/"+primitive.NewObjectID().Hex(), nil)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestFlightGet_InvalidID(t *testing.T) {
	router := flightRouter(&mockFlightService{})

	w := doRequest(router, http.MethodGet, "/flights/not-an-object-id", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

// =============================================================================
// Create Tests
// =============================================================================

func TestFlightCreate_Success(t *testing.T) {
	id := primitive.NewObjectID()
	var gotActor *models.User
	mockService := &mockFlightService{
		createFunc: func(ctx context.Context, actor *models.User, flight *models.Flight) (primitive.ObjectID, error) {
			gotActor = actor
			return id, nil
		},
	}
	router := flightRouter(mockService)

	body := map[string]any{
		"date":     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		"aircraft": "N12345",
	}
	w := doRequest(router, http.MethodPost, "/flights", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("Status = %d, want %d; body %s", w.Code, http.StatusCreated, w.Body.String())
	}
	if gotActor != testActor {
		t.Error("Create() did not receive the authenticated actor")
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if resp["id"] != id.Hex() {
		t.Errorf("Response id = %q, want %q", resp["id"], id.Hex())
	}
}

func TestFlightCreate_MissingDate(t *testing.T) {
	router := flightRouter(&mockFlightService{})

	w := doRequest(router, http.MethodPost, "/flights", map[string]any{"aircraft": "N12345"})

	if w.Code != http.StatusBadRequest {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
