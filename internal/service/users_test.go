package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/azpsen/tailfin-api/internal/models"
	"github.com/azpsen/tailfin-api/internal/repository"
)

// =============================================================================
// Mock AircraftRepository
// =============================================================================

type mockAircraftRepository struct {
	listFunc          func(ctx context.Context, owner *primitive.ObjectID) ([]models.Aircraft, error)
	findByIDFunc      func(ctx context.Context, id primitive.ObjectID) (*models.Aircraft, error)
	createFunc        func(ctx context.Context, aircraft *models.Aircraft) (primitive.ObjectID, error)
	replaceFunc       func(ctx context.Context, id primitive.ObjectID, aircraft *models.Aircraft) error
	deleteFunc        func(ctx context.Context, id primitive.ObjectID) error
	deleteByOwnerFunc func(ctx context.Context, owner primitive.ObjectID) (int64, error)
}

func (m *mockAircraftRepository) List(ctx context.Context, owner *primitive.ObjectID) ([]models.Aircraft, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, owner)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAircraftRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Aircraft, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAircraftRepository) Create(ctx context.Context, aircraft *models.Aircraft) (primitive.ObjectID, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, aircraft)
	}
	return primitive.NilObjectID, errors.New("not implemented")
}

func (m *mockAircraftRepository) Replace(ctx context.Context, id primitive.ObjectID, aircraft *models.Aircraft) error {
	if m.replaceFunc != nil {
		return m.replaceFunc(ctx, id, aircraft)
	}
	return errors.New("not implemented")
}

func (m *mockAircraftRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func (m *mockAircraftRepository) DeleteByOwner(ctx context.Context, owner primitive.ObjectID) (int64, error) {
	if m.deleteByOwnerFunc != nil {
		return m.deleteByOwnerFunc(ctx, owner)
	}
	return 0, errors.New("not implemented")
}

// =============================================================================
// UserService Create Tests
// =============================================================================

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		level    models.AuthLevel
		wantErr  error
	}{
		{
			name:     "valid user",
			username: "newpilot",
			password: "long-enough",
			level:    models.AuthLevelUser,
			wantErr:  nil,
		},
		{
			name:     "valid admin",
			username: "newadmin",
			password: "long-enough",
			level:    models.AuthLevelAdmin,
			wantErr:  nil,
		},
		{
			name:     "username too short",
			username: "abc",
			password: "long-enough",
			level:    models.AuthLevelUser,
			wantErr:  ErrInvalidUsername,
		},
		{
			name:     "username with punctuation",
			username: "bad!name",
			password: "long-enough",
			level:    models.AuthLevelUser,
			wantErr:  ErrInvalidUsername,
		},
		{
			name:     "password too short",
			username: "newpilot",
			password: "short",
			level:    models.AuthLevelUser,
			wantErr:  ErrInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mockUserRepository{
				createFunc: func(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
					return primitive.NewObjectID(), nil
				},
			}
			service := NewUserService(mockRepo, &mockFlightRepository{}, &mockAircraftRepository{})

			_, err := service.Create(context.Background(), tt.username, tt.password, tt.level)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUserService_Create_UsernameTaken(t *testing.T) {
	mockRepo := &mockUserRepository{
		createFunc: func(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
			return primitive.NilObjectID, repository.ErrDuplicate
		},
	}
	service := NewUserService(mockRepo, &mockFlightRepository{}, &mockAircraftRepository{})

	_, err := service.Create(context.Background(), "existing", "long-enough", models.AuthLevelUser)
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("Create() error = %v, want ErrUsernameTaken", err)
	}
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	var stored *models.User
	mockRepo := &mockUserRepository{
		createFunc: func(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
			stored = user
			return primitive.NewObjectID(), nil
		},
	}
	service := NewUserService(mockRepo, &mockFlightRepository{}, &mockAircraftRepository{})

	if _, err := service.Create(context.Background(), "newpilot", "long-enough", models.AuthLevelUser); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if stored.PasswordHash == "long-enough" {
		t.Error("Password stored in plaintext")
	}
	if !VerifyPassword("long-enough", stored.PasswordHash) {
		t.Error("Stored hash does not verify")
	}
}

// =============================================================================
// UserService Delete Tests
// =============================================================================

func TestUserService_DeleteCascades(t *testing.T) {
	userID := primitive.NewObjectID()

	var flightsDeleted, aircraftDeleted bool
	mockUsers := &mockUserRepository{
		deleteFunc: func(ctx context.Context, id primitive.ObjectID) error {
			return nil
		},
	}
	mockFlights := &mockFlightRepository{
		deleteByOwnerFunc: func(ctx context.Context, owner primitive.ObjectID) (int64, error) {
			if owner != userID {
				t.Errorf("Flight cascade owner = %v, want %v", owner, userID)
			}
			flightsDeleted = true
			return 3, nil
		},
	}
	mockAircraft := &mockAircraftRepository{
		deleteByOwnerFunc: func(ctx context.Context, owner primitive.ObjectID) (int64, error) {
			aircraftDeleted = true
			return 1, nil
		},
	}
	service := NewUserService(mockUsers, mockFlights, mockAircraft)

	if err := service.Delete(context.Background(), userID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if !flightsDeleted {
		t.Error("Delete() did not cascade to flights")
	}
	if !aircraftDeleted {
		t.Error("Delete() did not cascade to aircraft")
	}
}

func TestUserService_DeleteMissing(t *testing.T) {
	mockUsers := &mockUserRepository{
		deleteFunc: func(ctx context.Context, id primitive.ObjectID) error {
			return repository.ErrNotFound
		},
	}
	service := NewUserService(mockUsers, &mockFlightRepository{}, &mockAircraftRepository{})

	if err := service.Delete(context.Background(), primitive.NewObjectID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

// =============================================================================
// UserService UpdateProfile Tests
// =============================================================================

func setupProfileTest(t *testing.T, target *models.User) (*mockUserRepository, UserService) {
	t.Helper()

	mockRepo := &mockUserRepository{
		findByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
			if id == target.ID {
				return target, nil
			}
			return nil, repository.ErrNotFound
		},
		countByUsernameFunc: func(ctx context.Context, username string) (int64, error) {
			if username == target.Username {
				return 1, nil
			}
			return 0, nil
		},
		updateFunc: func(ctx context.Context, id primitive.ObjectID, upd repository.UserUpdate) error {
			if upd.Username != nil {
				target.Username = *upd.Username
			}
			if upd.PasswordHash != nil {
				target.PasswordHash = *upd.PasswordHash
			}
			if upd.Level != nil {
				target.Level = *upd.Level
			}
			return nil
		},
	}
	return mockRepo, NewUserService(mockRepo, &mockFlightRepository{}, &mockAircraftRepository{})
}

func TestUpdateProfile_Username(t *testing.T) {
	target := testUser(t, "oldname", "correct-password", models.AuthLevelUser)
	_, service := setupProfileTest(t, target)

	newName := "newname"
	updated, err := service.UpdateProfile(context.Background(), target, target.ID, ProfileUpdate{Username: &newName})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if updated.Username != "newname" {
		t.Errorf("Username = %q, want %q", updated.Username, "newname")
	}
}

func TestUpdateProfile_UsernameTaken(t *testing.T) {
	target := testUser(t, "oldname", "correct-password", models.AuthLevelUser)
	mockRepo, service := setupProfileTest(t, target)
	mockRepo.countByUsernameFunc = func(ctx context.Context, username string) (int64, error) {
		return 1, nil
	}

	taken := "takenname"
	if _, err := service.UpdateProfile(context.Background(), target, target.ID, ProfileUpdate{Username: &taken}); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("UpdateProfile() error = %v, want ErrUsernameTaken", err)
	}
}

func TestUpdateProfile_PasswordRehashed(t *testing.T) {
	target := testUser(t, "pilot123", "old-password", models.AuthLevelUser)
	_, service := setupProfileTest(t, target)

	newPassword := "new-password"
	updated, err := service.UpdateProfile(context.Background(), target, target.ID, ProfileUpdate{Password: &newPassword})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if !VerifyPassword("new-password", updated.PasswordHash) {
		t.Error("New password does not verify against stored hash")
	}
	if VerifyPassword("old-password", updated.PasswordHash) {
		t.Error("Old password still verifies after change")
	}
}

func TestUpdateProfile_LevelChangeRequiresAdmin(t *testing.T) {
	admin := testUser(t, "admin123", "correct-password", models.AuthLevelAdmin)
	adminLevel := models.AuthLevelAdmin

	t.Run("admin may promote", func(t *testing.T) {
		target := testUser(t, "pilot123", "correct-password", models.AuthLevelUser)
		_, service := setupProfileTest(t, target)

		updated, err := service.UpdateProfile(context.Background(), admin, target.ID, ProfileUpdate{Level: &adminLevel})
		if err != nil {
			t.Fatalf("UpdateProfile() error = %v", err)
		}
		if updated.Level != models.AuthLevelAdmin {
			t.Errorf("Level = %v, want %v", updated.Level, models.AuthLevelAdmin)
		}
	})

	t.Run("user may not self-promote", func(t *testing.T) {
		target := testUser(t, "pilot123", "correct-password", models.AuthLevelUser)
		_, service := setupProfileTest(t, target)

		if _, err := service.UpdateProfile(context.Background(), target, target.ID, ProfileUpdate{Level: &adminLevel}); !errors.Is(err, ErrForbidden) {
			t.Errorf("UpdateProfile() error = %v, want ErrForbidden", err)
		}
	})
}

func TestUpdateProfile_MissingUser(t *testing.T) {
	admin := testUser(t, "admin123", "correct-password", models.AuthLevelAdmin)
	target := testUser(t, "pilot123", "correct-password", models.AuthLevelUser)
	_, service := setupProfileTest(t, target)

	if _, err := service.UpdateProfile(context.Background(), admin, primitive.NewObjectID(), ProfileUpdate{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateProfile() error = %v, want ErrNotFound", err)
	}
}
