package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestAuthLevel(t *testing.T) {
	tests := []struct {
		level AuthLevel
		name  string
		valid bool
	}{
		{AuthLevelGuest, "guest", true},
		{AuthLevelUser, "user", true},
		{AuthLevelAdmin, "admin", true},
		{AuthLevel(-1), "unknown", false},
		{AuthLevel(3), "unknown", false},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.name {
			t.Errorf("AuthLevel(%d).String() = %q, want %q", tt.level, got, tt.name)
		}
		if got := tt.level.Valid(); got != tt.valid {
			t.Errorf("AuthLevel(%d).Valid() = %v, want %v", tt.level, got, tt.valid)
		}
	}
}

func TestAuthLevelOrdering(t *testing.T) {
	if !(AuthLevelGuest < AuthLevelUser && AuthLevelUser < AuthLevelAdmin) {
		t.Error("Auth levels must order guest < user < admin")
	}
}

func TestUserPasswordHashNotSerialized(t *testing.T) {
	user := User{
		Username:     "pilot",
		PasswordHash: "$2a$10$secret",
		Level:        AuthLevelUser,
	}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "secret") {
		t.Errorf("Password hash leaked into JSON: %s", data)
	}
}

func TestUserIsAdmin(t *testing.T) {
	admin := &User{Level: AuthLevelAdmin}
	user := &User{Level: AuthLevelUser}

	if !admin.IsAdmin() {
		t.Error("Admin user should report IsAdmin")
	}
	if user.IsAdmin() {
		t.Error("Regular user should not report IsAdmin")
	}
}
