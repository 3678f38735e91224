package service

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{
			name:     "simple username",
			username: "pilot",
			wantErr:  false,
		},
		{
			name:     "minimum length",
			username: "abcd",
			wantErr:  false,
		},
		{
			name:     "maximum length",
			username: strings.Repeat("a", 32),
			wantErr:  false,
		},
		{
			name:     "digits and underscores",
			username: "crew_member_42",
			wantErr:  false,
		},
		{
			name:     "spaces allowed",
			username: "Jane Doe",
			wantErr:  false,
		},
		{
			name:     "too short",
			username: "abc",
			wantErr:  true,
		},
		{
			name:     "too long",
			username: strings.Repeat("a", 33),
			wantErr:  true,
		},
		{
			name:     "empty",
			username: "",
			wantErr:  true,
		},
		{
			name:     "punctuation rejected",
			username: "user@example",
			wantErr:  true,
		},
		{
			name:     "hyphen rejected",
			username: "user-name",
			wantErr:  true,
		},
		{
			name:     "unicode rejected",
			username: "pilöt123",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr && !errors.Is(err, ErrInvalidUsername) {
				t.Errorf("ValidateUsername(%q) error = %v, want ErrInvalidUsername", tt.username, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateUsername(%q) error = %v, want nil", tt.username, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "minimum length",
			password: "12345678",
			wantErr:  false,
		},
		{
			name:     "maximum length",
			password: strings.Repeat("a", 72),
			wantErr:  false,
		},
		{
			name:     "too short",
			password: "1234567",
			wantErr:  true,
		},
		{
			name:     "too long",
			password: strings.Repeat("a", 73),
			wantErr:  true,
		},
		{
			name:     "empty",
			password: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr && !errors.Is(err, ErrInvalidPassword) {
				t.Errorf("ValidatePassword() error = %v, want ErrInvalidPassword", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidatePassword() error = %v, want nil", err)
			}
		})
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "correct-password" {
		t.Error("HashPassword() returned the plaintext")
	}

	if !VerifyPassword("correct-password", hash) {
		t.Error("VerifyPassword() rejected the correct password")
	}
	if VerifyPassword("wrong-password", hash) {
		t.Error("VerifyPassword() accepted a wrong password")
	}
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	hash1, err := HashPassword("correct-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	hash2, err := HashPassword("correct-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash1 == hash2 {
		t.Error("Hashes of the same password should differ")
	}
}
