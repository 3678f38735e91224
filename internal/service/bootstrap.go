package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/azpsen/tailfin-api/internal/models"
	"github.com/azpsen/tailfin-api/internal/repository"
)

// EnsureDefaultAdmin creates the default administrator account if no
// administrator exists, so a fresh deployment is never unmanageable. It is
// idempotent across restarts. Two processes racing the check-then-create is
// benign: the second insert is rejected by the unique username index.
//
// Operators are expected to rotate the default credential after first login.
func EnsureDefaultAdmin(ctx context.Context, users repository.UserRepository, username, password string) error {
	count, err := users.CountByLevel(ctx, models.AuthLevelAdmin)
	if err != nil {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:     username,
		PasswordHash: hash,
		Level:        models.AuthLevelAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := users.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Another process won the race; the admin exists.
			return nil
		}
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	logrus.WithField("username", username).Info("Created default administrator account")
	return nil
}
