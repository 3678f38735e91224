package service

import "errors"

var (
	// ErrInvalidUsername is returned when a username fails validation.
	ErrInvalidUsername = errors.New("username must be 4-32 characters of letters, numbers, underscores, and spaces")
	// ErrInvalidPassword is returned when a password fails validation.
	ErrInvalidPassword = errors.New("password must be between 8 and 72 characters long")
)

// ValidateUsername enforces the account naming rules: 4-32 characters,
// letters, digits, underscores, and spaces only.
func ValidateUsername(username string) error {
	if len(username) < 4 || len(username) > 32 {
		return ErrInvalidUsername
	}
	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == ' ':
		default:
			return ErrInvalidUsername
		}
	}
	return nil
}

// ValidatePassword enforces the password length rules. The upper bound is
// bcrypt's input limit.
func ValidatePassword(password string) error {
	if len(password) < 8 || len(password) > 72 {
		return ErrInvalidPassword
	}
	return nil
}
