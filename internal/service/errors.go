// Package service contains the business logic for the logbook API: token
// issuing and verification, the auth gateway, and the CRUD services that
// enforce per-user data isolation.
package service

import "errors"

var (
	// ErrTokenMalformed is returned when a token cannot be parsed.
	ErrTokenMalformed = errors.New("malformed token")
	// ErrTokenSignature is returned when a token's signature does not
	// verify against the expected secret.
	ErrTokenSignature = errors.New("invalid token signature")
	// ErrTokenExpired is returned when a token's expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenRevoked is returned when a token has been deny-listed by a
	// logout before its natural expiry.
	ErrTokenRevoked = errors.New("token revoked")

	// ErrInvalidCredentials is returned on login failure. Unknown user and
	// wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrForbidden is returned when a valid identity lacks the rights for
	// the targeted resource.
	ErrForbidden = errors.New("access unauthorized")
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUsernameTaken is returned when a username is already registered.
	ErrUsernameTaken = errors.New("username not available")
)
