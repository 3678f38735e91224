// Package models contains data models for the logbook API.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthLevel is the closed set of authorization levels a user can hold.
type AuthLevel int

const (
	AuthLevelGuest AuthLevel = iota
	AuthLevelUser
	AuthLevelAdmin
)

// String returns the display name of the auth level.
func (l AuthLevel) String() string {
	switch l {
	case AuthLevelGuest:
		return "guest"
	case AuthLevelUser:
		return "user"
	case AuthLevelAdmin:
		return "admin"
	}
	return "unknown"
}

// Valid reports whether l is one of the defined levels.
func (l AuthLevel) Valid() bool {
	return l >= AuthLevelGuest && l <= AuthLevelAdmin
}

// User represents an account in the system. The password hash is never
// serialized in API responses.
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username     string             `json:"username" bson:"username"`
	PasswordHash string             `json:"-" bson:"password"`
	Level        AuthLevel          `json:"level" bson:"level"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}

// Collection returns the database collection name for users.
func (User) Collection() string {
	return "user"
}

// IsAdmin reports whether the user holds administrator rights.
func (u *User) IsAdmin() bool {
	return u.Level == AuthLevelAdmin
}
