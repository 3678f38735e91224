package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Aircraft is a user-owned aircraft record referenced by logbook entries.
type Aircraft struct {
	ID   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User primitive.ObjectID `json:"user" bson:"user"`

	TailNo           string  `json:"tail_no" bson:"tail_no"`
	Make             string  `json:"make" bson:"make"`
	Model            string  `json:"model" bson:"model"`
	AircraftCategory string  `json:"aircraft_category" bson:"aircraft_category"`
	AircraftClass    string  `json:"aircraft_class" bson:"aircraft_class"`
	Hobbs            float64 `json:"hobbs" bson:"hobbs"`
}

// Collection returns the database collection name for aircraft.
func (Aircraft) Collection() string {
	return "aircraft"
}

// categoryClasses maps each aircraft category to the classes valid for it.
var categoryClasses = map[string][]string{
	"Airplane":             {"Single-Engine Land", "Multi-Engine Land", "Single-Engine Sea", "Multi-Engine Sea"},
	"Rotorcraft":           {"Helicopter", "Gyroplane"},
	"Powered Lift":         {"Powered Lift"},
	"Glider":               {"Glider"},
	"Lighter-Than-Air":     {"Airship", "Balloon"},
	"Powered Parachute":    {"Powered Parachute Land", "Powered Parachute Sea"},
	"Weight-Shift Control": {"Weight-Shift Control Land", "Weight-Shift Control Sea"},
}

// ValidateCategoryClass checks that the category is known and the class
// belongs to it.
func ValidateCategoryClass(category, class string) error {
	classes, ok := categoryClasses[category]
	if !ok {
		return fmt.Errorf("unknown aircraft category %q", category)
	}
	for _, c := range classes {
		if c == class {
			return nil
		}
	}
	return fmt.Errorf("class %q is not valid for category %q", class, category)
}
