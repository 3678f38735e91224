package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Flight is a single logbook entry, owned by exactly one user.
type Flight struct {
	ID   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User primitive.ObjectID `json:"user" bson:"user"`

	Date         time.Time `json:"date" bson:"date"`
	Aircraft     string    `json:"aircraft" bson:"aircraft"`
	WaypointFrom string    `json:"waypoint_from" bson:"waypoint_from"`
	WaypointTo   string    `json:"waypoint_to" bson:"waypoint_to"`
	Route        string    `json:"route" bson:"route"`

	HobbsStart *float64 `json:"hobbs_start,omitempty" bson:"hobbs_start,omitempty"`
	HobbsEnd   *float64 `json:"hobbs_end,omitempty" bson:"hobbs_end,omitempty"`
	TachStart  *float64 `json:"tach_start,omitempty" bson:"tach_start,omitempty"`
	TachEnd    *float64 `json:"tach_end,omitempty" bson:"tach_end,omitempty"`

	TimeStart *time.Time `json:"time_start,omitempty" bson:"time_start,omitempty"`
	TimeOff   *time.Time `json:"time_off,omitempty" bson:"time_off,omitempty"`
	TimeDown  *time.Time `json:"time_down,omitempty" bson:"time_down,omitempty"`
	TimeStop  *time.Time `json:"time_stop,omitempty" bson:"time_stop,omitempty"`

	TimeTotal float64 `json:"time_total" bson:"time_total"`
	TimePIC   float64 `json:"time_pic" bson:"time_pic"`
	TimeSIC   float64 `json:"time_sic" bson:"time_sic"`
	TimeNight float64 `json:"time_night" bson:"time_night"`
	TimeSolo  float64 `json:"time_solo" bson:"time_solo"`

	TimeXC float64 `json:"time_xc" bson:"time_xc"`
	DistXC float64 `json:"dist_xc" bson:"dist_xc"`

	TakeoffsDay   int `json:"takeoffs_day" bson:"takeoffs_day"`
	LandingsDay   int `json:"landings_day" bson:"landings_day"`
	TakeoffsNight int `json:"takeoffs_night" bson:"takeoffs_night"`
	LandingsNight int `json:"landings_night" bson:"landings_night"`

	TimeInstrument    float64 `json:"time_instrument" bson:"time_instrument"`
	TimeSimInstrument float64 `json:"time_sim_instrument" bson:"time_sim_instrument"`
	HoldsInstrument   int     `json:"holds_instrument" bson:"holds_instrument"`

	DualGiven  float64 `json:"dual_given" bson:"dual_given"`
	DualRecvd  float64 `json:"dual_recvd" bson:"dual_recvd"`
	TimeSim    float64 `json:"time_sim" bson:"time_sim"`
	TimeGround float64 `json:"time_ground" bson:"time_ground"`

	Tags []string `json:"tags" bson:"tags"`
	Pax  []string `json:"pax" bson:"pax"`
	Crew []string `json:"crew" bson:"crew"`

	Comments string `json:"comments" bson:"comments"`

	Photos []primitive.ObjectID `json:"photos,omitempty" bson:"photos,omitempty"`
}

// Collection returns the database collection name for flights.
func (Flight) Collection() string {
	return "flight"
}

// FlightConcise is the trimmed listing form of a flight.
type FlightConcise struct {
	ID   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User primitive.ObjectID `json:"user" bson:"user"`

	Date         time.Time `json:"date" bson:"date"`
	Aircraft     string    `json:"aircraft" bson:"aircraft"`
	WaypointFrom string    `json:"waypoint_from" bson:"waypoint_from"`
	WaypointTo   string    `json:"waypoint_to" bson:"waypoint_to"`
	TimeTotal    float64   `json:"time_total" bson:"time_total"`
	Comments     string    `json:"comments" bson:"comments"`
}

// Concise converts a full flight record to its listing form.
func (f *Flight) Concise() FlightConcise {
	return FlightConcise{
		ID:           f.ID,
		User:         f.User,
		Date:         f.Date,
		Aircraft:     f.Aircraft,
		WaypointFrom: f.WaypointFrom,
		WaypointTo:   f.WaypointTo,
		TimeTotal:    f.TimeTotal,
		Comments:     f.Comments,
	}
}
