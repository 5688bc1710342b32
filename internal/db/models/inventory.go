package models

import (
	"time"

	"github.com/lib/pq"
)

// Catalog records are read-only here: the booking engine consumes normalized
// quotes built from them and never writes them back.

type Hotel struct {
	ID             string         `db:"id" json:"id"`
	Name           string         `db:"name" json:"name"`
	Location       string         `db:"location" json:"location"`
	City           string         `db:"city" json:"city"`
	Description    string         `db:"description" json:"description,omitempty"`
	PricePerNight  float64        `db:"price_per_night" json:"price_per_night"`
	Rating         float64        `db:"rating" json:"rating"`
	Amenities      pq.StringArray `db:"amenities" json:"amenities"`
	ImageURL       string         `db:"image_url" json:"image_url,omitempty"`
	AvailableRooms int            `db:"available_rooms" json:"available_rooms"`
}

type Flight struct {
	ID             string    `db:"id" json:"id"`
	Airline        string    `db:"airline" json:"airline"`
	FlightNumber   string    `db:"flight_number" json:"flight_number"`
	DepartureCity  string    `db:"departure_city" json:"departure_city"`
	ArrivalCity    string    `db:"arrival_city" json:"arrival_city"`
	DepartureTime  time.Time `db:"departure_time" json:"departure_time"`
	ArrivalTime    time.Time `db:"arrival_time" json:"arrival_time"`
	Price          float64   `db:"price" json:"price"`
	AvailableSeats int       `db:"available_seats" json:"available_seats"`
	ClassType      string    `db:"class_type" json:"class_type"`
}

type Car struct {
	ID          string         `db:"id" json:"id"`
	Brand       string         `db:"brand" json:"brand"`
	Model       string         `db:"model" json:"model"`
	Location    string         `db:"location" json:"location"`
	City        string         `db:"city" json:"city"`
	PricePerDay float64        `db:"price_per_day" json:"price_per_day"`
	Available   bool           `db:"available" json:"available"`
	Features    pq.StringArray `db:"features" json:"features"`
	ImageURL    string         `db:"image_url" json:"image_url,omitempty"`
}

type Train struct {
	ID               string    `db:"id" json:"id"`
	TrainName        string    `db:"train_name" json:"train_name"`
	TrainNumber      string    `db:"train_number" json:"train_number"`
	DepartureStation string    `db:"departure_station" json:"departure_station"`
	ArrivalStation   string    `db:"arrival_station" json:"arrival_station"`
	DepartureTime    time.Time `db:"departure_time" json:"departure_time"`
	ArrivalTime      time.Time `db:"arrival_time" json:"arrival_time"`
	Price            float64   `db:"price" json:"price"`
	AvailableSeats   int       `db:"available_seats" json:"available_seats"`
	ClassType        string    `db:"class_type" json:"class_type"`
}

type Bus struct {
	ID             string    `db:"id" json:"id"`
	Operator       string    `db:"operator" json:"operator"`
	BusNumber      string    `db:"bus_number" json:"bus_number"`
	DepartureCity  string    `db:"departure_city" json:"departure_city"`
	ArrivalCity    string    `db:"arrival_city" json:"arrival_city"`
	DepartureTime  time.Time `db:"departure_time" json:"departure_time"`
	ArrivalTime    time.Time `db:"arrival_time" json:"arrival_time"`
	Price          float64   `db:"price" json:"price"`
	AvailableSeats int       `db:"available_seats" json:"available_seats"`
	BusType        string    `db:"bus_type" json:"bus_type"`
}

type MetroRoute struct {
	ID              string  `db:"id" json:"id"`
	City            string  `db:"city" json:"city"`
	LineName        string  `db:"line_name" json:"line_name"`
	StartStation    string  `db:"start_station" json:"start_station"`
	EndStation      string  `db:"end_station" json:"end_station"`
	Price           float64 `db:"price" json:"price"`
	DurationMinutes int     `db:"duration_minutes" json:"duration_minutes"`
}
