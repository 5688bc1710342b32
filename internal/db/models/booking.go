package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Booking lifecycle statuses. This service creates bookings as confirmed and
// only ever moves them to cancelled; pending is accepted on read for records
// written by other systems.
const (
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

// Booking is a persisted reservation against one inventory item.
type Booking struct {
	ID               string         `db:"id" json:"id"`
	UserID           string         `db:"user_id" json:"user_id"`
	BookingType      string         `db:"booking_type" json:"booking_type"`
	BookingReference string         `db:"booking_reference" json:"booking_reference"`
	ItemID           string         `db:"item_id" json:"item_id"`
	TravelDate       time.Time      `db:"travel_date" json:"travel_date"`
	ReturnDate       *time.Time     `db:"return_date" json:"return_date,omitempty"`
	PassengerCount   int            `db:"passenger_count" json:"passenger_count"`
	TotalPrice       float64        `db:"total_price" json:"total_price"`
	Status           string         `db:"status" json:"status"`
	PassengerDetails types.JSONText `db:"passenger_details" json:"passenger_details"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updated_at"`
}
