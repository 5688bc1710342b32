package booking

import "time"

// DateLayout is the calendar date format used by trip parameters.
const DateLayout = "2006-01-02"

// Item is the normalized view of one inventory record that the engine needs:
// what it costs per unit and how many units are available. The catalog owns
// the full per-modality records.
type Item struct {
	ID        string
	Modality  Modality
	UnitPrice float64
	// Capacity is the live seat count for flight/train/bus items. It is
	// ignored for modalities without live inventory.
	Capacity int
}

// Contact carries the passenger identity bundle captured with a booking.
// License replaces Email for car rentals.
type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone"`
	License string `json:"license,omitempty"`
}

// TripParams is the user-supplied trip detail bundle for one booking attempt.
// Dates are calendar date strings (DateLayout); the validator checks they
// parse before anything downstream touches them.
type TripParams struct {
	TravelDate string
	ReturnDate string
	Units      int
	Contact    Contact
}

func (p TripParams) travelDate() (time.Time, error) {
	return time.Parse(DateLayout, p.TravelDate)
}

func (p TripParams) returnDate() (time.Time, error) {
	return time.Parse(DateLayout, p.ReturnDate)
}
