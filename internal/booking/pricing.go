package booking

import (
	"math"
	"time"
)

// daysBetween returns the number of nights/days between two calendar dates,
// rounding partial days up. Both ends are normalized to UTC midnight so local
// timezones cannot shift the count by one. Inverted ranges yield 0, not a
// negative count; the validator rejects them before pricing runs.
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	if !b.After(a) {
		return 0
	}
	return int(math.Ceil(b.Sub(a).Hours() / 24))
}

// Price computes the total for one booking attempt. It is pure and never
// fails: malformed parameters must already have been rejected by Validate.
//
//	hotel:                   nights × pricePerNight × guests
//	car:                     days × pricePerDay
//	flight/train/bus/metro:  price × units
func Price(item Item, p TripParams) float64 {
	r := item.Modality.rules()

	units := p.Units
	if !r.MultiplyUnits {
		units = 1
	}

	if !r.DurationBased {
		return item.UnitPrice * float64(units)
	}

	start, err := p.travelDate()
	if err != nil {
		return 0
	}
	end, err := p.returnDate()
	if err != nil {
		return 0
	}
	return float64(daysBetween(start, end)) * item.UnitPrice * float64(units)
}
