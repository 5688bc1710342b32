package booking

import (
	"fmt"
	"time"
)

// Reason tags a validation rejection for UI surfacing.
type Reason string

const (
	ReasonMissingField     Reason = "missing_field"
	ReasonInvalidDateRange Reason = "invalid_date_range"
	ReasonCapacityExceeded Reason = "capacity_exceeded"
)

// Rejection reports why a booking attempt failed validation. It is
// user-correctable and never a system error.
type Rejection struct {
	Reason  Reason
	Message string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Reason, r.Message)
}

func reject(reason Reason, format string, args ...interface{}) *Rejection {
	return &Rejection{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// Validate checks trip parameters against an inventory item. Checks run in a
// fixed order and the first failure wins: contact fields, travel date, return
// date (duration modalities), unit count and capacity. It never mutates state.
func Validate(item Item, p TripParams, now time.Time) *Rejection {
	r := item.Modality.rules()

	if p.Contact.Name == "" {
		return reject(ReasonMissingField, "name is required")
	}
	switch r.Contact {
	case ContactLicensePhone:
		if p.Contact.License == "" {
			return reject(ReasonMissingField, "driving license is required")
		}
	default:
		if p.Contact.Email == "" {
			return reject(ReasonMissingField, "email is required")
		}
	}
	if p.Contact.Phone == "" {
		return reject(ReasonMissingField, "phone is required")
	}

	if p.TravelDate == "" {
		return reject(ReasonMissingField, "travel date is required")
	}
	start, err := p.travelDate()
	if err != nil {
		return reject(ReasonInvalidDateRange, "travel date %q is not a valid date", p.TravelDate)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if start.Before(today) {
		return reject(ReasonInvalidDateRange, "travel date must not be in the past")
	}

	if r.DurationBased {
		if p.ReturnDate == "" {
			return reject(ReasonMissingField, "return date is required")
		}
		end, err := p.returnDate()
		if err != nil {
			return reject(ReasonInvalidDateRange, "return date %q is not a valid date", p.ReturnDate)
		}
		if !end.After(start) {
			return reject(ReasonInvalidDateRange, "return date must be after the travel date")
		}
	}

	if p.Units < 1 {
		return reject(ReasonMissingField, "at least one passenger is required")
	}
	if r.LiveCapacity {
		if p.Units > item.Capacity {
			return reject(ReasonCapacityExceeded, "only %d seats available", item.Capacity)
		}
	} else if p.Units > MaxUnitsCeiling {
		return reject(ReasonCapacityExceeded, "at most %d per booking", MaxUnitsCeiling)
	}

	return nil
}
