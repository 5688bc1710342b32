package booking

import (
	"testing"
	"time"
)

var validatorNow = time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

func validContact() Contact {
	return Contact{Name: "Asha Rao", Email: "asha@example.com", Phone: "9876543210", License: "DL-0420110012345"}
}

func TestValidate_Success(t *testing.T) {
	item := Item{ID: "f1", Modality: ModalityFlight, UnitPrice: 5000, Capacity: 20}
	p := TripParams{TravelDate: "2025-06-01", Units: 3, Contact: validContact()}

	if rej := Validate(item, p, validatorNow); rej != nil {
		t.Fatalf("expected pass, got %v", rej)
	}
}

func TestValidate_ContactFields(t *testing.T) {
	flight := Item{ID: "f1", Modality: ModalityFlight, UnitPrice: 5000, Capacity: 20}
	car := Item{ID: "c1", Modality: ModalityCar, UnitPrice: 1500}

	cases := []struct {
		name    string
		item    Item
		mutate  func(*TripParams)
		message string
	}{
		{"missing name", flight, func(p *TripParams) { p.Contact.Name = "" }, "name"},
		{"missing email", flight, func(p *TripParams) { p.Contact.Email = "" }, "email"},
		{"missing phone", flight, func(p *TripParams) { p.Contact.Phone = "" }, "phone"},
		{"car missing license", car, func(p *TripParams) { p.Contact.License = "" }, "license"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := TripParams{TravelDate: "2025-06-01", ReturnDate: "2025-06-03", Units: 1, Contact: validContact()}
			tc.mutate(&p)
			rej := Validate(tc.item, p, validatorNow)
			if rej == nil {
				t.Fatal("expected rejection, got pass")
			}
			if rej.Reason != ReasonMissingField {
				t.Fatalf("expected missing_field, got %s", rej.Reason)
			}
		})
	}
}

func TestValidate_CarDoesNotRequireEmail(t *testing.T) {
	car := Item{ID: "c1", Modality: ModalityCar, UnitPrice: 1500}
	p := TripParams{
		TravelDate: "2025-07-10",
		ReturnDate: "2025-07-12",
		Units:      1,
		Contact:    Contact{Name: "Asha Rao", Phone: "9876543210", License: "DL-0420110012345"},
	}

	if rej := Validate(car, p, validatorNow); rej != nil {
		t.Fatalf("expected pass without email for car, got %v", rej)
	}
}

func TestValidate_TravelDate(t *testing.T) {
	item := Item{ID: "f1", Modality: ModalityFlight, UnitPrice: 5000, Capacity: 20}

	p := TripParams{Units: 1, Contact: validContact()}
	rej := Validate(item, p, validatorNow)
	if rej == nil || rej.Reason != ReasonMissingField {
		t.Fatalf("expected missing_field for absent travel date, got %v", rej)
	}

	p.TravelDate = "not-a-date"
	rej = Validate(item, p, validatorNow)
	if rej == nil || rej.Reason != ReasonInvalidDateRange {
		t.Fatalf("expected invalid_date_range for garbage date, got %v", rej)
	}

	p.TravelDate = "2025-04-30"
	rej = Validate(item, p, validatorNow)
	if rej == nil || rej.Reason != ReasonInvalidDateRange {
		t.Fatalf("expected invalid_date_range for past date, got %v", rej)
	}

	// Booking for today is allowed.
	p.TravelDate = "2025-05-01"
	if rej = Validate(item, p, validatorNow); rej != nil {
		t.Fatalf("expected same-day travel to pass, got %v", rej)
	}
}

func TestValidate_ReturnDateRules(t *testing.T) {
	car := Item{ID: "c1", Modality: ModalityCar, UnitPrice: 1500}
	contact := Contact{Name: "Asha Rao", Phone: "9876543210", License: "DL-0420110012345"}

	p := TripParams{TravelDate: "2025-07-10", Units: 1, Contact: contact}
	rej := Validate(car, p, validatorNow)
	if rej == nil || rej.Reason != ReasonMissingField {
		t.Fatalf("expected missing_field for absent return date, got %v", rej)
	}

	// Same-day return is not strictly later.
	p.ReturnDate = "2025-07-10"
	rej = Validate(car, p, validatorNow)
	if rej == nil || rej.Reason != ReasonInvalidDateRange {
		t.Fatalf("expected invalid_date_range for same-day return, got %v", rej)
	}

	p.ReturnDate = "2025-07-09"
	rej = Validate(car, p, validatorNow)
	if rej == nil || rej.Reason != ReasonInvalidDateRange {
		t.Fatalf("expected invalid_date_range for earlier return, got %v", rej)
	}

	// Seat modalities never require a return date.
	flight := Item{ID: "f1", Modality: ModalityFlight, UnitPrice: 5000, Capacity: 20}
	fp := TripParams{TravelDate: "2025-06-01", Units: 1, Contact: validContact()}
	if rej = Validate(flight, fp, validatorNow); rej != nil {
		t.Fatalf("expected flight without return date to pass, got %v", rej)
	}
}

func TestValidate_UnitCount(t *testing.T) {
	flight := Item{ID: "f1", Modality: ModalityFlight, UnitPrice: 5000, Capacity: 2}

	p := TripParams{TravelDate: "2025-06-01", Units: 0, Contact: validContact()}
	rej := Validate(flight, p, validatorNow)
	if rej == nil || rej.Reason != ReasonMissingField {
		t.Fatalf("expected missing_field for zero passengers, got %v", rej)
	}

	p.Units = 3
	rej = Validate(flight, p, validatorNow)
	if rej == nil || rej.Reason != ReasonCapacityExceeded {
		t.Fatalf("expected capacity_exceeded over available seats, got %v", rej)
	}

	p.Units = 2
	if rej = Validate(flight, p, validatorNow); rej != nil {
		t.Fatalf("expected exact capacity to pass, got %v", rej)
	}
}

func TestValidate_FixedCeilingModalities(t *testing.T) {
	hotel := Item{ID: "h1", Modality: ModalityHotel, UnitPrice: 2000}
	p := TripParams{TravelDate: "2025-06-01", ReturnDate: "2025-06-03", Units: 11, Contact: validContact()}

	rej := Validate(hotel, p, validatorNow)
	if rej == nil || rej.Reason != ReasonCapacityExceeded {
		t.Fatalf("expected capacity_exceeded above ceiling, got %v", rej)
	}

	p.Units = 10
	if rej = Validate(hotel, p, validatorNow); rej != nil {
		t.Fatalf("expected 10 guests to pass, got %v", rej)
	}
}

func TestValidate_OrderContactBeforeDate(t *testing.T) {
	item := Item{ID: "f1", Modality: ModalityFlight, UnitPrice: 5000, Capacity: 20}
	p := TripParams{TravelDate: "garbage", Units: 0, Contact: Contact{}}

	rej := Validate(item, p, validatorNow)
	if rej == nil || rej.Reason != ReasonMissingField {
		t.Fatalf("contact check must win over date and count checks, got %v", rej)
	}
	if rej.Message != "name is required" {
		t.Fatalf("expected the name check first, got %q", rej.Message)
	}
}
