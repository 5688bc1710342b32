package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"travel-booking-service/internal/db/models"
)

var (
	// ErrUnauthorized is returned when no current user id is supplied.
	ErrUnauthorized = errors.New("authorization required")
	// ErrNotFound is returned when a booking id does not exist.
	ErrNotFound = errors.New("booking not found")
	// ErrForbidden is returned when a booking belongs to another user.
	ErrForbidden = errors.New("booking belongs to another user")
	// ErrInvalidTransition is returned for any status change other than
	// confirmed -> cancelled.
	ErrInvalidTransition = errors.New("booking cannot be cancelled in its current status")
)

// Ledger is the persistent store of booking records. Each call is a single
// atomic unit; the engine never spreads one booking across multiple calls.
type Ledger interface {
	Insert(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// UpdateStatus sets the status of a booking only if it currently holds
	// the expected status, reporting whether a row changed.
	UpdateStatus(ctx context.Context, id, from, to string) (bool, error)
	ListByUser(ctx context.Context, userID, modality string, limit, offset int) ([]models.Booking, error)
}

// Publisher emits booking lifecycle events. Implementations may drop
// messages; publication is best-effort and never fails a booking.
type Publisher interface {
	Publish(message interface{}, routingKey string) error
}

// Engine owns the booking lifecycle: it validates trip parameters, prices
// the item, persists new bookings as confirmed and later cancels them.
//
// Capacity checks are advisory: they read the catalog at validation time and
// nothing re-checks or decrements availability when the insert lands, so two
// concurrent submissions can both succeed against the last seat.
type Engine struct {
	ledger Ledger
	events Publisher
	now    func() time.Time
}

// NewEngine creates an Engine. events may be nil.
func NewEngine(ledger Ledger, events Publisher) *Engine {
	return &Engine{ledger: ledger, events: events, now: time.Now}
}

// Submit validates and prices one booking attempt and persists it as
// confirmed. The insert is at-most-once: a ledger failure is returned as-is
// with no retry and no partial record, so the caller can surface "try again"
// without risking a duplicate charge. A *Rejection error means the input was
// invalid and nothing was written.
func (e *Engine) Submit(ctx context.Context, userID string, item Item, p TripParams) (*models.Booking, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	now := e.now().UTC()
	if rej := Validate(item, p, now); rej != nil {
		return nil, rej
	}

	total := Price(item, p)

	travel, err := p.travelDate()
	if err != nil {
		return nil, reject(ReasonInvalidDateRange, "travel date %q is not a valid date", p.TravelDate)
	}
	var returnDate *time.Time
	if item.Modality.rules().DurationBased {
		end, err := p.returnDate()
		if err != nil {
			return nil, reject(ReasonInvalidDateRange, "return date %q is not a valid date", p.ReturnDate)
		}
		returnDate = &end
	}

	details, err := json.Marshal(contactDetails(item.Modality, p.Contact))
	if err != nil {
		return nil, fmt.Errorf("encode passenger details: %w", err)
	}

	b := &models.Booking{
		ID:               uuid.NewString(),
		UserID:           userID,
		BookingType:      string(item.Modality),
		BookingReference: NewReference(item.Modality),
		ItemID:           item.ID,
		TravelDate:       travel,
		ReturnDate:       returnDate,
		PassengerCount:   p.Units,
		TotalPrice:       total,
		Status:           models.StatusConfirmed,
		PassengerDetails: details,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := e.ledger.Insert(ctx, b); err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	e.publish(BookingConfirmed{
		BookingID:        b.ID,
		BookingReference: b.BookingReference,
		UserID:           b.UserID,
		BookingType:      b.BookingType,
		TotalPrice:       b.TotalPrice,
	}, TopicBookingConfirmed)

	return b, nil
}

// Cancel moves a confirmed booking to cancelled. Cancelling an
// already-cancelled booking is a no-op success, so racing double-cancels
// converge; any other starting status is rejected.
func (e *Engine) Cancel(ctx context.Context, userID, bookingID string) error {
	if userID == "" {
		return ErrUnauthorized
	}

	b, err := e.ledger.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("fetch booking: %w", err)
	}
	if b == nil {
		return ErrNotFound
	}
	if b.UserID != userID {
		return ErrForbidden
	}
	if b.Status == models.StatusCancelled {
		return nil
	}
	if b.Status != models.StatusConfirmed {
		return ErrInvalidTransition
	}

	changed, err := e.ledger.UpdateStatus(ctx, bookingID, models.StatusConfirmed, models.StatusCancelled)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	if !changed {
		// Lost the race: re-read and treat a concurrent cancel as success.
		current, err := e.ledger.GetByID(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("fetch booking: %w", err)
		}
		if current == nil || current.Status != models.StatusCancelled {
			return ErrInvalidTransition
		}
		return nil
	}

	e.publish(BookingCancelled{BookingID: bookingID, UserID: userID}, TopicBookingCancelled)
	return nil
}

// Get fetches one booking, scoped to its owner.
func (e *Engine) Get(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	b, err := e.ledger.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("fetch booking: %w", err)
	}
	if b == nil {
		return nil, ErrNotFound
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	return b, nil
}

// List returns the user's bookings newest-created-first, optionally filtered
// by modality tag.
func (e *Engine) List(ctx context.Context, userID string, modality Modality, limit, offset int) ([]models.Booking, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	out, err := e.ledger.ListByUser(ctx, userID, string(modality), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return out, nil
}

func (e *Engine) publish(msg interface{}, topic string) {
	if e.events == nil {
		return
	}
	if err := e.events.Publish(msg, topic); err != nil {
		log.Printf("Failed to publish %s event: %v", topic, err)
	}
}

func contactDetails(m Modality, c Contact) Contact {
	if m.rules().Contact == ContactLicensePhone {
		return Contact{Name: c.Name, License: c.License, Phone: c.Phone}
	}
	return Contact{Name: c.Name, Email: c.Email, Phone: c.Phone}
}
