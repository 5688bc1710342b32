package repos

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"travel-booking-service/internal/db/models"
)

// BookingRepository is the booking ledger: it handles all database
// operations for booking records. Records are never deleted.
type BookingRepository struct {
	db *sqlx.DB
}

// NewBookingRepository creates a new BookingRepository.
func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Insert persists a new booking as a single atomic write.
func (r *BookingRepository) Insert(ctx context.Context, b *models.Booking) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO bookings
		 (id, user_id, booking_type, booking_reference, item_id, travel_date,
		  return_date, passenger_count, total_price, status, passenger_details,
		  created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		b.ID, b.UserID, b.BookingType, b.BookingReference, b.ItemID, b.TravelDate,
		b.ReturnDate, b.PassengerCount, b.TotalPrice, b.Status, b.PassengerDetails,
		b.CreatedAt, b.UpdatedAt,
	)
	return err
}

// GetByID retrieves a booking by its ID, or nil if it does not exist.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	err := r.db.GetContext(ctx, &b, `SELECT * FROM bookings WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// UpdateStatus moves a booking from one status to another, reporting whether
// a row changed. The status guard in the WHERE clause makes concurrent
// cancels converge instead of double-applying.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id, from, to string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`,
		to, time.Now().UTC(), id, from,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListByUser retrieves a user's bookings newest-created-first, optionally
// filtered by booking type.
func (r *BookingRepository) ListByUser(ctx context.Context, userID, modality string, limit, offset int) ([]models.Booking, error) {
	bookings := []models.Booking{}

	if modality != "" {
		err := r.db.SelectContext(ctx, &bookings,
			`SELECT * FROM bookings WHERE user_id = $1 AND booking_type = $2
			 ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
			userID, modality, limit, offset,
		)
		return bookings, err
	}

	err := r.db.SelectContext(ctx, &bookings,
		`SELECT * FROM bookings WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	return bookings, err
}
