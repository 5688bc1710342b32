package booking

// Topic names for booking lifecycle events published to the broker.
const (
	TopicBookingConfirmed = "booking.confirmed"
	TopicBookingCancelled = "booking.cancelled"
)

// BookingConfirmed is published after a booking is persisted.
type BookingConfirmed struct {
	BookingID        string  `json:"booking_id"`
	BookingReference string  `json:"booking_reference"`
	UserID           string  `json:"user_id"`
	BookingType      string  `json:"booking_type"`
	TotalPrice       float64 `json:"total_price"`
}

// BookingCancelled is published after a booking moves to cancelled.
type BookingCancelled struct {
	BookingID string `json:"booking_id"`
	UserID    string `json:"user_id"`
}
