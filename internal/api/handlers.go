package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travel-booking-service/internal/booking"
	"travel-booking-service/internal/db/models"
	"travel-booking-service/internal/idempotency"
	"travel-booking-service/internal/metrics"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// BookingService is the reservation engine surface the handlers drive.
type BookingService interface {
	Submit(ctx context.Context, userID string, item booking.Item, p booking.TripParams) (*models.Booking, error)
	Cancel(ctx context.Context, userID, bookingID string) error
	Get(ctx context.Context, userID, bookingID string) (*models.Booking, error)
	List(ctx context.Context, userID string, modality booking.Modality, limit, offset int) ([]models.Booking, error)
}

// Catalog is the read-only inventory source the handlers list from.
type Catalog interface {
	ListHotels(ctx context.Context, city string) ([]models.Hotel, error)
	ListFlights(ctx context.Context, city string) ([]models.Flight, error)
	ListCars(ctx context.Context, city string) ([]models.Car, error)
	ListTrains(ctx context.Context, station string) ([]models.Train, error)
	ListBuses(ctx context.Context, city string) ([]models.Bus, error)
	ListMetroRoutes(ctx context.Context, city string) ([]models.MetroRoute, error)
	GetItem(ctx context.Context, m booking.Modality, id string) (*booking.Item, error)
}

type Handler struct {
	engine  BookingService
	catalog Catalog
	guard   idempotency.Guard
}

func NewHandler(engine BookingService, catalog Catalog, guard idempotency.Guard) *Handler {
	return &Handler{engine: engine, catalog: catalog, guard: guard}
}

type passengerDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	License string `json:"license"`
}

type createBookingRequest struct {
	BookingType      string           `json:"booking_type" binding:"required"`
	ItemID           string           `json:"item_id" binding:"required"`
	TravelDate       string           `json:"travel_date" binding:"required"`
	ReturnDate       string           `json:"return_date"`
	PassengerCount   int              `json:"passenger_count"`
	PassengerDetails passengerDetails `json:"passenger_details"`
}

// ListInventory returns the catalog for one modality, optionally filtered by
// a city/station substring.
func (h *Handler) ListInventory(c *gin.Context) {
	m, ok := booking.ParseModality(c.Param("modality"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown modality"})
		return
	}

	ctx := c.Request.Context()
	city := c.Query("city")

	var (
		items interface{}
		err   error
	)
	switch m {
	case booking.ModalityHotel:
		items, err = h.catalog.ListHotels(ctx, city)
	case booking.ModalityFlight:
		items, err = h.catalog.ListFlights(ctx, city)
	case booking.ModalityCar:
		items, err = h.catalog.ListCars(ctx, city)
	case booking.ModalityTrain:
		items, err = h.catalog.ListTrains(ctx, city)
	case booking.ModalityBus:
		items, err = h.catalog.ListBuses(ctx, city)
	case booking.ModalityMetro:
		items, err = h.catalog.ListMetroRoutes(ctx, city)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch inventory"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// CreateBooking validates, prices and persists one booking for the current
// user. An optional Idempotency-Key header makes resubmission safe: a
// duplicate of an in-flight request gets 409, a duplicate of a completed one
// gets the original booking back.
func (h *Handler) CreateBooking(c *gin.Context) {
	userID := c.GetString("userId")
	ctx := c.Request.Context()

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	m, ok := booking.ParseModality(req.BookingType)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown booking type"})
		return
	}

	key := c.GetHeader("Idempotency-Key")
	if key != "" {
		prior, err := h.guard.Reserve(ctx, key)
		if err != nil {
			if errors.Is(err, idempotency.ErrInFlight) {
				c.JSON(http.StatusConflict, gin.H{"error": "a booking with this idempotency key is already in progress"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check idempotency key"})
			return
		}
		if prior != nil {
			b, err := h.engine.Get(ctx, userID, prior.BookingID)
			if err != nil {
				h.writeEngineError(c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "booking already created", "booking": b})
			return
		}
	}

	item, err := h.catalog.GetItem(ctx, m, req.ItemID)
	if err != nil {
		h.releaseKey(ctx, key)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch inventory item"})
		return
	}
	if item == nil {
		h.releaseKey(ctx, key)
		c.JSON(http.StatusNotFound, gin.H{"error": "inventory item not found"})
		return
	}

	params := booking.TripParams{
		TravelDate: req.TravelDate,
		ReturnDate: req.ReturnDate,
		Units:      req.PassengerCount,
		Contact: booking.Contact{
			Name:    req.PassengerDetails.Name,
			Email:   req.PassengerDetails.Email,
			Phone:   req.PassengerDetails.Phone,
			License: req.PassengerDetails.License,
		},
	}

	b, err := h.engine.Submit(ctx, userID, *item, params)
	if err != nil {
		h.releaseKey(ctx, key)
		h.writeEngineError(c, err)
		return
	}

	if key != "" {
		if err := h.guard.MarkSuccess(ctx, key, b.ID); err != nil {
			// The booking exists; a stale key only costs a duplicate check later.
			c.Error(err)
		}
	}

	metrics.BookingsCreated.WithLabelValues(b.BookingType).Inc()
	c.JSON(http.StatusCreated, gin.H{"message": "booking created", "booking": b})
}

// ListBookings returns the current user's bookings newest-first, optionally
// filtered by ?type= and paged by ?page= and ?limit=.
func (h *Handler) ListBookings(c *gin.Context) {
	userID := c.GetString("userId")

	var modality booking.Modality
	if t := c.Query("type"); t != "" {
		m, ok := booking.ParseModality(t)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown booking type"})
			return
		}
		modality = m
	}

	page, limit := pagination(c)

	bookings, err := h.engine.List(c.Request.Context(), userID, modality, limit, (page-1)*limit)
	if err != nil {
		h.writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"page":     page,
		"limit":    limit,
	})
}

// GetBooking returns one of the current user's bookings.
func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.engine.Get(c.Request.Context(), c.GetString("userId"), c.Param("id"))
	if err != nil {
		h.writeEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBooking moves a confirmed booking to cancelled. Repeating the call
// on an already-cancelled booking succeeds without changing anything.
func (h *Handler) CancelBooking(c *gin.Context) {
	if err := h.engine.Cancel(c.Request.Context(), c.GetString("userId"), c.Param("id")); err != nil {
		h.writeEngineError(c, err)
		return
	}
	metrics.BookingsCancelled.Inc()
	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

func (h *Handler) releaseKey(ctx context.Context, key string) {
	if key == "" {
		return
	}
	_ = h.guard.MarkFailure(ctx, key)
}

// writeEngineError maps the engine's error taxonomy onto HTTP statuses.
// Foreign bookings are reported as not found so ids cannot be probed.
func (h *Handler) writeEngineError(c *gin.Context, err error) {
	var rej *booking.Rejection
	switch {
	case errors.As(err, &rej):
		c.JSON(http.StatusBadRequest, gin.H{"error": rej.Message, "reason": string(rej.Reason)})
	case errors.Is(err, booking.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
	case errors.Is(err, booking.ErrNotFound), errors.Is(err, booking.ErrForbidden):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	case errors.Is(err, booking.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "booking cannot be cancelled in its current status"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
	}
}

func pagination(c *gin.Context) (page, limit int) {
	page = 1
	limit = defaultPageSize

	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}
