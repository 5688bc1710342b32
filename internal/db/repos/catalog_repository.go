package repos

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"travel-booking-service/internal/booking"
	"travel-booking-service/internal/db/models"
)

// CatalogRepository is the read-only source of inventory items. Sort orders
// match what the booking pages show: hotels by rating, cars by brand,
// scheduled transport by departure time.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func cityClause(city string) (string, []interface{}) {
	if city == "" {
		return "", nil
	}
	return " WHERE city ILIKE '%' || $1 || '%'", []interface{}{city}
}

// ListHotels returns hotels, best-rated first, optionally filtered by city.
func (r *CatalogRepository) ListHotels(ctx context.Context, city string) ([]models.Hotel, error) {
	hotels := []models.Hotel{}
	clause, args := cityClause(city)
	err := r.db.SelectContext(ctx, &hotels, `SELECT * FROM hotels`+clause+` ORDER BY rating DESC`, args...)
	return hotels, err
}

// ListFlights returns flights ordered by departure time.
func (r *CatalogRepository) ListFlights(ctx context.Context, city string) ([]models.Flight, error) {
	flights := []models.Flight{}
	if city != "" {
		err := r.db.SelectContext(ctx, &flights,
			`SELECT * FROM flights
			 WHERE departure_city ILIKE '%' || $1 || '%' OR arrival_city ILIKE '%' || $1 || '%'
			 ORDER BY departure_time ASC`, city)
		return flights, err
	}
	err := r.db.SelectContext(ctx, &flights, `SELECT * FROM flights ORDER BY departure_time ASC`)
	return flights, err
}

// ListCars returns rentable cars ordered by brand.
func (r *CatalogRepository) ListCars(ctx context.Context, city string) ([]models.Car, error) {
	cars := []models.Car{}
	if city != "" {
		err := r.db.SelectContext(ctx, &cars,
			`SELECT * FROM cars WHERE available = true AND city ILIKE '%' || $1 || '%' ORDER BY brand ASC`, city)
		return cars, err
	}
	err := r.db.SelectContext(ctx, &cars, `SELECT * FROM cars WHERE available = true ORDER BY brand ASC`)
	return cars, err
}

// ListTrains returns trains ordered by departure time.
func (r *CatalogRepository) ListTrains(ctx context.Context, station string) ([]models.Train, error) {
	trains := []models.Train{}
	if station != "" {
		err := r.db.SelectContext(ctx, &trains,
			`SELECT * FROM trains
			 WHERE departure_station ILIKE '%' || $1 || '%' OR arrival_station ILIKE '%' || $1 || '%'
			 ORDER BY departure_time ASC`, station)
		return trains, err
	}
	err := r.db.SelectContext(ctx, &trains, `SELECT * FROM trains ORDER BY departure_time ASC`)
	return trains, err
}

// ListBuses returns buses ordered by departure time.
func (r *CatalogRepository) ListBuses(ctx context.Context, city string) ([]models.Bus, error) {
	buses := []models.Bus{}
	if city != "" {
		err := r.db.SelectContext(ctx, &buses,
			`SELECT * FROM buses
			 WHERE departure_city ILIKE '%' || $1 || '%' OR arrival_city ILIKE '%' || $1 || '%'
			 ORDER BY departure_time ASC`, city)
		return buses, err
	}
	err := r.db.SelectContext(ctx, &buses, `SELECT * FROM buses ORDER BY departure_time ASC`)
	return buses, err
}

// ListMetroRoutes returns metro routes ordered by line name.
func (r *CatalogRepository) ListMetroRoutes(ctx context.Context, city string) ([]models.MetroRoute, error) {
	routes := []models.MetroRoute{}
	clause, args := cityClause(city)
	err := r.db.SelectContext(ctx, &routes, `SELECT * FROM metro_routes`+clause+` ORDER BY line_name ASC`, args...)
	return routes, err
}

// GetItem fetches one inventory record by modality and id and normalizes it
// into the quote the booking engine prices against. Returns nil when the
// item does not exist.
func (r *CatalogRepository) GetItem(ctx context.Context, m booking.Modality, id string) (*booking.Item, error) {
	var quote booking.Item
	var err error

	switch m {
	case booking.ModalityHotel:
		var h models.Hotel
		if err = r.db.GetContext(ctx, &h, `SELECT * FROM hotels WHERE id = $1`, id); err == nil {
			quote = booking.Item{ID: h.ID, Modality: m, UnitPrice: h.PricePerNight}
		}
	case booking.ModalityFlight:
		var f models.Flight
		if err = r.db.GetContext(ctx, &f, `SELECT * FROM flights WHERE id = $1`, id); err == nil {
			quote = booking.Item{ID: f.ID, Modality: m, UnitPrice: f.Price, Capacity: f.AvailableSeats}
		}
	case booking.ModalityCar:
		var c models.Car
		if err = r.db.GetContext(ctx, &c, `SELECT * FROM cars WHERE id = $1`, id); err == nil {
			quote = booking.Item{ID: c.ID, Modality: m, UnitPrice: c.PricePerDay}
		}
	case booking.ModalityTrain:
		var t models.Train
		if err = r.db.GetContext(ctx, &t, `SELECT * FROM trains WHERE id = $1`, id); err == nil {
			quote = booking.Item{ID: t.ID, Modality: m, UnitPrice: t.Price, Capacity: t.AvailableSeats}
		}
	case booking.ModalityBus:
		var b models.Bus
		if err = r.db.GetContext(ctx, &b, `SELECT * FROM buses WHERE id = $1`, id); err == nil {
			quote = booking.Item{ID: b.ID, Modality: m, UnitPrice: b.Price, Capacity: b.AvailableSeats}
		}
	case booking.ModalityMetro:
		var mr models.MetroRoute
		if err = r.db.GetContext(ctx, &mr, `SELECT * FROM metro_routes WHERE id = $1`, id); err == nil {
			quote = booking.Item{ID: mr.ID, Modality: m, UnitPrice: mr.Price}
		}
	default:
		return nil, fmt.Errorf("unknown modality %q", m)
	}

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &quote, nil
}
