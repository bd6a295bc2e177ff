package repositories

import (
	"context"

	"github.com/skyexp/booking-backend/internal/domain/entities"
)

// FlightRepository defines the interface for flight catalog operations
type FlightRepository interface {
	// Create creates a new flight
	Create(ctx context.Context, flight *entities.Flight) error

	// GetByID retrieves a flight by ID
	GetByID(ctx context.Context, id string) (*entities.Flight, error)

	// GetByIDs retrieves multiple flights in one batch; missing IDs are simply
	// absent from the result
	GetByIDs(ctx context.Context, ids []string) ([]*entities.Flight, error)

	// List retrieves all flights, newest first
	List(ctx context.Context) ([]*entities.Flight, error)

	// Update updates a flight
	Update(ctx context.Context, flight *entities.Flight) error

	// Delete deletes a flight by ID
	Delete(ctx context.Context, id string) error

	// Exists reports whether a flight with the given ID exists, without
	// fetching the record
	Exists(ctx context.Context, id string) (bool, error)
}
