package repositories

import (
	"context"

	"github.com/skyexp/booking-backend/internal/domain/entities"
)

// ReservationRepository defines the interface for reservation data operations.
// Reads return reservations with the flight projection expanded; the projection
// is nil when the referenced flight no longer exists.
type ReservationRepository interface {
	// Create persists a new reservation
	Create(ctx context.Context, reservation *entities.Reservation) error

	// GetByID retrieves a reservation by ID
	GetByID(ctx context.Context, id string) (*entities.Reservation, error)

	// List retrieves all reservations, newest-created first
	List(ctx context.Context) ([]*entities.Reservation, error)

	// UpdateStatus mutates only the status field of a reservation
	UpdateStatus(ctx context.Context, id string, status entities.ReservationStatus) error

	// Delete deletes a reservation by ID
	Delete(ctx context.Context, id string) error
}
