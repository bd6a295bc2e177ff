package repositories

import (
	"context"

	"github.com/skyexp/booking-backend/internal/domain/entities"
)

// ContactRepository defines the interface for contact request operations.
type ContactRepository interface {
	Create(ctx context.Context, request *entities.ContactRequest) error
	List(ctx context.Context) ([]*entities.ContactRequest, error)
}
