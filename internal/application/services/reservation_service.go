package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/skyexp/booking-backend/internal/domain/entities"
	"github.com/skyexp/booking-backend/internal/domain/repositories"
	apperrors "github.com/skyexp/booking-backend/pkg/errors"
)

// ReservationService handles the public booking submission and the admin
// reservation operations.
type ReservationService struct {
	repo       repositories.ReservationRepository
	flightRepo repositories.FlightRepository
}

// NewReservationService creates a new reservation service
func NewReservationService(repo repositories.ReservationRepository, flightRepo repositories.FlightRepository) *ReservationService {
	return &ReservationService{
		repo:       repo,
		flightRepo: flightRepo,
	}
}

// Create validates and persists a booking submission. The referenced flight
// must exist at creation time; the check-then-insert window is accepted since
// flight deletion is a rare admin action.
func (s *ReservationService) Create(ctx context.Context, input *ReservationInput) (*entities.Reservation, error) {
	if errs := ValidateReservation(input); len(errs) > 0 {
		return nil, apperrors.NewValidationErrors("Validation failed", errs)
	}

	exists, err := s.flightRepo.Exists(ctx, input.Flight)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewBadReferenceError("Referenced flight does not exist")
	}

	// Validation already proved these parse.
	date, _ := parseReservationDate(input.Date)
	travelers, _ := coerceNumber(input.Travelers)
	total, _ := coerceNumber(input.Total)

	status := entities.ReservationStatusPending
	if entities.IsValidReservationStatus(input.Status) {
		status = entities.ReservationStatus(input.Status)
	}

	phoneNumber := ""
	if raw, ok := input.PhoneNumber.(string); ok {
		phoneNumber = strings.TrimSpace(raw)
	}

	now := time.Now().UTC()
	reservation := &entities.Reservation{
		ID:             uuid.New().String(),
		Date:           dayOf(date),
		Travelers:      int(travelers),
		Total:          total,
		FullName:       strings.TrimSpace(input.FullName),
		Email:          strings.ToLower(strings.TrimSpace(input.Email)),
		PhoneNumber:    phoneNumber,
		PickUpLocation: strings.TrimSpace(input.PickUpLocation),
		FlightID:       input.Flight,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	// Re-read to attach the flight projection the client renders.
	return s.repo.GetByID(ctx, reservation.ID)
}

// List returns all reservations, newest-created first
func (s *ReservationService) List(ctx context.Context) ([]*entities.Reservation, error) {
	return s.repo.List(ctx)
}

// GetByID returns one reservation. Malformed IDs are rejected before they
// reach the store.
func (s *ReservationService) GetByID(ctx context.Context, id string) (*entities.Reservation, error) {
	if err := validateReservationID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete removes a reservation and returns the deleted identity
func (s *ReservationService) Delete(ctx context.Context, id string) (string, error) {
	if err := validateReservationID(id); err != nil {
		return "", err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return "", err
	}
	return id, nil
}

// UpdateStatus transitions a reservation to one of the allowed statuses and
// returns the updated record with its flight projection expanded
func (s *ReservationService) UpdateStatus(ctx context.Context, id, status string) (*entities.Reservation, error) {
	if err := validateReservationID(id); err != nil {
		return nil, err
	}
	if !entities.IsValidReservationStatus(status) {
		return nil, apperrors.NewValidationErrors("Invalid status value", []string{
			fmt.Sprintf("Status must be one of: %s", allowedStatusList()),
		})
	}

	if err := s.repo.UpdateStatus(ctx, id, entities.ReservationStatus(status)); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func validateReservationID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NewInvalidIDError("Invalid reservation ID")
	}
	return nil
}
