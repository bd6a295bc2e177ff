package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/skyexp/booking-backend/internal/domain/entities"
	"github.com/skyexp/booking-backend/internal/domain/repositories"
	apperrors "github.com/skyexp/booking-backend/pkg/errors"
)

// FlightInput is the admin payload for creating or updating a catalog entry.
type FlightInput struct {
	Title     string  `json:"title"`
	Overview  string  `json:"overview"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Rating    float64 `json:"rating"`
	MainImage string  `json:"mainImage"`
}

// FlightService manages the tour catalog.
type FlightService struct {
	repo repositories.FlightRepository
}

// NewFlightService creates a new flight service
func NewFlightService(repo repositories.FlightRepository) *FlightService {
	return &FlightService{repo: repo}
}

func validateFlightInput(input *FlightInput) []string {
	var errs []string
	if len(strings.TrimSpace(input.Title)) < 3 {
		errs = append(errs, "Title is required and must be at least 3 characters")
	}
	if input.Price <= 0 {
		errs = append(errs, "Price must be greater than 0")
	}
	if input.Rating < 0 || input.Rating > 5 {
		errs = append(errs, "Rating must be between 0 and 5")
	}
	return errs
}

// Create adds a flight to the catalog
func (s *FlightService) Create(ctx context.Context, input *FlightInput) (*entities.Flight, error) {
	if errs := validateFlightInput(input); len(errs) > 0 {
		return nil, apperrors.NewValidationErrors("Validation failed", errs)
	}

	now := time.Now().UTC()
	flight := &entities.Flight{
		ID:        uuid.New().String(),
		Title:     strings.TrimSpace(input.Title),
		Overview:  strings.TrimSpace(input.Overview),
		Category:  strings.ToLower(strings.TrimSpace(input.Category)),
		Price:     input.Price,
		Rating:    input.Rating,
		MainImage: strings.TrimSpace(input.MainImage),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}
	return flight, nil
}

// GetByID returns one catalog entry
func (s *FlightService) GetByID(ctx context.Context, id string) (*entities.Flight, error) {
	if err := validateFlightID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// List returns the full catalog, newest first
func (s *FlightService) List(ctx context.Context) ([]*entities.Flight, error) {
	return s.repo.List(ctx)
}

// Update replaces the editable fields of a catalog entry
func (s *FlightService) Update(ctx context.Context, id string, input *FlightInput) (*entities.Flight, error) {
	if err := validateFlightID(id); err != nil {
		return nil, err
	}
	if errs := validateFlightInput(input); len(errs) > 0 {
		return nil, apperrors.NewValidationErrors("Validation failed", errs)
	}

	flight, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	flight.Title = strings.TrimSpace(input.Title)
	flight.Overview = strings.TrimSpace(input.Overview)
	flight.Category = strings.ToLower(strings.TrimSpace(input.Category))
	flight.Price = input.Price
	flight.Rating = input.Rating
	flight.MainImage = strings.TrimSpace(input.MainImage)
	flight.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, flight); err != nil {
		return nil, err
	}
	return flight, nil
}

// Delete removes a catalog entry. Reservations referencing it are kept and
// render without a flight projection from then on.
func (s *FlightService) Delete(ctx context.Context, id string) (string, error) {
	if err := validateFlightID(id); err != nil {
		return "", err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return "", err
	}
	return id, nil
}

func validateFlightID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NewInvalidIDError("Invalid flight ID")
	}
	return nil
}
