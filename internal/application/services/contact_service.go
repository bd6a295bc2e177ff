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

// ContactInput is the public contact form payload.
type ContactInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}

// ContactService records contact form submissions.
type ContactService struct {
	repo repositories.ContactRepository
}

// NewContactService creates a new contact service
func NewContactService(repo repositories.ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

// Create validates and stores a contact request
func (s *ContactService) Create(ctx context.Context, input *ContactInput) (*entities.ContactRequest, error) {
	var errs []string
	if strings.TrimSpace(input.FirstName) == "" {
		errs = append(errs, "First name is required")
	}
	if strings.TrimSpace(input.LastName) == "" {
		errs = append(errs, "Last name is required")
	}
	if !emailPattern.MatchString(strings.TrimSpace(input.Email)) {
		errs = append(errs, "Valid email is required")
	}
	if len(strings.TrimSpace(input.Message)) < 10 {
		errs = append(errs, "Message is required and must be at least 10 characters")
	}
	if len(errs) > 0 {
		return nil, apperrors.NewValidationErrors("Validation failed", errs)
	}

	request := &entities.ContactRequest{
		ID:        uuid.New().String(),
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:     strings.TrimSpace(input.Phone),
		Message:   strings.TrimSpace(input.Message),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// List returns all contact requests, newest first
func (s *ContactService) List(ctx context.Context) ([]*entities.ContactRequest, error) {
	return s.repo.List(ctx)
}
