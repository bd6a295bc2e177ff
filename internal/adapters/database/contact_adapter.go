package database

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/skyexp/booking-backend/internal/domain/entities"
	"github.com/skyexp/booking-backend/internal/domain/repositories"
	"github.com/skyexp/booking-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/skyexp/booking-backend/pkg/errors"
)

// ContactAdapter implements the ContactRepository interface
type ContactAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewContactAdapter creates a new contact adapter
func NewContactAdapter(client *postgres.Client) repositories.ContactRepository {
	return &ContactAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create stores a contact request
func (a *ContactAdapter) Create(ctx context.Context, request *entities.ContactRequest) error {
	record := goqu.Record{
		"id":         request.ID,
		"first_name": request.FirstName,
		"last_name":  request.LastName,
		"email":      request.Email,
		"phone":      request.Phone,
		"message":    request.Message,
		"created_at": request.CreatedAt,
	}

	query, args, err := a.db.Insert("contact_requests").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create contact request", err)
	}

	return nil
}

// List retrieves all contact requests, newest first
func (a *ContactAdapter) List(ctx context.Context) ([]*entities.ContactRequest, error) {
	query, args, err := a.db.Select("id", "first_name", "last_name", "email", "phone", "message", "created_at").
		From("contact_requests").
		Order(goqu.I("created_at").Desc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list contact requests", err)
	}
	defer rows.Close()

	requests := []*entities.ContactRequest{}
	for rows.Next() {
		request := &entities.ContactRequest{}
		err := rows.Scan(
			&request.ID,
			&request.FirstName,
			&request.LastName,
			&request.Email,
			&request.Phone,
			&request.Message,
			&request.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan contact request", err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read contact requests", err)
	}

	return requests, nil
}
