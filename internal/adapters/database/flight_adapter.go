package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/skyexp/booking-backend/internal/domain/entities"
	"github.com/skyexp/booking-backend/internal/domain/repositories"
	"github.com/skyexp/booking-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/skyexp/booking-backend/pkg/errors"
)

// FlightAdapter implements the FlightRepository interface
type FlightAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewFlightAdapter creates a new flight adapter
func NewFlightAdapter(client *postgres.Client) repositories.FlightRepository {
	return &FlightAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var flightColumns = []interface{}{
	"id", "title", "overview", "category", "price", "rating", "main_image",
	"created_at", "updated_at",
}

// Create creates a new flight
func (a *FlightAdapter) Create(ctx context.Context, flight *entities.Flight) error {
	record := goqu.Record{
		"id":         flight.ID,
		"title":      flight.Title,
		"overview":   flight.Overview,
		"category":   flight.Category,
		"price":      flight.Price,
		"rating":     flight.Rating,
		"main_image": flight.MainImage,
		"created_at": flight.CreatedAt,
		"updated_at": flight.UpdatedAt,
	}

	query, args, err := a.db.Insert("flights").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create flight", err)
	}

	return nil
}

// GetByID retrieves a flight by ID
func (a *FlightAdapter) GetByID(ctx context.Context, id string) (*entities.Flight, error) {
	query, args, err := a.db.Select(flightColumns...).
		From("flights").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	flight, err := scanFlight(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("flight with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get flight", err)
	}

	return flight, nil
}

// GetByIDs retrieves multiple flights in one batch
func (a *FlightAdapter) GetByIDs(ctx context.Context, ids []string) ([]*entities.Flight, error) {
	if len(ids) == 0 {
		return []*entities.Flight{}, nil
	}

	query, args, err := a.db.Select(flightColumns...).
		From("flights").
		Where(goqu.Ex{"id": ids}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get flights", err)
	}
	defer rows.Close()

	return collectFlights(rows)
}

// List retrieves all flights, newest first
func (a *FlightAdapter) List(ctx context.Context) ([]*entities.Flight, error) {
	query, args, err := a.db.Select(flightColumns...).
		From("flights").
		Order(goqu.I("created_at").Desc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list flights", err)
	}
	defer rows.Close()

	return collectFlights(rows)
}

// Update updates a flight
func (a *FlightAdapter) Update(ctx context.Context, flight *entities.Flight) error {
	flight.UpdatedAt = time.Now().UTC()

	record := goqu.Record{
		"title":      flight.Title,
		"overview":   flight.Overview,
		"category":   flight.Category,
		"price":      flight.Price,
		"rating":     flight.Rating,
		"main_image": flight.MainImage,
		"updated_at": flight.UpdatedAt,
	}

	query, args, err := a.db.Update("flights").
		Set(record).
		Where(goqu.Ex{"id": flight.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update flight", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to check update result", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("flight with id %s not found", flight.ID))
	}

	return nil
}

// Delete deletes a flight by ID. Reservations referencing the flight are left
// in place: the reference is weak and is tolerated as dangling by readers.
func (a *FlightAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("flights").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete flight", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to check delete result", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("flight with id %s not found", id))
	}

	return nil
}

// Exists reports whether a flight with the given ID exists
func (a *FlightAdapter) Exists(ctx context.Context, id string) (bool, error) {
	query, args, err := a.db.Select(goqu.L("1")).
		From("flights").
		Where(goqu.Ex{"id": id}).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build query", err)
	}

	var one int
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, apperrors.NewInternalError("failed to check flight existence", err)
	}

	return true, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFlight(row rowScanner) (*entities.Flight, error) {
	flight := &entities.Flight{}
	var category sql.NullString

	err := row.Scan(
		&flight.ID,
		&flight.Title,
		&flight.Overview,
		&category,
		&flight.Price,
		&flight.Rating,
		&flight.MainImage,
		&flight.CreatedAt,
		&flight.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	flight.Category = category.String
	return flight, nil
}

func collectFlights(rows *sql.Rows) ([]*entities.Flight, error) {
	flights := []*entities.Flight{}
	for rows.Next() {
		flight, err := scanFlight(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan flight", err)
		}
		flights = append(flights, flight)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read flights", err)
	}
	return flights, nil
}
