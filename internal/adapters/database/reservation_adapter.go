package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/skyexp/booking-backend/internal/domain/entities"
	"github.com/skyexp/booking-backend/internal/domain/repositories"
	"github.com/skyexp/booking-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/skyexp/booking-backend/pkg/errors"
)

// ReservationAdapter implements the ReservationRepository interface
type ReservationAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewReservationAdapter creates a new reservation adapter
func NewReservationAdapter(client *postgres.Client) repositories.ReservationRepository {
	return &ReservationAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// reservationSelect joins each reservation to its flight projection. The join
// is LEFT because the flight reference is weak: a reservation outlives its
// flight and then carries a null projection.
const reservationSelect = `
	SELECT
		r.id, r.date, r.travelers, r.total, r.full_name, r.email,
		r.phone_number, r.pick_up_location, r.flight_id, r.status,
		r.created_at, r.updated_at,
		f.id, f.title, f.price, f.main_image, f.category, f.rating
	FROM reservations r
	LEFT JOIN flights f ON f.id = r.flight_id
`

// Create persists a new reservation
func (a *ReservationAdapter) Create(ctx context.Context, reservation *entities.Reservation) error {
	record := goqu.Record{
		"id":               reservation.ID,
		"date":             reservation.Date,
		"travelers":        reservation.Travelers,
		"total":            reservation.Total,
		"full_name":        reservation.FullName,
		"email":            reservation.Email,
		"phone_number":     reservation.PhoneNumber,
		"pick_up_location": reservation.PickUpLocation,
		"flight_id":        reservation.FlightID,
		"status":           reservation.Status,
		"created_at":       reservation.CreatedAt,
		"updated_at":       reservation.UpdatedAt,
	}

	query, args, err := a.db.Insert("reservations").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create reservation", err)
	}

	return nil
}

// GetByID retrieves a reservation by ID with its flight projection expanded
func (a *ReservationAdapter) GetByID(ctx context.Context, id string) (*entities.Reservation, error) {
	row := a.client.DB().QueryRowContext(ctx, reservationSelect+` WHERE r.id = $1`, id)

	reservation, err := scanReservation(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("Reservation not found")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get reservation", err)
	}

	return reservation, nil
}

// List retrieves all reservations, newest-created first
func (a *ReservationAdapter) List(ctx context.Context) ([]*entities.Reservation, error) {
	rows, err := a.client.DB().QueryContext(ctx, reservationSelect+` ORDER BY r.created_at DESC`)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list reservations", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

// UpdateStatus mutates only the status field of a reservation
func (a *ReservationAdapter) UpdateStatus(ctx context.Context, id string, status entities.ReservationStatus) error {
	query, args, err := a.db.Update("reservations").
		Set(goqu.Record{
			"status":     status,
			"updated_at": goqu.L("now()"),
		}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update reservation status", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to check update result", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError("Reservation not found")
	}

	return nil
}

// Delete deletes a reservation by ID
func (a *ReservationAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("reservations").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete reservation", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to check delete result", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError("Reservation not found")
	}

	return nil
}

func scanReservation(row rowScanner) (*entities.Reservation, error) {
	reservation := &entities.Reservation{}
	var phoneNumber sql.NullString
	var flightID, flightTitle, flightImage, flightCategory sql.NullString
	var flightPrice, flightRating sql.NullFloat64

	err := row.Scan(
		&reservation.ID,
		&reservation.Date,
		&reservation.Travelers,
		&reservation.Total,
		&reservation.FullName,
		&reservation.Email,
		&phoneNumber,
		&reservation.PickUpLocation,
		&reservation.FlightID,
		&reservation.Status,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
		&flightID,
		&flightTitle,
		&flightPrice,
		&flightImage,
		&flightCategory,
		&flightRating,
	)
	if err != nil {
		return nil, err
	}

	reservation.PhoneNumber = phoneNumber.String
	if flightID.Valid {
		reservation.Flight = &entities.FlightSummary{
			ID:        flightID.String,
			Title:     flightTitle.String,
			Price:     flightPrice.Float64,
			MainImage: flightImage.String,
			Category:  flightCategory.String,
			Rating:    flightRating.Float64,
		}
	}

	return reservation, nil
}

func collectReservations(rows *sql.Rows) ([]*entities.Reservation, error) {
	reservations := []*entities.Reservation{}
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan reservation", err)
		}
		reservations = append(reservations, reservation)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read reservations", err)
	}
	return reservations, nil
}
