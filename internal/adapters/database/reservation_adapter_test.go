package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyexp/booking-backend/internal/adapters/database"
	"github.com/skyexp/booking-backend/internal/domain/entities"
	"github.com/skyexp/booking-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/skyexp/booking-backend/pkg/errors"
)

var reservationColumns = []string{
	"id", "date", "travelers", "total", "full_name", "email",
	"phone_number", "pick_up_location", "flight_id", "status",
	"created_at", "updated_at",
	"f_id", "f_title", "f_price", "f_main_image", "f_category", "f_rating",
}

func setupMockDB(t *testing.T) (*postgres.Client, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return postgres.NewClientWithDB(db), mock
}

func TestReservationAdapter_GetByID(t *testing.T) {
	id := "8c5e2bb8-51cf-4df8-8b62-5f602b1a2d77"
	now := time.Now().UTC()

	t.Run("expands the flight projection", func(t *testing.T) {
		client, mock := setupMockDB(t)
		adapter := database.NewReservationAdapter(client)

		mock.ExpectQuery(`LEFT JOIN flights f ON f.id = r.flight_id\s+WHERE r.id = \$1`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(reservationColumns).AddRow(
				id, now, 2, 240.0, "Jane Doe", "jane@example.com",
				"+123456", "Hotel Azure", "flight-1", "pending",
				now, now,
				"flight-1", "Lagoon Tour", 120.0, "lagoon.jpg", "water", 4.7,
			))

		reservation, err := adapter.GetByID(context.Background(), id)

		assert.NoError(t, err)
		require.NotNil(t, reservation.Flight)
		assert.Equal(t, "Lagoon Tour", reservation.Flight.Title)
		assert.Equal(t, "water", reservation.Flight.Category)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("leaves the projection nil when the flight is gone", func(t *testing.T) {
		client, mock := setupMockDB(t)
		adapter := database.NewReservationAdapter(client)

		mock.ExpectQuery(`WHERE r.id = \$1`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(reservationColumns).AddRow(
				id, now, 2, 240.0, "Jane Doe", "jane@example.com",
				nil, "Hotel Azure", "flight-gone", "pending",
				now, now,
				nil, nil, nil, nil, nil, nil,
			))

		reservation, err := adapter.GetByID(context.Background(), id)

		assert.NoError(t, err)
		assert.Nil(t, reservation.Flight)
		assert.Equal(t, "flight-gone", reservation.FlightID)
		assert.Empty(t, reservation.PhoneNumber)
	})

	t.Run("maps an empty result to not found", func(t *testing.T) {
		client, mock := setupMockDB(t)
		adapter := database.NewReservationAdapter(client)

		mock.ExpectQuery(`WHERE r.id = \$1`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(reservationColumns))

		_, err := adapter.GetByID(context.Background(), id)

		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestReservationAdapter_UpdateStatus(t *testing.T) {
	id := "8c5e2bb8-51cf-4df8-8b62-5f602b1a2d77"

	t.Run("updates the status in place", func(t *testing.T) {
		client, mock := setupMockDB(t)
		adapter := database.NewReservationAdapter(client)

		mock.ExpectExec(`UPDATE "reservations" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := adapter.UpdateStatus(context.Background(), id, entities.ReservationStatusConfirmed)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps zero affected rows to not found", func(t *testing.T) {
		client, mock := setupMockDB(t)
		adapter := database.NewReservationAdapter(client)

		mock.ExpectExec(`UPDATE "reservations" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := adapter.UpdateStatus(context.Background(), id, entities.ReservationStatusCancelled)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestReservationAdapter_List(t *testing.T) {
	client, mock := setupMockDB(t)
	adapter := database.NewReservationAdapter(client)
	now := time.Now().UTC()

	mock.ExpectQuery(`ORDER BY r.created_at DESC`).
		WillReturnRows(sqlmock.NewRows(reservationColumns).
			AddRow("r1", now, 2, 240.0, "Jane", "jane@example.com", nil, "Lobby", "f1", "pending", now, now,
				"f1", "Lagoon Tour", 120.0, "lagoon.jpg", "water", 4.7).
			AddRow("r2", now, 4, 600.0, "John", "john@example.com", nil, "Pier 3", "f2", "confirmed", now, now,
				nil, nil, nil, nil, nil, nil))

	reservations, err := adapter.List(context.Background())

	assert.NoError(t, err)
	require.Len(t, reservations, 2)
	assert.NotNil(t, reservations[0].Flight)
	assert.Nil(t, reservations[1].Flight)
}
