package services_test

import (
	"testing"
	"time"

	"github.com/skyexp/booking-backend/internal/application/services"
	"github.com/stretchr/testify/assert"
)

func validReservationInput() *services.ReservationInput {
	return &services.ReservationInput{
		Date:           time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02"),
		Travelers:      float64(2),
		Total:          float64(240),
		FullName:       "Jane Doe",
		Email:          "jane@example.com",
		PickUpLocation: "Hotel Azure, Main Lobby",
		Flight:         "4f1c29aa-2f1e-4c75-9a60-0a9f0d1c2b3d",
	}
}

func TestValidateReservation(t *testing.T) {
	t.Run("accepts a complete valid payload", func(t *testing.T) {
		errs := services.ValidateReservation(validReservationInput())
		assert.Empty(t, errs)
	})

	t.Run("accepts a reservation for today", func(t *testing.T) {
		input := validReservationInput()
		input.Date = time.Now().UTC().Format("2006-01-02")
		assert.Empty(t, services.ValidateReservation(input))
	})

	t.Run("rejects a past date", func(t *testing.T) {
		input := validReservationInput()
		input.Date = time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
		errs := services.ValidateReservation(input)
		assert.Contains(t, errs, "Reservation date cannot be in the past")
	})

	t.Run("rejects a missing date", func(t *testing.T) {
		input := validReservationInput()
		input.Date = ""
		assert.Contains(t, services.ValidateReservation(input), "Valid date is required")
	})

	t.Run("rejects an unparseable date", func(t *testing.T) {
		input := validReservationInput()
		input.Date = "not-a-date"
		assert.Contains(t, services.ValidateReservation(input), "Valid date is required")
	})

	t.Run("accepts travelers at both bounds", func(t *testing.T) {
		for _, travelers := range []float64{1, 20} {
			input := validReservationInput()
			input.Travelers = travelers
			assert.Empty(t, services.ValidateReservation(input))
		}
	})

	t.Run("rejects travelers outside 1..20", func(t *testing.T) {
		for _, travelers := range []interface{}{float64(0), float64(21), "three", nil} {
			input := validReservationInput()
			input.Travelers = travelers
			errs := services.ValidateReservation(input)
			assert.Contains(t, errs, "Number of travelers must be between 1 and 20")
		}
	})

	t.Run("rejects fractional travelers", func(t *testing.T) {
		input := validReservationInput()
		input.Travelers = 2.5
		assert.Contains(t, services.ValidateReservation(input), "Number of travelers must be between 1 and 20")
	})

	t.Run("accepts a barely positive total", func(t *testing.T) {
		input := validReservationInput()
		input.Total = 0.01
		assert.Empty(t, services.ValidateReservation(input))
	})

	t.Run("rejects a non-positive or missing total", func(t *testing.T) {
		for _, total := range []interface{}{float64(0), float64(-5), nil, "free"} {
			input := validReservationInput()
			input.Total = total
			errs := services.ValidateReservation(input)
			assert.Contains(t, errs, "Valid total price is required and must be greater than 0")
		}
	})

	t.Run("rejects a short full name", func(t *testing.T) {
		input := validReservationInput()
		input.FullName = " J "
		errs := services.ValidateReservation(input)
		assert.Contains(t, errs, "Full name is required and must be at least 2 characters")
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		for _, email := range []string{"", "not-an-email", "a b@c.com", "a@b"} {
			input := validReservationInput()
			input.Email = email
			assert.Contains(t, services.ValidateReservation(input), "Valid email is required")
		}
	})

	t.Run("rejects a non-string phone number", func(t *testing.T) {
		input := validReservationInput()
		input.PhoneNumber = float64(5551234)
		errs := services.ValidateReservation(input)
		assert.Contains(t, errs, "Phone number must be a string if provided")
	})

	t.Run("accepts an absent phone number", func(t *testing.T) {
		input := validReservationInput()
		input.PhoneNumber = nil
		assert.Empty(t, services.ValidateReservation(input))
	})

	t.Run("rejects a short pickup location", func(t *testing.T) {
		input := validReservationInput()
		input.PickUpLocation = "ab"
		errs := services.ValidateReservation(input)
		assert.Contains(t, errs, "Pickup location is required and must be at least 3 characters")
	})

	t.Run("rejects a missing flight reference", func(t *testing.T) {
		input := validReservationInput()
		input.Flight = "  "
		errs := services.ValidateReservation(input)
		assert.Contains(t, errs, "Valid flight reference is required")
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		input := validReservationInput()
		input.Status = "done"
		errs := services.ValidateReservation(input)
		assert.Contains(t, errs, "Status must be one of: pending, confirmed, cancelled")
	})

	t.Run("accepts every allowed status", func(t *testing.T) {
		for _, status := range []string{"", "pending", "confirmed", "cancelled"} {
			input := validReservationInput()
			input.Status = status
			assert.Empty(t, services.ValidateReservation(input))
		}
	})

	t.Run("accumulates every violation for an empty payload", func(t *testing.T) {
		errs := services.ValidateReservation(&services.ReservationInput{})
		assert.GreaterOrEqual(t, len(errs), 6)
	})
}
