package services

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/skyexp/booking-backend/internal/domain/entities"
)

// ReservationInput is the raw booking submission. Travelers, total and
// phoneNumber stay untyped so that malformed values surface as validation
// errors instead of decode failures.
type ReservationInput struct {
	Date           string      `json:"date"`
	Travelers      interface{} `json:"travelers"`
	Total          interface{} `json:"total"`
	FullName       string      `json:"fullName"`
	Email          string      `json:"email"`
	PhoneNumber    interface{} `json:"phoneNumber"`
	PickUpLocation string      `json:"pickUpLocation"`
	Flight         string      `json:"flight"`
	Status         string      `json:"status"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var reservationDateFormats = []string{
	time.RFC3339,
	"2006-01-02",
}

// ValidateReservation checks every field rule independently and returns the
// accumulated list of violations, empty when the input is valid. It never
// fails part-way: the caller always gets the complete correction list.
func ValidateReservation(input *ReservationInput) []string {
	var errs []string

	// Date: must parse and must not be before today, at day granularity
	date, err := parseReservationDate(input.Date)
	if err != nil {
		errs = append(errs, "Valid date is required")
	} else if dayOf(date).Before(dayOf(time.Now().UTC())) {
		errs = append(errs, "Reservation date cannot be in the past")
	}

	if travelers, ok := coerceNumber(input.Travelers); !ok || travelers != math.Trunc(travelers) || travelers < 1 || travelers > 20 {
		errs = append(errs, "Number of travelers must be between 1 and 20")
	}

	if total, ok := coerceNumber(input.Total); !ok || total <= 0 {
		errs = append(errs, "Valid total price is required and must be greater than 0")
	}

	if len(strings.TrimSpace(input.FullName)) < 2 {
		errs = append(errs, "Full name is required and must be at least 2 characters")
	}

	if !emailPattern.MatchString(input.Email) {
		errs = append(errs, "Valid email is required")
	}

	// Phone number is optional, but when present it must be a string
	if input.PhoneNumber != nil {
		if _, ok := input.PhoneNumber.(string); !ok {
			errs = append(errs, "Phone number must be a string if provided")
		}
	}

	if len(strings.TrimSpace(input.PickUpLocation)) < 3 {
		errs = append(errs, "Pickup location is required and must be at least 3 characters")
	}

	if _, err := uuid.Parse(input.Flight); err != nil {
		errs = append(errs, "Valid flight reference is required")
	}

	if input.Status != "" && !entities.IsValidReservationStatus(input.Status) {
		errs = append(errs, fmt.Sprintf("Status must be one of: %s", allowedStatusList()))
	}

	return errs
}

func parseReservationDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	for _, format := range reservationDateFormats {
		if date, err := time.Parse(format, value); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// dayOf strips the time-of-day component for calendar comparison.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// coerceNumber converts the loosely typed payload values the public form may
// send: JSON numbers, numeric strings, or json.Number.
func coerceNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		parsed, err := v.Float64()
		return parsed, err == nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}

func allowedStatusList() string {
	names := make([]string, len(entities.ReservationStatuses))
	for i, status := range entities.ReservationStatuses {
		names[i] = string(status)
	}
	return strings.Join(names, ", ")
}
