package entities

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// ReservationStatuses lists the allowed status values in the order they are
// reported back to clients.
var ReservationStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusConfirmed,
	ReservationStatusCancelled,
}

// IsValidReservationStatus reports whether s is one of the allowed statuses.
func IsValidReservationStatus(s string) bool {
	for _, status := range ReservationStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}

// Reservation represents a customer booking request against a flight. The
// flight reference is weak: the flight may be deleted later without cascading
// into reservations, so Flight can be nil on reads.
type Reservation struct {
	ID             string            `json:"id" db:"id"`
	Date           time.Time         `json:"date" db:"date"`
	Travelers      int               `json:"travelers" db:"travelers"`
	Total          float64           `json:"total" db:"total"`
	FullName       string            `json:"fullName" db:"full_name"`
	Email          string            `json:"email" db:"email"`
	PhoneNumber    string            `json:"phoneNumber,omitempty" db:"phone_number"`
	PickUpLocation string            `json:"pickUpLocation" db:"pick_up_location"`
	FlightID       string            `json:"-" db:"flight_id"`
	Flight         *FlightSummary    `json:"flight"`
	Status         ReservationStatus `json:"status" db:"status"`
	CreatedAt      time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time         `json:"-" db:"updated_at"`
}
