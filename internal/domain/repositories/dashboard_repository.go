package repositories

import (
	"context"
	"time"

	"github.com/skyexp/booking-backend/internal/domain/entities"
)

// DashboardRepository exposes the aggregate reads composed by the dashboard
// overview. Window bounds are half-open: Since reads cover [since, now),
// Between reads cover [from, to).
type DashboardRepository interface {
	// CountFlights counts all flights
	CountFlights(ctx context.Context) (int64, error)

	// CountFlightsSince counts flights created at or after since
	CountFlightsSince(ctx context.Context, since time.Time) (int64, error)

	// CountFlightsBetween counts flights created in [from, to)
	CountFlightsBetween(ctx context.Context, from, to time.Time) (int64, error)

	// CountReservations counts all reservations
	CountReservations(ctx context.Context) (int64, error)

	// CountReservationsSince counts reservations created at or after since
	CountReservationsSince(ctx context.Context, since time.Time) (int64, error)

	// CountReservationsBetween counts reservations created in [from, to)
	CountReservationsBetween(ctx context.Context, from, to time.Time) (int64, error)

	// SumReservationTotals sums all reservation totals; zero when there are none
	SumReservationTotals(ctx context.Context) (float64, error)

	// SumReservationTotalsSince sums totals of reservations created at or after since
	SumReservationTotalsSince(ctx context.Context, since time.Time) (float64, error)

	// SumReservationTotalsBetween sums totals of reservations created in [from, to)
	SumReservationTotalsBetween(ctx context.Context, from, to time.Time) (float64, error)

	// CountDistinctEmails counts distinct customer emails across all reservations
	CountDistinctEmails(ctx context.Context) (int64, error)

	// CountDistinctEmailsSince counts distinct emails in reservations created at or after since
	CountDistinctEmailsSince(ctx context.Context, since time.Time) (int64, error)

	// CountDistinctEmailsBetween counts distinct emails in reservations created in [from, to)
	CountDistinctEmailsBetween(ctx context.Context, from, to time.Time) (int64, error)

	// RecentReservations returns the most recently created reservations with
	// their flight projections expanded
	RecentReservations(ctx context.Context, limit int) ([]*entities.Reservation, error)

	// TopFlightRankings groups reservations by flight and returns the top
	// rankings ordered by reservation count, revenue breaking ties
	TopFlightRankings(ctx context.Context, limit int) ([]entities.FlightRanking, error)

	// RevenueByCategory sums reservation totals per flight category; reservations
	// whose flight no longer exists are excluded
	RevenueByCategory(ctx context.Context) (map[string]float64, error)

	// FlightCountByCategory counts flights per category; uncategorized flights
	// bucket under the "uncategorized" key
	FlightCountByCategory(ctx context.Context) (map[string]int64, error)
}
