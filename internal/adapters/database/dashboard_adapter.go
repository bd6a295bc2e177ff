package database

import (
	"context"
	"time"

	"github.com/skyexp/booking-backend/internal/domain/entities"
	"github.com/skyexp/booking-backend/internal/domain/repositories"
	"github.com/skyexp/booking-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/skyexp/booking-backend/pkg/errors"
)

// DashboardAdapter implements the DashboardRepository interface. Every method
// is a single aggregate read; composition and failure semantics live in the
// dashboard service.
type DashboardAdapter struct {
	client *postgres.Client
}

// NewDashboardAdapter creates a new dashboard adapter
func NewDashboardAdapter(client *postgres.Client) repositories.DashboardRepository {
	return &DashboardAdapter{client: client}
}

func (a *DashboardAdapter) countRow(ctx context.Context, operation, query string, args ...interface{}) (int64, error) {
	var count int64
	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, apperrors.NewInternalError("failed to "+operation, err)
	}
	return count, nil
}

func (a *DashboardAdapter) sumRow(ctx context.Context, operation, query string, args ...interface{}) (float64, error) {
	var sum float64
	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&sum); err != nil {
		return 0, apperrors.NewInternalError("failed to "+operation, err)
	}
	return sum, nil
}

// CountFlights counts all flights
func (a *DashboardAdapter) CountFlights(ctx context.Context) (int64, error) {
	return a.countRow(ctx, "count flights", `SELECT COUNT(*) FROM flights`)
}

// CountFlightsSince counts flights created at or after since
func (a *DashboardAdapter) CountFlightsSince(ctx context.Context, since time.Time) (int64, error) {
	return a.countRow(ctx, "count flights in window",
		`SELECT COUNT(*) FROM flights WHERE created_at >= $1`, since)
}

// CountFlightsBetween counts flights created in [from, to)
func (a *DashboardAdapter) CountFlightsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return a.countRow(ctx, "count flights in window",
		`SELECT COUNT(*) FROM flights WHERE created_at >= $1 AND created_at < $2`, from, to)
}

// CountReservations counts all reservations
func (a *DashboardAdapter) CountReservations(ctx context.Context) (int64, error) {
	return a.countRow(ctx, "count reservations", `SELECT COUNT(*) FROM reservations`)
}

// CountReservationsSince counts reservations created at or after since
func (a *DashboardAdapter) CountReservationsSince(ctx context.Context, since time.Time) (int64, error) {
	return a.countRow(ctx, "count reservations in window",
		`SELECT COUNT(*) FROM reservations WHERE created_at >= $1`, since)
}

// CountReservationsBetween counts reservations created in [from, to)
func (a *DashboardAdapter) CountReservationsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return a.countRow(ctx, "count reservations in window",
		`SELECT COUNT(*) FROM reservations WHERE created_at >= $1 AND created_at < $2`, from, to)
}

// SumReservationTotals sums all recorded reservation totals. COALESCE keeps
// the zero-reservations case a plain 0 rather than a NULL scan failure.
func (a *DashboardAdapter) SumReservationTotals(ctx context.Context) (float64, error) {
	return a.sumRow(ctx, "sum reservation totals",
		`SELECT COALESCE(SUM(total), 0) FROM reservations`)
}

// SumReservationTotalsSince sums totals of reservations created at or after since
func (a *DashboardAdapter) SumReservationTotalsSince(ctx context.Context, since time.Time) (float64, error) {
	return a.sumRow(ctx, "sum reservation totals in window",
		`SELECT COALESCE(SUM(total), 0) FROM reservations WHERE created_at >= $1`, since)
}

// SumReservationTotalsBetween sums totals of reservations created in [from, to)
func (a *DashboardAdapter) SumReservationTotalsBetween(ctx context.Context, from, to time.Time) (float64, error) {
	return a.sumRow(ctx, "sum reservation totals in window",
		`SELECT COALESCE(SUM(total), 0) FROM reservations WHERE created_at >= $1 AND created_at < $2`, from, to)
}

// CountDistinctEmails counts distinct customer emails across all reservations
func (a *DashboardAdapter) CountDistinctEmails(ctx context.Context) (int64, error) {
	return a.countRow(ctx, "count distinct customers",
		`SELECT COUNT(DISTINCT email) FROM reservations`)
}

// CountDistinctEmailsSince counts distinct emails in reservations created at or after since
func (a *DashboardAdapter) CountDistinctEmailsSince(ctx context.Context, since time.Time) (int64, error) {
	return a.countRow(ctx, "count distinct customers in window",
		`SELECT COUNT(DISTINCT email) FROM reservations WHERE created_at >= $1`, since)
}

// CountDistinctEmailsBetween counts distinct emails in reservations created in [from, to)
func (a *DashboardAdapter) CountDistinctEmailsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return a.countRow(ctx, "count distinct customers in window",
		`SELECT COUNT(DISTINCT email) FROM reservations WHERE created_at >= $1 AND created_at < $2`, from, to)
}

// RecentReservations returns the most recently created reservations with their
// flight projections expanded
func (a *DashboardAdapter) RecentReservations(ctx context.Context, limit int) ([]*entities.Reservation, error) {
	rows, err := a.client.DB().QueryContext(ctx,
		reservationSelect+` ORDER BY r.created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get recent reservations", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

// TopFlightRankings groups reservations by flight, ordered by reservation
// count with revenue breaking ties
func (a *DashboardAdapter) TopFlightRankings(ctx context.Context, limit int) ([]entities.FlightRanking, error) {
	rows, err := a.client.DB().QueryContext(ctx, `
		SELECT flight_id, COUNT(*) AS reservation_count, COALESCE(SUM(total), 0) AS total_revenue
		FROM reservations
		GROUP BY flight_id
		ORDER BY reservation_count DESC, total_revenue DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to rank flights", err)
	}
	defer rows.Close()

	rankings := []entities.FlightRanking{}
	for rows.Next() {
		var ranking entities.FlightRanking
		if err := rows.Scan(&ranking.FlightID, &ranking.ReservationCount, &ranking.TotalRevenue); err != nil {
			return nil, apperrors.NewInternalError("failed to scan flight ranking", err)
		}
		rankings = append(rankings, ranking)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read flight rankings", err)
	}

	return rankings, nil
}

// RevenueByCategory sums reservation totals per flight category. The INNER
// JOIN drops reservations whose flight no longer exists, matching the
// dashboard contract for the category breakdown.
func (a *DashboardAdapter) RevenueByCategory(ctx context.Context) (map[string]float64, error) {
	rows, err := a.client.DB().QueryContext(ctx, `
		SELECT COALESCE(NULLIF(f.category, ''), 'uncategorized') AS category,
		       COALESCE(SUM(r.total), 0) AS revenue
		FROM reservations r
		JOIN flights f ON f.id = r.flight_id
		GROUP BY 1
	`)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to sum revenue by category", err)
	}
	defer rows.Close()

	revenue := map[string]float64{}
	for rows.Next() {
		var category string
		var amount float64
		if err := rows.Scan(&category, &amount); err != nil {
			return nil, apperrors.NewInternalError("failed to scan category revenue", err)
		}
		revenue[category] = amount
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read category revenue", err)
	}

	return revenue, nil
}

// FlightCountByCategory counts flights per category, bucketing uncategorized
// flights under the "uncategorized" key
func (a *DashboardAdapter) FlightCountByCategory(ctx context.Context) (map[string]int64, error) {
	rows, err := a.client.DB().QueryContext(ctx, `
		SELECT COALESCE(NULLIF(category, ''), 'uncategorized') AS category, COUNT(*)
		FROM flights
		GROUP BY 1
	`)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to count flights by category", err)
	}
	defer rows.Close()

	counts := map[string]int64{}
	for rows.Next() {
		var category string
		var count int64
		if err := rows.Scan(&category, &count); err != nil {
			return nil, apperrors.NewInternalError("failed to scan category count", err)
		}
		counts[category] = count
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read category counts", err)
	}

	return counts, nil
}
