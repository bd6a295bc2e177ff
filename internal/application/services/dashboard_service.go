package services

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/skyexp/booking-backend/internal/domain/entities"
	"github.com/skyexp/booking-backend/internal/domain/repositories"
	"github.com/skyexp/booking-backend/internal/infrastructure/observability"
)

const (
	growthWindow = 30 * 24 * time.Hour

	recentReservationsLimit = 5
	topFlightsLimit         = 5
)

// DashboardService composes the admin dashboard overview. All aggregate reads
// run concurrently and the overview is assembled once every read has returned;
// a single failing read fails the whole overview.
type DashboardService struct {
	repo       repositories.DashboardRepository
	flightRepo repositories.FlightRepository
	metrics    *observability.Metrics
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repo repositories.DashboardRepository, flightRepo repositories.FlightRepository, metrics *observability.Metrics) *DashboardService {
	return &DashboardService{
		repo:       repo,
		flightRepo: flightRepo,
		metrics:    metrics,
	}
}

// Overview runs the dashboard aggregate reads in parallel and assembles the
// stats, growth figures, recent reservations, top flights and category
// breakdown into one payload.
func (s *DashboardService) Overview(ctx context.Context) (*entities.DashboardOverview, error) {
	ctx, span := observability.StartSpan(ctx, "dashboard.overview")
	defer span.End()

	now := time.Now().UTC()
	currentStart := now.Add(-growthWindow)
	previousStart := now.Add(-2 * growthWindow)

	var (
		totalRevenue, currentRevenue, previousRevenue                float64
		totalFlights, currentFlights, previousFlights                int64
		totalReservations, currentReservations, previousReservations int64
		totalCustomers, currentCustomers, previousCustomers          int64
		recent                                                       []*entities.Reservation
		rankings                                                     []entities.FlightRanking
		revenueByCategory                                            map[string]float64
		flightsByCategory                                            map[string]int64
	)

	g, gctx := errgroup.WithContext(ctx)

	run := func(name string, fn func(context.Context) error) {
		g.Go(func() error {
			start := time.Now()
			err := fn(gctx)
			observability.RecordDBMetric(gctx, s.metrics, name, time.Since(start))
			return err
		})
	}

	run("dashboard.sum_revenue", func(ctx context.Context) (err error) {
		totalRevenue, err = s.repo.SumReservationTotals(ctx)
		return
	})
	run("dashboard.sum_revenue_current", func(ctx context.Context) (err error) {
		currentRevenue, err = s.repo.SumReservationTotalsSince(ctx, currentStart)
		return
	})
	run("dashboard.sum_revenue_previous", func(ctx context.Context) (err error) {
		previousRevenue, err = s.repo.SumReservationTotalsBetween(ctx, previousStart, currentStart)
		return
	})

	run("dashboard.count_flights", func(ctx context.Context) (err error) {
		totalFlights, err = s.repo.CountFlights(ctx)
		return
	})
	run("dashboard.count_flights_current", func(ctx context.Context) (err error) {
		currentFlights, err = s.repo.CountFlightsSince(ctx, currentStart)
		return
	})
	run("dashboard.count_flights_previous", func(ctx context.Context) (err error) {
		previousFlights, err = s.repo.CountFlightsBetween(ctx, previousStart, currentStart)
		return
	})

	run("dashboard.count_reservations", func(ctx context.Context) (err error) {
		totalReservations, err = s.repo.CountReservations(ctx)
		return
	})
	run("dashboard.count_reservations_current", func(ctx context.Context) (err error) {
		currentReservations, err = s.repo.CountReservationsSince(ctx, currentStart)
		return
	})
	run("dashboard.count_reservations_previous", func(ctx context.Context) (err error) {
		previousReservations, err = s.repo.CountReservationsBetween(ctx, previousStart, currentStart)
		return
	})

	run("dashboard.count_customers", func(ctx context.Context) (err error) {
		totalCustomers, err = s.repo.CountDistinctEmails(ctx)
		return
	})
	run("dashboard.count_customers_current", func(ctx context.Context) (err error) {
		currentCustomers, err = s.repo.CountDistinctEmailsSince(ctx, currentStart)
		return
	})
	run("dashboard.count_customers_previous", func(ctx context.Context) (err error) {
		previousCustomers, err = s.repo.CountDistinctEmailsBetween(ctx, previousStart, currentStart)
		return
	})

	run("dashboard.recent_reservations", func(ctx context.Context) (err error) {
		recent, err = s.repo.RecentReservations(ctx, recentReservationsLimit)
		return
	})
	run("dashboard.top_flight_rankings", func(ctx context.Context) (err error) {
		rankings, err = s.repo.TopFlightRankings(ctx, topFlightsLimit)
		return
	})
	run("dashboard.revenue_by_category", func(ctx context.Context) (err error) {
		revenueByCategory, err = s.repo.RevenueByCategory(ctx)
		return
	})
	run("dashboard.flights_by_category", func(ctx context.Context) (err error) {
		flightsByCategory, err = s.repo.FlightCountByCategory(ctx)
		return
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	topFlights, err := s.resolveTopFlights(ctx, rankings)
	if err != nil {
		return nil, err
	}

	if recent == nil {
		recent = []*entities.Reservation{}
	}

	return &entities.DashboardOverview{
		Stats: entities.DashboardStats{
			TotalRevenue:       totalRevenue,
			TotalFlights:       totalFlights,
			TotalReservations:  totalReservations,
			TotalCustomers:     totalCustomers,
			RevenueGrowth:      CalculateGrowth(currentRevenue, previousRevenue),
			FlightsGrowth:      CalculateGrowth(float64(currentFlights), float64(previousFlights)),
			ReservationsGrowth: CalculateGrowth(float64(currentReservations), float64(previousReservations)),
			CustomersGrowth:    CalculateGrowth(float64(currentCustomers), float64(previousCustomers)),
		},
		RecentReservations: recent,
		TopFlights:         topFlights,
		CategoryStats:      mergeCategoryStats(flightsByCategory, revenueByCategory),
	}, nil
}

// resolveTopFlights joins ranking rows against the flight catalog in one batch
// read. Rankings whose flight has since been deleted are dropped without
// disturbing the order of the rest.
func (s *DashboardService) resolveTopFlights(ctx context.Context, rankings []entities.FlightRanking) ([]entities.TopFlight, error) {
	if len(rankings) == 0 {
		return []entities.TopFlight{}, nil
	}

	ids := make([]string, 0, len(rankings))
	for _, r := range rankings {
		ids = append(ids, r.FlightID)
	}

	flights, err := s.flightRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*entities.Flight, len(flights))
	for _, f := range flights {
		byID[f.ID] = f
	}

	top := make([]entities.TopFlight, 0, len(rankings))
	for _, r := range rankings {
		f, ok := byID[r.FlightID]
		if !ok {
			continue
		}
		top = append(top, entities.TopFlight{
			ID:               f.ID,
			Title:            f.Title,
			Overview:         f.Overview,
			Category:         f.Category,
			Rating:           f.Rating,
			Price:            f.Price,
			MainImage:        f.MainImage,
			ReservationCount: r.ReservationCount,
			TotalRevenue:     r.TotalRevenue,
		})
	}
	return top, nil
}

// mergeCategoryStats merges the flight-count and revenue aggregates into one
// map keyed by category. A category present on only one side gets a zero for
// the other.
func mergeCategoryStats(counts map[string]int64, revenues map[string]float64) map[string]entities.CategoryStat {
	stats := make(map[string]entities.CategoryStat, len(counts))
	for category, count := range counts {
		stats[category] = entities.CategoryStat{Count: count}
	}
	for category, revenue := range revenues {
		stat := stats[category]
		stat.Revenue = revenue
		stats[category] = stat
	}
	return stats
}

// CalculateGrowth returns the percentage change from previous to current,
// rounded to the nearest whole number. A zero previous period reports 100 when
// anything was recorded in the current one, otherwise 0.
func CalculateGrowth(current, previous float64) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round((current - previous) / previous * 100))
}
