package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skyexp/booking-backend/internal/api/handlers"
	"github.com/skyexp/booking-backend/internal/domain/entities"
	apperrors "github.com/skyexp/booking-backend/pkg/errors"
)

type stubDashboardService struct {
	overview *entities.DashboardOverview
	err      error
}

func (s *stubDashboardService) Overview(ctx context.Context) (*entities.DashboardOverview, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.overview, nil
}

func TestDashboardHandler_GetOverview(t *testing.T) {
	t.Run("serves the assembled overview", func(t *testing.T) {
		service := &stubDashboardService{
			overview: &entities.DashboardOverview{
				Stats: entities.DashboardStats{
					TotalRevenue:  5000,
					TotalFlights:  12,
					RevenueGrowth: 50,
				},
				RecentReservations: []*entities.Reservation{},
				TopFlights: []entities.TopFlight{
					{ID: "f1", Title: "Lagoon Tour", ReservationCount: 9},
				},
				CategoryStats: map[string]entities.CategoryStat{
					"water": {Count: 4, Revenue: 1200},
				},
			},
		}
		handler := handlers.NewDashboardHandler(service)

		req := httptest.NewRequest("GET", "/api/dashboard/overview", nil)
		w := httptest.NewRecorder()

		handler.GetOverview(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))

		stats, ok := response["stats"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, float64(5000), stats["totalRevenue"])
		assert.Equal(t, float64(50), stats["revenueGrowth"])

		topFlights, ok := response["topFlights"].([]interface{})
		assert.True(t, ok)
		assert.Len(t, topFlights, 1)

		categories, ok := response["categoryStats"].(map[string]interface{})
		assert.True(t, ok)
		assert.Contains(t, categories, "water")
	})

	t.Run("maps aggregation failure to 500 with the underlying cause", func(t *testing.T) {
		service := &stubDashboardService{
			err: apperrors.NewInternalError("failed to sum reservation totals", errors.New("connection reset")),
		}
		handler := handlers.NewDashboardHandler(service)

		req := httptest.NewRequest("GET", "/api/dashboard/overview", nil)
		w := httptest.NewRecorder()

		handler.GetOverview(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response map[string]interface{}
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, "failed to sum reservation totals", response["message"])
		assert.Equal(t, "connection reset", response["error"])
	})
}
