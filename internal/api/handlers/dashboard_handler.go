package handlers

import (
	"context"
	"net/http"

	"github.com/skyexp/booking-backend/internal/domain/entities"
)

// DashboardService defines the aggregation operations used by the handler.
type DashboardService interface {
	Overview(ctx context.Context) (*entities.DashboardOverview, error)
}

// DashboardHandler serves the admin dashboard aggregates.
type DashboardHandler struct {
	service DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetOverview handles GET /api/dashboard/overview
func (h *DashboardHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.Overview(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, overview)
}
