package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/skyexp/booking-backend/internal/application/services"
	"github.com/skyexp/booking-backend/internal/domain/entities"
)

// FlightService defines the catalog operations used by the handler.
type FlightService interface {
	Create(ctx context.Context, input *services.FlightInput) (*entities.Flight, error)
	GetByID(ctx context.Context, id string) (*entities.Flight, error)
	List(ctx context.Context) ([]*entities.Flight, error)
	Update(ctx context.Context, id string, input *services.FlightInput) (*entities.Flight, error)
	Delete(ctx context.Context, id string) (string, error)
}

// FlightHandler handles the public catalog reads and admin catalog management.
type FlightHandler struct {
	service FlightService
}

// NewFlightHandler creates a new flight handler
func NewFlightHandler(service FlightService) *FlightHandler {
	return &FlightHandler{service: service}
}

// ListFlights handles GET /api/flights
func (h *FlightHandler) ListFlights(w http.ResponseWriter, r *http.Request) {
	flights, err := h.service.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, flights)
}

// GetFlight handles GET /api/flights/{id}
func (h *FlightHandler) GetFlight(w http.ResponseWriter, r *http.Request) {
	flight, err := h.service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, flight)
}

// CreateFlight handles POST /api/flights
func (h *FlightHandler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	var input services.FlightInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	flight, err := h.service.Create(r.Context(), &input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, flight)
}

// UpdateFlight handles PUT /api/flights/{id}
func (h *FlightHandler) UpdateFlight(w http.ResponseWriter, r *http.Request) {
	var input services.FlightInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	flight, err := h.service.Update(r.Context(), r.PathValue("id"), &input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, flight)
}

// DeleteFlight handles DELETE /api/flights/{id}
func (h *FlightHandler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	deletedID, err := h.service.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message":   "Flight deleted",
		"deletedId": deletedID,
	})
}
