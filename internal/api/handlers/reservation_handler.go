package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/skyexp/booking-backend/internal/application/services"
	"github.com/skyexp/booking-backend/internal/domain/entities"
)

// ReservationService defines the reservation operations used by the handler.
type ReservationService interface {
	Create(ctx context.Context, input *services.ReservationInput) (*entities.Reservation, error)
	List(ctx context.Context) ([]*entities.Reservation, error)
	GetByID(ctx context.Context, id string) (*entities.Reservation, error)
	UpdateStatus(ctx context.Context, id, status string) (*entities.Reservation, error)
	Delete(ctx context.Context, id string) (string, error)
}

// ReservationHandler handles booking submissions and admin reservation management.
type ReservationHandler struct {
	service ReservationService
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(service ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// CreateReservation handles POST /api/reservations
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var input services.ReservationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	reservation, err := h.service.Create(r.Context(), &input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, reservation)
}

// ListReservations handles GET /api/reservations
func (h *ReservationHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.service.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, reservations)
}

// GetReservation handles GET /api/reservations/{id}
func (h *ReservationHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	reservation, err := h.service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, reservation)
}

// UpdateReservationStatus handles PATCH /api/reservations/{id}/status
func (h *ReservationHandler) UpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	reservation, err := h.service.UpdateStatus(r.Context(), r.PathValue("id"), payload.Status)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Reservation status updated",
		"success":     true,
		"reservation": reservation,
	})
}

// DeleteReservation handles DELETE /api/reservations/{id}
func (h *ReservationHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	deletedID, err := h.service.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message":   "Reservation deleted",
		"deletedId": deletedID,
	})
}
