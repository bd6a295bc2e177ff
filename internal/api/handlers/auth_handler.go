package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/skyexp/booking-backend/internal/api/middleware"
	"github.com/skyexp/booking-backend/internal/application/services"
)

// AuthHandler handles admin login sessions.
type AuthHandler struct {
	service      *services.AuthService
	secureCookie bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *services.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		service:      service,
		secureCookie: secureCookie,
	}
}

// Login handles POST /api/auth/login. On success the session token is set as
// an httpOnly jwt cookie and the account is returned.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input services.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, token, err := h.service.Login(r.Context(), &input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.service.TokenTTL()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	respondWithJSON(w, http.StatusOK, user)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Me(r.Context(), middleware.UserIDFromContext(r.Context()))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}
