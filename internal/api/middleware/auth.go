package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/skyexp/booking-backend/internal/application/services"
)

type contextKey string

// UserIDKey carries the authenticated admin's user ID through the request context.
const UserIDKey contextKey = "userID"

// UserIDFromContext returns the authenticated user ID, empty when the request
// did not pass through AuthMiddleware.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// AuthMiddleware guards admin routes. The session token is read from the jwt
// cookie first, then from a Bearer authorization header. A missing token is
// 401, a present but invalid one is 403.
func AuthMiddleware(auth *services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				writeAuthError(w, http.StatusUnauthorized, "You are not authenticated!")
				return
			}

			userID, err := auth.ParseToken(token)
			if err != nil {
				writeAuthError(w, http.StatusForbidden, "Token is not valid!")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie("jwt"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
