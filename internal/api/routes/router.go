package routes

import (
	"net/http"

	"github.com/skyexp/booking-backend/internal/api/handlers"
	"github.com/skyexp/booking-backend/internal/api/middleware"
	"github.com/skyexp/booking-backend/internal/application/services"
	"github.com/skyexp/booking-backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	flightHandler      *handlers.FlightHandler
	reservationHandler *handlers.ReservationHandler
	dashboardHandler   *handlers.DashboardHandler
	contactHandler     *handlers.ContactHandler
	authHandler        *handlers.AuthHandler

	authService *services.AuthService
	metrics     *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	flightHandler *handlers.FlightHandler,
	reservationHandler *handlers.ReservationHandler,
	dashboardHandler *handlers.DashboardHandler,
	contactHandler *handlers.ContactHandler,
	authHandler *handlers.AuthHandler,
	authService *services.AuthService,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		flightHandler:      flightHandler,
		reservationHandler: reservationHandler,
		dashboardHandler:   dashboardHandler,
		contactHandler:     contactHandler,
		authHandler:        authHandler,

		authService: authService,
		metrics:     metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	requireAuth := middleware.AuthMiddleware(r.authService)

	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Public catalog endpoints
	r.mux.HandleFunc("GET /api/flights", r.flightHandler.ListFlights)
	r.mux.HandleFunc("GET /api/flights/{id}", r.flightHandler.GetFlight)

	// Public booking and contact endpoints
	r.mux.HandleFunc("POST /api/reservations", r.reservationHandler.CreateReservation)
	r.mux.HandleFunc("POST /api/contact", r.contactHandler.SubmitContact)

	// Auth endpoints
	r.mux.HandleFunc("POST /api/auth/login", r.authHandler.Login)
	r.mux.HandleFunc("POST /api/auth/logout", r.authHandler.Logout)
	r.mux.Handle("GET /api/auth/me", requireAuth(http.HandlerFunc(r.authHandler.Me)))

	// Admin catalog management
	r.mux.Handle("POST /api/flights", requireAuth(http.HandlerFunc(r.flightHandler.CreateFlight)))
	r.mux.Handle("PUT /api/flights/{id}", requireAuth(http.HandlerFunc(r.flightHandler.UpdateFlight)))
	r.mux.Handle("DELETE /api/flights/{id}", requireAuth(http.HandlerFunc(r.flightHandler.DeleteFlight)))

	// Admin reservation management
	r.mux.Handle("GET /api/reservations", requireAuth(http.HandlerFunc(r.reservationHandler.ListReservations)))
	r.mux.Handle("GET /api/reservations/{id}", requireAuth(http.HandlerFunc(r.reservationHandler.GetReservation)))
	r.mux.Handle("PATCH /api/reservations/{id}/status", requireAuth(http.HandlerFunc(r.reservationHandler.UpdateReservationStatus)))
	r.mux.Handle("DELETE /api/reservations/{id}", requireAuth(http.HandlerFunc(r.reservationHandler.DeleteReservation)))

	// Admin dashboard
	r.mux.Handle("GET /api/dashboard/overview", requireAuth(http.HandlerFunc(r.dashboardHandler.GetOverview)))

	// Admin contact inbox
	r.mux.Handle("GET /api/contact", requireAuth(http.HandlerFunc(r.contactHandler.ListContacts)))

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// CORS wraps everything so preflights never hit the auth guard
	handler = middleware.CORSMiddleware(handler)

	return handler
}
