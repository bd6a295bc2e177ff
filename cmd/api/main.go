package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/skyexp/booking-backend/internal/adapters/cache"
	"github.com/skyexp/booking-backend/internal/adapters/database"
	"github.com/skyexp/booking-backend/internal/api/handlers"
	"github.com/skyexp/booking-backend/internal/api/routes"
	"github.com/skyexp/booking-backend/internal/application/services"
	"github.com/skyexp/booking-backend/internal/domain/providers"
	"github.com/skyexp/booking-backend/internal/domain/repositories"
	"github.com/skyexp/booking-backend/internal/infrastructure/clients/postgres"
	"github.com/skyexp/booking-backend/internal/infrastructure/clients/redis"
	"github.com/skyexp/booking-backend/internal/infrastructure/observability"
	"github.com/skyexp/booking-backend/pkg/config"
)

func main() {
	// Load .env when present; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Environment)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer pgClient.Close()
	log.Println("PostgreSQL client initialized successfully")

	// Initialize Redis client
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: Failed to initialize Redis client: %v", err)
		// Continue without Redis - the application can work without caching
	} else {
		defer redisClient.Close()
		log.Println("Redis client initialized successfully")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Initialize adapters

	baseFlightAdapter := database.NewFlightAdapter(pgClient)

	// Wrap the catalog with caching if Redis is available
	var flightAdapter repositories.FlightRepository
	if cacheProvider != nil {
		flightAdapter = database.NewCachedFlightAdapter(baseFlightAdapter, cacheProvider, metrics)
		log.Println("Flight adapter wrapped with caching layer")
	} else {
		flightAdapter = baseFlightAdapter
		log.Println("Flight adapter running without cache (Redis unavailable)")
	}

	reservationAdapter := database.NewReservationAdapter(pgClient)
	dashboardAdapter := database.NewDashboardAdapter(pgClient)
	userAdapter := database.NewUserAdapter(pgClient)
	contactAdapter := database.NewContactAdapter(pgClient)

	// Initialize services

	flightService := services.NewFlightService(flightAdapter)
	reservationService := services.NewReservationService(reservationAdapter, flightAdapter)
	dashboardService := services.NewDashboardService(dashboardAdapter, flightAdapter, metrics)
	contactService := services.NewContactService(contactAdapter)
	authService := services.NewAuthService(
		userAdapter,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLDays)*24*time.Hour,
	)

	// Initialize handlers

	flightHandler := handlers.NewFlightHandler(flightService)
	reservationHandler := handlers.NewReservationHandler(reservationService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	contactHandler := handlers.NewContactHandler(contactService, cacheProvider)
	authHandler := handlers.NewAuthHandler(authService, cfg.Auth.CookieSecure)

	// Set up router
	router := routes.NewRouter(
		flightHandler,
		reservationHandler,
		dashboardHandler,
		contactHandler,
		authHandler,
		authService,
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server stopped")
}
