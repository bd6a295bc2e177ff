package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/skyexp/booking-backend/internal/adapters/database"
	"github.com/skyexp/booking-backend/internal/domain/entities"
	"github.com/skyexp/booking-backend/internal/infrastructure/clients/postgres"
	"github.com/skyexp/booking-backend/pkg/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				reservations,
				contact_requests,
				flights
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to truncate tables: %v", err)
		}
	}

	flightRepo := database.NewFlightAdapter(pgClient)

	now := time.Now().UTC()
	flights := []*entities.Flight{
		{
			Title:     "Blue Lagoon Helicopter Tour",
			Overview:  "A 45 minute scenic flight over the lagoon and the southern reefs.",
			Category:  "scenic",
			Price:     320,
			Rating:    4.8,
			MainImage: "https://images.skyexperience.com/flights/blue-lagoon.jpg",
		},
		{
			Title:     "Sunset Coastline Cruise",
			Overview:  "Glide along the coast at golden hour with a glass of champagne.",
			Category:  "romantic",
			Price:     180,
			Rating:    4.6,
			MainImage: "https://images.skyexperience.com/flights/sunset-coast.jpg",
		},
		{
			Title:     "Volcano Rim Expedition",
			Overview:  "Fly over the crater rim and land on a private plateau for lunch.",
			Category:  "adventure",
			Price:     540,
			Rating:    4.9,
			MainImage: "https://images.skyexperience.com/flights/volcano-rim.jpg",
		},
		{
			Title:     "City Lights Night Flight",
			Overview:  "A short night hop over the illuminated skyline.",
			Category:  "scenic",
			Price:     150,
			Rating:    4.3,
			MainImage: "https://images.skyexperience.com/flights/city-lights.jpg",
		},
	}

	for _, flight := range flights {
		flight.ID = uuid.New().String()
		flight.CreatedAt = now
		flight.UpdatedAt = now
		if err := flightRepo.Create(ctx, flight); err != nil {
			log.Fatalf("Failed to seed flight %q: %v", flight.Title, err)
		}
		log.Printf("Seeded flight %q", flight.Title)
	}

	log.Printf("Seeding complete: %d flights", len(flights))
}
