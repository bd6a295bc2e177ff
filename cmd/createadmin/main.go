package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/skyexp/booking-backend/internal/adapters/database"
	"github.com/skyexp/booking-backend/internal/domain/entities"
	"github.com/skyexp/booking-backend/internal/infrastructure/clients/postgres"
	"github.com/skyexp/booking-backend/pkg/config"
	apperrors "github.com/skyexp/booking-backend/pkg/errors"
)

func main() {
	var username, email, password string
	flag.StringVar(&username, "username", "admin", "admin account username")
	flag.StringVar(&email, "email", "admin@skyexperience.com", "admin account email")
	flag.StringVar(&password, "password", "Admin123!", "admin account password")
	flag.Parse()

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

	userRepo := database.NewUserAdapter(pgClient)
	ctx := context.Background()

	if existing, err := userRepo.GetByUsernameOrEmail(ctx, username); err == nil {
		log.Fatalf("Account %q already exists (created %s), refusing to overwrite", existing.Username, existing.CreatedAt.Format(time.DateOnly))
	} else if !apperrors.IsNotFound(err) {
		log.Fatalf("Failed to check existing account: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := &entities.User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     email,
		Password:  string(hash),
		Role:      "admin",
		CreatedAt: time.Now().UTC(),
	}

	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatalf("Failed to create admin account: %v", err)
	}

	log.Printf("Admin account %q created", username)
}
