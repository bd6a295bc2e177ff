package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/skyexp/booking-backend/internal/domain/entities"
	"github.com/skyexp/booking-backend/internal/domain/repositories"
	apperrors "github.com/skyexp/booking-backend/pkg/errors"
)

// LoginInput is the admin login payload. Username also accepts the account
// email.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthService authenticates admin accounts and issues session tokens.
type AuthService struct {
	repo      repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(repo repositories.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Login verifies the credentials and returns the account with a signed token.
// Unknown accounts and wrong passwords report the same error.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*entities.User, string, error) {
	user, err := s.repo.GetByUsernameOrEmail(ctx, input.Username)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, "", apperrors.NewUnauthorizedError("Wrong credentials!")
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, "", apperrors.NewUnauthorizedError("Wrong credentials!")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", apperrors.NewInternalError("failed to sign token", err)
	}
	return user, token, nil
}

// Me returns the account behind an authenticated session
func (s *AuthService) Me(ctx context.Context, userID string) (*entities.User, error) {
	return s.repo.GetByID(ctx, userID)
}

// TokenTTL returns the configured session lifetime
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}

// ParseToken validates a session token and returns the user ID it carries
func (s *AuthService) ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", apperrors.NewUnauthorizedError("Token is not valid!")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperrors.NewUnauthorizedError("Token is not valid!")
	}
	userID, _ := claims["userId"].(string)
	if userID == "" {
		return "", apperrors.NewUnauthorizedError("Token is not valid!")
	}
	return userID, nil
}

func (s *AuthService) issueToken(user *entities.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":   user.ID,
		"username": user.Username,
		"role":     user.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}
