package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/skyexp/booking-backend/internal/api/middleware"
	"github.com/skyexp/booking-backend/internal/application/services"
	"github.com/skyexp/booking-backend/internal/domain/entities"
)

type stubUserRepository struct {
	mock.Mock
}

func (m *stubUserRepository) Create(ctx context.Context, user *entities.User) error {
	return nil
}

func (m *stubUserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	return nil, nil
}

func (m *stubUserRepository) GetByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*entities.User, error) {
	args := m.Called(ctx, usernameOrEmail)
	return args.Get(0).(*entities.User), args.Error(1)
}

func issueTestToken(t *testing.T, auth *services.AuthService, repo *stubUserRepository) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	assert.NoError(t, err)
	repo.On("GetByUsernameOrEmail", mock.Anything, "admin").Return(&entities.User{
		ID:       "user-1",
		Username: "admin",
		Password: string(hash),
	}, nil)

	_, token, err := auth.Login(context.Background(), &services.LoginInput{Username: "admin", Password: "pw"})
	assert.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	repo := new(stubUserRepository)
	auth := services.NewAuthService(repo, "test-secret", time.Hour)
	token := issueTestToken(t, auth, repo)

	var seenUserID string
	protected := middleware.AuthMiddleware(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = middleware.UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("rejects a request without a token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/reservations", nil)
		w := httptest.NewRecorder()

		protected.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "You are not authenticated!")
	})

	t.Run("rejects an invalid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/reservations", nil)
		req.AddCookie(&http.Cookie{Name: "jwt", Value: "garbage"})
		w := httptest.NewRecorder()

		protected.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Token is not valid!")
	})

	t.Run("accepts the jwt cookie", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/reservations", nil)
		req.AddCookie(&http.Cookie{Name: "jwt", Value: token})
		w := httptest.NewRecorder()

		protected.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", seenUserID)
	})

	t.Run("accepts a bearer header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/reservations", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		protected.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
