package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/skyexp/booking-backend/internal/application/services"
	"github.com/skyexp/booking-backend/internal/domain/entities"
	apperrors "github.com/skyexp/booking-backend/pkg/errors"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*entities.User, error) {
	args := m.Called(ctx, usernameOrEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func adminUser(t *testing.T, password string) *entities.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &entities.User{
		ID:       "41bd8a2e-6a5b-4c1f-9e70-3a2c8f1d5e96",
		Username: "admin",
		Email:    "admin@skyexperience.com",
		Password: string(hash),
		Role:     "admin",
	}
}

func TestAuthService_Login(t *testing.T) {
	t.Run("issues a verifiable token for valid credentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		user := adminUser(t, "Admin123!")
		repo.On("GetByUsernameOrEmail", mock.Anything, "admin").Return(user, nil)

		service := services.NewAuthService(repo, "test-secret", 72*time.Hour)
		loggedIn, token, err := service.Login(context.Background(), &services.LoginInput{
			Username: "admin",
			Password: "Admin123!",
		})

		assert.NoError(t, err)
		assert.Equal(t, user.ID, loggedIn.ID)
		assert.NotEmpty(t, token)

		userID, err := service.ParseToken(token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, userID)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetByUsernameOrEmail", mock.Anything, "admin").Return(adminUser(t, "Admin123!"), nil)

		service := services.NewAuthService(repo, "test-secret", 72*time.Hour)
		_, _, err := service.Login(context.Background(), &services.LoginInput{
			Username: "admin",
			Password: "nope",
		})

		var appErr *apperrors.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
	})

	t.Run("reports unknown accounts the same as wrong passwords", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetByUsernameOrEmail", mock.Anything, "ghost").
			Return(nil, apperrors.NewNotFoundError("user not found"))

		service := services.NewAuthService(repo, "test-secret", 72*time.Hour)
		_, _, err := service.Login(context.Background(), &services.LoginInput{
			Username: "ghost",
			Password: "whatever",
		})

		var appErr *apperrors.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
		assert.Equal(t, "Wrong credentials!", appErr.Message)
	})
}

func TestAuthService_ParseToken(t *testing.T) {
	service := services.NewAuthService(new(MockUserRepository), "test-secret", 72*time.Hour)

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := service.ParseToken("not.a.token")
		assert.Error(t, err)
	})

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetByUsernameOrEmail", mock.Anything, "admin").Return(adminUser(t, "pw"), nil)

		other := services.NewAuthService(repo, "other-secret", 72*time.Hour)
		_, token, err := other.Login(context.Background(), &services.LoginInput{Username: "admin", Password: "pw"})
		assert.NoError(t, err)

		_, err = service.ParseToken(token)
		assert.Error(t, err)
	})
}
