package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"silktouch/internal/apperror"
	"silktouch/internal/models"
	"silktouch/internal/repositories"
	"silktouch/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test_jwt_secret"

var notFound = fmt.Errorf("user: %w", repositories.ErrNotFound)

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, 24*time.Hour)
	ctx := context.Background()

	mockRepo.On("GetByEmail", ctx, "test@example.com").Return(nil, notFound).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		args.Get(1).(*models.User).ID = "user-1"
	}).Return(nil).Once()

	res, err := authService.Register(ctx, services.RegisterInput{
		Name:     "Test",
		Email:    "  Test@Example.com ",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "user-1", res.User.ID)
	assert.Equal(t, "test@example.com", res.User.Email)
	assert.Equal(t, models.RoleUser, res.User.Role)

	created := mockRepo.Calls[1].Arguments.Get(1).(*models.User)
	assert.NotEqual(t, "password123", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, 24*time.Hour)
	ctx := context.Background()

	mockRepo.On("GetByEmail", ctx, "test@example.com").Return(&models.User{ID: "1"}, nil).Once()
	_, err := authService.Register(ctx, services.RegisterInput{Name: "Test", Email: "test@example.com", Password: "password123"})
	assert.True(t, apperror.Is(err, apperror.KindConflict))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	// A concurrent registration can still win at the unique index.
	mockRepo.On("GetByEmail", ctx, "race@example.com").Return(nil, notFound).Once()
	mockRepo.On("Create", ctx, mock.Anything).Return(fmt.Errorf("insert: %w", repositories.ErrDuplicate)).Once()
	_, err = authService.Register(ctx, services.RegisterInput{Name: "Race", Email: "race@example.com", Password: "password123"})
	assert.True(t, apperror.Is(err, apperror.KindConflict))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	authService := services.NewAuthService(new(MockUserRepository), testJWTSecret, 24*time.Hour)

	_, err := authService.Register(context.Background(), services.RegisterInput{Email: "not-an-email", Password: "123"})
	require.Error(t, err)

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Fields, "name")
	assert.Contains(t, appErr.Fields, "email")
	assert.Contains(t, appErr.Fields, "password")
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, 24*time.Hour)
	ctx := context.Background()

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Name:     "Test",
		Email:    "test@example.com",
		Password: string(hashedPassword),
		Role:     models.RoleAdmin,
	}

	mockRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()
	res, err := authService.Login(ctx, services.LoginInput{Email: "test@example.com", Password: "password123"})
	require.NoError(t, err)

	claims, err := authService.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.True(t, claims.IsAdmin())
	assert.InDelta(t, time.Now().Add(24*time.Hour).Unix(), claims.ExpiresAt, 5)

	// Wrong password
	mockRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()
	_, err = authService.Login(ctx, services.LoginInput{Email: user.Email, Password: "wrongpassword"})
	assert.True(t, apperror.Is(err, apperror.KindUnauthorized))
	assert.EqualError(t, err, "Invalid credentials")

	// Unknown user fails the same way
	mockRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, notFound).Once()
	_, err = authService.Login(ctx, services.LoginInput{Email: "nobody@example.com", Password: "password123"})
	assert.True(t, apperror.Is(err, apperror.KindUnauthorized))
	assert.EqualError(t, err, "Invalid credentials")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	authService := services.NewAuthService(new(MockUserRepository), testJWTSecret, 24*time.Hour)

	sign := func(secret string, exp time.Time) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, &services.Claims{
			UserID:         "user-123",
			Email:          "test@example.com",
			Role:           models.RoleUser,
			StandardClaims: jwt.StandardClaims{ExpiresAt: exp.Unix()},
		})
		s, _ := token.SignedString([]byte(secret))
		return s
	}

	claims, err := authService.ValidateToken(sign(testJWTSecret, time.Now().Add(time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.False(t, claims.IsAdmin())

	_, err = authService.ValidateToken("invalid.token.string")
	assert.True(t, apperror.Is(err, apperror.KindUnauthorized))

	_, err = authService.ValidateToken(sign("other_secret", time.Now().Add(time.Hour)))
	assert.True(t, apperror.Is(err, apperror.KindUnauthorized))

	_, err = authService.ValidateToken(sign(testJWTSecret, time.Now().Add(-time.Hour)))
	assert.True(t, apperror.Is(err, apperror.KindUnauthorized))
}
