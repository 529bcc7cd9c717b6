package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"silktouch/internal/middleware"
	"silktouch/internal/models"
	"silktouch/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubValidator map[string]*services.Claims

func (s stubValidator) ValidateToken(token string) (*services.Claims, error) {
	if claims, ok := s[token]; ok {
		return claims, nil
	}
	return nil, errors.New("bad token")
}

var tokens = stubValidator{
	"user-token":  {UserID: "u1", Role: models.RoleUser},
	"admin-token": {UserID: "a1", Role: models.RoleAdmin},
}

func do(t *testing.T, app *fiber.App, path, auth string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestAuthMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/me", middleware.AuthRequired(tokens, zap.NewNop()), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(middleware.LocalUserID).(string))
	})
	app.Get("/admin", middleware.AuthRequired(tokens, zap.NewNop()), middleware.AdminRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/maybe", middleware.OptionalAuth(tokens), func(c *fiber.Ctx) error {
		if middleware.ClaimsFrom(c) == nil {
			return c.SendStatus(fiber.StatusAccepted)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	assert.Equal(t, fiber.StatusUnauthorized, do(t, app, "/me", ""))
	assert.Equal(t, fiber.StatusUnauthorized, do(t, app, "/me", "Token user-token"))
	assert.Equal(t, fiber.StatusUnauthorized, do(t, app, "/me", "Bearer forged"))
	assert.Equal(t, fiber.StatusOK, do(t, app, "/me", "Bearer user-token"))

	assert.Equal(t, fiber.StatusForbidden, do(t, app, "/admin", "Bearer user-token"))
	assert.Equal(t, fiber.StatusNoContent, do(t, app, "/admin", "Bearer admin-token"))

	assert.Equal(t, fiber.StatusAccepted, do(t, app, "/maybe", ""))
	assert.Equal(t, fiber.StatusAccepted, do(t, app, "/maybe", "Bearer forged"))
	assert.Equal(t, fiber.StatusOK, do(t, app, "/maybe", "Bearer user-token"))
}

func TestRequestTimeout(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.RequestTimeout(time.Minute))
	app.Get("/", func(c *fiber.Ctx) error {
		deadline, ok := c.UserContext().Deadline()
		if !ok || time.Until(deadline) > time.Minute {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendStatus(fiber.StatusOK)
	})
	assert.Equal(t, fiber.StatusOK, do(t, app, "/", ""))
}
