package handlers

import (
	"errors"

	"silktouch/internal/apperror"
	"silktouch/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Guards are the route middlewares handlers attach to their groups.
type Guards struct {
	Auth     fiber.Handler
	Optional fiber.Handler
	Admin    fiber.Handler
}

var statusByKind = map[apperror.Kind]int{
	apperror.KindValidation:   fiber.StatusBadRequest,
	apperror.KindConflict:     fiber.StatusBadRequest,
	apperror.KindUnauthorized: fiber.StatusUnauthorized,
	apperror.KindForbidden:    fiber.StatusForbidden,
	apperror.KindNotFound:     fiber.StatusNotFound,
	apperror.KindInternal:     fiber.StatusInternalServerError,
}

// respondError maps a service error onto an HTTP response. Internal causes are
// logged and never sent to the client.
func respondError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		appErr = apperror.Internal("Server error", err)
	}

	status, ok := statusByKind[appErr.Kind]
	if !ok {
		status = fiber.StatusInternalServerError
	}
	if status == fiber.StatusInternalServerError {
		log.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	body := fiber.Map{"message": appErr.Message}
	if len(appErr.Fields) > 0 {
		body["errors"] = appErr.Fields
	}
	return c.Status(status).JSON(body)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
	})
}

// userID returns the authenticated caller's id. Routes using it sit behind AuthRequired.
func userID(c *fiber.Ctx) string {
	id, _ := c.Locals(middleware.LocalUserID).(string)
	return id
}
