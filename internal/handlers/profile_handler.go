package handlers

import (
	"silktouch/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileService *services.ProfileService
	guards         Guards
	log            *zap.Logger
}

func NewProfileHandler(profileService *services.ProfileService, guards Guards, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, guards: guards, log: log}
}

func (h *ProfileHandler) RegisterRoutes(router fiber.Router) {
	profileRoutes := router.Group("/profile", h.guards.Auth)
	profileRoutes.Get("/", h.HandleGetProfile)
	profileRoutes.Put("/", h.HandleUpdateProfile)
}

func (h *ProfileHandler) HandleGetProfile(c *fiber.Ctx) error {
	user, err := h.profileService.Get(c.UserContext(), userID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(user)
}

// HandleUpdateProfile changes name, phone and address. Other fields in the body are ignored.
func (h *ProfileHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req services.ProfileInput
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	user, err := h.profileService.Update(c.UserContext(), userID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(user)
}
