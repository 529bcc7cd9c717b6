package handlers

import (
	"encoding/json"
	"strings"

	"silktouch/internal/apperror"
	"silktouch/internal/middleware"
	"silktouch/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RecommendRequest accepts the budget as a JSON number or a numeric string.
type RecommendRequest struct {
	Preferences string      `json:"preferences"`
	Category    string      `json:"category"`
	Budget      json.Number `json:"budget"`
}

type TestRequest struct {
	Query string `json:"query"`
}

type ChatbotHandler struct {
	chatbotService *services.ChatbotService
	guards         Guards
	log            *zap.Logger
}

func NewChatbotHandler(chatbotService *services.ChatbotService, guards Guards, log *zap.Logger) *ChatbotHandler {
	return &ChatbotHandler{chatbotService: chatbotService, guards: guards, log: log}
}

func (h *ChatbotHandler) RegisterRoutes(router fiber.Router) {
	chatRoutes := router.Group("/chatbot")
	chatRoutes.Post("/query", h.guards.Optional, h.HandleQuery)
	chatRoutes.Post("/recommendations", h.HandleRecommendations)
	chatRoutes.Post("/test", h.HandleTest)
	chatRoutes.Get("/analytics", h.guards.Auth, h.guards.Admin, h.HandleAnalytics)
	chatRoutes.Get("/debug", h.guards.Auth, h.guards.Admin, h.HandleDebug)
}

// HandleQuery answers a shopper message. Anonymous callers are allowed.
func (h *ChatbotHandler) HandleQuery(c *fiber.Ctx) error {
	var req services.ChatQuery
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	var caller *string
	if claims := middleware.ClaimsFrom(c); claims != nil {
		caller = &claims.UserID
	}

	reply, err := h.chatbotService.Query(c.UserContext(), caller, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(reply)
}

func (h *ChatbotHandler) HandleRecommendations(c *fiber.Ctx) error {
	var req RecommendRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	in := services.RecommendInput{
		Preferences: strings.TrimSpace(req.Preferences),
		Category:    strings.ToLower(strings.TrimSpace(req.Category)),
	}
	if req.Budget != "" {
		budget, err := req.Budget.Float64()
		if err != nil {
			return respondError(c, h.log, apperror.Validation("Validation failed", map[string]string{"budget": "must be a number"}))
		}
		in.Budget = &budget
	}

	rec, err := h.chatbotService.Recommend(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(rec)
}

// HandleTest runs a query through the pipeline without recording it.
func (h *ChatbotHandler) HandleTest(c *fiber.Ctx) error {
	var req TestRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
	}
	reply, err := h.chatbotService.Test(c.UserContext(), req.Query)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(reply)
}

func (h *ChatbotHandler) HandleAnalytics(c *fiber.Ctx) error {
	analytics, err := h.chatbotService.Analytics(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(analytics)
}

func (h *ChatbotHandler) HandleDebug(c *fiber.Ctx) error {
	return c.JSON(h.chatbotService.Debug())
}
