package handlers

import (
	"silktouch/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CartHandler struct {
	cartService *services.CartService
	guards      Guards
	log         *zap.Logger
}

func NewCartHandler(cartService *services.CartService, guards Guards, log *zap.Logger) *CartHandler {
	return &CartHandler{cartService: cartService, guards: guards, log: log}
}

// RegisterRoutes registers the cart routes. Every cart route requires a token.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart", h.guards.Auth)
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/add", h.HandleAddItem)
	cartRoutes.Put("/update", h.HandleUpdateItem)
	cartRoutes.Delete("/remove/:productId", h.HandleRemoveItem)
}

func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart, err := h.cartService.Get(c.UserContext(), userID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(cart)
}

func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req services.CartItemInput
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	cart, err := h.cartService.AddItem(c.UserContext(), userID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(cart)
}

func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	var req services.CartItemInput
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	cart, err := h.cartService.UpdateItem(c.UserContext(), userID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(cart)
}

// HandleRemoveItem removes the line identified by the path product id and the
// optional size and color query parameters.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	cart, err := h.cartService.RemoveItem(c.UserContext(), userID(c), c.Params("productId"), c.Query("size"), c.Query("color"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(cart)
}
