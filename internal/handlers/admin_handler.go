package handlers

import (
	"bytes"

	"silktouch/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AdminHandler serves the back-office routes. Every route requires the admin role.
type AdminHandler struct {
	adminService   *services.AdminService
	orderService   *services.OrderService
	productService *services.ProductService
	guards         Guards
	log            *zap.Logger
}

func NewAdminHandler(adminService *services.AdminService, orderService *services.OrderService, productService *services.ProductService, guards Guards, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		orderService:   orderService,
		productService: productService,
		guards:         guards,
		log:            log,
	}
}

func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	adminRoutes := router.Group("/admin", h.guards.Auth, h.guards.Admin)
	adminRoutes.Get("/orders", h.HandleListOrders)
	adminRoutes.Put("/orders/:id/status", h.HandleUpdateOrderStatus)
	adminRoutes.Get("/analytics", h.HandleAnalytics)
	adminRoutes.Get("/users", h.HandleListUsers)
	adminRoutes.Get("/products/export", h.HandleExportProducts)
}

func (h *AdminHandler) HandleListOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.ListAll(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(orders)
}

func (h *AdminHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var req services.StatusInput
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	order, err := h.orderService.SetStatus(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(order)
}

func (h *AdminHandler) HandleAnalytics(c *fiber.Ctx) error {
	analytics, err := h.adminService.Analytics(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(analytics)
}

func (h *AdminHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.adminService.Customers(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(users)
}

// HandleExportProducts sends the catalog as an Excel workbook.
func (h *AdminHandler) HandleExportProducts(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.productService.Export(c.UserContext(), &buf); err != nil {
		return respondError(c, h.log, err)
	}
	c.Attachment("products.xlsx")
	c.Set(fiber.HeaderContentType, xlsxContentType)
	return c.Send(buf.Bytes())
}
