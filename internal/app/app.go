// Package app assembles the HTTP API from its dependencies.
package app

import (
	"context"
	"errors"
	"time"

	"silktouch/internal/config"
	"silktouch/internal/database"
	"silktouch/internal/events"
	"silktouch/internal/generative"
	"silktouch/internal/handlers"
	"silktouch/internal/locker"
	"silktouch/internal/logger"
	"silktouch/internal/middleware"
	"silktouch/internal/repositories"
	"silktouch/internal/services"
	"silktouch/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the infrastructure handles the API runs on.
type Deps struct {
	DB        *gorm.DB
	Storage   storage.Storage
	Locks     locker.Locker
	Publisher events.Publisher
	Assistant *generative.Tracked
}

// New wires repositories, services and handlers into a Fiber app.
func New(cfg *config.Config, deps Deps, log *zap.Logger) *fiber.App {
	if deps.Locks == nil {
		deps.Locks = locker.NewMemory()
	}
	if deps.Assistant == nil {
		deps.Assistant = generative.NewTracked(config.GenerativeConfig{Provider: "none"})
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(deps.DB)
	productRepo := repositories.NewGORMProductRepository(deps.DB)
	cartRepo := repositories.NewGORMCartRepository(deps.DB)
	orderRepo := repositories.NewGORMOrderRepository(deps.DB)
	interactionRepo := repositories.NewGORMInteractionRepository(deps.DB)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiry)
	productService := services.NewProductService(productRepo, deps.Storage, cfg.Pagination, log)
	cartService := services.NewCartService(cartRepo, productRepo, deps.Locks)
	orderService := services.NewOrderService(orderRepo, productRepo, deps.Locks, deps.Publisher, cfg.Store.DeliveryDays, log)
	chatbotService := services.NewChatbotService(interactionRepo, productRepo, deps.Assistant, cfg.Store, cfg.Generative.Timeout, cfg.App.Env, log)
	adminService := services.NewAdminService(userRepo, productRepo, orderRepo)
	profileService := services.NewProfileService(userRepo)

	guards := handlers.Guards{
		Auth:     middleware.AuthRequired(authService, log),
		Optional: middleware.OptionalAuth(authService),
		Admin:    middleware.AdminRequired(),
	}

	bodyLimit := cfg.App.BodyLimitMB * 1024 * 1024
	if bodyLimit <= 0 {
		bodyLimit = fiber.DefaultBodyLimit
	}
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    bodyLimit,
		ErrorHandler: errorHandler(log),
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(logger.FiberMiddleware(log))
	app.Use(middleware.RequestTimeout(cfg.App.RequestTimeout))

	if local, ok := deps.Storage.(*storage.Local); ok {
		app.Static(cfg.Storage.PublicPath, local.Dir())
	}

	app.Get("/health", healthHandler(deps.DB, cfg.App.Env))

	// --- API Routes ---
	api := app.Group("/api")
	handlers.NewAuthHandler(authService, log).RegisterRoutes(api)
	handlers.NewProductHandler(productService, guards, log).RegisterRoutes(api)
	handlers.NewCartHandler(cartService, guards, log).RegisterRoutes(api)
	handlers.NewOrderHandler(orderService, guards, log).RegisterRoutes(api)
	handlers.NewChatbotHandler(chatbotService, guards, log).RegisterRoutes(api)
	handlers.NewAdminHandler(adminService, orderService, productService, guards, log).RegisterRoutes(api)
	handlers.NewProfileHandler(profileService, guards, log).RegisterRoutes(api)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Route not found"})
	})

	return app
}

// errorHandler answers errors that escaped the handlers. Only Fiber's own
// errors keep their message.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
		}
		log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Something went wrong!"})
	}
}

func healthHandler(db *gorm.DB, env string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		status, dbStatus, code := "healthy", "connected", fiber.StatusOK
		if err := database.Ping(ctx, db); err != nil {
			status, dbStatus, code = "degraded", "unreachable", fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status":      status,
			"database":    dbStatus,
			"environment": env,
			"time":        time.Now().Format(time.RFC3339),
		})
	}
}
