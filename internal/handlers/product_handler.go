package handlers

import (
	"io"
	"strconv"
	"strings"

	"silktouch/internal/apperror"
	"silktouch/internal/repositories"
	"silktouch/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProductHandler serves the catalog, reviews, search suggestions and filter values.
type ProductHandler struct {
	productService *services.ProductService
	guards         Guards
	log            *zap.Logger
}

func NewProductHandler(productService *services.ProductService, guards Guards, log *zap.Logger) *ProductHandler {
	return &ProductHandler{productService: productService, guards: guards, log: log}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/featured", h.HandleFeaturedProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/:id/reviews", h.guards.Auth, h.HandleAddReview)
	productRoutes.Post("/", h.guards.Auth, h.guards.Admin, h.HandleCreateProduct)
	productRoutes.Put("/:id", h.guards.Auth, h.guards.Admin, h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.guards.Auth, h.guards.Admin, h.HandleDeleteProduct)

	router.Get("/search/suggestions", h.HandleSuggestions)
	router.Get("/filters", h.HandleFilters)
}

// HandleListProducts returns one page of the catalog.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	filter := repositories.ProductFilter{
		Category:    c.Query("category"),
		Subcategory: c.Query("subcategory"),
		Brand:       c.Query("brand"),
		Size:        c.Query("size"),
		Color:       c.Query("color"),
		Search:      strings.TrimSpace(c.Query("search")),
		Sort:        c.Query("sort"),
		Page:        c.QueryInt("page", 1),
		Limit:       c.QueryInt("limit", 0),
	}

	var err error
	if filter.MinPrice, err = queryFloat(c, "minPrice"); err != nil {
		return respondError(c, h.log, err)
	}
	if filter.MaxPrice, err = queryFloat(c, "maxPrice"); err != nil {
		return respondError(c, h.log, err)
	}

	page, err := h.productService.List(c.UserContext(), filter)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(page)
}

func queryFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperror.Validation("Validation failed", map[string]string{key: "must be a number"})
	}
	return &v, nil
}

func (h *ProductHandler) HandleFeaturedProducts(c *fiber.Ctx) error {
	products, err := h.productService.Featured(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(products)
}

// HandleGetProduct handles fetching a product by ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.productService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(product)
}

// HandleCreateProduct accepts either JSON or a multipart form with up to five
// files under "images".
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req services.ProductInput
	if err := c.BodyParser(&req); err != nil {
		h.log.Debug("error parsing product request body", zap.Error(err))
		return badBody(c)
	}

	uploads, err := h.readUploads(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	product, err := h.productService.Create(c.UserContext(), req, uploads)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *ProductHandler) readUploads(c *fiber.Ctx) ([]services.Upload, error) {
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return nil, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, apperror.Validation("Invalid multipart form", nil)
	}

	files := form.File["images"]
	uploads := make([]services.Upload, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, apperror.Internal("Failed to read upload", err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, apperror.Internal("Failed to read upload", err)
		}
		uploads = append(uploads, services.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(fiber.HeaderContentType),
			Data:        data,
		})
	}
	return uploads, nil
}

// HandleUpdateProduct applies the JSON body as a partial update.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	product, err := h.productService.Update(c.UserContext(), c.Params("id"), c.Body())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.productService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

func (h *ProductHandler) HandleAddReview(c *fiber.Ctx) error {
	var req services.ReviewInput
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	product, err := h.productService.AddReview(c.UserContext(), c.Params("id"), userID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *ProductHandler) HandleSuggestions(c *fiber.Ctx) error {
	names, err := h.productService.Suggestions(c.UserContext(), c.Query("q"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(names)
}

func (h *ProductHandler) HandleFilters(c *fiber.Ctx) error {
	values, err := h.productService.FilterValues(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(values)
}
