package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strings"

	"silktouch/internal/apperror"
	"silktouch/internal/config"
	"silktouch/internal/export"
	"silktouch/internal/models"
	"silktouch/internal/repositories"
	"silktouch/internal/storage"

	"go.uber.org/zap"
)

const (
	featuredLimit   = 8
	suggestionLimit = 5
	maxImages       = 5
)

// ProductInput is the payload for creating a product.
type ProductInput struct {
	Name        string   `json:"name" form:"name" validate:"required,max=200"`
	Description string   `json:"description" form:"description" validate:"required"`
	Price       *float64 `json:"price" form:"price" validate:"required,gte=0"`
	Category    string   `json:"category" form:"category" validate:"required,oneof=men women kids"`
	Subcategory string   `json:"subcategory" form:"subcategory" validate:"required"`
	Brand       string   `json:"brand" form:"brand"`
	Sizes       []string `json:"sizes" form:"sizes" validate:"dive,oneof=XS S M L XL XXL 'One Size'"`
	Colors      []string `json:"colors" form:"colors"`
	Images      []string `json:"images" form:"images"`
	Stock       int      `json:"stock" form:"stock" validate:"gte=0"`
	Featured    bool     `json:"featured" form:"featured"`
	Tags        []string `json:"tags" form:"tags"`
}

// ProductPatch lists the product fields an update may change. Rating is
// derived from reviews and is never taken from the client.
type ProductPatch struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Category    *string   `json:"category"`
	Subcategory *string   `json:"subcategory"`
	Brand       *string   `json:"brand"`
	Sizes       *[]string `json:"sizes"`
	Colors      *[]string `json:"colors"`
	Images      *[]string `json:"images"`
	Stock       *int      `json:"stock"`
	Featured    *bool     `json:"featured"`
	Tags        *[]string `json:"tags"`
}

func (p ProductPatch) apply(product *models.Product) {
	setIf(&product.Name, p.Name)
	setIf(&product.Description, p.Description)
	setIf(&product.Price, p.Price)
	setIf(&product.Category, p.Category)
	setIf(&product.Subcategory, p.Subcategory)
	setIf(&product.Brand, p.Brand)
	setIf(&product.Sizes, p.Sizes)
	setIf(&product.Colors, p.Colors)
	setIf(&product.Images, p.Images)
	setIf(&product.Stock, p.Stock)
	setIf(&product.Featured, p.Featured)
	setIf(&product.Tags, p.Tags)
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Upload is an image file received with a product.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ReviewInput struct {
	Rating  float64 `json:"rating" validate:"required,min=1,max=5"`
	Comment string  `json:"comment" validate:"max=2000"`
}

// ProductPage is one page of a catalog listing.
type ProductPage struct {
	Products    []models.Product `json:"products"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
	Total       int64            `json:"total"`
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo       repositories.ProductRepository
	storage    storage.Storage
	pagination config.PaginationConfig
	log        *zap.Logger
}

// NewProductService creates a new ProductService. A nil storage disables image uploads.
func NewProductService(repo repositories.ProductRepository, store storage.Storage, pagination config.PaginationConfig, log *zap.Logger) *ProductService {
	return &ProductService{
		repo:       repo,
		storage:    store,
		pagination: pagination,
		log:        log,
	}
}

// List returns a filtered, sorted page of products. Page and limit are clamped
// to sane values before querying.
func (s *ProductService) List(ctx context.Context, filter repositories.ProductFilter) (*ProductPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = s.pagination.DefaultLimit
	}
	if s.pagination.MaxLimit > 0 && filter.Limit > s.pagination.MaxLimit {
		filter.Limit = s.pagination.MaxLimit
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return nil, apperror.Validation("Validation failed", map[string]string{"minPrice": "must not exceed maxPrice"})
	}

	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, storeError(err, "Product not found")
	}
	return &ProductPage{
		Products:    products,
		TotalPages:  int(math.Ceil(float64(total) / float64(filter.Limit))),
		CurrentPage: filter.Page,
		Total:       total,
	}, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Product not found")
	}
	return product, nil
}

func (s *ProductService) Featured(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.Featured(ctx, featuredLimit)
	if err != nil {
		return nil, storeError(err, "Product not found")
	}
	return products, nil
}

// Create validates the input, stores any uploaded images and persists the product.
// Uploaded images replace image URLs given in the input.
func (s *ProductService) Create(ctx context.Context, in ProductInput, uploads []Upload) (*models.Product, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if len(uploads) > maxImages {
		return nil, apperror.Validation("Validation failed", map[string]string{"images": "must be at most 5 items"})
	}

	product := &models.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       *in.Price,
		Category:    in.Category,
		Subcategory: in.Subcategory,
		Brand:       in.Brand,
		Sizes:       in.Sizes,
		Colors:      in.Colors,
		Images:      in.Images,
		Stock:       in.Stock,
		Featured:    in.Featured,
		Tags:        in.Tags,
	}

	if len(uploads) > 0 {
		if s.storage == nil {
			return nil, apperror.Internal("Image uploads are not configured", errors.New("no storage backend"))
		}
		images := make([]string, 0, len(uploads))
		for _, up := range uploads {
			url, err := s.storage.Save(ctx, up.Filename, up.ContentType, up.Data)
			if err != nil {
				return nil, apperror.Internal("Failed to store image", err)
			}
			images = append(images, url)
		}
		product.Images = images
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, storeError(err, "Product not found")
	}
	s.log.Info("product created", zap.String("product_id", product.ID), zap.String("name", product.Name))
	return product, nil
}

// Update applies a partial JSON document to an existing product.
// Fields absent from patch keep their current values.
func (s *ProductService) Update(ctx context.Context, id string, body []byte) (*models.Product, error) {
	var patch ProductPatch
	if err := json.Unmarshal(body, &patch); err != nil {
		return nil, apperror.Validation("Invalid request body", nil)
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Product not found")
	}
	patch.apply(product)
	if err := validateStruct(product); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, storeError(err, "Product not found")
	}
	return s.Get(ctx, id)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "Product not found")
	}
	s.log.Info("product deleted", zap.String("product_id", id))
	return nil
}

// AddReview appends a review and returns the product with its refreshed rating.
func (s *ProductService) AddReview(ctx context.Context, productID, userID string, in ReviewInput) (*models.Product, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	review := &models.Review{
		UserID:  userID,
		Rating:  in.Rating,
		Comment: strings.TrimSpace(in.Comment),
	}
	product, err := s.repo.AddReview(ctx, productID, review)
	if err != nil {
		return nil, storeError(err, "Product not found")
	}
	return product, nil
}

// Suggestions returns product names for type-ahead search.
func (s *ProductService) Suggestions(ctx context.Context, q string) ([]string, error) {
	q = strings.TrimSpace(q)
	if len(q) < 2 {
		return []string{}, nil
	}
	names, err := s.repo.Suggestions(ctx, q, suggestionLimit)
	if err != nil {
		return nil, storeError(err, "Product not found")
	}
	return names, nil
}

func (s *ProductService) FilterValues(ctx context.Context) (*repositories.FilterValues, error) {
	values, err := s.repo.FilterValues(ctx)
	if err != nil {
		return nil, storeError(err, "Product not found")
	}
	return values, nil
}

// Export writes the whole catalog to w as a spreadsheet.
func (s *ProductService) Export(ctx context.Context, w io.Writer) error {
	products, err := s.repo.All(ctx)
	if err != nil {
		return storeError(err, "Product not found")
	}
	if err := export.WriteProducts(w, products); err != nil {
		return apperror.Internal("Failed to export products", err)
	}
	return nil
}
