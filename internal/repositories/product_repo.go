package repositories

import (
	"context"

	"silktouch/internal/models"
)

const (
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortNewest    = "newest"
	SortRating    = "rating"
)

// ProductFilter narrows a catalog listing. Zero values disable a filter.
type ProductFilter struct {
	Category    string
	Subcategory string
	Brand       string
	Size        string
	Color       string
	Search      string
	MinPrice    *float64
	MaxPrice    *float64
	Sort        string
	Page        int
	Limit       int
}

// FilterValues is the set of attribute values present in the catalog.
type FilterValues struct {
	Brands        []string `json:"brands"`
	Categories    []string `json:"categories"`
	Subcategories []string `json:"subcategories"`
	Colors        []string `json:"colors"`
	Sizes         []string `json:"sizes"`
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error)
	All(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]models.Product, error)
	Featured(ctx context.Context, limit int) ([]models.Product, error)
	Recommend(ctx context.Context, category string, budget *float64, limit int) ([]models.Product, error)
	Suggestions(ctx context.Context, q string, limit int) ([]string, error)
	FilterValues(ctx context.Context) (*FilterValues, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	AddReview(ctx context.Context, productID string, review *models.Review) (*models.Product, error)
}
