package repositories

import (
	"context"

	"silktouch/internal/models"
)

// ProductSales is the quantity sold of one product across all orders.
type ProductSales struct {
	ProductID string         `json:"_id"`
	TotalSold int64          `json:"totalSold"`
	Product   models.Product `json:"product"`
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// CreateAndClearCart persists the order and empties the owner's cart atomically.
	CreateAndClearCart(ctx context.Context, order *models.Order) error
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	GetForUser(ctx context.Context, id, userID string) (*models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, status string) (*models.Order, error)
	Count(ctx context.Context) (int64, error)
	Revenue(ctx context.Context, statuses []string) (float64, error)
	Recent(ctx context.Context, limit int) ([]models.Order, error)
	TopSelling(ctx context.Context, limit int) ([]ProductSales, error)
}
