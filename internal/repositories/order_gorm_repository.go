package repositories

import (
	"context"
	"fmt"
	"time"

	"silktouch/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{db: db}
}

func withItems(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Items.Product")
}

// CreateAndClearCart expects order items without resolved products.
func (r *GORMOrderRepository) CreateAndClearCart(ctx context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("User").Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		cartIDs := tx.Model(&models.Cart{}).Select("id").Where("user_id = ?", order.UserID)
		if err := tx.Where("cart_id IN (?)", cartIDs).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}
		if err := tx.Model(&models.Cart{}).Where("user_id = ?", order.UserID).Update("updated_at", time.Now()).Error; err != nil {
			return fmt.Errorf("failed to touch cart: %w", err)
		}
		return nil
	})
}

// ListByUser returns the user's orders, newest first.
func (r *GORMOrderRepository) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	orders := []models.Order{}
	if err := withItems(r.db.WithContext(ctx)).Where("user_id = ?", userID).Order("order_date DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// GetForUser returns the order only when it belongs to userID.
func (r *GORMOrderRepository) GetForUser(ctx context.Context, id, userID string) (*models.Order, error) {
	var order models.Order
	if err := withItems(r.db.WithContext(ctx)).First(&order, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, translate(err, "order with ID %s", id)
	}
	return &order, nil
}

// ListAll returns every order with its owner, newest first.
func (r *GORMOrderRepository) ListAll(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	if err := withItems(r.db.WithContext(ctx)).Preload("User").Order("order_date DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (r *GORMOrderRepository) UpdateStatus(ctx context.Context, id string, status string) (*models.Order, error) {
	res := r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now()})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}

	var order models.Order
	if err := withItems(r.db.WithContext(ctx)).Preload("User").First(&order, "id = ?", id).Error; err != nil {
		return nil, translate(err, "order with ID %s", id)
	}
	return &order, nil
}

func (r *GORMOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// Revenue sums order totals over the given statuses.
func (r *GORMOrderRepository) Revenue(ctx context.Context, statuses []string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("status IN ?", statuses).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return total, nil
}

// Recent returns the latest orders with their owners.
func (r *GORMOrderRepository) Recent(ctx context.Context, limit int) ([]models.Order, error) {
	orders := []models.Order{}
	if err := r.db.WithContext(ctx).Preload("User").Order("order_date DESC").Limit(limit).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent orders: %w", err)
	}
	return orders, nil
}

// TopSelling groups order lines by product and returns the best sellers.
// Products that no longer exist are skipped.
func (r *GORMOrderRepository) TopSelling(ctx context.Context, limit int) ([]ProductSales, error) {
	var rows []struct {
		ProductID string
		TotalSold int64
	}
	err := r.db.WithContext(ctx).Model(&models.OrderItem{}).
		Select("product_id, SUM(quantity) AS total_sold").
		Group("product_id").
		Order("total_sold DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales: %w", err)
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ProductID
	}
	var products []models.Product
	if len(ids) > 0 {
		if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
			return nil, fmt.Errorf("failed to load best sellers: %w", err)
		}
	}
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	sales := make([]ProductSales, 0, len(rows))
	for _, row := range rows {
		product, ok := byID[row.ProductID]
		if !ok {
			continue
		}
		sales = append(sales, ProductSales{ProductID: row.ProductID, TotalSold: row.TotalSold, Product: product})
	}
	return sales, nil
}
