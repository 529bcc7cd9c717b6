package services

import (
	"context"

	"silktouch/internal/apperror"
	"silktouch/internal/models"
	"silktouch/internal/repositories"
)

const (
	recentOrdersLimit    = 5
	popularProductsLimit = 5
)

// DashboardAnalytics is the admin overview of the store.
type DashboardAnalytics struct {
	TotalUsers      int64                       `json:"totalUsers"`
	TotalProducts   int64                       `json:"totalProducts"`
	TotalOrders     int64                       `json:"totalOrders"`
	TotalRevenue    float64                     `json:"totalRevenue"`
	RecentOrders    []models.Order              `json:"recentOrders"`
	PopularProducts []repositories.ProductSales `json:"popularProducts"`
}

// AdminService serves read-only store aggregates.
type AdminService struct {
	users    repositories.UserRepository
	products repositories.ProductRepository
	orders   repositories.OrderRepository
}

func NewAdminService(users repositories.UserRepository, products repositories.ProductRepository, orders repositories.OrderRepository) *AdminService {
	return &AdminService{users: users, products: products, orders: orders}
}

// Analytics counts customers, products and orders. Revenue only includes
// confirmed, shipped and delivered orders.
func (s *AdminService) Analytics(ctx context.Context) (*DashboardAnalytics, error) {
	var (
		out DashboardAnalytics
		err error
	)
	if out.TotalUsers, err = s.users.CountByRole(ctx, models.RoleUser); err != nil {
		return nil, apperror.Internal("Server error", err)
	}
	if out.TotalProducts, err = s.products.Count(ctx); err != nil {
		return nil, apperror.Internal("Server error", err)
	}
	if out.TotalOrders, err = s.orders.Count(ctx); err != nil {
		return nil, apperror.Internal("Server error", err)
	}
	if out.TotalRevenue, err = s.orders.Revenue(ctx, models.RevenueStatuses); err != nil {
		return nil, apperror.Internal("Server error", err)
	}
	if out.RecentOrders, err = s.orders.Recent(ctx, recentOrdersLimit); err != nil {
		return nil, apperror.Internal("Server error", err)
	}
	if out.PopularProducts, err = s.orders.TopSelling(ctx, popularProductsLimit); err != nil {
		return nil, apperror.Internal("Server error", err)
	}
	return &out, nil
}

// Customers lists accounts with the user role, newest first.
func (s *AdminService) Customers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListByRole(ctx, models.RoleUser)
	if err != nil {
		return nil, apperror.Internal("Server error", err)
	}
	return users, nil
}
