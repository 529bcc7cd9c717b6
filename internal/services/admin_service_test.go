package services_test

import (
	"context"
	"fmt"
	"testing"

	"silktouch/internal/apperror"
	"silktouch/internal/models"
	"silktouch/internal/repositories"
	"silktouch/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_Analytics(t *testing.T) {
	users := new(MockUserRepository)
	products := new(MockProductRepository)
	orders := new(MockOrderRepository)
	service := services.NewAdminService(users, products, orders)
	ctx := context.Background()

	users.On("CountByRole", ctx, models.RoleUser).Return(int64(2), nil)
	products.On("Count", ctx).Return(int64(20), nil)
	orders.On("Count", ctx).Return(int64(4), nil)
	orders.On("Revenue", ctx, models.RevenueStatuses).Return(540.5, nil)
	orders.On("Recent", ctx, 5).Return([]models.Order{{ID: "o1"}}, nil)
	orders.On("TopSelling", ctx, 5).Return([]repositories.ProductSales{{ProductID: "p1", TotalSold: 7}}, nil)

	analytics, err := service.Analytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), analytics.TotalUsers)
	assert.Equal(t, int64(20), analytics.TotalProducts)
	assert.Equal(t, int64(4), analytics.TotalOrders)
	assert.Equal(t, 540.5, analytics.TotalRevenue)
	assert.Len(t, analytics.RecentOrders, 1)
	assert.Equal(t, int64(7), analytics.PopularProducts[0].TotalSold)
}

func TestAdminService_AnalyticsFailure(t *testing.T) {
	users := new(MockUserRepository)
	service := services.NewAdminService(users, new(MockProductRepository), new(MockOrderRepository))

	users.On("CountByRole", context.Background(), models.RoleUser).Return(int64(0), fmt.Errorf("db down"))
	_, err := service.Analytics(context.Background())
	assert.True(t, apperror.Is(err, apperror.KindInternal))
}

func TestProfileService_Update(t *testing.T) {
	users := new(MockUserRepository)
	service := services.NewProfileService(users)
	ctx := context.Background()

	name := "  Sara  "
	phone := "+971500000000"
	users.On("UpdateProfile", ctx, "user-1", repositories.ProfileUpdate{Name: strPtr("Sara"), Phone: &phone}).
		Return(&models.User{ID: "user-1", Name: "Sara", Phone: phone}, nil).Once()

	user, err := service.Update(ctx, "user-1", services.ProfileInput{Name: &name, Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "Sara", user.Name)

	blank := " "
	_, err = service.Update(ctx, "user-1", services.ProfileInput{Name: &blank})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	users.AssertExpectations(t)
}

func TestProfileService_GetMissingUser(t *testing.T) {
	users := new(MockUserRepository)
	service := services.NewProfileService(users)

	users.On("GetByID", context.Background(), "ghost").Return(nil, fmt.Errorf("user: %w", repositories.ErrNotFound))
	_, err := service.Get(context.Background(), "ghost")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func strPtr(s string) *string { return &s }
