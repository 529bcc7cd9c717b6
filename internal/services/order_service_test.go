package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"silktouch/internal/apperror"
	"silktouch/internal/events"
	"silktouch/internal/locker"
	"silktouch/internal/models"
	"silktouch/internal/repositories"
	"silktouch/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newOrderService(orders *MockOrderRepository, products *MockProductRepository, pub events.Publisher) *services.OrderService {
	return services.NewOrderService(orders, products, locker.NewMemory(), pub, 7, zap.NewNop())
}

func TestOrderService_PlaceOrderUsesCurrentPrices(t *testing.T) {
	orders := new(MockOrderRepository)
	products := new(MockProductRepository)
	pub := new(MockPublisher)
	service := newOrderService(orders, products, pub)
	ctx := context.Background()

	products.On("GetByIDs", ctx, []string{"p1", "p2"}).Return(map[string]models.Product{
		"p1": {ID: "p1", Name: "Shirt", Price: 129.99},
		"p2": {ID: "p2", Name: "Dress", Price: 0.1},
	}, nil).Once()
	orders.On("CreateAndClearCart", ctx, mock.MatchedBy(func(o *models.Order) bool {
		return o.Items[0].Product == nil && o.Items[1].Product == nil
	})).Return(nil).Once()
	pub.On("Publish", ctx, mock.MatchedBy(func(e events.OrderEvent) bool {
		return e.Type == events.TypeOrderCreated && e.UserID == "user-1"
	})).Return(nil).Once()

	before := time.Now()
	order, err := service.PlaceOrder(ctx, "user-1", services.PlaceOrderInput{
		Items: []services.OrderItemInput{
			{ProductID: "p1", Quantity: 3, Size: "M", Color: "Red"},
			{ProductID: "p2", Quantity: 3},
		},
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	assert.Equal(t, 390.27, order.TotalAmount)
	assert.Equal(t, 129.99, order.Items[0].Price)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, "Shirt", order.Items[0].Product.Name)
	assert.WithinDuration(t, before.AddDate(0, 0, 7), order.EstimatedDelivery, 5*time.Second)
	orders.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestOrderService_PlaceOrderMissingProduct(t *testing.T) {
	orders := new(MockOrderRepository)
	products := new(MockProductRepository)
	service := newOrderService(orders, products, events.Noop{})
	ctx := context.Background()

	products.On("GetByIDs", ctx, []string{"p1", "ghost"}).Return(map[string]models.Product{
		"p1": {ID: "p1", Price: 10},
	}, nil).Once()

	_, err := service.PlaceOrder(ctx, "user-1", services.PlaceOrderInput{
		Items: []services.OrderItemInput{{ProductID: "p1", Quantity: 1}, {ProductID: "ghost", Quantity: 1}},
	})
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.EqualError(t, err, "Product ghost not found")
	orders.AssertNotCalled(t, "CreateAndClearCart", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrderValidation(t *testing.T) {
	service := newOrderService(new(MockOrderRepository), new(MockProductRepository), events.Noop{})

	_, err := service.PlaceOrder(context.Background(), "user-1", services.PlaceOrderInput{})
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	_, err = service.PlaceOrder(context.Background(), "user-1", services.PlaceOrderInput{
		Items: []services.OrderItemInput{{ProductID: "p1", Quantity: 0}},
	})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestOrderService_PublishFailureDoesNotFailOrder(t *testing.T) {
	orders := new(MockOrderRepository)
	products := new(MockProductRepository)
	pub := new(MockPublisher)
	service := newOrderService(orders, products, pub)
	ctx := context.Background()

	products.On("GetByIDs", ctx, []string{"p1"}).Return(map[string]models.Product{"p1": {ID: "p1", Price: 10}}, nil)
	orders.On("CreateAndClearCart", ctx, mock.Anything).Return(nil)
	pub.On("Publish", ctx, mock.Anything).Return(fmt.Errorf("broker down"))

	order, err := service.PlaceOrder(ctx, "user-1", services.PlaceOrderInput{
		Items: []services.OrderItemInput{{ProductID: "p1", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, 20.0, order.TotalAmount)
}

func TestOrderService_GetForUserHidesOtherUsersOrders(t *testing.T) {
	orders := new(MockOrderRepository)
	service := newOrderService(orders, new(MockProductRepository), events.Noop{})
	ctx := context.Background()

	orders.On("GetForUser", ctx, "order-1", "intruder").Return(nil, fmt.Errorf("order: %w", repositories.ErrNotFound)).Once()
	_, err := service.GetForUser(ctx, "intruder", "order-1")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.EqualError(t, err, "Order not found")
}

func TestOrderService_SetStatus(t *testing.T) {
	orders := new(MockOrderRepository)
	pub := new(MockPublisher)
	service := newOrderService(orders, new(MockProductRepository), pub)
	ctx := context.Background()

	_, err := service.SetStatus(ctx, "order-1", services.StatusInput{Status: "processing"})
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	// Any known status may follow any other.
	orders.On("UpdateStatus", ctx, "order-1", models.OrderStatusPending).
		Return(&models.Order{ID: "order-1", Status: models.OrderStatusPending}, nil).Once()
	pub.On("Publish", ctx, mock.MatchedBy(func(e events.OrderEvent) bool {
		return e.Type == events.TypeOrderStatusChanged && e.Status == models.OrderStatusPending
	})).Return(nil).Once()
	order, err := service.SetStatus(ctx, "order-1", services.StatusInput{Status: models.OrderStatusPending})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	orders.On("UpdateStatus", ctx, "missing", models.OrderStatusShipped).
		Return(nil, fmt.Errorf("order: %w", repositories.ErrNotFound)).Once()
	_, err = service.SetStatus(ctx, "missing", services.StatusInput{Status: models.OrderStatusShipped})
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	orders.AssertExpectations(t)
	pub.AssertExpectations(t)
}
