package services

import (
	"context"
	"fmt"
	"time"

	"silktouch/internal/apperror"
	"silktouch/internal/events"
	"silktouch/internal/locker"
	"silktouch/internal/models"
	"silktouch/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderItemInput is one requested line. Any client-supplied price is ignored.
type OrderItemInput struct {
	ProductID string `json:"product" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type PlaceOrderInput struct {
	Items           []OrderItemInput       `json:"items" validate:"required,min=1,dive"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
}

type StatusInput struct {
	Status string `json:"status" validate:"required"`
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo    repositories.OrderRepository
	productRepo  repositories.ProductRepository
	locks        locker.Locker
	publisher    events.Publisher
	deliveryDays int
	log          *zap.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, locks locker.Locker, publisher events.Publisher, deliveryDays int, log *zap.Logger) *OrderService {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &OrderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		locks:        locks,
		publisher:    publisher,
		deliveryDays: deliveryDays,
		log:          log,
	}
}

// PlaceOrder prices every line at the current product price, persists the
// order and empties the user's cart. Nothing is written if any product is missing.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string, in PlaceOrderInput) (*models.Order, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	release, err := s.locks.Lock(ctx, userLockKey(userID))
	if err != nil {
		return nil, apperror.Internal("Server error", err)
	}
	defer release()

	ids := make([]string, 0, len(in.Items))
	for _, item := range in.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, storeError(err, "Product not found")
	}

	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		product, ok := products[item.ProductID]
		if !ok {
			return nil, apperror.NotFound(fmt.Sprintf("Product %s not found", item.ProductID))
		}
		price := decimal.NewFromFloat(product.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
			Price:     product.Price,
		})
	}

	now := time.Now()
	order := &models.Order{
		ID:                uuid.New().String(),
		UserID:            userID,
		Items:             items,
		TotalAmount:       total.InexactFloat64(),
		Status:            models.OrderStatusPending,
		ShippingAddress:   in.ShippingAddress,
		PaymentMethod:     in.PaymentMethod,
		PaymentStatus:     models.PaymentStatusPending,
		OrderDate:         now,
		EstimatedDelivery: now.AddDate(0, 0, s.deliveryDays),
		UpdatedAt:         now,
	}
	if err := s.orderRepo.CreateAndClearCart(ctx, order); err != nil {
		return nil, apperror.Internal("Server error", err)
	}

	for i := range order.Items {
		p := products[order.Items[i].ProductID]
		order.Items[i].Product = &p
	}

	s.log.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("user_id", userID),
		zap.Int("items", len(order.Items)),
		zap.Float64("total", order.TotalAmount),
	)
	s.publish(ctx, events.TypeOrderCreated, order)
	return order, nil
}

// ListForUser returns the user's orders, newest first.
func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]models.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeError(err, "Order not found")
	}
	return orders, nil
}

// GetForUser returns the order only to its owner; anyone else gets NotFound.
func (s *OrderService) GetForUser(ctx context.Context, userID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetForUser(ctx, orderID, userID)
	if err != nil {
		return nil, storeError(err, "Order not found")
	}
	return order, nil
}

func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, storeError(err, "Order not found")
	}
	return orders, nil
}

// SetStatus moves an order to any known status. Transitions are not restricted.
func (s *OrderService) SetStatus(ctx context.Context, orderID string, in StatusInput) (*models.Order, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if !models.ValidOrderStatus(in.Status) {
		return nil, apperror.Validation("Invalid order status", map[string]string{
			"status": "must be one of: pending confirmed shipped delivered cancelled",
		})
	}

	order, err := s.orderRepo.UpdateStatus(ctx, orderID, in.Status)
	if err != nil {
		return nil, storeError(err, "Order not found")
	}
	s.log.Info("order status updated", zap.String("order_id", orderID), zap.String("status", in.Status))
	s.publish(ctx, events.TypeOrderStatusChanged, order)
	return order, nil
}

// publish is best-effort: the order is already committed.
func (s *OrderService) publish(ctx context.Context, eventType string, order *models.Order) {
	if err := s.publisher.Publish(ctx, events.NewOrderEvent(eventType, order)); err != nil {
		s.log.Warn("failed to publish order event",
			zap.String("type", eventType),
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
	}
}
