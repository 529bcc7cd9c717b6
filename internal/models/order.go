package models

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

var orderStatuses = map[string]bool{
	OrderStatusPending:   true,
	OrderStatusConfirmed: true,
	OrderStatusShipped:   true,
	OrderStatusDelivered: true,
	OrderStatusCancelled: true,
}

// RevenueStatuses are the order statuses counted as realised revenue.
var RevenueStatuses = []string{OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered}

// ValidOrderStatus reports whether status is a known order status.
func ValidOrderStatus(status string) bool {
	return orderStatuses[status]
}

// ShippingAddress is captured on the order at checkout.
type ShippingAddress struct {
	Name       string `json:"name" gorm:"type:varchar(100)"`
	Street     string `json:"street" gorm:"type:varchar(255)"`
	City       string `json:"city" gorm:"type:varchar(100)"`
	PostalCode string `json:"postalCode" gorm:"type:varchar(20)"`
	Country    string `json:"country" gorm:"type:varchar(100)"`
	Phone      string `json:"phone" gorm:"type:varchar(30)"`
}

// OrderItem represents a single line within an order.
type OrderItem struct {
	ID        uint     `json:"-" gorm:"primaryKey"`
	OrderID   string   `json:"-" gorm:"type:varchar(36);index;not null"`
	ProductID string   `json:"productId" gorm:"type:varchar(36);index;not null"`
	Product   *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int      `json:"quantity"`
	Size      string   `json:"size" gorm:"type:varchar(20)"`
	Color     string   `json:"color" gorm:"type:varchar(50)"`
	Price     float64  `json:"price"` // price at the time of order
}

// Order represents a placed customer order. Only Status changes after creation.
type Order struct {
	ID                string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID            string          `json:"userId" gorm:"type:varchar(36);index;not null"`
	User              *User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items             []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
	TotalAmount       float64         `json:"totalAmount" gorm:"not null"`
	Status            string          `json:"status" gorm:"type:varchar(20);not null;default:pending;index"`
	ShippingAddress   ShippingAddress `json:"shippingAddress" gorm:"embedded;embeddedPrefix:shipping_"`
	PaymentMethod     string          `json:"paymentMethod" gorm:"type:varchar(50)"`
	PaymentStatus     string          `json:"paymentStatus" gorm:"type:varchar(20);not null;default:pending"`
	OrderDate         time.Time       `json:"orderDate" gorm:"index"`
	EstimatedDelivery time.Time       `json:"estimatedDelivery"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}
