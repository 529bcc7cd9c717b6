package models

import "time"

// CartItem is one line in a cart, identified by product, size and color.
type CartItem struct {
	ID        uint     `json:"-" gorm:"primaryKey"`
	CartID    string   `json:"-" gorm:"type:varchar(36);index;not null"`
	ProductID string   `json:"productId" gorm:"type:varchar(36);not null"`
	Product   *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int      `json:"quantity"`
	Size      string   `json:"size" gorm:"type:varchar(20)"`
	Color     string   `json:"color" gorm:"type:varchar(50)"`
}

func (i CartItem) matches(productID, size, color string) bool {
	return i.ProductID == productID && i.Size == size && i.Color == color
}

// Cart holds the line items of a single user.
type Cart struct {
	ID        string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string     `json:"userId" gorm:"uniqueIndex;type:varchar(36);not null"`
	Items     []CartItem `json:"items" gorm:"foreignKey:CartID"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// AddItem increments the quantity of a matching line or appends a new one.
func (c *Cart) AddItem(productID string, quantity int, size, color string) {
	for i := range c.Items {
		if c.Items[i].matches(productID, size, color) {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		CartID:    c.ID,
		ProductID: productID,
		Quantity:  quantity,
		Size:      size,
		Color:     color,
	})
}

// UpdateItem sets the quantity of the first matching line, removing it when
// quantity is not positive. It reports whether a line matched.
func (c *Cart) UpdateItem(productID string, quantity int, size, color string) bool {
	for i := range c.Items {
		if !c.Items[i].matches(productID, size, color) {
			continue
		}
		if quantity <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		} else {
			c.Items[i].Quantity = quantity
		}
		return true
	}
	return false
}

// RemoveItem drops every line matching the triple.
func (c *Cart) RemoveItem(productID, size, color string) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if !item.matches(productID, size, color) {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}
