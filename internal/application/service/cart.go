package service

import (
	"encoding/json"
	"math"
	"sync"

	"github.com/pasalpos/pasal-api/internal/domain/entity"
)

// CartItem is one line of an open cart. Name and unit price are snapshots
// taken when the product was added; a mid-session catalog edit does not
// retroactively change an open cart.
type CartItem struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"-"` // Unit price in cents at add time
	Quantity  int    `json:"quantity"`
}

// MarshalJSON converts the unit price to a decimal for API responses.
func (ci CartItem) MarshalJSON() ([]byte, error) {
	type Alias CartItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(ci),
		Price: float64(ci.Price) / 100,
	})
}

// Cart is the in-memory, uncommitted order being assembled at one terminal.
// It is an explicit session object: every terminal gets its own, and nothing
// about it is persisted until commit.
type Cart struct {
	mu    sync.Mutex
	items []CartItem
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// AddItem appends a snapshot line for the product, or increments the
// quantity by one when the product is already in the cart.
func (c *Cart) AddItem(product *entity.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == product.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  1,
	})
}

// ChangeQuantity adjusts a line's quantity by delta, clamped to a minimum of
// one. Removal is a separate explicit operation; a missing line is a no-op.
func (c *Cart) ChangeQuantity(productID uint, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == productID {
			quantity := c.items[i].Quantity + delta
			if quantity < 1 {
				quantity = 1
			}
			c.items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem drops the line for the product entirely.
func (c *Cart) RemoveItem(productID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) == 0
}

// Totals holds the pricing computation for a cart, in cents.
type Totals struct {
	SubTotal int64
	Tax      int64
	Discount int64
	Total    int64
}

// MarshalJSON converts the cent amounts to decimals for API responses.
func (t Totals) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		SubTotal float64 `json:"subtotal"`
		Tax      float64 `json:"tax"`
		Discount float64 `json:"discount"`
		Total    float64 `json:"total"`
	}{
		SubTotal: float64(t.SubTotal) / 100,
		Tax:      float64(t.Tax) / 100,
		Discount: float64(t.Discount) / 100,
		Total:    float64(t.Total) / 100,
	})
}

// Totals computes subtotal, tax and total for the cart. taxRate is a
// fraction (0.13 for 13% VAT); discount is an absolute amount in cents. The
// discount is not clamped here: a total below zero is the caller's policy
// decision.
func (c *Cart) Totals(taxRate float64, discount int64) Totals {
	c.mu.Lock()
	defer c.mu.Unlock()

	var subTotal int64
	for _, item := range c.items {
		subTotal += item.Price * int64(item.Quantity)
	}
	tax := int64(math.Round(float64(subTotal) * taxRate))

	return Totals{
		SubTotal: subTotal,
		Tax:      tax,
		Discount: discount,
		Total:    subTotal + tax - discount,
	}
}
