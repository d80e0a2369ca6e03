package entity

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// LowStockThreshold is the fixed reorder threshold: a product whose stock
// falls below it is flagged low stock.
const LowStockThreshold = 10

// Product represents a catalog product. Prices are stored in cents.
type Product struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Barcode   string         `gorm:"size:100;index" json:"barcode"`
	Category  string         `gorm:"size:100" json:"category"`
	Price     int64          `gorm:"default:0" json:"-"` // Stored in cents
	CostPrice int64          `gorm:"default:0" json:"-"` // Stored in cents
	Stock     int            `gorm:"default:0" json:"stock"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether the product is below the reorder threshold.
func (p *Product) IsLowStock() bool {
	return p.Stock < LowStockThreshold
}

// GetPriceDecimal returns the selling price as a decimal (for display)
func (p *Product) GetPriceDecimal() float64 {
	return float64(p.Price) / 100
}

// GetCostPriceDecimal returns the cost price as a decimal (for display)
func (p *Product) GetCostPriceDecimal() float64 {
	return float64(p.CostPrice) / 100
}

// SetPriceFromDecimal sets the selling price from a decimal value
func (p *Product) SetPriceFromDecimal(price float64) {
	p.Price = int64(price * 100)
}

// SetCostPriceFromDecimal sets the cost price from a decimal value
func (p *Product) SetCostPriceFromDecimal(price float64) {
	p.CostPrice = int64(price * 100)
}

// MarshalJSON converts Product to JSON with decimal prices
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price     float64 `json:"price"`
		CostPrice float64 `json:"cost_price"`
		LowStock  bool    `json:"low_stock"`
	}{
		Alias:     Alias(p),
		Price:     p.GetPriceDecimal(),
		CostPrice: p.GetCostPriceDecimal(),
		LowStock:  p.IsLowStock(),
	})
}
