package entity

import (
	"encoding/json"
	"time"

	"github.com/pasalpos/pasal-api/internal/domain/enum"
)

// Sale represents a committed checkout. A sale is append-only: it is written
// once by the checkout engine and never mutated afterwards. Its line items
// carry their own copies of the product name and price, so later catalog
// edits or deletes do not alter historical receipts.
type Sale struct {
	ID            uint               `gorm:"primaryKey" json:"id"`
	Date          time.Time          `gorm:"not null;index" json:"date"`
	SubTotal      int64              `gorm:"default:0" json:"-"` // Stored in cents
	Tax           int64              `gorm:"default:0" json:"-"` // Stored in cents
	Discount      int64              `gorm:"default:0" json:"-"` // Stored in cents
	Total         int64              `gorm:"default:0" json:"-"` // Stored in cents
	PaymentMethod enum.PaymentMethod `gorm:"size:20;not null" json:"payment_method"`
	CreatedAt     time.Time          `json:"created_at"`

	Items []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		SubTotal float64 `json:"subtotal"`
		Tax      float64 `json:"tax"`
		Discount float64 `json:"discount"`
		Total    float64 `json:"total"`
	}{
		Alias:    Alias(s),
		SubTotal: float64(s.SubTotal) / 100,
		Tax:      float64(s.Tax) / 100,
		Discount: float64(s.Discount) / 100,
		Total:    float64(s.Total) / 100,
	})
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// GetTotalDecimal returns the total as a decimal
func (s *Sale) GetTotalDecimal() float64 {
	return float64(s.Total) / 100
}

// SaleItem is a line item snapshot: product id, name and unit price are
// copied from the cart at commit time, not referenced from the catalog.
type SaleItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	SaleID    uint   `gorm:"not null;index" json:"sale_id"`
	ProductID uint   `gorm:"not null" json:"product_id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	Price     int64  `gorm:"not null" json:"-"` // Unit price in cents at sale time
	Quantity  int    `gorm:"not null" json:"quantity"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (si SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(si),
		Price: float64(si.Price) / 100,
	})
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
