package repository

import (
	"context"

	"github.com/pasalpos/pasal-api/internal/domain/entity"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uint) (*entity.Product, error)
	// Update applies the given fields to the product row. Updating a missing
	// id is a silent no-op, not an error.
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	// Delete removes a product. Deleting a missing id is a silent no-op.
	// Historical sale items are unaffected: they snapshot their own data.
	Delete(ctx context.Context, id uint) error
	// List returns products in insertion (id) order. A non-empty search term
	// matches case-insensitively against the name or as a substring of the
	// barcode; an empty term returns everything.
	List(ctx context.Context, search string) ([]entity.Product, error)
	GetLowStock(ctx context.Context, threshold int) ([]entity.Product, error)
	Count(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context, threshold int) (int64, error)
}
