package repository

import (
	"context"

	"github.com/pasalpos/pasal-api/internal/domain/entity"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uint) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	// Delete removes a customer. Deleting a missing id is a silent no-op.
	Delete(ctx context.Context, id uint) error
	// List returns customers in insertion order, optionally filtered by a
	// case-insensitive substring match on name or phone.
	List(ctx context.Context, search string) ([]entity.Customer, error)
	Count(ctx context.Context) (int64, error)
}
