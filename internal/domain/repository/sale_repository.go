package repository

import (
	"context"
	"time"

	"github.com/pasalpos/pasal-api/internal/domain/entity"
)

// SaleRepository defines the interface for sale data operations. Sales are
// append-only: there is no update or delete beyond a full database reset.
type SaleRepository interface {
	// CommitSale persists the sale and decrements stock for every line item
	// inside a single transaction: either the sale row, its items and all
	// stock writes land, or none do. Stock is re-read at commit time; a line
	// whose product has been deleted skips its decrement but still records.
	//
	// With enforceStock set, a decrement only applies when the current stock
	// covers the quantity. Any shortfall rolls the whole transaction back and
	// the names of the offending products are returned with a nil error.
	CommitSale(ctx context.Context, sale *entity.Sale, enforceStock bool) (insufficient []string, err error)
	GetByID(ctx context.Context, id uint) (*entity.Sale, error)
	// List returns the full history, newest first, items preloaded.
	List(ctx context.Context) ([]entity.Sale, error)
	Recent(ctx context.Context, limit int) ([]entity.Sale, error)
	// SumTotalBetween sums sale totals (in cents) for start <= date < end.
	SumTotalBetween(ctx context.Context, start, end time.Time) (int64, error)
	Count(ctx context.Context) (int64, error)
}
