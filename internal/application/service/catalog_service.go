package service

import (
	"context"

	"github.com/pasalpos/pasal-api/internal/domain/entity"
	"github.com/pasalpos/pasal-api/internal/domain/repository"
	"github.com/pasalpos/pasal-api/internal/livequery"
	"github.com/pasalpos/pasal-api/pkg/apperror"
	"go.uber.org/zap"
)

// CatalogService handles product catalog operations
type CatalogService struct {
	productRepo repository.ProductRepository
	bus         *livequery.Bus
	logger      *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(productRepo repository.ProductRepository, bus *livequery.Bus, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		bus:         bus,
		logger:      logger,
	}
}

// ListProducts returns products in insertion order, filtered by name or
// barcode substring when search is non-empty.
func (s *CatalogService) ListProducts(ctx context.Context, search string) ([]entity.Product, error) {
	return s.productRepo.List(ctx, search)
}

// GetProduct retrieves a product by ID
func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// CreateProductInput represents the create product input. Prices are decimal
// currency amounts.
type CreateProductInput struct {
	Name      string
	Barcode   string
	Category  string
	Price     float64
	CostPrice float64
	Stock     int
}

// CreateProduct creates a new product
func (s *CatalogService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:     input.Name,
		Barcode:  input.Barcode,
		Category: input.Category,
		Stock:    input.Stock,
	}
	product.SetPriceFromDecimal(input.Price)
	product.SetCostPriceFromDecimal(input.CostPrice)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.bus.Notify(livequery.CollectionProducts)
	s.logger.Info("product created", zap.Uint("product_id", product.ID), zap.String("name", product.Name))
	return product, nil
}

// UpdateProductInput represents the update product input. Nil fields are
// left untouched.
type UpdateProductInput struct {
	Name      *string
	Barcode   *string
	Category  *string
	Price     *float64
	CostPrice *float64
	Stock     *int
}

// UpdateProduct applies the given fields. A missing id is a silent no-op:
// callers must not assume existence is verified.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, input *UpdateProductInput) error {
	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Barcode != nil {
		fields["barcode"] = *input.Barcode
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.Price != nil {
		fields["price"] = int64(*input.Price * 100)
	}
	if input.CostPrice != nil {
		fields["cost_price"] = int64(*input.CostPrice * 100)
	}
	if input.Stock != nil {
		fields["stock"] = *input.Stock
	}
	if len(fields) == 0 {
		return nil
	}

	if err := s.productRepo.Update(ctx, id, fields); err != nil {
		return err
	}

	s.bus.Notify(livequery.CollectionProducts)
	return nil
}

// DeleteProduct removes a product immediately. Past sales are unaffected:
// their line items snapshot their own name, price and quantity.
func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.bus.Notify(livequery.CollectionProducts)
	s.logger.Info("product deleted", zap.Uint("product_id", id))
	return nil
}

// LowStockProducts returns every product below the reorder threshold.
func (s *CatalogService) LowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx, entity.LowStockThreshold)
}
