package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pasalpos/pasal-api/internal/domain/entity"
	"github.com/pasalpos/pasal-api/internal/livequery"
	"github.com/pasalpos/pasal-api/pkg/apperror"
)

func newCatalogFixture() (*CatalogService, *memProductRepo, *livequery.Bus) {
	products := newMemProductRepo()
	bus := livequery.NewBus()
	return NewCatalogService(products, bus, zap.NewNop()), products, bus
}

func TestCatalogService_CreateProduct_ConvertsDecimalPrices(t *testing.T) {
	service, _, _ := newCatalogFixture()

	product, err := service.CreateProduct(context.Background(), &CreateProductInput{
		Name:      "Rice 1kg",
		Barcode:   "9800000001",
		Category:  "Grains",
		Price:     20.00,
		CostPrice: 18.00,
		Stock:     50,
	})

	require.NoError(t, err)
	assert.NotZero(t, product.ID)
	assert.Equal(t, int64(2000), product.Price)
	assert.Equal(t, int64(1800), product.CostPrice)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	service, _, _ := newCatalogFixture()

	_, err := service.GetProduct(context.Background(), 42)

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCatalogService_UpdateProduct_PartialFields(t *testing.T) {
	service, products, _ := newCatalogFixture()
	ctx := context.Background()

	created, err := service.CreateProduct(ctx, &CreateProductInput{Name: "Oil 1L", Price: 60.00, Stock: 5})
	require.NoError(t, err)

	newPrice := 65.50
	require.NoError(t, service.UpdateProduct(ctx, created.ID, &UpdateProductInput{Price: &newPrice}))

	updated, _ := products.GetByID(ctx, created.ID)
	assert.Equal(t, int64(6550), updated.Price)
	assert.Equal(t, "Oil 1L", updated.Name, "untouched fields must survive")
	assert.Equal(t, 5, updated.Stock)
}

func TestCatalogService_UpdateProduct_MissingIDIsSilentNoOp(t *testing.T) {
	service, _, _ := newCatalogFixture()

	name := "Ghost"
	err := service.UpdateProduct(context.Background(), 42, &UpdateProductInput{Name: &name})

	assert.NoError(t, err)
}

func TestCatalogService_DeleteProduct_MissingIDIsSilentNoOp(t *testing.T) {
	service, _, _ := newCatalogFixture()

	assert.NoError(t, service.DeleteProduct(context.Background(), 42))
}

func TestCatalogService_LowStockBoundary(t *testing.T) {
	service, _, _ := newCatalogFixture()
	ctx := context.Background()

	atThreshold, err := service.CreateProduct(ctx, &CreateProductInput{Name: "At", Stock: entity.LowStockThreshold})
	require.NoError(t, err)
	below, err := service.CreateProduct(ctx, &CreateProductInput{Name: "Below", Stock: entity.LowStockThreshold - 1})
	require.NoError(t, err)

	low, err := service.LowStockProducts(ctx)
	require.NoError(t, err)

	require.Len(t, low, 1, "the threshold itself is not low stock")
	assert.Equal(t, below.ID, low[0].ID)
	assert.NotEqual(t, atThreshold.ID, low[0].ID)
}

func TestCatalogService_WritesNotifyProductWatchers(t *testing.T) {
	service, _, bus := newCatalogFixture()
	ctx := context.Background()

	sub := bus.Subscribe(livequery.CollectionProducts)
	defer sub.Close()

	product, err := service.CreateProduct(ctx, &CreateProductInput{Name: "Rice 1kg", Stock: 1})
	require.NoError(t, err)

	select {
	case <-sub.C:
	default:
		t.Fatal("expected a products change signal after create")
	}

	require.NoError(t, service.DeleteProduct(ctx, product.ID))
	select {
	case <-sub.C:
	default:
		t.Fatal("expected a products change signal after delete")
	}
}
