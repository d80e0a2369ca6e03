package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pasalpos/pasal-api/internal/domain/entity"
	"github.com/pasalpos/pasal-api/internal/livequery"
)

func newDashboardFixture(t *testing.T) (*DashboardService, *memProductRepo, *memSaleRepo, *memCustomerRepo, *livequery.Bus) {
	t.Helper()

	products := newMemProductRepo()
	sales := newMemSaleRepo(products)
	customers := newMemCustomerRepo()
	bus := livequery.NewBus()
	settings := NewSettingsService(&memSettingsRepo{}, nil, bus, zap.NewNop())
	salesService := NewSalesService(sales, settings)
	salesService.now = func() time.Time {
		return time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)
	}

	return NewDashboardService(salesService, products, customers, bus), products, sales, customers, bus
}

func TestDashboardService_Stats(t *testing.T) {
	service, products, sales, customers, _ := newDashboardFixture(t)
	ctx := context.Background()

	require.NoError(t, products.Create(ctx, &entity.Product{Name: "Rice 1kg", Stock: 50}))
	require.NoError(t, products.Create(ctx, &entity.Product{Name: "Oil 1L", Stock: 3}))
	require.NoError(t, customers.Create(ctx, &entity.Customer{Name: "Sita", Phone: "9841000000"}))

	seedSale(t, sales, time.Date(2026, 3, 15, 9, 0, 0, 0, time.Local), 10000)
	seedSale(t, sales, time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local), 99900)

	stats, err := service.Stats(ctx)

	require.NoError(t, err)
	assert.InDelta(t, 100.00, stats.TodaysSales, 1e-9)
	assert.Equal(t, int64(2), stats.TotalProducts)
	assert.Equal(t, int64(1), stats.TotalCustomers)
	assert.Equal(t, int64(1), stats.LowStockCount)
	require.Len(t, stats.RecentSales, 2)
	assert.Equal(t, uint(2), stats.RecentSales[0].ID, "recent sales come newest first")
}

func TestDashboardService_Stats_CapsRecentSales(t *testing.T) {
	service, _, sales, _, _ := newDashboardFixture(t)

	for i := 0; i < recentSalesCount+3; i++ {
		seedSale(t, sales, time.Date(2026, 3, 15, 9, i, 0, 0, time.Local), 1000)
	}

	stats, err := service.Stats(context.Background())

	require.NoError(t, err)
	assert.Len(t, stats.RecentSales, recentSalesCount)
}

func TestDashboardService_Live_PushesFreshStatsOnWrites(t *testing.T) {
	service, products, _, _, bus := newDashboardFixture(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	results := service.Live(ctx)

	first := <-results
	require.NoError(t, first.Err)
	assert.Equal(t, int64(0), first.Value.TotalProducts)

	require.NoError(t, products.Create(ctx, &entity.Product{Name: "Rice 1kg", Stock: 50}))
	bus.Notify(livequery.CollectionProducts)

	second := <-results
	require.NoError(t, second.Err)
	assert.Equal(t, int64(1), second.Value.TotalProducts)

	cancel()
	for range results {
	}
}
