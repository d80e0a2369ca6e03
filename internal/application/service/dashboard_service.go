package service

import (
	"context"

	"github.com/pasalpos/pasal-api/internal/domain/entity"
	"github.com/pasalpos/pasal-api/internal/domain/repository"
	"github.com/pasalpos/pasal-api/internal/livequery"
)

// recentSalesCount is how many sales the dashboard shows.
const recentSalesCount = 5

// DashboardService aggregates the overview numbers for the store.
type DashboardService struct {
	sales        *SalesService
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	bus          *livequery.Bus
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	sales *SalesService,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	bus *livequery.Bus,
) *DashboardService {
	return &DashboardService{
		sales:        sales,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		bus:          bus,
	}
}

// DashboardStats represents the dashboard overview
type DashboardStats struct {
	TodaysSales    float64       `json:"todays_sales"`
	TotalProducts  int64         `json:"total_products"`
	TotalCustomers int64         `json:"total_customers"`
	LowStockCount  int64         `json:"low_stock_count"`
	RecentSales    []entity.Sale `json:"recent_sales"`
}

// Stats computes the current dashboard numbers.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	todays, err := s.sales.TodaysSales(ctx)
	if err != nil {
		return nil, err
	}

	totalProducts, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.productRepo.CountLowStock(ctx, entity.LowStockThreshold)
	if err != nil {
		return nil, err
	}

	totalCustomers, err := s.customerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.sales.RecentSales(ctx, recentSalesCount)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TodaysSales:    float64(todays) / 100,
		TotalProducts:  totalProducts,
		TotalCustomers: totalCustomers,
		LowStockCount:  lowStock,
		RecentSales:    recent,
	}, nil
}

// Live streams the dashboard: the current stats immediately, then fresh
// stats after every write touching products, sales or customers, until ctx
// is cancelled.
func (s *DashboardService) Live(ctx context.Context) <-chan livequery.Result[*DashboardStats] {
	return livequery.Watch(ctx, s.bus, s.Stats,
		livequery.CollectionProducts,
		livequery.CollectionSales,
		livequery.CollectionCustomers,
	)
}
