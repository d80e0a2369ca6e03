package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/pasalpos/pasal-api/internal/domain/entity"
	"github.com/pasalpos/pasal-api/internal/domain/repository"
	"github.com/pasalpos/pasal-api/pkg/apperror"
	"github.com/pasalpos/pasal-api/pkg/receipt"
)

// SalesService provides read access to the committed sales ledger.
type SalesService struct {
	saleRepo repository.SaleRepository
	settings *SettingsService

	now func() time.Time
}

// NewSalesService creates a new sales service
func NewSalesService(saleRepo repository.SaleRepository, settings *SettingsService) *SalesService {
	return &SalesService{
		saleRepo: saleRepo,
		settings: settings,
		now:      time.Now,
	}
}

// ListSales returns the full history newest first, optionally filtered by a
// substring match on the sale id or its date formatted as YYYY-MM-DD.
func (s *SalesService) ListSales(ctx context.Context, search string) ([]entity.Sale, error) {
	sales, err := s.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return sales, nil
	}

	filtered := []entity.Sale{}
	for _, sale := range sales {
		id := strconv.FormatUint(uint64(sale.ID), 10)
		date := sale.Date.Format("2006-01-02")
		if strings.Contains(id, search) || strings.Contains(date, search) {
			filtered = append(filtered, sale)
		}
	}
	return filtered, nil
}

// GetSale retrieves a sale with its line items
func (s *SalesService) GetSale(ctx context.Context, id uint) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// RecentSales returns the most recent sales, newest first.
func (s *SalesService) RecentSales(ctx context.Context, limit int) ([]entity.Sale, error) {
	return s.saleRepo.Recent(ctx, limit)
}

// TodaysSales sums the totals (in cents) of every sale whose date falls
// within the current calendar day, in the process-local time zone. A sale
// dated a moment before midnight belongs to yesterday.
func (s *SalesService) TodaysSales(ctx context.Context) (int64, error) {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)
	return s.saleRepo.SumTotalBetween(ctx, start, end)
}

// Receipt renders the sale as plain text using the configured store details.
func (s *SalesService) Receipt(ctx context.Context, id uint) (string, error) {
	sale, err := s.GetSale(ctx, id)
	if err != nil {
		return "", err
	}
	settings, err := s.settings.Load(ctx)
	if err != nil {
		return "", err
	}
	return receipt.Render(sale, receipt.StoreInfo{
		Name:     settings[entity.SettingStoreName],
		Address:  settings[entity.SettingAddress],
		Phone:    settings[entity.SettingPhone],
		Currency: settings[entity.SettingCurrency],
	}), nil
}

// ShareText builds the short message used to share a bill with a customer.
func (s *SalesService) ShareText(ctx context.Context, id uint) (string, error) {
	sale, err := s.GetSale(ctx, id)
	if err != nil {
		return "", err
	}
	settings, err := s.settings.Load(ctx)
	if err != nil {
		return "", err
	}
	return receipt.ShareText(sale, settings[entity.SettingStoreName], settings[entity.SettingCurrency]), nil
}
