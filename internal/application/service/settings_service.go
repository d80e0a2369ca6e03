package service

import (
	"context"
	"sort"
	"strconv"

	"github.com/pasalpos/pasal-api/internal/domain/entity"
	"github.com/pasalpos/pasal-api/internal/domain/repository"
	"github.com/pasalpos/pasal-api/internal/infrastructure/database"
	"github.com/pasalpos/pasal-api/internal/livequery"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// defaultTaxRate applies when the settings blob has no usable tax rate.
const defaultTaxRate = 0.13

// SettingsService handles the store configuration blob and destructive
// maintenance.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	db           *gorm.DB
	bus          *livequery.Bus
	logger       *zap.Logger
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository, db *gorm.DB, bus *livequery.Bus, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		db:           db,
		bus:          bus,
		logger:       logger,
	}
}

// Load returns the stored settings merged over the defaults, so every
// well-known key always has a value.
func (s *SettingsService) Load(ctx context.Context) (map[string]string, error) {
	rows, err := s.settingsRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	settings := entity.DefaultSettings()
	for _, row := range rows {
		settings[row.Key] = row.Value
	}
	return settings, nil
}

// Save replaces the whole settings collection with the given values.
// Last writer wins; keys absent from values are gone after the save.
func (s *SettingsService) Save(ctx context.Context, values map[string]string) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rows := make([]entity.Setting, 0, len(values))
	for _, key := range keys {
		rows = append(rows, entity.Setting{Key: key, Value: values[key]})
	}

	if err := s.settingsRepo.ReplaceAll(ctx, rows); err != nil {
		return err
	}

	s.bus.Notify(livequery.CollectionSettings)
	return nil
}

// TaxRate returns the configured tax rate as a fraction (0.13 for "13").
// An unreadable or missing value falls back to the default.
func (s *SettingsService) TaxRate(ctx context.Context) float64 {
	settings, err := s.Load(ctx)
	if err != nil {
		return defaultTaxRate
	}
	percent, err := strconv.ParseFloat(settings[entity.SettingTaxRate], 64)
	if err != nil {
		return defaultTaxRate
	}
	return percent / 100
}

// ResetDatabase destroys and recreates all four collections. Irreversible;
// used only as an explicit maintenance action.
func (s *SettingsService) ResetDatabase(ctx context.Context) error {
	if err := database.Reset(s.db.WithContext(ctx)); err != nil {
		return err
	}

	s.logger.Warn("database reset: all collections dropped and recreated")
	s.bus.Notify(
		livequery.CollectionProducts,
		livequery.CollectionSales,
		livequery.CollectionCustomers,
		livequery.CollectionSettings,
	)
	return nil
}
