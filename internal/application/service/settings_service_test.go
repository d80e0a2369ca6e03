package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pasalpos/pasal-api/internal/domain/entity"
	"github.com/pasalpos/pasal-api/internal/livequery"
)

func newSettingsFixture() (*SettingsService, *livequery.Bus) {
	bus := livequery.NewBus()
	return NewSettingsService(&memSettingsRepo{}, nil, bus, zap.NewNop()), bus
}

func TestSettingsService_Load_ReturnsDefaultsWhenEmpty(t *testing.T) {
	service, _ := newSettingsFixture()

	settings, err := service.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSettings(), settings)
}

func TestSettingsService_SaveThenLoad_RoundTrips(t *testing.T) {
	service, _ := newSettingsFixture()
	ctx := context.Background()

	err := service.Save(ctx, map[string]string{
		entity.SettingStoreName: "Himalayan Mart",
		entity.SettingTaxRate:   "10",
	})
	require.NoError(t, err)

	settings, err := service.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Himalayan Mart", settings[entity.SettingStoreName])
	assert.Equal(t, "10", settings[entity.SettingTaxRate])
	// Keys not saved still resolve through the defaults.
	assert.Equal(t, "Rs.", settings[entity.SettingCurrency])
}

func TestSettingsService_Save_LastWriterWins(t *testing.T) {
	service, _ := newSettingsFixture()
	ctx := context.Background()

	require.NoError(t, service.Save(ctx, map[string]string{
		entity.SettingStoreName: "First",
		entity.SettingPhone:     "9811111111",
	}))
	require.NoError(t, service.Save(ctx, map[string]string{
		entity.SettingStoreName: "Second",
	}))

	settings, err := service.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Second", settings[entity.SettingStoreName])
	// The phone key was dropped by the second save, so the default shows.
	assert.Equal(t, "9800000000", settings[entity.SettingPhone])
}

func TestSettingsService_Save_NotifiesSettingsWatchers(t *testing.T) {
	service, bus := newSettingsFixture()
	sub := bus.Subscribe(livequery.CollectionSettings)
	defer sub.Close()

	require.NoError(t, service.Save(context.Background(), map[string]string{
		entity.SettingStoreName: "Himalayan Mart",
	}))

	select {
	case <-sub.C:
	default:
		t.Fatal("expected a settings change signal")
	}
}

func TestSettingsService_TaxRate(t *testing.T) {
	service, _ := newSettingsFixture()
	ctx := context.Background()

	// Default blob carries "13".
	assert.InDelta(t, 0.13, service.TaxRate(ctx), 1e-9)

	require.NoError(t, service.Save(ctx, map[string]string{entity.SettingTaxRate: "5"}))
	assert.InDelta(t, 0.05, service.TaxRate(ctx), 1e-9)

	// An unparseable rate falls back to the default.
	require.NoError(t, service.Save(ctx, map[string]string{entity.SettingTaxRate: "lots"}))
	assert.InDelta(t, 0.13, service.TaxRate(ctx), 1e-9)
}
