package database

import (
	"fmt"

	"github.com/pasalpos/pasal-api/internal/config"
	"github.com/pasalpos/pasal-api/internal/domain/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens the embedded SQLite database. The store is local and
// serverless: one file holds all four collections.
func NewSQLiteDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", cfg.Path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// SQLite allows a single writer; funneling all access through one
	// connection avoids SQLITE_BUSY under concurrent commits.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// AutoMigrate creates or updates the schema for all collections.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entity.Product{},
		&entity.Sale{},
		&entity.SaleItem{},
		&entity.Customer{},
		&entity.Setting{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Seed installs the starter catalog when the products table is empty.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []entity.Product{
		{Name: "Wai Wai Noodles", Barcode: "1001", Category: "Snacks", Price: 2000, CostPrice: 1800, Stock: 100},
		{Name: "Coca Cola 500ml", Barcode: "1002", Category: "Drinks", Price: 6000, CostPrice: 5000, Stock: 50},
		{Name: "Rice (Sona Mansuli) 25kg", Barcode: "1003", Category: "Grains", Price: 180000, CostPrice: 160000, Stock: 20},
		{Name: "Mustard Oil 1L", Barcode: "1004", Category: "Essentials", Price: 25000, CostPrice: 22000, Stock: 40},
	}
	return db.Create(&products).Error
}

// Reset destroys and recreates every collection, then reseeds. Irreversible.
// If dropping fails nothing has been lost; the prior state remains intact.
func Reset(db *gorm.DB) error {
	if err := db.Migrator().DropTable(
		&entity.SaleItem{},
		&entity.Sale{},
		&entity.Product{},
		&entity.Customer{},
		&entity.Setting{},
	); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	if err := AutoMigrate(db); err != nil {
		return err
	}
	return Seed(db)
}
