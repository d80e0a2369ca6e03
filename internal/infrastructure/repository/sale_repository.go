package repository

import (
	"context"
	"errors"
	"time"

	"github.com/pasalpos/pasal-api/internal/domain/entity"
	domainRepo "github.com/pasalpos/pasal-api/internal/domain/repository"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

// CommitSale writes the sale, its line items and every stock decrement inside
// one transaction. Partial application is never observable: a failure at any
// point rolls the whole unit back.
func (r *saleRepository) CommitSale(ctx context.Context, sale *entity.Sale, enforceStock bool) ([]string, error) {
	var insufficient []string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return err
		}

		for _, item := range sale.Items {
			var product entity.Product
			err := tx.First(&product, "id = ?", item.ProductID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Product deleted since it was added to the cart: the
				// snapshot line still records, the decrement is skipped.
				continue
			}
			if err != nil {
				return err
			}

			if enforceStock {
				result := tx.Model(&entity.Product{}).
					Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
					Update("stock", gorm.Expr("stock - ?", item.Quantity))
				if result.Error != nil {
					return result.Error
				}
				if result.RowsAffected == 0 {
					insufficient = append(insufficient, product.Name)
				}
				continue
			}

			// Permissive mode: write back the freshly read stock minus the
			// sold quantity. Stock may go negative.
			if err := tx.Model(&entity.Product{}).
				Where("id = ?", item.ProductID).
				Update("stock", product.Stock-item.Quantity).Error; err != nil {
				return err
			}
		}

		if len(insufficient) > 0 {
			return gorm.ErrInvalidTransaction
		}
		return nil
	})

	// Rolled back because of insufficient stock: report the names, not the
	// sentinel used to trigger the rollback.
	if errors.Is(err, gorm.ErrInvalidTransaction) && len(insufficient) > 0 {
		return insufficient, nil
	}
	return nil, err
}

func (r *saleRepository) GetByID(ctx context.Context, id uint) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) List(ctx context.Context) ([]entity.Sale, error) {
	sales := []entity.Sale{}
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("date DESC, id DESC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) Recent(ctx context.Context, limit int) ([]entity.Sale, error) {
	sales := []entity.Sale{}
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) SumTotalBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Where("date >= ? AND date < ?", start, end).
		Select("COALESCE(SUM(total), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *saleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Sale{}).Count(&count).Error
	return count, err
}
