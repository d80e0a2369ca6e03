package repository

import (
	"context"
	"errors"

	"github.com/pasalpos/pasal-api/internal/domain/entity"
	domainRepo "github.com/pasalpos/pasal-api/internal/domain/repository"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	// Zero rows affected (missing id) is not an error.
	return r.db.WithContext(ctx).Model(&entity.Product{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *productRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Product{}, "id = ?", id).Error
}

func (r *productRepository) List(ctx context.Context, search string) ([]entity.Product, error) {
	products := []entity.Product{}

	query := r.db.WithContext(ctx).Model(&entity.Product{})
	if search != "" {
		// SQLite LIKE is case-insensitive for ASCII, so the search matches
		// regardless of casing.
		query = query.Where("name LIKE ? OR barcode LIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	err := query.Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepository) GetLowStock(ctx context.Context, threshold int) ([]entity.Product, error) {
	products := []entity.Product{}
	err := r.db.WithContext(ctx).
		Where("stock < ?", threshold).
		Order("stock ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Product{}).Count(&count).Error
	return count, err
}

func (r *productRepository) CountLowStock(ctx context.Context, threshold int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Product{}).
		Where("stock < ?", threshold).
		Count(&count).Error
	return count, err
}
