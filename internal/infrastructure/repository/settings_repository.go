package repository

import (
	"context"

	"github.com/pasalpos/pasal-api/internal/domain/entity"
	domainRepo "github.com/pasalpos/pasal-api/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetAll(ctx context.Context) ([]entity.Setting, error) {
	settings := []entity.Setting{}
	err := r.db.WithContext(ctx).Order("key ASC").Find(&settings).Error
	return settings, err
}

// ReplaceAll clears the whole collection and rewrites it. Readers never see
// the gap between clear and rewrite.
func (r *settingsRepository) ReplaceAll(ctx context.Context, settings []entity.Setting) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&entity.Setting{}).Error; err != nil {
			return err
		}
		if len(settings) == 0 {
			return nil
		}
		return tx.Create(&settings).Error
	})
}
