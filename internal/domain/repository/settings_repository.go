package repository

import (
	"context"

	"github.com/pasalpos/pasal-api/internal/domain/entity"
)

// SettingsRepository defines the interface for the settings blob. The
// collection is read and replaced wholesale; individual rows are never
// updated in place.
type SettingsRepository interface {
	GetAll(ctx context.Context) ([]entity.Setting, error)
	// ReplaceAll clears the collection and rewrites it from the given rows
	// inside one transaction. Last writer wins; there is no merge.
	ReplaceAll(ctx context.Context, settings []entity.Setting) error
}
