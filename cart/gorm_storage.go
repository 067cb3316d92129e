package cart

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/therafiali/woocommerce-storefront/models"
)

// GormStorage keeps serialized carts in Postgres, one CartRecord row per
// storage key.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

func (g *GormStorage) Load(key string) ([]byte, error) {
	var rec models.CartRecord
	if err := g.db.First(&rec, "storage_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec.Payload, nil
}

func (g *GormStorage) Save(key string, data []byte) error {
	rec := models.CartRecord{Key: key, Payload: data}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&rec).Error
}

func (g *GormStorage) Delete(key string) error {
	return g.db.Delete(&models.CartRecord{}, "storage_key = ?", key).Error
}
