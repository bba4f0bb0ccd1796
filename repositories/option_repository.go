package repositories

import (
	"cartamacho/models"

	"gorm.io/gorm"
)

// OptionRepository is the query surface for product options.
type OptionRepository struct {
	db *gorm.DB
}

func NewOptionRepository(db *gorm.DB) *OptionRepository {
	return &OptionRepository{db: db}
}

func (r *OptionRepository) ByID(id uint) (*models.ProductOption, error) {
	var option models.ProductOption
	if err := r.db.First(&option, id).Error; err != nil {
		return nil, err
	}
	return &option, nil
}

func (r *OptionRepository) Save(option *models.ProductOption) error {
	return r.db.Save(option).Error
}

// SetAvailability flips the availability flag in place. Returns
// gorm.ErrRecordNotFound when no row matches.
func (r *OptionRepository) SetAvailability(id uint, available bool) error {
	res := r.db.Model(&models.ProductOption{}).
		Where("id = ?", id).
		Update("available", available)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
