package repositories

import (
	"cartamacho/models"

	"gorm.io/gorm"
)

// TagRepository is the query surface for the tag definition catalog.
type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) All() ([]models.TagDefinition, error) {
	var tags []models.TagDefinition
	err := r.db.Order("display_order ASC").Find(&tags).Error
	return tags, err
}

func (r *TagRepository) ByID(id uint) (*models.TagDefinition, error) {
	var tag models.TagDefinition
	if err := r.db.First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepository) ByCode(code string) (*models.TagDefinition, error) {
	var tag models.TagDefinition
	if err := r.db.Where("code = ?", code).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepository) ExistsByCode(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.TagDefinition{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *TagRepository) Create(tag *models.TagDefinition) error {
	return r.db.Create(tag).Error
}

func (r *TagRepository) Save(tag *models.TagDefinition) error {
	return r.db.Save(tag).Error
}
