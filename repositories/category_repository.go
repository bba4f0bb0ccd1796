package repositories

import (
	"cartamacho/models"

	"gorm.io/gorm"
)

// CategoryRepository is the query surface for categories.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// menuPreloads attaches everything the read side needs to map a category:
// its products in display order with their options and tag definitions.
func menuPreloads(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Products.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Products.Tags.Definition")
}

// All returns every category ordered for display, without products.
func (r *CategoryRepository) All() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("display_order ASC").Find(&categories).Error
	return categories, err
}

// ActiveOrdered returns active categories with their full product graph.
func (r *CategoryRepository) ActiveOrdered() ([]models.Category, error) {
	var categories []models.Category
	err := menuPreloads(r.db.Where("active = ?", true)).
		Order("display_order ASC").
		Find(&categories).Error
	return categories, err
}

// ByID returns a category without products.
func (r *CategoryRepository) ByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// ByCode returns a category with its full product graph. There is no
// active filter: a code lookup resolves inactive categories too.
func (r *CategoryRepository) ByCode(code string) (*models.Category, error) {
	var category models.Category
	if err := menuPreloads(r.db.Where("code = ?", code)).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) ExistsByCode(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *CategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *CategoryRepository) Save(category *models.Category) error {
	return r.db.Save(category).Error
}
