package repositories

import (
	"cartamacho/models"

	"gorm.io/gorm"
)

// ProductRepository is the query surface for products.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func productPreloads(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Category").
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Tags.Definition")
}

// AllOrdered returns every product for the admin list.
func (r *ProductRepository) AllOrdered() ([]models.Product, error) {
	var products []models.Product
	err := productPreloads(r.db).Order("display_order ASC").Find(&products).Error
	return products, err
}

// ByCategoryID returns all products of one category for the admin list,
// active or not.
func (r *ProductRepository) ByCategoryID(categoryID uint) ([]models.Product, error) {
	var products []models.Product
	err := productPreloads(r.db.Where("category_id = ?", categoryID)).
		Order("display_order ASC").
		Find(&products).Error
	return products, err
}

func (r *ProductRepository) ByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := productPreloads(r.db).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Available returns products a diner can order right now.
func (r *ProductRepository) Available() ([]models.Product, error) {
	return r.findVisible(r.db)
}

// Featured returns visible products flagged as featured.
func (r *ProductRepository) Featured() ([]models.Product, error) {
	return r.findVisible(r.db.Where("featured = ?", true))
}

// CatchOfDay returns visible products flagged as today's catch.
func (r *ProductRepository) CatchOfDay() ([]models.Product, error) {
	return r.findVisible(r.db.Where("catch_of_day = ?", true))
}

func (r *ProductRepository) findVisible(q *gorm.DB) ([]models.Product, error) {
	var products []models.Product
	err := productPreloads(q.Where("active = ? AND available = ?", true, true)).
		Order("display_order ASC").
		Find(&products).Error
	return products, err
}

func (r *ProductRepository) ExistsByCode(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

// Create inserts the product together with any attached options and tag
// links in one transaction.
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Save writes all scalar fields of the product row. Associations are left
// untouched; options and tags have their own write paths.
func (r *ProductRepository) Save(product *models.Product) error {
	return r.db.Omit("Options", "Tags", "Category").Save(product).Error
}
