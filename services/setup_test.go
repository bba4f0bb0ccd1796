package services

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"cartamacho/db"
	"cartamacho/models"
	"cartamacho/repositories"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fixture wires both services over a fresh sqlite catalog.
type fixture struct {
	db    *gorm.DB
	cache *MenuCache
	menu  *MenuService
	admin *AdminService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	categories := repositories.NewCategoryRepository(database)
	products := repositories.NewProductRepository(database)
	options := repositories.NewOptionRepository(database)
	tags := repositories.NewTagRepository(database)
	cache := NewMenuCache()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		db:    database,
		cache: cache,
		menu:  NewMenuService(categories, products, cache, "El Macho", "Productos del Mar", log),
		admin: NewAdminService(categories, products, options, tags, cache, log),
	}
}

func (f *fixture) mustCreate(t *testing.T, value any) {
	t.Helper()
	if err := f.db.Create(value).Error; err != nil {
		t.Fatalf("create %T: %v", value, err)
	}
}

func price(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount)
}

func testCategory(code string, order int, active bool) *models.Category {
	return &models.Category{
		Code:         code,
		Name:         models.LocalizedText{Es: code + " es", En: code + " en"},
		DisplayOrder: order,
		Active:       active,
	}
}

func testOption(nameEs string, amount int64, order int, active, available bool) models.ProductOption {
	return models.ProductOption{
		Name:         models.LocalizedText{Es: nameEs, En: nameEs},
		Price:        price(amount),
		OptionType:   models.OptionSize,
		DisplayOrder: order,
		Active:       active,
		Available:    available,
	}
}

func testProduct(categoryID uint, code string, order int) *models.Product {
	return &models.Product{
		Code:         code,
		Name:         models.LocalizedText{Es: code + " es", En: code + " en"},
		CategoryID:   categoryID,
		DisplayOrder: order,
		Active:       true,
		Available:    true,
		Options: []models.ProductOption{
			testOption("Porción", 10000, 1, true, true),
		},
	}
}
