package db

import (
	"path/filepath"
	"testing"

	"cartamacho/models"

	"github.com/shopspring/decimal"
)

func TestInitSeedsTheOfficialMenu(t *testing.T) {
	database, err := Init(filepath.Join(t.TempDir(), "carta.db"))
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	counts := []struct {
		model any
		want  int64
	}{
		{&models.Category{}, 5},
		{&models.Product{}, 30},
		{&models.TagDefinition{}, 11},
	}
	for _, c := range counts {
		var got int64
		if err := database.Model(c.model).Count(&got).Error; err != nil {
			t.Fatalf("count %T: %v", c.model, err)
		}
		if got != c.want {
			t.Errorf("%T count = %d, want %d", c.model, got, c.want)
		}
	}

	var ostiones models.Product
	err = database.Preload("Options").Preload("Tags.Definition").
		Where("code = ?", "OSTIONES").First(&ostiones).Error
	if err != nil {
		t.Fatalf("load OSTIONES: %v", err)
	}
	if len(ostiones.Options) != 4 {
		t.Fatalf("OSTIONES has %d options, want 4 preparations", len(ostiones.Options))
	}
	for _, o := range ostiones.Options {
		if o.OptionType != models.OptionPreparation {
			t.Errorf("option %s type = %s, want PREPARATION", o.Name.Es, o.OptionType)
		}
		if !o.Price.Equal(decimal.NewFromInt(21500)) {
			t.Errorf("option %s price = %s, want 21500", o.Name.Es, o.Price)
		}
	}
	if len(ostiones.Tags) != 3 {
		t.Errorf("OSTIONES has %d tags, want 3", len(ostiones.Tags))
	}
}

func TestSeedIfEmptyIsIdempotent(t *testing.T) {
	database, err := Init(filepath.Join(t.TempDir(), "carta.db"))
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	if err := SeedIfEmpty(database); err != nil {
		t.Fatalf("SeedIfEmpty: %v", err)
	}

	var products int64
	if err := database.Model(&models.Product{}).Count(&products).Error; err != nil {
		t.Fatalf("count products: %v", err)
	}
	if products != 30 {
		t.Errorf("product count after re-seed = %d, want 30", products)
	}
}

func TestSeedBuildsFishPreparations(t *testing.T) {
	database, err := Init(filepath.Join(t.TempDir(), "carta.db"))
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	var category models.Category
	err = database.Preload("Products.Options").Where("code = ?", "PESCADOS").First(&category).Error
	if err != nil {
		t.Fatalf("load PESCADOS: %v", err)
	}
	if len(category.Products) != 9 {
		t.Fatalf("PESCADOS has %d products, want 9", len(category.Products))
	}
	for _, fish := range category.Products {
		if len(fish.Options) != 2 {
			t.Errorf("%s has %d options, want grilled and fried", fish.Code, len(fish.Options))
			continue
		}
		if !fish.Options[0].Price.Equal(fish.Options[1].Price) {
			t.Errorf("%s preparations priced differently: %s vs %s",
				fish.Code, fish.Options[0].Price, fish.Options[1].Price)
		}
	}
}
