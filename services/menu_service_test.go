package services

import (
	"errors"
	"testing"

	"cartamacho/models"
)

func TestGetFullMenu(t *testing.T) {
	f := newFixture(t)

	active := testCategory("MARISCOS", 1, true)
	hidden := testCategory("OCULTA", 2, false)
	f.mustCreate(t, active)
	f.mustCreate(t, hidden)

	ostiones := &models.Product{
		Code:         "OSTIONES",
		Name:         models.LocalizedText{Es: "Ostiones", En: "Scallops"},
		CategoryID:   active.ID,
		DisplayOrder: 1,
		Active:       true,
		Available:    true,
		Options: []models.ProductOption{
			testOption("Fuente", 15000, 1, true, true),
			testOption("Porción", 12000, 2, true, true),
			testOption("Retirada", 8000, 3, false, true),
			testOption("Agotada", 5000, 4, true, false),
		},
	}
	f.mustCreate(t, ostiones)

	retired := testProduct(active.ID, "RETIRADO", 2)
	retired.Active = false
	f.mustCreate(t, retired)

	eightySixed := testProduct(active.ID, "AGOTADO", 3)
	eightySixed.Available = false
	f.mustCreate(t, eightySixed)

	featured := testProduct(active.ID, "DESTACADO", 4)
	featured.Featured = true
	f.mustCreate(t, featured)

	catch := testProduct(active.ID, "PESCA_DIA", 5)
	catch.CatchOfDay = true
	f.mustCreate(t, catch)

	menu, err := f.menu.GetFullMenu("es")
	if err != nil {
		t.Fatalf("GetFullMenu: %v", err)
	}

	if menu.RestaurantName != "El Macho" || menu.Slogan != "Productos del Mar" {
		t.Errorf("branding = %q / %q", menu.RestaurantName, menu.Slogan)
	}
	if menu.Language != "es" {
		t.Errorf("Language = %q, want es", menu.Language)
	}
	if len(menu.Categories) != 1 {
		t.Fatalf("got %d categories, want 1 (inactive excluded)", len(menu.Categories))
	}

	cat := menu.Categories[0]
	if cat.Code != "MARISCOS" {
		t.Errorf("category code = %q", cat.Code)
	}
	if cat.ProductCount != 3 {
		t.Errorf("ProductCount = %d, want 3 (inactive and 86'd excluded)", cat.ProductCount)
	}
	for _, p := range cat.Products {
		if p.Code == "RETIRADO" || p.Code == "AGOTADO" {
			t.Errorf("hidden product %s leaked into the menu", p.Code)
		}
		if p.CategoryCode != "MARISCOS" {
			t.Errorf("product %s CategoryCode = %q", p.Code, p.CategoryCode)
		}
	}

	first := cat.Products[0]
	if first.Code != "OSTIONES" {
		t.Fatalf("first product = %q, want OSTIONES", first.Code)
	}
	if len(first.Options) != 2 {
		t.Fatalf("got %d options, want 2 (inactive and unavailable excluded)", len(first.Options))
	}
	if first.PriceFrom == nil || !first.PriceFrom.Equal(price(12000)) {
		t.Errorf("PriceFrom = %v, want 12000", first.PriceFrom)
	}

	if len(menu.FeaturedProducts) != 1 || menu.FeaturedProducts[0].Code != "DESTACADO" {
		t.Errorf("FeaturedProducts = %+v", menu.FeaturedProducts)
	}
	if len(menu.CatchOfDay) != 1 || menu.CatchOfDay[0].Code != "PESCA_DIA" {
		t.Errorf("CatchOfDay = %+v", menu.CatchOfDay)
	}
}

func TestGetFullMenuEnglish(t *testing.T) {
	f := newFixture(t)
	cat := &models.Category{
		Code:         "FISH",
		Name:         models.LocalizedText{Es: "Pescados", En: "Fish"},
		DisplayOrder: 1,
		Active:       true,
	}
	f.mustCreate(t, cat)

	menu, err := f.menu.GetFullMenu("EN")
	if err != nil {
		t.Fatalf("GetFullMenu: %v", err)
	}
	if menu.Language != "en" {
		t.Errorf("Language = %q, want en", menu.Language)
	}
	if menu.Categories[0].Name != "Fish" {
		t.Errorf("category name = %q, want Fish", menu.Categories[0].Name)
	}
}

func TestGetFullMenuServedFromCache(t *testing.T) {
	f := newFixture(t)
	cat := testCategory("BAR", 1, true)
	f.mustCreate(t, cat)

	first, err := f.menu.GetFullMenu("es")
	if err != nil {
		t.Fatalf("GetFullMenu: %v", err)
	}
	if n := len(first.Categories[0].Products); n != 0 {
		t.Fatalf("got %d products, want 0", n)
	}

	// A write that bypasses the admin service is not observed until the
	// cache is flushed.
	f.mustCreate(t, testProduct(cat.ID, "PISCO_SOUR", 1))

	cached, err := f.menu.GetFullMenu("es")
	if err != nil {
		t.Fatalf("GetFullMenu: %v", err)
	}
	if n := len(cached.Categories[0].Products); n != 0 {
		t.Fatalf("cached read observed the write: %d products", n)
	}

	f.cache.Flush()
	fresh, err := f.menu.GetFullMenu("es")
	if err != nil {
		t.Fatalf("GetFullMenu: %v", err)
	}
	if n := len(fresh.Categories[0].Products); n != 1 {
		t.Fatalf("got %d products after flush, want 1", n)
	}
}

func TestGetProductsByCategory(t *testing.T) {
	f := newFixture(t)
	inactive := testCategory("TEMPORADA", 1, false)
	f.mustCreate(t, inactive)
	f.mustCreate(t, testProduct(inactive.ID, "ERIZOS", 1))

	// Code lookups resolve inactive categories too.
	view, err := f.menu.GetProductsByCategory("TEMPORADA", "es")
	if err != nil {
		t.Fatalf("GetProductsByCategory: %v", err)
	}
	if view.Code != "TEMPORADA" || view.ProductCount != 1 {
		t.Errorf("view = %+v", view)
	}

	if _, err := f.menu.GetProductsByCategory("NO_EXISTE", "es"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown code error = %v, want ErrNotFound", err)
	}
}

func TestCachePopulationPerEndpoint(t *testing.T) {
	f := newFixture(t)
	cat := testCategory("MARISCOS", 1, true)
	f.mustCreate(t, cat)

	if _, err := f.menu.GetAvailableProducts("es"); err != nil {
		t.Fatalf("GetAvailableProducts: %v", err)
	}
	if _, err := f.menu.GetCatchOfDay("es"); err != nil {
		t.Fatalf("GetCatchOfDay: %v", err)
	}
	if f.cache.Len() != 0 {
		t.Fatalf("availability reads populated the cache: %d entries", f.cache.Len())
	}

	if _, err := f.menu.GetFeaturedProducts("es"); err != nil {
		t.Fatalf("GetFeaturedProducts: %v", err)
	}
	if f.cache.Len() != 1 {
		t.Fatalf("featured read cached %d entries, want 1", f.cache.Len())
	}
}

func TestProductTagsFilteredAndOrdered(t *testing.T) {
	f := newFixture(t)
	cat := testCategory("MARISCOS", 1, true)
	f.mustCreate(t, cat)

	abundant := &models.TagDefinition{
		Code:    "PORCION_ABUNDANTE",
		Text:    models.LocalizedText{Es: "Porción abundante", En: "Generous portion"},
		TagType: models.TagPortion,
		Active:  true,
	}
	sharing := &models.TagDefinition{
		Code:    "PARA_COMPARTIR",
		Text:    models.LocalizedText{Es: "Para compartir", En: "For sharing"},
		TagType: models.TagSharing,
		Active:  true,
	}
	retired := &models.TagDefinition{
		Code:    "PROMO_VIEJA",
		Text:    models.LocalizedText{Es: "Promo", En: "Promo"},
		TagType: models.TagPromo,
		Active:  false,
	}
	f.mustCreate(t, abundant)
	f.mustCreate(t, sharing)
	f.mustCreate(t, retired)

	product := testProduct(cat.ID, "JARDIN_MAR", 1)
	product.Tags = []models.ProductTag{
		{TagDefinitionID: sharing.ID, DisplayOrder: 1},
		{TagDefinitionID: abundant.ID, DisplayOrder: 0},
		{TagDefinitionID: retired.ID, DisplayOrder: 2},
	}
	f.mustCreate(t, product)

	view, err := f.menu.GetProductsByCategory("MARISCOS", "en")
	if err != nil {
		t.Fatalf("GetProductsByCategory: %v", err)
	}
	tags := view.Products[0].Tags
	if len(tags) != 2 {
		t.Fatalf("got %d tags, want 2 (inactive definition excluded)", len(tags))
	}
	if tags[0].Code != "PORCION_ABUNDANTE" || tags[1].Code != "PARA_COMPARTIR" {
		t.Errorf("tag order = %s, %s", tags[0].Code, tags[1].Code)
	}
	if tags[0].Text != "Generous portion" {
		t.Errorf("tag text = %q, want english", tags[0].Text)
	}
}
