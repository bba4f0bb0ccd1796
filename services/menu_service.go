package services

import (
	"log/slog"
	"sort"

	"cartamacho/models"
	"cartamacho/repositories"

	"github.com/shopspring/decimal"
)

// MenuService builds the diner-facing views. Reads are localized to the
// requested language and filtered to what can be ordered right now.
type MenuService struct {
	categories *repositories.CategoryRepository
	products   *repositories.ProductRepository
	cache      *MenuCache
	name       string
	slogan     string
	log        *slog.Logger
}

func NewMenuService(
	categories *repositories.CategoryRepository,
	products *repositories.ProductRepository,
	cache *MenuCache,
	name, slogan string,
	log *slog.Logger,
) *MenuService {
	return &MenuService{
		categories: categories,
		products:   products,
		cache:      cache,
		name:       name,
		slogan:     slogan,
		log:        log,
	}
}

// GetFullMenu returns the whole menu: active categories with their
// orderable products, plus the featured and catch-of-day lists. Cached
// per language until the next catalog mutation.
func (s *MenuService) GetFullMenu(lang string) (*models.MenuResponse, error) {
	lang = models.NormalizeLang(lang)
	key := "menu:" + lang
	if v, ok := s.cache.Get(key); ok {
		return v.(*models.MenuResponse), nil
	}

	s.log.Info("building full menu", "lang", lang)

	categories, err := s.categories.ActiveOrdered()
	if err != nil {
		return nil, err
	}
	views := make([]models.CategoryView, 0, len(categories))
	for _, cat := range categories {
		views = append(views, mapCategoryView(cat, lang, true))
	}

	featured, err := s.products.Featured()
	if err != nil {
		return nil, err
	}
	catchOfDay, err := s.products.CatchOfDay()
	if err != nil {
		return nil, err
	}

	menu := &models.MenuResponse{
		RestaurantName:   s.name,
		Slogan:           s.slogan,
		Language:         lang,
		Categories:       views,
		FeaturedProducts: mapProductViews(featured, lang),
		CatchOfDay:       mapProductViews(catchOfDay, lang),
	}
	s.cache.Set(key, menu)
	return menu, nil
}

// GetProductsByCategory returns one category's detail view by code.
// The lookup resolves inactive categories too; only unknown codes fail.
func (s *MenuService) GetProductsByCategory(code, lang string) (*models.CategoryView, error) {
	lang = models.NormalizeLang(lang)
	key := "category:" + code + ":" + lang
	if v, ok := s.cache.Get(key); ok {
		return v.(*models.CategoryView), nil
	}

	category, err := s.categories.ByCode(code)
	if err != nil {
		return nil, notFound(err, "category", code)
	}
	view := mapCategoryView(*category, lang, true)
	s.cache.Set(key, &view)
	return &view, nil
}

// GetAvailableProducts returns the flat orderable list. Never cached:
// this endpoint backs near-real-time availability polling.
func (s *MenuService) GetAvailableProducts(lang string) ([]models.ProductView, error) {
	products, err := s.products.Available()
	if err != nil {
		return nil, err
	}
	return mapProductViews(products, models.NormalizeLang(lang)), nil
}

// GetFeaturedProducts returns the featured list, cached per language.
func (s *MenuService) GetFeaturedProducts(lang string) ([]models.ProductView, error) {
	lang = models.NormalizeLang(lang)
	key := "featured:" + lang
	if v, ok := s.cache.Get(key); ok {
		return v.([]models.ProductView), nil
	}
	products, err := s.products.Featured()
	if err != nil {
		return nil, err
	}
	views := mapProductViews(products, lang)
	s.cache.Set(key, views)
	return views, nil
}

// GetCatchOfDay returns today's catch. Read fresh on every call so the
// list follows the morning's flag changes without waiting on the cache.
func (s *MenuService) GetCatchOfDay(lang string) ([]models.ProductView, error) {
	products, err := s.products.CatchOfDay()
	if err != nil {
		return nil, err
	}
	return mapProductViews(products, models.NormalizeLang(lang)), nil
}

// mapCategoryView localizes a category. With includeProducts the orderable
// products are attached and counted; without it the view stays a summary.
func mapCategoryView(cat models.Category, lang string, includeProducts bool) models.CategoryView {
	view := models.CategoryView{
		ID:           cat.ID,
		Code:         cat.Code,
		Name:         cat.Name.Resolve(lang),
		Description:  cat.Description.Resolve(lang),
		IconURL:      cat.IconURL,
		ImageURL:     cat.ImageURL,
		DisplayOrder: cat.DisplayOrder,
	}
	if includeProducts {
		products := make([]models.ProductView, 0, len(cat.Products))
		for _, p := range cat.Products {
			if !p.Active || !p.Available {
				continue
			}
			p.Category = cat
			products = append(products, mapProductView(p, lang))
		}
		view.Products = products
		view.ProductCount = len(products)
	}
	return view
}

func mapProductViews(products []models.Product, lang string) []models.ProductView {
	views := make([]models.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, mapProductView(p, lang))
	}
	return views
}

// mapProductView localizes one product. Options are filtered to
// active+available in display order; priceFrom is the minimum price among
// them, absent when none qualify. Tags keep only active definitions,
// ordered by their per-product display order.
func mapProductView(p models.Product, lang string) models.ProductView {
	var priceFrom *decimal.Decimal
	options := make([]models.OptionView, 0, len(p.Options))
	for _, o := range p.Options {
		if !o.Active || !o.Available {
			continue
		}
		if priceFrom == nil || o.Price.LessThan(*priceFrom) {
			price := o.Price
			priceFrom = &price
		}
		options = append(options, mapOptionView(o, lang))
	}

	tags := make([]models.ProductTag, 0, len(p.Tags))
	for _, t := range p.Tags {
		if t.Definition.Active {
			tags = append(tags, t)
		}
	}
	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].DisplayOrder < tags[j].DisplayOrder
	})
	tagViews := make([]models.TagView, 0, len(tags))
	for _, t := range tags {
		tagViews = append(tagViews, mapTagView(t.Definition, lang))
	}

	return models.ProductView{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name.Resolve(lang),
		Description:  p.Description.Resolve(lang),
		ImageURL:     p.ImageURL,
		CategoryCode: p.Category.Code,
		CategoryName: p.Category.Name.Resolve(lang),
		DisplayOrder: p.DisplayOrder,
		Featured:     p.Featured,
		Recommended:  p.Recommended,
		CatchOfDay:   p.CatchOfDay,
		SpicyLevel:   p.SpicyLevel,
		Allergens:    p.Allergens.Resolve(lang),
		PriceFrom:    priceFrom,
		Options:      options,
		Tags:         tagViews,
	}
}

func mapOptionView(o models.ProductOption, lang string) models.OptionView {
	return models.OptionView{
		ID:                 o.ID,
		Name:               o.Name.Resolve(lang),
		Description:        o.Description.Resolve(lang),
		Price:              o.Price,
		OriginalPrice:      o.OriginalPrice,
		HasDiscount:        o.HasDiscount(),
		DiscountPercentage: o.DiscountPercentage(),
		OptionType:         string(o.OptionType),
		ServesPeople:       o.ServesPeople,
		SizeCode:           o.SizeCode,
		PreparationCode:    o.PreparationCode,
		DisplayOrder:       o.DisplayOrder,
		IsDefault:          o.IsDefault,
		Available:          o.Available,
	}
}

func mapTagView(tag models.TagDefinition, lang string) models.TagView {
	return models.TagView{
		ID:              tag.ID,
		Code:            tag.Code,
		Text:            tag.Text.Resolve(lang),
		IconName:        tag.IconName,
		BackgroundColor: tag.BackgroundColor,
		TextColor:       tag.TextColor,
		TagType:         string(tag.TagType),
	}
}
