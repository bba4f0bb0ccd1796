package services

import (
	"fmt"
	"log/slog"

	"cartamacho/models"
	"cartamacho/repositories"
)

// AdminService mutates the catalog. Every mutation flushes the read cache
// before returning, so the next public read observes the new state.
type AdminService struct {
	categories *repositories.CategoryRepository
	products   *repositories.ProductRepository
	options    *repositories.OptionRepository
	tags       *repositories.TagRepository
	cache      *MenuCache
	log        *slog.Logger
}

func NewAdminService(
	categories *repositories.CategoryRepository,
	products *repositories.ProductRepository,
	options *repositories.OptionRepository,
	tags *repositories.TagRepository,
	cache *MenuCache,
	log *slog.Logger,
) *AdminService {
	return &AdminService{
		categories: categories,
		products:   products,
		options:    options,
		tags:       tags,
		cache:      cache,
		log:        log,
	}
}

// ---------- categories ----------

func (s *AdminService) GetAllCategories() ([]models.Category, error) {
	return s.categories.All()
}

func (s *AdminService) GetCategoryByID(id uint) (*models.Category, error) {
	category, err := s.categories.ByID(id)
	if err != nil {
		return nil, notFound(err, "category", id)
	}
	return category, nil
}

func (s *AdminService) CreateCategory(in models.CategoryInput) (*models.Category, error) {
	exists, err := s.categories.ExistsByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("category %s: %w", in.Code, ErrCodeExists)
	}
	category := in.Category()
	if err := s.categories.Create(&category); err != nil {
		return nil, err
	}
	s.cache.Flush()
	s.log.Info("category created", "code", category.Code)
	return &category, nil
}

// UpdateCategory replaces every mutable scalar field. The code is
// externally meaningful and stays what it was at creation.
func (s *AdminService) UpdateCategory(id uint, in models.CategoryInput) (*models.Category, error) {
	category, err := s.categories.ByID(id)
	if err != nil {
		return nil, notFound(err, "category", id)
	}
	category.Name = in.Name.Text()
	category.Description = in.Description.Text()
	category.IconURL = in.IconURL
	category.ImageURL = in.ImageURL
	category.DisplayOrder = in.DisplayOrder
	if in.Active != nil {
		category.Active = *in.Active
	}
	if err := s.categories.Save(category); err != nil {
		return nil, err
	}
	s.cache.Flush()
	s.log.Info("category updated", "code", category.Code)
	return category, nil
}

func (s *AdminService) ToggleCategoryActive(id uint, active bool) error {
	category, err := s.categories.ByID(id)
	if err != nil {
		return notFound(err, "category", id)
	}
	category.Active = active
	if err := s.categories.Save(category); err != nil {
		return err
	}
	s.cache.Flush()
	s.log.Info("category toggled", "code", category.Code, "active", active)
	return nil
}

// ---------- products ----------

func (s *AdminService) GetAllProducts() ([]models.Product, error) {
	return s.products.AllOrdered()
}

func (s *AdminService) GetProductsByCategory(categoryID uint) ([]models.Product, error) {
	return s.products.ByCategoryID(categoryID)
}

func (s *AdminService) GetProductByID(id uint) (*models.Product, error) {
	product, err := s.products.ByID(id)
	if err != nil {
		return nil, notFound(err, "product", id)
	}
	return product, nil
}

// CreateProduct inserts a product with its nested options and tag links in
// one transaction. Fails with ErrCodeExists on a duplicate code and
// ErrNotFound when the category or any referenced tag does not exist.
func (s *AdminService) CreateProduct(in models.ProductInput) (*models.Product, error) {
	exists, err := s.products.ExistsByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("product %s: %w", in.Code, ErrCodeExists)
	}
	if _, err := s.categories.ByID(in.CategoryID); err != nil {
		return nil, notFound(err, "category", in.CategoryID)
	}

	product := in.Product()
	for _, optIn := range in.Options {
		product.Options = append(product.Options, optIn.Option())
	}
	for i, tagID := range in.TagIDs {
		tag, err := s.tags.ByID(tagID)
		if err != nil {
			return nil, notFound(err, "tag", tagID)
		}
		product.Tags = append(product.Tags, models.ProductTag{
			TagDefinitionID: tag.ID,
			DisplayOrder:    i,
		})
	}

	if err := s.products.Create(&product); err != nil {
		return nil, err
	}
	s.cache.Flush()
	s.log.Info("product created", "code", product.Code, "options", len(product.Options))
	return s.GetProductByID(product.ID)
}

// UpdateProduct replaces every mutable scalar field and re-resolves the
// category when it changes. Options and tag links are untouched: they
// have their own write paths.
func (s *AdminService) UpdateProduct(id uint, in models.ProductInput) (*models.Product, error) {
	product, err := s.products.ByID(id)
	if err != nil {
		return nil, notFound(err, "product", id)
	}
	if in.CategoryID != 0 && in.CategoryID != product.CategoryID {
		if _, err := s.categories.ByID(in.CategoryID); err != nil {
			return nil, notFound(err, "category", in.CategoryID)
		}
		product.CategoryID = in.CategoryID
	}
	product.Name = in.Name.Text()
	product.Description = in.Description.Text()
	product.ImageURL = in.ImageURL
	product.DisplayOrder = in.DisplayOrder
	if in.Active != nil {
		product.Active = *in.Active
	}
	if in.Available != nil {
		product.Available = *in.Available
	}
	if in.Featured != nil {
		product.Featured = *in.Featured
	}
	if in.Recommended != nil {
		product.Recommended = *in.Recommended
	}
	if in.CatchOfDay != nil {
		product.CatchOfDay = *in.CatchOfDay
	}
	product.SpicyLevel = in.SpicyLevel
	product.Allergens = in.Allergens.Text()

	if err := s.products.Save(product); err != nil {
		return nil, err
	}
	s.cache.Flush()
	s.log.Info("product updated", "code", product.Code)
	return s.GetProductByID(product.ID)
}

func (s *AdminService) ToggleProductAvailable(id uint, available bool) error {
	return s.toggleProduct(id, "available", func(p *models.Product) {
		p.Available = available
	})
}

func (s *AdminService) ToggleProductFeatured(id uint, featured bool) error {
	return s.toggleProduct(id, "featured", func(p *models.Product) {
		p.Featured = featured
	})
}

func (s *AdminService) ToggleCatchOfDay(id uint, catchOfDay bool) error {
	return s.toggleProduct(id, "catchOfDay", func(p *models.Product) {
		p.CatchOfDay = catchOfDay
	})
}

func (s *AdminService) toggleProduct(id uint, flag string, apply func(*models.Product)) error {
	product, err := s.products.ByID(id)
	if err != nil {
		return notFound(err, "product", id)
	}
	apply(product)
	if err := s.products.Save(product); err != nil {
		return err
	}
	s.cache.Flush()
	s.log.Info("product toggled", "code", product.Code, "flag", flag)
	return nil
}

// ---------- pricing ----------

// QuickUpdatePrice sets an option's price and, when supplied, its original
// price for was/now display. The ordering of the two values is the
// caller's responsibility.
func (s *AdminService) QuickUpdatePrice(update models.QuickPriceUpdate) error {
	option, err := s.options.ByID(update.OptionID)
	if err != nil {
		return notFound(err, "option", update.OptionID)
	}
	if update.OriginalPrice != nil {
		option.OriginalPrice = update.OriginalPrice
	}
	option.Price = update.NewPrice
	if err := s.options.Save(option); err != nil {
		return err
	}
	s.cache.Flush()
	s.log.Info("price updated", "option", option.ID, "price", option.Price.String())
	return nil
}

// BulkUpdatePrices applies updates in order, committing row by row. A
// failure aborts the rest of the batch; earlier updates stay applied.
func (s *AdminService) BulkUpdatePrices(updates []models.QuickPriceUpdate) error {
	for i, update := range updates {
		if err := s.QuickUpdatePrice(update); err != nil {
			return fmt.Errorf("bulk update %d of %d: %w", i+1, len(updates), err)
		}
	}
	s.log.Info("bulk price update finished", "count", len(updates))
	return nil
}

func (s *AdminService) ToggleOptionAvailable(optionID uint, available bool) error {
	if err := s.options.SetAvailability(optionID, available); err != nil {
		return notFound(err, "option", optionID)
	}
	s.cache.Flush()
	s.log.Info("option toggled", "option", optionID, "available", available)
	return nil
}

// ---------- tags ----------

func (s *AdminService) GetAllTags() ([]models.TagDefinition, error) {
	return s.tags.All()
}

func (s *AdminService) CreateTag(in models.TagInput) (*models.TagDefinition, error) {
	exists, err := s.tags.ExistsByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("tag %s: %w", in.Code, ErrCodeExists)
	}
	tag := in.Tag()
	if err := s.tags.Create(&tag); err != nil {
		return nil, err
	}
	s.cache.Flush()
	s.log.Info("tag created", "code", tag.Code)
	return &tag, nil
}

func (s *AdminService) UpdateTag(id uint, in models.TagInput) (*models.TagDefinition, error) {
	tag, err := s.tags.ByID(id)
	if err != nil {
		return nil, notFound(err, "tag", id)
	}
	tag.Text = in.Text.Text()
	tag.IconName = in.IconName
	tag.BackgroundColor = in.BackgroundColor
	tag.TextColor = in.TextColor
	tag.TagType = in.TagType
	tag.DisplayOrder = in.DisplayOrder
	if in.Active != nil {
		tag.Active = *in.Active
	}
	if err := s.tags.Save(tag); err != nil {
		return nil, err
	}
	s.cache.Flush()
	s.log.Info("tag updated", "code", tag.Code)
	return tag, nil
}

func (s *AdminService) ToggleTagActive(id uint, active bool) error {
	tag, err := s.tags.ByID(id)
	if err != nil {
		return notFound(err, "tag", id)
	}
	tag.Active = active
	if err := s.tags.Save(tag); err != nil {
		return err
	}
	s.cache.Flush()
	s.log.Info("tag toggled", "code", tag.Code, "active", active)
	return nil
}
