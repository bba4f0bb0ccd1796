package models

import "github.com/shopspring/decimal"

// Admin request bodies. Validation runs in the handler layer before any
// service call; the tags here are the single source of the field rules.

// RequiredText is bilingual input where both languages must be provided.
type RequiredText struct {
	Es string `json:"es" validate:"required,max=100"`
	En string `json:"en" validate:"required,max=100"`
}

// Text converts the input into the stored value type.
func (t RequiredText) Text() LocalizedText {
	return LocalizedText{Es: t.Es, En: t.En}
}

// OptionalText is bilingual input where either language may be empty.
type OptionalText struct {
	Es string `json:"es" validate:"max=500"`
	En string `json:"en" validate:"max=500"`
}

// Text converts the input into the stored value type.
func (t OptionalText) Text() LocalizedText {
	return LocalizedText{Es: t.Es, En: t.En}
}

// CategoryInput creates or fully replaces a category.
type CategoryInput struct {
	Code         string       `json:"code" validate:"required,max=50"`
	Name         RequiredText `json:"name"`
	Description  OptionalText `json:"description"`
	IconURL      string       `json:"iconUrl"`
	ImageURL     string       `json:"imageUrl"`
	DisplayOrder int          `json:"displayOrder" validate:"min=0"`
	Active       *bool        `json:"active"`
}

// ProductInput creates or fully replaces a product. Options and TagIDs are
// only honored on create; updates replace scalar fields and may reassign
// the category.
type ProductInput struct {
	Code         string        `json:"code" validate:"required,max=50"`
	Name         RequiredText  `json:"name"`
	Description  OptionalText  `json:"description"`
	ImageURL     string        `json:"imageUrl"`
	CategoryID   uint          `json:"categoryId" validate:"required"`
	DisplayOrder int           `json:"displayOrder" validate:"min=0"`
	Active       *bool         `json:"active"`
	Available    *bool         `json:"available"`
	Featured     *bool         `json:"featured"`
	Recommended  *bool         `json:"recommended"`
	CatchOfDay   *bool         `json:"catchOfDay"`
	SpicyLevel   *int          `json:"spicyLevel" validate:"omitempty,min=0,max=3"`
	Allergens    OptionalText  `json:"allergens"`
	Options      []OptionInput `json:"options" validate:"dive"`
	TagIDs       []uint        `json:"tagIds"`
}

// OptionInput creates a product option together with its parent product.
type OptionInput struct {
	Name            RequiredText     `json:"name"`
	Description     OptionalText     `json:"description"`
	Price           decimal.Decimal  `json:"price" validate:"required,gt=0"`
	OriginalPrice   *decimal.Decimal `json:"originalPrice" validate:"omitempty,gt=0"`
	OptionType      OptionType       `json:"optionType" validate:"required,oneof=SIZE QUANTITY PREPARATION SERVING COMBO"`
	ServesPeople    *int             `json:"servesPeople" validate:"omitempty,min=1"`
	SizeCode        string           `json:"sizeCode" validate:"max=50"`
	PreparationCode string           `json:"preparationCode" validate:"max=50"`
	DisplayOrder    int              `json:"displayOrder" validate:"min=0"`
	Active          *bool            `json:"active"`
	Available       *bool            `json:"available"`
	IsDefault       *bool            `json:"isDefault"`
}

// TagInput creates or fully replaces a tag definition.
type TagInput struct {
	Code            string       `json:"code" validate:"required,max=50"`
	Text            RequiredText `json:"text"`
	IconName        string       `json:"iconName" validate:"max=50"`
	BackgroundColor string       `json:"backgroundColor" validate:"max=20"`
	TextColor       string       `json:"textColor" validate:"max=20"`
	TagType         TagType      `json:"tagType" validate:"required,oneof=PORTION SHARING VALUE SPECIAL DIETARY PROMO"`
	Active          *bool        `json:"active"`
	DisplayOrder    int          `json:"displayOrder" validate:"min=0"`
}

// QuickPriceUpdate sets an option's price, optionally recording the
// original price for was/now display. Price ordering is not checked; the
// caller owns the consistency of originalPrice.
type QuickPriceUpdate struct {
	OptionID      uint             `json:"optionId" validate:"required"`
	NewPrice      decimal.Decimal  `json:"newPrice" validate:"required,gt=0"`
	OriginalPrice *decimal.Decimal `json:"originalPrice" validate:"omitempty,gt=0"`
}

// Toggle bodies for the PATCH endpoints. Pointers distinguish a missing
// field from an explicit false.
type ToggleActive struct {
	Active *bool `json:"active" validate:"required"`
}

type ToggleAvailable struct {
	Available *bool `json:"available" validate:"required"`
}

type ToggleFeatured struct {
	Featured *bool `json:"featured" validate:"required"`
}

type ToggleCatchOfDay struct {
	CatchOfDay *bool `json:"catchOfDay" validate:"required"`
}

func boolOr(v *bool, fallback bool) bool {
	if v != nil {
		return *v
	}
	return fallback
}

// Category builds the entity a CategoryInput describes.
func (in CategoryInput) Category() Category {
	return Category{
		Code:         in.Code,
		Name:         in.Name.Text(),
		Description:  in.Description.Text(),
		IconURL:      in.IconURL,
		ImageURL:     in.ImageURL,
		DisplayOrder: in.DisplayOrder,
		Active:       boolOr(in.Active, true),
	}
}

// Product builds the entity a ProductInput describes, without its
// options and tag links (attached by the service).
func (in ProductInput) Product() Product {
	return Product{
		Code:         in.Code,
		Name:         in.Name.Text(),
		Description:  in.Description.Text(),
		ImageURL:     in.ImageURL,
		CategoryID:   in.CategoryID,
		DisplayOrder: in.DisplayOrder,
		Active:       boolOr(in.Active, true),
		Available:    boolOr(in.Available, true),
		Featured:     boolOr(in.Featured, false),
		Recommended:  boolOr(in.Recommended, false),
		CatchOfDay:   boolOr(in.CatchOfDay, false),
		SpicyLevel:   in.SpicyLevel,
		Allergens:    in.Allergens.Text(),
	}
}

// Option builds the entity an OptionInput describes.
func (in OptionInput) Option() ProductOption {
	return ProductOption{
		Name:            in.Name.Text(),
		Description:     in.Description.Text(),
		Price:           in.Price,
		OriginalPrice:   in.OriginalPrice,
		OptionType:      in.OptionType,
		ServesPeople:    in.ServesPeople,
		SizeCode:        in.SizeCode,
		PreparationCode: in.PreparationCode,
		DisplayOrder:    in.DisplayOrder,
		Active:          boolOr(in.Active, true),
		Available:       boolOr(in.Available, true),
		IsDefault:       boolOr(in.IsDefault, false),
	}
}

// Tag builds the entity a TagInput describes.
func (in TagInput) Tag() TagDefinition {
	return TagDefinition{
		Code:            in.Code,
		Text:            in.Text.Text(),
		IconName:        in.IconName,
		BackgroundColor: in.BackgroundColor,
		TextColor:       in.TextColor,
		TagType:         in.TagType,
		Active:          boolOr(in.Active, true),
		DisplayOrder:    in.DisplayOrder,
	}
}
