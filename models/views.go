package models

import "github.com/shopspring/decimal"

// Diner-facing view types. Everything here is already localized to one
// language and filtered to what the diner may order right now.

// MenuResponse is the full-menu aggregate behind GET /v1/menu.
type MenuResponse struct {
	RestaurantName   string         `json:"restaurantName"`
	Slogan           string         `json:"slogan"`
	Language         string         `json:"language"`
	Categories       []CategoryView `json:"categories"`
	FeaturedProducts []ProductView  `json:"featuredProducts"`
	CatchOfDay       []ProductView  `json:"catchOfDay"`
}

// CategoryView is a localized category. Products and ProductCount are only
// populated for detail views; summary views leave Products nil.
type CategoryView struct {
	ID           uint          `json:"id"`
	Code         string        `json:"code"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	IconURL      string        `json:"iconUrl"`
	ImageURL     string        `json:"imageUrl"`
	DisplayOrder int           `json:"displayOrder"`
	ProductCount int           `json:"productCount"`
	Products     []ProductView `json:"products,omitempty"`
}

// ProductView is a localized product with its purchasable options.
// PriceFrom is the minimum price among the listed options, absent when no
// option qualifies.
type ProductView struct {
	ID           uint             `json:"id"`
	Code         string           `json:"code"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	ImageURL     string           `json:"imageUrl"`
	CategoryCode string           `json:"categoryCode"`
	CategoryName string           `json:"categoryName"`
	DisplayOrder int              `json:"displayOrder"`
	Featured     bool             `json:"featured"`
	Recommended  bool             `json:"recommended"`
	CatchOfDay   bool             `json:"catchOfDay"`
	SpicyLevel   *int             `json:"spicyLevel,omitempty"`
	Allergens    string           `json:"allergens"`
	PriceFrom    *decimal.Decimal `json:"priceFrom,omitempty"`
	Options      []OptionView     `json:"options"`
	Tags         []TagView        `json:"tags"`
}

// OptionView is a localized product option with derived discount fields.
type OptionView struct {
	ID                 uint             `json:"id"`
	Name               string           `json:"name"`
	Description        string           `json:"description"`
	Price              decimal.Decimal  `json:"price"`
	OriginalPrice      *decimal.Decimal `json:"originalPrice,omitempty"`
	HasDiscount        bool             `json:"hasDiscount"`
	DiscountPercentage decimal.Decimal  `json:"discountPercentage"`
	OptionType         string           `json:"optionType"`
	ServesPeople       *int             `json:"servesPeople,omitempty"`
	SizeCode           string           `json:"sizeCode,omitempty"`
	PreparationCode    string           `json:"preparationCode,omitempty"`
	DisplayOrder       int              `json:"displayOrder"`
	IsDefault          bool             `json:"isDefault"`
	Available          bool             `json:"available"`
}

// TagView is a localized badge attached to a product.
type TagView struct {
	ID              uint   `json:"id"`
	Code            string `json:"code"`
	Text            string `json:"text"`
	IconName        string `json:"iconName"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	TagType         string `json:"tagType"`
}
