package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OptionType classifies what a product option varies on.
type OptionType string

const (
	OptionSize        OptionType = "SIZE"
	OptionQuantity    OptionType = "QUANTITY"
	OptionPreparation OptionType = "PREPARATION"
	OptionServing     OptionType = "SERVING"
	OptionCombo       OptionType = "COMBO"
)

// ProductOption is a purchasable variant of a product (size, preparation,
// serving). It carries the only price field in the system.
type ProductOption struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	ProductID       uint             `gorm:"not null" json:"productId"`
	Name            LocalizedText    `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	Description     LocalizedText    `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	Price           decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"price"`
	OriginalPrice   *decimal.Decimal `gorm:"type:decimal(10,2)" json:"originalPrice,omitempty"`
	OptionType      OptionType       `gorm:"not null" json:"optionType"`
	ServesPeople    *int             `json:"servesPeople,omitempty"`
	SizeCode        string           `json:"sizeCode,omitempty"`
	PreparationCode string           `json:"preparationCode,omitempty"`
	DisplayOrder    int              `gorm:"not null" json:"displayOrder"`
	Active          bool             `gorm:"not null;default:true" json:"active"`
	Available       bool             `gorm:"not null;default:true" json:"available"`
	IsDefault       bool             `gorm:"not null;default:false" json:"isDefault"`
	CreatedAt       time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

// HasDiscount reports whether the option is shown as discounted: an
// original price exists and is strictly greater than the current price.
func (o ProductOption) HasDiscount() bool {
	return o.OriginalPrice != nil && o.OriginalPrice.GreaterThan(o.Price)
}

// DiscountPercentage returns (original-price)/original*100 rounded
// half-up to two decimals, or zero when there is no discount.
func (o ProductOption) DiscountPercentage() decimal.Decimal {
	if !o.HasDiscount() {
		return decimal.Zero
	}
	return o.OriginalPrice.Sub(o.Price).
		Div(*o.OriginalPrice).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}
