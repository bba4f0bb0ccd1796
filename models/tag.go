package models

import "time"

// TagType classifies tag definitions for grouping in the admin UI.
type TagType string

const (
	TagPortion TagType = "PORTION"
	TagSharing TagType = "SHARING"
	TagValue   TagType = "VALUE"
	TagSpecial TagType = "SPECIAL"
	TagDietary TagType = "DIETARY"
	TagPromo   TagType = "PROMO"
)

// TagDefinition is a process-wide badge catalog entry ("Porción abundante",
// "Para compartir"). Products reference it through ProductTag; it is never
// owned or cascaded by any product.
type TagDefinition struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	Code            string        `gorm:"uniqueIndex;not null" json:"code"`
	Text            LocalizedText `gorm:"embedded;embeddedPrefix:text_" json:"text"`
	IconName        string        `json:"iconName"`
	BackgroundColor string        `json:"backgroundColor"`
	TextColor       string        `json:"textColor"`
	TagType         TagType       `gorm:"not null" json:"tagType"`
	Active          bool          `gorm:"not null;default:true" json:"active"`
	DisplayOrder    int           `json:"displayOrder"`
	CreatedAt       time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

// ProductTag links a product to a tag definition with a per-product
// display order. Owned by the product side only.
type ProductTag struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	ProductID       uint          `gorm:"not null" json:"productId"`
	TagDefinitionID uint          `gorm:"not null" json:"tagDefinitionId"`
	Definition      TagDefinition `gorm:"foreignKey:TagDefinitionID" json:"definition"`
	DisplayOrder    int           `json:"displayOrder"`
}
