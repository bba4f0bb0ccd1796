package models

import "time"

// Product is a menu item. It never carries a price: every price lives on a
// ProductOption. Visibility is controlled by two flags with different
// lifetimes: Active is the long-lived soft-delete flag, Available is the
// daily 86'd state.
type Product struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Code         string          `gorm:"uniqueIndex;not null" json:"code"`
	Name         LocalizedText   `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	Description  LocalizedText   `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	ImageURL     string          `json:"imageUrl"`
	CategoryID   uint            `gorm:"not null" json:"categoryId"`
	Category     Category        `gorm:"foreignKey:CategoryID" json:"-"`
	DisplayOrder int             `gorm:"not null" json:"displayOrder"`
	Active       bool            `gorm:"not null;default:true" json:"active"`
	Available    bool            `gorm:"not null;default:true" json:"available"`
	Featured     bool            `gorm:"not null;default:false" json:"featured"`
	Recommended  bool            `gorm:"not null;default:false" json:"recommended"`
	CatchOfDay   bool            `gorm:"not null;default:false" json:"catchOfDay"`
	SpicyLevel   *int            `json:"spicyLevel,omitempty"`
	Allergens    LocalizedText   `gorm:"embedded;embeddedPrefix:allergens_" json:"allergens"`
	Options      []ProductOption `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
	Tags         []ProductTag    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
