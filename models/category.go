package models

import "time"

// Category groups products on the menu (e.g. MENU_DEL_MAR, PESCADOS, BAR).
// It owns its products: deleting a category removes them.
type Category struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Code         string        `gorm:"uniqueIndex;not null" json:"code"`
	Name         LocalizedText `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	Description  LocalizedText `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	IconURL      string        `json:"iconUrl"`
	ImageURL     string        `json:"imageUrl"`
	DisplayOrder int           `gorm:"not null" json:"displayOrder"`
	Active       bool          `gorm:"not null;default:true" json:"active"`
	Products     []Product     `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
	CreatedAt    time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}
