package db

import (
	"log"
	"os"
	"path/filepath"

	"cartamacho/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Init opens (creating if needed) the sqlite catalog at dbPath, migrates
// the schema and seeds the official menu when the catalog is empty.
func Init(dbPath string) (*gorm.DB, error) {
	// Ensure the directory exists (create if it doesn't)
	dir := filepath.Dir(dbPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	database, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	log.Println("Database connected successfully at", dbPath)

	if err := Migrate(database); err != nil {
		return nil, err
	}
	if err := SeedIfEmpty(database); err != nil {
		return nil, err
	}
	return database, nil
}

// Migrate creates or updates the catalog schema.
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.Category{}, &models.Product{}, &models.ProductOption{},
		&models.TagDefinition{}, &models.ProductTag{},
	)
}
