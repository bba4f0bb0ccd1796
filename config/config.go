package config

import "os"

// Config holds all runtime settings. Everything comes from environment
// variables so the same binary can run locally and behind the QR deployment.
type Config struct {
	Port             string
	DBPath           string
	AdminUsername    string
	AdminPassword    string
	RestaurantName   string
	RestaurantSlogan string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "3000"),
		DBPath:           getEnv("DB_PATH", "carta.db"),
		AdminUsername:    getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:    getEnv("ADMIN_PASSWORD", "ElMacho2024!"),
		RestaurantName:   getEnv("RESTAURANT_NAME", "El Macho"),
		RestaurantSlogan: getEnv("RESTAURANT_SLOGAN", "Productos del Mar"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
