package main

import (
	"log"
	"log/slog"
	"os"

	"cartamacho/config"
	"cartamacho/db"
	"cartamacho/middleware"
	"cartamacho/repositories"
	"cartamacho/routes"
	"cartamacho/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	slogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	database, err := db.Init(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}

	categories := repositories.NewCategoryRepository(database)
	products := repositories.NewProductRepository(database)
	options := repositories.NewOptionRepository(database)
	tags := repositories.NewTagRepository(database)

	cache := services.NewMenuCache()
	menuService := services.NewMenuService(categories, products, cache, cfg.RestaurantName, cfg.RestaurantSlogan, slogger)
	adminService := services.NewAdminService(categories, products, options, tags, cache, slogger)

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app,
		routes.NewMenuHandler(menuService),
		routes.NewAdminHandler(adminService),
		routes.NewWaiterHandler(slogger),
		middleware.AdminAuth(cfg),
	)

	// Start server
	log.Fatal(app.Listen(":" + cfg.Port))
}
