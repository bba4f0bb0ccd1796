package routes

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

// newValidator teaches the validator to treat decimal amounts as numbers
// so price rules (gt=0) work on request bodies.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// SetupRoutes mounts the public menu API, the waiter endpoints and the
// Basic-auth protected admin API.
func SetupRoutes(app *fiber.App, menu *MenuHandler, admin *AdminHandler, waiter *WaiterHandler, adminAuth fiber.Handler) {
	v1 := app.Group("/v1")

	// Public menu (reachable straight from the QR code).
	m := v1.Group("/menu")
	m.Get("/", menu.GetFullMenu)
	m.Get("/categories/:categoryCode", menu.GetProductsByCategory)
	m.Get("/products/available", menu.GetAvailableProducts)
	m.Get("/featured", menu.GetFeaturedProducts)
	m.Get("/catch-of-day", menu.GetCatchOfDay)

	// Waiter call (public, stateless).
	w := v1.Group("/waiter")
	w.Post("/call", waiter.Call)
	w.Get("/status", waiter.Status)
	app.Get("/ws/waiter", waiter.Socket())

	// Admin (HTTP Basic).
	a := v1.Group("/admin", adminAuth)

	a.Get("/categories", admin.GetAllCategories)
	a.Get("/categories/:id", admin.GetCategoryByID)
	a.Post("/categories", admin.CreateCategory)
	a.Put("/categories/:id", admin.UpdateCategory)
	a.Patch("/categories/:id/toggle-active", admin.ToggleCategoryActive)

	a.Get("/products", admin.GetAllProducts)
	a.Get("/products/category/:categoryId", admin.GetProductsByCategory)
	a.Get("/products/:id", admin.GetProductByID)
	a.Post("/products", admin.CreateProduct)
	a.Put("/products/:id", admin.UpdateProduct)
	a.Patch("/products/:id/toggle-available", admin.ToggleProductAvailable)
	a.Patch("/products/:id/toggle-featured", admin.ToggleProductFeatured)
	a.Patch("/products/:id/toggle-catch-of-day", admin.ToggleCatchOfDay)

	a.Patch("/prices/quick-update", admin.QuickUpdatePrice)
	a.Patch("/prices/bulk-update", admin.BulkUpdatePrices)
	a.Patch("/options/:optionId/toggle-available", admin.ToggleOptionAvailable)

	a.Get("/tags", admin.GetAllTags)
	a.Post("/tags", admin.CreateTag)
	a.Put("/tags/:id", admin.UpdateTag)
	a.Patch("/tags/:id/toggle-active", admin.ToggleTagActive)
}
