package routes

import (
	"errors"

	"cartamacho/services"

	"github.com/gofiber/fiber/v2"
)

// MenuHandler serves the public, unauthenticated menu endpoints.
type MenuHandler struct {
	menu *services.MenuService
}

func NewMenuHandler(menu *services.MenuService) *MenuHandler {
	return &MenuHandler{menu: menu}
}

func (h *MenuHandler) GetFullMenu(c *fiber.Ctx) error {
	menu, err := h.menu.GetFullMenu(c.Query("lang", "es"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(menu)
}

func (h *MenuHandler) GetProductsByCategory(c *fiber.Ctx) error {
	category, err := h.menu.GetProductsByCategory(c.Params("categoryCode"), c.Query("lang", "es"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(category)
}

func (h *MenuHandler) GetAvailableProducts(c *fiber.Ctx) error {
	products, err := h.menu.GetAvailableProducts(c.Query("lang", "es"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(products)
}

func (h *MenuHandler) GetFeaturedProducts(c *fiber.Ctx) error {
	products, err := h.menu.GetFeaturedProducts(c.Query("lang", "es"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(products)
}

func (h *MenuHandler) GetCatchOfDay(c *fiber.Ctx) error {
	products, err := h.menu.GetCatchOfDay(c.Query("lang", "es"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(products)
}

// serviceError maps service sentinels onto client statuses. Anything not
// recognized is a server-side failure.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrCodeExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
