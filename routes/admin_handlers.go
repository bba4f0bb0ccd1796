package routes

import (
	"strconv"

	"cartamacho/models"
	"cartamacho/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves the authenticated catalog-management endpoints.
// Admin responses always carry both language fields.
type AdminHandler struct {
	admin *services.AdminService
}

func NewAdminHandler(admin *services.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

// parseBody decodes and validates a request body in one step, so invalid
// requests never reach the service layer.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return badRequest(c, "Failed to parse request body")
	}
	if err := validate.Struct(out); err != nil {
		return badRequest(c, err.Error())
	}
	return nil
}

// ---------- categories ----------

func (h *AdminHandler) GetAllCategories(c *fiber.Ctx) error {
	categories, err := h.admin.GetAllCategories()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(categories)
}

func (h *AdminHandler) GetCategoryByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid category id")
	}
	category, err := h.admin.GetCategoryByID(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(category)
}

func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	var in models.CategoryInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	category, err := h.admin.CreateCategory(in)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *AdminHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid category id")
	}
	var in models.CategoryInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	category, err := h.admin.UpdateCategory(id, in)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(category)
}

func (h *AdminHandler) ToggleCategoryActive(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid category id")
	}
	var body models.ToggleActive
	if err := parseBody(c, &body); err != nil {
		return err
	}
	if err := h.admin.ToggleCategoryActive(id, *body.Active); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// ---------- products ----------

func (h *AdminHandler) GetAllProducts(c *fiber.Ctx) error {
	products, err := h.admin.GetAllProducts()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(products)
}

func (h *AdminHandler) GetProductsByCategory(c *fiber.Ctx) error {
	categoryID, err := paramID(c, "categoryId")
	if err != nil {
		return badRequest(c, "Invalid category id")
	}
	products, err := h.admin.GetProductsByCategory(categoryID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(products)
}

func (h *AdminHandler) GetProductByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product id")
	}
	product, err := h.admin.GetProductByID(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(product)
}

func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var in models.ProductInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	product, err := h.admin.CreateProduct(in)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product id")
	}
	var in models.ProductInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	product, err := h.admin.UpdateProduct(id, in)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(product)
}

func (h *AdminHandler) ToggleProductAvailable(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product id")
	}
	var body models.ToggleAvailable
	if err := parseBody(c, &body); err != nil {
		return err
	}
	if err := h.admin.ToggleProductAvailable(id, *body.Available); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *AdminHandler) ToggleProductFeatured(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product id")
	}
	var body models.ToggleFeatured
	if err := parseBody(c, &body); err != nil {
		return err
	}
	if err := h.admin.ToggleProductFeatured(id, *body.Featured); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *AdminHandler) ToggleCatchOfDay(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product id")
	}
	var body models.ToggleCatchOfDay
	if err := parseBody(c, &body); err != nil {
		return err
	}
	if err := h.admin.ToggleCatchOfDay(id, *body.CatchOfDay); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// ---------- pricing ----------

func (h *AdminHandler) QuickUpdatePrice(c *fiber.Ctx) error {
	var update models.QuickPriceUpdate
	if err := parseBody(c, &update); err != nil {
		return err
	}
	if err := h.admin.QuickUpdatePrice(update); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *AdminHandler) BulkUpdatePrices(c *fiber.Ctx) error {
	var updates []models.QuickPriceUpdate
	if err := c.BodyParser(&updates); err != nil {
		return badRequest(c, "Failed to parse request body")
	}
	if len(updates) == 0 {
		return badRequest(c, "At least one price update is required")
	}
	for _, update := range updates {
		if err := validate.Struct(update); err != nil {
			return badRequest(c, err.Error())
		}
	}
	if err := h.admin.BulkUpdatePrices(updates); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "updated": len(updates)})
}

func (h *AdminHandler) ToggleOptionAvailable(c *fiber.Ctx) error {
	optionID, err := paramID(c, "optionId")
	if err != nil {
		return badRequest(c, "Invalid option id")
	}
	var body models.ToggleAvailable
	if err := parseBody(c, &body); err != nil {
		return err
	}
	if err := h.admin.ToggleOptionAvailable(optionID, *body.Available); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// ---------- tags ----------

func (h *AdminHandler) GetAllTags(c *fiber.Ctx) error {
	tags, err := h.admin.GetAllTags()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(tags)
}

func (h *AdminHandler) CreateTag(c *fiber.Ctx) error {
	var in models.TagInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	tag, err := h.admin.CreateTag(in)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tag)
}

func (h *AdminHandler) UpdateTag(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid tag id")
	}
	var in models.TagInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	tag, err := h.admin.UpdateTag(id, in)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(tag)
}

func (h *AdminHandler) ToggleTagActive(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid tag id")
	}
	var body models.ToggleActive
	if err := parseBody(c, &body); err != nil {
		return err
	}
	if err := h.admin.ToggleTagActive(id, *body.Active); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
