package middleware

import (
	"cartamacho/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
)

// AdminAuth protects the admin surface with HTTP Basic auth against the
// single environment-configured admin identity.
func AdminAuth(cfg *config.Config) fiber.Handler {
	return basicauth.New(basicauth.Config{
		Users: map[string]string{
			cfg.AdminUsername: cfg.AdminPassword,
		},
		Realm: "Restricted",
		Unauthorized: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid admin credentials",
			})
		},
	})
}
