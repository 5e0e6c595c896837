package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "tronexcars/internal/log"
	"tronexcars/internal/services"
)

// RequireAdmin gates the admin API behind the shared-secret session cookie.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("admin_sid")
		if !auth.IsAdmin(sid) {
			applog.Security(c, "access.denied.admin", nil)
			return failJSON(c, fiber.StatusUnauthorized, "Admin login required")
		}
		return c.Next()
	}
}
