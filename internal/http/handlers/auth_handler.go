package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "tronexcars/internal/log"
	"tronexcars/internal/services"
)

type AuthHandler struct {
	Auth *services.AuthService
}

// POST /api/admin/login
// Shared-secret check. Success mints the admin_sid session cookie the
// RequireAdmin middleware looks for.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body struct {
		Password string `json:"password" form:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return failJSON(c, fiber.StatusBadRequest, "Malformed request body")
	}

	sid, err := h.Auth.Login(body.Password)
	if err != nil {
		if errors.Is(err, services.ErrBadPassword) {
			applog.Security(c, "admin.login.fail", nil)
			// 200 with success=false, as the login page expects
			return c.JSON(fiber.Map{"success": false, "message": "Invalid password"})
		}
		return svcError(c, "admin.login", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "admin_sid",
		Value:    sid,
		HTTPOnly: true,
		SameSite: "Lax",
	})
	applog.Audit(c, "admin.login", nil)
	return c.JSON(fiber.Map{"success": true, "message": "Login successful"})
}

// POST /api/admin/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sid := c.Cookies("admin_sid"); sid != "" {
		_ = h.Auth.Logout(sid)
	}
	c.ClearCookie("admin_sid")
	return c.JSON(fiber.Map{"success": true, "message": "Logged out"})
}
