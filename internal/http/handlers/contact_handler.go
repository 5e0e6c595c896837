package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "tronexcars/internal/log"
	"tronexcars/internal/validate"
)

type ContactHandler struct{}

// POST /api/contact
// The inquiry form has no persistence; it validates and acknowledges.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var body struct {
		Name    string `json:"name" form:"name"`
		Email   string `json:"email" form:"email"`
		Phone   string `json:"phone" form:"phone"`
		Message string `json:"message" form:"message"`
	}
	if err := c.BodyParser(&body); err != nil {
		return failJSON(c, fiber.StatusBadRequest, "Malformed request body")
	}

	name, okName := validate.Required(body.Name)
	email, okEmail := validate.Email(body.Email)
	msg, okBody := validate.Required(body.Message)
	if !okName || !okEmail || !okBody {
		return failJSON(c, fiber.StatusBadRequest, "Please fill in all required fields")
	}

	applog.Info(c, "contact.submit", map[string]any{"name": name, "email": email, "len": len(msg)})
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Thank you for your inquiry! We will get back to you soon.",
	})
}
