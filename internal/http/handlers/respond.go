package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "tronexcars/internal/log"
	"tronexcars/internal/services"
)

// The API keeps the envelope the front-end scripts already speak:
// {"success": bool, "data": ..., "message": ...}.

func okJSON(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func okMsg(c *fiber.Ctx, msg string, data any) error {
	return c.JSON(fiber.Map{"success": true, "message": msg, "data": data})
}

func failJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": msg})
}

// svcError maps the service error taxonomy onto HTTP statuses:
// ValidationError names the offending fields in the payload; NotFound and
// StoreUnavailable stay distinguishable so the UI can render each properly.
func svcError(c *fiber.Ctx, action string, err error) error {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		applog.Security(c, action+".validation", map[string]any{"fields": ve.Fields})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Please fill in all required fields",
			"fields":  ve.Fields,
		})
	case errors.Is(err, services.ErrNotFound):
		return failJSON(c, fiber.StatusNotFound, "Car not found")
	case errors.Is(err, services.ErrStoreUnavailable):
		applog.Error(c, action+".store", err, nil)
		return failJSON(c, fiber.StatusServiceUnavailable, "Catalog temporarily unavailable, please retry")
	default:
		applog.Error(c, action+".fail", err, nil)
		return failJSON(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
