package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "tronexcars/internal/log"
	"tronexcars/internal/services"
	"tronexcars/internal/validate"
)

type AdminHandler struct {
	Catalog *services.CatalogService
}

// POST /api/admin/cars
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	var in services.CarInput
	if err := c.BodyParser(&in); err != nil {
		applog.Security(c, "admin.cars.create.badbody", map[string]any{"err": err.Error()})
		return failJSON(c, fiber.StatusBadRequest, "Malformed request body")
	}
	car, err := h.Catalog.CreateCar(in)
	if err != nil {
		return svcError(c, "admin.cars.create", err)
	}
	applog.Audit(c, "admin.cars.create", map[string]any{"car_id": car.ID})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Car added successfully",
		"data":    car,
	})
}

// PUT /api/admin/cars/:id
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return failJSON(c, fiber.StatusNotFound, "Car not found")
	}
	var in services.CarInput
	if err := c.BodyParser(&in); err != nil {
		applog.Security(c, "admin.cars.update.badbody", map[string]any{"err": err.Error()})
		return failJSON(c, fiber.StatusBadRequest, "Malformed request body")
	}
	car, err := h.Catalog.UpdateCar(id, in)
	if err != nil {
		return svcError(c, "admin.cars.update", err)
	}
	applog.Audit(c, "admin.cars.update", map[string]any{"car_id": car.ID})
	return okMsg(c, "Car updated successfully", car)
}

// DELETE /api/admin/cars/:id
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return failJSON(c, fiber.StatusNotFound, "Car not found")
	}
	car, err := h.Catalog.DeleteCar(id)
	if err != nil {
		return svcError(c, "admin.cars.delete", err)
	}
	applog.Audit(c, "admin.cars.delete", map[string]any{"car_id": car.ID, "name": car.Name})
	return okMsg(c, "Car deleted successfully", car)
}

// GET /api/admin/stats
// Aggregates recomputed from the current snapshot on every call.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	cars, err := h.Catalog.ListCars()
	if err != nil {
		return svcError(c, "admin.stats", err)
	}
	return okJSON(c, fiber.Map{
		"counts": services.Summarize(cars),
		"makes":  services.MakeCounts(cars),
	})
}
