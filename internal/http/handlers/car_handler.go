package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tronexcars/internal/domain"
	applog "tronexcars/internal/log"
	"tronexcars/internal/services"
	"tronexcars/internal/validate"
)

type CarHandler struct {
	Catalog *services.CatalogService
}

// parseFilterSpec reads the optional predicates off the query string.
// Invalid values drop the predicate instead of failing the request, so
// browsing never blocks on a bad filter.
func parseFilterSpec(c *fiber.Ctx) services.FilterSpec {
	spec := services.FilterSpec{
		Make:     c.Query("make"),
		Model:    c.Query("model"),
		YearFrom: validate.YearFrom(c.Query("yearFrom")),
		FreeText: validate.Q(c.Query("q")),
	}
	if t := c.Query("type"); domain.ValidType(t) {
		spec.Type = t
	}
	if a := c.Query("availability"); domain.ValidAvailability(a) {
		spec.Availability = a
	}
	return spec
}

// GET /api/cars
// Returns the catalog newest first. Filter and sort query parameters are
// optional; without them this is the plain snapshot both views start from.
func (h *CarHandler) List(c *fiber.Ctx) error {
	cars, err := h.Catalog.ListCars()
	if err != nil {
		return svcError(c, "cars.list", err)
	}

	spec := parseFilterSpec(c)
	key := services.ParseSortKey(c.Query("sort"))
	cars = services.SortCars(services.Filter(cars, spec), key)

	return okJSON(c, cars)
}

// GET /api/cars/featured
func (h *CarHandler) Featured(c *fiber.Ctx) error {
	cars, err := h.Catalog.FeaturedCars()
	if err != nil {
		return svcError(c, "cars.featured", err)
	}
	return okJSON(c, cars)
}

// GET /api/cars/:id
func (h *CarHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id"})
		return failJSON(c, fiber.StatusNotFound, "Car not found")
	}
	car, err := h.Catalog.GetCar(id)
	if err != nil {
		return svcError(c, "cars.get", err)
	}
	return okJSON(c, car)
}
