// Package view maps listings into render-ready data for the stock cards and
// the admin table. Pure functions of the listing; no I/O.
package view

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"tronexcars/internal/domain"
)

// Card is the render-ready projection of one listing.
type Card struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	MakeModel      string `json:"makeModel"`
	Year           int    `json:"year"`
	PriceDisplay   string `json:"priceDisplay"`
	MileageDisplay string `json:"mileageDisplay"`
	Transmission   string `json:"transmission"`
	StatusLabel    string `json:"statusLabel"`
	StatusClass    string `json:"statusClass"`
	Badge          string `json:"badge"`
	Gradient       string `json:"gradient"`
	Purchasable    bool   `json:"purchasable"`
	Description    string `json:"description"`
}

// StatusLabel returns the human label and css class for an availability
// status. Fixed strings; the stock page styles hang off the class.
func StatusLabel(availability string) (label, class string) {
	switch availability {
	case domain.AvailabilityReserved:
		return "⏳ Reserved", "reserved"
	case domain.AvailabilitySold:
		return "✕ Sold", "sold"
	default:
		return "✓ Available", "available"
	}
}

func CardFromCar(c domain.Car) Card {
	label, class := StatusLabel(c.Availability)
	return Card{
		ID:             c.ID,
		Name:           c.Name,
		MakeModel:      c.Make + " " + c.Model,
		Year:           c.Year,
		PriceDisplay:   "$" + humanize.Commaf(c.Price),
		MileageDisplay: fmt.Sprintf("%s km", humanize.Comma(int64(c.Mileage))),
		Transmission:   c.Transmission,
		StatusLabel:    label,
		StatusClass:    class,
		Badge:          c.Badge,
		Gradient:       c.GradientColor,
		Purchasable:    c.Purchasable(),
		Description:    c.Description,
	}
}

// Cards maps a whole snapshot, preserving order.
func Cards(cars []domain.Car) []Card {
	out := make([]Card, len(cars))
	for i, c := range cars {
		out[i] = CardFromCar(c)
	}
	return out
}
