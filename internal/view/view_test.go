package view_test

import (
	"reflect"
	"testing"

	"tronexcars/internal/domain"
	"tronexcars/internal/view"
)

func sampleCar() domain.Car {
	return domain.Car{
		ID:            "c1",
		Name:          "Toyota Camry Hybrid",
		Make:          "Toyota",
		Model:         "Camry",
		Year:          2024,
		Price:         28500,
		Mileage:       15000,
		Transmission:  "Automatic",
		Badge:         "New Arrival",
		Availability:  "Available",
		GradientColor: domain.DefaultGradient,
		Description:   "Premium hybrid sedan.",
	}
}

func TestCardFormatting(t *testing.T) {
	card := view.CardFromCar(sampleCar())

	if card.PriceDisplay != "$28,500" {
		t.Fatalf("price: got %q", card.PriceDisplay)
	}
	if card.MileageDisplay != "15,000 km" {
		t.Fatalf("mileage: got %q", card.MileageDisplay)
	}
	if card.MakeModel != "Toyota Camry" {
		t.Fatalf("make/model: got %q", card.MakeModel)
	}
	if card.Badge != "New Arrival" {
		t.Fatalf("badge must pass through verbatim, got %q", card.Badge)
	}
	if card.Gradient != domain.DefaultGradient {
		t.Fatalf("gradient: got %q", card.Gradient)
	}
}

func TestStatusLabels(t *testing.T) {
	cases := []struct {
		availability, label, class string
		purchasable                bool
	}{
		{"Available", "✓ Available", "available", true},
		{"Reserved", "⏳ Reserved", "reserved", false},
		{"Sold", "✕ Sold", "sold", false},
	}
	for _, tc := range cases {
		c := sampleCar()
		c.Availability = tc.availability
		card := view.CardFromCar(c)
		if card.StatusLabel != tc.label || card.StatusClass != tc.class {
			t.Fatalf("%s: got label=%q class=%q", tc.availability, card.StatusLabel, card.StatusClass)
		}
		if card.Purchasable != tc.purchasable {
			t.Fatalf("%s: purchasable=%v", tc.availability, card.Purchasable)
		}
	}
}

func TestCardIsPure(t *testing.T) {
	c := sampleCar()
	a := view.CardFromCar(c)
	b := view.CardFromCar(c)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same listing must always yield the same card")
	}
}

func TestCardsPreserveOrder(t *testing.T) {
	cars := []domain.Car{sampleCar(), sampleCar()}
	cars[1].ID = "c2"
	cards := view.Cards(cars)
	if len(cards) != 2 || cards[0].ID != "c1" || cards[1].ID != "c2" {
		t.Fatalf("order not preserved: %+v", cards)
	}
}
