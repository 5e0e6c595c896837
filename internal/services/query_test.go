package services_test

import (
	"reflect"
	"testing"

	"tronexcars/internal/domain"
	"tronexcars/internal/services"
)

func snapshot() []domain.Car {
	return []domain.Car{
		{ID: "c1", Name: "Toyota Camry Hybrid", Make: "Toyota", Model: "Camry", Year: 2024,
			Price: 28500, Type: "Sedan", Availability: "Available",
			CreatedAt: "2024-03-04T10:00:00.000000000Z"},
		{ID: "c2", Name: "Honda CR-V SUV", Make: "Honda", Model: "CR-V", Year: 2023,
			Price: 32000, Type: "SUV", Availability: "Available",
			CreatedAt: "2024-03-03T10:00:00.000000000Z"},
		{ID: "c3", Name: "Ford F-150 Pickup", Make: "Ford", Model: "F-150", Year: 2023,
			Price: 38000, Type: "Truck", Availability: "Reserved",
			CreatedAt: "2024-03-02T10:00:00.000000000Z"},
		{ID: "c4", Name: "Mazda CX-5", Make: "Mazda", Model: "CX-5", Year: 2024,
			Price: 30000, Type: "SUV", Availability: "Sold",
			CreatedAt: "2024-03-01T10:00:00.000000000Z"},
	}
}

func ids(cars []domain.Car) []string {
	out := make([]string, len(cars))
	for i, c := range cars {
		out[i] = c.ID
	}
	return out
}

func TestFilterYearFrom(t *testing.T) {
	s := snapshot()

	got := services.Filter(s, services.FilterSpec{YearFrom: 2023})
	if len(got) != 4 {
		t.Fatalf("yearFrom=2023: want 4, got %d", len(got))
	}
	got = services.Filter(s, services.FilterSpec{YearFrom: 2024})
	if !reflect.DeepEqual(ids(got), []string{"c1", "c4"}) {
		t.Fatalf("yearFrom=2024: got %v", ids(got))
	}
	got = services.Filter(s, services.FilterSpec{YearFrom: 2025})
	if len(got) != 0 {
		t.Fatalf("yearFrom=2025: want empty, got %v", ids(got))
	}
}

func TestFilterPredicatesConjunctive(t *testing.T) {
	s := snapshot()

	// make is exact and case-sensitive
	if got := services.Filter(s, services.FilterSpec{Make: "toyota"}); len(got) != 0 {
		t.Fatalf("lowercase make should not match, got %v", ids(got))
	}
	if got := services.Filter(s, services.FilterSpec{Make: "Toyota"}); !reflect.DeepEqual(ids(got), []string{"c1"}) {
		t.Fatalf("make=Toyota: got %v", ids(got))
	}

	// model is a case-insensitive substring
	if got := services.Filter(s, services.FilterSpec{Model: "cr"}); !reflect.DeepEqual(ids(got), []string{"c2"}) {
		t.Fatalf("model=cr: got %v", ids(got))
	}

	// AND-combined
	got := services.Filter(s, services.FilterSpec{Type: "SUV", YearFrom: 2024})
	if !reflect.DeepEqual(ids(got), []string{"c4"}) {
		t.Fatalf("type+yearFrom: got %v", ids(got))
	}

	// availability exact
	got = services.Filter(s, services.FilterSpec{Availability: "Reserved"})
	if !reflect.DeepEqual(ids(got), []string{"c3"}) {
		t.Fatalf("availability=Reserved: got %v", ids(got))
	}
}

func TestFilterFreeText(t *testing.T) {
	s := snapshot()

	// matches name OR make OR model, case-insensitive
	if got := services.Filter(s, services.FilterSpec{FreeText: "pickup"}); !reflect.DeepEqual(ids(got), []string{"c3"}) {
		t.Fatalf("freeText=pickup: got %v", ids(got))
	}
	if got := services.Filter(s, services.FilterSpec{FreeText: "honda"}); !reflect.DeepEqual(ids(got), []string{"c2"}) {
		t.Fatalf("freeText=honda: got %v", ids(got))
	}
	if got := services.Filter(s, services.FilterSpec{FreeText: "zzz"}); len(got) != 0 {
		t.Fatalf("freeText=zzz: want empty, got %v", ids(got))
	}
}

func TestFilterEmptySpecReturnsAll(t *testing.T) {
	s := snapshot()
	got := services.Filter(s, services.FilterSpec{})
	if !reflect.DeepEqual(ids(got), ids(s)) {
		t.Fatalf("empty spec must return snapshot order, got %v", ids(got))
	}
}

func TestSortPrice(t *testing.T) {
	s := []domain.Car{
		{ID: "a", Price: 28500},
		{ID: "b", Price: 38000},
	}
	low := services.SortCars(s, services.SortPriceLow)
	if !reflect.DeepEqual(ids(low), []string{"a", "b"}) {
		t.Fatalf("price-low: got %v", ids(low))
	}
	high := services.SortCars(s, services.SortPriceHigh)
	if !reflect.DeepEqual(ids(high), []string{"b", "a"}) {
		t.Fatalf("price-high: got %v", ids(high))
	}
}

func TestSortName(t *testing.T) {
	s := []domain.Car{
		{ID: "a", Name: "Nissan Altima"},
		{ID: "b", Name: "BMW 3 Series"},
		{ID: "c", Name: "bmw 1 Series"},
	}
	got := services.SortCars(s, services.SortName)
	// locale-aware: case does not dominate the ordering
	if got[len(got)-1].ID != "a" {
		t.Fatalf("name sort: Nissan should come last, got %v", ids(got))
	}
}

func TestSortNewestDefault(t *testing.T) {
	s := snapshot()
	// snapshot is already newest first; shuffle it
	shuffled := []domain.Car{s[2], s[0], s[3], s[1]}
	got := services.SortCars(shuffled, services.ParseSortKey("bogus"))
	if !reflect.DeepEqual(ids(got), []string{"c1", "c2", "c3", "c4"}) {
		t.Fatalf("newest: got %v", ids(got))
	}
}

func TestSortStableAndIdempotent(t *testing.T) {
	s := []domain.Car{
		{ID: "a", Price: 30000},
		{ID: "b", Price: 28500},
		{ID: "c", Price: 30000},
		{ID: "d", Price: 30000},
	}
	once := services.SortCars(s, services.SortPriceLow)
	if !reflect.DeepEqual(ids(once), []string{"b", "a", "c", "d"}) {
		t.Fatalf("ties must keep snapshot order, got %v", ids(once))
	}
	twice := services.SortCars(once, services.SortPriceLow)
	if !reflect.DeepEqual(ids(twice), ids(once)) {
		t.Fatalf("sort not idempotent: %v vs %v", ids(twice), ids(once))
	}
}

func TestSortDoesNotMutateSnapshot(t *testing.T) {
	s := snapshot()
	before := ids(s)
	_ = services.SortCars(s, services.SortPriceHigh)
	if !reflect.DeepEqual(ids(s), before) {
		t.Fatalf("snapshot mutated: %v", ids(s))
	}
}
