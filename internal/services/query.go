package services

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tronexcars/internal/domain"
)

// FilterSpec holds the optional, AND-combined predicates of the stock
// browser. A zero-valued field matches everything.
type FilterSpec struct {
	Make         string // exact, case-sensitive
	Model        string // case-insensitive substring
	Type         string // exact
	YearFrom     int    // inclusive minimum
	FreeText     string // case-insensitive substring over name/make/model
	Availability string // exact
}

func (f FilterSpec) matches(c domain.Car) bool {
	if f.Make != "" && c.Make != f.Make {
		return false
	}
	if f.Model != "" && !strings.Contains(strings.ToLower(c.Model), strings.ToLower(f.Model)) {
		return false
	}
	if f.Type != "" && c.Type != f.Type {
		return false
	}
	if f.YearFrom != 0 && c.Year < f.YearFrom {
		return false
	}
	if f.FreeText != "" {
		q := strings.ToLower(f.FreeText)
		if !strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Make), q) &&
			!strings.Contains(strings.ToLower(c.Model), q) {
			return false
		}
	}
	if f.Availability != "" && c.Availability != f.Availability {
		return false
	}
	return true
}

// Filter returns the subset of the snapshot satisfying every active
// predicate, preserving snapshot order. The snapshot is never mutated.
func Filter(snapshot []domain.Car, spec FilterSpec) []domain.Car {
	out := make([]domain.Car, 0, len(snapshot))
	for _, c := range snapshot {
		if spec.matches(c) {
			out = append(out, c)
		}
	}
	return out
}

type SortKey string

const (
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortName      SortKey = "name"
	SortNewest    SortKey = "newest"
)

// ParseSortKey maps a query value to a sort key, defaulting to newest for
// anything unrecognized.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceLow, SortPriceHigh, SortName:
		return SortKey(s)
	default:
		return SortNewest
	}
}

// SortCars returns a sorted copy of the snapshot. The sort is stable: ties
// under the key keep their snapshot order, so sorting twice with the same
// key is a no-op.
func SortCars(snapshot []domain.Car, key SortKey) []domain.Car {
	out := make([]domain.Car, len(snapshot))
	copy(out, snapshot)

	switch key {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortName:
		col := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].Name, out[j].Name) < 0
		})
	default: // newest; timestamps are fixed-width so string order is time order
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	}
	return out
}
