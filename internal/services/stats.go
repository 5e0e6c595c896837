package services

import (
	"sort"

	"tronexcars/internal/domain"
)

// Stats are the dashboard counters. Always recomputed from the snapshot,
// never maintained incrementally.
type Stats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Reserved  int `json:"reserved"`
	Sold      int `json:"sold"`
}

func Summarize(snapshot []domain.Car) Stats {
	s := Stats{Total: len(snapshot)}
	for _, c := range snapshot {
		switch c.Availability {
		case domain.AvailabilityAvailable:
			s.Available++
		case domain.AvailabilityReserved:
			s.Reserved++
		case domain.AvailabilitySold:
			s.Sold++
		}
	}
	return s
}

type MakeCount struct {
	Make  string `json:"make"`
	Count int    `json:"count"`
}

// MakeCounts groups the snapshot by make (case-sensitive) for the sidebar
// directory, sorted lexicographically by make name.
func MakeCounts(snapshot []domain.Car) []MakeCount {
	counts := map[string]int{}
	for _, c := range snapshot {
		counts[c.Make]++
	}
	out := make([]MakeCount, 0, len(counts))
	for m, n := range counts {
		out = append(out, MakeCount{Make: m, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Make < out[j].Make })
	return out
}
