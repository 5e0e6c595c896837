package validate

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// Required trims a mandatory text field; empty after trimming is a failure.
func Required(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Year parses a model year: a positive integer.
func Year(n json.Number) (int, bool) {
	y, err := strconv.Atoi(strings.TrimSpace(n.String()))
	return y, err == nil && y > 0
}

// Price parses a non-negative amount.
func Price(n json.Number) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(n.String()), 64)
	return f, err == nil && f >= 0 && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Mileage parses a non-negative odometer reading.
func Mileage(n json.Number) (int, bool) {
	m, err := strconv.Atoi(strings.TrimSpace(n.String()))
	return m, err == nil && m >= 0
}

// YearFrom parses an optional minimum-year filter. Unparsable values mean
// the predicate is simply not applied, never an error.
func YearFrom(s string) int {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || y <= 0 {
		return 0
	}
	return y
}

// ID validates a listing identifier.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Q trims a quick-search term and caps its length.
func Q(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}
