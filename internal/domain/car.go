package domain

import "time"

// TimeLayout is the timestamp format stored in sqlite. Fixed-width UTC so
// lexicographic order on the stored strings matches chronological order.
const TimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Now returns the current time formatted for storage.
func Now() string {
	return time.Now().UTC().Format(TimeLayout)
}

type Car struct {
	ID            string  `db:"id" json:"_id"`
	CatalogCode   string  `db:"catalog_code" json:"carId"`
	Name          string  `db:"name" json:"name"`
	Make          string  `db:"make" json:"make"`
	Model         string  `db:"model" json:"model"`
	Year          int     `db:"year" json:"year"`
	Price         float64 `db:"price" json:"price"`
	Type          string  `db:"type" json:"type"`                 // Sedan | SUV | Truck | Van | Coupe | Hatchback
	Mileage       int     `db:"mileage" json:"mileage"`           // km
	Transmission  string  `db:"transmission" json:"transmission"` // Automatic | Manual
	Color         string  `db:"color" json:"color"`
	Description   string  `db:"description" json:"description"`
	Badge         string  `db:"badge" json:"badge"`               // Featured | New Arrival | Hot Deal
	Availability  string  `db:"availability" json:"availability"` // Available | Reserved | Sold
	GradientColor string  `db:"gradient_color" json:"gradientColor"`
	CreatedAt     string  `db:"created_at" json:"createdAt"`
	UpdatedAt     string  `db:"updated_at" json:"updatedAt"`
}

// Purchasable reports whether the listing can be ordered. Availability is
// the single source of truth; nothing else may override it.
func (c Car) Purchasable() bool { return c.Availability == AvailabilityAvailable }

// Enumerated value sets with their defaults. Defaulting is applied by the
// catalog service during validation, never by the store.
const (
	TypeSedan     = "Sedan"
	TypeSUV       = "SUV"
	TypeTruck     = "Truck"
	TypeVan       = "Van"
	TypeCoupe     = "Coupe"
	TypeHatchback = "Hatchback"

	TransmissionAutomatic = "Automatic"
	TransmissionManual    = "Manual"

	BadgeFeatured   = "Featured"
	BadgeNewArrival = "New Arrival"
	BadgeHotDeal    = "Hot Deal"

	AvailabilityAvailable = "Available"
	AvailabilityReserved  = "Reserved"
	AvailabilitySold      = "Sold"

	DefaultType         = TypeSedan
	DefaultTransmission = TransmissionAutomatic
	DefaultBadge        = BadgeFeatured
	DefaultAvailability = AvailabilityAvailable
	DefaultGradient     = "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"
)

var (
	CarTypes       = []string{TypeSedan, TypeSUV, TypeTruck, TypeVan, TypeCoupe, TypeHatchback}
	Transmissions  = []string{TransmissionAutomatic, TransmissionManual}
	Badges         = []string{BadgeFeatured, BadgeNewArrival, BadgeHotDeal}
	Availabilities = []string{AvailabilityAvailable, AvailabilityReserved, AvailabilitySold}
)

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func ValidType(v string) bool         { return contains(CarTypes, v) }
func ValidTransmission(v string) bool { return contains(Transmissions, v) }
func ValidBadge(v string) bool        { return contains(Badges, v) }
func ValidAvailability(v string) bool { return contains(Availabilities, v) }
