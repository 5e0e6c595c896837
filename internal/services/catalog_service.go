package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tronexcars/internal/domain"
	"tronexcars/internal/repos"
	"tronexcars/internal/validate"
)

// CarInput is the flat field set accepted at the boundary. Numeric fields
// arrive as json.Number so both form posts and JSON bodies parse.
type CarInput struct {
	Name          string      `json:"name" form:"name"`
	Make          string      `json:"make" form:"make"`
	Model         string      `json:"model" form:"model"`
	Year          json.Number `json:"year" form:"year"`
	Price         json.Number `json:"price" form:"price"`
	Type          string      `json:"type" form:"type"`
	Mileage       json.Number `json:"mileage" form:"mileage"`
	Transmission  string      `json:"transmission" form:"transmission"`
	Color         string      `json:"color" form:"color"`
	Description   string      `json:"description" form:"description"`
	Badge         string      `json:"badge" form:"badge"`
	Availability  string      `json:"availability" form:"availability"`
	GradientColor string      `json:"gradientColor" form:"gradientColor"`
}

type CatalogService struct {
	Cars *repos.CarRepo
}

func NewCatalogService(cars *repos.CarRepo) *CatalogService {
	return &CatalogService{Cars: cars}
}

// checked holds a validated input with numbers parsed and enum defaults
// applied. Produced only when validation passes in full.
type checked struct {
	name, make, model, color, descr     string
	year, mileage                       int
	price                               float64
	typ, transmission, badge, avail, gr string
}

func check(in CarInput) (checked, error) {
	var bad []string
	var out checked
	var ok bool

	if out.name, ok = validate.Required(in.Name); !ok {
		bad = append(bad, "name")
	}
	if out.make, ok = validate.Required(in.Make); !ok {
		bad = append(bad, "make")
	}
	if out.model, ok = validate.Required(in.Model); !ok {
		bad = append(bad, "model")
	}
	if out.year, ok = validate.Year(in.Year); !ok {
		bad = append(bad, "year")
	}
	if out.price, ok = validate.Price(in.Price); !ok {
		bad = append(bad, "price")
	}
	if out.mileage, ok = validate.Mileage(in.Mileage); !ok {
		bad = append(bad, "mileage")
	}
	if out.color, ok = validate.Required(in.Color); !ok {
		bad = append(bad, "color")
	}
	if out.descr, ok = validate.Required(in.Description); !ok {
		bad = append(bad, "description")
	}

	// Enums: empty means "use the default"; a supplied value outside the
	// set is a rejection, not a silent fallback.
	out.typ = domain.DefaultType
	if in.Type != "" {
		if !domain.ValidType(in.Type) {
			bad = append(bad, "type")
		} else {
			out.typ = in.Type
		}
	}
	out.transmission = domain.DefaultTransmission
	if in.Transmission != "" {
		if !domain.ValidTransmission(in.Transmission) {
			bad = append(bad, "transmission")
		} else {
			out.transmission = in.Transmission
		}
	}
	out.badge = domain.DefaultBadge
	if in.Badge != "" {
		if !domain.ValidBadge(in.Badge) {
			bad = append(bad, "badge")
		} else {
			out.badge = in.Badge
		}
	}
	out.avail = domain.DefaultAvailability
	if in.Availability != "" {
		if !domain.ValidAvailability(in.Availability) {
			bad = append(bad, "availability")
		} else {
			out.avail = in.Availability
		}
	}
	out.gr = in.GradientColor
	if out.gr == "" {
		out.gr = domain.DefaultGradient
	}

	if len(bad) > 0 {
		return checked{}, &ValidationError{Fields: bad}
	}
	return out, nil
}

// CreateCar validates the input, assigns an identifier and catalog code,
// stamps both timestamps and appends one record to the store.
func (s *CatalogService) CreateCar(in CarInput) (domain.Car, error) {
	v, err := check(in)
	if err != nil {
		return domain.Car{}, err
	}

	now := domain.Now()
	car := domain.Car{
		ID:            uuid.NewString(),
		CatalogCode:   fmt.Sprintf("CAR-%d", time.Now().UnixMilli()),
		Name:          v.name,
		Make:          v.make,
		Model:         v.model,
		Year:          v.year,
		Price:         v.price,
		Type:          v.typ,
		Mileage:       v.mileage,
		Transmission:  v.transmission,
		Color:         v.color,
		Description:   v.descr,
		Badge:         v.badge,
		Availability:  v.avail,
		GradientColor: v.gr,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Cars.Insert(car); err != nil {
		return domain.Car{}, storeErr(err)
	}
	return car, nil
}

// UpdateCar applies the same validation as create. Identifier, catalog code
// and creation timestamp are immutable; updated_at is refreshed.
func (s *CatalogService) UpdateCar(id string, in CarInput) (domain.Car, error) {
	v, err := check(in)
	if err != nil {
		return domain.Car{}, err
	}

	cur, err := s.Cars.Get(id)
	if err != nil {
		return domain.Car{}, storeErr(err)
	}

	car := domain.Car{
		ID:            cur.ID,
		CatalogCode:   cur.CatalogCode,
		Name:          v.name,
		Make:          v.make,
		Model:         v.model,
		Year:          v.year,
		Price:         v.price,
		Type:          v.typ,
		Mileage:       v.mileage,
		Transmission:  v.transmission,
		Color:         v.color,
		Description:   v.descr,
		Badge:         v.badge,
		Availability:  v.avail,
		GradientColor: v.gr,
		CreatedAt:     cur.CreatedAt,
		UpdatedAt:     domain.Now(),
	}
	if err := s.Cars.Update(car); err != nil {
		return domain.Car{}, storeErr(err)
	}
	return car, nil
}

// DeleteCar hard-deletes a listing and returns the removed snapshot.
func (s *CatalogService) DeleteCar(id string) (domain.Car, error) {
	car, err := s.Cars.Delete(id)
	if err != nil {
		return domain.Car{}, storeErr(err)
	}
	return car, nil
}

func (s *CatalogService) GetCar(id string) (domain.Car, error) {
	car, err := s.Cars.Get(id)
	if err != nil {
		return domain.Car{}, storeErr(err)
	}
	return car, nil
}

// ListCars returns the full snapshot, newest first. An empty catalog is an
// empty slice, never nil, so the API serializes it as [].
func (s *CatalogService) ListCars() ([]domain.Car, error) {
	cars, err := s.Cars.ListAll()
	if err != nil {
		return nil, storeErr(err)
	}
	if cars == nil {
		cars = []domain.Car{}
	}
	return cars, nil
}

// FeaturedCars returns up to six Featured listings for the home page.
func (s *CatalogService) FeaturedCars() ([]domain.Car, error) {
	cars, err := s.Cars.ListByBadge(domain.BadgeFeatured, 6)
	if err != nil {
		return nil, storeErr(err)
	}
	if cars == nil {
		cars = []domain.Car{}
	}
	return cars, nil
}
