package repos

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"tronexcars/internal/domain"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the showroom if the catalog is empty (idempotent)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Car listings
CREATE TABLE IF NOT EXISTS cars(
  id             TEXT PRIMARY KEY,
  catalog_code   TEXT,
  name           TEXT NOT NULL,
  make           TEXT NOT NULL,
  model          TEXT NOT NULL,
  year           INTEGER NOT NULL,
  price          NUMERIC NOT NULL CHECK (price >= 0),
  type           TEXT NOT NULL CHECK (type IN ('Sedan','SUV','Truck','Van','Coupe','Hatchback')),
  mileage        INTEGER NOT NULL CHECK (mileage >= 0),
  transmission   TEXT NOT NULL CHECK (transmission IN ('Automatic','Manual')),
  color          TEXT NOT NULL,
  description    TEXT NOT NULL,
  badge          TEXT NOT NULL CHECK (badge IN ('Featured','New Arrival','Hot Deal')),
  availability   TEXT NOT NULL CHECK (availability IN ('Available','Reserved','Sold')),
  gradient_color TEXT NOT NULL,
  created_at     TEXT NOT NULL,
  updated_at     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cars_created_at   ON cars(created_at);
CREATE INDEX IF NOT EXISTS idx_cars_make         ON cars(make);
CREATE INDEX IF NOT EXISTS idx_cars_badge        ON cars(badge);
CREATE INDEX IF NOT EXISTS idx_cars_availability ON cars(availability);

-- Admin sessions (shared-secret login, cookie 'admin_sid')
CREATE TABLE IF NOT EXISTS sessions(
  id         TEXT PRIMARY KEY,
  created_at TEXT NOT NULL,
  last_seen  TEXT
);
`
	_, err := db.Exec(schema)
	return err
}

type seedCar struct {
	name, make, model          string
	year                       int
	price                      float64
	typ                        string
	mileage                    int
	color, badge, avail, descr string
}

// seedIfEmpty loads the demo showroom on first start. Runs only when the
// cars table has no rows, so admin deletions stick across restarts.
func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM cars`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo vehicles")

	cars := []seedCar{
		{"Toyota Camry Hybrid", "Toyota", "Camry", 2024, 28500, "Sedan", 15000, "Silver", "New Arrival", "Available",
			"Premium hybrid sedan with excellent fuel efficiency and modern technology."},
		{"Honda CR-V SUV", "Honda", "CR-V", 2023, 32000, "SUV", 35000, "Black", "Featured", "Available",
			"Spacious SUV perfect for families with great safety features."},
		{"Ford F-150 Pickup", "Ford", "F-150", 2023, 38000, "Truck", 45000, "Red", "Hot Deal", "Reserved",
			"Powerful pickup truck with towing capacity and comfortable cabin."},
		{"BMW 3 Series", "BMW", "3 Series", 2022, 35000, "Sedan", 55000, "White", "Featured", "Available",
			"Luxury sedan with premium features and smooth performance."},
		{"Mazda CX-5", "Mazda", "CX-5", 2024, 30000, "SUV", 12000, "Blue", "New Arrival", "Sold",
			"Modern SUV with agile handling and advanced safety systems."},
		{"Nissan Altima", "Nissan", "Altima", 2023, 26000, "Sedan", 28000, "Gray", "Featured", "Available",
			"Reliable sedan with smooth ride and good fuel economy."},
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for i, c := range cars {
		now := domain.Now()
		_, err := tx.Exec(`
			INSERT INTO cars(id, catalog_code, name, make, model, year, price, type, mileage,
			  transmission, color, description, badge, availability, gradient_color, created_at, updated_at)
			VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
		`, fmt.Sprintf("seed-%02d", i+1), fmt.Sprintf("CAR-SEED-%02d", i+1),
			c.name, c.make, c.model, c.year, c.price, c.typ, c.mileage,
			domain.TransmissionAutomatic, c.color, c.descr, c.badge, c.avail,
			domain.DefaultGradient, now, now)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
