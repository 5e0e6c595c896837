package repos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"tronexcars/internal/domain"
)

type CarRepo struct{ db *sqlx.DB }

func NewCarRepo(db *sqlx.DB) *CarRepo { return &CarRepo{db: db} }

const carColumns = `
  id, catalog_code, name, make, model, year, price, type, mileage,
  transmission, color, description, badge, availability, gradient_color,
  created_at, updated_at`

// ListAll returns the full catalog, newest first. rowid breaks creation-time
// ties so the snapshot order is deterministic.
func (r *CarRepo) ListAll() ([]domain.Car, error) {
	var out []domain.Car
	err := r.db.Select(&out, `
	  SELECT `+carColumns+`
	  FROM cars
	  ORDER BY created_at DESC, rowid DESC
	`)
	return out, err
}

func (r *CarRepo) Get(id string) (domain.Car, error) {
	var c domain.Car
	err := r.db.Get(&c, `
	  SELECT `+carColumns+`
	  FROM cars
	  WHERE id = ?
	`, id)
	return c, err
}

// ListByBadge serves the featured strip on the home page.
func (r *CarRepo) ListByBadge(badge string, limit int) ([]domain.Car, error) {
	var out []domain.Car
	err := r.db.Select(&out, `
	  SELECT `+carColumns+`
	  FROM cars
	  WHERE badge = ?
	  ORDER BY created_at DESC, rowid DESC
	  LIMIT ?
	`, badge, limit)
	return out, err
}

func (r *CarRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM cars`)
	return n, err
}

func (r *CarRepo) Insert(c domain.Car) error {
	_, err := r.db.Exec(`
	  INSERT INTO cars(id, catalog_code, name, make, model, year, price, type, mileage,
	    transmission, color, description, badge, availability, gradient_color, created_at, updated_at)
	  VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	`, c.ID, c.CatalogCode, c.Name, c.Make, c.Model, c.Year, c.Price, c.Type, c.Mileage,
		c.Transmission, c.Color, c.Description, c.Badge, c.Availability, c.GradientColor,
		c.CreatedAt, c.UpdatedAt)
	return err
}

// Update replaces every mutable column. Identifier, catalog code and
// created_at never change after insert. Returns sql.ErrNoRows when the id
// does not resolve.
func (r *CarRepo) Update(c domain.Car) error {
	res, err := r.db.Exec(`
	  UPDATE cars SET
	    name = ?, make = ?, model = ?, year = ?, price = ?, type = ?, mileage = ?,
	    transmission = ?, color = ?, description = ?, badge = ?, availability = ?,
	    gradient_color = ?, updated_at = ?
	  WHERE id = ?
	`, c.Name, c.Make, c.Model, c.Year, c.Price, c.Type, c.Mileage,
		c.Transmission, c.Color, c.Description, c.Badge, c.Availability,
		c.GradientColor, c.UpdatedAt, c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a listing and returns the removed snapshot so the caller
// can confirm what went away. Hard delete, no tombstone.
func (r *CarRepo) Delete(id string) (domain.Car, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return domain.Car{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var c domain.Car
	if err := tx.Get(&c, `SELECT `+carColumns+` FROM cars WHERE id = ?`, id); err != nil {
		return domain.Car{}, err
	}
	if _, err := tx.Exec(`DELETE FROM cars WHERE id = ?`, id); err != nil {
		return domain.Car{}, err
	}
	return c, tx.Commit()
}
