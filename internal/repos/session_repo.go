package repos

import (
	"github.com/jmoiron/sqlx"

	"tronexcars/internal/domain"
)

type SessionRepo struct{ db *sqlx.DB }

func NewSessionRepo(db *sqlx.DB) *SessionRepo { return &SessionRepo{db: db} }

func (r *SessionRepo) Create(sid string) error {
	_, err := r.db.Exec(`
	  INSERT INTO sessions(id, created_at, last_seen) VALUES(?,?,?)
	  ON CONFLICT(id) DO UPDATE SET last_seen = excluded.last_seen
	`, sid, domain.Now(), domain.Now())
	return err
}

// CreatedAt returns the session's creation timestamp, or sql.ErrNoRows when
// the sid is unknown.
func (r *SessionRepo) CreatedAt(sid string) (string, error) {
	var ts string
	err := r.db.Get(&ts, `SELECT created_at FROM sessions WHERE id = ?`, sid)
	if err != nil {
		return "", err
	}
	_, _ = r.db.Exec(`UPDATE sessions SET last_seen = ? WHERE id = ?`, domain.Now(), sid)
	return ts, nil
}

func (r *SessionRepo) Delete(sid string) error {
	_, err := r.db.Exec(`DELETE FROM sessions WHERE id = ?`, sid)
	return err
}
