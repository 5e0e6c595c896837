package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tronexcars/internal/domain"
	"tronexcars/internal/repos"
)

var ErrBadPassword = errors.New("invalid password")

// sessionTTL matches the original admin console's 24h expiry.
const sessionTTL = 24 * time.Hour

// AuthService gates the admin surface behind a single shared secret. This
// is not real auth: one password, no users, no roles.
type AuthService struct {
	Sessions *repos.SessionRepo
	hash     []byte
}

func NewAuthService(sessions *repos.SessionRepo, adminPassword string) (*AuthService, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{Sessions: sessions, hash: h}, nil
}

// Login checks the shared secret and mints a session id for the cookie.
func (s *AuthService) Login(password string) (string, error) {
	if bcrypt.CompareHashAndPassword(s.hash, []byte(password)) != nil {
		return "", ErrBadPassword
	}
	sid := uuid.NewString()
	if err := s.Sessions.Create(sid); err != nil {
		return "", storeErr(err)
	}
	return sid, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Sessions.Delete(sid)
}

// IsAdmin reports whether the sid names a live, unexpired session.
func (s *AuthService) IsAdmin(sid string) bool {
	if sid == "" {
		return false
	}
	ts, err := s.Sessions.CreatedAt(sid)
	if err != nil {
		// Unknown sid or store trouble; fail closed either way.
		return false
	}
	created, err := time.Parse(domain.TimeLayout, ts)
	if err != nil {
		return false
	}
	return time.Since(created) < sessionTTL
}
