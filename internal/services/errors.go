package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound means the identifier resolved to no listing.
	ErrNotFound = errors.New("car not found")
	// ErrStoreUnavailable wraps persistence failures. Retryable, and never
	// to be confused with ErrNotFound.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError reports the mandatory fields that were missing or
// malformed. The rejected operation leaves the store untouched.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

// storeErr maps a repo error to the service taxonomy. sql.ErrNoRows becomes
// ErrNotFound; anything else from the driver is a store outage.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
