// Package apikey decides which API key an invocation uses and checks the
// format of keys before they are stored.
package apikey

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrMissingKey is returned when neither an override nor a stored key exists.
var ErrMissingKey = errors.New("Please provide api key with argument -k, --key <KEY>")

// Resolve returns override when set (even if empty), else stored.
func Resolve(stored, override *string) (string, error) {
	if override != nil {
		return *override, nil
	}
	if stored != nil {
		return *stored, nil
	}
	return "", ErrMissingKey
}

// ValidateFormat reports whether key looks like a holidayapi.com key, which
// is a hyphenated UUID.
func ValidateFormat(key string) error {
	if len(key) != 36 {
		return fmt.Errorf("invalid key length %d: expected 36 characters (xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx)", len(key))
	}
	if _, err := uuid.Parse(key); err != nil {
		return fmt.Errorf("invalid key format: %v", err)
	}
	return nil
}
