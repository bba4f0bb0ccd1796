package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound marks lookups of ids or codes that do not exist.
	ErrNotFound = errors.New("not found")
	// ErrCodeExists marks create attempts with a duplicate unique code.
	ErrCodeExists = errors.New("code already exists")
)

// notFound wraps a lookup failure, translating the gorm sentinel into the
// service-level one so handlers never see persistence errors.
func notFound(err error, what string, key any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %v: %w", what, key, ErrNotFound)
	}
	return err
}
