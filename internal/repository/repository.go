// Package repository holds the GORM-backed stores the services depend on.
// Lookups by id return (nil, nil) when the row does not exist.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
