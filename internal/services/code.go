package services

import (
	"strings"

	"github.com/google/uuid"
)

// newRegistrationCode returns a REG-XXXXXXXX code from 32 random bits.
// Collisions are caught by the unique index on registrations.code.
func newRegistrationCode() string {
	id := uuid.New()
	return "REG-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}
