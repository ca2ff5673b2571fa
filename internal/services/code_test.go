package services

import (
	"regexp"
	"testing"
)

var codeRE = regexp.MustCompile(`^REG-[0-9A-F]{8}$`)

// TestNewRegistrationCode_Format verifies the REG-XXXXXXXX format
// (uppercase hex, exactly 8 digits).
func TestNewRegistrationCode_Format(t *testing.T) {
	code := newRegistrationCode()
	if !codeRE.MatchString(code) {
		t.Errorf("code %q does not match REG-[0-9A-F]{8}", code)
	}
}

// TestNewRegistrationCode_Unique generates 2000 codes and checks for collisions.
// With 32 bits of entropy the collision probability over 2000 draws is ~0.05%.
func TestNewRegistrationCode_Unique(t *testing.T) {
	const n = 2000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		c := newRegistrationCode()
		if _, dup := seen[c]; dup {
			t.Fatalf("duplicate code %q generated on iteration %d", c, i)
		}
		seen[c] = struct{}{}
	}
}
