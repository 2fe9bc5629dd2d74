package utils

import (
	"regexp"
	"strings"
)

// emailRe matches the basic local@domain.tld shape
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// digitsRe matches strings of decimal digits only
var digitsRe = regexp.MustCompile(`^[0-9]+$`)

// NormalizeEmail lower-cases and trims an email address. It is applied
// at every boundary: comparison, storage and transmission all use the
// normalized form, and the operation is idempotent.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmailFormat reports whether email satisfies the basic
// local@domain.tld shape
func ValidEmailFormat(email string) bool {
	return emailRe.MatchString(strings.TrimSpace(email))
}

// IsDigits reports whether s consists of decimal digits only
func IsDigits(s string) bool {
	return digitsRe.MatchString(s)
}

// ValidOTPFormat reports whether code is acceptable for submission:
// at least four digits. Shorter codes are rejected locally without a
// network call.
func ValidOTPFormat(code string) bool {
	return len(code) >= 4 && IsDigits(code)
}
