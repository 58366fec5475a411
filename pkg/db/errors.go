package db

import "strings"

// IsUniqueViolation reports whether err carries a unique-constraint failure.
// With a constraint name it matches that specific index, which lets callers
// distinguish a duplicate sku from a duplicate order.
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	text := err.Error()
	if constraintName != "" {
		return strings.Contains(text, constraintName)
	}
	// Postgres and sqlite phrase the generic case differently.
	return strings.Contains(text, "duplicate key value") ||
		strings.Contains(text, "UNIQUE constraint failed")
}
