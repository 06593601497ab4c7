// internal/util/ids.go
// Identifiers for requests and agent runs.

package util

import (
	"github.com/google/uuid"
)

func NewID() string {
	return uuid.New().String()
}

// IsID reports whether s is a canonical UUID as produced by NewID.
func IsID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil && len(s) == 36
}
