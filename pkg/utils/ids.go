package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a compact unique id for new entities.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
