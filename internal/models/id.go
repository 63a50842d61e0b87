package models

import (
	"strings"

	"github.com/google/uuid"
)

// NewId returns a prefixed unique id, e.g. "sk_9f3c21ab".
func NewId(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
