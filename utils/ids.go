package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new time-ordered (UUIDv7) identifier, falling back to a random UUID
func GenerateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
