package platform

import "github.com/google/uuid"

// NewID returns a globally unique identifier for gateway references.
func NewID() string {
	return uuid.New().String()
}
