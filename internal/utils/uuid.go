package utils

import "github.com/google/uuid"

// NewTraceID returns a fresh trace id: a time-ordered UUIDv7, or a random
// UUIDv4 when the v7 generator fails.
func NewTraceID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
