package utils

import "github.com/google/uuid"

// NewPassID returns a time-ordered identifier for one scheduler pass. Log lines
// of the same pass share it, which makes interleaved shard output greppable.
func NewPassID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
