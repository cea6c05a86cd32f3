package infrastructure

import "github.com/google/uuid"

// NewRunID returns a unique identifier for one report run. It is attached
// to the logger so artifacts from concurrent filesystem-sharing runs can
// be told apart in logs.
func NewRunID() string {
	return uuid.NewString()
}
