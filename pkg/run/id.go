// Package run defines run identities, the on-disk artifact layout, and the
// metadata record that links a capture session to later analysis.
package run

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// IDLength is the number of hex characters in a run identifier.
const IDLength = 12

// NewID returns a short unique run identifier: the first 12 hex characters
// of a random UUID. 48 bits of entropy is plenty for concurrent runs on the
// same machine.
func NewID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])[:IDLength]
}
