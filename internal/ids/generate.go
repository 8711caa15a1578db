// Package ids derives short task IDs and resolves unique ID prefixes.
package ids

import (
	"crypto/sha256"
	"encoding/base32"
	"time"

	internalstrings "github.com/amonks/gantt/internal/strings"
)

// DefaultLength is the length of generated task IDs.
const DefaultLength = 8

// Generate hashes input into a lowercase base32 ID of at most length
// characters. The same input always yields the same ID.
func Generate(input string, length int) string {
	if length <= 0 {
		return ""
	}
	sum := sha256.Sum256([]byte(input))
	encoded := base32.StdEncoding.EncodeToString(sum[:])
	return internalstrings.NormalizeLower(encoded[:min(length, len(encoded))])
}

// GenerateWithTimestamp is Generate over input followed by the timestamp,
// so equal names created at different instants get different IDs.
func GenerateWithTimestamp(input string, timestamp time.Time, length int) string {
	return Generate(input+timestamp.Format(time.RFC3339Nano), length)
}
