package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/amonks/gantt/internal/ids"
)

// GenerateID creates a unique 8-character alphanumeric ID from a name and timestamp.
func GenerateID(name string, timestamp time.Time) string {
	return ids.GenerateWithTimestamp(name, timestamp, ids.DefaultLength)
}

// IDIndex indexes task IDs for prefix matching and display.
type IDIndex struct {
	ids      []string
	original map[string]string
}

// NewIDIndex builds an IDIndex from a slice of tasks.
func NewIDIndex(tasks []Task) IDIndex {
	taskIDs := make([]string, 0, len(tasks))
	original := make(map[string]string, len(tasks))
	for _, t := range tasks {
		taskIDs = append(taskIDs, t.ID)
		lower := strings.ToLower(t.ID)
		if _, ok := original[lower]; !ok {
			original[lower] = t.ID
		}
	}
	return IDIndex{ids: ids.NormalizeUniqueIDs(taskIDs), original: original}
}

// Resolve returns the full task ID for a prefix.
func (index IDIndex) Resolve(prefix string) (string, error) {
	if prefix == "" {
		return "", ErrTaskNotFound
	}

	match, found, ambiguous := ids.MatchPrefixNormalized(index.ids, prefix)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrTaskNotFound, prefix)
	}
	if ambiguous {
		return "", fmt.Errorf("%w: %s", ErrAmbiguousTaskIDPrefix, prefix)
	}

	return index.original[match], nil
}

// PrefixLengths returns the shortest unique prefix length for each ID,
// keyed by the lowercased ID.
func (index IDIndex) PrefixLengths() map[string]int {
	return ids.UniquePrefixLengthsNormalized(index.ids)
}
