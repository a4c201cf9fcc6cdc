// Package history provides persistent storage of resolved answers, so a
// scaffold pass can be replayed without re-prompting.
package history

import (
	"errors"
	"time"
)

// Store persists answer sets keyed by run ID.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores the serialized answer set for a run.
	// Overwrites if an answer set for runID already exists.
	Save(runID string, data []byte) error

	// Load retrieves the answer set for a run.
	// Returns ErrNotFound if no answer set exists.
	Load(runID string) ([]byte, error)

	// List returns metadata for all stored runs, most recent first.
	// Returns empty slice (not error) when the store is empty.
	List() ([]Info, error)

	// Delete removes the answer set for a run.
	// Returns nil if no answer set exists.
	Delete(runID string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Info provides run metadata without loading the answer set.
type Info struct {
	RunID     string
	Timestamp time.Time
	Size      int64
}

// Sentinel errors for history operations.
var (
	// ErrNotFound indicates no answer set exists for the run.
	ErrNotFound = errors.New("run not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("history store closed")
)
