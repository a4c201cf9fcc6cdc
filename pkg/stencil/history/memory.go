package history

import (
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-memory answer store for testing.
// Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	runs   map[string]storedRun
	closed bool
}

// storedRun holds an answer set with metadata for List().
type storedRun struct {
	data      []byte
	timestamp time.Time
}

// NewMemoryStore creates a new in-memory answer store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs: make(map[string]storedRun),
	}
}

// Save implements Store.
func (m *MemoryStore) Save(runID string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	// Copy data to avoid retaining caller's slice
	stored := make([]byte, len(data))
	copy(stored, data)

	m.runs[runID] = storedRun{
		data:      stored,
		timestamp: time.Now().UTC(),
	}
	return nil
}

// Load implements Store.
func (m *MemoryStore) Load(runID string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	run, ok := m.runs[runID]
	if !ok {
		return nil, ErrNotFound
	}

	// Return a copy to prevent modification
	result := make([]byte, len(run.data))
	copy(result, run.data)
	return result, nil
}

// List implements Store.
func (m *MemoryStore) List() ([]Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	infos := make([]Info, 0, len(m.runs))
	for runID, run := range m.runs {
		infos = append(infos, Info{
			RunID:     runID,
			Timestamp: run.timestamp,
			Size:      int64(len(run.data)),
		})
	}

	// Most recent first; run ID breaks ties for a stable order.
	sort.Slice(infos, func(i, j int) bool {
		if !infos[i].Timestamp.Equal(infos[j].Timestamp) {
			return infos[i].Timestamp.After(infos[j].Timestamp)
		}
		return infos[i].RunID < infos[j].RunID
	})

	return infos, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(runID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.runs, runID)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.runs = nil
	return nil
}

// Len returns the number of stored runs. Useful for testing.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.runs)
}
