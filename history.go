package textlens

import (
	"sync"
)

// History keeps analysis results in memory, newest first. It is safe for
// concurrent use.
type History struct {
	mu      sync.RWMutex
	entries []*AnalysisResult
	limit   int
}

// NewHistory returns an empty History. When limit is positive the oldest
// entries are dropped once it is exceeded.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Add stores res in front of the existing entries. Nil results are ignored.
func (h *History) Add(res *AnalysisResult) {
	if res == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, nil)
	copy(h.entries[1:], h.entries)
	h.entries[0] = res
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = h.entries[:h.limit]
	}
}

// Remove deletes the entry with the given id and reports whether it was
// present.
func (h *History) Remove(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, e := range h.entries {
		if e.ID == id {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops every entry.
func (h *History) Clear() {
	h.mu.Lock()
	h.entries = nil
	h.mu.Unlock()
}

// Get returns the entry with the given id.
func (h *History) Get(id string) (*AnalysisResult, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, e := range h.entries {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// List returns a snapshot of the entries, newest first.
func (h *History) List() []*AnalysisResult {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return append([]*AnalysisResult{}, h.entries...)
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}
