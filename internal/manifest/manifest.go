// Package manifest tracks every table extracted by the split stage.
package manifest

import (
	"encoding/json"
	"os"
	"sync"
)

// Entry records one successfully extracted table.
type Entry struct {
	Schema     string `json:"schema"`
	Table      string `json:"table"`
	Path       string `json:"path"`
	SourceFile string `json:"source_file"`
}

// Manifest is an append-only list of entries, safe for concurrent appends.
// Entries are written once and never updated.
type Manifest struct {
	mu      sync.Mutex
	entries []Entry
}

// Append adds one entry.
func (m *Manifest) Append(e Entry) {
	m.mu.Lock()
	m.entries = append(m.entries, e)
	m.mu.Unlock()
}

// Entries returns a copy of the accumulated entries in append order.
func (m *Manifest) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// WriteFile serializes the manifest as an indented JSON array.
func (m *Manifest) WriteFile(path string) error {
	entries := m.Entries()
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Load reads a manifest written by WriteFile.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
