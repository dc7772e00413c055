// Package diag collects conversion issues that need human review.
package diag

import (
	"fmt"
	"io"
	"os"
	"sync"
	"unicode/utf8"
)

// SnippetLimit caps the offending-text excerpt, in runes, carried by each
// entry so the issues log stays readable.
const SnippetLimit = 80

// Diagnostic flags one lossy or ambiguous transformation.
type Diagnostic struct {
	Table   string // qualified table identity
	Section string // column name, or a pseudo-section such as file_read
	Issue   string
	Snippet string
}

// Sink receives diagnostics from the conversion pipeline. Conversion code
// reports through a Sink instead of writing files directly, so unit tests
// can capture entries and parallel runs can share one collector.
type Sink interface {
	Record(d Diagnostic)
}

// Recorder is an append-only Sink safe for concurrent use. Entries are
// never deduplicated; repeated issues across columns each keep their own
// line.
type Recorder struct {
	mu      sync.Mutex
	entries []Diagnostic
}

// Record appends one diagnostic, truncating its snippet to SnippetLimit
// runes so a multi-byte rune is never split.
func (r *Recorder) Record(d Diagnostic) {
	if utf8.RuneCountInString(d.Snippet) > SnippetLimit {
		d.Snippet = string([]rune(d.Snippet)[:SnippetLimit])
	}
	r.mu.Lock()
	r.entries = append(r.entries, d)
	r.mu.Unlock()
}

// Entries returns a copy of the recorded diagnostics.
func (r *Recorder) Entries() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Diagnostic, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of recorded diagnostics.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// WriteTo renders the entries pipe-delimited, one line per issue.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, d := range r.Entries() {
		n, err := fmt.Fprintf(w, "%s | %s | %s | %s\n", d.Table, d.Section, d.Issue, d.Snippet)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteFile writes the issues log at path, replacing any previous run's
// content. An empty recorder still truncates the file.
func (r *Recorder) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := r.WriteTo(f); err != nil {
		return err
	}
	return f.Close()
}
