// Package results persists one summary record per search run.
//
// The on-disk log is headerless, appended to and never rewritten. Fields
// are written as given, without quoting:
//
//	<filename>,<search-term>,<percentage with two decimals>%
package results

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/standardbeagle/termscan/internal/debug"
	tserrors "github.com/standardbeagle/termscan/internal/errors"
)

// DefaultPath is the results log used when none is configured.
const DefaultPath = "results.csv"

// Record is the summary of one run.
type Record struct {
	File       string
	Term       string
	Percentage float64
}

// Fields renders the record as log columns.
func (r Record) Fields() []string {
	return []string{r.File, r.Term, fmt.Sprintf("%.2f%%", r.Percentage)}
}

// Sink receives run records.
type Sink interface {
	Append(rec Record) error
}

// Line renders the record as one log line, newline included.
func (r Record) Line() string {
	return strings.Join(r.Fields(), ",") + "\n"
}

// CSVLog appends records to a comma-separated file, creating it on first use.
type CSVLog struct {
	path string
}

// NewCSVLog returns a log writing to path (DefaultPath when empty).
func NewCSVLog(path string) *CSVLog {
	if path == "" {
		path = DefaultPath
	}
	return &CSVLog{path: path}
}

// Path returns the file the log appends to.
func (l *CSVLog) Path() string {
	return l.path
}

// Append writes rec as one line at the end of the log.
func (l *CSVLog) Append(rec Record) error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return tserrors.NewLogWriteError(l.path, err)
	}

	if _, err := f.WriteString(rec.Line()); err != nil {
		_ = f.Close()
		return tserrors.NewLogWriteError(l.path, err)
	}
	if err := f.Close(); err != nil {
		return tserrors.NewLogWriteError(l.path, err)
	}

	debug.LogResults("appended %v to %s\n", rec.Fields(), l.path)
	return nil
}

// MemorySink keeps records in memory.
type MemorySink struct {
	mu      sync.Mutex
	records []Record
}

// NewMemorySink creates an empty in-memory sink
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Append implements Sink.
func (m *MemorySink) Append(rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, rec)
	return nil
}

// Records returns a copy of everything appended so far.
func (m *MemorySink) Records() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Record, len(m.records))
	copy(out, m.records)
	return out
}

// Discard drops every record. Used when the results log is disabled.
type Discard struct{}

// Append implements Sink.
func (Discard) Append(Record) error { return nil }
