// Package actionlog keeps a local CSV record of mutation outcomes, so every
// write against the backend leaves an inspectable trace even when the
// process exits immediately afterwards.
package actionlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry is one row in actions.csv.
type Entry struct {
	Timestamp time.Time
	Resource  string
	Action    string
	Outcome   string // "success" or "failure"
	Detail    string // entity id on success, error text on failure
}

// Header is the CSV header for actions.csv.
const Header = "timestamp,resource,action,outcome,detail"

const (
	numFields    = 5
	colTimestamp = 0
	colResource  = 1
	colAction    = 2
	colOutcome   = 3
	colDetail    = 4
)

// Log appends entries to a CSV file.
type Log struct {
	path string
}

// New creates a log writing to path. The parent directory is created on
// first append.
func New(path string) *Log {
	return &Log{path: path}
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colResource] = e.Resource
	row[colAction] = e.Action
	row[colOutcome] = e.Outcome
	row[colDetail] = e.Detail
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Entry{
		Timestamp: ts,
		Resource:  record[colResource],
		Action:    record[colAction],
		Outcome:   record[colOutcome],
		Detail:    record[colDetail],
	}, nil
}

// Append writes entries to the log file, creating it (and the header) if
// needed.
func (l *Log) Append(entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}

	needsHeader := false
	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening action log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for _, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry: %w", err)
		}
	}
	return cw.Error()
}

// Read returns all entries in the log.
func (l *Log) Read() ([]Entry, error) {
	f, err := os.Open(l.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening action log: %w", err)
	}
	defer f.Close()

	return ReadEntries(f)
}

// ReadEntries reads entries from a CSV reader, skipping the header.
func ReadEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading action log: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
