// Package audit records an entry per load/export operation: status, row
// counts, the xxh3 checksum of the input, and timing. Entries are emitted
// as structured log events and optionally appended to a JSON-lines file
// for later inspection.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Operation names the audited action.
type Operation string

const (
	OpSchema Operation = "schema"
	OpLoad   Operation = "load"
	OpExport Operation = "export"
)

// Status of an audited operation.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// Entry is one audit record.
type Entry struct {
	Time      time.Time `json:"time"`
	Operation Operation `json:"operation"`
	Status    Status    `json:"status"`
	Source    string    `json:"source,omitempty"`
	Database  string    `json:"database,omitempty"`
	Rows      int       `json:"rows,omitempty"`
	Repaired  int       `json:"repaired,omitempty"`
	Checksum  string    `json:"checksum,omitempty"`
	Duration  int64     `json:"duration_ms,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Logger writes audit entries. The zero value is unusable; use NewLogger.
type Logger struct {
	log  zerolog.Logger
	file *os.File
	mu   sync.Mutex
}

// NewLogger returns a logger that emits through log and, when path is
// non-empty, appends JSON lines to path.
func NewLogger(log zerolog.Logger, path string) (*Logger, error) {
	l := &Logger{log: log}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open audit file: %w", err)
		}
		l.file = f
	}
	return l, nil
}

// Record stamps and writes one entry.
func (l *Logger) Record(e Entry) error {
	if e.Time.IsZero() {
		e.Time = time.Now().UTC()
	}

	event := l.log.Info()
	if e.Status == StatusFailure {
		event = l.log.Error()
	}
	event.
		Str("operation", string(e.Operation)).
		Str("status", string(e.Status)).
		Int("rows", e.Rows).
		Str("checksum", e.Checksum).
		Msg("audit")

	if l.file == nil {
		return nil
	}

	line, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal audit entry: %w", err)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.file.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

// Success records a successful operation.
func (l *Logger) Success(e Entry) error {
	e.Status = StatusSuccess
	return l.Record(e)
}

// Failure records a failed operation.
func (l *Logger) Failure(op Operation, opErr error) error {
	return l.Record(Entry{
		Operation: op,
		Status:    StatusFailure,
		Error:     opErr.Error(),
	})
}

// Close releases the audit file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
