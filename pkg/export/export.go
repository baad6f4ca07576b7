// Package export materializes the stored landholders table as a tabular
// analysis frame and hands it to a format-specific Exporter.
//
// Exporters are optional capabilities: each concrete implementation lives
// in its own package and registers itself in init(), so it is only
// available when linked in (blank import). Requesting a format that was
// never linked fails with ErrUnsupported rather than silently degrading.
package export

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnsupported is returned when no exporter is registered for the
// requested format.
var ErrUnsupported = errors.New("export format not supported")

// Exporter writes an analysis frame to a destination path.
type Exporter interface {
	Export(ctx context.Context, frame *Frame, path string) error
}

// Constructor creates a new, unconfigured exporter instance.
type Constructor func() Exporter

var (
	mu       sync.RWMutex
	registry = make(map[string]Constructor)
)

// Register makes an exporter available under the given format name.
// Called from the init() of concrete implementations.
func Register(format string, constructor Constructor) {
	mu.Lock()
	defer mu.Unlock()
	registry[format] = constructor
}

// New returns an exporter for the format, or ErrUnsupported if none is
// linked into the binary.
func New(format string) (Exporter, error) {
	mu.RLock()
	constructor, ok := registry[format]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (linked formats: %v)", ErrUnsupported, format, Formats())
	}
	return constructor(), nil
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	mu.RLock()
	defer mu.RUnlock()
	formats := make([]string, 0, len(registry))
	for f := range registry {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}
