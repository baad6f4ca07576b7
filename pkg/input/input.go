// Package input opens the CSV source for a load: a file path, or standard
// input for "-" (and for an empty path). Compressed extracts are handled
// transparently by extension (.gz, .zst).
package input

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Stdin is the conventional path for reading from standard input.
const Stdin = "-"

// Open returns a reader over the decompressed content of path. The caller
// must Close it on every exit path; closing also releases the underlying
// file.
func Open(path string) (io.ReadCloser, error) {
	if path == "" || path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}

	switch filepath.Ext(path) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to read gzip input: %w", err)
		}
		return &readCloser{r: zr, close: func() error {
			zr.Close()
			return f.Close()
		}}, nil
	case ".zst":
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to read zstd input: %w", err)
		}
		return &readCloser{r: dec, close: func() error {
			dec.Close()
			return f.Close()
		}}, nil
	default:
		return f, nil
	}
}

type readCloser struct {
	r     io.Reader
	close func() error
}

func (rc *readCloser) Read(p []byte) (int, error) { return rc.r.Read(p) }
func (rc *readCloser) Close() error               { return rc.close() }
