// Package atomicfile writes a file through a temporary sibling followed
// by an atomic rename, so readers never observe a partially written target.
package atomicfile

import (
	"os"
	"path/filepath"
)

// Writer buffers content into a temporary file created in the target's
// directory. Commit renames it over the target; Close without a prior
// Commit discards the temporary file and leaves the target untouched.
type Writer struct {
	tmp       *os.File
	target    string
	attempted bool
}

// New creates the temporary file next to target (same filesystem, so the
// final rename cannot fail with a cross-device error).
func New(target string) (*Writer, error) {
	tmp, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".tmp-*")
	if err != nil {
		return nil, err
	}
	return &Writer{tmp: tmp, target: target}, nil
}

func (w *Writer) Write(p []byte) (int, error) {
	return w.tmp.Write(p)
}

// Commit flushes, closes and renames the temporary file onto the target.
// If the rename itself fails, the fully written temporary file stays on
// disk and the target keeps its previous content.
func (w *Writer) Commit() error {
	w.attempted = true
	if err := w.tmp.Sync(); err != nil {
		w.tmp.Close()
		return err
	}
	if err := w.tmp.Close(); err != nil {
		return err
	}
	return os.Rename(w.tmp.Name(), w.target)
}

// Close discards the temporary file when Commit was never reached.
// Safe to defer alongside Commit.
func (w *Writer) Close() error {
	if w.attempted {
		return nil
	}
	w.tmp.Close()
	return os.Remove(w.tmp.Name())
}
