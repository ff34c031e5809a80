// Package archive packages generated files into a ZIP bundle.
package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"focusgen/internal/errors"
)

// Name returns a fresh bundle name, focus-data-<8 hex>.zip
func Name() string {
	return fmt.Sprintf("focus-data-%s.zip", strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// Writer writes a ZIP bundle. Entries are deflated.
type Writer struct {
	mu     sync.Mutex
	zw     *zip.Writer
	closer io.Closer
	path   string
	names  []string
	closed bool
}

// NewWriter writes a bundle to w. The caller owns w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{zw: zip.NewWriter(w)}
}

// Create creates a new bundle file in dir with a generated name
func Create(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(errors.TypeInternal, err, "failed to create %s", dir)
	}
	path := filepath.Join(dir, Name())
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeInternal, err, "failed to create %s", path)
	}
	w := NewWriter(f)
	w.closer = f
	w.path = path
	return w, nil
}

// Path returns the bundle file path, empty for NewWriter bundles
func (w *Writer) Path() string {
	return w.path
}

// Put adds an entry
func (w *Writer) Put(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return errors.New(errors.TypeInternal, "archive already closed")
	}
	for _, n := range w.names {
		if n == name {
			return errors.Newf(errors.TypeInput, "archive already has %s", name)
		}
	}

	entry, err := w.zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return err
	}
	if _, err := entry.Write(data); err != nil {
		return err
	}
	w.names = append(w.names, name)
	return nil
}

// Names lists the entries in write order
func (w *Writer) Names() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.names...)
}

// Close finishes the bundle and closes the file if Create opened it
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true

	err := w.zw.Close()
	if w.closer != nil {
		if cerr := w.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Entry is one file of a bundle
type Entry struct {
	Name string
	Data []byte
}

// ReadFile returns every entry of a bundle in archive order
func ReadFile(path string) ([]Entry, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeInput, err, "failed to open archive %s", path)
	}
	defer zr.Close()

	entries := make([]Entry, 0, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, errors.Wrapf(errors.TypeParsing, err, "failed to open %s", f.Name)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, errors.Wrapf(errors.TypeParsing, err, "failed to read %s", f.Name)
		}
		entries = append(entries, Entry{Name: f.Name, Data: data})
	}
	return entries, nil
}
