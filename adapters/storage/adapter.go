// Package storage provides the destinations generated files are written to.
// Supports a plain directory, a ZIP bundle and memory.
package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"focusgen/adapters/archive"
	"focusgen/core/output"
	"focusgen/internal/errors"
)

// Backend is a storage backend type
type Backend string

const (
	BackendFile   Backend = "file"
	BackendZip    Backend = "zip"
	BackendMemory Backend = "memory"
)

// ParseBackend accepts a backend name; "dir" and "directory" mean file
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "file", "dir", "directory":
		return BackendFile, nil
	case "zip":
		return BackendZip, nil
	case "memory":
		return BackendMemory, nil
	}
	return "", errors.Newf(errors.TypeInput, "unknown storage backend %q (want file, zip or memory)", s)
}

// Store is the storage interface
type Store interface {
	// Put writes a named file
	Put(ctx context.Context, name string, data []byte) error

	// List lists written files by name
	List(ctx context.Context) ([]Object, error)

	// Location describes where the files went
	Location() string

	// Close flushes and closes the store
	Close() error
}

// Object is a stored file
type Object struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// checkName rejects names that would escape the store
func checkName(name string) error {
	if name == "" || filepath.IsAbs(name) || strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return errors.Newf(errors.TypeInput, "invalid file name %q", name)
	}
	return nil
}

// FileStore writes files into a directory
type FileStore struct {
	basePath string
	mu       sync.RWMutex
	objects  map[string]Object
}

// NewFileStore creates a file store
func NewFileStore(basePath string) (*FileStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, errors.Wrapf(errors.TypeInternal, err, "failed to create output directory %s", basePath)
	}
	return &FileStore{basePath: basePath, objects: make(map[string]Object)}, nil
}

func (s *FileStore) Put(ctx context.Context, name string, data []byte) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.basePath, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(errors.TypeInternal, err, "failed to write %s", path)
	}
	s.objects[name] = Object{Name: name, Size: int64(len(data)), CreatedAt: time.Now().UTC()}
	return nil
}

func (s *FileStore) List(ctx context.Context) ([]Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedObjects(s.objects), nil
}

func (s *FileStore) Location() string {
	return s.basePath
}

func (s *FileStore) Close() error {
	return nil
}

// ZipStore writes files into a ZIP bundle
type ZipStore struct {
	writer  *archive.Writer
	mu      sync.RWMutex
	objects map[string]Object
}

// NewZipStore creates a bundle with a generated name in dir
func NewZipStore(dir string) (*ZipStore, error) {
	w, err := archive.Create(dir)
	if err != nil {
		return nil, err
	}
	return &ZipStore{writer: w, objects: make(map[string]Object)}, nil
}

func (s *ZipStore) Put(ctx context.Context, name string, data []byte) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := s.writer.Put(ctx, name, data); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[name] = Object{Name: name, Size: int64(len(data)), CreatedAt: time.Now().UTC()}
	return nil
}

func (s *ZipStore) List(ctx context.Context) ([]Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedObjects(s.objects), nil
}

func (s *ZipStore) Location() string {
	return s.writer.Path()
}

func (s *ZipStore) Close() error {
	return s.writer.Close()
}

// MemoryStore keeps files in memory (for testing)
type MemoryStore struct {
	files   map[string][]byte
	objects map[string]Object
	mu      sync.RWMutex
}

// NewMemoryStore creates a memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		files:   make(map[string][]byte),
		objects: make(map[string]Object),
	}
}

func (s *MemoryStore) Put(ctx context.Context, name string, data []byte) error {
	if err := checkName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = append([]byte(nil), data...)
	s.objects[name] = Object{Name: name, Size: int64(len(data)), CreatedAt: time.Now().UTC()}
	return nil
}

// Get returns a stored file
func (s *MemoryStore) Get(name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.files[name]
	if !ok {
		return nil, errors.NotFound("file", name)
	}
	return data, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedObjects(s.objects), nil
}

func (s *MemoryStore) Location() string {
	return "memory"
}

func (s *MemoryStore) Close() error {
	return nil
}

func sortedObjects(m map[string]Object) []Object {
	out := make([]Object, 0, len(m))
	for _, o := range m {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// StoreFactory creates stores by backend type
func StoreFactory(backend Backend, config map[string]string) (Store, error) {
	path := config["path"]
	if path == "" {
		path = "output"
	}
	switch backend {
	case BackendFile:
		return NewFileStore(path)
	case BackendZip:
		return NewZipStore(path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, errors.NotSupported("storage backend " + string(backend))
	}
}

// Ensure interfaces are implemented
var (
	_ Store       = (*FileStore)(nil)
	_ Store       = (*ZipStore)(nil)
	_ Store       = (*MemoryStore)(nil)
	_ output.Sink = Store(nil)
	_ io.Closer   = Store(nil)
)
