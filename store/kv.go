// Package store provides the catalog and profile stores and their key-value
// persistence backends.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Fixed keys under which the stores persist their snapshots.
const (
	KeyProducts = "saved_products"
	KeyWishlist = "saved_wishlist"
	KeyUser     = "current_user"
)

// KV is the external key-value persistence collaborator. Put writes all
// entries atomically so a logical operation touching several keys never
// persists partially.
type KV interface {
	Get(key string) ([]byte, error)
	Put(entries map[string][]byte) error
	Delete(keys ...string) error
}

// MemoryKV is a map-backed KV used for tests and the "memory" backend.
type MemoryKV struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryKV constructs an empty MemoryKV
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{entries: make(map[string][]byte)}
}

// compile-time assertion
var _ KV = (*MemoryKV)(nil)

func (m *MemoryKV) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.entries[key]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp, nil
}

func (m *MemoryKV) Put(entries map[string][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range entries {
		cp := make([]byte, len(v))
		copy(cp, v)
		m.entries[k] = cp
	}
	return nil
}

func (m *MemoryKV) Delete(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.entries, k)
	}
	return nil
}

// FileKV keeps all entries in a single JSON document on disk. Every write
// rewrites the document through a temp file and rename, so readers never see
// a half-written snapshot.
type FileKV struct {
	mu      sync.Mutex
	path    string
	entries map[string]json.RawMessage
}

// compile-time assertion
var _ KV = (*FileKV)(nil)

// NewFileKV opens a FileKV at the given path. A missing file is fine; it is
// created on the first write.
func NewFileKV(path string) (*FileKV, error) {
	kv := &FileKV{
		path:    path,
		entries: make(map[string]json.RawMessage),
	}
	if err := kv.load(); err != nil {
		return nil, err
	}
	return kv, nil
}

func (f *FileKV) load() error {
	b, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			// no file yet; that's fine
			return nil
		}
		return err
	}
	if len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, &f.entries)
}

func (f *FileKV) save() error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(f.entries, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f *FileKV) Get(key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.entries[key]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp, nil
}

func (f *FileKV) Put(entries map[string][]byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, v := range entries {
		f.entries[k] = json.RawMessage(append([]byte(nil), v...))
	}
	return f.save()
}

func (f *FileKV) Delete(keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		delete(f.entries, k)
	}
	return f.save()
}

// NewKV constructs a KV backend by kind: "memory" or "file".
// For the file backend, provide the document path; for memory, path is ignored.
func NewKV(kind, path string) (KV, error) {
	switch kind {
	case "memory", "mem":
		return NewMemoryKV(), nil
	case "file":
		if path == "" {
			return nil, fmt.Errorf("file path required for file backend")
		}
		return NewFileKV(path)
	default:
		return nil, fmt.Errorf("unknown store kind: %s", kind)
	}
}
