package storage

import (
	"context"
	"os"
	"sync"
)

// MemoryStore is a trivial in‑process StorageHandle implementation useful
// for tests, examples and single‑process prototypes. Upload reads the local
// file and keeps its bytes in a map guarded by an RWMutex, keyed by remote
// path. Data is copied on retrieval to avoid accidental external mutation of
// internal buffers.
//
// This implementation is intentionally minimal; it does not enforce retention
// limits, size quotas, or eviction. For production, prefer a durable backend
// that can survive process restarts.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string][]byte // remote path -> raw bytes
}

// NewMemoryStore returns an empty in‑memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

// Upload reads the file at localPath and stores (or overwrites) its contents
// under remotePath.
func (s *MemoryStore) Upload(_ context.Context, localPath, remotePath string) error {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[remotePath] = data
	return nil
}

// Get returns a copy of the stored bytes for remotePath or ErrNotFound.
func (s *MemoryStore) Get(remotePath string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[remotePath]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

// List returns the remote paths currently stored. The slice is a snapshot
// and safe for caller mutation.
func (s *MemoryStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	paths := make([]string, 0, len(s.objects))
	for p := range s.objects {
		paths = append(paths, p)
	}
	return paths
}

// Len returns the number of stored objects.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
