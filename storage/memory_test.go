package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/hupe1980/dbtflow/core"
)

// Interface compliance (compile-time assertions)
var (
	_ core.StorageHandle = (*MemoryStore)(nil)
	_ core.StorageHandle = (*LocalStore)(nil)
)

func tempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestMemoryStoreUploadGetIsolation(t *testing.T) {
	store := NewMemoryStore()
	src := tempFile(t, "manifest.json", "hello")

	if err := store.Upload(context.Background(), src, "s3://bucket/manifest.json"); err != nil {
		t.Fatalf("upload: %v", err)
	}
	out, err := store.Get("s3://bucket/manifest.json")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(out) != "hello" {
		t.Fatalf("expected 'hello', got %q", string(out))
	}
	// mutate returned slice
	out[0] = 'x'
	out2, _ := store.Get("s3://bucket/manifest.json")
	if string(out2) != "hello" { // original stored should be unchanged
		t.Fatalf("expected isolation, got %q", string(out2))
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.Get("s3://bucket/absent"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreUploadMissingLocalFile(t *testing.T) {
	store := NewMemoryStore()
	err := store.Upload(context.Background(), filepath.Join(t.TempDir(), "absent.json"), "s3://bucket/absent.json")
	if err == nil {
		t.Fatalf("expected error for missing local file")
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d objects", store.Len())
	}
}

func TestMemoryStoreListAndLen(t *testing.T) {
	store := NewMemoryStore()
	src := tempFile(t, "a.json", "a")
	for i := 0; i < 3; i++ {
		if err := store.Upload(context.Background(), src, fmt.Sprintf("mem://b/a%d.json", i)); err != nil {
			t.Fatal(err)
		}
	}
	if store.Len() != 3 {
		t.Fatalf("expected 3 objects, got %d", store.Len())
	}
	if len(store.List()) != 3 {
		t.Fatalf("expected 3 paths, got %d", len(store.List()))
	}
}

func TestMemoryStoreConcurrency(t *testing.T) {
	store := NewMemoryStore()
	src := tempFile(t, "a.json", "data")
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			remote := fmt.Sprintf("mem://b/a%d.json", i%10)
			if err := store.Upload(context.Background(), src, remote); err != nil {
				t.Errorf("upload err: %v", err)
			}
			_ = store.List()
		}()
	}
	wg.Wait()
	if store.Len() != 10 {
		t.Fatalf("expected 10 objects, got %d", store.Len())
	}
}
