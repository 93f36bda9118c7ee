package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hupe1980/dbtflow/remote"
)

// LocalStore is a StorageHandle that copies files to another location on the
// local filesystem. Remote paths are ordinary absolute or relative paths;
// file:// URIs are accepted and reduced to their path component. Missing
// parent directories are created. It backs file:// and plain-path
// destinations and doubles as a cheap stand-in for object storage in
// integration tests.
type LocalStore struct{}

// NewLocalStore returns a filesystem backed store.
func NewLocalStore() *LocalStore {
	return &LocalStore{}
}

// Upload copies the file at localPath to remotePath.
func (s *LocalStore) Upload(_ context.Context, localPath, remotePath string) error {
	u, err := remote.Parse(remotePath)
	if err != nil {
		return fmt.Errorf("parse destination path %s: %w", remotePath, err)
	}
	target := filepath.FromSlash(u.Path)

	src, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("open source %s: %w", localPath, err)
	}
	defer src.Close()

	// Uploading back to the source location can make source and target the
	// same file; os.Create would truncate it before the copy reads a byte.
	srcInfo, err := src.Stat()
	if err != nil {
		return fmt.Errorf("stat source %s: %w", localPath, err)
	}
	if dstInfo, err := os.Stat(target); err == nil && os.SameFile(srcInfo, dstInfo) {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create destination dir: %w", err)
	}
	dst, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create destination %s: %w", target, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("copy to %s: %w", target, err)
	}
	return dst.Close()
}
