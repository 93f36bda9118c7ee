package core

import "context"

// StorageHandle is a resolved remote storage location. Implementations are
// obtained from a StorageResolver and accept file uploads; the caller neither
// constructs nor owns the underlying client, only invokes it. Implementations
// should be safe for the sequential call pattern the uploader performs.
type StorageHandle interface {
	// Upload copies the file at localPath to remotePath. remotePath is an
	// absolute destination path or URI, already joined by the caller.
	Upload(ctx context.Context, localPath, remotePath string) error
}

// StorageResolver turns a destination location and an optional connection
// identifier into a StorageHandle. Resolve may fail when the destination or
// the credential behind connID is invalid or unreachable; such failures are
// returned to the caller unchanged.
type StorageResolver interface {
	Resolve(ctx context.Context, location, connID string) (StorageHandle, error)
}

// ResolverFunc adapts a plain function to the StorageResolver interface.
type ResolverFunc func(ctx context.Context, location, connID string) (StorageHandle, error)

// Resolve implements StorageResolver.
func (f ResolverFunc) Resolve(ctx context.Context, location, connID string) (StorageHandle, error) {
	return f(ctx, location, connID)
}
