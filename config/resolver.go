package config

import (
	"context"
	"fmt"

	"github.com/hupe1980/dbtflow/core"
	"github.com/hupe1980/dbtflow/remote"
	"github.com/hupe1980/dbtflow/storage"
)

// Resolver implements core.StorageResolver using a connection Registry and a
// scheme dispatch table. Plain paths and file:// URIs resolve to a
// filesystem store, mem:// to a shared in‑memory store. Anything else is
// storage.ErrUnsupportedScheme; callers needing cloud backends supply their
// own resolver or register a handle for the scheme.
type Resolver struct {
	registry *Registry
	memory   *storage.MemoryStore
	schemes  map[string]core.StorageHandle
}

// Interface compliance (compile-time assertion)
var _ core.StorageResolver = (*Resolver)(nil)

// NewResolver builds a Resolver over the given registry (an empty registry
// when nil).
func NewResolver(registry *Registry) *Resolver {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Resolver{
		registry: registry,
		memory:   storage.NewMemoryStore(),
		schemes:  make(map[string]core.StorageHandle),
	}
}

// RegisterScheme installs a handle for destinations with the given URI
// scheme, taking precedence over the built-in dispatch.
func (r *Resolver) RegisterScheme(scheme string, handle core.StorageHandle) {
	r.schemes[scheme] = handle
}

// Memory exposes the shared in‑memory store behind mem:// destinations,
// mainly for test inspection.
func (r *Resolver) Memory() *storage.MemoryStore {
	return r.memory
}

// Resolve looks up the connection for connID (when set) and returns a handle
// for the destination. The connection lookup happens even when the scheme
// needs no credentials, so a bad conn id always surfaces before any upload.
// The built-in local and in-memory backends never consume the Connection's
// URI or login details; credentials only matter to handles registered via
// RegisterScheme, whose constructors read them from the Registry themselves.
func (r *Resolver) Resolve(_ context.Context, location, connID string) (core.StorageHandle, error) {
	if connID != "" {
		if _, err := r.registry.Get(connID); err != nil {
			return nil, err
		}
	}
	u, err := remote.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("parse destination %s: %w", location, err)
	}
	if handle, ok := r.schemes[u.Scheme]; ok {
		return handle, nil
	}
	switch {
	case u.IsLocal():
		return storage.NewLocalStore(), nil
	case u.Scheme == "mem":
		return r.memory, nil
	default:
		return nil, fmt.Errorf("destination %s: %w", location, storage.ErrUnsupportedScheme)
	}
}
