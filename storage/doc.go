// Package storage contains concrete implementations of core.StorageHandle.
//
// The canonical StorageHandle interface lives in the core package to avoid
// dependency cycles and keep domain contracts central. Implementation
// packages like this one (in‑memory, local filesystem, cloud object stores)
// provide upload backends that can be swapped without touching calling code.
//
// Cloud backends are intentionally absent; the resolution layer in the
// config package dispatches to the implementations here and callers may
// register their own resolver for anything else. Callers should depend on
// the core interface rather than concrete types so they can substitute
// alternative backends in tests or production.
package storage
