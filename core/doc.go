// Package core provides the foundational domain contracts used by dbtflow.
// It defines the core abstractions for:
//
//   - StorageHandle (a resolved remote storage location accepting uploads)
//   - StorageResolver (turns a destination + connection id into a handle)
//
// The package intentionally keeps implementation concerns (filesystem copies,
// cloud clients, credential lookup) out of scope, exposing small interfaces to
// enable custom backends and extensions. Callers should depend on these
// interfaces rather than concrete types so they can substitute alternative
// storage layers in tests or production.
package core
