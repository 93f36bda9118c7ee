// Package logging provides a minimal logging interface and adapters for dbtflow.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the hook and task layers use for observability. This
// package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - Config for building an slog handler with optional rotating file output
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json")
//	h := hook.New(resolver, func(o *hook.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor lock-in
// while supporting structured logging where available.
package logging
