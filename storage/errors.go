package storage

import "fmt"

var (
	// ErrNotFound is returned when no object exists under the requested
	// remote path in the underlying store.
	ErrNotFound = fmt.Errorf("object not found")

	// ErrUnsupportedScheme is returned by the resolution layer when a
	// destination URI names a scheme no registered backend can serve.
	ErrUnsupportedScheme = fmt.Errorf("unsupported storage scheme")
)
