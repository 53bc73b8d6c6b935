package registry

import "errors"

// Sentinel errors for registry lookups.
var (
	// ErrUnknownFramework indicates a lookup for a key that is not registered.
	ErrUnknownFramework = errors.New("registry: unknown framework")
)
