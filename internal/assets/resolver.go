package assets

import (
	"errors"
	"io"
)

// Resolver combines a custom source with the embedded built-ins.
// When a custom source is configured, it tries custom first, then falls back
// to embedded if the asset is not found in the custom location.
type Resolver struct {
	custom   Source // nil if no custom directory configured
	embedded Source
}

// NewResolver creates a Resolver.
// If customBasePath is empty, only embedded assets are served.
// If customBasePath is set, custom assets take precedence with fallback to
// the embedded built-ins.
// Returns error if customBasePath is set but invalid.
func NewResolver(customBasePath string) (*Resolver, error) {
	resolver := &Resolver{
		embedded: NewEmbeddedSource(),
	}

	if customBasePath != "" {
		dirSource, err := NewDirSource(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = dirSource
	}

	return resolver, nil
}

// Open opens an asset, trying the custom source first if available.
func (r *Resolver) Open(name string) (io.ReadCloser, error) {
	// If no custom source, use embedded directly
	if r.custom == nil {
		return r.embedded.Open(name)
	}

	// Try custom source first
	rc, err := r.custom.Open(name)
	if err == nil {
		return rc, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors
	if !errors.Is(err, ErrAssetNotFound) {
		return nil, err
	}

	// Fall back to embedded
	return r.embedded.Open(name)
}

// HasCustomSource returns true if a custom asset source is configured.
func (r *Resolver) HasCustomSource() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ Source = (*Resolver)(nil)
