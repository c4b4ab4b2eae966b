package assets

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"sort"
)

//go:embed images/*
var images embed.FS

// Built-in asset names served by EmbeddedSource.
const (
	// BuiltinPlaceholder is a small "missing image" stand-in.
	BuiltinPlaceholder = "placeholder.png"

	// BuiltinTransparent is a single fully transparent pixel.
	BuiltinTransparent = "transparent.png"
)

// EmbeddedSource serves built-in images from the embedded filesystem.
// Implements Source interface.
type EmbeddedSource struct{}

// NewEmbeddedSource creates an EmbeddedSource.
func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{}
}

// Open opens a built-in asset by name.
func (e *EmbeddedSource) Open(name string) (io.ReadCloser, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	f, err := images.Open("images/" + name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrAssetNotFound, name)
	}

	return f, nil
}

// Names returns the sorted names of all built-in assets.
func Names() []string {
	entries, err := fs.ReadDir(images, "images")
	if err != nil {
		// The embedded tree is fixed at compile time; a read failure here
		// means a broken build, not a runtime condition.
		panic("assets: embedded images unreadable: " + err.Error())
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ Source = (*EmbeddedSource)(nil)
