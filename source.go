package assetimg

import (
	"io"
	"io/fs"

	"github.com/alnah/go-assetimg/internal/assets"
)

// Built-in asset names always available via NewSource.
const (
	// PlaceholderAsset is a small "missing image" stand-in.
	PlaceholderAsset = assets.BuiltinPlaceholder

	// TransparentAsset is a single fully transparent pixel.
	TransparentAsset = assets.BuiltinTransparent
)

// Source defines the contract for opening a named asset as a byte stream.
// Implementations may serve from a directory, embedded files, an archive,
// a database, etc.
//
// The library provides NewSource() for directory-based access with fallback
// to the embedded built-ins, and NewFSSource() for any io/fs.FS. Implement
// this interface for custom backends; failures should wrap ErrAssetNotFound
// or ErrAssetRead so callers can tell the two apart.
type Source interface {
	// Open opens the named asset for reading. The caller must close the
	// returned stream.
	// Returns ErrAssetNotFound if no asset exists under that name.
	// Returns ErrInvalidAssetName if the name fails validation.
	// Returns ErrAssetRead for other I/O failures.
	Open(name string) (io.ReadCloser, error)
}

// NewSource creates a Source for the given asset directory.
// If dir is empty, the source serves only the embedded built-in images.
// If dir is set, its files take precedence, with fallback to the built-ins
// for names the directory does not contain.
//
// Returns ErrInvalidAssetDir if dir is set but not a valid, readable directory.
func NewSource(dir string) (Source, error) {
	resolver, err := assets.NewResolver(dir)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &sourceAdapter{inner: resolver}, nil
}

// NewDirSource creates a Source serving files from dir, without the embedded
// fallback. Returns ErrInvalidAssetDir if dir is not a valid, readable
// directory.
func NewDirSource(dir string) (Source, error) {
	src, err := assets.NewDirSource(dir)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &sourceAdapter{inner: src}, nil
}

// NewFSSource creates a Source over any io/fs.FS, for custom backends and
// tests. Panics if fsys is nil (programmer error).
func NewFSSource(fsys fs.FS) Source {
	src, err := assets.NewFSSource(fsys)
	if err != nil {
		panic("assetimg: NewFSSource requires a non-nil fs.FS")
	}
	return &sourceAdapter{inner: src}
}

// sourceAdapter wraps an internal source to return public error values.
type sourceAdapter struct {
	inner assets.Source
}

func (a *sourceAdapter) Open(name string) (io.ReadCloser, error) {
	rc, err := a.inner.Open(name)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return rc, nil
}

// Compile-time interface check.
var _ Source = (*sourceAdapter)(nil)
