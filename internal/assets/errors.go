package assets

import "errors"

// Sentinel errors for asset stream operations.
var (
	// ErrAssetNotFound indicates the requested asset does not exist.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrAssetRead indicates an I/O error occurred while opening or reading
	// an asset that exists.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrInvalidAssetName indicates the asset name is empty or contains
	// traversal sequences, absolute paths, backslashes, or NUL bytes.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the configured base path is not a valid
	// readable directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrPathTraversal indicates an attempt to access files outside the
	// base path.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrNilFS indicates a nil io/fs.FS was passed to NewFSSource.
	ErrNilFS = errors.New("nil filesystem")
)
