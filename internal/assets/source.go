package assets

import "io"

// Source is the contract for opening a named asset as a byte stream.
// Implementations may serve from embedded files, a directory, or any custom
// backend (archive, network, database).
type Source interface {
	// Open opens the named asset for reading. The caller must close the
	// returned stream.
	// Returns ErrAssetNotFound if no asset exists under that name.
	// Returns ErrInvalidAssetName if the name fails validation.
	// Returns ErrAssetRead for other I/O failures.
	Open(name string) (io.ReadCloser, error)
}
