package assets

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// FSSource adapts an io/fs.FS into a Source. It backs custom asset storage
// (archives, generated filesystems, test fixtures) without a new Source
// implementation per backend.
// Implements Source interface.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource creates an FSSource over fsys.
// Returns ErrNilFS if fsys is nil.
func NewFSSource(fsys fs.FS) (*FSSource, error) {
	if fsys == nil {
		return nil, ErrNilFS
	}
	return &FSSource{fsys: fsys}, nil
}

// Open opens the named asset from the wrapped filesystem.
func (s *FSSource) Open(name string) (io.ReadCloser, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	f, err := s.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrAssetNotFound, name)
		}
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %q is a directory", ErrAssetNotFound, name)
	}

	return f, nil
}

// Compile-time interface check.
var _ Source = (*FSSource)(nil)
