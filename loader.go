package assetimg

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/alnah/go-assetimg/internal/assets"
	"github.com/alnah/go-assetimg/internal/imaging"
)

// Loader decodes named assets into in-memory RGBA bitmaps.
//
// A Loader is stateless after construction and safe for concurrent use as
// long as its Source is; the sources provided by this package are. Calls are
// synchronous: Load blocks the caller for the duration of the read and the
// decode, with no cancellation or timeout semantics of its own. Every call
// re-opens and re-decodes from scratch; results are never cached.
type Loader struct {
	cfg    loaderConfig
	source Source
}

// NewLoader creates a Loader reading from src.
// Panics if src is nil: a loader without a source is a programming error and
// must fail at construction, not at first use.
func NewLoader(src Source, opts ...Option) *Loader {
	if src == nil {
		panic("assetimg: NewLoader requires a non-nil Source")
	}

	l := &Loader{
		source: src,
		cfg: loaderConfig{
			logger:    slog.New(slog.DiscardHandler),
			maxPixels: DefaultMaxPixels,
		},
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load opens the named asset and decodes it into an Image.
// The format is detected from stream content, never from the name's
// extension.
//
// Errors are distinguishable with errors.Is:
//   - ErrInvalidAssetName: name rejected before any I/O
//   - ErrAssetNotFound: no asset under that name
//   - ErrAssetRead: asset exists but its stream could not be read
//   - ErrDecode: stream content is not a decodable image
//   - ErrImageTooLarge: declared dimensions exceed the pixel limit
func (l *Loader) Load(name string) (*Image, error) {
	if err := assets.ValidateAssetName(name); err != nil {
		return nil, convertAssetError(err)
	}

	rc, err := l.source.Open(name)
	if err != nil {
		return nil, openError(name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, wrapError(ErrAssetRead, fmt.Errorf("reading %q: %v", name, err))
	}

	rgba, format, err := imaging.Decode(data, l.cfg.maxPixels)
	if err != nil {
		return nil, convertDecodeError(err)
	}

	return &Image{RGBA: rgba, Format: format}, nil
}

// LoadImage loads the named asset and returns the image, or nil if the asset
// cannot be opened or decoded. It is the convenience form of Load for callers
// that only care whether an image is available: any failure produces exactly
// one diagnostic log line naming the asset, and success produces none.
func (l *Loader) LoadImage(name string) *Image {
	img, err := l.Load(name)
	if err != nil {
		l.cfg.logger.Error("cannot open image", "asset", name, "error", err)
		return nil
	}
	return img
}

// openError normalizes Open failures from arbitrary Source implementations.
// Sources from this package already return public sentinels; foreign sources
// may surface raw fs errors instead.
func openError(name string, err error) error {
	switch {
	case errors.Is(err, ErrAssetNotFound),
		errors.Is(err, ErrInvalidAssetName),
		errors.Is(err, ErrAssetRead):
		return err
	case errors.Is(err, fs.ErrNotExist):
		return wrapError(ErrAssetNotFound, fmt.Errorf("asset not found: %q", name))
	default:
		return wrapError(ErrAssetRead, fmt.Errorf("opening %q: %v", name, err))
	}
}
