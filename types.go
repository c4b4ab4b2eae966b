package assetimg

import (
	"image"
	"log/slog"
)

// Format names reported by Load, matching the registered codec names.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatGIF  = "gif"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
	FormatWebP = "webp"
)

// DefaultMaxPixels bounds decoded image size to 8192x8192 pixels.
// A small encoded stream can declare enormous dimensions; the limit keeps a
// hostile asset from exhausting memory during decode.
const DefaultMaxPixels = 8192 * 8192

// Image is an in-memory bitmap decoded from an asset stream.
// Pixels are always RGBA regardless of the source format, so callers get a
// consistent layout. The value is owned exclusively by the caller; loads are
// never cached or shared.
type Image struct {
	RGBA   *image.RGBA // decoded pixels
	Format string      // source format: "png", "jpeg", ...
}

// Width returns the pixel width of the image.
func (img *Image) Width() int {
	return img.RGBA.Bounds().Dx()
}

// Height returns the pixel height of the image.
func (img *Image) Height() int {
	return img.RGBA.Bounds().Dy()
}

// Option configures a Loader.
type Option func(*Loader)

// loaderConfig holds internal configuration for Loader.
type loaderConfig struct {
	logger    *slog.Logger
	maxPixels int
}

// WithLogger sets the logger used by LoadImage to report failures.
// Load never logs; it returns errors. By default LoadImage discards its one
// diagnostic line.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("assetimg: WithLogger requires a non-nil logger")
	}
	return func(l *Loader) {
		l.cfg.logger = logger
	}
}

// WithMaxPixels sets the decode pixel limit (width*height).
// Zero or negative disables the limit.
func WithMaxPixels(n int) Option {
	return func(l *Loader) {
		l.cfg.maxPixels = n
	}
}
