// Package imaging decodes encoded raster bytes into RGBA bitmaps.
//
// The format is sniffed from stream content via the codecs registered with
// the standard image package, never from a file extension. PNG, JPEG, and
// GIF come from the standard library; BMP, TIFF, and WebP (decode-only)
// from golang.org/x/image.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Sentinel errors for decode operations.
var (
	// ErrDecode indicates the bytes are not a decodable image in any
	// registered format.
	ErrDecode = errors.New("failed to decode image")

	// ErrTooLarge indicates the image's declared dimensions exceed the
	// configured pixel limit.
	ErrTooLarge = errors.New("image exceeds pixel limit")
)

// Info describes an encoded image without decoding its pixels.
type Info struct {
	Width  int
	Height int
	Format string // registered format name: "png", "jpeg", ...
}

// Probe reads just enough of r to report dimensions and format.
// Returns ErrDecode if the header is not a recognized image format.
func Probe(r io.Reader) (Info, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return Info{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}

// Decode decodes data into an *image.RGBA, converting from the source color
// model when needed so callers always get a consistent pixel layout.
// maxPixels caps width*height before full decode, bounding memory against
// decompression bombs; a value <= 0 disables the limit.
// Returns the registered format name alongside the pixels.
func Decode(data []byte, maxPixels int) (*image.RGBA, string, error) {
	// Check declared dimensions before committing to a full decode.
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if maxPixels > 0 && int64(cfg.Width)*int64(cfg.Height) > int64(maxPixels) {
		return nil, format, fmt.Errorf("%w: %dx%d (limit %d pixels)",
			ErrTooLarge, cfg.Width, cfg.Height, maxPixels)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	// Convert to RGBA if needed.
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, format, nil
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	return rgba, format, nil
}
