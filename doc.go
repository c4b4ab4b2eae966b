// Package assetimg loads bundled application assets and decodes them into
// in-memory RGBA bitmaps.
//
// # Quick Start
//
// Create a source over your asset directory, wrap it in a loader, and load
// by name:
//
//	src, err := assetimg.NewSource("assets")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	loader := assetimg.NewLoader(src)
//
//	img, err := loader.Load("logo.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(img.Format, img.Width(), img.Height())
//
// Callers that only care whether an image is available can use the
// convenience form, which returns nil on any failure and emits a single
// diagnostic log line instead of an error:
//
//	if img := loader.LoadImage("logo.png"); img != nil {
//	    display(img.RGBA)
//	}
//
// # Sources
//
// Assets are read through the Source interface, injected at construction so
// a loader can never exist without one. The package ships three
// implementations:
//
//   - NewSource(dir): directory-backed with fallback to embedded built-ins
//     (a placeholder and a transparent pixel); empty dir serves built-ins only
//   - NewDirSource(dir): directory-backed, no fallback
//   - NewFSSource(fsys): any io/fs.FS, for custom backends and tests
//
// Asset names are path-like ("icons/back.png"). Names that are empty,
// absolute, or contain traversal segments are rejected before any I/O.
//
// # Decoding
//
// The image format is detected from stream content, never from the asset
// name's extension. PNG, JPEG, and GIF decode via the standard library; BMP,
// TIFF, and WebP via golang.org/x/image. Decoded pixels are always
// *image.RGBA. Declared dimensions are checked against a configurable pixel
// limit (WithMaxPixels) before full decode.
//
// # Errors
//
// Load distinguishes failure kinds as sentinel errors matched with
// errors.Is: ErrInvalidAssetName, ErrAssetNotFound, ErrAssetRead, ErrDecode,
// and ErrImageTooLarge. LoadImage collapses all of them into a nil result
// plus one log line (see WithLogger).
//
// # Concurrency
//
// A Loader is safe for concurrent use when its Source is. Load performs
// blocking I/O and CPU-bound decode work on the calling goroutine and
// defines no cancellation semantics; schedule calls accordingly.
package assetimg
