package assetimg

import (
	"errors"

	"github.com/alnah/go-assetimg/internal/assets"
	"github.com/alnah/go-assetimg/internal/imaging"
)

// Sentinel errors for asset image loading.
var (
	// ErrInvalidAssetName indicates the asset name is empty or contains
	// traversal sequences, absolute paths, backslashes, or NUL bytes.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrAssetNotFound indicates no asset exists under the requested name.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrAssetRead indicates the asset exists but its stream could not be
	// opened or read.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrDecode indicates the asset stream is not a decodable image in any
	// registered format.
	ErrDecode = errors.New("failed to decode image")

	// ErrImageTooLarge indicates the image's declared dimensions exceed the
	// loader's pixel limit.
	ErrImageTooLarge = errors.New("image exceeds pixel limit")

	// ErrInvalidAssetDir indicates the configured asset directory is not a
	// valid, readable directory.
	ErrInvalidAssetDir = errors.New("invalid asset directory")
)

// convertAssetError maps internal asset errors to public sentinel errors.
// Unknown errors pass through unchanged.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, assets.ErrInvalidAssetName):
		return wrapError(ErrInvalidAssetName, err)
	case errors.Is(err, assets.ErrAssetNotFound):
		return wrapError(ErrAssetNotFound, err)
	case errors.Is(err, assets.ErrPathTraversal):
		return wrapError(ErrAssetRead, err)
	case errors.Is(err, assets.ErrAssetRead):
		return wrapError(ErrAssetRead, err)
	case errors.Is(err, assets.ErrInvalidBasePath):
		return wrapError(ErrInvalidAssetDir, err)
	default:
		return err
	}
}

// convertDecodeError maps internal imaging errors to public sentinel errors.
func convertDecodeError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, imaging.ErrTooLarge):
		return wrapError(ErrImageTooLarge, err)
	case errors.Is(err, imaging.ErrDecode):
		return wrapError(ErrDecode, err)
	default:
		return err
	}
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the public sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}
