package main

import (
	"errors"
	"os"

	assetimg "github.com/alnah/go-assetimg"
	"github.com/alnah/go-assetimg/internal/manifest"
)

// Exit codes for the assetimg CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful operation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, names, or manifest content
	ExitIO      = 3 // Asset or file not found, permission denied
	ExitDecode  = 4 // Undecodable or oversized image content
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Decode errors (exit 4)
	if errors.Is(err, assetimg.ErrDecode) ||
		errors.Is(err, assetimg.ErrImageTooLarge) ||
		errors.Is(err, ErrCheckFailed) {
		return ExitDecode
	}

	// I/O errors (exit 3)
	if errors.Is(err, assetimg.ErrAssetNotFound) ||
		errors.Is(err, assetimg.ErrAssetRead) ||
		errors.Is(err, manifest.ErrManifestNotFound) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, assetimg.ErrInvalidAssetName) ||
		errors.Is(err, assetimg.ErrInvalidAssetDir) ||
		errors.Is(err, manifest.ErrManifestParse) ||
		errors.Is(err, manifest.ErrManifestInvalid) {
		return ExitUsage
	}

	return ExitGeneral
}
