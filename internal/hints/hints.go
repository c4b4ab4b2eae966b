// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/alnah/go-assetimg/internal/fileutil"
)

// ForAssetsDir returns hints for an invalid or missing assets directory.
func ForAssetsDir(path string) string {
	var hints []string

	if path == "" {
		hints = append(hints, "pass --assets /path/to/assets or set ASSETIMG_ASSETS")
	} else if !fileutil.DirExists(path) {
		hints = append(hints, "create the directory or point --assets at an existing one")
	}

	return formatHints(hints)
}

// ForAssetNotFound returns hints for an asset missing from the configured source.
func ForAssetNotFound() string {
	return format("run 'assetimg list' to see available assets")
}

// ForDecodeFailure returns hints for undecodable asset content.
func ForDecodeFailure() string {
	return format("supported formats: png, jpeg, gif, bmp, tiff, webp")
}

// ForManifestNotFound returns hints for a missing manifest file.
func ForManifestNotFound() string {
	return format("pass the manifest path: assetimg check assets.yaml")
}

// format returns a single hint line.
func format(text string) string {
	return "\n  hint: " + text
}

// formatHints joins multiple hints, one line each.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	var b strings.Builder
	for _, h := range hints {
		b.WriteString(format(h))
	}
	return b.String()
}
