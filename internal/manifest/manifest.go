// Package manifest parses YAML asset manifests.
//
// A manifest declares the assets an application expects to ship, with
// optional per-asset constraints the check command verifies after decoding:
//
//	assets:
//	  - name: logo.png
//	    format: png
//	    width: 128
//	    height: 128
//	  - name: icons/back.png
package manifest

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-assetimg/internal/yamlutil"
)

// Sentinel errors for manifest operations.
var (
	ErrManifestNotFound = errors.New("manifest file not found")
	ErrManifestParse    = errors.New("failed to parse manifest")
	ErrManifestInvalid  = errors.New("invalid manifest")
)

// MaxEntries caps the number of declared assets. Keeps a corrupted or
// hostile manifest from turning the check command into unbounded work.
const MaxEntries = 10000

// knownFormats lists the registered decode formats a manifest may pin.
var knownFormats = map[string]bool{
	"png":  true,
	"jpeg": true,
	"gif":  true,
	"bmp":  true,
	"tiff": true,
	"webp": true,
}

// Manifest declares the expected assets of an application bundle.
type Manifest struct {
	Assets []Entry `yaml:"assets"`
}

// Entry declares one expected asset with optional decode constraints.
// Zero-valued constraints are not checked.
type Entry struct {
	Name   string `yaml:"name"`             // asset name, required
	Format string `yaml:"format,omitempty"` // expected format: "png", "jpeg", ...
	Width  int    `yaml:"width,omitempty"`  // expected pixel width
	Height int    `yaml:"height,omitempty"` // expected pixel height
}

// Load reads and validates a manifest from path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied manifest path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrManifestParse, err)
	}

	var m Manifest
	if err := yamlutil.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestParse, err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks manifest-level and per-entry constraints.
func (m *Manifest) Validate() error {
	if len(m.Assets) == 0 {
		return fmt.Errorf("%w: no assets declared", ErrManifestInvalid)
	}
	if len(m.Assets) > MaxEntries {
		return fmt.Errorf("%w: %d assets (max %d)", ErrManifestInvalid, len(m.Assets), MaxEntries)
	}

	seen := make(map[string]bool, len(m.Assets))
	for i, entry := range m.Assets {
		if entry.Name == "" {
			return fmt.Errorf("%w: entry %d has no name", ErrManifestInvalid, i)
		}
		if seen[entry.Name] {
			return fmt.Errorf("%w: duplicate asset %q", ErrManifestInvalid, entry.Name)
		}
		seen[entry.Name] = true

		if entry.Format != "" && !knownFormats[entry.Format] {
			return fmt.Errorf("%w: asset %q has unknown format %q", ErrManifestInvalid, entry.Name, entry.Format)
		}
		if entry.Width < 0 || entry.Height < 0 {
			return fmt.Errorf("%w: asset %q has negative dimensions", ErrManifestInvalid, entry.Name)
		}
	}
	return nil
}
