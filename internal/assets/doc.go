// Package assets provides byte-stream access to named, bundled application
// assets.
//
// # Source Architecture
//
// The package implements a layered source system:
//
//	Source (interface)
//	    │
//	    ├── EmbeddedSource - serves built-in images from a go:embed filesystem
//	    ├── DirSource      - serves assets from a directory on disk
//	    ├── FSSource       - adapts any io/fs.FS (custom backends, tests)
//	    └── Resolver       - combines a custom source with embedded fallback
//
// EmbeddedSource provides the built-in stand-in images (placeholder,
// transparent) compiled into the binary.
//
// DirSource serves assets from a user-provided directory, with path traversal
// protection and symlink resolution.
//
// Resolver is the source behind the default loader configuration. It tries
// the custom source first, falling back to EmbeddedSource only when the asset
// is not found. Validation and I/O errors never trigger fallback.
//
// # Asset Names
//
// Asset names are path-like and may contain forward-slash subpaths
// ("icons/back.png"). Empty names, absolute paths, "." or ".." segments,
// backslashes, and NUL bytes are rejected before any I/O.
//
// # Security
//
// DirSource resolves symlinks and verifies that every opened path stays
// within its base directory, even when name validation is bypassed.
package assets
