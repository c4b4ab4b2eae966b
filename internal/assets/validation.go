package assets

import (
	"fmt"
	"path"
	"strings"
)

// ValidateAssetName checks that an asset name is safe to resolve against a
// source. Names are path-like: forward-slash subpaths are allowed because
// bundled assets commonly live in subdirectories ("icons/back.png").
// Returns ErrInvalidAssetName if the name is empty, absolute, contains
// "." or ".." segments, backslashes, or NUL bytes.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "\\\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	if strings.HasPrefix(name, "/") {
		return fmt.Errorf("%w: absolute path %q", ErrInvalidAssetName, name)
	}
	// Reject names that normalize away ("." segments, "..", trailing slash).
	if path.Clean(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	for _, seg := range strings.Split(name, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}
