package main

import (
	"errors"
	"fmt"
	"image/png"
	"os"
)

// ErrWriteOutput indicates the exported file could not be written.
var ErrWriteOutput = errors.New("failed to write output file")

// File permission for exported images.
const exportFilePermissions = 0o644 // rw-r--r--: owner read+write, others read

// runExport decodes an asset and re-encodes it as PNG on disk.
// Useful for pulling a normalized copy of an asset out of a bundle,
// whatever its source format.
func runExport(args []string, cf *commonFlags, deps *Dependencies) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: export takes an asset name and an output path", ErrUsage)
	}
	name, outPath := args[0], args[1]

	loader, err := newLoader(cf, deps)
	if err != nil {
		return err
	}

	img, err := loader.Load(name)
	if err != nil {
		return fmt.Errorf("loading %q: %w", name, err)
	}

	f, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, exportFilePermissions) // #nosec G304 -- user-supplied output path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if err := png.Encode(f, img.RGBA); err != nil {
		_ = f.Close()
		_ = os.Remove(outPath)
		return fmt.Errorf("%w: encoding: %v", ErrWriteOutput, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !cf.quiet {
		fmt.Fprintf(deps.Stdout, "Exported %s (%s %dx%d) to %s\n",
			name, img.Format, img.Width(), img.Height(), outPath)
	}
	return nil
}
