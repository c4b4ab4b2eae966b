package main

import (
	"fmt"
)

// runInfo loads a single asset and prints its format and dimensions.
func runInfo(args []string, cf *commonFlags, deps *Dependencies) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: info takes exactly one asset name", ErrUsage)
	}
	name := args[0]

	loader, err := newLoader(cf, deps)
	if err != nil {
		return err
	}

	img, err := loader.Load(name)
	if err != nil {
		return fmt.Errorf("loading %q: %w", name, err)
	}

	fmt.Fprintf(deps.Stdout, "%s: %s %dx%d\n", name, img.Format, img.Width(), img.Height())
	return nil
}
