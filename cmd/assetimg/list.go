package main

import (
	"fmt"
	"text/tabwriter"

	assetimg "github.com/alnah/go-assetimg"
	"github.com/alnah/go-assetimg/internal/assets"
	"github.com/alnah/go-assetimg/internal/imaging"
)

// runList tabulates the assets visible through the configured source.
// Files are probed for header information only, not fully decoded.
func runList(args []string, cf *commonFlags, deps *Dependencies) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: list takes no arguments", ErrUsage)
	}

	var names []string
	if cf.assets != "" {
		discovered, err := discoverAssets(cf.assets)
		if err != nil {
			return err
		}
		names = discovered
	} else {
		names = assets.Names()
	}

	src, err := assetimg.NewSource(cf.assets)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFORMAT\tSIZE")

	probed := 0
	for _, name := range names {
		info, err := probeAsset(src, name)
		if err != nil {
			fmt.Fprintf(w, "%s\t-\t- (%v)\n", name, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%dx%d\n", name, info.Format, info.Width, info.Height)
		probed++
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if cf.verbose {
		fmt.Fprintf(deps.Stderr, "%d of %d assets probed\n", probed, len(names))
	}
	return nil
}

// probeAsset opens one asset and reads just its header.
func probeAsset(src assetimg.Source, name string) (imaging.Info, error) {
	rc, err := src.Open(name)
	if err != nil {
		return imaging.Info{}, err
	}
	defer rc.Close()

	return imaging.Probe(rc)
}
