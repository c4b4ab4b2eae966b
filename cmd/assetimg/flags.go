package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	assets    string
	workers   int
	maxPixels int
	quiet     bool
	verbose   bool
}

// newFlagSet creates a pflag set with the shared flags registered.
// Parsing errors are returned, not printed, so commands control output.
func newFlagSet(name string, cf *commonFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {} // usage text is handled by the help command

	fs.StringVarP(&cf.assets, "assets", "a", "", "Asset directory (empty = embedded built-ins only)")
	fs.IntVarP(&cf.workers, "workers", "w", 0, "Parallel workers for check (0 = auto)")
	fs.IntVar(&cf.maxPixels, "max-pixels", 0, "Decode pixel limit, width*height (0 = library default)")
	fs.BoolVarP(&cf.quiet, "quiet", "q", false, "Suppress non-error output")
	fs.BoolVarP(&cf.verbose, "verbose", "v", false, "Verbose output")

	return fs
}

// applyEnv fills flag values from ASSETIMG_* environment variables.
// Explicit flags win over the environment.
func applyEnv(fs *flag.FlagSet, cf *commonFlags, env *envConfig) {
	if !fs.Changed("assets") && env.Assets != "" {
		cf.assets = env.Assets
	}
	if !fs.Changed("workers") && env.Workers > 0 {
		cf.workers = env.Workers
	}
	if !fs.Changed("max-pixels") && env.MaxPixels > 0 {
		cf.maxPixels = env.MaxPixels
	}
}
