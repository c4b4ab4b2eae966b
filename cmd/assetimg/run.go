package main

import (
	"errors"
	"fmt"
	"log/slog"

	assetimg "github.com/alnah/go-assetimg"
	"github.com/alnah/go-assetimg/internal/hints"
	"github.com/alnah/go-assetimg/internal/manifest"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrUnknownCommand = errors.New("unknown command")
)

// run dispatches to the requested command and returns the process exit code.
func run(args []string, deps *Dependencies) int {
	warnUnknownEnvVars(deps.Environ(), deps.Stderr)

	if len(args) == 0 {
		printUsage(deps.Stderr)
		return ExitUsage
	}

	command, rest := args[0], args[1:]

	var err error
	switch command {
	case "info":
		err = withCommonFlags(command, rest, deps, runInfo)
	case "export":
		err = withCommonFlags(command, rest, deps, runExport)
	case "list":
		err = withCommonFlags(command, rest, deps, runList)
	case "check":
		err = withCommonFlags(command, rest, deps, runCheck)
	case "version":
		fmt.Fprintf(deps.Stdout, "assetimg %s\n", Version)
	case "help", "--help", "-h":
		runHelp(rest, deps)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}

	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// withCommonFlags parses shared flags and environment config, then invokes fn
// with the positional arguments that remain.
func withCommonFlags(command string, args []string, deps *Dependencies,
	fn func(args []string, cf *commonFlags, deps *Dependencies) error,
) error {
	cf := &commonFlags{}
	fs := newFlagSet(command, cf)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	applyEnv(fs, cf, loadEnvConfig(deps.Getenv))
	return fn(fs.Args(), cf, deps)
}

// newLoader builds the shared Source and Loader from resolved flags.
func newLoader(cf *commonFlags, deps *Dependencies) (*assetimg.Loader, error) {
	src, err := assetimg.NewSource(cf.assets)
	if err != nil {
		return nil, err
	}

	opts := []assetimg.Option{}
	if cf.maxPixels > 0 {
		opts = append(opts, assetimg.WithMaxPixels(cf.maxPixels))
	}
	if cf.verbose {
		opts = append(opts, assetimg.WithLogger(slog.New(slog.NewTextHandler(deps.Stderr, nil))))
	}

	return assetimg.NewLoader(src, opts...), nil
}

// hintFor returns an actionable hint suffix for the given error, if any.
func hintFor(err error) string {
	switch {
	case errors.Is(err, assetimg.ErrInvalidAssetDir):
		return hints.ForAssetsDir("")
	case errors.Is(err, assetimg.ErrAssetNotFound):
		return hints.ForAssetNotFound()
	case errors.Is(err, assetimg.ErrDecode):
		return hints.ForDecodeFailure()
	case errors.Is(err, manifest.ErrManifestNotFound):
		return hints.ForManifestNotFound()
	default:
		return ""
	}
}
