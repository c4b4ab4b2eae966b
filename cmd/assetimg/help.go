package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: assetimg <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  info       Print format and dimensions of one asset")
	fmt.Fprintln(w, "  export     Decode an asset and write it as PNG")
	fmt.Fprintln(w, "  list       List assets visible through the source")
	fmt.Fprintln(w, "  check      Verify assets against a YAML manifest")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'assetimg help <command>' for details on a specific command.")
}

// printCommonFlags prints the flags shared by all commands.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -a, --assets <dir>      Asset directory (empty = embedded built-ins only)")
	fmt.Fprintln(w, "  -w, --workers <n>       Parallel workers for check (0 = auto)")
	fmt.Fprintln(w, "      --max-pixels <n>    Decode pixel limit, width*height (0 = default)")
	fmt.Fprintln(w, "  -q, --quiet             Suppress non-error output")
	fmt.Fprintln(w, "  -v, --verbose           Verbose output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  ASSETIMG_ASSETS, ASSETIMG_WORKERS, ASSETIMG_MAX_PIXELS")
}

// printInfoUsage prints usage for the info command.
func printInfoUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: assetimg info <name> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Load one asset and print its format and pixel dimensions.")
	fmt.Fprintln(w, "The format is detected from content, not from the name's extension.")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printExportUsage prints usage for the export command.
func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: assetimg export <name> <output.png> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Decode an asset (any supported format) and write it as PNG.")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printListUsage prints usage for the list command.
func printListUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: assetimg list [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List assets in the asset directory, probing each file's header.")
	fmt.Fprintln(w, "Without --assets, lists the embedded built-in images.")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: assetimg check [manifest.yaml] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Verify that every asset declared in the manifest loads and matches")
	fmt.Fprintln(w, "its declared format and dimensions. Defaults to ./assets.yaml.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Manifest format:")
	fmt.Fprintln(w, "  assets:")
	fmt.Fprintln(w, "    - name: logo.png")
	fmt.Fprintln(w, "      format: png      # optional")
	fmt.Fprintln(w, "      width: 128       # optional")
	fmt.Fprintln(w, "      height: 128      # optional")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// runHelp shows help for a specific command, or general usage.
func runHelp(args []string, deps *Dependencies) {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return
	}

	switch args[0] {
	case "info":
		printInfoUsage(deps.Stdout)
	case "export":
		printExportUsage(deps.Stdout)
	case "list":
		printListUsage(deps.Stdout)
	case "check":
		printCheckUsage(deps.Stdout)
	case "version", "help":
		printUsage(deps.Stdout)
	default:
		fmt.Fprintf(deps.Stderr, "unknown command %q\n\n", args[0])
		printUsage(deps.Stderr)
	}
}
