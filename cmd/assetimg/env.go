package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly defaults without repeating flags.
type envConfig struct {
	Assets    string // ASSETIMG_ASSETS: asset directory
	Workers   int    // ASSETIMG_WORKERS: parallel workers for check
	MaxPixels int    // ASSETIMG_MAX_PIXELS: decode pixel limit
}

// knownEnvVars lists valid ASSETIMG_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"ASSETIMG_ASSETS":     true,
	"ASSETIMG_WORKERS":    true,
	"ASSETIMG_MAX_PIXELS": true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numeric values are ignored rather than fatal; the flag default
// applies and a warning is the caller's choice via warnUnknownEnvVars.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		Assets: getenv("ASSETIMG_ASSETS"),
	}

	if raw := getenv("ASSETIMG_WORKERS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.Workers = n
		}
	}
	if raw := getenv("ASSETIMG_MAX_PIXELS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.MaxPixels = n
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for each ASSETIMG_* variable that is
// not recognized, catching typos like ASSETIMG_ASSET.
func warnUnknownEnvVars(environ []string, w io.Writer) {
	for _, kv := range environ {
		name, _, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, "ASSETIMG_") {
			continue
		}
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s\n", name)
		}
	}
}
