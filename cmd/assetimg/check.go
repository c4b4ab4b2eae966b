package main

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	assetimg "github.com/alnah/go-assetimg"
	"github.com/alnah/go-assetimg/internal/manifest"
)

// Sentinel errors for the check command.
var (
	ErrCheckFailed = errors.New("manifest check failed")
	ErrMismatch    = errors.New("asset does not match manifest")
)

// Worker sizing constants.
const (
	// MinWorkers ensures at least one worker runs.
	MinWorkers = 1

	// MaxWorkers caps parallel decodes; each holds a full RGBA frame in memory.
	MaxWorkers = 16
)

// defaultManifestPath is used when check is invoked without arguments.
const defaultManifestPath = "assets.yaml"

// CheckResult holds the outcome of verifying a single manifest entry.
type CheckResult struct {
	Name string
	Err  error
	Info string // "png 128x128" on success
}

// runCheck verifies every manifest entry against the configured source.
func runCheck(args []string, cf *commonFlags, deps *Dependencies) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: check takes at most one manifest path", ErrUsage)
	}
	manifestPath := defaultManifestPath
	if len(args) == 1 {
		manifestPath = args[0]
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	loader, err := newLoader(cf, deps)
	if err != nil {
		return err
	}

	results := checkEntries(loader, m.Assets, resolveWorkers(cf.workers))

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "FAIL %s: %v\n", res.Name, res.Err)
			continue
		}
		if cf.verbose {
			fmt.Fprintf(deps.Stdout, "ok   %s: %s\n", res.Name, res.Info)
		}
	}

	if !cf.quiet {
		fmt.Fprintf(deps.Stdout, "%d assets checked, %d failed\n", len(results), failed)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d assets", ErrCheckFailed, failed, len(results))
	}
	return nil
}

// checkEntries verifies entries concurrently over a shared loader.
// The loader is safe for concurrent use; workers fan out over a jobs channel
// and write results by index, so output order matches manifest order.
func checkEntries(loader *assetimg.Loader, entries []manifest.Entry, workers int) []CheckResult {
	if len(entries) == 0 {
		return nil
	}

	if workers > len(entries) {
		workers = len(entries)
	}

	results := make([]CheckResult, len(entries))
	jobs := make(chan int, len(entries))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = checkEntry(loader, entries[idx])
			}
		}()
	}

	for idx := range entries {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	return results
}

// checkEntry loads one asset and verifies its declared constraints.
func checkEntry(loader *assetimg.Loader, entry manifest.Entry) CheckResult {
	res := CheckResult{Name: entry.Name}

	img, err := loader.Load(entry.Name)
	if err != nil {
		res.Err = err
		return res
	}
	res.Info = fmt.Sprintf("%s %dx%d", img.Format, img.Width(), img.Height())

	switch {
	case entry.Format != "" && img.Format != entry.Format:
		res.Err = fmt.Errorf("%w: format %s, manifest says %s", ErrMismatch, img.Format, entry.Format)
	case entry.Width > 0 && img.Width() != entry.Width:
		res.Err = fmt.Errorf("%w: width %d, manifest says %d", ErrMismatch, img.Width(), entry.Width)
	case entry.Height > 0 && img.Height() != entry.Height:
		res.Err = fmt.Errorf("%w: height %d, manifest says %d", ErrMismatch, img.Height(), entry.Height)
	}
	return res
}

// resolveWorkers turns the --workers flag into a concrete worker count.
// Zero or negative selects one worker per CPU, capped at MaxWorkers.
func resolveWorkers(n int) int {
	if n < MinWorkers {
		n = runtime.NumCPU()
	}
	if n < MinWorkers {
		n = MinWorkers
	}
	if n > MaxWorkers {
		n = MaxWorkers
	}
	return n
}
