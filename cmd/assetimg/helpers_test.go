package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// encodePNG renders a small gradient and encodes it as PNG.
func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 23), G: uint8(y * 23), B: 0x55, A: 0xff})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding PNG fixture: %v", err)
	}
	return buf.Bytes()
}

// writeFixture writes content under dir at a slash-separated relative name.
func writeFixture(t *testing.T, dir, name string, content []byte) {
	t.Helper()

	full := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		t.Fatalf("creating fixture dir: %v", err)
	}
	if err := os.WriteFile(full, content, 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
}

// testDeps builds Dependencies with buffered output and an empty environment.
func testDeps(vars map[string]string) (*Dependencies, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	deps := &Dependencies{
		Stdout:  &stdout,
		Stderr:  &stderr,
		Getenv:  func(key string) string { return vars[key] },
		Environ: func() []string { return nil },
	}
	return deps, &stdout, &stderr
}
