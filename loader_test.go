package assetimg

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"
)

// encodePNG renders a small gradient and encodes it as PNG.
func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 31), G: uint8(y * 31), B: 0x80, A: 0xff})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding PNG fixture: %v", err)
	}
	return buf.Bytes()
}

// encodeJPEG renders a small solid image and encodes it as JPEG.
func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 0xc0, G: 0x30, B: 0x30, A: 0xff})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("encoding JPEG fixture: %v", err)
	}
	return buf.Bytes()
}

// testSource builds an in-memory Source from name -> content.
func testSource(files map[string][]byte) Source {
	fsys := fstest.MapFS{}
	for name, data := range files {
		fsys[name] = &fstest.MapFile{Data: data}
	}
	return NewFSSource(fsys)
}

func TestNewLoaderNilSourcePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("NewLoader(nil) did not panic")
		}
	}()
	NewLoader(nil)
}

func TestLoaderLoad(t *testing.T) {
	t.Parallel()

	src := testSource(map[string][]byte{
		"logo.png":       encodePNG(t, 16, 9),
		"icons/back.png": encodePNG(t, 8, 8),
		"notes.txt":      []byte("plain text, not an image"),
	})
	loader := NewLoader(src)

	t.Run("decodes a PNG asset", func(t *testing.T) {
		t.Parallel()

		img, err := loader.Load("logo.png")
		if err != nil {
			t.Fatalf("Load(logo.png) unexpected error: %v", err)
		}
		if img.Width() != 16 || img.Height() != 9 {
			t.Errorf("dimensions = %dx%d, want 16x9", img.Width(), img.Height())
		}
		if img.Format != FormatPNG {
			t.Errorf("Format = %q, want %q", img.Format, FormatPNG)
		}
	})

	t.Run("decodes a subdirectory asset", func(t *testing.T) {
		t.Parallel()

		img, err := loader.Load("icons/back.png")
		if err != nil {
			t.Fatalf("Load(icons/back.png) unexpected error: %v", err)
		}
		if img.Width() != 8 || img.Height() != 8 {
			t.Errorf("dimensions = %dx%d, want 8x8", img.Width(), img.Height())
		}
	})

	tests := []struct {
		name      string
		assetName string
		wantErr   error
	}{
		{
			name:      "missing asset returns ErrAssetNotFound",
			assetName: "missing.png",
			wantErr:   ErrAssetNotFound,
		},
		{
			name:      "empty name returns ErrInvalidAssetName",
			assetName: "",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "traversal name returns ErrInvalidAssetName",
			assetName: "../escape.png",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "undecodable content returns ErrDecode",
			assetName: "notes.txt",
			wantErr:   ErrDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			img, err := loader.Load(tt.assetName)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load(%q) error = %v, want %v", tt.assetName, err, tt.wantErr)
			}
			if img != nil {
				t.Errorf("Load(%q) returned image alongside error", tt.assetName)
			}
		})
	}
}

func TestLoaderLoadPixelLimit(t *testing.T) {
	t.Parallel()

	src := testSource(map[string][]byte{
		"big.png": encodePNG(t, 20, 20),
	})
	loader := NewLoader(src, WithMaxPixels(100))

	if _, err := loader.Load("big.png"); !errors.Is(err, ErrImageTooLarge) {
		t.Errorf("Load over pixel limit error = %v, want ErrImageTooLarge", err)
	}

	unlimited := NewLoader(src, WithMaxPixels(0))
	if _, err := unlimited.Load("big.png"); err != nil {
		t.Errorf("Load with limit disabled: unexpected error %v", err)
	}
}

func TestLoaderLoadIdempotent(t *testing.T) {
	t.Parallel()

	src := testSource(map[string][]byte{
		"logo.png": encodePNG(t, 12, 12),
	})
	loader := NewLoader(src)

	first, err := loader.Load("logo.png")
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}
	second, err := loader.Load("logo.png")
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}

	if first.Width() != second.Width() || first.Height() != second.Height() {
		t.Errorf("dimensions differ across loads: %dx%d vs %dx%d",
			first.Width(), first.Height(), second.Width(), second.Height())
	}
	if !bytes.Equal(first.RGBA.Pix, second.RGBA.Pix) {
		t.Error("pixel data differs across loads of identical content")
	}
	if first.RGBA == second.RGBA {
		t.Error("loads share a pixel buffer; each caller must own its image")
	}
}

func TestLoaderLoadContentSniffing(t *testing.T) {
	t.Parallel()

	// Extensions deliberately lie about the content.
	src := testSource(map[string][]byte{
		"photo.png":   encodeJPEG(t, 6, 4),
		"picture.jpg": encodePNG(t, 5, 5),
	})
	loader := NewLoader(src)

	tests := []struct {
		assetName  string
		wantFormat string
	}{
		{assetName: "photo.png", wantFormat: FormatJPEG},
		{assetName: "picture.jpg", wantFormat: FormatPNG},
	}

	for _, tt := range tests {
		t.Run(tt.assetName, func(t *testing.T) {
			t.Parallel()

			img, err := loader.Load(tt.assetName)
			if err != nil {
				t.Fatalf("Load(%q) unexpected error: %v", tt.assetName, err)
			}
			if img.Format != tt.wantFormat {
				t.Errorf("Load(%q) format = %q, want %q (content-sniffed)",
					tt.assetName, img.Format, tt.wantFormat)
			}
		})
	}
}

// brokenStream fails partway through a read.
type brokenStream struct{}

func (brokenStream) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }
func (brokenStream) Close() error             { return nil }

// failingSource simulates foreign Source implementations with raw errors.
type failingSource struct {
	openErr error
	broken  bool
}

func (s *failingSource) Open(string) (io.ReadCloser, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}
	if s.broken {
		return brokenStream{}, nil
	}
	return nil, fs.ErrNotExist
}

func TestLoaderForeignSourceErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		source  Source
		wantErr error
	}{
		{
			name:    "bare fs.ErrNotExist maps to ErrAssetNotFound",
			source:  &failingSource{openErr: fs.ErrNotExist},
			wantErr: ErrAssetNotFound,
		},
		{
			name:    "unknown open error maps to ErrAssetRead",
			source:  &failingSource{openErr: errors.New("backend unavailable")},
			wantErr: ErrAssetRead,
		},
		{
			name:    "stream failure maps to ErrAssetRead",
			source:  &failingSource{broken: true},
			wantErr: ErrAssetRead,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loader := NewLoader(tt.source)
			if _, err := loader.Load("anything.png"); !errors.Is(err, tt.wantErr) {
				t.Errorf("Load error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadImage(t *testing.T) {
	t.Parallel()

	src := testSource(map[string][]byte{
		"logo.png": encodePNG(t, 10, 10),
	})

	t.Run("success returns image and logs nothing", func(t *testing.T) {
		t.Parallel()

		var logBuf bytes.Buffer
		loader := NewLoader(src, WithLogger(slog.New(slog.NewTextHandler(&logBuf, nil))))

		img := loader.LoadImage("logo.png")
		if img == nil {
			t.Fatal("LoadImage(logo.png) = nil, want image")
		}
		if logBuf.Len() != 0 {
			t.Errorf("LoadImage logged on success: %q", logBuf.String())
		}
	})

	t.Run("failure returns nil and logs exactly one line naming the asset", func(t *testing.T) {
		t.Parallel()

		var logBuf bytes.Buffer
		loader := NewLoader(src, WithLogger(slog.New(slog.NewTextHandler(&logBuf, nil))))

		if img := loader.LoadImage("missing.png"); img != nil {
			t.Errorf("LoadImage(missing.png) = %v, want nil", img)
		}

		logged := strings.TrimSuffix(logBuf.String(), "\n")
		lines := strings.Split(logged, "\n")
		if logged == "" || len(lines) != 1 {
			t.Fatalf("LoadImage logged %d lines, want exactly 1: %q", len(lines), logged)
		}
		if !strings.Contains(lines[0], "missing.png") {
			t.Errorf("diagnostic line %q does not name the asset", lines[0])
		}
	})

	t.Run("default logger discards diagnostics", func(t *testing.T) {
		t.Parallel()

		loader := NewLoader(src)
		if img := loader.LoadImage("missing.png"); img != nil {
			t.Errorf("LoadImage(missing.png) = %v, want nil", img)
		}
	})
}

func TestWithLoggerNilPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithLogger(nil) did not panic")
		}
	}()
	WithLogger(nil)
}
