package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

// encodeFixture renders a small gradient and encodes it in the given format.
func encodeFixture(t *testing.T, format string, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 17), G: uint8(y * 17), B: 0x40, A: 0xff})
		}
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	case "gif":
		err = gif.Encode(&buf, img, nil)
	case "bmp":
		err = bmp.Encode(&buf, img)
	default:
		t.Fatalf("unknown fixture format %q", format)
	}
	if err != nil {
		t.Fatalf("encoding %s fixture: %v", format, err)
	}
	return buf.Bytes()
}

func TestDecodeFormats(t *testing.T) {
	t.Parallel()

	// WebP is decode-only upstream, so no fixture can be encoded here.
	for _, format := range []string{"png", "jpeg", "gif", "bmp"} {
		t.Run(format, func(t *testing.T) {
			t.Parallel()

			data := encodeFixture(t, format, 8, 6)

			rgba, gotFormat, err := Decode(data, 0)
			if err != nil {
				t.Fatalf("Decode(%s) unexpected error: %v", format, err)
			}
			if gotFormat != format {
				t.Errorf("Decode format = %q, want %q", gotFormat, format)
			}
			if b := rgba.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
				t.Errorf("Decode bounds = %v, want 8x6", b)
			}
		})
	}
}

func TestDecodeInvalidData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty input", data: nil},
		{name: "text bytes", data: []byte("not an image at all")},
		{name: "truncated magic", data: []byte{0x89, 'P'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, _, err := Decode(tt.data, 0); !errors.Is(err, ErrDecode) {
				t.Errorf("Decode(%s) error = %v, want ErrDecode", tt.name, err)
			}
		})
	}
}

func TestDecodePixelLimit(t *testing.T) {
	t.Parallel()

	data := encodeFixture(t, "png", 10, 10)

	t.Run("under limit decodes", func(t *testing.T) {
		t.Parallel()

		if _, _, err := Decode(data, 100); err != nil {
			t.Errorf("Decode at exact limit: unexpected error %v", err)
		}
	})

	t.Run("over limit returns ErrTooLarge", func(t *testing.T) {
		t.Parallel()

		if _, _, err := Decode(data, 99); !errors.Is(err, ErrTooLarge) {
			t.Errorf("Decode over limit error = %v, want ErrTooLarge", err)
		}
	})

	t.Run("zero disables limit", func(t *testing.T) {
		t.Parallel()

		if _, _, err := Decode(data, 0); err != nil {
			t.Errorf("Decode with limit disabled: unexpected error %v", err)
		}
	})
}

func TestDecodeConvertsToRGBA(t *testing.T) {
	t.Parallel()

	// JPEG decodes to YCbCr; the result must still be RGBA.
	data := encodeFixture(t, "jpeg", 4, 4)

	rgba, _, err := Decode(data, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if rgba == nil {
		t.Fatal("Decode returned nil image")
	}
	if rgba.Stride != rgba.Bounds().Dx()*4 {
		t.Errorf("unexpected stride %d for width %d", rgba.Stride, rgba.Bounds().Dx())
	}
}

func TestProbe(t *testing.T) {
	t.Parallel()

	t.Run("reports dimensions and format", func(t *testing.T) {
		t.Parallel()

		data := encodeFixture(t, "png", 12, 7)

		info, err := Probe(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("Probe unexpected error: %v", err)
		}
		want := Info{Width: 12, Height: 7, Format: "png"}
		if info != want {
			t.Errorf("Probe = %+v, want %+v", info, want)
		}
	})

	t.Run("invalid data returns ErrDecode", func(t *testing.T) {
		t.Parallel()

		if _, err := Probe(bytes.NewReader([]byte("junk"))); !errors.Is(err, ErrDecode) {
			t.Errorf("Probe(junk) error = %v, want ErrDecode", err)
		}
	})
}
