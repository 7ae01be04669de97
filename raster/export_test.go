package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 8), G: uint8(y * 8), B: 128, A: 255})
		}
	}
	return img
}

func TestFormatFromPath(t *testing.T) {
	testCases := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"out.png", FormatPNG, false},
		{"OUT.PNG", FormatPNG, false},
		{"dir/still.webp", FormatWebP, false},
		{"still.jpg", 0, true},
		{"noext", 0, true},
	}

	for _, tc := range testCases {
		got, err := FormatFromPath(tc.path)
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: unexpected error state %v", tc.path, err)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("%s: expected %s, got %s", tc.path, tc.want, got)
		}
	}
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testImage(16, 8), FormatPNG); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("expected 16x8, got %v", b)
	}
}

func TestEncodeWebP(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testImage(16, 8), FormatWebP); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	data := buf.Bytes()
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WEBP" {
		t.Errorf("expected a RIFF/WEBP container, got % x", data[:min(12, len(data))])
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.png", "a.webp"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, testImage(4, 4)); err != nil {
			t.Fatalf("WriteFile %s: %v", name, err)
		}
		if st, err := os.Stat(path); err != nil || st.Size() == 0 {
			t.Errorf("expected non-empty %s", name)
		}
	}
	if err := WriteFile(filepath.Join(dir, "a.gif"), testImage(4, 4)); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestDownsample(t *testing.T) {
	src := testImage(32, 16)

	if got := Downsample(src, 1); got != image.Image(src) {
		t.Error("expected factor 1 to return the input")
	}

	got := Downsample(src, 2)
	if b := got.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("expected 16x8, got %v", b)
	}

	// Uniform input stays uniform
	flat := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := range flat.Pix {
		flat.Pix[i] = 200
	}
	out := Downsample(flat, 4).(*image.NRGBA)
	if c := out.NRGBAAt(1, 1); c.R < 198 || c.R > 202 {
		t.Errorf("expected flat color preserved, got %+v", c)
	}
}
