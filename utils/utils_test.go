package utils

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			c := color.NRGBA{R: 255, A: 255}
			if (x+y)%2 == 1 {
				c = color.NRGBA{B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"out.png", "png"},
		{"out.JPG", "jpeg"},
		{"dir/out.jpeg", "jpeg"},
		{"a.gif", "gif"},
		{"a.bmp", "bmp"},
		{"a.tif", "tiff"},
		{"a.TIFF", "tiff"},
		{"noext", "png"},
		{"a.webp", "png"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestSaveAndReadImage_Lossless(t *testing.T) {
	src := checker(5, 3)
	for _, name := range []string{"a.png", "a.bmp", "a.tiff"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := SaveImage(src, path); err != nil {
				t.Fatalf("SaveImage: %v", err)
			}
			got, err := ReadImage(path)
			if err != nil {
				t.Fatalf("ReadImage: %v", err)
			}
			if got.Bounds() != src.Bounds() {
				t.Fatalf("bounds = %v, want %v", got.Bounds(), src.Bounds())
			}
			for y := range 3 {
				for x := range 5 {
					want := src.NRGBAAt(x, y)
					c := color.NRGBAModel.Convert(got.At(x, y)).(color.NRGBA)
					if c != want {
						t.Errorf("(%d, %d) = %v, want %v", x, y, c, want)
					}
				}
			}
		})
	}
}

func TestSaveImage_JPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jpg")
	if err := SaveImage(checker(8, 8), path); err != nil {
		t.Fatal(err)
	}
	img, err := ReadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestEncodeImage_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeImage(&buf, checker(2, 2), "xcf"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestReadImage_Errors(t *testing.T) {
	if _, err := ReadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, _, err := DecodeImage(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("expected decode error")
	}
}

func TestFitImage(t *testing.T) {
	tests := []struct {
		w, h, max    int
		wantW, wantH int
	}{
		{100, 50, 0, 100, 50},
		{100, 50, 200, 100, 50},
		{100, 50, 100, 100, 50},
		{200, 100, 50, 50, 25},
		{100, 300, 30, 10, 30},
		{1000, 1, 10, 10, 1},
	}
	for _, tt := range tests {
		got := FitImage(checker(tt.w, tt.h), tt.max)
		b := got.Bounds()
		if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
			t.Errorf("FitImage(%dx%d, %d) = %dx%d, want %dx%d",
				tt.w, tt.h, tt.max, b.Dx(), b.Dy(), tt.wantW, tt.wantH)
		}
	}
}

func TestTrimTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 6, 5))
	for y := range 3 {
		for x := range 4 {
			img.SetNRGBA(x, y, color.NRGBA{G: 200, A: 255})
		}
	}
	got := TrimTransparent(img)
	if got.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Errorf("bounds = %v, want (0,0)-(4,3)", got.Bounds())
	}

	full := checker(3, 3)
	if got := TrimTransparent(full); got != image.Image(full) {
		t.Error("opaque image should be returned unchanged")
	}

	blank := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	if got := TrimTransparent(blank); !got.Bounds().Empty() {
		t.Errorf("blank image bounds = %v, want empty", got.Bounds())
	}
}
