package kaleidoslice

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

var (
	// ErrInvalidArgument reports a slice count that is odd or below 2.
	ErrInvalidArgument = errors.New("kaleidoslice: invalid argument")
	// ErrInvalidImage reports a nil or zero-area image.
	ErrInvalidImage = errors.New("kaleidoslice: invalid image")
)

// PixelBuffer is an immutable, tightly packed RGBA raster.
// Channels are 8-bit and not premultiplied. Pixel (x, y) starts at
// pix[(y*w+x)*4].
type PixelBuffer struct {
	w, h int
	pix  []uint8
}

// NewPixelBuffer copies pix into a new buffer of size w×h.
func NewPixelBuffer(w, h int, pix []uint8) (*PixelBuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidImage, w, h)
	}
	if len(pix) != w*h*4 {
		return nil, fmt.Errorf("%w: expected %d bytes for %dx%d, got %d", ErrInvalidImage, w*h*4, w, h, len(pix))
	}
	buf := newBlank(w, h)
	copy(buf.pix, pix)
	return buf, nil
}

// FromImage converts a decoded image into a PixelBuffer whose origin is
// the image's Bounds().Min.
func FromImage(img image.Image) (*PixelBuffer, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidImage)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidImage, w, h)
	}
	buf := newBlank(w, h)
	if src, ok := img.(*image.NRGBA); ok {
		for y := range h {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(buf.pix[y*w*4:(y+1)*w*4], src.Pix[off:off+w*4])
		}
		return buf, nil
	}
	dst := &image.NRGBA{Pix: buf.pix, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return buf, nil
}

// newBlank allocates a fully transparent buffer. Callers validate sizes.
func newBlank(w, h int) *PixelBuffer {
	return &PixelBuffer{w: w, h: h, pix: make([]uint8, w*h*4)}
}

func (p *PixelBuffer) Width() int  { return p.w }
func (p *PixelBuffer) Height() int { return p.h }

func (p *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.w, p.h)
}

// At returns the pixel at (x, y). Out of range coordinates yield the
// zero color.
func (p *PixelBuffer) At(x, y int) color.NRGBA {
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return color.NRGBA{}
	}
	i := (y*p.w + x) * 4
	s := p.pix[i : i+4 : i+4]
	return color.NRGBA{R: s[0], G: s[1], B: s[2], A: s[3]}
}

// ToImage returns a copy of the buffer as an *image.NRGBA.
func (p *PixelBuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(p.Bounds())
	copy(img.Pix, p.pix)
	return img
}

func (p *PixelBuffer) valid() bool {
	return p != nil && p.w > 0 && p.h > 0 && len(p.pix) == p.w*p.h*4
}

// Region is a rectangular window into a PixelBuffer.
type Region struct {
	X, Y, W, H int
}

func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Flip selects the reflection applied while copying a region.
type Flip uint8

const (
	FlipHorizontal Flip = 1 << iota // mirror left-right
	FlipVertical                    // mirror top-bottom

	FlipNone Flip = 0
)

// copyRegion copies r from src into dst with its top-left corner at
// (dx, dy), reflecting it inside its own bounds according to flip.
// Both rectangles must lie inside their buffers.
func copyRegion(dst, src *PixelBuffer, r Region, dx, dy int, flip Flip) {
	if r.Empty() {
		return
	}
	rowBytes := r.W * 4
	for y := range r.H {
		sy := r.Y + y
		if flip&FlipVertical != 0 {
			sy = r.Y + r.H - 1 - y
		}
		so := (sy*src.w + r.X) * 4
		do := ((dy+y)*dst.w + dx) * 4
		srow := src.pix[so : so+rowBytes]
		drow := dst.pix[do : do+rowBytes]
		if flip&FlipHorizontal == 0 {
			copy(drow, srow)
			continue
		}
		for x := range r.W {
			s := srow[(r.W-1-x)*4:]
			d := drow[x*4:]
			d[0], d[1], d[2], d[3] = s[0], s[1], s[2], s[3]
		}
	}
}
