package kaleidoslice

import "fmt"

// MirrorQuad builds a canvas twice the size of src holding src and its
// three reflections:
//
//	src            | flipped left-right
//	---------------+-------------------
//	flipped top-   | flipped both ways
//	bottom         |
func MirrorQuad(src *PixelBuffer) (*PixelBuffer, error) {
	if !src.valid() {
		return nil, fmt.Errorf("mirror: %w", ErrInvalidImage)
	}
	w0, h0 := src.w, src.h
	out := newBlank(2*w0, 2*h0)
	all := Region{W: w0, H: h0}
	copyRegion(out, src, all, 0, 0, FlipNone)
	copyRegion(out, src, all, w0, 0, FlipHorizontal)
	copyRegion(out, src, all, 0, h0, FlipVertical)
	copyRegion(out, src, all, w0, h0, FlipHorizontal|FlipVertical)
	return out, nil
}
