package kaleidoslice

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SliceInterleave cuts buf into sliceCount column strips and lays them
// out as pairs (0, n-1), (1, n-2), ... from left to right, then repeats
// the pairing on rows of that result. The row count is
// floor(sliceCount*h/w), which keeps the strips roughly square.
//
// Strip sizes are floor divisions of the image size. Pixels past the
// last full strip are never copied and stay transparent, and so does
// the last row strip when the row count is odd. A row count of zero
// leaves the whole result transparent.
func SliceInterleave(buf *PixelBuffer, sliceCount int) (*PixelBuffer, error) {
	return sliceInterleave(buf, sliceCount, 1)
}

// SliceInterleaveParallel is SliceInterleave with up to workers strip
// pairs copied at once. The output is identical.
func SliceInterleaveParallel(buf *PixelBuffer, sliceCount, workers int) (*PixelBuffer, error) {
	return sliceInterleave(buf, sliceCount, workers)
}

// ValidateSliceCount reports whether n can be used as a slice count.
func ValidateSliceCount(n int) error {
	if n < 2 {
		return fmt.Errorf("%w: slice count %d is less than 2", ErrInvalidArgument, n)
	}
	if n%2 != 0 {
		return fmt.Errorf("%w: slice count %d is odd", ErrInvalidArgument, n)
	}
	return nil
}

func sliceInterleave(buf *PixelBuffer, n, workers int) (*PixelBuffer, error) {
	if err := ValidateSliceCount(n); err != nil {
		return nil, err
	}
	if !buf.valid() {
		return nil, fmt.Errorf("slice: %w", ErrInvalidImage)
	}
	w, h := buf.w, buf.h
	out := newBlank(w, h)
	if n > w {
		// Strips would be zero pixels wide.
		return out, nil
	}

	cols := newBlank(w, h)
	interleave(cols, buf, strips{count: n, span: w / n, w: w, h: h}, workers)

	rowCount := n * h / w
	if rowCount == 0 {
		return out, nil
	}
	interleave(out, cols, strips{count: rowCount, span: h / rowCount, w: w, h: h, rows: true}, workers)
	return out, nil
}

// strips splits a w×h buffer into count bands of span pixels, columns
// by default or rows when rows is set.
type strips struct {
	count, span int
	w, h        int
	rows        bool
}

func (s strips) at(i int) Region {
	if s.rows {
		return Region{X: 0, Y: i * s.span, W: s.w, H: s.span}
	}
	return Region{X: i * s.span, Y: 0, W: s.span, H: s.h}
}

// interleave writes strip i to slot 2i and strip count-1-i to slot 2i+1
// for every i below count/2.
func interleave(dst, src *PixelBuffer, s strips, workers int) {
	pairs := s.count / 2
	place := func(i int) {
		a, b := s.at(i), s.at(s.count-1-i)
		da, db := s.at(2*i), s.at(2*i+1)
		copyRegion(dst, src, a, da.X, da.Y, FlipNone)
		copyRegion(dst, src, b, db.X, db.Y, FlipNone)
	}

	if workers <= 1 || pairs < 2 {
		for i := range pairs {
			place(i)
		}
		return
	}

	// Source strips are only read and destination slots are disjoint.
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range pairs {
		g.Go(func() error {
			place(i)
			return nil
		})
	}
	_ = g.Wait()
}
