package kaleidoslice

import (
	"fmt"
	"image"
	"runtime"
)

type Options struct {
	// Number of column strips cut from the mirrored canvas. Must be even and >= 2.
	// The row strip count follows from it and the canvas aspect ratio.
	// Higher values give a finer, busier pattern; 2 only swaps halves around.
	Slices int
	// Strip pairs copied concurrently. Values <= 1 copy sequentially.
	// Only worth raising for canvases of several megapixels.
	Workers int
}

func DefaultOptions() Options {
	return Options{
		Slices:  30,
		Workers: 1,
	}
}

// OptionsFromSize derives options from the size of the source image
// (not the mirrored canvas).
func OptionsFromSize(size image.Point) Options {
	if size.X <= 0 || size.Y <= 0 {
		return DefaultOptions()
	}
	targetStrip := 32
	if size.X*size.Y > 1920*1080 {
		targetStrip = 48
	}
	n := (2 * size.X) / targetStrip
	n -= n % 2
	n = max(2, min(240, n))

	opt := DefaultOptions()
	opt.Slices = n
	if 4*size.X*size.Y >= 2048*2048 {
		opt.Workers = runtime.GOMAXPROCS(0)
	}
	return opt
}

// Process runs the whole kaleidoscope pipeline on a decoded image:
// quad mirror followed by the column and row strip interleave.
func Process(img image.Image, opt Options) (*image.NRGBA, error) {
	if err := ValidateSliceCount(opt.Slices); err != nil {
		return nil, err
	}
	src, err := FromImage(img)
	if err != nil {
		return nil, err
	}
	quad, err := MirrorQuad(src)
	if err != nil {
		return nil, err
	}
	out, err := sliceInterleave(quad, opt.Slices, opt.Workers)
	if err != nil {
		return nil, fmt.Errorf("process: %w", err)
	}
	return out.ToImage(), nil
}
