package utils

import (
	"image"
	"image/color"

	"gonum.org/v1/gonum/stat"
)

// ChannelStat is the mean and standard deviation of one channel, 0-255.
type ChannelStat struct {
	Mean, StdDev float64
}

type Stats struct {
	Width, Height int
	// Pixels with non-zero alpha; R, G, B and A below only count these.
	Opaque     int
	R, G, B, A ChannelStat
}

// ChannelStats summarizes the non-transparent pixels of img using
// non-premultiplied channel values.
func ChannelStats(img image.Image) Stats {
	b := img.Bounds()
	s := Stats{Width: b.Dx(), Height: b.Dy()}
	var ch [4][]float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			ch[0] = append(ch[0], float64(c.R))
			ch[1] = append(ch[1], float64(c.G))
			ch[2] = append(ch[2], float64(c.B))
			ch[3] = append(ch[3], float64(c.A))
		}
	}
	s.Opaque = len(ch[0])
	if s.Opaque == 0 {
		return s
	}
	out := [4]*ChannelStat{&s.R, &s.G, &s.B, &s.A}
	for i, v := range ch {
		if len(v) == 1 {
			// sample std dev is undefined for one value
			out[i].Mean = v[0]
			continue
		}
		out[i].Mean, out[i].StdDev = stat.MeanStdDev(v, nil)
	}
	return s
}
