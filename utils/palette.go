package utils

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

type PaletteMethod int

const (
	PaletteMethodDominantColor PaletteMethod = iota
	PaletteMethodKMeans
)

func (m PaletteMethod) String() string {
	switch m {
	case PaletteMethodKMeans:
		return "kmeans"
	default:
		return "dominantcolor"
	}
}

func ParsePaletteMethod(s string) (PaletteMethod, error) {
	switch s {
	case "dominantcolor", "dominant", "":
		return PaletteMethodDominantColor, nil
	case "kmeans":
		return PaletteMethodKMeans, nil
	default:
		return 0, fmt.Errorf("unknown palette method %q (want dominantcolor or kmeans)", s)
	}
}

// WeightedColor is a palette candidate with its pixel share.
type WeightedColor struct {
	Col    colorful.Color
	Weight float64
}

// ExtractPalette returns up to k colors that describe img. Transparent
// remainder bands are trimmed first so they do not show up as a color.
func ExtractPalette(img image.Image, k int, method PaletteMethod) []colorful.Color {
	if k <= 0 {
		return nil
	}
	img = TrimTransparent(img)
	if img.Bounds().Empty() {
		return nil
	}
	switch method {
	case PaletteMethodKMeans:
		if p := extractKMeans(img, k); len(p) != 0 {
			return p
		}
		log.Println("palette warning: kmeans returned empty palette, falling back to dominantcolor")
		return extractDominant(img, k)
	default:
		return extractDominant(img, k)
	}
}

func extractDominant(img image.Image, k int) []colorful.Color {
	found := dominantcolor.FindWeight(img, max(24, k*8))
	if len(found) == 0 {
		found = []dominantcolor.Color{{RGBA: color.RGBA{R: 128, G: 128, B: 128, A: 255}, Weight: 1}}
	}
	cands := make([]WeightedColor, 0, len(found))
	for _, c := range found {
		col, _ := colorful.MakeColor(c.RGBA)
		cands = append(cands, WeightedColor{Col: col, Weight: c.Weight})
	}
	return SelectDiverseColors(cands, k)
}

func extractKMeans(img image.Image, k int) []colorful.Color {
	b := img.Bounds()
	const maxSamples = 12000
	step := 1
	if n := b.Dx() * b.Dy(); n > maxSamples {
		step = int(math.Sqrt(float64(n)/maxSamples)) + 1
	}

	var obs clusters.Observations
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r, g, bl, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			obs = append(obs, clusters.Coordinates{
				float64(r) / 0xffff,
				float64(g) / 0xffff,
				float64(bl) / 0xffff,
			})
		}
	}
	if len(obs) == 0 {
		return nil
	}

	cc, err := kmeans.New().Partition(obs, min(max(k*4, k+2), len(obs)))
	if err != nil || len(cc) == 0 {
		return nil
	}
	cands := make([]WeightedColor, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 || len(c.Observations) == 0 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}
		cands = append(cands, WeightedColor{Col: col, Weight: float64(len(c.Observations))})
	}
	return SelectDiverseColors(cands, k)
}

// SelectDiverseColors greedily picks k candidates, starting with the
// heaviest and then taking the one farthest in Lab space from those
// already picked, scaled by its weight.
func SelectDiverseColors(cands []WeightedColor, k int) []colorful.Color {
	if k <= 0 || len(cands) == 0 {
		return nil
	}
	k = min(k, len(cands))

	type item struct {
		col     colorful.Color
		l, a, b float64
		w       float64
	}
	items := make([]item, len(cands))
	maxW := 0.0
	for i, c := range cands {
		col := c.Col.Clamped()
		l, a, b := col.Lab()
		items[i] = item{col: col, l: l, a: a, b: b, w: max(c.Weight, 1e-6)}
		maxW = max(maxW, items[i].w)
	}

	seed := 0
	for i := range items {
		if items[i].w > items[seed].w {
			seed = i
		}
	}
	picked := []int{seed}
	used := make([]bool, len(items))
	used[seed] = true

	for len(picked) < k {
		best, bestScore := -1, -1.0
		for i, it := range items {
			if used[i] {
				continue
			}
			d2 := math.MaxFloat64
			for _, p := range picked {
				dl, da, db := it.l-items[p].l, it.a-items[p].a, it.b-items[p].b
				d2 = min(d2, dl*dl+da*da+db*db)
			}
			score := math.Sqrt(d2) * (0.55 + 0.45*math.Sqrt(it.w/maxW))
			if score > bestScore {
				best, bestScore = i, score
			}
		}
		if best < 0 {
			break
		}
		used[best] = true
		picked = append(picked, best)
	}

	out := make([]colorful.Color, len(picked))
	for i, p := range picked {
		out[i] = items[p].col
	}
	return out
}

// SortPaletteByBrightness orders colors from darkest to brightest.
func SortPaletteByBrightness(palette []colorful.Color) {
	slices.SortFunc(palette, func(a, b colorful.Color) int {
		ya, yb := luminance(a), luminance(b)
		switch {
		case ya < yb:
			return -1
		case ya > yb:
			return 1
		}
		return 0
	})
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// PaletteHex formats the palette as #rrggbb strings.
func PaletteHex(palette []colorful.Color) []string {
	out := make([]string, len(palette))
	for i, c := range palette {
		out[i] = c.Clamped().Hex()
	}
	return out
}

// PaletteImage renders the palette as a row of square tiles.
func PaletteImage(palette []colorful.Color, tileSize int) (*image.NRGBA, error) {
	if len(palette) == 0 {
		return nil, fmt.Errorf("empty palette")
	}
	if tileSize <= 0 {
		tileSize = 64
	}
	img := image.NewNRGBA(image.Rect(0, 0, tileSize*len(palette), tileSize))
	for i, c := range palette {
		r, g, b := c.Clamped().RGB255()
		fill := color.NRGBA{R: r, G: g, B: b, A: 255}
		for y := range tileSize {
			for x := i * tileSize; x < (i+1)*tileSize; x++ {
				img.SetNRGBA(x, y, fill)
			}
		}
	}
	return img, nil
}

func SavePalette(palette []colorful.Color, tileSize int, filename string) error {
	img, err := PaletteImage(palette, tileSize)
	if err != nil {
		return err
	}
	return SaveImage(img, filename)
}
