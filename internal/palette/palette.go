// Package palette provides the colors used to render tiling previews. Faces
// are colored by arity (number of corners), with hues spread around the HSV
// wheel so neighbouring shapes in a semi-regular tiling stay distinguishable.
package palette

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Arities covered by the precomputed fills: triangles up to dodecagons.
const (
	minArity = 3
	maxArity = 12
)

// Palette holds a fill per polygon arity plus background and outline colors.
type Palette struct {
	Background color.RGBA
	Stroke     color.RGBA
	fills      [maxArity - minArity + 1]color.RGBA
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// hsb converts from 0-100 ranges (hue, saturation, brightness) to RGBA.
func hsb(h, s, b float64) color.RGBA {
	hue := h * 3.6
	sat := clamp(s/100.0, 0, 1)
	bright := clamp(b/100.0, 0, 1)

	c := colorful.Hsv(hue, sat, bright)
	red, green, blue := c.RGB255()
	return color.RGBA{R: red, G: green, B: blue, A: 255}
}

// Default returns the preview palette. It's fixed, so previews of the same
// tiling are identical across runs.
func Default() Palette {
	p := Palette{
		Background: colornames.White,
		Stroke:     colornames.Darkslategray,
	}
	for k := minArity; k <= maxArity; k++ {
		p.fills[k-minArity] = arityFill(k)
	}
	return p
}

// arityFill steps the hue by the golden ratio per arity.
func arityFill(k int) color.RGBA {
	_, h := math.Modf(math.Abs(float64(k-minArity))*math.Phi + 0.55)
	return hsb(h*100, 45, 92)
}

// Fill returns the fill color for a face with the given number of corners.
func (p Palette) Fill(arity int) color.RGBA {
	if arity < minArity || arity > maxArity {
		return arityFill(arity)
	}
	return p.fills[arity-minArity]
}

// Hex formats c as "#rrggbb".
func Hex(c color.RGBA) string {
	cc, _ := colorful.MakeColor(c)
	return cc.Hex()
}
