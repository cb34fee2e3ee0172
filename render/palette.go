package render

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette maps an escape count to a colour.
type Palette interface {
	Color(count, maxIter int) color.RGBA
}

var inside = color.RGBA{A: 255}

// Gradient interpolates between evenly spaced stops in HCL space.
// Bounded samples (count == maxIter) are black.
type Gradient []colorful.Color

func (g Gradient) Color(count, maxIter int) color.RGBA {
	if count >= maxIter || len(g) == 0 {
		return inside
	}
	if len(g) == 1 {
		return toRGBA(g[0])
	}
	t := float64(count) / float64(maxIter) * float64(len(g)-1)
	i := int(t)
	if i >= len(g)-1 {
		return toRGBA(g[len(g)-1])
	}
	return toRGBA(g[i].BlendHcl(g[i+1], t-float64(i)).Clamped())
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// NewGradient parses hex stops such as "#fcffa4".
func NewGradient(hexStops ...string) (Gradient, error) {
	g := make(Gradient, len(hexStops))
	for i, h := range hexStops {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, err
		}
		g[i] = c
	}
	return g, nil
}

func mustGradient(hexStops ...string) Gradient {
	g, err := NewGradient(hexStops...)
	if err != nil {
		panic(err)
	}
	return g
}

// Inferno approximates matplotlib's inferno colour map.
var Inferno = mustGradient(
	"#000004", "#1b0c41", "#4a0c6b", "#781c6d", "#a52c60",
	"#cf4446", "#ed6925", "#fb9b06", "#f7d13d", "#fcffa4",
)

// HSV cycles the hue wheel every 50 iterations.
type HSV struct{}

func (HSV) Color(count, maxIter int) color.RGBA {
	if count >= maxIter {
		return inside
	}
	return toRGBA(colorful.Hsv(math.Mod(float64(count)*7.2, 360), 1, 1))
}

// ByName returns a palette by its flag/config name.
func ByName(name string) (Palette, bool) {
	switch name {
	case "", "inferno":
		return Inferno, true
	case "hsv":
		return HSV{}, true
	}
	return nil, false
}
