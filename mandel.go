// Package mandel evaluates the escape time of the Mandelbrot set over a
// rectangular region of the complex plane.
package mandel

import (
	"fmt"
	"math"
	"sort"
)

// Region within the Mandelbrot set
type Region struct {
	Xmin float64 `yaml:"xmin" json:"xmin"`
	Xmax float64 `yaml:"xmax" json:"xmax"`
	Ymin float64 `yaml:"ymin" json:"ymin"`
	Ymax float64 `yaml:"ymax" json:"ymax"`
}

// Validate reports ErrInvalidRegion for inverted, degenerate or non-finite bounds.
func (r Region) Validate() error {
	for _, v := range [...]float64{r.Xmin, r.Xmax, r.Ymin, r.Ymax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite bound in %v", ErrInvalidRegion, r)
		}
	}
	if r.Xmin >= r.Xmax {
		return fmt.Errorf("%w: xmin %g >= xmax %g", ErrInvalidRegion, r.Xmin, r.Xmax)
	}
	if r.Ymin >= r.Ymax {
		return fmt.Errorf("%w: ymin %g >= ymax %g", ErrInvalidRegion, r.Ymin, r.Ymax)
	}
	return nil
}

func (r Region) String() string {
	return fmt.Sprintf("[%g, %g] x [%g, %g]i", r.Xmin, r.Xmax, r.Ymin, r.Ymax)
}

// Resolution is the pixel size of an escape grid.
type Resolution struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

func (r Resolution) Validate() error {
	if r.Width < 1 || r.Height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidResolution, r.Width, r.Height)
	}
	return nil
}

// Params is everything an evaluation depends on.
type Params struct {
	Region     Region     `yaml:"region" json:"region"`
	Resolution Resolution `yaml:"resolution" json:"resolution"`
	MaxIter    int        `yaml:"max_iter" json:"max_iter"`
}

// DefaultParams returns the classic full view of the set: [-2, 1] x [-1.5, 1.5]i
// at 800x600 with 100 iterations.
func DefaultParams() Params {
	return Params{
		Region:     FullSet,
		Resolution: Resolution{Width: 800, Height: 600},
		MaxIter:    100,
	}
}

// Validate checks params in the order region, resolution, iteration bound.
func (p Params) Validate() error {
	if err := p.Region.Validate(); err != nil {
		return err
	}
	if err := p.Resolution.Validate(); err != nil {
		return err
	}
	if p.MaxIter < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidIterationBound, p.MaxIter)
	}
	return nil
}

// RealAxis returns the Width real parts sampled by the grid columns.
func (p Params) RealAxis() []float64 {
	return Linspace(p.Region.Xmin, p.Region.Xmax, p.Resolution.Width)
}

// ImagAxis returns the Height imaginary parts sampled by the grid rows.
func (p Params) ImagAxis() []float64 {
	return Linspace(p.Region.Ymin, p.Region.Ymax, p.Resolution.Height)
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Full set – the whole set with some margin
	FullSet = Region{
		Xmin: -2,
		Xmax: 1,
		Ymin: -1.5,
		Ymax: 1.5,
	}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		Xmin: -1.85,
		Xmax: -1.75,
		Ymin: -0.10,
		Ymax: -0.02,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{
		Xmin: -0.7400,
		Xmax: -0.7350,
		Ymin: 0.1800,
		Ymax: 0.1850,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		Xmin: -1.7390,
		Xmax: -1.7375,
		Ymin: -0.0235,
		Ymax: -0.0220,
	}
)

var landmarks = map[string]Region{
	"full-set":                FullSet,
	"seahorse-valley":         SeahorseValley,
	"elephant-valley":         ElephantValley,
	"spiral-minibrot":         SpiralMinibrot,
	"triple-spiral":           TripleSpiral,
	"valley-of-the-dragon":    ValleyOfTheDragon,
	"minibrot-in-mini-spiral": MinibrotInMiniSpiral,
}

// Landmark looks up a classic region by its kebab-case name.
func Landmark(name string) (Region, bool) {
	r, ok := landmarks[name]
	return r, ok
}

// LandmarkNames returns the known landmark names, sorted.
func LandmarkNames() []string {
	names := make([]string, 0, len(landmarks))
	for name := range landmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
