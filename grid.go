package mandel

import (
	"context"
	"fmt"
	"image"
	"math"
	"runtime"
	"sync"
)

// Linspace returns n values evenly spaced over [lo, hi]. The first value is
// exactly lo and, for n > 1, the last is exactly hi. n == 1 yields [lo].
func Linspace(lo, hi float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	axis := make([]float64, n)
	if n == 1 {
		axis[0] = lo
		return axis
	}
	axis[0], axis[n-1] = lo, hi
	d := float64(n - 1)
	step := (hi - lo) / d
	if math.IsInf(step, 0) {
		// hi - lo overflows; interpolate without forming the span.
		for i := 1; i < n-1; i++ {
			t := float64(i) / d
			axis[i] = lo*(1-t) + hi*t
		}
		return axis
	}
	for i := 1; i < n-1; i++ {
		axis[i] = float64(i)*step + lo
	}
	return axis
}

// linspaceAt returns Linspace(lo, hi, n)[i] without building the axis.
func linspaceAt(lo, hi float64, n, i int) float64 {
	if i == 0 {
		return lo
	}
	if i == n-1 {
		return hi
	}
	d := float64(n - 1)
	step := (hi - lo) / d
	if math.IsInf(step, 0) {
		t := float64(i) / d
		return lo*(1-t) + hi*t
	}
	return float64(i)*step + lo
}

// EscapeGrid holds the escape counts of every sample of a region.
// Row i samples the imaginary axis, column j the real axis; row 0 is Ymin.
// An EscapeGrid is never modified after it is returned.
type EscapeGrid struct {
	params Params
	counts []int // row-major, Height*Width
}

// NewEscapeGrid wraps counts computed elsewhere (remote workers, a cache).
// counts is copied.
func NewEscapeGrid(p Params, counts []int) (*EscapeGrid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	w, h := p.Resolution.Width, p.Resolution.Height
	if len(counts) != w*h {
		return nil, fmt.Errorf("%w: %d counts for %dx%d", ErrGridMismatch, len(counts), w, h)
	}
	for i, c := range counts {
		if c < 0 || c > p.MaxIter {
			return nil, fmt.Errorf("%w: count %d at row %d col %d outside [0, %d]", ErrGridMismatch, c, i/w, i%w, p.MaxIter)
		}
	}
	return &EscapeGrid{params: p, counts: append([]int(nil), counts...)}, nil
}

func (g *EscapeGrid) Params() Params { return g.params }

// Shape returns (height, width).
func (g *EscapeGrid) Shape() (rows, cols int) {
	return g.params.Resolution.Height, g.params.Resolution.Width
}

// At returns the count of (row, col). It panics if either index is out of
// range, as indexing Rows() would.
func (g *EscapeGrid) At(row, col int) int {
	rows, cols := g.Shape()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		panic(fmt.Sprintf("mandel: index (%d, %d) out of range for %dx%d grid", row, col, cols, rows))
	}
	return g.counts[row*cols+col]
}

// Row returns a copy of row i.
func (g *EscapeGrid) Row(i int) []int {
	w := g.params.Resolution.Width
	return append([]int(nil), g.counts[i*w:(i+1)*w]...)
}

// Rows returns a copy of the grid as a slice of rows.
func (g *EscapeGrid) Rows() [][]int {
	h, _ := g.Shape()
	rows := make([][]int, h)
	for i := range rows {
		rows[i] = g.Row(i)
	}
	return rows
}

// Counts returns a copy of the row-major counts.
func (g *EscapeGrid) Counts() []int {
	return append([]int(nil), g.counts...)
}

// Sample returns the point of the complex plane evaluated for (row, col).
func (g *EscapeGrid) Sample(row, col int) complex128 {
	rows, cols := g.Shape()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		panic(fmt.Sprintf("mandel: index (%d, %d) out of range for %dx%d grid", row, col, cols, rows))
	}
	r := g.params.Region
	return complex(linspaceAt(r.Xmin, r.Xmax, cols, col), linspaceAt(r.Ymin, r.Ymax, rows, row))
}

// Evaluate computes the escape grid for p using all available CPUs.
func Evaluate(p Params) (*EscapeGrid, error) {
	return EvaluateContext(context.Background(), p)
}

type evalOptions struct {
	workers int
}

// Option configures EvaluateContext.
type Option func(*evalOptions)

// WithWorkers sets the number of goroutines computing rows. n < 1 means
// runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *evalOptions) { o.workers = n }
}

// EvaluateContext computes the escape grid for p on a fixed pool of workers,
// each owning the rows it takes. ctx is checked between rows; when it is done
// no grid is returned.
func EvaluateContext(ctx context.Context, p Params, opts ...Option) (*EscapeGrid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	o := evalOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	w, h := p.Resolution.Width, p.Resolution.Height
	if o.workers > h {
		o.workers = h
	}
	re, im := p.RealAxis(), p.ImagAxis()
	counts := make([]int, w*h)

	rows := make(chan int)
	var wg sync.WaitGroup
	for range o.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rows {
				evalRow(counts[i*w:(i+1)*w], re, im[i], p.MaxIter)
			}
		}()
	}

feed:
	for i := range h {
		select {
		case rows <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(rows)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &EscapeGrid{params: p, counts: counts}, nil
}

func evalRow(dst []int, re []float64, im float64, maxIter int) {
	for j, x := range re {
		dst[j] = EscapeCount(complex(x, im), maxIter)
	}
}

// TileCounts are the escape counts of one tile, row-major.
type TileCounts struct {
	Tile   image.Rectangle `json:"tile"`
	Counts []int           `json:"counts"`
}

// Bounds is the rectangle of grid indices covered by p: X columns, Y rows.
func (p Params) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.Resolution.Width, p.Resolution.Height)
}

// RenderTile computes the counts of tile, a sub-rectangle of p.Bounds().
// The samples are the ones Evaluate uses, so tiles assemble into an
// identical grid.
func RenderTile(p Params, tile image.Rectangle) (TileCounts, error) {
	if err := p.Validate(); err != nil {
		return TileCounts{}, err
	}
	if tile.Empty() || !tile.In(p.Bounds()) {
		return TileCounts{}, fmt.Errorf("%w: %v not inside %v", ErrInvalidTile, tile, p.Bounds())
	}
	re, im := p.RealAxis(), p.ImagAxis()
	tw := tile.Dx()
	counts := make([]int, tw*tile.Dy())
	for y := tile.Min.Y; y < tile.Max.Y; y++ {
		off := (y - tile.Min.Y) * tw
		evalRow(counts[off:off+tw], re[tile.Min.X:tile.Max.X], im[y], p.MaxIter)
	}
	return TileCounts{Tile: tile, Counts: counts}, nil
}

// Validate checks that tc fits inside p.
func (tc TileCounts) Validate(p Params) error {
	if tc.Tile.Empty() || !tc.Tile.In(p.Bounds()) {
		return fmt.Errorf("%w: %v not inside %v", ErrInvalidTile, tc.Tile, p.Bounds())
	}
	if len(tc.Counts) != tc.Tile.Dx()*tc.Tile.Dy() {
		return fmt.Errorf("%w: %d counts for tile %v", ErrGridMismatch, len(tc.Counts), tc.Tile)
	}
	for _, c := range tc.Counts {
		if c < 0 || c > p.MaxIter {
			return fmt.Errorf("%w: count %d outside [0, %d]", ErrGridMismatch, c, p.MaxIter)
		}
	}
	return nil
}

// CopyInto writes tc into the row-major buffer dst of a grid of width w.
func (tc TileCounts) CopyInto(dst []int, w int) {
	tw := tc.Tile.Dx()
	for y := tc.Tile.Min.Y; y < tc.Tile.Max.Y; y++ {
		src := tc.Counts[(y-tc.Tile.Min.Y)*tw:][:tw]
		copy(dst[y*w+tc.Tile.Min.X:], src)
	}
}

// SplitTiles splits r into tiles of size tileW × tileH.
// Tiles at the right and bottom edges are smaller if r is not divisible.
func SplitTiles(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}

	w := r.Dx()
	h := r.Dy()

	var tiles []image.Rectangle

	for oy := 0; oy < h; oy += tileH {
		th := min(tileH, h-oy)

		for ox := 0; ox < w; ox += tileW {
			tw := min(tileW, w-ox)

			tiles = append(tiles, image.Rect(
				r.Min.X+ox,
				r.Min.Y+oy,
				r.Min.X+ox+tw,
				r.Min.Y+oy+th,
			))
		}
	}

	return tiles
}
