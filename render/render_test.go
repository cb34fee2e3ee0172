package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"

	mandel "github.com/abdulmoid5/mandelbrot-visualizer"
)

func testGrid(t *testing.T) *mandel.EscapeGrid {
	t.Helper()
	p := mandel.Params{
		Region:     mandel.Region{Xmin: -2, Xmax: 1, Ymin: -1, Ymax: 1},
		Resolution: mandel.Resolution{Width: 3, Height: 2},
		MaxIter:    10,
	}
	g, err := mandel.NewEscapeGrid(p, []int{
		0, 5, 10, // row 0, Ymin
		10, 1, 2, // row 1, Ymax
	})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestImage_OriginLowerLeft(t *testing.T) {
	g := testGrid(t)
	img := Image(g, HSV{})
	if got := img.Bounds().Size(); got.X != 3 || got.Y != 2 {
		t.Fatalf("size = %v, want 3x2", got)
	}
	black := color.RGBA{A: 255}
	// Row 0 of the grid is the bottom line of the image.
	if got := img.RGBAAt(2, 1); got != black {
		t.Errorf("pixel (2, 1) = %v, want black for a bounded sample", got)
	}
	if got := img.RGBAAt(0, 0); got != black {
		t.Errorf("pixel (0, 0) = %v, want black for a bounded sample", got)
	}
	if got, want := img.RGBAAt(1, 1), (HSV{}).Color(5, 10); got != want {
		t.Errorf("pixel (1, 1) = %v, want %v", got, want)
	}
}

func TestGradient(t *testing.T) {
	g, err := NewGradient("#000000", "#ffffff")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		count, maxIter int
		want           color.RGBA
	}{
		{0, 4, color.RGBA{0, 0, 0, 255}},
		{4, 4, color.RGBA{0, 0, 0, 255}},
		{9, 4, color.RGBA{0, 0, 0, 255}},
	}
	for _, test := range tests {
		if diff := cmp.Diff(test.want, g.Color(test.count, test.maxIter)); diff != "" {
			t.Errorf("Color(%d, %d) (-want +got):\n%s", test.count, test.maxIter, diff)
		}
	}
	mid := g.Color(2, 4)
	if mid.R == 0 || mid.R == 255 || mid.A != 255 {
		t.Errorf("Color(2, 4) = %v, want a grey between the stops", mid)
	}
}

func TestHSV(t *testing.T) {
	tests := []struct {
		count, maxIter int
		want           color.RGBA
	}{
		{0, 100, color.RGBA{255, 0, 0, 255}},
		{5, 100, color.RGBA{255, 153, 0, 255}},
		{10, 100, color.RGBA{204, 255, 0, 255}},
		{25, 100, color.RGBA{0, 255, 255, 255}},
		{100, 100, color.RGBA{0, 0, 0, 255}},
	}
	for _, test := range tests {
		if diff := cmp.Diff(test.want, (HSV{}).Color(test.count, test.maxIter)); diff != "" {
			t.Errorf("Color(%d, %d) (-want +got):\n%s", test.count, test.maxIter, diff)
		}
	}
}

func TestNewGradient_BadHex(t *testing.T) {
	if _, err := NewGradient("#000000", "not a colour"); err == nil {
		t.Errorf("NewGradient accepted an invalid stop")
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "inferno", "hsv"} {
		if _, ok := ByName(name); !ok {
			t.Errorf("ByName(%q) not found", name)
		}
	}
	if _, ok := ByName("viridis"); ok {
		t.Errorf("ByName found an unknown palette")
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, testGrid(t), Inferno); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Size(); got.X != 3 || got.Y != 2 {
		t.Errorf("decoded size = %v, want 3x2", got)
	}
}
