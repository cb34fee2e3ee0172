// Package render turns escape grids into images.
package render

import (
	"image"
	"image/png"
	"io"

	mandel "github.com/abdulmoid5/mandelbrot-visualizer"
)

// Image colours g with pal. The grid's row 0 (Ymin) is drawn as the bottom
// line of the image, so the imaginary axis points up.
func Image(g *mandel.EscapeGrid, pal Palette) *image.RGBA {
	rows, cols := g.Shape()
	maxIter := g.Params().MaxIter
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for i := range rows {
		y := rows - 1 - i
		for j, count := range g.Row(i) {
			img.SetRGBA(j, y, pal.Color(count, maxIter))
		}
	}
	return img
}

func WritePNG(w io.Writer, g *mandel.EscapeGrid, pal Palette) error {
	return png.Encode(w, Image(g, pal))
}
