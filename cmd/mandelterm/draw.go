package main

import (
	"github.com/gdamore/tcell/v2"

	mandel "github.com/abdulmoid5/mandelbrot-visualizer"
	"github.com/abdulmoid5/mandelbrot-visualizer/render"
)

const halfBlock = '▀'

// fitScreen sizes the grid to a w x h terminal: one column per cell and two
// rows per line.
func fitScreen(p mandel.Params, w, h int) mandel.Params {
	p.Resolution = mandel.Resolution{Width: max(w, 1), Height: max(2*h, 1)}
	return p
}

// draw paints g with the imaginary axis pointing up. Each cell shows the upper
// sample as foreground and the lower one as background.
func draw(screen tcell.Screen, g *mandel.EscapeGrid, pal render.Palette) {
	img := render.Image(g, pal)
	b := img.Bounds()
	w, h := screen.Size()
	for y := 0; y < h && 2*y < b.Dy(); y++ {
		for x := 0; x < w && x < b.Dx(); x++ {
			top := img.RGBAAt(x, 2*y)
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B)))
			if 2*y+1 < b.Dy() {
				bottom := img.RGBAAt(x, 2*y+1)
				style = style.Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			}
			screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	screen.Show()
}
