//go:build js && wasm

package main

import (
	"image"
	"syscall/js"
)

func canvas() js.Value {
	return js.Global().Get("document").Call("getElementById", "myCanvas")
}

func initCanvas(width, height int, color string) {
	c := canvas()
	c.Set("width", width)
	c.Set("height", height)

	ctx := c.Call("getContext", "2d")
	ctx.Set("fillStyle", color)
	ctx.Call("fillRect", 0, 0, width, height)
}

// drawImage copies img's pixels to the canvas at img's own position.
func drawImage(img *image.RGBA) {
	ctx := canvas().Call("getContext", "2d")

	jsData := js.Global().Get("Uint8ClampedArray").New(len(img.Pix))
	js.CopyBytesToJS(jsData, img.Pix)

	imageData := js.Global().Get("ImageData").New(jsData, img.Rect.Dx(), img.Rect.Dy())
	ctx.Call("putImageData", imageData, img.Rect.Min.X, img.Rect.Min.Y)
}
