//go:build js && wasm

// webclient.go is a WASM web client for the distributed Mandelbrot renderer.
// It lends the browser's CPU to the server, shows rendering progress and
// draws the escape grid once it is complete.

package main

import (
	"context"
	"fmt"
	"image"
	"log"
	"syscall/js"
	"time"

	"github.com/marben/irpc"

	mandel "github.com/abdulmoid5/mandelbrot-visualizer"
	"github.com/abdulmoid5/mandelbrot-visualizer/render"
)

// main is the entry point for the WASM web client.
func main() {
	logScreenf("Starting WASM web client...")
	ctx := context.Background()

	// Step 1: Determine server address for WebSocket connection
	loc := js.Global().Get("window").Get("location")
	proto := "ws"
	if loc.Get("protocol").String() == "https:" {
		proto = "wss"
	}
	websocketUrl := proto + "://" + loc.Get("host").String() + "/ws"

	// Step 2: Connect to server via WebSocket
	logScreenf("Connecting to Mandelbrot server at %s...", websocketUrl)
	socket := newBrowserSocket(websocketUrl)

	// Step 3: Set up irpc endpoint and renderer service
	renderer := mandel.LocalRenderer{OnTileRender: func(tile image.Rectangle) { logScreenf("Rendering tile: %s", tile) }}
	ep := irpc.NewEndpoint(socket, irpc.WithEndpointServices(mandel.NewRendererIrpcService(renderer)))
	logScreenf("irpc endpoint created.")

	// Step 4: Follow progress, then draw the grid
	provider, err := mandel.NewGridProviderIrpcClient(ep)
	if err != nil {
		logFatalf("NewGridProviderIrpcClient: %v", err)
	}
	if err := progressLoop(ctx, provider); err != nil {
		logFatalf("progressLoop: %v", err)
	}
	g, err := provider.GetGrid(ctx)
	if err != nil {
		logFatalf("GetGrid: %v", err)
	}
	rows, cols := g.Shape()
	initCanvas(cols, rows, "#3a3a6e")
	drawImage(render.Image(g, render.Inferno))
	logScreenf("Drew %dx%d grid.", cols, rows)

	// Step 5: Block main goroutine to keep WASM running and keep rendering for others
	select {}
}

// logScreenf appends a formatted message to the log element in the DOM,
func logScreenf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)

	doc := js.Global().Get("document")
	logElem := doc.Call("getElementById", "log")
	logElem.Set("textContent", logElem.Get("textContent").String()+msg+"\n")
}

// logFatalf logs a fatal error to the log window and terminates the program.
func logFatalf(format string, a ...any) {
	logScreenf("FATAL: "+format, a...)
	log.Fatalf(format, a...)
}

// progressLoop polls the server until every tile is done, updating the HUD.
// Polling for brevity, instead of pushing updates from the server.
func progressLoop(ctx context.Context, gp mandel.GridProvider) error {
	for {
		p, err := gp.Progress(ctx)
		if err != nil {
			return fmt.Errorf("Progress: %w", err)
		}
		hudSet("tilesTotal", p.TotalTiles)
		hudSet("tilesDone", p.FinishedTiles)
		hudSet("workersRunning", p.Workers)
		if p.Done() {
			return nil
		}
		time.Sleep(250 * time.Millisecond)
	}
}

// hudSet writes a number into the HUD element with the given id.
func hudSet(id string, v int) {
	js.Global().Get("document").Call("getElementById", id).Set("textContent", v)
}
