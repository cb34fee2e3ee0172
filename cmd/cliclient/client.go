// cliclient.go is a CLI client for the distributed Mandelbrot renderer.
// It connects to the Mandelbrot server, helps render tiles, waits for the
// complete escape grid and saves it as a PNG file.

package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"github.com/marben/irpc"

	mandel "github.com/abdulmoid5/mandelbrot-visualizer"
	"github.com/abdulmoid5/mandelbrot-visualizer/mandelrpc"
	"github.com/abdulmoid5/mandelbrot-visualizer/render"
)

var (
	addr    = flag.String("addr", ":8081", "server address, host:port for TCP or ws://host:port/ws")
	out     = flag.String("o", "mandel.png", "output PNG file")
	palette = flag.String("palette", "inferno", "colour palette: inferno or hsv")
)

// main is the entry point for the CLI client.
// It runs the client logic and logs any fatal errors.
func main() {
	flag.Parse()
	log.Printf("Starting CLI client...")
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run connects to the Mandelbrot server, requests the grid, and saves it as a PNG file.
// Returns an error if any step fails.
func run() error {
	pal, ok := render.ByName(*palette)
	if !ok {
		return fmt.Errorf("unknown palette %q", *palette)
	}
	ctx := context.Background()

	// Step 1: Connect to Mandelbrot server
	log.Printf("Connecting to Mandelbrot server on %s...", *addr)
	nc, err := mandelrpc.Dial(ctx, *addr)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}

	// Step 2: Serve the renderer, which the server can call to render tiles using our CPU
	renderer := mandel.LocalRenderer{OnTileRender: func(tile image.Rectangle) { log.Printf("Rendering tile: %s", tile) }}
	rendererService := mandel.NewRendererIrpcService(renderer)
	ep := irpc.NewEndpoint(nc, irpc.WithEndpointServices(rendererService))
	defer ep.Close()

	// Step 3: Create a client for the GridProvider interface
	log.Printf("Creating GridProvider client...")
	client, err := mandel.NewGridProviderIrpcClient(ep)
	if err != nil {
		return fmt.Errorf("failed to create GridProvider client: %w", err)
	}
	progress, err := client.Progress(ctx)
	if err != nil {
		return fmt.Errorf("client.Progress: %w", err)
	}
	log.Printf("Server has %d/%d tiles done with %d workers", progress.FinishedTiles, progress.TotalTiles, progress.Workers)

	// Step 4: Request the complete grid from the server
	log.Printf("Requesting the escape grid from server...")
	start := time.Now()
	g, err := client.GetGrid(ctx)
	if err != nil {
		return fmt.Errorf("client.GetGrid: %w", err)
	}
	rows, cols := g.Shape()
	log.Printf("Got %dx%d grid after %s", cols, rows, time.Since(start))

	// Step 5: Save the rendered image to a PNG file
	log.Printf("Saving rendered image to %q...", *out)
	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := render.WritePNG(f, g, pal); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	log.Printf("Fully rendered image saved to %q", *out)
	return f.Close()
}
