// worker lends its CPU to a Mandelbrot server: it connects, serves the
// Renderer irpc service and runs until the server hangs up.
package main

import (
	"context"
	"flag"
	"image"
	"log"
	"os"
	"os/signal"

	"github.com/marben/irpc"

	mandel "github.com/abdulmoid5/mandelbrot-visualizer"
	"github.com/abdulmoid5/mandelbrot-visualizer/mandelrpc"
)

var (
	addr    = flag.String("addr", ":8081", "server address, host:port for TCP or ws://host:port/ws")
	verbose = flag.Bool("v", false, "log every rendered tile")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("connecting to %s", *addr)
	nc, err := mandelrpc.Dial(ctx, *addr)
	if err != nil {
		return err
	}

	renderer := mandel.LocalRenderer{}
	if *verbose {
		renderer.OnTileRender = func(tile image.Rectangle) { log.Printf("rendering tile: %s", tile) }
	}

	// the server calls our renderer service to render tiles
	ep := irpc.NewEndpoint(nc, irpc.WithEndpointServices(mandel.NewRendererIrpcService(renderer)))
	defer ep.Close()
	log.Printf("connected, waiting for tiles")

	select {
	case <-ep.Context().Done():
		log.Printf("connection closed: %v", context.Cause(ep.Context()))
	case <-ctx.Done():
	}
	return nil
}
