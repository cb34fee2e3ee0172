// mandelterm evaluates an escape grid sized to the terminal and shows it
// with half-block characters, two grid rows per terminal line. Any key quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	mandel "github.com/abdulmoid5/mandelbrot-visualizer"
	"github.com/abdulmoid5/mandelbrot-visualizer/config"
	"github.com/abdulmoid5/mandelbrot-visualizer/render"
)

var (
	configPath = flag.String("config", "", "YAML config file")
	landmark   = flag.String("landmark", "", "named region to show")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *landmark != "" {
		cfg.Landmark = *landmark
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}
	pal, ok := render.ByName(cfg.Palette)
	if !ok {
		return fmt.Errorf("unknown palette %q", cfg.Palette)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	w, h := screen.Size()
	g, err := mandel.EvaluateContext(context.Background(), fitScreen(params, w, h), mandel.WithWorkers(cfg.Workers))
	if err != nil {
		return err
	}
	draw(screen, g, pal)

	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Clear()
			draw(screen, g, pal)
			screen.Sync()
		case *tcell.EventKey:
			return nil
		case nil:
			return nil
		}
	}
}
