// mandel computes an escape grid on this machine and writes it as a PNG.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/mattn/go-isatty"

	mandel "github.com/abdulmoid5/mandelbrot-visualizer"
	"github.com/abdulmoid5/mandelbrot-visualizer/config"
	"github.com/abdulmoid5/mandelbrot-visualizer/gridcache"
	"github.com/abdulmoid5/mandelbrot-visualizer/render"
)

var errTerminal = errors.New("refusing to write PNG to a terminal, use -o FILE or a pipe")

type flags struct {
	configPath string
	out        string
	dumpConfig bool

	landmark   string
	xmin, xmax float64
	ymin, ymax float64
	width      int
	height     int
	maxIter    int
	workers    int
	palette    string
	cachePath  string
}

func main() {
	fs, f, err := parseFlags(os.Args[1:], flag.ExitOnError)
	if err != nil {
		log.Fatal(err)
	}
	if err := run(fs, f, os.Stdout); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func parseFlags(args []string, onError flag.ErrorHandling) (*flag.FlagSet, flags, error) {
	f := flags{}
	fs := flag.NewFlagSet("mandel", onError)
	def := config.Default()
	fs.StringVar(&f.configPath, "config", "", "YAML config file")
	fs.StringVar(&f.out, "o", "mandel.png", `output PNG file, "-" for stdout`)
	fs.BoolVar(&f.dumpConfig, "dump-config", false, "print the effective config as YAML and exit")
	fs.StringVar(&f.landmark, "landmark", "", fmt.Sprintf("named region, one of %v", mandel.LandmarkNames()))
	fs.Float64Var(&f.xmin, "xmin", def.Region.Xmin, "lower real bound")
	fs.Float64Var(&f.xmax, "xmax", def.Region.Xmax, "upper real bound")
	fs.Float64Var(&f.ymin, "ymin", def.Region.Ymin, "lower imaginary bound")
	fs.Float64Var(&f.ymax, "ymax", def.Region.Ymax, "upper imaginary bound")
	fs.IntVar(&f.width, "width", def.Resolution.Width, "grid width in pixels")
	fs.IntVar(&f.height, "height", def.Resolution.Height, "grid height in pixels")
	fs.IntVar(&f.maxIter, "max-iter", def.MaxIter, "iteration bound")
	fs.IntVar(&f.workers, "workers", def.Workers, "goroutines computing rows, 0 for all CPUs")
	fs.StringVar(&f.palette, "palette", def.Palette, "colour palette: inferno or hsv")
	fs.StringVar(&f.cachePath, "cache", "", "bbolt file caching computed grids")
	err := fs.Parse(args)
	return fs, f, err
}

// loadConfig reads the config file and applies the flags that were set
// explicitly on top of it.
func loadConfig(fs *flag.FlagSet, f flags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "landmark":
			cfg.Landmark = f.landmark
		case "xmin":
			cfg.Region.Xmin = f.xmin
		case "xmax":
			cfg.Region.Xmax = f.xmax
		case "ymin":
			cfg.Region.Ymin = f.ymin
		case "ymax":
			cfg.Region.Ymax = f.ymax
		case "width":
			cfg.Resolution.Width = f.width
		case "height":
			cfg.Resolution.Height = f.height
		case "max-iter":
			cfg.MaxIter = f.maxIter
		case "workers":
			cfg.Workers = f.workers
		case "palette":
			cfg.Palette = f.palette
		case "cache":
			cfg.CachePath = f.cachePath
		}
	})
	return cfg, nil
}

func run(fs *flag.FlagSet, f flags, stdout *os.File) error {
	cfg, err := loadConfig(fs, f)
	if err != nil {
		return err
	}
	if f.dumpConfig {
		b, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = stdout.Write(b)
		return err
	}

	params, err := cfg.Params()
	if err != nil {
		return err
	}
	pal, ok := render.ByName(cfg.Palette)
	if !ok {
		return fmt.Errorf("unknown palette %q", cfg.Palette)
	}
	if f.out == "-" && isatty.IsTerminal(stdout.Fd()) {
		return errTerminal
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, err := grid(ctx, params, cfg)
	if err != nil {
		return err
	}

	var w io.Writer = stdout
	if f.out != "-" {
		file, err := os.Create(f.out)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}
	if err := render.WritePNG(w, g, pal); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	if f.out != "-" {
		log.Printf("saved %s", f.out)
	}
	return nil
}

// grid evaluates params, going through the cache when one is configured.
func grid(ctx context.Context, params mandel.Params, cfg config.Config) (*mandel.EscapeGrid, error) {
	var cache *gridcache.Cache
	if cfg.CachePath != "" {
		var err error
		cache, err = gridcache.Open(cfg.CachePath)
		if err != nil {
			return nil, err
		}
		defer cache.Close()
		g, ok, err := cache.Get(params)
		if err != nil {
			log.Printf("cache: %v", err)
		}
		if ok {
			log.Printf("using cached grid from %s", cfg.CachePath)
			return g, nil
		}
	}

	start := time.Now()
	g, err := mandel.EvaluateContext(ctx, params, mandel.WithWorkers(cfg.Workers))
	if err != nil {
		return nil, err
	}
	log.Printf("evaluated %v at %dx%d, max_iter %d in %s", params.Region,
		params.Resolution.Width, params.Resolution.Height, params.MaxIter, time.Since(start))

	if cache != nil {
		if err := cache.Put(g); err != nil {
			log.Printf("cache put: %v", err)
		}
	}
	return g, nil
}
