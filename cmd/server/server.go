package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"

	"github.com/marben/irpc"
	"github.com/sourcegraph/jsonrpc2"

	mandel "github.com/abdulmoid5/mandelbrot-visualizer"
	"github.com/abdulmoid5/mandelbrot-visualizer/config"
	"github.com/abdulmoid5/mandelbrot-visualizer/gridcache"
	"github.com/abdulmoid5/mandelbrot-visualizer/mandelrpc"
	"github.com/abdulmoid5/mandelbrot-visualizer/render"
)

var (
	configPath = flag.String("config", "", "YAML config file")
	landmark   = flag.String("landmark", "", "render a named region instead of the configured one")
	local      = flag.Int("local", 0, "number of renderers running inside the server")
	cachePath  = flag.String("cache", "", "bbolt file caching finished grids (overrides config)")
	verbose    = flag.Bool("v", false, "log every message on the /jsonrpc endpoint")
	staticDir  = flag.String("static", "./static", "directory with the web client, empty to disable")
)

// main is the entry point for the Mandelbrot server.
// Tiles are computed by connected workers (and -local renderers); the server
// only coordinates, assembles the grid and hands it out.
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
	if *cachePath != "" {
		cfg.CachePath = *cachePath
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}
	if cfg.TileSize < 1 {
		return fmt.Errorf("tile_size must be positive, got %d", cfg.TileSize)
	}
	pal, ok := render.ByName(cfg.Palette)
	if !ok {
		return fmt.Errorf("unknown palette %q", cfg.Palette)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scheduler, closeCache, err := newScheduler(params, cfg)
	if err != nil {
		return err
	}
	defer closeCache()
	log.Printf("rendering %v at %dx%d, max_iter %d", params.Region,
		params.Resolution.Width, params.Resolution.Height, params.MaxIter)

	for i := range *local {
		go func() {
			r := mandel.LocalRenderer{}
			if err := scheduler.render(ctx, r); err != nil {
				log.Printf("local renderer %d: %v", i, err)
			}
		}()
	}

	irpcServer := newIrpcServer(scheduler)

	// JSON-RPC gateway for peers that don't speak irpc
	var connOpts []jsonrpc2.ConnOpt
	connOpts = append(connOpts, jsonrpc2.SetLogger(log.Default()))
	if *verbose {
		connOpts = append(connOpts, jsonrpc2.LogMessages(log.Default()))
	}
	handler := mandelrpc.Handler(mandelrpc.NewGridProviderService(scheduler))
	onJSONRPCConnect := func(nc net.Conn) {
		log.Printf("got json-rpc connection from: %s", nc.RemoteAddr())
		conn := mandelrpc.NewConn(ctx, nc, handler, connOpts...)
		go func() {
			<-conn.DisconnectNotify()
			log.Printf("disconnected: %s", nc.RemoteAddr())
		}()
		if err := scheduler.render(ctx, mandelrpc.NewRendererClient(conn)); err != nil {
			log.Printf("err: render on client %q: %v", nc.RemoteAddr(), err)
		}
	}

	// TCP
	log.Printf("tcp listening on %s", cfg.Server.TCPAddr)
	tcpListener, err := net.Listen("tcp", cfg.Server.TCPAddr)
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	// WEBSOCKET
	websocketListener := mandelrpc.NewWebsocketListener(ctx, cfg.Server.HTTPAddr+"/ws")
	jsonrpcListener := mandelrpc.NewWebsocketListener(ctx, cfg.Server.HTTPAddr+"/jsonrpc")
	httpServer := webServer(cfg.Server.HTTPAddr, *staticDir, websocketListener, jsonrpcListener, scheduler, pal)

	errc := make(chan error, 4)
	go func() {
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("httpServer: %w", err)
		}
	}()
	// irpcServer serves both tcp and websocket connections
	go func() { errc <- serveIrpc(irpcServer, tcpListener) }()
	go func() { errc <- serveIrpc(irpcServer, websocketListener) }()
	go func() { errc <- serve(jsonrpcListener, onJSONRPCConnect) }()

	log.Printf("mb server waiting for tcp and websocket connections")
	select {
	case err = <-errc:
	case <-ctx.Done():
		log.Printf("shutting down")
	}
	if cerr := irpcServer.Close(); cerr != nil {
		log.Printf("irpc server close: %v", cerr)
	}
	jsonrpcListener.Close()
	httpServer.Close()
	return err
}

// newScheduler starts from a cached grid when there is one, and stores the
// grid once it is complete.
func newScheduler(p mandel.Params, cfg config.Config) (*gridWorkScheduler, func(), error) {
	if cfg.CachePath == "" {
		return newGridWorkScheduler(p, cfg.TileSize), func() {}, nil
	}
	cache, err := gridcache.Open(cfg.CachePath)
	if err != nil {
		return nil, nil, err
	}
	closeCache := func() {
		if err := cache.Close(); err != nil {
			log.Printf("close cache: %v", err)
		}
	}
	g, ok, err := cache.Get(p)
	if err != nil {
		log.Printf("cache: %v", err)
	}
	if ok {
		log.Printf("serving cached grid from %s", cfg.CachePath)
		return newFinishedScheduler(g), closeCache, nil
	}
	s := newGridWorkScheduler(p, cfg.TileSize)
	s.onDone = func(g *mandel.EscapeGrid) {
		if err := cache.Put(g); err != nil {
			log.Printf("cache put: %v", err)
		}
	}
	return s, closeCache, nil
}

// newIrpcServer serves GridProvider on every connection and plugs the
// peer's Renderer into the scheduler as a worker.
func newIrpcServer(scheduler *gridWorkScheduler) *irpc.Server {
	return irpc.NewServer(
		irpc.WithServices(mandel.NewGridProviderIrpcService(scheduler)),
		irpc.WithOnConnect(func(ep *irpc.Endpoint) {
			go func() {
				log.Printf("got connection from: %s", ep.RemoteAddr())
				rendererIrpcClient, err := mandel.NewRendererIrpcClient(ep)
				if err != nil {
					log.Printf("err: new Renderer client: %v", err)
					return
				}
				if err := scheduler.render(ep.Context(), rendererIrpcClient); err != nil {
					log.Printf("err: render on client %q: %v", ep.RemoteAddr(), err)
				}
			}()
		}),
	)
}

// serveIrpc is irpcServer.Serve with a closed server or listener reported as nil.
func serveIrpc(s *irpc.Server, l net.Listener) error {
	err := s.Serve(l)
	if errors.Is(err, irpc.ErrServerClosed) || errors.Is(err, net.ErrClosed) {
		return nil
	}
	return fmt.Errorf("irpc serve %s: %w", l.Addr(), err)
}

// serve accepts connections until l is closed.
func serve(l net.Listener, onConnect func(net.Conn)) error {
	for {
		nc, err := l.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept on %s: %w", l.Addr(), err)
		}
		go onConnect(nc)
	}
}
