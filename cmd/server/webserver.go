package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/abdulmoid5/mandelbrot-visualizer/mandelrpc"
	"github.com/abdulmoid5/mandelbrot-visualizer/render"
)

// webServer serves the websocket endpoints for workers and clients (irpc on
// /ws, JSON-RPC on /jsonrpc), the finished grid as PNG and the render
// progress as JSON. When staticDir is set its files (index.html, main.wasm of
// the web client) are served at /.
func webServer(addr, staticDir string, irpcL, jsonrpcL *mandelrpc.WebsocketListener, s *gridWorkScheduler, pal render.Palette) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", irpcL.Handler())
	mux.HandleFunc("/jsonrpc", jsonrpcL.Handler())
	mux.HandleFunc("/grid.png", gridPNGHandler(s, pal))
	mux.HandleFunc("/progress", progressHandler(s))
	if staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost%s", addr)
	return srv
}

// gridPNGHandler waits for the grid to be complete, or the client to give up.
func gridPNGHandler(s *gridWorkScheduler, pal render.Palette) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := s.GetGrid(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		if err := render.WritePNG(w, g, pal); err != nil {
			log.Printf("write png: %v", err)
		}
	}
}

func progressHandler(s *gridWorkScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := s.Progress(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(p); err != nil {
			log.Printf("write progress: %v", err)
		}
	}
}
