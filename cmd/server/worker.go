package main

import (
	"context"
	"fmt"
	"image"
	"log"
	"sync"

	mandel "github.com/abdulmoid5/mandelbrot-visualizer"
)

// gridWorkScheduler hands tiles of one escape grid to any number of
// renderers and assembles their results.
type gridWorkScheduler struct {
	params  mandel.Params
	counts  []int
	grid    *mandel.EscapeGrid
	workers int

	// done is canceled once grid is set
	done       context.Context
	doneCancel context.CancelFunc
	onDone     func(*mandel.EscapeGrid)

	totalTiles     int
	finishedTiles  int
	totalPixels    int
	finishedPixels int

	unstarted map[image.Rectangle]struct{}
	inProcess map[image.Rectangle]struct{}
	m         sync.Mutex
}

func newGridWorkScheduler(p mandel.Params, tileSize int) *gridWorkScheduler {
	allTilesSlice := mandel.SplitTiles(p.Bounds(), tileSize, tileSize)
	allTiles := make(map[image.Rectangle]struct{}, len(allTilesSlice))
	for _, t := range allTilesSlice {
		allTiles[t] = struct{}{}
	}
	done, cancel := context.WithCancel(context.Background())
	return &gridWorkScheduler{
		params:      p,
		counts:      make([]int, p.Resolution.Width*p.Resolution.Height),
		unstarted:   allTiles,
		inProcess:   make(map[image.Rectangle]struct{}),
		totalTiles:  len(allTiles),
		totalPixels: p.Resolution.Width * p.Resolution.Height,
		done:        done,
		doneCancel:  cancel,
	}
}

// newFinishedScheduler serves a grid that is already known, e.g. from the cache.
func newFinishedScheduler(g *mandel.EscapeGrid) *gridWorkScheduler {
	done, cancel := context.WithCancel(context.Background())
	cancel()
	rows, cols := g.Shape()
	return &gridWorkScheduler{
		params:         g.Params(),
		grid:           g,
		done:           done,
		doneCancel:     cancel,
		unstarted:      map[image.Rectangle]struct{}{},
		inProcess:      map[image.Rectangle]struct{}{},
		totalTiles:     1,
		finishedTiles:  1,
		totalPixels:    rows * cols,
		finishedPixels: rows * cols,
	}
}

func (s *gridWorkScheduler) popTile() (tile image.Rectangle, found bool) {
	s.m.Lock()
	defer s.m.Unlock()

	// Get unstarted tile
	if len(s.unstarted) > 0 {
		for tile = range s.unstarted {
			break
		}
		delete(s.unstarted, tile)

		// Move popped tile to currently processed tiles
		s.inProcess[tile] = struct{}{}
		return tile, true
	}

	// If there is no unstarted tile, we work again on a started one
	if len(s.inProcess) > 0 {
		for tile = range s.inProcess {
			break
		}

		return tile, true
	}

	return image.Rectangle{}, false
}

// GetGrid implements mandel.GridProvider. It blocks until every tile is done.
func (s *gridWorkScheduler) GetGrid(ctx context.Context) (*mandel.EscapeGrid, error) {
	select {
	case <-s.done.Done():
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	s.m.Lock()
	defer s.m.Unlock()
	return s.grid, nil
}

// Progress implements mandel.GridProvider.
func (s *gridWorkScheduler) Progress(context.Context) (mandel.Progress, error) {
	s.m.Lock()
	defer s.m.Unlock()
	return mandel.Progress{
		TotalTiles:    s.totalTiles,
		FinishedTiles: s.finishedTiles,
		Workers:       s.workers,
	}, nil
}

func (s *gridWorkScheduler) finished() float32 {
	s.m.Lock()
	defer s.m.Unlock()
	return float32(s.finishedPixels) / float32(s.totalPixels)
}

// tileFinished merges tc into the grid. Results for tiles that are already
// merged are dropped.
func (s *gridWorkScheduler) tileFinished(tc mandel.TileCounts) error {
	if err := tc.Validate(s.params); err != nil {
		return err
	}

	s.m.Lock()
	_, found := s.inProcess[tc.Tile]
	if !found {
		s.m.Unlock()
		return nil
	}
	tc.CopyInto(s.counts, s.params.Resolution.Width)
	delete(s.inProcess, tc.Tile)
	s.finishedTiles++
	s.finishedPixels += tc.Tile.Dx() * tc.Tile.Dy()

	var grid *mandel.EscapeGrid
	if len(s.unstarted) == 0 && len(s.inProcess) == 0 {
		g, err := mandel.NewEscapeGrid(s.params, s.counts)
		if err != nil {
			s.m.Unlock()
			return fmt.Errorf("assemble grid: %w", err)
		}
		s.grid, grid = g, g
		s.counts = nil
	}
	s.m.Unlock()

	log.Printf("finished: %f", s.finished())
	if grid != nil {
		s.doneCancel()
		if s.onDone != nil {
			s.onDone(grid)
		}
	}
	return nil
}

func (s *gridWorkScheduler) incActiveWorker() {
	s.m.Lock()
	s.workers++
	w := s.workers
	s.m.Unlock()

	log.Printf("workers: %d", w)
}

func (s *gridWorkScheduler) decActiveWorkers() {
	s.m.Lock()
	s.workers--
	w := s.workers
	s.m.Unlock()

	log.Printf("workers: %d", w)
}

// render computes unfinished tiles on renderer until none are left.
// It is safe to call from multiple goroutines, one per renderer.
func (s *gridWorkScheduler) render(ctx context.Context, renderer mandel.Renderer) error {
	s.incActiveWorker()
	defer s.decActiveWorkers()

	for {
		tile, found := s.popTile()
		if !found {
			return nil
		}
		tc, err := renderer.RenderTile(ctx, mandel.TileJob{Params: s.params, Tile: tile})
		if err != nil {
			return fmt.Errorf("render of tile %s: %w", tile, err)
		}
		if tc.Tile != tile {
			return fmt.Errorf("asked for tile %s, got %s", tile, tc.Tile)
		}
		if err := s.tileFinished(tc); err != nil {
			return fmt.Errorf("tile %s: %w", tile, err)
		}
	}
}

var _ mandel.GridProvider = (*gridWorkScheduler)(nil)
