package main

import (
	"context"
	"errors"
	"image"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	mandel "github.com/abdulmoid5/mandelbrot-visualizer"
)

var testParams = mandel.Params{
	Region:     mandel.SeahorseValley,
	Resolution: mandel.Resolution{Width: 50, Height: 35},
	MaxIter:    300,
}

func TestScheduler_AssemblesGrid(t *testing.T) {
	want, err := mandel.Evaluate(testParams)
	if err != nil {
		t.Fatal(err)
	}

	s := newGridWorkScheduler(testParams, 16)
	var stored *mandel.EscapeGrid
	s.onDone = func(g *mandel.EscapeGrid) { stored = g }

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.render(context.Background(), mandel.LocalRenderer{}); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	got, err := s.GetGrid(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want.Counts(), got.Counts()); diff != "" {
		t.Errorf("assembled grid (-want +got):\n%s", diff)
	}
	if stored != got {
		t.Errorf("onDone got %p, want the finished grid %p", stored, got)
	}

	p, _ := s.Progress(ctx)
	if want := (mandel.Progress{TotalTiles: 12, FinishedTiles: 12, Workers: 0}); p != want {
		t.Errorf("Progress = %+v, want %+v", p, want)
	}
	if f := s.finished(); f != 1 {
		t.Errorf("finished() = %f, want 1", f)
	}
}

type failingRenderer struct{ after int }

func (f *failingRenderer) RenderTile(ctx context.Context, job mandel.TileJob) (mandel.TileCounts, error) {
	if f.after == 0 {
		return mandel.TileCounts{}, errors.New("worker went away")
	}
	f.after--
	return mandel.RenderTile(job.Params, job.Tile)
}

func TestScheduler_FailedTileIsRetried(t *testing.T) {
	s := newGridWorkScheduler(testParams, 16)
	if err := s.render(context.Background(), &failingRenderer{after: 3}); err == nil {
		t.Fatal("render with a failing renderer returned nil")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := s.GetGrid(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("GetGrid before completion: %v", err)
	}

	if err := s.render(context.Background(), mandel.LocalRenderer{}); err != nil {
		t.Fatal(err)
	}
	got, err := s.GetGrid(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want, _ := mandel.Evaluate(testParams)
	if diff := cmp.Diff(want.Counts(), got.Counts()); diff != "" {
		t.Errorf("grid (-want +got):\n%s", diff)
	}
}

type lyingRenderer struct{}

func (lyingRenderer) RenderTile(ctx context.Context, job mandel.TileJob) (mandel.TileCounts, error) {
	counts := make([]int, job.Tile.Dx()*job.Tile.Dy())
	counts[0] = job.Params.MaxIter + 1
	return mandel.TileCounts{Tile: job.Tile, Counts: counts}, nil
}

func TestScheduler_RejectsBadCounts(t *testing.T) {
	s := newGridWorkScheduler(testParams, 16)
	err := s.render(context.Background(), lyingRenderer{})
	if !errors.Is(err, mandel.ErrGridMismatch) {
		t.Errorf("err = %v, want ErrGridMismatch", err)
	}
	if p, _ := s.Progress(context.Background()); p.FinishedTiles != 0 {
		t.Errorf("FinishedTiles = %d after bad results", p.FinishedTiles)
	}
}

func TestScheduler_DuplicateResultIgnored(t *testing.T) {
	p := testParams
	p.Resolution = mandel.Resolution{Width: 8, Height: 8}
	s := newGridWorkScheduler(p, 4)

	tile, ok := s.popTile()
	if !ok {
		t.Fatal("no tile")
	}
	tc, err := mandel.RenderTile(p, tile)
	if err != nil {
		t.Fatal(err)
	}
	for range 2 {
		if err := s.tileFinished(tc); err != nil {
			t.Fatal(err)
		}
	}
	if got, _ := s.Progress(context.Background()); got.FinishedTiles != 1 {
		t.Errorf("FinishedTiles = %d, want 1", got.FinishedTiles)
	}
}

func TestScheduler_ReissuesInProcessTiles(t *testing.T) {
	p := testParams
	p.Resolution = mandel.Resolution{Width: 4, Height: 4}
	s := newGridWorkScheduler(p, 4)

	first, ok := s.popTile()
	if !ok || first != image.Rect(0, 0, 4, 4) {
		t.Fatalf("popTile = %v, %v", first, ok)
	}
	again, ok := s.popTile()
	if !ok || again != first {
		t.Errorf("second popTile = %v, %v, want %v again", again, ok, first)
	}
}

func TestFinishedScheduler(t *testing.T) {
	g, err := mandel.Evaluate(testParams)
	if err != nil {
		t.Fatal(err)
	}
	s := newFinishedScheduler(g)
	if _, found := s.popTile(); found {
		t.Errorf("finished scheduler handed out a tile")
	}
	got, err := s.GetGrid(context.Background())
	if err != nil || got != g {
		t.Errorf("GetGrid = %p, %v, want %p", got, err, g)
	}
	if p, _ := s.Progress(context.Background()); !p.Done() {
		t.Errorf("Progress = %+v, want done", p)
	}
}
