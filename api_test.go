package mandel_test

import (
	"context"
	"errors"
	"image"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/marben/irpc"
	"github.com/marben/irpc/irpcgen"

	mandel "github.com/abdulmoid5/mandelbrot-visualizer"
)

var testParams = mandel.Params{
	Region:     mandel.Region{Xmin: -2, Xmax: 1, Ymin: -1, Ymax: 1},
	Resolution: mandel.Resolution{Width: 7, Height: 5},
	MaxIter:    20,
}

// endpoints connects two irpc endpoints in memory; right serves services.
func endpoints(t *testing.T, services ...irpcgen.Service) (left, right *irpc.Endpoint) {
	t.Helper()
	a, b := net.Pipe()
	left = irpc.NewEndpoint(a)
	right = irpc.NewEndpoint(b, irpc.WithEndpointServices(services...))
	t.Cleanup(func() {
		left.Close()
		right.Close()
	})
	return left, right
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestRendererIrpc(t *testing.T) {
	ep, _ := endpoints(t, mandel.NewRendererIrpcService(mandel.LocalRenderer{}))
	rc, err := mandel.NewRendererIrpcClient(ep)
	if err != nil {
		t.Fatal(err)
	}

	for _, tile := range []image.Rectangle{image.Rect(2, 1, 6, 4), testParams.Bounds()} {
		got, err := rc.RenderTile(testContext(t), mandel.TileJob{Params: testParams, Tile: tile})
		if err != nil {
			t.Fatal(err)
		}
		want, err := mandel.RenderTile(testParams, tile)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("RenderTile(%v) (-want +got):\n%s", tile, diff)
		}
	}
}

func TestRendererIrpc_InvalidTile(t *testing.T) {
	ep, _ := endpoints(t, mandel.NewRendererIrpcService(mandel.LocalRenderer{}))
	rc, err := mandel.NewRendererIrpcClient(ep)
	if err != nil {
		t.Fatal(err)
	}

	_, err = rc.RenderTile(testContext(t), mandel.TileJob{Params: testParams, Tile: image.Rect(0, 0, 100, 100)})
	if err == nil || !strings.Contains(err.Error(), mandel.ErrInvalidTile.Error()) {
		t.Errorf("err = %v, want one mentioning %q", err, mandel.ErrInvalidTile)
	}
}

type fakeProvider struct {
	grid     *mandel.EscapeGrid
	err      error
	progress mandel.Progress
}

func (f fakeProvider) GetGrid(context.Context) (*mandel.EscapeGrid, error) { return f.grid, f.err }

func (f fakeProvider) Progress(context.Context) (mandel.Progress, error) { return f.progress, nil }

func TestGridProviderIrpc(t *testing.T) {
	g, err := mandel.Evaluate(testParams)
	if err != nil {
		t.Fatal(err)
	}
	progress := mandel.Progress{TotalTiles: 4, FinishedTiles: 4, Workers: 2}
	ep, _ := endpoints(t, mandel.NewGridProviderIrpcService(fakeProvider{grid: g, progress: progress}))
	client, err := mandel.NewGridProviderIrpcClient(ep)
	if err != nil {
		t.Fatal(err)
	}

	gotProgress, err := client.Progress(testContext(t))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(progress, gotProgress); diff != "" {
		t.Errorf("Progress (-want +got):\n%s", diff)
	}

	got, err := client.GetGrid(testContext(t))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(testParams, got.Params()); diff != "" {
		t.Errorf("Params (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(g.Rows(), got.Rows()); diff != "" {
		t.Errorf("grid (-want +got):\n%s", diff)
	}
}

func TestGridProviderIrpc_Error(t *testing.T) {
	ep, _ := endpoints(t, mandel.NewGridProviderIrpcService(fakeProvider{err: errors.New("scheduler stopped")}))
	client, err := mandel.NewGridProviderIrpcClient(ep)
	if err != nil {
		t.Fatal(err)
	}

	got, err := client.GetGrid(testContext(t))
	if err == nil || err.Error() != "scheduler stopped" {
		t.Errorf("err = %v, want %q", err, "scheduler stopped")
	}
	if got != nil {
		t.Errorf("got a grid along with the error")
	}
}

// blockingProvider never completes its grid.
type blockingProvider struct {
	canceled chan struct{}
}

func (b blockingProvider) GetGrid(ctx context.Context) (*mandel.EscapeGrid, error) {
	<-ctx.Done()
	close(b.canceled)
	return nil, ctx.Err()
}

func (blockingProvider) Progress(context.Context) (mandel.Progress, error) {
	return mandel.Progress{}, nil
}

func TestGridProviderIrpc_CancelReachesProvider(t *testing.T) {
	bp := blockingProvider{canceled: make(chan struct{})}
	ep, _ := endpoints(t, mandel.NewGridProviderIrpcService(bp))
	client, err := mandel.NewGridProviderIrpcClient(ep)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(testContext(t))
	time.AfterFunc(20*time.Millisecond, cancel)
	if _, err := client.GetGrid(ctx); err == nil {
		t.Errorf("GetGrid returned no error after cancel")
	}
	select {
	case <-bp.canceled:
	case <-time.After(5 * time.Second):
		t.Errorf("provider's context was not canceled")
	}
}
