package mandel

import (
	"context"
	"image"
)

// GridProvider hands out a complete escape grid once every tile is computed.
type GridProvider interface {
	// GetGrid blocks until the grid is complete or ctx is done.
	GetGrid(ctx context.Context) (*EscapeGrid, error)
	Progress(ctx context.Context) (Progress, error)
}

// Renderer computes the escape counts of a single tile.
type Renderer interface {
	RenderTile(ctx context.Context, job TileJob) (TileCounts, error)
}

// TileJob is a unit of work: one tile of the grid described by Params.
type TileJob struct {
	Params Params          `json:"params"`
	Tile   image.Rectangle `json:"tile"`
}

type Progress struct {
	TotalTiles    int `json:"total_tiles"`
	FinishedTiles int `json:"finished_tiles"`
	Workers       int `json:"workers"`
}

// Done reports whether every tile has been computed.
func (p Progress) Done() bool {
	return p.TotalTiles > 0 && p.FinishedTiles == p.TotalTiles
}

// LocalRenderer renders tiles on the current process.
type LocalRenderer struct {
	// OnTileRender, if set, is called before each tile is computed.
	OnTileRender func(tile image.Rectangle)
}

func (lr LocalRenderer) RenderTile(ctx context.Context, job TileJob) (TileCounts, error) {
	if err := ctx.Err(); err != nil {
		return TileCounts{}, err
	}
	if lr.OnTileRender != nil {
		lr.OnTileRender(job.Tile)
	}
	return RenderTile(job.Params, job.Tile)
}

var _ Renderer = LocalRenderer{}
