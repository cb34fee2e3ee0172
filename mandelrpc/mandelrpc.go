// Package mandelrpc carries the tile protocol over websockets, and exposes
// mandel.Renderer and mandel.GridProvider over JSON-RPC 2.0 for peers that
// don't speak irpc.
//
// Both peers of a connection may serve methods: the scheduler calls
// Renderer.RenderTile on its workers, and workers call GridProvider methods
// on the scheduler.
package mandelrpc

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/sourcegraph/jsonrpc2"

	mandel "github.com/abdulmoid5/mandelbrot-visualizer"
)

const (
	MethodRenderTile = "Renderer.RenderTile"
	MethodGetGrid    = "GridProvider.GetGrid"
	MethodProgress   = "GridProvider.Progress"
)

var (
	errMethodNotFound = &jsonrpc2.Error{
		Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
)

// GridMessage is the wire form of a mandel.EscapeGrid.
type GridMessage struct {
	Params mandel.Params `json:"params"`
	Counts []int         `json:"counts"`
}

// Method handles one JSON-RPC method. params is nil when the request has none.
type Method func(ctx context.Context, conn *jsonrpc2.Conn, params *json.RawMessage) (any, error)

// Service maps method names to their implementation.
type Service map[string]Method

// NewRendererService serves r as Renderer.RenderTile.
func NewRendererService(r mandel.Renderer) Service {
	return Service{
		MethodRenderTile: func(ctx context.Context, _ *jsonrpc2.Conn, params *json.RawMessage) (any, error) {
			var job mandel.TileJob
			if params == nil || json.Unmarshal(*params, &job) != nil {
				return nil, errInvalidParams
			}
			tc, err := r.RenderTile(ctx, job)
			if isInvalid(err) {
				return nil, invalidParams(err)
			}
			if err != nil {
				return nil, err
			}
			return tc, nil
		},
	}
}

// NewGridProviderService serves gp's GetGrid and Progress.
func NewGridProviderService(gp mandel.GridProvider) Service {
	return Service{
		MethodGetGrid: func(ctx context.Context, _ *jsonrpc2.Conn, _ *json.RawMessage) (any, error) {
			g, err := gp.GetGrid(ctx)
			if err != nil {
				return nil, err
			}
			return GridMessage{Params: g.Params(), Counts: g.Counts()}, nil
		},
		MethodProgress: func(ctx context.Context, _ *jsonrpc2.Conn, _ *json.RawMessage) (any, error) {
			return gp.Progress(ctx)
		},
	}
}

// isInvalid reports whether err is the renderer rejecting the job itself.
func isInvalid(err error) bool {
	for _, target := range [...]error{
		mandel.ErrInvalidRegion,
		mandel.ErrInvalidResolution,
		mandel.ErrInvalidIterationBound,
		mandel.ErrInvalidTile,
		mandel.ErrGridMismatch,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func invalidParams(err error) error {
	return &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: err.Error()}
}

// Handler routes requests to services. Every request runs in its own
// goroutine, so a long GetGrid never holds up replies to tiles on the same
// connection.
func Handler(services ...Service) jsonrpc2.Handler {
	methods := make(map[string]Method)
	for _, s := range services {
		for name, m := range s {
			methods[name] = m
		}
	}
	return jsonrpc2.AsyncHandler(jsonrpc2.HandlerWithError(
		func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
			m, ok := methods[req.Method]
			if !ok {
				return nil, errMethodNotFound
			}
			return m(ctx, conn, req.Params)
		}).SuppressErrClosed())
}

// NewConn starts a JSON-RPC connection over rwc, framed with
// Content-Length headers.
func NewConn(ctx context.Context, rwc io.ReadWriteCloser, h jsonrpc2.Handler, opts ...jsonrpc2.ConnOpt) *jsonrpc2.Conn {
	return jsonrpc2.NewConn(ctx, jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{}), h, opts...)
}

// RendererClient calls Renderer.RenderTile on the remote peer.
type RendererClient struct {
	conn jsonrpc2.JSONRPC2
}

func NewRendererClient(conn jsonrpc2.JSONRPC2) *RendererClient {
	return &RendererClient{conn: conn}
}

func (c *RendererClient) RenderTile(ctx context.Context, job mandel.TileJob) (mandel.TileCounts, error) {
	var tc mandel.TileCounts
	if err := c.conn.Call(ctx, MethodRenderTile, job, &tc); err != nil {
		return mandel.TileCounts{}, err
	}
	return tc, nil
}

// GridProviderClient calls GridProvider methods on the remote peer.
type GridProviderClient struct {
	conn jsonrpc2.JSONRPC2
}

func NewGridProviderClient(conn jsonrpc2.JSONRPC2) *GridProviderClient {
	return &GridProviderClient{conn: conn}
}

func (c *GridProviderClient) GetGrid(ctx context.Context) (*mandel.EscapeGrid, error) {
	var msg GridMessage
	if err := c.conn.Call(ctx, MethodGetGrid, nil, &msg); err != nil {
		return nil, err
	}
	return mandel.NewEscapeGrid(msg.Params, msg.Counts)
}

func (c *GridProviderClient) Progress(ctx context.Context) (mandel.Progress, error) {
	var p mandel.Progress
	err := c.conn.Call(ctx, MethodProgress, nil, &p)
	return p, err
}

var (
	_ mandel.Renderer     = (*RendererClient)(nil)
	_ mandel.GridProvider = (*GridProviderClient)(nil)
)
