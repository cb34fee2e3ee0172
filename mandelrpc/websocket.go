package mandelrpc

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/coder/websocket"
)

// maxMessageSize bounds a single websocket frame; a full grid travels in one.
const maxMessageSize = 64 << 20

// WebsocketListener implements net.Listener
// it hands out websockets accepted by its Handler as net.Conns
type WebsocketListener struct {
	ch        chan *websocket.Conn
	done      chan struct{}
	closeOnce sync.Once
	ctx       context.Context
	cancel    context.CancelFunc
	addr      wsAddr
}

func NewWebsocketListener(ctx context.Context, addr string) *WebsocketListener {
	ctx, cancel := context.WithCancel(ctx)
	return &WebsocketListener{
		ch:     make(chan *websocket.Conn),
		done:   make(chan struct{}),
		ctx:    ctx,
		cancel: cancel,
		addr:   wsAddr{addr: addr},
	}
}

// Handler upgrades http requests to websockets and passes them to Accept.
func (l *WebsocketListener) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"},
		})
		if err != nil {
			log.Println(err)
			return
		}
		c.SetReadLimit(maxMessageSize)

		select {
		case l.ch <- c:
		case <-l.done:
			c.Close(websocket.StatusGoingAway, "listener closed")
		}
	}
}

func (l *WebsocketListener) Accept() (net.Conn, error) {
	select {
	case c := <-l.ch:
		return websocket.NetConn(l.ctx, c, websocket.MessageBinary), nil
	case <-l.ctx.Done():
		return nil, net.ErrClosed
	case <-l.done:
		return nil, net.ErrClosed
	}
}

func (l *WebsocketListener) Addr() net.Addr {
	return l.addr
}

// Close stops accepting and closes every connection handed out by Accept.
func (l *WebsocketListener) Close() error {
	l.closeOnce.Do(func() {
		close(l.done)
		l.cancel()
	})
	return nil
}

// wsAddr implements net.Addr
type wsAddr struct {
	addr string
}

func (a wsAddr) Network() string {
	return "ws"
}

func (a wsAddr) String() string {
	return a.addr
}

// DialWebsocket connects to a WebsocketListener handler at url
// (ws://host:port/ws). The connection lives until ctx is canceled or it is
// closed.
func DialWebsocket(ctx context.Context, url string) (net.Conn, error) {
	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("websocket.Dial %s: %w", url, err)
	}
	c.SetReadLimit(maxMessageSize)
	return websocket.NetConn(ctx, c, websocket.MessageBinary), nil
}

// Dial connects to a server address: ws:// and wss:// URLs go through
// DialWebsocket, anything else is a TCP host:port.
func Dial(ctx context.Context, addr string) (net.Conn, error) {
	if strings.HasPrefix(addr, "ws://") || strings.HasPrefix(addr, "wss://") {
		return DialWebsocket(ctx, addr)
	}
	var d net.Dialer
	return d.DialContext(ctx, "tcp", addr)
}
