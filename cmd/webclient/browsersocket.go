//go:build js && wasm

package main

import (
	"io"
	"sync"
	"syscall/js"
)

// browserSocket adapts a browser WebSocket object to io.ReadWriteCloser so a
// JSON-RPC connection can run over it.
type browserSocket struct {
	ws js.Value

	mu     sync.Mutex // JS callbacks can run between Go calls
	closed bool
	err    error

	messages chan []byte
	opened   chan struct{} // closed on open or error
	pending  []byte        // rest of a message not yet read

	funcs []js.Func
}

func newBrowserSocket(url string) *browserSocket {
	s := &browserSocket{
		ws:       js.Global().Get("WebSocket").New(url),
		messages: make(chan []byte, 64),
		opened:   make(chan struct{}),
	}
	s.ws.Set("binaryType", "arraybuffer")

	var openOnce sync.Once
	markOpen := func() { openOnce.Do(func() { close(s.opened) }) }

	s.on("onopen", func(js.Value) { markOpen() })
	s.on("onerror", func(js.Value) {
		s.mu.Lock()
		s.err = io.ErrUnexpectedEOF
		s.mu.Unlock()
		markOpen()
	})
	s.on("onmessage", func(ev js.Value) {
		s.deliver(ev.Get("data"))
	})
	s.on("onclose", func(js.Value) {
		logScreenf("websocket closed")
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.closed {
			s.closed = true
			close(s.messages)
		}
		markOpen()
	})
	return s
}

func (s *browserSocket) on(event string, f func(ev js.Value)) {
	fn := js.FuncOf(func(_ js.Value, args []js.Value) any {
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}
		f(ev)
		return nil
	})
	s.funcs = append(s.funcs, fn)
	s.ws.Set(event, fn)
}

// deliver copies an ArrayBuffer or typed array into Go. The socket asks for
// arraybuffer messages, so Blobs are not expected.
func (s *browserSocket) deliver(data js.Value) {
	u8 := data
	if data.InstanceOf(js.Global().Get("ArrayBuffer")) {
		u8 = js.Global().Get("Uint8Array").New(data)
	}
	b := make([]byte, u8.Get("byteLength").Int())
	js.CopyBytesToGo(b, u8)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.messages <- b
	}
}

func (s *browserSocket) Read(p []byte) (int, error) {
	if len(s.pending) == 0 {
		msg, ok := <-s.messages
		if !ok {
			return 0, io.EOF
		}
		s.pending = msg
	}
	n := copy(p, s.pending)
	s.pending = s.pending[n:]
	return n, nil
}

func (s *browserSocket) Write(p []byte) (int, error) {
	<-s.opened

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	if s.closed {
		return 0, io.ErrClosedPipe
	}

	u8 := js.Global().Get("Uint8Array").New(len(p))
	js.CopyBytesToJS(u8, p)
	s.ws.Call("send", u8)
	return len(p), nil
}

func (s *browserSocket) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.messages)
	s.mu.Unlock()

	s.ws.Call("close")
	for _, fn := range s.funcs {
		fn.Release()
	}
	return nil
}
