package server

import (
	"context"
	"errors"
	"time"

	"github.com/gorilla/websocket"
)

// ErrSockCongestion indicates there are too many waiters on the socket for a given op.
var ErrSockCongestion = errors.New("sock op failed due to congestion")

const (
	writeDeadline = time.Second
)

// websock serializes writes to the websocket, which allows at most one
// concurrent writer. Reads happen on a single goroutine and need no guard.
type websock struct {
	writeSem chan struct{}
	ws       *websocket.Conn
}

func newWebsock(ws *websocket.Conn) *websock {
	return &websock{
		writeSem: make(chan struct{}, 1),
		ws:       ws,
	}
}

// Conn returns the underlying websocket. Only use it for setup or reads.
func (sock *websock) Conn() *websocket.Conn {
	return sock.ws
}

// Close sends a normal closure and closes the connection. Call it once no
// writers remain.
func (sock *websock) Close() {
	sock.writeSem <- struct{}{}
	_ = sock.ws.SetWriteDeadline(time.Now().Add(writeWait))
	_ = sock.ws.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	sock.ws.Close()
}

// Write serializes write operations to the websocket.
func (sock *websock) Write(
	ctx context.Context,
	writeFn func(*websocket.Conn) error,
) error {
	select {
	case <-ctx.Done():
		return nil
	case sock.writeSem <- struct{}{}:
		defer func() { <-sock.writeSem }()
		return writeFn(sock.ws)
	case <-time.After(writeDeadline):
		return ErrSockCongestion
	}
}

// WriteJSON writes v with a per-message deadline.
func (sock *websock) WriteJSON(ctx context.Context, v any) error {
	return sock.Write(ctx, func(ws *websocket.Conn) error {
		if err := ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return err
		}
		return ws.WriteJSON(v)
	})
}

func isClosure(err error) bool {
	return err != nil && websocket.IsCloseError(
		err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway)
}
