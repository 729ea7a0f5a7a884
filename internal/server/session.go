package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"vitality/internal/board"

	"github.com/gorilla/websocket"
	channerics "github.com/niceyeti/channerics/channels"
	"golang.org/x/sync/errgroup"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = time.Second
	// Maximum command size accepted from the peer.
	maxMessageSize = 512

	// How often the board is polled for a changed frame.
	pubResolution  = 50 * time.Millisecond
	pingResolution = 500 * time.Millisecond
	// Number of lost pongs tolerated before concluding the peer is gone.
	pongWait = pingResolution * 4
)

// ErrPongDeadlineExceeded reports a peer that stopped answering pings.
var ErrPongDeadlineExceeded = errors.New("client disconnect, pong deadline exceeded")

// session connects one websocket peer to the board. Commands from the peer
// are funnelled through a single consumer so they apply in arrival order.
type session struct {
	srv      *Server
	ws       *websock
	commands chan Command
	lastPong atomic.Int64
}

func newSession(srv *Server, ws *websocket.Conn) *session {
	ws.SetReadLimit(maxMessageSize)
	return &session{
		srv:      srv,
		ws:       newWebsock(ws),
		commands: make(chan Command),
	}
}

// sync runs the session until the peer leaves or ctx is cancelled. It returns
// nil on a normal disconnect.
func (s *session) sync(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return s.readCommands(groupCtx)
	})
	group.Go(func() error {
		return s.applyCommands(groupCtx)
	})
	group.Go(func() error {
		return s.pingPong(groupCtx)
	})
	group.Go(func() error {
		return s.publish(groupCtx)
	})
	group.Go(func() error {
		// A blocked read only returns once the connection gives up.
		<-groupCtx.Done()
		return s.ws.Conn().SetReadDeadline(time.Now())
	})

	err := group.Wait()
	if isClosure(err) {
		return nil
	}
	return err
}

func (s *session) readCommands(ctx context.Context) error {
	defer close(s.commands)
	for {
		var cmd Command
		if err := s.ws.Conn().ReadJSON(&cmd); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if !isDecodeError(err) {
				return err
			}
			// Malformed JSON leaves the connection usable.
			if werr := s.ws.WriteJSON(ctx, errorMessage(fmt.Errorf("decode command: %w", err))); werr != nil {
				return werr
			}
			continue
		}
		select {
		case s.commands <- cmd:
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *session) applyCommands(ctx context.Context) error {
	var commands <-chan Command = s.commands
	for cmd := range channerics.OrDone(ctx.Done(), commands) {
		if err := s.srv.Handle(cmd); err != nil {
			if werr := s.ws.WriteJSON(ctx, errorMessage(err)); werr != nil {
				return werr
			}
		}
	}
	return nil
}

// pingPong runs the liveness check. The pong handler fires from inside the
// read loop, so readCommands must be running.
func (s *session) pingPong(ctx context.Context) error {
	s.lastPong.Store(time.Now().UnixNano())
	s.ws.Conn().SetPongHandler(func(string) error {
		s.lastPong.Store(time.Now().UnixNano())
		return nil
	})

	pinger := channerics.NewTicker(ctx.Done(), pingResolution)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-pinger:
			if time.Since(time.Unix(0, s.lastPong.Load())) > pongWait {
				return ErrPongDeadlineExceeded
			}
			err := s.ws.Write(ctx, func(ws *websocket.Conn) error {
				return ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			})
			if err != nil {
				return fmt.Errorf("ping failed: %w", err)
			}
		}
	}
}

// publish sends the current frame on connect and then whenever it changes.
func (s *session) publish(ctx context.Context) error {
	last := s.srv.board.Frame()
	if err := s.ws.WriteJSON(ctx, frameMessage(last)); err != nil {
		return fmt.Errorf("publish failed: %w", err)
	}

	ticker := channerics.NewTicker(ctx.Done(), pubResolution)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker:
			frame := s.srv.board.Frame()
			if sameFrame(last, frame) {
				continue
			}
			last = frame
			if err := s.ws.WriteJSON(ctx, frameMessage(frame)); err != nil {
				return fmt.Errorf("publish failed: %w", err)
			}
		}
	}
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

func sameFrame(a, b board.Frame) bool {
	return a.Generation == b.Generation &&
		a.Running == b.Running &&
		slices.Equal(a.Cells, b.Cells)
}
