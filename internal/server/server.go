// Package server exposes a board to browser collaborators: a JSON snapshot
// endpoint and a websocket that streams frames and accepts cell toggles and
// run/stop commands.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"vitality/internal/board"
	"vitality/internal/core"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

// Command operations accepted over the websocket.
const (
	OpToggle = "toggle"
	OpRun    = "run"
	OpStep   = "step"
	OpClear  = "clear"
	OpSeed   = "seed"
)

// ErrUnknownCommand is returned for a command whose op is not recognised.
var ErrUnknownCommand = errors.New("unknown command")

// Command is a control message sent by a client.
type Command struct {
	Op      string `json:"op"`
	Index   int    `json:"index"`
	Running bool   `json:"running"`
	Seed    int64  `json:"seed"`
}

// Message is what the server writes to a client: a frame or an error.
type Message struct {
	Type  string       `json:"type"`
	Frame *board.Frame `json:"frame,omitempty"`
	Error string       `json:"error,omitempty"`
}

func frameMessage(f board.Frame) Message { return Message{Type: "frame", Frame: &f} }

func errorMessage(err error) Message { return Message{Type: "error", Error: err.Error()} }

const shutdownGrace = 5 * time.Second

var upgrader = websocket.Upgrader{}

// Server serves one board to any number of clients.
type Server struct {
	addr   string
	board  *board.Board
	params core.ParameterSnapshot
	router *mux.Router
}

// New wires the routes for b. params is served as-is on /config.
func New(addr string, b *board.Board, params core.ParameterSnapshot) *Server {
	s := &Server{addr: addr, board: b, params: params, router: mux.NewRouter()}
	s.router.HandleFunc("/snapshot", s.serveSnapshot).Methods(http.MethodGet)
	s.router.HandleFunc("/config", s.serveConfig).Methods(http.MethodGet)
	s.router.HandleFunc("/ws", s.serveWebsocket)
	return s
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler { return s.router }

// Handle applies a single command to the board.
func (s *Server) Handle(cmd Command) error {
	switch cmd.Op {
	case OpToggle:
		if err := s.board.Toggle(cmd.Index); err != nil {
			return fmt.Errorf("toggle: %w", err)
		}
	case OpRun:
		s.board.SetRunning(cmd.Running)
	case OpStep:
		if err := s.board.Step(); err != nil {
			return fmt.Errorf("step: %w", err)
		}
	case OpClear:
		s.board.Clear()
	case OpSeed:
		s.board.Seed(cmd.Seed)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Op)
	}
	return nil
}

// Serve listens until ctx is cancelled, then shuts down and ends open
// websocket sessions.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:        s.addr,
		Handler:     s.router,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Printf("server: listening on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return group.Wait()
}

func (s *Server) serveSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.board.Frame())
}

func (s *Server) serveConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.params)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("encode:", err)
	}
}

// serveWebsocket runs a session for the upgraded connection until the peer
// leaves or the server shuts down.
func (s *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}

	sess := newSession(s, ws)
	defer sess.ws.Close()
	if err := sess.sync(r.Context()); err != nil {
		log.Printf("session %s: %v", ws.RemoteAddr(), err)
	}
}
