// Package web serves the browser front end: a static page plus a websocket
// per visitor, each running its own game session.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/logger"
	"github.com/tomz197/invaders/internal/loop"
)

// Options configures a Server.
type Options struct {
	Page   []byte             // Served at "/"
	Logger *zap.SugaredLogger // Defaults to logger.Log
}

// Server hosts game sessions over websockets.
type Server struct {
	page     []byte
	log      *zap.SugaredLogger
	upgrader websocket.Upgrader
	ctx      context.Context
	cancel   context.CancelFunc
	nextID   atomic.Int64
	active   atomic.Int64
}

// NewServer creates a server. Call Close to end every running session.
func NewServer(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = logger.Log
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		page: opts.Page,
		log:  opts.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		ctx:    ctx,
		cancel: cancel,
	}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handlePage)
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

// Active returns the number of sessions in progress.
func (s *Server) Active() int64 {
	return s.active.Load()
}

// Close cancels all sessions.
func (s *Server) Close() {
	s.cancel()
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(s.page)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":   "ok",
		"sessions": s.active.Load(),
	})
}

// handleWS runs one game for the lifetime of the socket.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warnw("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer ws.Close()

	log := s.log.With("session", s.nextID.Add(1), "remote", r.RemoteAddr)
	s.active.Add(1)
	defer s.active.Add(-1)
	log.Infow("session started")

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	var in input.Adapter
	frames := newFrameRequests()
	go func() {
		err := readPump(ws, &in, frames)
		log.Debugw("read pump stopped", "error", err)
		cancel()
	}()

	sess := loop.NewSession(&in, time.Now(), nil)
	status, err := loop.Run(ctx, sess, &presenter{ws: ws, sess: sess}, frames)
	log = log.With("status", status, "frames", sess.Frames())
	switch {
	case err == nil:
		log.Infow("session over")
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, closeMessage)
		_ = ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	case errors.Is(err, context.Canceled):
		log.Infow("session left")
	default:
		log.Warnw("session failed", "error", err)
	}
}
