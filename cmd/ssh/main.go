package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/invaders/internal/audio"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/logger"
	"github.com/tomz197/invaders/internal/loop/client"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

func main() {
	if err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(logger.Options{
		File:    config.GetEnv("INVADERS_LOG_FILE", ""),
		Level:   config.GetEnv("INVADERS_LOG_LEVEL", "info"),
		Console: true,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Log

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	log.Infow("ssh config", "host", host, "port", port, "hostKeyPath", hostKeyPath)

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gameMiddleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger.Printf{L: log}),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		log.Fatalw("failed to create server", "error", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Infow("starting ssh server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatalw("server error", "error", err)
		}
	}()

	<-done
	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Errorw("shutdown error", "error", err)
	}
}

// gameMiddleware runs an independent game for every ssh session.
func gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		log := logger.Log.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		log.Infow("new game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		c := client.New(bufio.NewReader(sess), sess, client.Options{
			TermSizeFunc: sizeTracker.getSize,
			Sound:        audio.Bell{W: sess},
			Logger:       log,
		})
		if _, err := c.Run(sess.Context()); err != nil {
			log.Warnw("game error", "error", err)
		}

		log.Infow("session ended")
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
