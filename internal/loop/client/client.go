// Package client runs one game session on a raw terminal connection,
// either the local tty or an ssh channel.
package client

import (
	"bufio"
	"context"
	"errors"
	"io"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/tomz197/invaders/internal/audio"
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/logger"
	"github.com/tomz197/invaders/internal/loop"
	"github.com/tomz197/invaders/internal/loop/config"
)

// Client handles rendering and input for a single connection.
type Client struct {
	reader *bufio.Reader
	writer io.Writer
	opts   Options
}

// Options configures the client.
type Options struct {
	TermSizeFunc draw.TermSizeFunc  // Defaults to the size of os.Stdout
	Sound        audio.Player       // Defaults to silence
	Logger       *zap.SugaredLogger // Defaults to logger.Log
	Linger       time.Duration      // How long the end banner stays up; defaults to config.BannerLinger
	Rand         *rand.Rand         // Source for enemy fire timing; nil uses the global source
}

// New creates a client reading keys from r and drawing to w.
func New(r *bufio.Reader, w io.Writer, opts Options) *Client {
	if opts.Logger == nil {
		opts.Logger = logger.Log
	}
	if opts.Linger <= 0 {
		opts.Linger = config.BannerLinger
	}
	return &Client{reader: r, writer: w, opts: opts}
}

// Run plays one game. It blocks until the game ends and the banner has been
// shown, the player quits, or ctx is cancelled. Quitting is not an error.
func (c *Client) Run(ctx context.Context) (loop.Status, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream := input.StartStream(c.reader)
	src := input.NewTerminal(stream, cancel)
	scene := draw.NewScene(c.writer, c.opts.TermSizeFunc, c.opts.Sound)
	defer scene.Close()

	sess := loop.NewSession(src, time.Now(), c.opts.Rand)
	status, err := loop.Run(ctx, sess, scene, loop.NewTickerScheduler(config.TargetFrameTime))
	log := c.opts.Logger.With("status", status, "frames", sess.Frames())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Infow("session quit")
			return status, nil
		}
		log.Errorw("session failed", "error", err)
		return status, err
	}

	log.Infow("session over")
	c.linger(ctx, src)
	return status, nil
}

// linger keeps the end banner up until the timeout or a quit key.
func (c *Client) linger(ctx context.Context, src *input.Terminal) {
	timer := time.NewTimer(c.opts.Linger)
	defer timer.Stop()
	ticker := time.NewTicker(config.TargetFrameTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			return
		case <-ticker.C:
			// Flags calls the quit hook, which cancels ctx.
			src.Flags()
		}
	}
}
