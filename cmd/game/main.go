package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/invaders/internal/audio"
	"github.com/tomz197/invaders/internal/audio/device"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/logger"
	"github.com/tomz197/invaders/internal/loop/client"
)

func main() {
	if err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}
	// The terminal belongs to the game, so logs only go to a file.
	if err := logger.Init(logger.Options{
		File:  config.GetEnv("INVADERS_LOG_FILE", "invaders.log"),
		Level: config.GetEnv("INVADERS_LOG_LEVEL", "info"),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var sound audio.Player = audio.Nop{}
	if config.GetEnvBool("INVADERS_SOUND", true) {
		spk := device.NewSpeaker(config.GetEnvFloat("INVADERS_VOLUME", 1))
		if err := spk.Init(); err != nil {
			logger.Log.Warnw("sound disabled", "error", err)
		} else {
			defer spk.Close()
			sound = spk
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := client.New(bufio.NewReader(os.Stdin), os.Stdout, client.Options{Sound: sound})
	status, err := c.Run(ctx)
	if err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
	logger.Log.Infow("game finished", "status", status)
}
