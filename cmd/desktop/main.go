package main

import (
	"fmt"
	"os"

	"github.com/tomz197/invaders/internal/audio"
	"github.com/tomz197/invaders/internal/audio/device"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/desktop"
	"github.com/tomz197/invaders/internal/logger"
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

	g := desktop.NewGame(sound)
	if err := desktop.Run(g); err != nil {
		logger.Log.Errorw("game error", "error", err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Log.Infow("game finished", "status", g.Status())
}
