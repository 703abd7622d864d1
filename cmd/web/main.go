package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/logger"
	"github.com/tomz197/invaders/internal/web"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage []byte

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

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)

	games := web.NewServer(web.Options{Page: htmlPage, Logger: log})
	srv := &http.Server{
		Addr:              net.JoinHostPort(host, port),
		Handler:           games.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Infow("starting web server", "addr", "http://"+srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server error", "error", err)
		}
	}()

	<-done
	log.Infow("shutting down server", "sessions", games.Active())
	games.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("shutdown error", "error", err)
	}
}
