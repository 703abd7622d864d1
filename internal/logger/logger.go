// Package logger holds the process-wide structured logger.
package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the shared SugaredLogger. It discards everything until Init is called.
var Log = zap.NewNop().Sugar()

// Options selects where log lines go.
type Options struct {
	File    string // Rolling log file; empty disables file output
	Level   string // debug, info, warn or error; defaults to info
	Console bool   // Also write to stderr
}

// New builds a logger from opts. With no outputs configured it returns a no-op logger.
func New(opts Options) (*zap.SugaredLogger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(opts.Level))); err != nil {
			return nil, err
		}
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
	encoder := zapcore.NewConsoleEncoder(encCfg)

	var cores []zapcore.Core
	if opts.File != "" {
		// 10MB per file, 3 backups, a week of history.
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(lj), level))
	}
	if opts.Console {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level))
	}
	if len(cores) == 0 {
		return zap.NewNop().Sugar(), nil
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Sugar(), nil
}

// Init replaces Log with a logger built from opts.
func Init(opts Options) error {
	l, err := New(opts)
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// Sync flushes buffered log entries.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}

// Printf adapts a SugaredLogger to printf-style logger interfaces such as
// the one wish's logging middleware expects.
type Printf struct {
	L *zap.SugaredLogger
}

func (p Printf) Printf(format string, args ...any) {
	p.L.Infof(format, args...)
}
