package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.log")
	l, err := New(Options{File: path, Level: "debug"})
	if err != nil {
		t.Fatal(err)
	}
	l.Infow("session ended", "status", "won")
	Printf{L: l}.Printf("ssh %s", "connected")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{"INFO", "session ended", "status", "won", "ssh connected"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.log")
	l, err := New(Options{File: path, Level: "WARN"})
	if err != nil {
		t.Fatal(err)
	}
	l.Info("hidden")
	l.Warn("shown")
	_ = l.Sync()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") || !strings.Contains(string(data), "shown") {
		t.Fatalf("unexpected log contents:\n%s", data)
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestInitWithoutOutputsIsNop(t *testing.T) {
	if err := Init(Options{}); err != nil {
		t.Fatal(err)
	}
	Log.Info("dropped")
	Sync()
}
