package draw

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/tomz197/invaders/internal/effect"
	"github.com/tomz197/invaders/internal/physics"
)

func fixedSize(w, h int) TermSizeFunc {
	return func() (int, int, error) { return w, h, nil }
}

func TestCanvasFillAndRender(t *testing.T) {
	c := NewScaledCanvas(80, 30, 800, 600)
	c.FillRect(physics.BoxAround(400, 550, 40, 30))

	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"\033[27;39H▄", "\033[28;39H█", "\033[29;39H▀"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestCanvasRendersOnlyChanges(t *testing.T) {
	c := NewScaledCanvas(80, 30, 800, 600)
	var buf bytes.Buffer
	_ = c.Render(&buf)

	buf.Reset()
	_ = c.Render(&buf)
	if buf.Len() != 0 {
		t.Fatalf("unchanged frame wrote %d bytes", buf.Len())
	}

	c.FillRect(physics.BoxAround(100, 100, 6, 20))
	_ = c.Render(&buf)
	drawn := strings.Count(buf.String(), "\033[")

	buf.Reset()
	c.Clear()
	_ = c.Render(&buf)
	if erased := strings.Count(buf.String(), "\033["); erased != drawn {
		t.Fatalf("erased %d cells, drew %d", erased, drawn)
	}
	if strings.ContainsRune(buf.String(), BlockFull) {
		t.Error("cleared frame should only write blanks")
	}

	buf.Reset()
	c.ForceRedraw()
	_ = c.Render(&buf)
	if got := strings.Count(buf.String(), "\033["); got != 80*30 {
		t.Fatalf("forced redraw wrote %d cells, want %d", got, 80*30)
	}
}

func TestCanvasThinBoxVisible(t *testing.T) {
	c := NewScaledCanvas(10, 5, 800, 600)
	c.FillRect(physics.BoxAround(400, 300, 6, 20))
	var buf bytes.Buffer
	_ = c.Render(&buf)
	if !strings.ContainsAny(buf.String(), "█▀▄") {
		t.Fatal("laser should cover at least one sub-pixel")
	}
}

func TestClampTermSize(t *testing.T) {
	w, h, col, row := ClampTermSize(200, 80)
	if w != 160 || h != 60 || col != 20 || row != 10 {
		t.Fatalf("got %d x %d at +%d+%d", w, h, col, row)
	}
	w, h, col, row = ClampTermSize(80, 24)
	if w != 80 || h != 24 || col != 0 || row != 0 {
		t.Fatalf("got %d x %d at +%d+%d", w, h, col, row)
	}
}

func TestChunkWriterOffsets(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 3, 2)
	cw.WriteAt(1, 1, "hi")
	cw.WriteCentered(10, 5, "ab")
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "\033[3;4Hhi\033[7;8Hab"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestChunkWriterCentresByRune(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 0, 0)
	cw.WriteCentered(10, 1, "←→")
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "\033[1;5H←→"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

type soundLog []effect.Sound

func (l *soundLog) Play(s effect.Sound) { *l = append(*l, s) }

func TestScenePresents(t *testing.T) {
	var buf bytes.Buffer
	var sounds soundLog
	sc := NewScene(&buf, fixedSize(80, 30), &sounds)

	var fx effect.Buffer
	fx.Spawn(1, effect.VisualPlayer, 400, 550)
	fx.Spawn(2, effect.VisualEnemy, 80, 70)
	fx.Play(effect.SoundLaser)
	if err := sc.Present(fx.Drain()); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, seqClear) {
		t.Error("first frame should clear the screen")
	}
	if !strings.Contains(out, "enemies  1") {
		t.Errorf("HUD missing enemy count in %q", out)
	}
	if sc.Stage().Len() != 2 {
		t.Errorf("stage has %d sprites", sc.Stage().Len())
	}
	if len(sounds) != 1 || sounds[0] != effect.SoundLaser {
		t.Errorf("sounds = %v", sounds)
	}

	buf.Reset()
	fx.Destroy(1)
	fx.ShowBanner(effect.BannerGameOver)
	if err := sc.Present(fx.Drain()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "GAME OVER") {
		t.Error("expected game over banner")
	}
	if strings.HasPrefix(buf.String(), seqClear) {
		t.Error("screen should not be cleared without a resize")
	}
}

func TestSceneHidesCursorUntilClose(t *testing.T) {
	var buf bytes.Buffer
	sc := NewScene(&buf, fixedSize(80, 30), nil)
	if err := sc.Present(nil); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), seqClear+seqHideCursor) {
		t.Fatalf("first frame starts with %q", buf.String()[:min(len(buf.String()), 16)])
	}

	buf.Reset()
	if err := sc.Close(); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), seqClear+seqShowCursor; got != want {
		t.Fatalf("close wrote %q, want %q", got, want)
	}
}

func TestSceneClearsOnResize(t *testing.T) {
	var buf bytes.Buffer
	w := 80
	sc := NewScene(&buf, func() (int, int, error) { return w, 30, nil }, nil)
	_ = sc.Present(nil)

	buf.Reset()
	w = 100
	_ = sc.Present(nil)
	if !strings.HasPrefix(buf.String(), seqClear) {
		t.Fatal("resize should clear the screen")
	}
}

func TestSceneKeepsSizeOnError(t *testing.T) {
	calls := 0
	size := func() (int, int, error) {
		calls++
		if calls > 1 {
			return 0, 0, errors.New("no tty")
		}
		return 80, 30, nil
	}
	var buf bytes.Buffer
	sc := NewScene(&buf, size, nil)
	if err := sc.Present(nil); err != nil {
		t.Fatal(err)
	}
	if sc.canvas.TerminalWidth() != 80 {
		t.Fatalf("width = %d", sc.canvas.TerminalWidth())
	}
}
