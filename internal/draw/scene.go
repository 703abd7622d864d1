package draw

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/tomz197/invaders/internal/audio"
	"github.com/tomz197/invaders/internal/effect"
	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/physics"
)

const hudHelp = "←/→ move  space fire  q quit"

// Scene presents effect commands on a terminal. It keeps a sprite stage,
// redraws changed cells every frame and overlays the HUD and end banner.
type Scene struct {
	stage    *effect.Stage
	canvas   *Canvas
	out      *ChunkWriter
	sizeFunc TermSizeFunc
	sound    audio.Player
	cleared  bool
}

// NewScene creates a terminal presenter writing to w. A nil sizeFunc reads
// the size of os.Stdout and a nil sound player discards cues.
func NewScene(w io.Writer, sizeFunc TermSizeFunc, sound audio.Player) *Scene {
	if sizeFunc == nil {
		sizeFunc = DefaultTermSizeFunc
	}
	if sound == nil {
		sound = audio.Nop{}
	}
	termWidth, termHeight, _ := sizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := ClampTermSize(termWidth, termHeight)
	canvas := NewScaledCanvas(renderWidth, renderHeight, config.GameWidth, config.GameHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Scene{
		stage:    effect.NewStage(),
		canvas:   canvas,
		out:      NewChunkWriter(w, offsetCol, offsetRow),
		sizeFunc: sizeFunc,
		sound:    sound,
	}
}

// Stage exposes the sprite table built from presented commands.
func (s *Scene) Stage() *effect.Stage {
	return s.stage
}

// Present applies cmds and draws the resulting frame.
func (s *Scene) Present(cmds []effect.Command) error {
	s.stage.Apply(cmds, s.sound.Play)
	s.updateSize()

	if !s.cleared {
		ClearScreen(s.out)
		HideCursor(s.out)
		s.canvas.ForceRedraw()
		s.cleared = true
	}

	s.canvas.Clear()
	enemies := 0
	s.stage.Each(func(_ effect.Handle, sp effect.Sprite) {
		if sp.Visual == effect.VisualEnemy {
			enemies++
		}
		s.canvas.FillRect(spriteBox(sp))
	})

	if err := s.canvas.Render(s.out); err != nil {
		return err
	}
	if err := s.canvas.RenderBorder(s.out); err != nil {
		return err
	}
	s.drawHUD(enemies)
	s.drawBanner()

	return s.out.Flush()
}

// Close restores the cursor and clears the screen.
func (s *Scene) Close() error {
	ClearScreen(s.out)
	ShowCursor(s.out)
	return s.out.Flush()
}

// updateSize follows terminal resizes, clamped to the max render resolution.
func (s *Scene) updateSize() {
	termWidth, termHeight, err := s.sizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := ClampTermSize(termWidth, termHeight)
	if renderWidth != s.canvas.TerminalWidth() || renderHeight != s.canvas.TerminalHeight() ||
		offsetCol != s.canvas.OffsetCol() || offsetRow != s.canvas.OffsetRow() {
		s.cleared = false
	}
	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.out.SetOffset(offsetCol, offsetRow)
}

func (s *Scene) drawHUD(enemies int) {
	s.out.WriteAt(1, 1, fmt.Sprintf("INVADERS  enemies %2d", enemies))
	width := s.canvas.TerminalWidth()
	if n := utf8.RuneCountInString(hudHelp); width > n+24 {
		s.out.WriteAt(width-n+1, 1, hudHelp)
	}
}

func (s *Scene) drawBanner() {
	var title string
	switch s.stage.Banner() {
	case effect.BannerGameOver:
		title = "GAME OVER"
	case effect.BannerVictory:
		title = "YOU WIN"
	default:
		return
	}
	width, height := s.canvas.TerminalWidth(), s.canvas.TerminalHeight()
	s.out.WriteCentered(width, height/2, title)
	s.out.WriteCentered(width, height/2+2, "press q to quit")
	// The overlay hides canvas cells, so repaint them if another frame comes.
	s.canvas.ForceRedraw()
}

// spriteBox returns the on-screen extent of a sprite.
func spriteBox(sp effect.Sprite) physics.Box {
	switch sp.Visual {
	case effect.VisualPlayer:
		return physics.BoxAround(sp.X, sp.Y, config.PlayerBoxWidth, config.PlayerBoxHeight)
	case effect.VisualEnemy:
		return physics.BoxAround(sp.X, sp.Y, config.EnemyBoxWidth, config.EnemyBoxHeight)
	case effect.VisualLaser, effect.VisualEnemyLaser:
		return physics.BoxAround(sp.X, sp.Y, config.LaserBoxWidth, config.LaserBoxHeight)
	default:
		return physics.Box{Left: sp.X, Right: sp.X, Top: sp.Y, Bottom: sp.Y}
	}
}
