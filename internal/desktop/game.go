// Package desktop presents a session in a native window via ebiten.
package desktop

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/invaders/internal/audio"
	"github.com/tomz197/invaders/internal/effect"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/loop"
	"github.com/tomz197/invaders/internal/loop/config"
)

var (
	colorBackground = color.RGBA{R: 8, G: 8, B: 20, A: 255}
	colorPlayer     = color.RGBA{R: 90, G: 220, B: 120, A: 255}
	colorEnemy      = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	colorLaser      = color.RGBA{R: 120, G: 200, B: 255, A: 255}
	colorEnemyLaser = color.RGBA{R: 255, G: 110, B: 80, A: 255}
)

// Game implements ebiten.Game around one session.
type Game struct {
	sess   *loop.Session
	stage  *effect.Stage
	sound  audio.Player
	status loop.Status
	endAt  time.Time
}

// NewGame starts a session read from the keyboard. A nil sound player is silent.
func NewGame(sound audio.Player) *Game {
	if sound == nil {
		sound = audio.Nop{}
	}
	return &Game{
		sess:  loop.NewSession(input.SourceFunc(keyboard), time.Now(), nil),
		stage: effect.NewStage(),
		sound: sound,
	}
}

// Status returns the session status after the last update.
func (g *Game) Status() loop.Status {
	return g.status
}

// keyboard samples the held keys. It runs inside Update, on ebiten's game goroutine.
func keyboard() input.Flags {
	return input.Flags{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyF),
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	if g.status != loop.StatusRunning {
		if now.After(g.endAt) {
			return ebiten.Termination
		}
		return nil
	}

	status, cmds := g.sess.Tick(now)
	g.stage.Apply(cmds, g.sound.Play)
	if status != loop.StatusRunning {
		g.status = status
		g.endAt = now.Add(config.BannerLinger)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	enemies := 0
	g.stage.Each(func(_ effect.Handle, sp effect.Sprite) {
		w, h, c := spriteStyle(sp.Visual)
		if sp.Visual == effect.VisualEnemy {
			enemies++
		}
		vector.DrawFilledRect(screen, float32(sp.X-w/2), float32(sp.Y-h/2), float32(w), float32(h), c, false)
	})

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Enemies: %d", enemies), 10, 10)
	ebitenutil.DebugPrintAt(screen, "Move: arrows/A D  Fire: space/F  Quit: Q", 10, 26)

	switch g.stage.Banner() {
	case effect.BannerGameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER", int(config.GameWidth)/2-27, int(config.GameHeight)/2)
	case effect.BannerVictory:
		ebitenutil.DebugPrintAt(screen, "YOU WIN", int(config.GameWidth)/2-21, int(config.GameHeight)/2)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return int(config.GameWidth), int(config.GameHeight)
}

// spriteStyle returns the size and colour drawn for a visual.
func spriteStyle(v effect.Visual) (w, h float64, c color.Color) {
	switch v {
	case effect.VisualPlayer:
		return config.PlayerBoxWidth, config.PlayerBoxHeight, colorPlayer
	case effect.VisualEnemy:
		return config.EnemyBoxWidth, config.EnemyBoxHeight, colorEnemy
	case effect.VisualLaser:
		return config.LaserBoxWidth, config.LaserBoxHeight, colorLaser
	case effect.VisualEnemyLaser:
		return config.LaserBoxWidth, config.LaserBoxHeight, colorEnemyLaser
	default:
		return 1, 1, colorEnemy
	}
}

// Run opens the window and blocks until the game ends or is closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(int(config.GameWidth), int(config.GameHeight))
	ebiten.SetWindowTitle("Invaders")
	ebiten.SetTPS(config.TargetFPS)
	return ebiten.RunGame(g)
}
