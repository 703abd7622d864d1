package object

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/loop/config"
)

func TestPlayerSpawnsCentred(t *testing.T) {
	p := NewPlayer(1)
	if p.X != 400 || p.Y != 550 {
		t.Fatalf("spawn = (%v, %v), want (400, 550)", p.X, p.Y)
	}
}

func TestPlayerSteerLeft(t *testing.T) {
	p := NewPlayer(1)
	p.X = 390
	p.Steer(0.1, input.Flags{Left: true})
	if math.Abs(p.X-330) > 1e-9 {
		t.Fatalf("x = %v, want 330", p.X)
	}
}

func TestPlayerSteerBothDirectionsCancel(t *testing.T) {
	p := NewPlayer(1)
	p.Steer(0.25, input.Flags{Left: true, Right: true})
	if p.X != 400 {
		t.Fatalf("x = %v, want 400", p.X)
	}
}

func TestPlayerSteerClamps(t *testing.T) {
	p := NewPlayer(1)
	for _, dt := range []float64{0, 0.016, 0.5, 3, 100} {
		p.Steer(dt, input.Flags{Left: true})
		if p.X < config.PlayerWidth || p.X > config.GameWidth-config.PlayerWidth {
			t.Fatalf("dt=%v: x = %v out of bounds", dt, p.X)
		}
	}
	if p.X != config.PlayerWidth {
		t.Errorf("left clamp = %v, want %v", p.X, config.PlayerWidth)
	}
	p.Steer(100, input.Flags{Right: true})
	if p.X != config.GameWidth-config.PlayerWidth {
		t.Errorf("right clamp = %v, want %v", p.X, config.GameWidth-config.PlayerWidth)
	}
}

func TestPlayerTryFireRespectsCooldown(t *testing.T) {
	p := NewPlayer(1)
	fire := input.Flags{Fire: true}
	if !p.TryFire(fire) {
		t.Fatal("first shot should fire")
	}
	if p.Cooldown != config.LaserCooldown {
		t.Fatalf("cooldown = %v, want %v", p.Cooldown, config.LaserCooldown)
	}
	p.CoolDown(0.3)
	if p.TryFire(fire) {
		t.Fatal("shot inside cooldown should not fire")
	}
	p.CoolDown(0.2)
	if !p.TryFire(fire) {
		t.Fatal("shot after full cooldown should fire")
	}
	if p.TryFire(input.Flags{}) {
		t.Fatal("no fire without the fire flag")
	}
}

func TestLaserDirections(t *testing.T) {
	up := NewLaser(1, 100, 10)
	up.Advance(0.1)
	if math.Abs(up.Y+20) > 1e-9 || !up.OffScreen() {
		t.Fatalf("player laser y = %v offscreen=%v", up.Y, up.OffScreen())
	}

	down := NewEnemyLaser(2, 100, 590)
	down.Advance(0.01)
	if math.Abs(down.Y-593) > 1e-9 || down.OffScreen() {
		t.Fatalf("enemy laser y = %v offscreen=%v", down.Y, down.OffScreen())
	}
	down.Advance(0.1)
	if !down.OffScreen() {
		t.Fatalf("enemy laser at y=%v should be off screen", down.Y)
	}
}

func TestEnemyInitialCooldownRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		e := NewEnemy(1, 0, 0, rng)
		if e.Cooldown < config.EnemyMinCooldown || e.Cooldown >= config.EnemyCooldown {
			t.Fatalf("initial cooldown %v outside [0.5, 5.0)", e.Cooldown)
		}
	}
}

func TestEnemyReloadResetsToFixedCooldown(t *testing.T) {
	e := NewEnemy(1, 0, 0, rand.New(rand.NewSource(1)))
	first := e.Cooldown

	if e.Reload(first / 2) {
		t.Fatal("enemy fired before its cooldown elapsed")
	}
	if !e.Reload(first) {
		t.Fatal("enemy should fire once its cooldown elapses")
	}
	if e.Cooldown != 5.0 {
		t.Fatalf("cooldown after shot = %v, want exactly 5.0", e.Cooldown)
	}
}

func TestFormationSlots(t *testing.T) {
	x, y := FormationSlot(0, 0)
	if x != 80 || y != 70 {
		t.Errorf("slot(0,0) = (%v, %v), want (80, 70)", x, y)
	}
	x, y = FormationSlot(2, 9)
	if math.Abs(x-720) > 1e-9 || y != 230 {
		t.Errorf("slot(2,9) = (%v, %v), want (720, 230)", x, y)
	}
}

func TestEnemyPositionFollowsSway(t *testing.T) {
	e := &Enemy{X: 100, Y: 100}
	x, y := e.Position(Sway{DX: 50, DY: -10})
	if x != 150 || y != 90 {
		t.Fatalf("position = (%v, %v), want (150, 90)", x, y)
	}
	if e.X != 100 || e.Y != 100 {
		t.Fatal("base position must not change")
	}
}

func TestFormationSwayAmplitude(t *testing.T) {
	s := FormationSway(time.UnixMilli(0))
	if s.DX != 0 || s.DY != config.FormationSwayY {
		t.Fatalf("sway at epoch = %+v, want {0 10}", s)
	}
	for i := int64(0); i < 100; i++ {
		s := FormationSway(time.UnixMilli(i * 137))
		if math.Abs(s.DX) > config.FormationSwayX || math.Abs(s.DY) > config.FormationSwayY {
			t.Fatalf("sway out of amplitude: %+v", s)
		}
	}
}
