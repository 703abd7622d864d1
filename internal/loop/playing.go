package loop

// updatePlayingFrame runs one frame of play: player, player lasers,
// enemies, enemy lasers. The order is fixed.
func updatePlayingFrame(s *State, dt float64) {
	updatePlayer(s, dt)
	updateLasers(s, dt)
	updateEnemies(s, dt)
	updateEnemyLasers(s, dt)
}

// updatePlayer moves the ship, runs its cooldown and fires when allowed.
func updatePlayer(s *State, dt float64) {
	p := s.Player
	p.Steer(dt, s.Input)
	p.CoolDown(dt)
	if p.TryFire(s.Input) {
		s.FireLaser(p.X, p.Y)
	}
	s.fx.Place(p.Handle, p.X, p.Y)
}

// updateLasers moves player lasers upward and resolves their hits on enemies.
func updateLasers(s *State, dt float64) {
	for _, l := range s.Lasers {
		l.Advance(dt)
		if l.OffScreen() {
			l.MarkDestroyed()
			s.fx.Destroy(l.Handle)
			continue
		}
		s.fx.Place(l.Handle, l.X, l.Y)

		if e := firstEnemyHit(s, l); e != nil {
			e.MarkDestroyed()
			s.fx.Destroy(e.Handle)
			l.MarkDestroyed()
			s.fx.Destroy(l.Handle)
		}
	}
	s.Lasers = compact(s.Lasers)
}

// updateEnemies places the formation at this frame's sway and lets each
// enemy fire when its cooldown runs out.
func updateEnemies(s *State, dt float64) {
	for _, e := range s.Enemies {
		if e.IsDestroyed() {
			continue
		}
		x, y := e.Position(s.Sway)
		s.fx.Place(e.Handle, x, y)
		if e.Reload(dt) {
			s.FireEnemyLaser(x, y)
		}
	}
	s.Enemies = compact(s.Enemies)
}

// updateEnemyLasers moves enemy lasers downward and resolves hits on the ship.
// Once the ship is hit the remaining lasers are left untouched until the next frame.
func updateEnemyLasers(s *State, dt float64) {
	for _, l := range s.EnemyLasers {
		l.Advance(dt)
		if l.OffScreen() {
			l.MarkDestroyed()
			s.fx.Destroy(l.Handle)
			continue
		}
		s.fx.Place(l.Handle, l.X, l.Y)

		if hitsPlayer(s, l) {
			killPlayer(s)
			break
		}
	}
	s.EnemyLasers = compact(s.EnemyLasers)
}
