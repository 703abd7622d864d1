// Package config centralizes all tunable game parameters.
package config

import "time"

// Playfield dimensions in logical units. Presenters scale these to their surface.
const (
	GameWidth  = 800.0
	GameHeight = 600.0
)

// Player
const (
	PlayerWidth     = 20.0  // Also the left clamp bound
	PlayerMaxSpeed  = 600.0 // Units per second
	PlayerSpawnLift = 50.0  // Distance of the ship above the bottom edge
	PlayerBoxWidth  = 40.0
	PlayerBoxHeight = 30.0
)

// Lasers
const (
	LaserMaxSpeed  = 300.0 // Units per second, both directions
	LaserCooldown  = 0.5   // Seconds between player shots
	LaserBoxWidth  = 6.0
	LaserBoxHeight = 20.0
)

// Enemy formation
const (
	EnemiesPerRow          = 10
	EnemyRows              = 3
	EnemyHorizontalPadding = 80.0
	EnemyVerticalPadding   = 70.0
	EnemyVerticalSpacing   = 80.0
	EnemyBoxWidth          = 40.0
	EnemyBoxHeight         = 32.0
)

// Enemy fire
const (
	EnemyCooldown    = 5.0 // Seconds between shots after the first
	EnemyMinCooldown = 0.5 // Lower bound of the randomized first shot
)

// Formation sway amplitudes
const (
	FormationSwayX = 50.0
	FormationSwayY = 10.0
)

// Frame pacing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Terminal rendering
const (
	MaxTermWidth  = 160 // Cap on rendered columns; larger terminals get a border
	MaxTermHeight = 60  // Cap on rendered rows
	BannerLinger  = 5 * time.Second
)
