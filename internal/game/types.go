package game

import (
	"github.com/solarlune/resolv"

	"chosenoffset.com/skirmish/internal/geom"
)

// Collision tags
const (
	tagEnemy  = "enemy"
	tagBullet = "bullet"
)

// Player represents the player's physical state in the world.
type Player struct {
	Pos      geom.Point
	VelX     float64
	VelY     float64
	Rotation float64 // Radians; zero faces -Y
	Speed    float64
	Health   int
	Scale    float64
}

// Enemy is a stationary target with health.
type Enemy struct {
	Pos    geom.Point
	Health int
	Active bool
	Radius float64

	body *resolv.Object
}

// Bullet is one pooled projectile.
type Bullet struct {
	Pos    geom.Point
	VelX   float64
	VelY   float64
	Active bool
	Radius float64

	body *resolv.Object
}

// Stats counts what happened during a run.
type Stats struct {
	Kills        int
	Shots        int
	WavesCleared int
}
