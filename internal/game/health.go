package game

import (
	"chosenoffset.com/skirmish/internal/config"
	"chosenoffset.com/skirmish/internal/geom"
)

// BarRect is a health bar in screen space
type BarRect struct {
	X, Y, W, H float64
}

// HealthBar places a bar for an owner at pos: offset by the configured amount
// and health/2 pixels wide.
func HealthBar(pos geom.Point, health int, cfg config.HealthBarConfig) BarRect {
	w := float64(health) / 2
	if w < 0 {
		w = 0
	}
	return BarRect{
		X: pos.X + cfg.OffsetX,
		Y: pos.Y + cfg.OffsetY,
		W: w,
		H: cfg.Height,
	}
}
