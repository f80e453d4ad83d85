package game

import (
	"math"

	"chosenoffset.com/skirmish/internal/geom"
	"chosenoffset.com/skirmish/internal/render"
)

// updateMovement sets the player's velocity from WASD and integrates it.
// A wins over D and W wins over S; diagonals are not normalised.
func (g *Game) updateMovement(dt float64) {
	p := &g.Player
	p.VelX, p.VelY = 0, 0

	if g.InputMgr.IsKeyPressed(render.KeyA) {
		p.VelX = -p.Speed
	} else if g.InputMgr.IsKeyPressed(render.KeyD) {
		p.VelX = p.Speed
	}

	if g.InputMgr.IsKeyPressed(render.KeyW) {
		p.VelY = -p.Speed
	} else if g.InputMgr.IsKeyPressed(render.KeyS) {
		p.VelY = p.Speed
	}

	// Keep player in bounds
	p.Pos = g.Bounds.Clamp(p.Pos.Add(p.VelX*dt, p.VelY*dt))
}

// updateAim turns the player to face the cursor. The sprite's nose points
// along -Y, hence the quarter turn.
func (g *Game) updateAim() {
	g.Player.Rotation = g.Player.Pos.AngleTo(g.cursor()) + math.Pi/2
}

// updateFiring launches a pooled bullet toward the cursor on click.
func (g *Game) updateFiring() {
	if !g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		return
	}

	target := g.cursor()
	vx, vy := g.Player.Pos.Velocity(target, g.Config.Bullets.Speed)
	if b := g.Bullets.Acquire(g.Player.Pos, vx, vy); b == nil {
		g.Logger.Debug("bullet pool exhausted", "capacity", g.Bullets.Cap())
		return
	}
	g.Stats.Shots++
}

// updateBullets moves bullets and recycles the ones that left the field.
func (g *Game) updateBullets(dt float64) {
	for _, b := range g.Bullets.Active() {
		b.Pos = b.Pos.Add(b.VelX*dt, b.VelY*dt)
		if !g.Bounds.Contains(b.Pos) {
			g.Bullets.Release(b)
			continue
		}
		syncBody(b.body, b.Pos, b.Radius)
	}
}

// resolveHits applies bullet damage. The collision space narrows the search
// to nearby enemies; the closest overlapping one takes the hit and the
// bullet is spent.
func (g *Game) resolveHits() {
	for _, b := range g.Bullets.Active() {
		collision := b.body.Check(0, 0, tagEnemy)
		if collision == nil {
			continue
		}

		var target *Enemy
		best := math.Inf(1)
		for _, obj := range collision.Objects {
			e, ok := obj.Data.(*Enemy)
			if !ok || !e.Active {
				continue
			}
			reach := e.Radius + b.Radius
			d := b.Pos.DistanceSq(e.Pos)
			if d <= reach*reach && d < best {
				target = e
				best = d
			}
		}
		if target == nil {
			continue
		}

		g.Bullets.Release(b)
		g.damageEnemy(target, g.Config.Bullets.Damage)
	}
}

func (g *Game) damageEnemy(e *Enemy, damage int) {
	e.Health -= damage
	if e.Health > 0 {
		return
	}
	e.Health = 0
	e.Active = false
	g.space.Remove(e.body)
	g.Stats.Kills++
	g.Logger.Debug("enemy destroyed", "x", e.Pos.X, "y", e.Pos.Y, "kills", g.Stats.Kills)
}

func (g *Game) cursor() geom.Point {
	x, y := g.InputMgr.CursorPosition()
	return geom.Point{X: float64(x), Y: float64(y)}
}
