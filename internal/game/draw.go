package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/skirmish/internal/render"
	"chosenoffset.com/skirmish/internal/sprites"
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(sprites.ColorPalette.Background)

	for _, e := range g.Enemies {
		if e.Active {
			g.drawSprite(screen, g.Sprites.Enemy, e.Pos.X, e.Pos.Y, 1, 0)
		}
	}

	for _, b := range g.Bullets.Active() {
		g.drawSprite(screen, g.Sprites.Bullet, b.Pos.X, b.Pos.Y, 1, 0)
	}

	p := g.Player
	g.drawSprite(screen, g.Sprites.Player, p.Pos.X, p.Pos.Y, p.Scale, p.Rotation)

	g.drawHealthBars(screen)
	g.drawCrosshair(screen)
	g.drawHUD(screen)
}

func (g *Game) drawCrosshair(screen render.Image) {
	c := g.cursor()
	g.Renderer.FillCircle(screen, float32(c.X), float32(c.Y), 3, sprites.ColorPalette.Bullet)
}

func (g *Game) drawSprite(screen, img render.Image, x, y, scale, rotation float64) {
	screen.DrawSprite(img, render.SpriteOptions{X: x, Y: y, Scale: scale, Rotation: rotation})
}

func (g *Game) drawHealthBars(screen render.Image) {
	g.fillBar(screen, HealthBar(g.Player.Pos, g.Player.Health, g.Config.Player.HealthBar), sprites.ColorPalette.PlayerHealth)

	for _, e := range g.Enemies {
		if !e.Active {
			continue
		}
		g.fillBar(screen, HealthBar(e.Pos, e.Health, g.Config.Enemies.HealthBar), sprites.ColorPalette.EnemyHealth)
	}
}

func (g *Game) fillBar(screen render.Image, bar BarRect, clr color.Color) {
	g.Renderer.FillRect(screen, float32(bar.X), float32(bar.Y), float32(bar.W), float32(bar.H), clr)
}

func (g *Game) drawHUD(screen render.Image) {
	status := fmt.Sprintf("Wave %d  Kills %d  Shots %d  Ammo %d/%d",
		g.Wave, g.Stats.Kills, g.Stats.Shots, g.Bullets.Free(), g.Bullets.Cap())
	g.Renderer.DrawText(screen, status, 8, 8)
}
