package game

import (
	"image"
	"path/filepath"

	"github.com/charmbracelet/log"

	"chosenoffset.com/skirmish/internal/config"
	"chosenoffset.com/skirmish/internal/render"
	"chosenoffset.com/skirmish/internal/sprites"
)

// Sprites are the three images the scene draws.
type Sprites struct {
	Player render.Image
	Enemy  render.Image
	Bullet render.Image
}

// LoadSprites loads the configured sprite files. Any file that cannot be
// loaded is replaced by a generated placeholder.
func LoadSprites(assets config.AssetConfig, loader render.ResourceLoader, r render.Renderer, logger *log.Logger) Sprites {
	load := func(name string, placeholder func() *image.RGBA) render.Image {
		path := filepath.Join(assets.Dir, name)
		if loader != nil {
			img, err := loader.LoadImage(path)
			if err == nil {
				return img
			}
			logger.Warn("sprite unavailable, using placeholder", "path", path, "error", err)
		}
		return r.NewImageFromImage(placeholder())
	}

	return Sprites{
		Player: load(assets.Player, sprites.Player),
		Enemy:  load(assets.Enemy, sprites.Enemy),
		Bullet: load(assets.Bullet, sprites.Bullet),
	}
}

// EnemyRadius is the hit radius of an enemy, half its sprite width
func (s Sprites) EnemyRadius() float64 {
	return halfWidth(s.Enemy)
}

// BulletRadius is the hit radius of a bullet, half its sprite width
func (s Sprites) BulletRadius() float64 {
	return halfWidth(s.Bullet)
}

func halfWidth(img render.Image) float64 {
	w, _ := img.Size()
	return float64(w) / 2
}
