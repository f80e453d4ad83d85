// Package sprites generates the placeholder artwork used when the asset files
// are missing, and can write it to disk as PNGs.
package sprites

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

// EntitySize is the edge length of the player and enemy sprites
const EntitySize = 32

// BulletSize is the edge length of the bullet sprite
const BulletSize = 8

// Names of the sprite files, matching the asset directory layout
const (
	PlayerFile = "player.png"
	EnemyFile  = "enemy.png"
	BulletFile = "bullet.png"
)

// ColorPalette defines the placeholder colors
var ColorPalette = struct {
	Player       color.RGBA
	PlayerNose   color.RGBA
	Enemy        color.RGBA
	Bullet       color.RGBA
	Outline      color.RGBA
	Background   color.RGBA
	PlayerHealth color.RGBA
	EnemyHealth  color.RGBA
}{
	Player:       color.RGBA{0, 200, 255, 255},   // Cyan hull
	PlayerNose:   color.RGBA{255, 255, 255, 255}, // White tip shows facing
	Enemy:        color.RGBA{255, 50, 50, 255},   // Bright red
	Bullet:       color.RGBA{255, 215, 0, 255},   // Gold
	Outline:      color.RGBA{20, 20, 20, 255},
	Background:   color.RGBA{40, 40, 45, 255}, // Very dark gray
	PlayerHealth: color.RGBA{0, 255, 0, 255},   // 0x00ff00
	EnemyHealth:  color.RGBA{255, 0, 0, 255},   // 0xff0000
}

// CreateCircle creates a circular sprite of the given size
func CreateCircle(size int, fillColor, outlineColor color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	// Make background transparent
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)

	center := size / 2
	radius := size/2 - 1
	if radius < 1 {
		radius = 1
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := x - center
			dy := y - center
			distSq := dx*dx + dy*dy

			if distSq < radius*radius {
				img.Set(x, y, fillColor)
			} else if distSq <= radius*radius+2*radius {
				img.Set(x, y, outlineColor)
			}
		}
	}

	return img
}

// CreateShip creates the player sprite: a triangle pointing toward -Y, the
// direction the sprite faces at rotation zero.
func CreateShip(size int, hull, nose color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)

	center := float64(size) / 2
	for y := 0; y < size; y++ {
		// Half width grows linearly from the tip (top) to the base (bottom)
		halfWidth := float64(y+1) / float64(size) * center
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - center
			if dx < -halfWidth || dx > halfWidth {
				continue
			}
			if y < size/4 {
				img.Set(x, y, nose)
			} else {
				img.Set(x, y, hull)
			}
		}
	}

	return img
}

// Player returns the placeholder player sprite
func Player() *image.RGBA {
	return CreateShip(EntitySize, ColorPalette.Player, ColorPalette.PlayerNose)
}

// Enemy returns the placeholder enemy sprite
func Enemy() *image.RGBA {
	return CreateCircle(EntitySize, ColorPalette.Enemy, ColorPalette.Outline)
}

// Bullet returns the placeholder bullet sprite
func Bullet() *image.RGBA {
	return CreateCircle(BulletSize, ColorPalette.Bullet, ColorPalette.Bullet)
}

// Placeholder returns the generated sprite for one of the asset file names
func Placeholder(file string) (*image.RGBA, error) {
	switch file {
	case PlayerFile:
		return Player(), nil
	case EnemyFile:
		return Enemy(), nil
	case BulletFile:
		return Bullet(), nil
	default:
		return nil, fmt.Errorf("no placeholder for %q", file)
	}
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// GenerateAndSave writes every placeholder sprite into dir and returns the
// paths written.
func GenerateAndSave(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create asset directory %s: %w", dir, err)
	}

	var written []string
	for _, name := range []string{PlayerFile, EnemyFile, BulletFile} {
		img, err := Placeholder(name)
		if err != nil {
			return written, err
		}
		path := filepath.Join(dir, name)
		if err := SavePNG(img, path); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
