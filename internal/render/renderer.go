// Package render is the seam between game logic and the 2D engine. Game
// systems only see these interfaces, so they run headless in tests.
package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrQuit is returned from Game.Update to end the run. Backends treat it as
// a clean exit.
var ErrQuit = errors.New("render: quit requested")

// Renderer draws primitives and uploads generated artwork.
type Renderer interface {
	NewImageFromImage(src image.Image) Image
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	FillCircle(dst Image, cx, cy, radius float32, clr color.Color)
	DrawText(dst Image, text string, x, y int)
}

// Image is a surface that can be drawn on and drawn from.
type Image interface {
	Size() (width, height int)
	Fill(clr color.Color)
	// DrawSprite draws src centred on (opts.X, opts.Y).
	DrawSprite(src Image, opts SpriteOptions)
}

// SpriteOptions places a sprite. Scale is applied before Rotation, both about
// the sprite's centre.
type SpriteOptions struct {
	X, Y     float64
	Scale    float64 // 0 is treated as 1
	Rotation float64 // radians, clockwise
}

// InputManager reports device state for the current tick.
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	CursorPosition() (x, y int)
	IsMouseButtonJustPressed(button MouseButton) bool
}

// Key is a keyboard key the game reads.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyEscape
)

// MouseButton is a mouse button the game reads.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
)

// ResourceLoader loads images from disk.
type ResourceLoader interface {
	LoadImage(path string) (Image, error)
}

// Game is driven by the Engine: Update once per tick, Draw once per frame.
type Game interface {
	Update() error
	Draw(screen Image)
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Window configures the window the Engine opens.
type Window struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	TPS       int
}

// Engine owns the window and the game loop.
type Engine interface {
	// Run blocks until the game ends. A Game returning ErrQuit ends it with
	// a nil error.
	Run(game Game, win Window) error
}
