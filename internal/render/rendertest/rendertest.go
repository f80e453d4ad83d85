// Package rendertest provides an in-memory render backend for driving game
// systems in tests without opening a window.
package rendertest

import (
	"errors"
	"image"
	"image/color"

	"chosenoffset.com/skirmish/internal/render"
)

// Rect records a FillRect call
type Rect struct {
	X, Y, W, H float32
	Color      color.Color
}

// Renderer records draw calls instead of rasterising them
type Renderer struct {
	Rects   []Rect
	Circles int
	Texts   []string
}

// NewRenderer creates an empty recording renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) NewImageFromImage(src image.Image) render.Image {
	b := src.Bounds()
	return &Image{W: b.Dx(), H: b.Dy()}
}

func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	r.Rects = append(r.Rects, Rect{X: x, Y: y, W: width, H: height, Color: clr})
}

func (r *Renderer) FillCircle(dst render.Image, cx, cy, radius float32, clr color.Color) {
	r.Circles++
}

func (r *Renderer) DrawText(dst render.Image, text string, x, y int) {
	r.Texts = append(r.Texts, text)
}

// Reset forgets recorded calls
func (r *Renderer) Reset() {
	r.Rects = nil
	r.Circles = 0
	r.Texts = nil
}

// Image is a sized surface that records the sprites drawn onto it
type Image struct {
	W, H    int
	Sprites []render.SpriteOptions
}

func (i *Image) Size() (int, int) { return i.W, i.H }
func (i *Image) Fill(clr color.Color) {}

func (i *Image) DrawSprite(src render.Image, opts render.SpriteOptions) {
	i.Sprites = append(i.Sprites, opts)
}

// Input is a scripted InputManager. "Just pressed" state lasts until the next
// call to EndFrame.
type Input struct {
	Held        map[render.Key]bool
	JustKeys    map[render.Key]bool
	CursorX     int
	CursorY     int
	JustButtons map[render.MouseButton]bool
}

// NewInput creates an Input with nothing pressed
func NewInput() *Input {
	return &Input{
		Held:        make(map[render.Key]bool),
		JustKeys:    make(map[render.Key]bool),
		JustButtons: make(map[render.MouseButton]bool),
	}
}

func (in *Input) IsKeyPressed(key render.Key) bool { return in.Held[key] }
func (in *Input) IsKeyJustPressed(key render.Key) bool { return in.JustKeys[key] }
func (in *Input) CursorPosition() (int, int) { return in.CursorX, in.CursorY }
func (in *Input) IsMouseButtonJustPressed(b render.MouseButton) bool {
	return in.JustButtons[b]
}

// Press holds key down
func (in *Input) Press(key render.Key) {
	if !in.Held[key] {
		in.JustKeys[key] = true
	}
	in.Held[key] = true
}

// Release lets key up
func (in *Input) Release(key render.Key) {
	delete(in.Held, key)
	delete(in.JustKeys, key)
}

// Click presses the left button at (x, y) for one frame
func (in *Input) Click(x, y int) {
	in.CursorX, in.CursorY = x, y
	in.JustButtons[render.MouseButtonLeft] = true
}

// EndFrame clears edge-triggered state
func (in *Input) EndFrame() {
	in.JustKeys = make(map[render.Key]bool)
	in.JustButtons = make(map[render.MouseButton]bool)
}

// Loader serves images from a fixed table; unknown paths fail
type Loader struct {
	Images map[string]render.Image
}

// ErrNotFound is returned for paths the Loader does not know
var ErrNotFound = errors.New("rendertest: image not found")

func (l *Loader) LoadImage(path string) (render.Image, error) {
	if img, ok := l.Images[path]; ok {
		return img, nil
	}
	return nil, ErrNotFound
}
