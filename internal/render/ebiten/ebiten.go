// Package ebiten implements the render interfaces on top of Ebitengine.
package ebiten

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/skirmish/internal/render"
)

// Renderer draws with Ebiten's vector and debug text helpers.
type Renderer struct{}

// NewRenderer returns the Ebiten renderer.
func NewRenderer() render.Renderer {
	return Renderer{}
}

func (Renderer) NewImageFromImage(src image.Image) render.Image {
	return &surface{img: ebiten.NewImageFromImage(src)}
}

func (Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	if width <= 0 || height <= 0 {
		return
	}
	vector.DrawFilledRect(unwrap(dst), x, y, width, height, clr, false)
}

func (Renderer) FillCircle(dst render.Image, cx, cy, radius float32, clr color.Color) {
	vector.DrawFilledCircle(unwrap(dst), cx, cy, radius, clr, true)
}

// DrawText uses the built-in debug font, which is always white.
func (Renderer) DrawText(dst render.Image, text string, x, y int) {
	ebitenutil.DebugPrintAt(unwrap(dst), text, x, y)
}

// surface adapts *ebiten.Image to render.Image.
type surface struct {
	img *ebiten.Image
}

func unwrap(img render.Image) *ebiten.Image {
	return img.(*surface).img
}

func (s *surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *surface) Fill(clr color.Color) {
	s.img.Fill(clr)
}

func (s *surface) DrawSprite(src render.Image, opts render.SpriteOptions) {
	img := unwrap(src)
	w, h := src.Size()

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	if opts.Scale != 0 && opts.Scale != 1 {
		op.GeoM.Scale(opts.Scale, opts.Scale)
	}
	if opts.Rotation != 0 {
		op.GeoM.Rotate(opts.Rotation)
	}
	op.GeoM.Translate(opts.X, opts.Y)
	s.img.DrawImage(img, op)
}

// Input polls Ebiten's keyboard and mouse state.
type Input struct{}

// NewInputManager returns the Ebiten input source.
func NewInputManager() render.InputManager {
	return Input{}
}

func (Input) IsKeyPressed(key render.Key) bool {
	k, ok := keys[key]
	return ok && ebiten.IsKeyPressed(k)
}

func (Input) IsKeyJustPressed(key render.Key) bool {
	k, ok := keys[key]
	return ok && inpututil.IsKeyJustPressed(k)
}

func (Input) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (Input) IsMouseButtonJustPressed(button render.MouseButton) bool {
	b, ok := buttons[button]
	return ok && inpututil.IsMouseButtonJustPressed(b)
}

var keys = map[render.Key]ebiten.Key{
	render.KeyW:      ebiten.KeyW,
	render.KeyA:      ebiten.KeyA,
	render.KeyS:      ebiten.KeyS,
	render.KeyD:      ebiten.KeyD,
	render.KeyEscape: ebiten.KeyEscape,
}

var buttons = map[render.MouseButton]ebiten.MouseButton{
	render.MouseButtonLeft: ebiten.MouseButtonLeft,
}

// Loader decodes image files from disk. Decoders must be registered by the
// caller (image/png is, through the sprites package).
type Loader struct{}

// NewResourceLoader returns the file loader.
func NewResourceLoader() render.ResourceLoader {
	return Loader{}
}

func (Loader) LoadImage(path string) (render.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return &surface{img: img}, nil
}

// Engine runs games in an Ebiten window.
type Engine struct{}

// NewEngine returns the Ebiten engine.
func NewEngine() render.Engine {
	return Engine{}
}

// Run configures the window and blocks in ebiten.RunGame.
func (Engine) Run(game render.Game, win render.Window) error {
	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowTitle(win.Title)
	if win.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	if win.TPS > 0 {
		ebiten.SetTPS(win.TPS)
	}
	return ebiten.RunGame(&adapter{game: game})
}

// adapter turns a render.Game into an ebiten.Game.
type adapter struct {
	game render.Game
}

func (a *adapter) Update() error {
	err := a.game.Update()
	if errors.Is(err, render.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

func (a *adapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&surface{img: screen})
}

func (a *adapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
