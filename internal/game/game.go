package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"

	"chosenoffset.com/skirmish/internal/config"
	"chosenoffset.com/skirmish/internal/geom"
	"chosenoffset.com/skirmish/internal/render"
	"chosenoffset.com/skirmish/internal/spawn"
)

// cellSize is the edge of a collision-space cell in pixels
const cellSize = 32

// Options collects the collaborators a Game is built from.
type Options struct {
	Config   *config.Config
	Renderer render.Renderer
	Input    render.InputManager
	Loader   render.ResourceLoader
	Logger   *log.Logger
	Seed     int64
}

// Game holds all game state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Bounds       geom.Size
	Config       *config.Config

	Player  Player
	Enemies []*Enemy
	Bullets *BulletPool
	Stats   Stats
	Wave    int
	RunID   uuid.UUID
	Seed    int64

	Renderer render.Renderer
	InputMgr render.InputManager
	Sprites  Sprites
	Logger   *log.Logger

	space        *resolv.Space
	spawner      *spawn.Generator
	ticks        int
	wavesStalled bool
}

// New sets up the scene: the player at the centre of the field, an empty
// bullet pool and the first wave of enemies.
func New(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.Renderer == nil || opts.Input == nil {
		return nil, errors.New("game: renderer and input are required")
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	width, height := cfg.Window.Width, cfg.Window.Height
	bounds := geom.Size{Width: float64(width), Height: float64(height)}

	sprites := LoadSprites(cfg.Assets, opts.Loader, opts.Renderer, logger)
	space := resolv.NewSpace(width, height, cellSize, cellSize)

	g := &Game{
		ScreenWidth:  width,
		ScreenHeight: height,
		Bounds:       bounds,
		Config:       cfg,
		Player: Player{
			Pos:    geom.Point{X: bounds.Width / 2, Y: bounds.Height / 2},
			Speed:  cfg.Player.Speed,
			Health: cfg.Player.Health,
			Scale:  cfg.Player.Scale,
		},
		Bullets:  NewBulletPool(cfg.Bullets.PoolSize, sprites.BulletRadius(), space),
		RunID:    uuid.New(),
		Seed:     seed,
		Renderer: opts.Renderer,
		InputMgr: opts.Input,
		Sprites:  sprites,
		Logger:   logger,
		space:    space,
		spawner:  spawn.NewGenerator(rng, spawn.WithMaxAttempts(cfg.Enemies.MaxAttempts)),
	}

	if err := g.spawnWave(1); err != nil {
		return nil, fmt.Errorf("game: failed to spawn initial enemies: %w", err)
	}

	logger.Info("scene ready", "run", g.RunID, "seed", seed, "enemies", len(g.Enemies),
		"width", width, "height", height)
	return g, nil
}

// Update advances the scene by one tick.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		g.Logger.Info("run ended by player", "kills", g.Stats.Kills, "shots", g.Stats.Shots)
		return render.ErrQuit
	}

	dt := g.tickSeconds()
	g.ticks++

	g.updateMovement(dt)
	g.updateAim()
	g.updateFiring()
	g.updateBullets(dt)
	g.resolveHits()
	g.updateWaves()

	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// Elapsed returns the simulated time since the scene was created.
func (g *Game) Elapsed() time.Duration {
	return time.Duration(g.ticks) * time.Second / time.Duration(g.tps())
}

// ActiveEnemies returns the enemies still alive
func (g *Game) ActiveEnemies() []*Enemy {
	active := make([]*Enemy, 0, len(g.Enemies))
	for _, e := range g.Enemies {
		if e.Active {
			active = append(active, e)
		}
	}
	return active
}

// Summary describes the run so far.
type Summary struct {
	RunID        uuid.UUID
	Seed         int64
	Kills        int
	Shots        int
	WavesCleared int
	Duration     time.Duration
}

// Summary returns the run's totals
func (g *Game) Summary() Summary {
	return Summary{
		RunID:        g.RunID,
		Seed:         g.Seed,
		Kills:        g.Stats.Kills,
		Shots:        g.Stats.Shots,
		WavesCleared: g.Stats.WavesCleared,
		Duration:     g.Elapsed(),
	}
}

func (g *Game) tps() int {
	if g.Config.Window.TPS <= 0 {
		return 60
	}
	return g.Config.Window.TPS
}

func (g *Game) tickSeconds() float64 {
	return 1.0 / float64(g.tps())
}
