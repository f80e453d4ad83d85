package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"chosenoffset.com/skirmish/internal/config"
	"chosenoffset.com/skirmish/internal/game"
	"chosenoffset.com/skirmish/internal/render"
	ebitenrender "chosenoffset.com/skirmish/internal/render/ebiten"
	"chosenoffset.com/skirmish/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Open the game window and play until Escape is pressed.

Controls:
  W/A/S/D    - Move
  Mouse      - Aim
  Left click - Fire
  Esc        - End the run

The finished run is recorded in the runs database.

Examples:
  skirmish play
  skirmish play --seed 42
  skirmish play --config ./my-skirmish.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if source == "" {
		source = "embedded defaults"
	}
	logger.Debug("config loaded", "source", source)

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	g, err := game.New(game.Options{
		Config:   cfg,
		Renderer: renderer,
		Input:    inputMgr,
		Loader:   loader,
		Logger:   logger,
		Seed:     flagSeed,
	})
	if err != nil {
		logger.Error("failed to set up scene", "error", err)
		os.Exit(1)
	}

	win := render.Window{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		Resizable: cfg.Window.Resizable,
		TPS:       cfg.Window.TPS,
	}

	logger.Info("starting game", "seed", g.Seed)
	if err := engine.Run(g, win); err != nil {
		logger.Error("game loop failed", "error", err)
		os.Exit(1)
	}

	recordRun(logger, g.Summary())
}

// recordRun stores the finished run. A missing database only costs the record.
func recordRun(logger *log.Logger, summary game.Summary) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("runs database unavailable, run not recorded", "path", flagDBPath, "error", err)
		return
	}
	defer store.Close()

	run, err := store.SaveRun(storage.Run{
		ID:       summary.RunID,
		Seed:     summary.Seed,
		Kills:    summary.Kills,
		Waves:    summary.WavesCleared,
		Shots:    summary.Shots,
		Duration: summary.Duration,
	})
	if err != nil {
		logger.Warn("failed to record run", "error", err)
		return
	}

	logger.Info("run recorded", "id", run.ID, "kills", run.Kills, "waves", run.Waves,
		"shots", run.Shots, "duration", run.Duration)
}
