package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"chosenoffset.com/skirmish/internal/config"
	"chosenoffset.com/skirmish/internal/spawn"
)

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Print an enemy placement",
	Long: `Run the enemy placement generator once and print the positions.
Unset flags fall back to the loaded game config.

Examples:
  skirmish place
  skirmish place --count 40 --separation 80 --seed 7
  skirmish place --width 100 --height 100 --count 1000 --separation 500`,
	Args: cobra.NoArgs,
	Run:  runPlace,
}

func init() {
	addPlaceFlags(placeCmd)
}

func addPlaceFlags(cmd *cobra.Command) {
	cmd.Flags().Int("count", 0, "Number of positions (default: enemies.count)")
	cmd.Flags().Float64("width", 0, "Field width (default: window.width)")
	cmd.Flags().Float64("height", 0, "Field height (default: window.height)")
	cmd.Flags().Float64("separation", 0, "Minimum separation (default: enemies.min_separation)")
	cmd.Flags().Int("max-attempts", 0, "Draws per position (default: enemies.max_attempts)")
}

// placeRequest is one generator run
type placeRequest struct {
	Count       int
	Bounds      spawn.Bounds
	Separation  float64
	MaxAttempts int
}

// resolvePlaceRequest starts from the game config and applies every flag the
// user set explicitly.
func resolvePlaceRequest(cmd *cobra.Command, cfg *config.Config) (placeRequest, error) {
	req := placeRequest{
		Count:       cfg.Enemies.Count,
		Bounds:      spawn.Bounds{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)},
		Separation:  cfg.Enemies.MinSeparation,
		MaxAttempts: cfg.Enemies.MaxAttempts,
	}

	flags := cmd.Flags()
	var err error
	if flags.Changed("count") {
		if req.Count, err = flags.GetInt("count"); err != nil {
			return req, err
		}
	}
	if flags.Changed("width") {
		if req.Bounds.Width, err = flags.GetFloat64("width"); err != nil {
			return req, err
		}
	}
	if flags.Changed("height") {
		if req.Bounds.Height, err = flags.GetFloat64("height"); err != nil {
			return req, err
		}
	}
	if flags.Changed("separation") {
		if req.Separation, err = flags.GetFloat64("separation"); err != nil {
			return req, err
		}
	}
	if flags.Changed("max-attempts") {
		if req.MaxAttempts, err = flags.GetInt("max-attempts"); err != nil {
			return req, err
		}
	}
	return req, nil
}

func runPlace(cmd *cobra.Command, args []string) {
	logger := newLogger()

	cfg, _, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	req, err := resolvePlaceRequest(cmd, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gen := spawn.NewGenerator(rand.New(rand.NewSource(seed)), spawn.WithMaxAttempts(req.MaxAttempts))
	start := time.Now()
	positions, err := gen.Generate(req.Count, req.Bounds, req.Separation)
	elapsed := time.Since(start)

	if err != nil {
		var placementErr *spawn.PlacementError
		if errors.As(err, &placementErr) && placementErr.Reason == "" {
			logger.Error("placement failed", "placed", placementErr.Placed, "count", placementErr.Count,
				"attempts", placementErr.Attempts, "elapsed", elapsed)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Placement - %d positions in %.0fx%.0f, separation %.1f (seed %d)\n",
		len(positions), req.Bounds.Width, req.Bounds.Height, req.Separation, seed)
	fmt.Println()
	fmt.Printf("  %-4s  %-10s  %-10s\n", "#", "X", "Y")
	fmt.Printf("  %-4s  %-10s  %-10s\n", "-", "-", "-")
	for i, p := range positions {
		fmt.Printf("  %-4d  %-10.2f  %-10.2f\n", i+1, p.X, p.Y)
	}
	logger.Debug("placement done", "elapsed", elapsed)
}
