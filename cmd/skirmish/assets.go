package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chosenoffset.com/skirmish/internal/sprites"
)

var flagOutDir string

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Write placeholder sprites",
	Long: `Generate the player, enemy and bullet placeholder sprites and save
them as PNG files. Edit or replace them to reskin the game.

Examples:
  skirmish assets
  skirmish assets --out ./my-assets`,
	Args: cobra.NoArgs,
	Run:  runAssets,
}

func init() {
	assetsCmd.Flags().StringVar(&flagOutDir, "out", "assets", "Output directory")
}

func runAssets(cmd *cobra.Command, args []string) {
	logger := newLogger()

	written, err := sprites.GenerateAndSave(flagOutDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating sprites: %v\n", err)
		os.Exit(1)
	}
	for _, path := range written {
		logger.Info("sprite written", "path", path)
	}
	fmt.Printf("Wrote %d sprites to %s\n", len(written), flagOutDir)
}
