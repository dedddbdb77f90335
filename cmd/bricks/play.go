package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bricks/internal/platform/tui"
	"github.com/vovakirdan/tui-bricks/internal/registry"
	"github.com/vovakirdan/tui-bricks/internal/storage"
)

var flagStartLevel int

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game. Without a game, the mode picker
is shown first.

Controls:
  Left/Right/A/D - Move paddle
  Space/Up       - Launch balls
  P              - Pause
  R              - Restart (after game over)
  Esc/B          - Back (when paused or over)
  Ctrl+S         - Screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Slow balls and a wide paddle, speeds up over time
  normal - Default speed, speeds up over time
  hard   - Fast balls and a narrow paddle
  fixed  - No progression, stays at config's initial level

Examples:
  bricks play
  bricks play breakout --level 3
  bricks play breakout_endless --difficulty hard
  bricks play breakout --config ./my-breakout.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStartLevel, "level", 1, "Level to start on (1-based)")
}

func runPlay(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		runMenu(cmd, args)
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fatal("unknown game %q\nRun 'bricks list' to see available games.", gameID)
	}

	logger := newLogger("bricks")
	opts := gameOptions(logger)
	opts.StartLevel = flagStartLevel - 1

	game, err := registry.Create(gameID, opts)
	if err != nil {
		fatal("creating game: %v", err)
	}

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	_, runErr := tui.Run(game, store, runtimeConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatal("running game: %v", runErr)
	}
}
