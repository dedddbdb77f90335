// bricks is a terminal brick breaker built on a small 2D collision engine.
//
// Usage:
//
//	bricks list              - List available games
//	bricks play [game]       - Play a game (default: breakout)
//	bricks menu              - Start menu to pick a mode interactively
//	bricks serve             - Start SSH server for remote play
//	bricks scores [game]     - Show high scores and recorded runs
//	bricks simulate          - Run headless autopilot games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.bricks/scores.db)
//	--config <path>       - Custom breakout config YAML
//	--difficulty <preset> - Difficulty preset: easy, normal, hard, fixed
//	--levels <path>       - Custom YAML level pack
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-bricks/internal/games/breakout"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagTheme      string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bricks",
	Short: "Bricks - break bricks in your terminal",
	Long: `Bricks is a terminal brick breaker. Several balls bounce between
walls, a paddle and rows of colored bricks; a brick breaks when a ball of a
different color strikes it, and the ball takes the brick's color.

Available commands:
  list      - Show all available games
  play      - Play a game directly
  menu      - Interactive mode and level picker
  serve     - Start SSH server for remote play
  scores    - View high scores and recorded runs
  simulate  - Run headless autopilot games

Examples:
  bricks play
  bricks play breakout_endless --difficulty hard
  bricks menu --levels ./my-levels.yaml
  bricks serve --ssh :2222
  bricks simulate --runs 8 --steps 20000 --save`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if _, ok := tuiTheme(); !ok {
			return fmt.Errorf("unknown theme %q", flagTheme)
		}
		return nil
	},
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.bricks/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom breakout config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLevels, "levels", "", "Path to a YAML level pack")
	pf.StringVar(&flagTheme, "theme", "default", "Color theme: default, mono")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}
