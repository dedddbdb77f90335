package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/games/breakout"
	"github.com/vovakirdan/tui-bricks/internal/registry"
	"github.com/vovakirdan/tui-bricks/internal/storage"
)

var (
	flagSimRuns    int
	flagSimSteps   int
	flagSimWorkers int
	flagSimMode    string
	flagSimSave    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless autopilot games",
	Long: `Run several games without a terminal, steering the paddle with the
built-in autopilot. Run i uses seed --seed+i, so a batch is reproducible and
two runs with the same seed print the same state hash.

Examples:
  bricks simulate
  bricks simulate --runs 16 --workers 4 --steps 50000
  bricks simulate --mode endless --seed 42 --save`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimRuns, "runs", 4, "Number of games to simulate")
	simulateCmd.Flags().IntVar(&flagSimSteps, "steps", 10000, "Maximum ticks per game")
	simulateCmd.Flags().IntVar(&flagSimWorkers, "workers", 4, "Games simulated in parallel")
	simulateCmd.Flags().StringVar(&flagSimMode, "mode", "campaign", "Game mode: campaign, endless")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the runs in the scores database")
}

func runSimulate(cmd *cobra.Command, _ []string) {
	logger := newLogger("bricks-sim")

	mode := breakout.ModeCampaign
	switch flagSimMode {
	case "campaign":
	case "endless":
		mode = breakout.ModeEndless
	default:
		fatal("unknown mode %q", flagSimMode)
	}
	if flagSimRuns <= 0 || flagSimSteps <= 0 {
		fatal("--runs and --steps must be positive")
	}

	baseSeed := flagSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}
	// Autopilot games never read the terminal; they always use the
	// default screen.
	opts := gameOptions(logger)

	results := make([]storage.RunResult, flagSimRuns)
	start := time.Now()

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(flagSimWorkers, 1))
	for i := range results {
		g.Go(func() error {
			run, err := simulateOne(ctx, mode, opts, baseSeed+int64(i), flagSimSteps)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			results[i] = run
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fatal("%v", err)
	}

	logger.Info("simulation finished", "runs", len(results), "elapsed", time.Since(start).Round(time.Millisecond))

	if flagSimSave {
		saveRuns(results)
	}

	printRuns(results)
}

// simulateOne plays a single seeded game under the autopilot.
func simulateOne(ctx context.Context, mode breakout.GameMode, opts registry.Options, seed int64, maxSteps int) (storage.RunResult, error) {
	game, err := breakout.Load(mode, opts)
	if err != nil {
		return storage.RunResult{}, err
	}

	cfg := core.DefaultConfig()
	cfg.Seed = seed
	game.Reset(cfg)

	steps, err := breakout.RunAutopilot(ctx, game, maxSteps)
	if err != nil {
		return storage.RunResult{}, err
	}

	snap := game.Snapshot()
	state := game.State()
	opts.LoggerOrDiscard().Debug("run finished",
		"seed", seed,
		"steps", steps,
		"score", state.Score,
		"won", state.Won,
	)

	return storage.RunResult{
		GameID:     game.ID(),
		Seed:       seed,
		Steps:      steps,
		Score:      state.Score,
		Level:      state.Level,
		BlocksLeft: snap.BlocksLeft,
		BallsLeft:  snap.BallsLeft,
		LivesLeft:  state.Lives,
		StateHash:  fmt.Sprintf("%016x", snap.Hash()),
	}, nil
}

// saveRuns stores every run; the IDs assigned are written back.
func saveRuns(results []storage.RunResult) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close()

	for i := range results {
		id, err := store.SaveRun(results[i])
		if err != nil {
			fatal("%v", err)
		}
		results[i].RunID = id
	}
}

func printRuns(results []storage.RunResult) {
	fmt.Printf("  %-20s  %-7s  %-6s  %-5s  %-6s  %-5s  %s\n", "Seed", "Steps", "Score", "Level", "Blocks", "Lives", "Hash")
	fmt.Printf("  %-20s  %-7s  %-6s  %-5s  %-6s  %-5s  %s\n", "----", "-----", "-----", "-----", "------", "-----", "----")
	for _, r := range results {
		fmt.Printf("  %-20s  %-7d  %-6d  %-5d  %-6d  %-5d  %s\n",
			strconv.FormatInt(r.Seed, 10), r.Steps, r.Score, r.Level, r.BlocksLeft, r.LivesLeft, r.StateHash)
	}
}
