package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/games/breakout"
	"github.com/vovakirdan/tui-bricks/internal/platform/tui"
	"github.com/vovakirdan/tui-bricks/internal/registry"
)

// newLogger returns a stderr logger at the level given by --log-level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// gameOptions collects the global flags that shape a game.
func gameOptions(logger *log.Logger) registry.Options {
	return registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		LevelsPath: flagLevels,
		Logger:     logger,
	}
}

// levelNames lists the levels the menu offers.
func levelNames() ([]string, error) {
	levels := breakout.BuiltinLevels()
	if flagLevels != "" {
		var err error
		if levels, err = breakout.LoadLevels(flagLevels); err != nil {
			return nil, err
		}
	}

	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = l.Name
	}
	return names, nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// tuiTheme resolves --theme and installs it.
func tuiTheme() (tui.Theme, bool) {
	t, ok := tui.ThemeByName(flagTheme)
	if ok {
		tui.SetTheme(t)
	}
	return t, ok
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
