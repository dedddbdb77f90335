// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid breakout config")

// BreakoutConfig contains all configuration for the Breakout game.
// Lengths are in world units; the renderer scales the world onto the
// terminal grid.
type BreakoutConfig struct {
	World      BreakoutWorld    `yaml:"world"`
	Ball       BreakoutBall     `yaml:"ball"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Bricks     BreakoutBricks   `yaml:"bricks"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakoutWorld defines the playfield.
type BreakoutWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Border float64 `yaml:"border"` // Thickness of the gray walls
}

// BreakoutBall defines the balls put into play on each serve.
type BreakoutBall struct {
	Count       int     `yaml:"count"`
	Radius      float64 `yaml:"radius"`
	Speed       float64 `yaml:"speed"`        // World units per tick
	MaxSpeed    float64 `yaml:"max_speed"`    // Cap after difficulty scaling
	LaunchAngle float64 `yaml:"launch_angle"` // Degrees, 0 = straight up, clockwise
	Spread      float64 `yaml:"spread"`       // Degrees between balls of one serve
}

// BreakoutPaddle defines the player paddle.
type BreakoutPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Step   float64 `yaml:"step"` // World units per move
	Lift   float64 `yaml:"lift"` // Gap between paddle bottom and the bottom wall
}

// BreakoutBricks defines how level maps are laid out.
type BreakoutBricks struct {
	Height float64 `yaml:"height"`
	Top    float64 `yaml:"top"` // Gap between the top wall and the first row
}

// BreakoutGameplay defines scoring and lives.
type BreakoutGameplay struct {
	Lives           int  `yaml:"lives"`
	HitPoints       int  `yaml:"hit_points"`        // Awarded per scoring hit
	ClearBonus      int  `yaml:"clear_bonus"`       // Awarded when a level is cleared
	ServeDelay      int  `yaml:"serve_delay"`       // Ticks before a new serve is allowed
	WallsResetColor bool `yaml:"walls_reset_color"` // Walls repaint balls to their base color
}

// Validate reports the first setting that would make the world unplayable.
func (c BreakoutConfig) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"world.width", c.World.Width > 0},
		{"world.height", c.World.Height > 0},
		{"world.border", c.World.Border > 0},
		{"ball.count", c.Ball.Count > 0},
		{"ball.radius", c.Ball.Radius > 0},
		{"ball.speed", c.Ball.Speed > 0},
		{"ball.max_speed", c.Ball.MaxSpeed >= c.Ball.Speed},
		{"paddle.width", c.Paddle.Width > 0},
		{"paddle.height", c.Paddle.Height > 0},
		{"paddle.step", c.Paddle.Step > 0},
		{"paddle.lift", c.Paddle.Lift >= 0},
		{"bricks.height", c.Bricks.Height > 0},
		{"gameplay.lives", c.Gameplay.Lives > 0},
		{"difficulty.progression.type", validProgression(c.Difficulty.Progression.Type)},
	}
	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: %s out of range", ErrInvalidConfig, check.name)
		}
	}

	inner := c.World.Width - 2*c.World.Border
	if c.Paddle.Width >= inner {
		return fmt.Errorf("%w: paddle.width %g does not fit playfield width %g", ErrInvalidConfig, c.Paddle.Width, inner)
	}
	if c.World.Height <= 2*c.World.Border+c.Bricks.Top+c.Paddle.Lift+c.Paddle.Height {
		return fmt.Errorf("%w: world.height %g too small for layout", ErrInvalidConfig, c.World.Height)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", "levels", or "none"
	MaxAt int    `yaml:"max_at"` // Score, ticks or cleared levels at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to ball speed at max difficulty
	PaddleShrink    float64 `yaml:"paddle_shrink"`    // Fraction of paddle width lost at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty input yields the
// empty preset, meaning "leave the config alone".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
