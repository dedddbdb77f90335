package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		World: BreakoutWorld{
			Width:  800,
			Height: 600,
			Border: 20,
		},
		Ball: BreakoutBall{
			Count:       3,
			Radius:      7,
			Speed:       4,
			MaxSpeed:    9,
			LaunchAngle: 0,
			Spread:      20,
		},
		Paddle: BreakoutPaddle{
			Width:  120,
			Height: 15,
			Step:   20,
			Lift:   15,
		},
		Bricks: BreakoutBricks{
			Height: 20,
			Top:    60,
		},
		Gameplay: BreakoutGameplay{
			Lives:           3,
			HitPoints:       5,
			ClearBonus:      100,
			ServeDelay:      60,
			WallsResetColor: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				PaddleShrink:    0.25,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML for a game.
func DefaultYAML(gameID string) []byte {
	switch gameID {
	case "breakout", "breakout_endless":
		return defaultBreakoutYAML
	default:
		return nil
	}
}
