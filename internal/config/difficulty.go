package config

import "math"

// Progression types.
const (
	ProgressNone   = "none"
	ProgressScore  = "score"
	ProgressTime   = "time"
	ProgressLevels = "levels"
)

// Progress is how far a game has come; the configured progression type
// picks which field drives the difficulty.
type Progress struct {
	Score  int
	Ticks  int
	Levels int // Levels cleared since the game started
}

// DifficultyManager calculates dynamic game parameters from progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressNone
}

// Level returns the difficulty level in [0, 1]. It rises linearly from the
// initial level and reaches 1 when the tracked quantity hits max_at.
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var done int
	switch d.cfg.Progression.Type {
	case ProgressScore:
		done = p.Score
	case ProgressTime:
		done = p.Ticks
	case ProgressLevels:
		done = p.Levels
	default:
		return d.initialLevel
	}

	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))
	progress := clampF(float64(done)/maxAt, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns baseSpeed scaled up by the current level, capped at maxSpeed.
func (d *DifficultyManager) Speed(baseSpeed, maxSpeed float64, p Progress) float64 {
	return math.Min(maxSpeed, baseSpeed*(1.0+d.Level(p)*d.cfg.Scaling.SpeedMultiplier))
}

// PaddleWidth returns baseWidth shrunk by the current level, never below
// minWidth.
func (d *DifficultyManager) PaddleWidth(baseWidth, minWidth float64, p Progress) float64 {
	shrink := clampF(d.cfg.Scaling.PaddleShrink, 0.0, 1.0)
	return math.Max(minWidth, baseWidth*(1.0-d.Level(p)*shrink))
}

// validProgression accepts the known types; empty means none.
func validProgression(t string) bool {
	switch t {
	case "", ProgressNone, ProgressScore, ProgressTime, ProgressLevels:
		return true
	}
	return false
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
