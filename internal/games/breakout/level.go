// Package breakout implements a brick breaker driven by the physics
// collision engine: walls, a paddle, breakable bricks and several balls
// share one environment and are stepped once per tick.
package breakout

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

// ErrNoBricks is returned for a level with nothing to break.
var ErrNoBricks = errors.New("breakout: level has no breakable bricks")

// BrickKind represents different types of bricks.
type BrickKind int

const (
	BrickEmpty  BrickKind = iota // No brick
	BrickNormal                  // Removed on its first scoring hit
	BrickSolid                   // Indestructible
)

// Brick is a single cell of a level map.
type Brick struct {
	Kind   BrickKind
	Color  core.Color
	Themed bool // Takes the row's color when the level is built
}

// Palette is the set of brick colors. Balls are never drawn in these colors
// until they pick one up from a brick.
var Palette = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorBrightRed,
	core.ColorBrightGreen,
}

// SolidColor is the color of indestructible bricks.
const SolidColor = core.ColorGray

// Level represents a playable level with brick layout.
type Level struct {
	ID      string
	Name    string
	Width   int          // Number of brick columns
	Height  int          // Number of brick rows
	Bricks  [][]Brick    // 2D grid of bricks [row][col]
	Palette []core.Color // Row colors for '#' bricks; empty uses Palette
}

// RowPalette returns the colors '#' rows are drawn from.
func (l *Level) RowPalette() []core.Color {
	if len(l.Palette) > 0 {
		return l.Palette
	}
	return Palette
}

// CountBreakable returns the number of bricks that can be destroyed.
func (l *Level) CountBreakable() int {
	count := 0
	for _, row := range l.Bricks {
		for _, b := range row {
			if b.Kind == BrickNormal {
				count++
			}
		}
	}
	return count
}

// ParseLevel creates a Level from an ASCII map.
// Characters:
//
//	'#' = brick in the row's color
//	'1'-'9' = brick in Palette[digit-1]
//	'X' = solid/indestructible brick
//	anything else = empty
//
// Row colors for '#' cycle through Palette. The game may recolor them from
// its seeded RNG when the level is built.
func ParseLevel(id, name string, lines []string) *Level {
	maxWidth := 0
	for _, line := range lines {
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}

	level := &Level{
		ID:     id,
		Name:   name,
		Width:  maxWidth,
		Height: len(lines),
		Bricks: make([][]Brick, len(lines)),
	}

	for row, line := range lines {
		rowColor := Palette[row%len(Palette)]
		level.Bricks[row] = make([]Brick, maxWidth)
		for col := range maxWidth {
			var ch byte = '.'
			if col < len(line) {
				ch = line[col]
			}

			switch {
			case ch == '#':
				level.Bricks[row][col] = Brick{Kind: BrickNormal, Color: rowColor, Themed: true}
			case ch >= '1' && ch <= '9':
				level.Bricks[row][col] = Brick{Kind: BrickNormal, Color: Palette[ch-'1']}
			case ch == 'X' || ch == 'x':
				level.Bricks[row][col] = Brick{Kind: BrickSolid, Color: SolidColor}
			}
		}
	}

	return level
}

// BuiltinLevels returns all built-in levels.
func BuiltinLevels() []*Level {
	return []*Level{
		ParseLevel("classic", "Classic", []string{
			"####################",
			"####################",
			"####################",
			"####################",
			"####################",
		}),

		ParseLevel("pyramid", "Pyramid", []string{
			"........1111........",
			"......22222222......",
			"....333333333333....",
			"..4444444444444444..",
			"55555555555555555555",
		}),

		ParseLevel("checker", "Checkerboard", []string{
			"#.#.#.#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#.#.#.#",
			"#.#.#.#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#.#.#.#",
			"#.#.#.#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#.#.#.#",
		}),

		ParseLevel("diamond", "Diamond", []string{
			".........66.........",
			"........6556........",
			".......654456.......",
			"......65433456......",
			".....6543223456.....",
			"......65433456......",
			".......654456.......",
			"........6556........",
			".........66.........",
		}),

		ParseLevel("fortress", "Fortress", []string{
			"XXXXXXXX....XXXXXXXX",
			"X..................X",
			"X.################.X",
			"X.################.X",
			"X.################.X",
			"X..................X",
		}),

		ParseLevel("striped", "Striped", []string{
			"11111111111111111111",
			"....................",
			"33333333333333333333",
			"....................",
			"55555555555555555555",
			"....................",
			"77777777777777777777",
		}),

		ParseLevel("invaders", "Invaders", []string{
			"..#..........#......",
			".###........###.....",
			"#####......#####....",
			"#.#.#......#.#.#....",
			"#####......#####....",
			"....................",
			"..#..........#......",
			".###........###.....",
			"#####......#####....",
			"#.#.#......#.#.#....",
			"#####......#####....",
		}),

		ParseLevel("castle", "Castle", []string{
			"X..X....X..X....X..X",
			"XXXX....XXXX....XXXX",
			"X..X....X..X....X..X",
			"....................",
			"####################",
			"####################",
			"####################",
		}),
	}
}

// levelFile is the on-disk YAML layout of a level pack.
type levelFile struct {
	Levels []struct {
		ID      string   `yaml:"id"`
		Name    string   `yaml:"name"`
		Rows    []string `yaml:"rows"`
		Palette []string `yaml:"palette"` // Color names for '#' rows
	} `yaml:"levels"`
}

// ParseLevelsYAML decodes a level pack. Every level must have at least one
// breakable brick.
func ParseLevelsYAML(data []byte) ([]*Level, error) {
	var f levelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("breakout: cannot parse levels: %w", err)
	}
	if len(f.Levels) == 0 {
		return nil, errors.New("breakout: level pack is empty")
	}

	levels := make([]*Level, 0, len(f.Levels))
	for i, l := range f.Levels {
		id := l.ID
		if id == "" {
			id = fmt.Sprintf("level%d", i+1)
		}
		name := l.Name
		if name == "" {
			name = id
		}
		level := ParseLevel(id, name, l.Rows)
		if level.CountBreakable() == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoBricks, id)
		}
		for _, cn := range l.Palette {
			c, err := core.ParseColor(cn)
			if err != nil {
				return nil, fmt.Errorf("breakout: level %q: %w", id, err)
			}
			if c == core.ColorDefault || c == SolidColor {
				return nil, fmt.Errorf("breakout: level %q: %s cannot be a brick color", id, c)
			}
			level.Palette = append(level.Palette, c)
		}
		levels = append(levels, level)
	}
	return levels, nil
}

// LoadLevels reads a YAML level pack from path.
func LoadLevels(path string) ([]*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("breakout: cannot read levels %s: %w", path, err)
	}
	return ParseLevelsYAML(data)
}
