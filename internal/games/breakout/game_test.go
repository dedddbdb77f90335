package breakout

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/geom"
	"github.com/vovakirdan/tui-bricks/internal/physics"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// newTestGame builds a game over a single level holding one brick.
func newTestGame(t *testing.T, mode GameMode, mutate func(*config.BreakoutConfig)) *Game {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	levels := []*Level{ParseLevel("one", "One", []string{"..........1........."})}
	g, err := New(mode, cfg, levels)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	g.Reset(testRuntime(7))
	return g
}

// strikeBrick hits the brick from below with the given ball.
func strikeBrick(g *Game, brick *physics.Block, ball *physics.Ball) {
	at := brick.CollisionRect().Edge(geom.EdgeBottom).Middle()
	brick.Hit(ball, at, physics.NewVelocity(0, -4))
}

// loseAllBalls sends every ball in play into the death region.
func loseAllBalls(g *Game) {
	at := g.death.CollisionRect().Edge(geom.EdgeTop).Middle()
	for _, ball := range append([]*physics.Ball(nil), g.balls...) {
		g.death.Hit(ball, at, physics.NewVelocity(0, 4))
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g, err := New(ModeCampaign, config.DefaultBreakoutConfig(), nil)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		g.Reset(testRuntime(12345))
		for range 3000 {
			result := g.Step(Autopilot(g))
			if result.State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
}

func TestGameReset(t *testing.T) {
	g, err := New(ModeCampaign, config.DefaultBreakoutConfig(), nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	g.Reset(testRuntime(1))

	in := core.InputOf(core.ActionJump)
	for range 50 {
		g.Step(in)
	}

	g.Reset(testRuntime(1))

	state := g.State()
	if state.Score != 0 {
		t.Errorf("Score after reset = %d, expected 0", state.Score)
	}
	if state.Lives != 3 {
		t.Errorf("Lives after reset = %d, expected 3", state.Lives)
	}
	if state.Level != 1 {
		t.Errorf("Level after reset = %d, expected 1", state.Level)
	}
	if g.state != StateServe {
		t.Errorf("state after reset = %s, expected %s", g.state, StateServe)
	}
	if g.tick != 0 {
		t.Errorf("tick after reset = %d, expected 0", g.tick)
	}
	if len(g.balls) != 3 {
		t.Errorf("balls after reset = %d, expected 3", len(g.balls))
	}
	if got, expected := g.blocksLeft.Value(), g.levels[0].CountBreakable(); got != expected {
		t.Errorf("blocksLeft after reset = %d, expected %d", got, expected)
	}
}

func TestServeFollowsPaddle(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)

	for range 5 {
		g.Step(core.InputOf(core.ActionRight))
	}

	center := g.paddle.CenterTop()
	for i, ball := range g.balls {
		if !geom.ApproxEqual(ball.Center().X, center.X) {
			t.Errorf("ball %d X = %v, expected %v", i, ball.Center().X, center.X)
		}
		if !ball.Velocity().IsZero() {
			t.Errorf("ball %d moves while served: %v", i, ball.Velocity())
		}
	}
	if g.state != StateServe {
		t.Errorf("state = %s, expected %s", g.state, StateServe)
	}
}

func TestLaunchFansBalls(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)

	g.Step(core.InputOf(core.ActionJump))

	if g.state != StatePlaying {
		t.Fatalf("state after launch = %s, expected %s", g.state, StatePlaying)
	}

	expectedAngles := []float64{340, 0, 20}
	for i, ball := range g.balls {
		v := ball.Velocity()
		if math.Abs(v.Speed()-4) > 1e-9 {
			t.Errorf("ball %d speed = %v, expected 4", i, v.Speed())
		}
		angle, err := v.Angle()
		if err != nil {
			t.Fatalf("ball %d Angle() error = %v", i, err)
		}
		if math.Abs(angle-expectedAngles[i]) > 1e-6 {
			t.Errorf("ball %d angle = %v, expected %v", i, angle, expectedAngles[i])
		}
	}
}

func TestServeDelayBlocksLaunch(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	g.Step(core.InputOf(core.ActionJump))

	loseAllBalls(g)
	g.Step(core.NewInputFrame())

	if g.state != StateServe {
		t.Fatalf("state after miss = %s, expected %s", g.state, StateServe)
	}

	jump := core.InputOf(core.ActionJump)
	for range g.cfg.Gameplay.ServeDelay {
		g.Step(jump)
		if g.state != StateServe {
			t.Fatalf("launched with serveDelay = %d", g.serveDelay)
		}
	}

	g.Step(jump)
	if g.state != StatePlaying {
		t.Errorf("state after delay = %s, expected %s", g.state, StatePlaying)
	}
}

func TestBlockDestroyed(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	levels := []*Level{ParseLevel("two", "Two", []string{"1.2................."})}
	g, err := New(ModeCampaign, cfg, levels)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	g.Reset(testRuntime(3))
	g.Step(core.InputOf(core.ActionJump))

	brick := g.bricks[0]
	ball := g.balls[0]
	envBefore := g.env.Len()
	spritesBefore := g.sprites.Len()

	strikeBrick(g, brick, ball)

	if got := g.score.Value(); got != cfg.Gameplay.HitPoints {
		t.Errorf("score = %d, expected %d", got, cfg.Gameplay.HitPoints)
	}
	if got := g.blocksLeft.Value(); got != 1 {
		t.Errorf("blocksLeft = %d, expected 1", got)
	}
	if len(g.bricks) != 1 {
		t.Errorf("bricks = %d, expected 1", len(g.bricks))
	}
	if g.env.Len() != envBefore-1 {
		t.Errorf("env.Len() = %d, expected %d", g.env.Len(), envBefore-1)
	}
	if g.sprites.Len() != spritesBefore-1 {
		t.Errorf("sprites.Len() = %d, expected %d", g.sprites.Len(), spritesBefore-1)
	}
	if ball.Color() != brick.Color() {
		t.Errorf("ball color = %v, expected brick color %v", ball.Color(), brick.Color())
	}
	if brick.ListenerCount() != 1 {
		t.Errorf("brick listeners = %d, expected only the score tracker", brick.ListenerCount())
	}
	if len(g.events) != 1 || g.events[0].Kind != core.EventBlockDestroyed {
		t.Errorf("events = %v, expected one block_destroyed", g.events)
	}
}

func TestSameColorBallDoesNotBreakBrick(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	g.Step(core.InputOf(core.ActionJump))

	brick := g.bricks[0]
	ball := g.balls[0]
	ball.SetColor(brick.Color())

	strikeBrick(g, brick, ball)

	if g.blocksLeft.Value() != 1 {
		t.Errorf("blocksLeft = %d, expected 1", g.blocksLeft.Value())
	}
	if g.score.Value() != 0 {
		t.Errorf("score = %d, expected 0", g.score.Value())
	}
}

func TestWallsResetBallColor(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	ball := g.balls[0]
	ball.SetColor(core.ColorRed)

	var wall *physics.Block
	for _, c := range g.env.Collidables() {
		if b, ok := c.(*physics.Block); ok && b.Color() == WallColor && b.ListenerCount() > 0 {
			wall = b
			break
		}
	}
	if wall == nil {
		t.Fatal("no wall carries a painter")
	}

	at := wall.CollisionRect().Edge(geom.EdgeRight).Middle()
	wall.Hit(ball, at, physics.NewVelocity(-4, 0))

	if ball.Color() != BallColor {
		t.Errorf("ball color = %v, expected %v", ball.Color(), BallColor)
	}
}

func TestLevelClearWinsCampaign(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	g.Step(core.InputOf(core.ActionJump))

	strikeBrick(g, g.bricks[0], g.balls[0])
	result := g.Step(core.NewInputFrame())

	expectedScore := g.cfg.Gameplay.HitPoints + g.cfg.Gameplay.ClearBonus
	if result.State.Score != expectedScore {
		t.Errorf("score = %d, expected %d", result.State.Score, expectedScore)
	}
	if !result.Has(core.EventLevelCleared) {
		t.Error("expected level_cleared event")
	}
	if !result.State.Won || !result.State.GameOver {
		t.Errorf("state = %+v, expected a won game", result.State)
	}
	if result.State.Level != 1 {
		t.Errorf("Level = %d, expected 1", result.State.Level)
	}
}

func TestLevelClearAdvances(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	levels := []*Level{
		ParseLevel("a", "A", []string{"1"}),
		ParseLevel("b", "B", []string{"22"}),
	}
	g, err := New(ModeCampaign, cfg, levels)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	g.Reset(testRuntime(5))
	g.Step(core.InputOf(core.ActionJump))

	strikeBrick(g, g.bricks[0], g.balls[0])
	result := g.Step(core.NewInputFrame())

	if result.State.Level != 2 {
		t.Errorf("Level = %d, expected 2", result.State.Level)
	}
	if g.state != StateServe {
		t.Errorf("state = %s, expected %s", g.state, StateServe)
	}
	if g.blocksLeft.Value() != 2 {
		t.Errorf("blocksLeft = %d, expected 2", g.blocksLeft.Value())
	}
	if len(g.balls) != cfg.Ball.Count || g.ballsLeft.Value() != cfg.Ball.Count {
		t.Errorf("balls = %d/%d, expected %d", len(g.balls), g.ballsLeft.Value(), cfg.Ball.Count)
	}
}

func TestEndlessCycles(t *testing.T) {
	g := newTestGame(t, ModeEndless, nil)
	g.Step(core.InputOf(core.ActionJump))

	strikeBrick(g, g.bricks[0], g.balls[0])
	result := g.Step(core.NewInputFrame())

	if result.State.GameOver {
		t.Fatal("endless mode ended after clearing the last level")
	}
	if g.endlessCycle != 1 {
		t.Errorf("endlessCycle = %d, expected 1", g.endlessCycle)
	}
	if result.State.Level != 2 {
		t.Errorf("Level = %d, expected 2", result.State.Level)
	}
	if g.levelIndex != 0 {
		t.Errorf("levelIndex = %d, expected 0", g.levelIndex)
	}
	if g.launchSpeed() <= g.cfg.Ball.Speed {
		t.Errorf("launchSpeed() = %v, expected faster than %v", g.launchSpeed(), g.cfg.Ball.Speed)
	}
}

func TestBallLostCostsLife(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	g.Step(core.InputOf(core.ActionJump))

	at := g.death.CollisionRect().Edge(geom.EdgeTop).Middle()
	first := g.balls[0]
	g.death.Hit(first, at, physics.NewVelocity(0, 4))
	g.death.Hit(first, at, physics.NewVelocity(0, 4))

	if g.ballsLeft.Value() != 2 {
		t.Errorf("ballsLeft = %d, expected 2", g.ballsLeft.Value())
	}
	if g.lives != 3 {
		t.Errorf("lives = %d, expected 3 while balls remain", g.lives)
	}

	loseAllBalls(g)
	result := g.Step(core.NewInputFrame())

	if result.State.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", result.State.Lives)
	}
	if !result.Has(core.EventLifeLost) {
		t.Error("expected life_lost event")
	}
	if g.state != StateServe {
		t.Errorf("state = %s, expected %s", g.state, StateServe)
	}
	if len(g.balls) != 3 || g.ballsLeft.Value() != 3 {
		t.Errorf("balls = %d/%d, expected 3", len(g.balls), g.ballsLeft.Value())
	}
}

func TestGameOver(t *testing.T) {
	g := newTestGame(t, ModeCampaign, func(c *config.BreakoutConfig) {
		c.Gameplay.Lives = 1
	})
	g.Step(core.InputOf(core.ActionJump))

	loseAllBalls(g)
	result := g.Step(core.NewInputFrame())

	if !result.State.GameOver {
		t.Fatal("expected game over")
	}
	if result.State.Won {
		t.Error("game over should not be a win")
	}
	if !result.Has(core.EventGameOver) {
		t.Error("expected game_over event")
	}

	tick := g.tick
	g.Step(core.InputOf(core.ActionLeft))
	if g.tick != tick {
		t.Errorf("tick advanced after game over: %d -> %d", tick, g.tick)
	}

	g.Step(core.InputOf(core.ActionRestart))
	if g.State().GameOver {
		t.Error("restart did not reset the game")
	}
	if g.State().Lives != 1 {
		t.Errorf("Lives after restart = %d, expected 1", g.State().Lives)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	g.Step(core.InputOf(core.ActionJump))

	result := g.Step(core.InputOf(core.ActionPause))
	if !result.State.Paused {
		t.Fatal("expected paused state")
	}

	positions := make([]geom.Point, len(g.balls))
	for i, b := range g.balls {
		positions[i] = b.Center()
	}
	tick := g.tick

	for range 10 {
		g.Step(core.InputOf(core.ActionRight))
	}

	if g.tick != tick {
		t.Errorf("tick advanced while paused: %d -> %d", tick, g.tick)
	}
	for i, b := range g.balls {
		if !b.Center().Equals(positions[i]) {
			t.Errorf("ball %d moved while paused", i)
		}
	}

	g.Step(core.InputOf(core.ActionPause))
	if g.state != StatePlaying {
		t.Errorf("state after unpause = %s, expected %s", g.state, StatePlaying)
	}
}

func TestAutopilotKeepsCountersConsistent(t *testing.T) {
	g, err := New(ModeEndless, config.DefaultBreakoutConfig(), nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	g.Reset(testRuntime(99))

	w := g.cfg.World
	for tick := range 5000 {
		result := g.Step(Autopilot(g))
		if result.State.GameOver {
			break
		}
		if len(g.balls) != g.ballsLeft.Value() {
			t.Fatalf("tick %d: balls = %d, ballsLeft = %d", tick, len(g.balls), g.ballsLeft.Value())
		}
		if len(g.bricks) != g.blocksLeft.Value() {
			t.Fatalf("tick %d: bricks = %d, blocksLeft = %d", tick, len(g.bricks), g.blocksLeft.Value())
		}
		for _, b := range g.balls {
			c := b.Center()
			if c.X < 0 || c.X > w.Width || c.Y < 0 || c.Y > w.Height {
				t.Fatalf("tick %d: ball escaped the world at %v", tick, c)
			}
		}
	}

	if g.score.Value() < 0 {
		t.Errorf("score = %d, expected non-negative", g.score.Value())
	}
}

func TestAutopilotStaysOffWalls(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	g.Step(core.InputOf(core.ActionJump))

	for range 100 {
		g.paddle.MoveLeft()
		if g.paddle.CollisionRect().Left() <= g.cfg.World.Border+geom.Epsilon {
			break
		}
	}
	for _, b := range g.balls {
		b.SetCenter(geom.Pt(g.cfg.World.Border+1, 300))
		b.SetVelocity(physics.NewVelocity(0, 4))
	}

	if in := Autopilot(g); in.Has(core.ActionLeft) {
		t.Error("autopilot moved the paddle into the left wall")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected score", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "Level: 1/1") {
		t.Errorf("HUD row = %q, expected level", screen.Row(0))
	}
	if !strings.Contains(screen.Row(23), "Press SPACE to launch") {
		t.Errorf("bottom row = %q, expected serve hint", screen.Row(23))
	}

	cell := screen.GetCell(0, 1)
	if cell.Rune != BlockGlyph || cell.Color != WallColor {
		t.Errorf("GetCell(0, 1) = %+v, expected gray wall", cell)
	}

	found := false
	for y := range 24 {
		if strings.ContainsRune(screen.Row(y), BallGlyph) {
			found = true
			break
		}
	}
	if !found {
		t.Error("no ball drawn")
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, Seed: 1})

	screen := core.NewScreen(30, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected size warning, got:\n%s", screen.String())
	}

	result := g.Step(core.InputOf(core.ActionJump))
	if g.tick != 0 || result.State.GameOver {
		t.Errorf("game advanced on a small screen: tick = %d", g.tick)
	}
}

func TestNewRejectsBadLevels(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()

	_, err := New(ModeCampaign, cfg, []*Level{ParseLevel("empty", "Empty", []string{"XXXX", "...."})})
	if !errors.Is(err, ErrNoBricks) {
		t.Errorf("New() error = %v, expected ErrNoBricks", err)
	}

	rows := make([]string, 40)
	for i := range rows {
		rows[i] = "####"
	}
	if _, err := New(ModeCampaign, cfg, []*Level{ParseLevel("tall", "Tall", rows)}); err == nil {
		t.Error("New() accepted a level taller than the playfield")
	}

	cfg.Ball.Radius = 0
	if _, err := New(ModeCampaign, cfg, nil); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("New() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestSnapshotHash(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)

	snap := g.Snapshot()
	if snap.BlocksLeft != 1 || len(snap.Blocks) != 1 {
		t.Errorf("snapshot blocks = %d/%d, expected 1", snap.BlocksLeft, len(snap.Blocks))
	}
	if len(snap.Balls) != 3 {
		t.Errorf("snapshot balls = %d, expected 3", len(snap.Balls))
	}
	if snap.Hash() != g.Snapshot().Hash() {
		t.Error("Hash() differs for the same state")
	}

	g.Step(core.InputOf(core.ActionRight))
	if snap.Hash() == g.Snapshot().Hash() {
		t.Error("Hash() unchanged after the paddle moved")
	}
}

func TestLevelParsing(t *testing.T) {
	level := ParseLevel("test", "Test", []string{
		"#1X.",
		"##",
	})

	if level.Width != 4 || level.Height != 2 {
		t.Errorf("size = %dx%d, expected 4x2", level.Width, level.Height)
	}
	if level.CountBreakable() != 4 {
		t.Errorf("CountBreakable() = %d, expected 4", level.CountBreakable())
	}

	row0 := level.Bricks[0]
	if row0[0].Kind != BrickNormal || !row0[0].Themed || row0[0].Color != Palette[0] {
		t.Errorf("'#' brick = %+v", row0[0])
	}
	if row0[1].Kind != BrickNormal || row0[1].Themed || row0[1].Color != Palette[0] {
		t.Errorf("'1' brick = %+v", row0[1])
	}
	if row0[2].Kind != BrickSolid || row0[2].Color != SolidColor {
		t.Errorf("'X' brick = %+v", row0[2])
	}
	if level.Bricks[1][3].Kind != BrickEmpty {
		t.Errorf("padded brick = %+v, expected empty", level.Bricks[1][3])
	}
	if level.Bricks[1][0].Color != Palette[1] {
		t.Errorf("row 1 color = %v, expected %v", level.Bricks[1][0].Color, Palette[1])
	}
}

func TestBuiltinLevelsFit(t *testing.T) {
	for _, l := range BuiltinLevels() {
		if l.CountBreakable() == 0 {
			t.Errorf("level %s has no breakable bricks", l.ID)
		}
	}
	if _, err := New(ModeCampaign, config.DefaultBreakoutConfig(), BuiltinLevels()); err != nil {
		t.Errorf("New() with built-in levels error = %v", err)
	}
}

func TestParseLevelsYAML(t *testing.T) {
	data := []byte(`
levels:
  - id: first
    name: First
    rows:
      - "1111"
      - "X..X"
  - rows:
      - "##"
`)
	levels, err := ParseLevelsYAML(data)
	if err != nil {
		t.Fatalf("ParseLevelsYAML() error = %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("len(levels) = %d, expected 2", len(levels))
	}
	if levels[0].ID != "first" || levels[0].Name != "First" {
		t.Errorf("levels[0] = %s/%s", levels[0].ID, levels[0].Name)
	}
	if levels[1].ID != "level2" || levels[1].Name != "level2" {
		t.Errorf("levels[1] = %s/%s, expected generated id", levels[1].ID, levels[1].Name)
	}

	tests := []struct {
		name string
		data string
	}{
		{"empty pack", "levels: []"},
		{"no bricks", "levels:\n  - rows: [\"XX\"]"},
		{"malformed", "levels: [:"},
		{"unknown palette color", "levels:\n  - rows: [\"##\"]\n    palette: [purple]"},
		{"solid palette color", "levels:\n  - rows: [\"##\"]\n    palette: [gray]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLevelsYAML([]byte(tt.data)); err == nil {
				t.Error("ParseLevelsYAML() expected error")
			}
		})
	}
}

func TestKeepBallsInField(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	b := g.cfg.World.Border

	ball := g.balls[0]
	ball.SetCenter(geom.Pt(b-5, b-5))
	g.keepBallsInField()

	if got := ball.Center(); !got.Equals(geom.Pt(b+1, b+1)) {
		t.Errorf("center = %v, expected (%v, %v)", got, b+1, b+1)
	}
}

func TestEjectPoint(t *testing.T) {
	r := geom.MustRect(100, 100, 40, 20)

	tests := []struct {
		name     string
		in       geom.Point
		expected geom.Point
	}{
		{"near bottom", geom.Pt(120, 118), geom.Pt(120, 121)},
		{"near top", geom.Pt(120, 102), geom.Pt(120, 99)},
		{"near left", geom.Pt(101, 110), geom.Pt(99, 110)},
		{"near right", geom.Pt(139, 110), geom.Pt(141, 110)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ejectPoint(r, tt.in); !got.Equals(tt.expected) {
				t.Errorf("ejectPoint(%v) = %v, expected %v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestRunAutopilot(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)

	steps, err := RunAutopilot(context.Background(), g, 200)
	if err != nil {
		t.Fatalf("RunAutopilot() error = %v", err)
	}
	if steps < 1 || steps > 200 {
		t.Errorf("RunAutopilot() steps = %d, expected 1..200", steps)
	}
	if !g.State().GameOver && uint64(steps) != g.tick {
		t.Errorf("tick = %d, expected %d", g.tick, steps)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RunAutopilot(ctx, g, 10); !errors.Is(err, context.Canceled) {
		t.Errorf("RunAutopilot() with canceled context error = %v", err)
	}
}

func TestStartLevel(t *testing.T) {
	g, err := New(ModeCampaign, config.DefaultBreakoutConfig(), nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := g.SetStartLevel(2); err != nil {
		t.Fatalf("SetStartLevel(2) error = %v", err)
	}
	if g.State().Level != 3 {
		t.Errorf("Level = %d, expected 3", g.State().Level)
	}

	g.Reset(testRuntime(1))
	if g.State().Level != 3 {
		t.Errorf("Level after reset = %d, expected 3", g.State().Level)
	}

	if err := g.SetStartLevel(len(g.Levels())); err == nil {
		t.Error("SetStartLevel() accepted an out-of-range level")
	}
}

func TestLevelPalette(t *testing.T) {
	levels, err := ParseLevelsYAML([]byte(`
levels:
  - id: teal
    rows:
      - "####"
      - "..1."
    palette: [cyan, Bright-Cyan]
`))
	if err != nil {
		t.Fatalf("ParseLevelsYAML() error = %v", err)
	}

	g, err := New(ModeCampaign, config.DefaultBreakoutConfig(), levels)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	g.Reset(testRuntime(5))

	if len(g.bricks) != 5 {
		t.Fatalf("bricks = %d, expected 5", len(g.bricks))
	}
	for _, b := range g.bricks[:4] {
		if c := b.Color(); c != core.ColorCyan && c != core.ColorBrightCyan {
			t.Errorf("themed brick color = %v, expected cyan or bright-cyan", c)
		}
	}
	if c := g.bricks[4].Color(); c != Palette[0] {
		t.Errorf("numbered brick color = %v, expected %v", c, Palette[0])
	}

	if got := BuiltinLevels()[0].RowPalette(); len(got) != len(Palette) {
		t.Errorf("RowPalette() without a palette has %d colors, expected %d", len(got), len(Palette))
	}
}
