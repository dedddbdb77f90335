package breakout

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/geom"
	"github.com/vovakirdan/tui-bricks/internal/physics"
	"github.com/vovakirdan/tui-bricks/internal/registry"
)

// GameState constants
const (
	StateServe    = "serve"    // Balls on paddle, waiting for launch
	StatePlaying  = "playing"  // Balls in play
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // All levels completed (campaign only)
	StatePaused   = "paused"   // Game paused
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play through levels, win at end
	ModeEndless                  // Play forever, score until game over
)

// Colors of the fixed scenery.
const (
	WallColor   = core.ColorGray
	PaddleColor = core.ColorYellow
	BallColor   = core.ColorWhite

	// deathColor is never a ball color, so every ball reaching the death
	// region notifies its listeners.
	deathColor = core.ColorDefault
)

// Minimum terminal size the game renders in.
const (
	minScreenW = 40
	minScreenH = 15
)

// endlessSpeedUp is the share of base ball speed added per endless cycle.
const endlessSpeedUp = 0.1

// Game implements the Breakout game logic.
type Game struct {
	mode   GameMode
	cfg    config.BreakoutConfig
	levels []*Level
	logger *log.Logger

	runtime    core.RuntimeConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	// Collision world, rebuilt for every level
	env     *physics.Environment
	sprites *physics.SpriteCollection
	paddle  *physics.Paddle
	balls   []*physics.Ball
	bricks  []*physics.Block
	solids  []*physics.Block
	death   *physics.Block

	blocksLeft *physics.Counter
	ballsLeft  *physics.Counter
	score      *physics.Counter

	state        string
	pausedFrom   string
	lives        int
	startLevel   int
	levelIndex   int
	endlessCycle int
	cleared      int // Levels cleared this game
	tick         uint64
	serveDelay   int
	events       []core.Event

	screenTooSmall bool
}

// New creates a game. The config is validated and every level must fit
// between the top wall and the paddle.
func New(mode GameMode, cfg config.BreakoutConfig, levels []*Level) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		levels = BuiltinLevels()
	}

	g := &Game{
		mode:   mode,
		cfg:    cfg,
		levels: levels,
		logger: log.New(io.Discard),
	}

	maxRows := g.maxBrickRows()
	for _, l := range levels {
		if l.CountBreakable() == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoBricks, l.ID)
		}
		if l.Height > maxRows {
			return nil, fmt.Errorf("breakout: level %q has %d rows, at most %d fit", l.ID, l.Height, maxRows)
		}
	}

	g.Reset(core.DefaultConfig())
	return g, nil
}

// Load builds a game from registry options: it loads the config, applies
// the difficulty preset and reads a custom level pack when one is given.
func Load(mode GameMode, opts registry.Options) (*Game, error) {
	cfg, err := config.LoadBreakout(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	preset, err := config.ParsePreset(opts.Difficulty)
	if err != nil {
		return nil, err
	}
	config.ApplyBreakoutPreset(&cfg, preset)

	var levels []*Level
	if opts.LevelsPath != "" {
		levels, err = LoadLevels(opts.LevelsPath)
		if err != nil {
			return nil, err
		}
	}

	g, err := New(mode, cfg, levels)
	if err != nil {
		return nil, err
	}
	if err := g.SetStartLevel(opts.StartLevel); err != nil {
		return nil, err
	}
	g.SetLogger(opts.LoggerOrDiscard())
	return g, nil
}

// SetStartLevel sets the 0-based level a new game starts on and restarts
// the game there.
func (g *Game) SetStartLevel(index int) error {
	if index < 0 || index >= len(g.levels) {
		return fmt.Errorf("breakout: start level %d out of range 0..%d", index, len(g.levels)-1)
	}
	g.startLevel = index
	g.Reset(g.runtime)
	return nil
}

// Levels returns the level list the game plays through.
func (g *Game) Levels() []*Level {
	return g.levels
}

// SetLogger sets the logger used for lifecycle events.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l.With("game", g.ID())
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "breakout_endless"
	}
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Breakout (Endless)"
	}
	return "Breakout"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	g.score = physics.NewCounter(0)
	g.lives = g.cfg.Gameplay.Lives
	g.levelIndex = g.startLevel
	g.endlessCycle = 0
	g.cleared = 0
	g.tick = 0
	g.events = nil
	g.pausedFrom = ""

	g.loadLevel(g.levelIndex)
	g.serveDelay = 0
}

// maxBrickRows is how many brick rows fit above the paddle while leaving
// room for the balls to be served.
func (g *Game) maxBrickRows() int {
	top := g.cfg.World.Border + g.cfg.Bricks.Top
	bottom := g.paddleTop() - 4*g.cfg.Ball.Radius
	return int(math.Floor((bottom - top) / g.cfg.Bricks.Height))
}

func (g *Game) paddleTop() float64 {
	w := g.cfg.World
	return w.Height - w.Border - g.cfg.Paddle.Lift - g.cfg.Paddle.Height
}

// loadLevel rebuilds the collision world for the level at index and puts
// fresh balls on the paddle.
func (g *Game) loadLevel(index int) {
	g.env = physics.NewEnvironment()
	g.sprites = physics.NewSpriteCollection()
	g.balls = nil
	g.bricks = nil
	g.solids = nil
	g.blocksLeft = physics.NewCounter(0)
	g.ballsLeft = physics.NewCounter(0)

	g.buildWalls()
	g.buildBricks(g.levels[index%len(g.levels)])
	g.buildPaddle()
	g.serve()
}

// buildWalls adds the gray border and the invisible death region just above
// the bottom wall.
func (g *Game) buildWalls() {
	w := g.cfg.World
	walls := []*geom.Rect{
		geom.MustRect(0, 0, w.Border, w.Height),
		geom.MustRect(0, 0, w.Width, w.Border),
		geom.MustRect(w.Width-w.Border, 0, w.Border, w.Height),
	}
	for _, r := range walls {
		wall := physics.NewBlock(r, WallColor)
		if g.cfg.Gameplay.WallsResetColor {
			wall.AddHitListener(BallPainter{color: BallColor})
		}
		g.env.Add(wall)
		g.sprites.Add(wall)
	}

	bottom := physics.NewBlock(geom.MustRect(0, w.Height-w.Border, w.Width, w.Border), WallColor)
	g.env.Add(bottom)
	g.sprites.Add(bottom)

	g.death = physics.NewBlock(geom.MustRect(0, w.Height-w.Border-1, w.Width, w.Border), deathColor)
	g.death.AddHitListener(NewBallRemover(g, g.ballsLeft))
	g.env.Add(g.death)
}

// buildBricks lays the level map out below the top wall. '#' rows take a
// random color from the level's row palette, drawn from the seeded RNG.
func (g *Game) buildBricks(level *Level) {
	w := g.cfg.World
	inner := w.Width - 2*w.Border
	bw := inner / float64(level.Width)
	bh := g.cfg.Bricks.Height
	top := w.Border + g.cfg.Bricks.Top

	remover := NewBlockRemover(g, g.blocksLeft)
	scorer := NewScoreTracker(g.score, g.cfg.Gameplay.HitPoints)
	palette := level.RowPalette()

	for row, bricks := range level.Bricks {
		rowColor := palette[g.rng.Intn(len(palette))]
		for col, b := range bricks {
			if b.Kind == BrickEmpty {
				continue
			}
			rect := geom.MustRect(w.Border+float64(col)*bw, top+float64(row)*bh, bw, bh)

			color := b.Color
			if b.Themed {
				color = rowColor
			}

			block := physics.NewBlock(rect, color)
			if b.Kind == BrickNormal {
				remover.Watch(block)
				block.AddHitListener(scorer)
				g.blocksLeft.Increase(1)
				g.bricks = append(g.bricks, block)
			} else {
				g.solids = append(g.solids, block)
			}
			g.env.Add(block)
			g.sprites.Add(block)
		}
	}
}

// buildPaddle centers a paddle whose width shrinks with difficulty.
func (g *Game) buildPaddle() {
	w := g.cfg.World
	p := g.cfg.Paddle
	width := g.difficulty.PaddleWidth(p.Width, p.Width/2, g.progress())
	rect := geom.MustRect((w.Width-width)/2, g.paddleTop(), width, p.Height)

	g.paddle = physics.NewPaddle(rect, PaddleColor, p.Step, w.Border, w.Width-w.Border)
	g.env.Add(g.paddle)
	g.sprites.Add(g.paddle)
}

// serve puts a fresh set of stationary balls on the paddle.
func (g *Game) serve() {
	for range g.cfg.Ball.Count {
		ball := physics.NewBall(g.servePoint(), g.cfg.Ball.Radius, BallColor, physics.Velocity{}, g.env)
		g.balls = append(g.balls, ball)
		g.sprites.Add(ball)
	}
	g.ballsLeft.Increase(g.cfg.Ball.Count)
	g.state = StateServe
	g.serveDelay = g.cfg.Gameplay.ServeDelay
}

// servePoint is where a served ball rests, just above the paddle center.
func (g *Game) servePoint() geom.Point {
	return g.paddle.CenterTop().Add(0, -(g.cfg.Ball.Radius + 1))
}

// launchSpeed is the current ball speed after difficulty and endless
// scaling.
func (g *Game) launchSpeed() float64 {
	b := g.cfg.Ball
	speed := g.difficulty.Speed(b.Speed, b.MaxSpeed, g.progress())
	speed *= 1 + endlessSpeedUp*float64(g.endlessCycle)
	return math.Min(speed, b.MaxSpeed)
}

// progress feeds the difficulty manager.
func (g *Game) progress() config.Progress {
	return config.Progress{
		Score:  g.score.Value(),
		Ticks:  int(g.tick),
		Levels: g.cleared,
	}
}

// launchBalls fans the served balls out around the launch angle.
func (g *Game) launchBalls() {
	speed := g.launchSpeed()
	n := len(g.balls)
	for i, ball := range g.balls {
		offset := (float64(i) - float64(n-1)/2) * g.cfg.Ball.Spread
		ball.SetVelocity(physics.FromAngleAndSpeed(g.cfg.Ball.LaunchAngle+offset, speed))
	}
	g.state = StatePlaying
	g.logger.Debug("balls launched", "tick", g.tick, "balls", n, "speed", speed)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if g.screenTooSmall {
		return g.result()
	}

	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return g.result()
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = g.pausedFrom
		case StatePlaying, StateServe:
			g.pausedFrom = g.state
			g.state = StatePaused
		}
	}

	if g.state == StatePaused || g.state == StateGameOver || g.state == StateWin {
		return g.result()
	}

	g.tick++

	if in.Has(core.ActionLeft) {
		g.paddle.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		g.paddle.MoveRight()
	}

	if g.state == StateServe {
		for _, ball := range g.balls {
			ball.SetCenter(g.servePoint())
		}
		if g.serveDelay > 0 {
			g.serveDelay--
		} else if in.Has(core.ActionJump) {
			g.launchBalls()
		}
		return g.result()
	}

	g.sprites.NotifyAllTimePassed()
	g.keepBallsInField()
	g.checkProgress()

	return g.result()
}

// keepBallsInField moves a ball that ended a step inside a wall or a solid
// brick back out through the nearest face. A ball bouncing near a corner can
// be carried into the neighbouring obstacle by the step that follows the
// bounce. Its velocity is kept.
func (g *Game) keepBallsInField() {
	w := g.cfg.World
	left, right, top := w.Border, w.Width-w.Border, w.Border
	for _, b := range g.balls {
		c := b.Center()
		switch {
		case c.X < left:
			c.X = left + 1
		case c.X > right:
			c.X = right - 1
		}
		if c.Y < top {
			c.Y = top + 1
		}
		for _, solid := range g.solids {
			if r := solid.CollisionRect(); r.ContainsStrict(c) {
				c = ejectPoint(r, c)
			}
		}
		b.SetCenter(c)
	}
}

// ejectPoint moves p, which lies inside r, one unit past r's nearest edge.
func ejectPoint(r *geom.Rect, p geom.Point) geom.Point {
	dLeft, dRight := p.X-r.Left(), r.Right()-p.X
	dTop, dBottom := p.Y-r.Top(), r.Bottom()-p.Y

	switch math.Min(math.Min(dLeft, dRight), math.Min(dTop, dBottom)) {
	case dBottom:
		p.Y = r.Bottom() + 1
	case dTop:
		p.Y = r.Top() - 1
	case dLeft:
		p.X = r.Left() - 1
	default:
		p.X = r.Right() + 1
	}
	return p
}

// checkProgress handles level clears and lost serves after the balls moved.
func (g *Game) checkProgress() {
	switch {
	case g.blocksLeft.Value() == 0:
		g.handleLevelClear()
	case g.ballsLeft.Value() == 0:
		g.handleMiss()
	}
}

// handleLevelClear awards the clear bonus and moves to the next level.
func (g *Game) handleLevelClear() {
	g.score.Increase(g.cfg.Gameplay.ClearBonus)
	g.cleared++
	g.emit(core.EventLevelCleared)
	g.logger.Debug("level cleared", "level", g.levelNumber(), "score", g.score.Value())

	if g.levelIndex+1 >= len(g.levels) {
		if g.mode == ModeCampaign {
			g.state = StateWin
			g.emit(core.EventGameOver)
			g.logger.Info("campaign won", "score", g.score.Value(), "ticks", g.tick)
			return
		}
		g.levelIndex = 0
		g.endlessCycle++
	} else {
		g.levelIndex++
	}
	g.loadLevel(g.levelIndex)
}

// handleMiss costs a life once every ball of a serve is gone.
func (g *Game) handleMiss() {
	g.lives--
	g.emit(core.EventLifeLost)
	g.logger.Debug("life lost", "lives", g.lives, "tick", g.tick)

	if g.lives <= 0 {
		g.state = StateGameOver
		g.emit(core.EventGameOver)
		g.logger.Info("game over", "score", g.score.Value(), "level", g.levelNumber(), "ticks", g.tick)
		return
	}

	g.balls = nil
	g.serve()
}

// removeBlock drops a brick from the world.
func (g *Game) removeBlock(b *physics.Block) {
	g.env.Remove(b)
	g.sprites.Remove(b)
	if i := slices.Index(g.bricks, b); i >= 0 {
		g.bricks = slices.Delete(g.bricks, i, i+1)
	}
}

// removeBall drops a ball from play. It reports false for a ball that is
// not in play.
func (g *Game) removeBall(b *physics.Ball) bool {
	i := slices.Index(g.balls, b)
	if i < 0 {
		return false
	}
	g.balls = slices.Delete(g.balls, i, i+1)
	g.sprites.Remove(b)
	return true
}

func (g *Game) emit(kind core.EventKind) {
	g.events = append(g.events, core.Event{Kind: kind, Tick: g.tick})
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// levelNumber is the 1-based level shown to the player. Endless mode keeps
// counting across cycles.
func (g *Game) levelNumber() int {
	return g.endlessCycle*len(g.levels) + g.levelIndex + 1
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Value(),
		Lives:    g.lives,
		Level:    g.levelNumber(),
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)

	area := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	g.sprites.DrawAll(newScreenCanvas(dst, area, g.cfg.World.Width, g.cfg.World.Height))

	g.renderOverlay(dst)
}

// renderHUD draws the score, lives, and level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score.Value()))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d  Balls: %d", g.lives, g.ballsLeft.Value()))

	var levelText string
	if g.mode == ModeEndless {
		levelText = fmt.Sprintf("Level: %d", g.levelNumber())
	} else {
		levelText = fmt.Sprintf("Level: %d/%d", g.levelIndex+1, len(g.levels))
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateServe:
		if g.serveDelay <= 0 {
			dst.DrawTextCentered(dst.Height()-1, " Press SPACE to launch ")
		} else {
			dst.DrawTextCentered(dst.Height()-1, " Get ready... ")
		}

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score.Value())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score.Value())
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// Register the games with the registry
func init() {
	registry.Register("breakout", "Breakout", func(opts registry.Options) (registry.Game, error) {
		return Load(ModeCampaign, opts)
	})
	registry.Register("breakout_endless", "Breakout (Endless)", func(opts registry.Options) (registry.Game, error) {
		return Load(ModeEndless, opts)
	})
}
