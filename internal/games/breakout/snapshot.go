package breakout

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

// BallState is the position and motion of one ball in play.
type BallState struct {
	X, Y   float64
	DX, DY float64
	Color  core.Color
}

// BlockState is a breakable brick still in play.
type BlockState struct {
	X, Y  float64
	Color core.Color
}

// Snapshot contains the complete observable game state for replays and
// determinism checks. Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick         uint64
	State        string
	Mode         int // 0=Campaign, 1=Endless
	Score        int
	Lives        int
	LevelIndex   int
	EndlessCycle int
	ServeDelay   int

	PaddleX     float64
	PaddleWidth float64

	BlocksLeft int
	BallsLeft  int
	Balls      []BallState
	Blocks     []BlockState // In registration order
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	paddle := g.paddle.CollisionRect()

	balls := make([]BallState, 0, len(g.balls))
	for _, b := range g.balls {
		v := b.Velocity()
		balls = append(balls, BallState{
			X:     b.Center().X,
			Y:     b.Center().Y,
			DX:    v.DX,
			DY:    v.DY,
			Color: b.Color(),
		})
	}

	blocks := make([]BlockState, 0, len(g.bricks))
	for _, b := range g.bricks {
		r := b.CollisionRect()
		blocks = append(blocks, BlockState{X: r.Left(), Y: r.Top(), Color: b.Color()})
	}

	return Snapshot{
		Tick:         g.tick,
		State:        g.state,
		Mode:         int(g.mode),
		Score:        g.score.Value(),
		Lives:        g.lives,
		LevelIndex:   g.levelIndex,
		EndlessCycle: g.endlessCycle,
		ServeDelay:   g.serveDelay,
		PaddleX:      paddle.Left(),
		PaddleWidth:  paddle.Width(),
		BlocksLeft:   g.blocksLeft.Value(),
		BallsLeft:    g.ballsLeft.Value(),
		Balls:        balls,
		Blocks:       blocks,
	}
}

// Hash returns a 64-bit digest of the snapshot. Two runs with the same seed
// and inputs produce the same hash.
func (s Snapshot) Hash() uint64 {
	h := xxhash.New()
	var buf [8]byte

	putU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	putI := func(v int) { putU(uint64(int64(v))) }
	putF := func(v float64) { putU(math.Float64bits(v)) }

	putU(s.Tick)
	_, _ = h.WriteString(s.State)
	putI(s.Mode)
	putI(s.Score)
	putI(s.Lives)
	putI(s.LevelIndex)
	putI(s.EndlessCycle)
	putI(s.ServeDelay)
	putF(s.PaddleX)
	putF(s.PaddleWidth)
	putI(s.BlocksLeft)
	putI(s.BallsLeft)

	putI(len(s.Balls))
	for _, b := range s.Balls {
		putF(b.X)
		putF(b.Y)
		putF(b.DX)
		putF(b.DY)
		putI(int(b.Color))
	}

	putI(len(s.Blocks))
	for _, b := range s.Blocks {
		putF(b.X)
		putF(b.Y)
		putI(int(b.Color))
	}

	return h.Sum64()
}
