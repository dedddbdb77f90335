package breakout

import (
	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/physics"
)

// BlockRemover takes a struck brick out of play: it unregisters the brick
// from the environment and the sprite list, counts it off, and paints the
// ball the brick's color.
type BlockRemover struct {
	game      *Game
	remaining *physics.Counter
	ids       map[*physics.Block]physics.ListenerID
}

// NewBlockRemover creates a remover that decrements remaining per brick.
func NewBlockRemover(g *Game, remaining *physics.Counter) *BlockRemover {
	return &BlockRemover{
		game:      g,
		remaining: remaining,
		ids:       make(map[*physics.Block]physics.ListenerID),
	}
}

// Watch registers the remover on b.
func (r *BlockRemover) Watch(b *physics.Block) {
	r.ids[b] = b.AddHitListener(r)
}

// HitEvent implements physics.HitListener.
func (r *BlockRemover) HitEvent(beingHit *physics.Block, hitter *physics.Ball) {
	if id, ok := r.ids[beingHit]; ok {
		beingHit.RemoveHitListener(id)
		delete(r.ids, beingHit)
	}
	r.game.removeBlock(beingHit)
	r.remaining.Decrease(1)
	hitter.SetColor(beingHit.Color())
	r.game.emit(core.EventBlockDestroyed)
}

// BallRemover takes a ball out of play when it reaches the death region.
type BallRemover struct {
	game      *Game
	remaining *physics.Counter
}

// NewBallRemover creates a remover that decrements remaining per ball.
func NewBallRemover(g *Game, remaining *physics.Counter) *BallRemover {
	return &BallRemover{game: g, remaining: remaining}
}

// HitEvent implements physics.HitListener.
func (r *BallRemover) HitEvent(_ *physics.Block, hitter *physics.Ball) {
	if !r.game.removeBall(hitter) {
		return
	}
	r.remaining.Decrease(1)
	r.game.emit(core.EventBallLost)
}

// ScoreTracker awards a fixed number of points for every scoring hit.
type ScoreTracker struct {
	score  *physics.Counter
	points int
}

// NewScoreTracker creates a tracker adding points to score per hit.
func NewScoreTracker(score *physics.Counter, points int) *ScoreTracker {
	return &ScoreTracker{score: score, points: points}
}

// HitEvent implements physics.HitListener.
func (t *ScoreTracker) HitEvent(*physics.Block, *physics.Ball) {
	t.score.Increase(t.points)
}

// BallPainter repaints every ball that strikes it.
type BallPainter struct {
	color core.Color
}

// HitEvent implements physics.HitListener.
func (p BallPainter) HitEvent(_ *physics.Block, hitter *physics.Ball) {
	hitter.SetColor(p.color)
}
