package physics

import (
	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/geom"
)

// Collidable is anything a ball can strike.
type Collidable interface {
	// CollisionRect returns the current bounds used for collision queries.
	CollisionRect() *geom.Rect

	// Hit returns the velocity the hitter leaves with after striking the
	// obstacle at p while moving with v.
	Hit(hitter *Ball, p geom.Point, v Velocity) Velocity
}

// CollisionInfo describes the first obstacle on a trajectory.
type CollisionInfo struct {
	Point  geom.Point
	Object Collidable
}

// Canvas is the drawing surface sprites render onto. Coordinates are in
// world units; the implementation maps them to its own resolution.
type Canvas interface {
	FillRect(r *geom.Rect, color core.Color)
	FillCircle(center geom.Point, radius float64, color core.Color)
}

// Sprite is a visual entity that also advances with the simulation.
type Sprite interface {
	Draw(c Canvas)
	TimePassed()
}
