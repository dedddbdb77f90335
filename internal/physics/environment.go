package physics

import (
	"slices"

	"github.com/vovakirdan/tui-bricks/internal/geom"
)

// Environment is the registry of obstacles balls collide against.
// Registration order is kept and used to break distance ties.
type Environment struct {
	collidables []Collidable
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{}
}

// Add registers an obstacle. Adding the same obstacle twice registers it
// twice.
func (e *Environment) Add(c Collidable) {
	e.collidables = append(e.collidables, c)
}

// Remove unregisters the first occurrence of c. Removing an obstacle that is
// not registered is a no-op.
func (e *Environment) Remove(c Collidable) {
	if i := slices.Index(e.collidables, c); i >= 0 {
		e.collidables = slices.Delete(e.collidables, i, i+1)
	}
}

// Collidables returns a copy of the registry.
func (e *Environment) Collidables() []Collidable {
	return slices.Clone(e.collidables)
}

// Len returns the number of registrations.
func (e *Environment) Len() int {
	return len(e.collidables)
}

// ClosestCollision returns the obstacle whose boundary trajectory crosses
// nearest to its start. Ties keep the earlier registration.
func (e *Environment) ClosestCollision(trajectory geom.Line) (CollisionInfo, bool) {
	var (
		info  CollisionInfo
		found bool
		best  float64
	)

	for _, c := range e.collidables {
		p, ok := trajectory.ClosestIntersectionToStart(c.CollisionRect())
		if !ok {
			continue
		}
		d := trajectory.Start.Distance(p)
		if !found || d < best {
			best = d
			info = CollisionInfo{Point: p, Object: c}
			found = true
		}
	}

	return info, found
}
