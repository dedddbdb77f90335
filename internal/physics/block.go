package physics

import (
	"slices"

	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/geom"
)

// Block is a rectangular obstacle that reflects balls off whichever edges the
// collision point lies on.
type Block struct {
	rect      *geom.Rect
	color     core.Color
	listeners []listenerEntry
	nextID    ListenerID
}

// NewBlock creates a block occupying rect.
func NewBlock(rect *geom.Rect, color core.Color) *Block {
	return &Block{rect: rect, color: color}
}

// CollisionRect returns the block's bounds.
func (b *Block) CollisionRect() *geom.Rect {
	return b.rect
}

// Color returns the block color.
func (b *Block) Color() core.Color {
	return b.color
}

// Hit flips the velocity component perpendicular to every edge that contains
// p: top and bottom negate DY, left and right negate DX, so a corner hit
// negates both. Listeners are notified first when the hitter's color differs
// from the block's.
func (b *Block) Hit(hitter *Ball, p geom.Point, v Velocity) Velocity {
	if hitter != nil && hitter.Color() != b.color {
		b.notifyHit(hitter)
	}

	for _, edge := range b.rect.EdgesAt(p) {
		switch edge {
		case geom.EdgeTop, geom.EdgeBottom:
			v = v.FlipY()
		case geom.EdgeLeft, geom.EdgeRight:
			v = v.FlipX()
		}
	}
	return v
}

// AddHitListener registers l and returns a handle for removing it.
func (b *Block) AddHitListener(l HitListener) ListenerID {
	b.nextID++
	b.listeners = append(b.listeners, listenerEntry{id: b.nextID, listener: l})
	return b.nextID
}

// RemoveHitListener unregisters the listener with the given handle.
// Unknown handles are ignored.
func (b *Block) RemoveHitListener(id ListenerID) {
	b.listeners = slices.DeleteFunc(b.listeners, func(e listenerEntry) bool {
		return e.id == id
	})
}

// ClearHitListeners unregisters every listener.
func (b *Block) ClearHitListeners() {
	b.listeners = nil
}

// ListenerCount returns the number of registered listeners.
func (b *Block) ListenerCount() int {
	return len(b.listeners)
}

// notifyHit calls every listener registered at the time of the hit, so
// listeners may add or remove registrations while being notified.
func (b *Block) notifyHit(hitter *Ball) {
	snapshot := slices.Clone(b.listeners)
	for _, e := range snapshot {
		e.listener.HitEvent(b, hitter)
	}
}

// Draw renders the block.
func (b *Block) Draw(c Canvas) {
	c.FillRect(b.rect, b.color)
}

// TimePassed does nothing; blocks are static.
func (b *Block) TimePassed() {}
