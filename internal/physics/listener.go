package physics

// HitListener is notified when a ball strikes a block of a different color.
type HitListener interface {
	HitEvent(beingHit *Block, hitter *Ball)
}

// HitListenerFunc adapts a plain function to HitListener.
type HitListenerFunc func(beingHit *Block, hitter *Ball)

// HitEvent calls f.
func (f HitListenerFunc) HitEvent(beingHit *Block, hitter *Ball) {
	f(beingHit, hitter)
}

// ListenerID identifies a registration returned by Block.AddHitListener.
type ListenerID uint64

type listenerEntry struct {
	id       ListenerID
	listener HitListener
}

// Counter is a plain integer accumulator shared between the game and its
// listeners.
type Counter struct {
	value int
}

// NewCounter creates a counter starting at value.
func NewCounter(value int) *Counter {
	return &Counter{value: value}
}

func (c *Counter) Increase(n int) { c.value += n }
func (c *Counter) Decrease(n int) { c.value -= n }
func (c *Counter) Value() int     { return c.value }
