package physics

import "slices"

// SpriteCollection is the ordered render and update list.
type SpriteCollection struct {
	sprites []Sprite
}

// NewSpriteCollection creates an empty collection.
func NewSpriteCollection() *SpriteCollection {
	return &SpriteCollection{}
}

// Add appends s. Nil sprites are ignored.
func (sc *SpriteCollection) Add(s Sprite) {
	if s == nil {
		return
	}
	sc.sprites = append(sc.sprites, s)
}

// Remove drops the first occurrence of s.
func (sc *SpriteCollection) Remove(s Sprite) {
	if i := slices.Index(sc.sprites, s); i >= 0 {
		sc.sprites = slices.Delete(sc.sprites, i, i+1)
	}
}

// NotifyAllTimePassed advances every sprite present when the call starts, in
// insertion order. Sprites added or removed meanwhile take effect next time.
func (sc *SpriteCollection) NotifyAllTimePassed() {
	for _, s := range slices.Clone(sc.sprites) {
		s.TimePassed()
	}
}

// DrawAll draws every sprite in insertion order.
func (sc *SpriteCollection) DrawAll(c Canvas) {
	for _, s := range sc.sprites {
		s.Draw(c)
	}
}

// Len returns the number of sprites.
func (sc *SpriteCollection) Len() int {
	return len(sc.sprites)
}
