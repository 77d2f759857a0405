// Package spatial answers "does this rectangle collide with anything placed
// so far" for the room placers.
package spatial

import "github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/world"

// Index stores placed rectangles and tests candidates against them.
// Collisions use world.Intersects, so touching rectangles collide.
type Index interface {
	Insert(r world.Rect)
	QueryCollision(r world.Rect) bool
	Clear()
	Len() int
}

// Linear is an Index that tests every stored rectangle.
type Linear struct {
	rects []world.Rect
}

// NewLinear creates an empty linear index.
func NewLinear() *Linear {
	return &Linear{}
}

func (l *Linear) Insert(r world.Rect) {
	l.rects = append(l.rects, r)
}

func (l *Linear) QueryCollision(r world.Rect) bool {
	for _, o := range l.rects {
		if world.Intersects(r, o) {
			return true
		}
	}
	return false
}

func (l *Linear) Clear() {
	l.rects = l.rects[:0]
}

func (l *Linear) Len() int {
	return len(l.rects)
}
