package world

import "fmt"

// Rect is an axis-aligned rectangle of grid cells. X and Y are the top-left
// cell, W and H the extent in cells.
type Rect struct {
	X uint32 `json:"x"`
	Y uint32 `json:"y"`
	W uint32 `json:"w"`
	H uint32 `json:"h"`
}

// Area returns the number of cells covered by the rectangle.
func (r Rect) Area() uint64 {
	return uint64(r.W) * uint64(r.H)
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y &&
		uint64(o.X)+uint64(o.W) <= uint64(r.X)+uint64(r.W) &&
		uint64(o.Y)+uint64(o.H) <= uint64(r.Y)+uint64(r.H)
}

// Expand returns r grown by one cell on every side, clamped at zero.
func (r Rect) Expand() Rect {
	e := Rect{X: r.X, Y: r.Y, W: r.W + 2, H: r.H + 2}
	if e.X > 0 {
		e.X--
	} else {
		e.W--
	}
	if e.Y > 0 {
		e.Y--
	} else {
		e.H--
	}
	return e
}

func (r Rect) String() string {
	return fmt.Sprintf("{%d,%d %dx%d}", r.X, r.Y, r.W, r.H)
}

// Intersects reports whether a and b overlap or touch. The comparison is
// inclusive of the far edge, so rooms that share an edge or sit directly
// next to each other collide. Placement relies on this to keep a gap
// between rooms.
func Intersects(a, b Rect) bool {
	ax1 := uint64(a.X) + uint64(a.W)
	ay1 := uint64(a.Y) + uint64(a.H)
	bx1 := uint64(b.X) + uint64(b.W)
	by1 := uint64(b.Y) + uint64(b.H)

	if ax1 < uint64(b.X) || uint64(a.X) > bx1 {
		return false
	}
	if ay1 < uint64(b.Y) || uint64(a.Y) > by1 {
		return false
	}
	return true
}

// AABB is a rectangle stored as its doubled midpoint and its extent. Keeping
// the doubled midpoint avoids halving and makes the overlap test exact in
// integers.
type AABB struct {
	MidX2 int64
	MidY2 int64
	W     int64
	H     int64
}

// NewAABB converts a rectangle into its doubled-midpoint form.
func NewAABB(r Rect) AABB {
	return AABB{
		MidX2: 2*int64(r.X) + int64(r.W),
		MidY2: 2*int64(r.Y) + int64(r.H),
		W:     int64(r.W),
		H:     int64(r.H),
	}
}

// Rect converts the box back to a rectangle.
func (b AABB) Rect() Rect {
	return Rect{
		X: uint32((b.MidX2 - b.W) / 2),
		Y: uint32((b.MidY2 - b.H) / 2),
		W: uint32(b.W),
		H: uint32(b.H),
	}
}

// IntersectsAABB reports whether two boxes overlap or touch.
func (b AABB) IntersectsAABB(o AABB) bool {
	return abs64(o.MidX2-b.MidX2) <= b.W+o.W &&
		abs64(o.MidY2-b.MidY2) <= b.H+o.H
}

// Intersects reports whether the box overlaps or touches r. It agrees with
// the package level Intersects for every pair of rectangles.
func (b AABB) Intersects(r Rect) bool {
	return b.IntersectsAABB(NewAABB(r))
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
