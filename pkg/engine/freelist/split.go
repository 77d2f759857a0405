package freelist

import "github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/world"

// Splitter cuts the part of free not covered by used into at most four
// disjoint rectangles. used must lie inside free.
type Splitter interface {
	Split(free, used world.Rect) []world.Rect
}

// bands are the distances from each side of the used rectangle to the
// matching side of the free rectangle.
type bands struct {
	left, right, top, bottom uint32
}

func measure(free, used world.Rect) bands {
	return bands{
		left:   used.X - free.X,
		right:  free.X + free.W - (used.X + used.W),
		top:    used.Y - free.Y,
		bottom: free.Y + free.H - (used.Y + used.H),
	}
}

func appendNonEmpty(dst []world.Rect, rects ...world.Rect) []world.Rect {
	for _, r := range rects {
		if r.W > 0 && r.H > 0 {
			dst = append(dst, r)
		}
	}
	return dst
}

// SplitDominant cuts along the free rectangle's longer side first. A tall
// rectangle yields full width bands above and below the used area, a wide
// one yields full height bands left and right of it, which keeps the
// residuals away from long thin slivers.
type SplitDominant struct{}

func (SplitDominant) Split(free, used world.Rect) []world.Rect {
	b := measure(free, used)
	res := make([]world.Rect, 0, 4)

	if free.H >= free.W {
		return appendNonEmpty(res,
			world.Rect{X: free.X, Y: free.Y, W: free.W, H: b.top},
			world.Rect{X: free.X, Y: used.Y + used.H, W: free.W, H: b.bottom},
			world.Rect{X: free.X, Y: used.Y, W: b.left, H: used.H},
			world.Rect{X: used.X + used.W, Y: used.Y, W: b.right, H: used.H},
		)
	}
	return appendNonEmpty(res,
		world.Rect{X: free.X, Y: free.Y, W: b.left, H: free.H},
		world.Rect{X: used.X + used.W, Y: free.Y, W: b.right, H: free.H},
		world.Rect{X: used.X, Y: free.Y, W: used.W, H: b.top},
		world.Rect{X: used.X, Y: used.Y + used.H, W: used.W, H: b.bottom},
	)
}

// SplitAlternating cuts the residual area as a pinwheel around the used
// rectangle and flips the pinwheel's handedness on every call, so repeated
// allocations do not favour one direction. The zero value starts right
// handed. Each allocator needs its own instance.
type SplitAlternating struct {
	leftHanded bool
}

func (s *SplitAlternating) Split(free, used world.Rect) []world.Rect {
	b := measure(free, used)
	res := make([]world.Rect, 0, 4)
	left := s.leftHanded
	s.leftHanded = !s.leftHanded

	if !left {
		return appendNonEmpty(res,
			world.Rect{X: free.X, Y: free.Y, W: b.left + used.W, H: b.top},
			world.Rect{X: used.X + used.W, Y: free.Y, W: b.right, H: b.top + used.H},
			world.Rect{X: used.X, Y: used.Y + used.H, W: used.W + b.right, H: b.bottom},
			world.Rect{X: free.X, Y: used.Y, W: b.left, H: used.H + b.bottom},
		)
	}
	return appendNonEmpty(res,
		world.Rect{X: used.X, Y: free.Y, W: used.W + b.right, H: b.top},
		world.Rect{X: used.X + used.W, Y: used.Y, W: b.right, H: used.H + b.bottom},
		world.Rect{X: free.X, Y: used.Y + used.H, W: b.left + used.W, H: b.bottom},
		world.Rect{X: free.X, Y: free.Y, W: b.left, H: b.top + used.H},
	)
}
