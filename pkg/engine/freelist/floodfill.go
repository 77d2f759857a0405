package freelist

import "github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/world"

// Recompact discards the catalog and rebuilds it from the occlusion buffer.
//
// Free cells are scanned row by row inside the level border. From each
// unvisited free cell a rectangle is grown greedily, alternating one column
// to the right and one row down while the new cells are free. Regions that
// reach the minimum usable size are cataloged and, together with their one
// cell ring, marked visited. Smaller regions with no free neighbour can
// never host a room and are occluded in buffer so the next recompaction
// skips them. Smaller regions that still touch free space are left for a
// later scan to absorb.
//
// The scan works on a private copy, so buffer only changes for the enclosed
// regions.
func (a *Allocator) Recompact(buffer *world.OcclusionBuffer) {
	a.Reset()

	s := a.scratch
	s.CopyFrom(buffer)

	w, h := int(s.Width()), int(s.Height())
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			if !s.IsFree(x, y) {
				continue
			}

			region := grow(s, x, y)
			switch {
			case a.Insert(region):
				s.OccludeWithBorder(region)
			case !touchesFree(s, region):
				buffer.Occlude(region)
				s.Occlude(region)
			}
		}
	}
}

func grow(s *world.OcclusionBuffer, x, y int) world.Rect {
	w, h := 1, 1
	for {
		grew := false
		if columnFree(s, x+w, y, h) {
			w++
			grew = true
		}
		if rowFree(s, x, y+h, w) {
			h++
			grew = true
		}
		if !grew {
			break
		}
	}
	return world.Rect{X: uint32(x), Y: uint32(y), W: uint32(w), H: uint32(h)}
}

func columnFree(s *world.OcclusionBuffer, x, y, h int) bool {
	for i := y; i < y+h; i++ {
		if !s.IsFree(x, i) {
			return false
		}
	}
	return true
}

func rowFree(s *world.OcclusionBuffer, x, y, w int) bool {
	for i := x; i < x+w; i++ {
		if !s.IsFree(i, y) {
			return false
		}
	}
	return true
}

// touchesFree reports whether any cell directly above, below, left or right
// of the region is free.
func touchesFree(s *world.OcclusionBuffer, r world.Rect) bool {
	x, y, w, h := int(r.X), int(r.Y), int(r.W), int(r.H)
	return anyFreeInRow(s, x, y-1, w) ||
		anyFreeInRow(s, x, y+h, w) ||
		anyFreeInColumn(s, x-1, y, h) ||
		anyFreeInColumn(s, x+w, y, h)
}

func anyFreeInRow(s *world.OcclusionBuffer, x, y, w int) bool {
	for i := x; i < x+w; i++ {
		if s.IsFree(i, y) {
			return true
		}
	}
	return false
}

func anyFreeInColumn(s *world.OcclusionBuffer, x, y, h int) bool {
	for i := y; i < y+h; i++ {
		if s.IsFree(x, i) {
			return true
		}
	}
	return false
}
