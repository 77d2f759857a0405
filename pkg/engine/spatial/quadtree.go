package spatial

import (
	"slices"

	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/world"
	"github.com/zyedidia/generic/mapset"
)

const noChildren = -1

// node is a quad-tree node stored in the tree's arena. Interior nodes own
// four consecutive arena slots starting at children; leaves own a list of
// indices into the tree's rectangle arena.
type node struct {
	bounds   world.Rect
	box      world.AABB
	children int32
	items    []int32
}

func (n *node) isLeaf() bool {
	return n.children == noChildren
}

// QuadTree is a fixed depth spatial partition of a width x height level.
// Its shape is built once and survives Clear, so a single tree can be
// reused for every level of the same size.
type QuadTree struct {
	depth int
	nodes []node
	rects []world.Rect
}

// NewQuadTree builds a tree that splits the level depth times. A depth of
// zero yields a single leaf.
func NewQuadTree(depth int, width, height uint32) *QuadTree {
	if depth < 0 {
		depth = 0
	}

	capacity := 0
	for i, n := 0, 1; i <= depth; i, n = i+1, n*4 {
		capacity += n
	}

	t := &QuadTree{
		depth: depth,
		nodes: make([]node, 0, capacity),
	}
	root := world.Rect{W: width, H: height}
	t.nodes = append(t.nodes, node{
		bounds:   root,
		box:      world.NewAABB(root),
		children: noChildren,
	})
	t.split(0, depth)
	return t
}

// split gives the node four children and recurses until level reaches
// zero. Odd extents put the extra cell in the right and upper halves.
func (t *QuadTree) split(idx int32, level int) {
	if level == 0 {
		return
	}
	bounds := t.nodes[idx].bounds

	leftW := bounds.W / 2
	rightW := bounds.W - leftW
	lowH := bounds.H / 2
	highH := bounds.H - lowH

	// Siblings are appended before recursing so they stay contiguous.
	first := int32(len(t.nodes))
	quads := [4]world.Rect{
		{X: bounds.X, Y: bounds.Y, W: leftW, H: lowH},
		{X: bounds.X + leftW, Y: bounds.Y, W: rightW, H: lowH},
		{X: bounds.X, Y: bounds.Y + lowH, W: leftW, H: highH},
		{X: bounds.X + leftW, Y: bounds.Y + lowH, W: rightW, H: highH},
	}
	for _, q := range quads {
		t.nodes = append(t.nodes, node{
			bounds:   q,
			box:      world.NewAABB(q),
			children: noChildren,
		})
	}
	t.nodes[idx].children = first

	for i := range quads {
		t.split(first+int32(i), level-1)
	}
}

// Depth returns the number of partition levels below the root.
func (t *QuadTree) Depth() int {
	return t.depth
}

// Insert adds r to every leaf whose bounds overlap it.
func (t *QuadTree) Insert(r world.Rect) {
	item := int32(len(t.rects))
	t.rects = append(t.rects, r)
	t.insert(0, world.NewAABB(r), item)
}

func (t *QuadTree) insert(idx int32, box world.AABB, item int32) {
	n := &t.nodes[idx]
	if n.isLeaf() {
		n.items = append(n.items, item)
		return
	}
	for c := n.children; c < n.children+4; c++ {
		if t.nodes[c].box.IntersectsAABB(box) {
			t.insert(c, box, item)
		}
	}
}

// QueryCollision reports whether r overlaps or touches any inserted
// rectangle. The root matches every query.
func (t *QuadTree) QueryCollision(r world.Rect) bool {
	return t.query(0, r, world.NewAABB(r))
}

func (t *QuadTree) query(idx int32, r world.Rect, box world.AABB) bool {
	n := &t.nodes[idx]
	if n.isLeaf() {
		for _, item := range n.items {
			if world.Intersects(r, t.rects[item]) {
				return true
			}
		}
		return false
	}
	for c := n.children; c < n.children+4; c++ {
		if t.nodes[c].box.IntersectsAABB(box) && t.query(c, r, box) {
			return true
		}
	}
	return false
}

// Overlapping returns the insertion index of every rectangle that overlaps
// or touches r, once each, in ascending order. Rectangles spanning several
// leaves are reported once.
func (t *QuadTree) Overlapping(r world.Rect) []int {
	seen := mapset.New[int32]()
	t.collect(0, r, world.NewAABB(r), seen)

	items := make([]int, 0, seen.Size())
	seen.Each(func(item int32) {
		items = append(items, int(item))
	})
	slices.Sort(items)
	return items
}

func (t *QuadTree) collect(idx int32, r world.Rect, box world.AABB, seen mapset.Set[int32]) {
	n := &t.nodes[idx]
	if n.isLeaf() {
		for _, item := range n.items {
			if !seen.Has(item) && world.Intersects(r, t.rects[item]) {
				seen.Put(item)
			}
		}
		return
	}
	for c := n.children; c < n.children+4; c++ {
		if t.nodes[c].box.IntersectsAABB(box) {
			t.collect(c, r, box, seen)
		}
	}
}

// Clear empties every leaf while keeping the tree shape.
func (t *QuadTree) Clear() {
	for i := range t.nodes {
		t.nodes[i].items = t.nodes[i].items[:0]
	}
	t.rects = t.rects[:0]
}

// Len returns the number of inserted rectangles.
func (t *QuadTree) Len() int {
	return len(t.rects)
}

// Leaves returns the bounds of every leaf.
func (t *QuadTree) Leaves() []world.Rect {
	var leaves []world.Rect
	for _, n := range t.nodes {
		if n.isLeaf() {
			leaves = append(leaves, n.bounds)
		}
	}
	return leaves
}
