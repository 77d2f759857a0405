// Package freelist keeps a catalog of free rectangles for a level and hands
// them out for room placement. The catalog is grouped by width, then by
// height, so size requests are answered with two binary searches instead of
// a scan of the level.
package freelist

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/world"
	"github.com/zyedidia/generic/list"
)

const (
	ErrTypeStaleHandle  = "stale-handle"
	ErrTypeNotContained = "not-contained"
)

type entry struct {
	rect world.Rect
	live bool
}

// bucket holds every cataloged rectangle of one exact width and height.
type bucket struct {
	height  uint32
	entries *list.List[*entry]
	size    int
}

// column holds the buckets of one width, sorted by ascending height.
type column struct {
	width   uint32
	buckets []*bucket
}

// Handle identifies a cataloged rectangle returned by Find. It stays valid
// until the entry is consumed or the catalog is reset or recompacted.
type Handle struct {
	node  *list.Node[*entry]
	epoch uint64
}

// Rect returns the free rectangle the handle refers to.
func (h Handle) Rect() world.Rect {
	if h.node == nil {
		return world.Rect{}
	}
	return h.node.Value.rect
}

// Option configures an Allocator.
type Option func(*Allocator)

// WithSplitter sets how consumed rectangles are cut into residuals. The
// default is SplitDominant.
func WithSplitter(s Splitter) Option {
	return func(a *Allocator) {
		a.splitter = s
	}
}

// Allocator is a free rectangle catalog for one level size. It is not safe
// for concurrent use; each generation worker owns its own.
type Allocator struct {
	width     uint32
	height    uint32
	minUsable uint32
	splitter  Splitter
	columns   []*column
	count     int
	epoch     uint64
	scratch   *world.OcclusionBuffer
}

// New creates an empty allocator for a width x height level. Rectangles
// narrower or shorter than minUsable are never cataloged.
func New(width, height, minUsable uint32, options ...Option) *Allocator {
	a := &Allocator{
		width:     width,
		height:    height,
		minUsable: max(minUsable, 1),
		splitter:  SplitDominant{},
		scratch:   world.NewOcclusionBuffer(width, height),
	}
	for _, opt := range options {
		opt(a)
	}
	return a
}

// Count returns the number of cataloged rectangles. Zero means the catalog
// is exhausted.
func (a *Allocator) Count() int {
	return a.count
}

// Reset empties the catalog.
func (a *Allocator) Reset() {
	a.columns = a.columns[:0]
	a.count = 0
	a.epoch++
}

// ResetToFullLevel empties the catalog and adds the level interior, the
// whole level minus its one cell border.
func (a *Allocator) ResetToFullLevel() {
	a.Reset()
	if a.width < 2 || a.height < 2 {
		return
	}
	a.Insert(world.Rect{X: 1, Y: 1, W: a.width - 2, H: a.height - 2})
}

// Insert catalogs r if it meets the minimum usable size and reports whether
// it did.
func (a *Allocator) Insert(r world.Rect) bool {
	if r.W < a.minUsable || r.H < a.minUsable {
		return false
	}

	ci, found := slices.BinarySearchFunc(a.columns, r.W, func(c *column, w uint32) int {
		return cmp.Compare(c.width, w)
	})
	if !found {
		a.columns = slices.Insert(a.columns, ci, &column{width: r.W})
	}
	col := a.columns[ci]

	bi, found := slices.BinarySearchFunc(col.buckets, r.H, func(b *bucket, h uint32) int {
		return cmp.Compare(b.height, h)
	})
	if !found {
		col.buckets = slices.Insert(col.buckets, bi, &bucket{
			height:  r.H,
			entries: list.New[*entry](),
		})
	}
	b := col.buckets[bi]

	b.entries.PushBackNode(&list.Node[*entry]{Value: &entry{rect: r, live: true}})
	b.size++
	a.count++
	return true
}

// Find returns a handle to a cataloged rectangle at least w wide and h high,
// chosen by the selector. The boolean is false when nothing fits.
func (a *Allocator) Find(w, h uint32, sel Selector) (Handle, bool) {
	if a.count == 0 {
		return Handle{}, false
	}
	return sel.Select(a, w, h)
}

// Consume removes the rectangle referred to by the handle and catalogs the
// parts of it that used does not cover. Residuals below the minimum usable
// size are dropped until the next recompaction finds them again.
func (a *Allocator) Consume(h Handle, used world.Rect) error {
	if h.node == nil || h.epoch != a.epoch || !h.node.Value.live {
		return errors.New("free rectangle handle is no longer valid").
			WithType(ErrTypeStaleHandle)
	}

	free := h.node.Value.rect
	if used.W == 0 || used.H == 0 || !free.Contains(used) {
		return errors.New("used rectangle is not inside the free rectangle").
			WithType(ErrTypeNotContained).
			WithTag("free", free.String()).
			WithTag("used", used.String())
	}

	a.remove(h.node)
	for _, r := range a.splitter.Split(free, used) {
		a.Insert(r)
	}
	return nil
}

func (a *Allocator) remove(n *list.Node[*entry]) {
	r := n.Value.rect
	n.Value.live = false

	ci, _ := slices.BinarySearchFunc(a.columns, r.W, func(c *column, w uint32) int {
		return cmp.Compare(c.width, w)
	})
	col := a.columns[ci]
	bi, _ := slices.BinarySearchFunc(col.buckets, r.H, func(b *bucket, h uint32) int {
		return cmp.Compare(b.height, h)
	})
	b := col.buckets[bi]

	b.entries.Remove(n)
	b.size--
	a.count--

	if b.size == 0 {
		col.buckets = slices.Delete(col.buckets, bi, bi+1)
	}
	if len(col.buckets) == 0 {
		a.columns = slices.Delete(a.columns, ci, ci+1)
	}
}

// Entries returns every cataloged rectangle ordered by width, then height,
// then insertion.
func (a *Allocator) Entries() []world.Rect {
	entries := make([]world.Rect, 0, a.count)
	for _, c := range a.columns {
		for _, b := range c.buckets {
			if b.entries.Front == nil {
				continue
			}
			b.entries.Front.Each(func(e *entry) {
				entries = append(entries, e.rect)
			})
		}
	}
	return entries
}

// FreeArea returns the number of cells covered by the catalog.
func (a *Allocator) FreeArea() uint64 {
	var area uint64
	for _, c := range a.columns {
		for _, b := range c.buckets {
			area += uint64(c.width) * uint64(b.height) * uint64(b.size)
		}
	}
	return area
}

func (a *Allocator) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d free rectangles\n", a.count)
	for _, c := range a.columns {
		for _, b := range c.buckets {
			fmt.Fprintf(&sb, "  %dx%d:", c.width, b.height)
			for n := b.entries.Front; n != nil; n = n.Next {
				fmt.Fprintf(&sb, " (%d,%d)", n.Value.rect.X, n.Value.rect.Y)
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (a *Allocator) handle(n *list.Node[*entry]) Handle {
	return Handle{node: n, epoch: a.epoch}
}
