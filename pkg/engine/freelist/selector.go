package freelist

import (
	"cmp"
	"slices"
)

// Selector chooses which cataloged rectangle answers a size request.
type Selector interface {
	Name() string
	Select(a *Allocator, w, h uint32) (Handle, bool)
}

var (
	// MinSize returns the first rectangle that fits, walking widths and
	// heights upward from the request. It is not necessarily the tightest
	// fit.
	MinSize Selector = minSizeSelector{}

	// MaxSize returns the largest area rectangle that fits.
	MaxSize Selector = maxSizeSelector{}
)

type minSizeSelector struct{}

func (minSizeSelector) Name() string {
	return "min"
}

func (minSizeSelector) Select(a *Allocator, w, h uint32) (Handle, bool) {
	ci, _ := slices.BinarySearchFunc(a.columns, w, func(c *column, w uint32) int {
		return cmp.Compare(c.width, w)
	})
	for ; ci < len(a.columns); ci++ {
		col := a.columns[ci]
		bi, _ := slices.BinarySearchFunc(col.buckets, h, func(b *bucket, h uint32) int {
			return cmp.Compare(b.height, h)
		})
		for ; bi < len(col.buckets); bi++ {
			if n := col.buckets[bi].entries.Front; n != nil {
				return a.handle(n), true
			}
		}
	}
	return Handle{}, false
}

type maxSizeSelector struct{}

func (maxSizeSelector) Name() string {
	return "max"
}

func (maxSizeSelector) Select(a *Allocator, w, h uint32) (Handle, bool) {
	var (
		best     Handle
		bestArea uint64
		found    bool
	)
	for ci := len(a.columns) - 1; ci >= 0 && a.columns[ci].width >= w; ci-- {
		col := a.columns[ci]
		for bi := len(col.buckets) - 1; bi >= 0 && col.buckets[bi].height >= h; bi-- {
			b := col.buckets[bi]
			if b.entries.Front == nil {
				continue
			}
			area := uint64(col.width) * uint64(b.height)
			if !found || area > bestArea {
				best, bestArea, found = a.handle(b.entries.Front), area, true
			}
		}
	}
	return best, found
}
