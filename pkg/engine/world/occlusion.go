package world

import (
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
)

// CellState is the occupancy of a single occlusion buffer cell.
type CellState uint8

const (
	// Free cells may be claimed by a room.
	Free CellState = iota
	// Occluded cells belong to a room or were given up as unusable.
	Occluded
	// Border cells form the one-cell frame around the level.
	Border
)

// Rune returns the character used for the state in debug dumps.
func (s CellState) Rune() rune {
	switch s {
	case Occluded:
		return 'O'
	case Border:
		return 'B'
	default:
		return ' '
	}
}

// OcclusionBuffer is a dense per-cell occupancy grid stored row-major.
// Cells outside the grid are treated as occupied by the queries.
type OcclusionBuffer struct {
	width  uint32
	height uint32
	cells  []CellState
}

// NewOcclusionBuffer creates a buffer with every cell free.
func NewOcclusionBuffer(width, height uint32) *OcclusionBuffer {
	return &OcclusionBuffer{
		width:  width,
		height: height,
		cells:  make([]CellState, int(width)*int(height)),
	}
}

// Width returns the number of columns.
func (b *OcclusionBuffer) Width() uint32 {
	return b.width
}

// Height returns the number of rows.
func (b *OcclusionBuffer) Height() uint32 {
	return b.height
}

// InBounds reports whether the cell lies inside the grid.
func (b *OcclusionBuffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < int(b.width) && y < int(b.height)
}

// RectInBounds reports whether every cell of r lies inside the grid.
func (b *OcclusionBuffer) RectInBounds(r Rect) bool {
	return uint64(r.X)+uint64(r.W) <= uint64(b.width) &&
		uint64(r.Y)+uint64(r.H) <= uint64(b.height)
}

// At returns the state of a cell. Cells outside the grid report Border.
func (b *OcclusionBuffer) At(x, y int) CellState {
	if !b.InBounds(x, y) {
		return Border
	}
	return b.cells[y*int(b.width)+x]
}

// IsFree reports whether a cell is inside the grid and unoccupied.
func (b *OcclusionBuffer) IsFree(x, y int) bool {
	return b.At(x, y) == Free
}

// Set overwrites the state of a single in-bounds cell.
func (b *OcclusionBuffer) Set(x, y int, s CellState) {
	b.cells[y*int(b.width)+x] = s
}

// Occlude marks every cell of r as occupied. r must lie inside the grid.
func (b *OcclusionBuffer) Occlude(r Rect) {
	b.fill(r, Occluded)
}

// OccludeChecked is Occlude with a bounds check.
func (b *OcclusionBuffer) OccludeChecked(r Rect) error {
	if err := b.checkBounds(r); err != nil {
		return err
	}
	b.Occlude(r)
	return nil
}

// OccludeWithBorder marks r occupied and marks its one-cell ring as border.
// Ring cells falling outside the grid are skipped.
func (b *OcclusionBuffer) OccludeWithBorder(r Rect) {
	e := r.Expand()
	for y := int(e.Y); y < int(e.Y+e.H); y++ {
		for x := int(e.X); x < int(e.X+e.W); x++ {
			if !b.InBounds(x, y) {
				continue
			}
			if x >= int(r.X) && x < int(r.X+r.W) && y >= int(r.Y) && y < int(r.Y+r.H) {
				b.Set(x, y, Occluded)
			} else {
				b.Set(x, y, Border)
			}
		}
	}
}

// OccludeWithBorderChecked is OccludeWithBorder with a bounds check on r.
func (b *OcclusionBuffer) OccludeWithBorderChecked(r Rect) error {
	if err := b.checkBounds(r); err != nil {
		return err
	}
	b.OccludeWithBorder(r)
	return nil
}

// IsOccluded reports whether any cell of r is not free.
func (b *OcclusionBuffer) IsOccluded(r Rect) bool {
	return b.anyUsed(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H))
}

// IsOccludedChecked is IsOccluded with a bounds check.
func (b *OcclusionBuffer) IsOccludedChecked(r Rect) (bool, error) {
	if err := b.checkBounds(r); err != nil {
		return false, err
	}
	return b.IsOccluded(r), nil
}

// IsExpandedOccluded reports whether any cell of r grown by one cell on
// every side is not free. Out of grid cells count as occupied, so a
// rectangle touching the grid edge always reports true.
func (b *OcclusionBuffer) IsExpandedOccluded(r Rect) bool {
	return b.anyUsed(int(r.X)-1, int(r.Y)-1, int(r.X+r.W)+1, int(r.Y+r.H)+1)
}

// IsExpandedOccludedChecked is IsExpandedOccluded with a bounds check on r.
func (b *OcclusionBuffer) IsExpandedOccludedChecked(r Rect) (bool, error) {
	if err := b.checkBounds(r); err != nil {
		return false, err
	}
	return b.IsExpandedOccluded(r), nil
}

// Clear sets every cell free.
func (b *OcclusionBuffer) Clear() {
	clear(b.cells)
}

// ClearWithBorders sets every cell free and then marks the outermost ring of
// the grid as border.
func (b *OcclusionBuffer) ClearWithBorders() {
	b.Clear()
	w, h := int(b.width), int(b.height)
	for x := 0; x < w; x++ {
		b.Set(x, 0, Border)
		b.Set(x, h-1, Border)
	}
	for y := 0; y < h; y++ {
		b.Set(0, y, Border)
		b.Set(w-1, y, Border)
	}
}

// FreeCells returns the number of free cells.
func (b *OcclusionBuffer) FreeCells() int {
	n := 0
	for _, c := range b.cells {
		if c == Free {
			n++
		}
	}
	return n
}

// CopyFrom overwrites the buffer with the contents of src, resizing it when
// the dimensions differ.
func (b *OcclusionBuffer) CopyFrom(src *OcclusionBuffer) {
	if len(b.cells) != len(src.cells) {
		b.cells = make([]CellState, len(src.cells))
	}
	b.width, b.height = src.width, src.height
	copy(b.cells, src.cells)
}

// String renders the buffer one row per line.
func (b *OcclusionBuffer) String() string {
	var sb strings.Builder
	sb.Grow(int(b.height) * (int(b.width) + 1))
	for y := 0; y < int(b.height); y++ {
		for x := 0; x < int(b.width); x++ {
			sb.WriteRune(b.At(x, y).Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *OcclusionBuffer) fill(r Rect, s CellState) {
	for y := r.Y; y < r.Y+r.H; y++ {
		row := b.cells[int(y)*int(b.width):]
		for x := r.X; x < r.X+r.W; x++ {
			row[x] = s
		}
	}
}

func (b *OcclusionBuffer) anyUsed(x0, y0, x1, y1 int) bool {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if b.At(x, y) != Free {
				return true
			}
		}
	}
	return false
}

func (b *OcclusionBuffer) checkBounds(r Rect) error {
	if b.RectInBounds(r) {
		return nil
	}
	return errors.New("rectangle outside occlusion buffer").
		WithType(ErrTypeOutOfBounds).
		WithTag("rect", r.String()).
		WithTag("width", b.width).
		WithTag("height", b.height)
}
