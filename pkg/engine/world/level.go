// Package world provides the grid primitives shared by the level
// generators: rectangles, the occlusion buffer and the level itself.
package world

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
)

// NoRoom is the tile value of a cell that no room owns.
const NoRoom = -1

// RGB is a display colour.
type RGB [3]uint8

// Room is a placed rectangle with its display colour.
type Room struct {
	Rect
	Color RGB `json:"color"`
}

// Level is the output of a generator: the placed rooms and a per cell
// ownership map derived from them.
type Level struct {
	Width  uint32
	Height uint32
	Rooms  []Room

	// tiles holds the index of the owning room for each cell, row-major.
	tiles []int32
}

// NewLevel creates an empty level with every tile unowned.
func NewLevel(width, height uint32) *Level {
	l := &Level{
		Width:  width,
		Height: height,
		tiles:  make([]int32, int(width)*int(height)),
	}
	l.clearTiles()
	return l
}

// AddRoom appends a room. The tile map is not updated until FillTiles.
func (l *Level) AddRoom(r Room) {
	l.Rooms = append(l.Rooms, r)
}

// NumRooms returns the number of placed rooms.
func (l *Level) NumRooms() int {
	return len(l.Rooms)
}

// FillTiles rebuilds the tile map from the room list.
func (l *Level) FillTiles() {
	l.clearTiles()
	for i, r := range l.Rooms {
		for y := r.Y; y < r.Y+r.H && y < l.Height; y++ {
			row := l.tiles[int(y)*int(l.Width):]
			for x := r.X; x < r.X+r.W && x < l.Width; x++ {
				row[x] = int32(i)
			}
		}
	}
}

// TileAt returns the index of the room owning the cell, or NoRoom.
func (l *Level) TileAt(x, y uint32) int {
	if x >= l.Width || y >= l.Height {
		return NoRoom
	}
	return int(l.tiles[int(y)*int(l.Width)+int(x)])
}

// RoomAt returns the room owning the cell.
func (l *Level) RoomAt(x, y uint32) (Room, bool) {
	idx := l.TileAt(x, y)
	if idx == NoRoom {
		return Room{}, false
	}
	return l.Rooms[idx], true
}

// EmptyTiles returns the number of cells no room owns.
func (l *Level) EmptyTiles() int {
	n := 0
	for _, t := range l.tiles {
		if t == NoRoom {
			n++
		}
	}
	return n
}

// Validate checks that every room has an area and lies inside the level.
// Room separation needs a spatial index and is checked by the generator.
func (l *Level) Validate() error {
	for i, r := range l.Rooms {
		if r.W == 0 || r.H == 0 {
			return errors.New("room has no area").
				WithType(ErrTypeInvalidLevel).
				WithTag("room", i).
				WithTag("rect", r.String())
		}
		if uint64(r.X)+uint64(r.W) > uint64(l.Width) || uint64(r.Y)+uint64(r.H) > uint64(l.Height) {
			return errors.New("room outside level").
				WithType(ErrTypeInvalidLevel).
				WithTag("room", i).
				WithTag("rect", r.String())
		}
	}
	return nil
}

func (l *Level) clearTiles() {
	for i := range l.tiles {
		l.tiles[i] = NoRoom
	}
}
