package world

import (
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestLevelFillTiles(t *testing.T) {
	l := NewLevel(8, 6)
	l.AddRoom(Room{Rect: Rect{1, 1, 2, 2}, Color: RGB{100, 100, 100}})
	l.AddRoom(Room{Rect: Rect{4, 1, 3, 4}, Color: RGB{80, 90, 100}})

	require.Equal(t, NoRoom, l.TileAt(1, 1))
	require.Equal(t, 48, l.EmptyTiles())

	l.FillTiles()
	require.Equal(t, 0, l.TileAt(1, 1))
	require.Equal(t, 0, l.TileAt(2, 2))
	require.Equal(t, 1, l.TileAt(6, 4))
	require.Equal(t, NoRoom, l.TileAt(3, 1))
	require.Equal(t, NoRoom, l.TileAt(100, 1))
	require.Equal(t, 48-4-12, l.EmptyTiles())

	room, ok := l.RoomAt(5, 2)
	require.True(t, ok)
	require.Equal(t, RGB{80, 90, 100}, room.Color)
}

func TestLevelValidate(t *testing.T) {
	l := NewLevel(10, 10)
	l.AddRoom(Room{Rect: Rect{1, 1, 3, 3}})
	l.AddRoom(Room{Rect: Rect{5, 1, 3, 3}})
	require.NoError(t, l.Validate())

	l.AddRoom(Room{Rect: Rect{8, 8, 3, 1}})
	err := l.Validate()
	require.Error(t, err)
	require.True(t, errors.IsType(err, ErrTypeInvalidLevel))

	empty := NewLevel(10, 10)
	empty.AddRoom(Room{Rect: Rect{2, 2, 0, 3}})
	require.True(t, errors.IsType(empty.Validate(), ErrTypeInvalidLevel))
}
