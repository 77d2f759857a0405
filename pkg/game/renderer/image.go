package renderer

import (
	"image"
	"image/color"

	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/world"
)

// EmptyColor is the colour of cells no room owns.
var EmptyColor = world.RGB{28, 28, 28}

// CellColor returns the display colour of a level cell.
func CellColor(l *world.Level, x, y uint32) world.RGB {
	if room, ok := l.RoomAt(x, y); ok {
		return room.Color
	}
	return EmptyColor
}

// LevelImage draws a level with one pixel per cell.
func LevelImage(l *world.Level) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(l.Width), int(l.Height)))
	for y := uint32(0); y < l.Height; y++ {
		for x := uint32(0); x < l.Width; x++ {
			c := CellColor(l, x, y)
			img.SetRGBA(int(x), int(y), color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff})
		}
	}
	return img
}
