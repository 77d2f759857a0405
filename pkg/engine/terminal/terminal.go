// Package terminal reports the properties of the controlling terminal used
// to size console previews.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size returns the width and height of the terminal attached to f.
// Falls back to defaults if f is not a terminal.
func Size(f *os.File) (width, height int) {
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current width of the terminal on stdout.
func GetWidth() int {
	width, _ := Size(os.Stdout)
	return width
}
