package devtools

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/world"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/game/renderer"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/game/state"
	"github.com/segmentio/encoding/json"
)

const ErrTypeExport = "export-failed"

// Export formats
const (
	FormatPPM  = "ppm"
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatText = "txt"
)

// Formats returns the supported export formats.
func Formats() []string {
	return []string{FormatPPM, FormatPNG, FormatJSON, FormatText}
}

// SaveLevelPPM writes the level as a binary PPM image with one pixel per
// cell.
func SaveLevelPPM(w io.Writer, l *world.Level) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P6\n%d %d\n255\n", l.Width, l.Height)
	for y := uint32(0); y < l.Height; y++ {
		for x := uint32(0); x < l.Width; x++ {
			c := renderer.CellColor(l, x, y)
			bw.Write(c[:])
		}
	}
	return bw.Flush()
}

// SaveLevelPNG writes the level as a PNG image with one pixel per cell.
func SaveLevelPNG(w io.Writer, l *world.Level) error {
	return png.Encode(w, renderer.LevelImage(l))
}

// SaveLevelText writes the level as characters: '#' for empty cells and a
// letter per room, cycling through the alphabet.
func SaveLevelText(w io.Writer, l *world.Level) error {
	bw := bufio.NewWriter(w)
	for y := uint32(0); y < l.Height; y++ {
		for x := uint32(0); x < l.Width; x++ {
			idx := l.TileAt(x, y)
			if idx == world.NoRoom {
				bw.WriteByte('#')
				continue
			}
			bw.WriteByte(roomSymbol(idx))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func roomSymbol(idx int) byte {
	const symbols = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	return symbols[idx%len(symbols)]
}

type levelDocument struct {
	Width  uint32       `json:"width"`
	Height uint32       `json:"height"`
	Rooms  []world.Room `json:"rooms"`
	Empty  int          `json:"empty_tiles"`
}

type runDocument struct {
	*state.Run
	Level *levelDocument `json:"level,omitempty"`
}

// SaveRunJSON writes the run summary and the selected level as JSON.
func SaveRunJSON(w io.Writer, r *state.Run) error {
	doc := runDocument{Run: r}
	if l := r.BestLevel(); l != nil {
		doc.Level = &levelDocument{
			Width:  l.Width,
			Height: l.Height,
			Rooms:  l.Rooms,
			Empty:  l.EmptyTiles(),
		}
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

// closeAfter closes c and returns err, or the close error when err is nil,
// so that a failed flush is not lost.
func closeAfter(c io.Closer, err error) error {
	if cerr := c.Close(); err == nil {
		err = cerr
	}
	return err
}

// SaveRun writes the selected level of the run to path in the given format
// and returns the absolute path written.
func SaveRun(path, format string, r *state.Run) (string, error) {
	l := r.BestLevel()
	if l == nil {
		return "", errors.New("no level selected").
			WithType(ErrTypeExport).
			WithTag("run_id", r.ID)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", errors.New("resolving export path failed").
			WithType(ErrTypeExport).
			WithTag("path", path).
			Wrap(err)
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", errors.New("creating export file failed").
			WithType(ErrTypeExport).
			WithTag("path", absPath).
			Wrap(err)
	}

	switch strings.ToLower(format) {
	case FormatPPM:
		err = SaveLevelPPM(f, l)
	case FormatPNG:
		err = SaveLevelPNG(f, l)
	case FormatJSON:
		err = SaveRunJSON(f, r)
	case FormatText:
		err = SaveLevelText(f, l)
	default:
		err = errors.New("unknown export format")
	}
	if err = closeAfter(f, err); err != nil {
		return "", errors.New("writing export failed").
			WithType(ErrTypeExport).
			WithTag("path", absPath).
			WithTag("format", format).
			Wrap(err)
	}
	return absPath, nil
}
