package devtools

import (
	"bytes"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/world"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/game/generator"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/game/state"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/require"
)

func testLevel() *world.Level {
	l := world.NewLevel(4, 3)
	l.AddRoom(world.Room{Rect: world.Rect{X: 1, Y: 1, W: 2, H: 1}, Color: world.RGB{200, 100, 50}})
	l.FillTiles()
	return l
}

func testRun() *state.Run {
	r := state.NewRun("freelist-min", generator.DefaultConfig())
	r.Levels = []*world.Level{testLevel()}
	r.Best = 0
	return r
}

func TestSaveLevelPPM(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SaveLevelPPM(&buf, testLevel()))

	header := "P6\n4 3\n255\n"
	out := buf.Bytes()
	require.Equal(t, header, string(out[:len(header)]))

	pixels := out[len(header):]
	require.Len(t, pixels, 4*3*3)
	require.Equal(t, []byte{28, 28, 28}, pixels[0:3])

	off := (1*4 + 1) * 3
	require.Equal(t, []byte{200, 100, 50}, pixels[off:off+3])
}

func TestSaveLevelText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SaveLevelText(&buf, testLevel()))
	require.Equal(t, "####\n#aa#\n####\n", buf.String())
}

func TestSaveRunJSON(t *testing.T) {
	var buf bytes.Buffer
	run := testRun()
	require.NoError(t, SaveRunJSON(&buf, run))

	var doc struct {
		ID    string `json:"id"`
		Best  int    `json:"best"`
		Level struct {
			Width uint32       `json:"width"`
			Rooms []world.Room `json:"rooms"`
			Empty int          `json:"empty_tiles"`
		} `json:"level"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, run.ID, doc.ID)
	require.Equal(t, 0, doc.Best)
	require.Equal(t, uint32(4), doc.Level.Width)
	require.Len(t, doc.Level.Rooms, 1)
	require.Equal(t, 10, doc.Level.Empty)
}

func TestSaveRun(t *testing.T) {
	dir := t.TempDir()

	for _, format := range Formats() {
		t.Run(format, func(t *testing.T) {
			path, err := SaveRun(filepath.Join(dir, "level."+format), format, testRun())
			require.NoError(t, err)

			info, err := os.Stat(path)
			require.NoError(t, err)
			require.NotZero(t, info.Size())
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		_, err := SaveRun(filepath.Join(dir, "level.bmp"), "bmp", testRun())
		require.Error(t, err)
		require.True(t, errors.IsType(err, ErrTypeExport))
	})

	t.Run("no level", func(t *testing.T) {
		run := testRun()
		run.Best = -1
		_, err := SaveRun(filepath.Join(dir, "none.ppm"), FormatPPM, run)
		require.True(t, errors.IsType(err, ErrTypeExport))
	})
}

func TestSaveScreenshot(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)

	path, err := SaveScreenshot(dir, testLevel(), now)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "level-20240309-140506.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 4, img.Bounds().Dx())
	require.Equal(t, 3, img.Bounds().Dy())

	_, err = SaveScreenshot(filepath.Join(dir, "missing"), testLevel(), now)
	require.True(t, errors.IsType(err, ErrTypeExport))
}

type failingCloser struct {
	err    error
	closed bool
}

func (c *failingCloser) Close() error {
	c.closed = true
	return c.err
}

func TestCloseAfter(t *testing.T) {
	closeErr := os.ErrClosed
	writeErr := io.ErrShortWrite

	c := &failingCloser{err: closeErr}
	require.ErrorIs(t, closeAfter(c, nil), closeErr)
	require.True(t, c.closed)

	c = &failingCloser{err: closeErr}
	require.ErrorIs(t, closeAfter(c, writeErr), writeErr)
	require.True(t, c.closed)

	c = &failingCloser{}
	require.NoError(t, closeAfter(c, nil))
	require.True(t, c.closed)
}
