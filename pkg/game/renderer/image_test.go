package renderer

import (
	"image/color"
	"testing"

	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/world"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/game/state"
	"github.com/stretchr/testify/require"
)

func TestLevelImage(t *testing.T) {
	l := world.NewLevel(4, 3)
	l.AddRoom(world.Room{Rect: world.Rect{X: 1, Y: 1, W: 2, H: 1}, Color: world.RGB{100, 150, 200}})
	l.FillTiles()

	img := LevelImage(l)
	require.Equal(t, 4, img.Bounds().Dx())
	require.Equal(t, 3, img.Bounds().Dy())
	require.Equal(t, color.RGBA{100, 150, 200, 255}, img.RGBAAt(2, 1))
	require.Equal(t, color.RGBA{28, 28, 28, 255}, img.RGBAAt(0, 0))
	require.Equal(t, color.RGBA{28, 28, 28, 255}, img.RGBAAt(3, 1))
}

type recordingRenderer struct {
	inits int
	runs  int
}

func (r *recordingRenderer) Init() {
	r.inits++
}

func (r *recordingRenderer) RenderRun(*state.Run) error {
	r.runs++
	return nil
}

func TestCurrentRenderer(t *testing.T) {
	defer SetRenderer(nil)

	SetRenderer(nil)
	Init()
	require.NoError(t, RenderRun(nil))

	rec := &recordingRenderer{}
	SetRenderer(rec)
	Init()
	require.NoError(t, RenderRun(nil))
	require.Equal(t, 1, rec.inits)
	require.Equal(t, 1, rec.runs)
}
