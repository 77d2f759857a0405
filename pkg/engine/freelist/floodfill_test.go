package freelist

import (
	"math/rand"
	"testing"

	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/world"
	"github.com/stretchr/testify/require"
)

func TestRecompactEmptyLevel(t *testing.T) {
	buf := world.NewOcclusionBuffer(10, 10)
	buf.ClearWithBorders()

	a := New(10, 10, 5)
	a.Recompact(buf)
	require.Equal(t, []world.Rect{{X: 1, Y: 1, W: 8, H: 8}}, a.Entries())
}

func TestRecompactEnclosedPocket(t *testing.T) {
	buf := world.NewOcclusionBuffer(10, 10)
	buf.Occlude(world.Rect{W: 10, H: 10})
	for _, c := range [][2]int{{4, 4}, {5, 4}, {4, 5}, {5, 5}} {
		buf.Set(c[0], c[1], world.Free)
	}

	a := New(10, 10, 5)
	a.ResetToFullLevel()
	a.Recompact(buf)

	require.Zero(t, a.Count())
	require.Empty(t, a.Entries())
	require.True(t, buf.IsOccluded(world.Rect{X: 4, Y: 4, W: 2, H: 2}))
	require.Zero(t, buf.FreeCells())
}

func TestRecompactKeepsConnectedSlivers(t *testing.T) {
	buf := world.NewOcclusionBuffer(12, 12)
	buf.ClearWithBorders()
	// Leaves an L shaped corridor two cells wide. No greedy region covers
	// all of it, so every region still sees free neighbours.
	buf.Occlude(world.Rect{X: 3, Y: 1, W: 8, H: 8})

	a := New(12, 12, 5)
	a.Recompact(buf)

	require.Zero(t, a.Count())
	require.Equal(t, 36, buf.FreeCells())
}

func TestRecompactSeparatedRegions(t *testing.T) {
	buf := world.NewOcclusionBuffer(20, 10)
	buf.ClearWithBorders()
	buf.Occlude(world.Rect{X: 9, Y: 1, W: 2, H: 8})

	a := New(20, 10, 5)
	a.Recompact(buf)
	require.Equal(t, []world.Rect{
		{X: 1, Y: 1, W: 8, H: 8},
		{X: 11, Y: 1, W: 8, H: 8},
	}, a.Entries())
}

func TestRecompactGrowsGreedily(t *testing.T) {
	buf := world.NewOcclusionBuffer(12, 12)
	buf.ClearWithBorders()
	// A notch that splits the interior into several windows.
	buf.Occlude(world.Rect{X: 8, Y: 2, W: 3, H: 1})

	a := New(12, 12, 3)
	a.Recompact(buf)

	entries := a.Entries()
	require.NotEmpty(t, entries)
	for _, e := range entries {
		require.False(t, buf.IsOccluded(e), "%v is not free", e)
	}
	requireDisjoint(t, entries)
}

func TestRecompactIsIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(5))

	for round := 0; round < 30; round++ {
		const w, h = 48, 32
		buf := world.NewOcclusionBuffer(w, h)
		buf.ClearWithBorders()
		for i := 0; i < 25; i++ {
			rw, rh := r.Intn(8)+1, r.Intn(8)+1
			buf.Occlude(world.Rect{
				X: uint32(r.Intn(w - rw)),
				Y: uint32(r.Intn(h - rh)),
				W: uint32(rw),
				H: uint32(rh),
			})
		}

		a := New(w, h, 4)
		a.Recompact(buf)
		first := a.Entries()
		firstArea := a.FreeArea()
		afterFirst := buf.String()

		a.Recompact(buf)
		require.Equal(t, len(first), a.Count())
		require.Equal(t, firstArea, a.FreeArea())
		require.Equal(t, first, a.Entries())
		require.Equal(t, afterFirst, buf.String())

		for _, e := range first {
			require.False(t, buf.IsOccluded(e))
			require.GreaterOrEqual(t, e.W, uint32(4))
			require.GreaterOrEqual(t, e.H, uint32(4))
		}
		requireDisjoint(t, first)
	}
}

func TestRecompactCatalogsFreeWindowsOnly(t *testing.T) {
	const minRoom = 3
	minUsable := uint32(minRoom + 2)

	// A pocket exactly one usable window wide is cataloged as is, with no
	// ring of occupied cells around it.
	buf := world.NewOcclusionBuffer(7, 7)
	buf.ClearWithBorders()
	pocket := world.Rect{X: 1, Y: 1, W: 5, H: 5}

	a := New(7, 7, minUsable)
	a.Recompact(buf)
	require.Equal(t, []world.Rect{pocket}, a.Entries())
	require.False(t, buf.IsOccluded(pocket))

	// A minimum room inset by one cell keeps a free gap on every side.
	room := world.Rect{X: pocket.X + 1, Y: pocket.Y + 1, W: minRoom, H: minRoom}
	require.True(t, pocket.Contains(room.Expand()))

	// One cell short of a usable window: enclosed, so never cataloged.
	buf = world.NewOcclusionBuffer(8, 8)
	buf.Occlude(world.Rect{W: 8, H: 8})
	small := world.Rect{X: 2, Y: 2, W: 4, H: 4}
	for y := small.Y; y < small.Y+small.H; y++ {
		for x := small.X; x < small.X+small.W; x++ {
			buf.Set(int(x), int(y), world.Free)
		}
	}

	a = New(8, 8, minUsable)
	a.Recompact(buf)
	require.Zero(t, a.Count())
	require.True(t, buf.IsOccluded(small))
}
