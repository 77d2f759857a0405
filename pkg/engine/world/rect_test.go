package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a    Rect
		b    Rect
		want bool
	}{
		{name: "overlap", a: Rect{0, 0, 4, 4}, b: Rect{2, 2, 4, 4}, want: true},
		{name: "contained", a: Rect{0, 0, 10, 10}, b: Rect{3, 3, 2, 2}, want: true},
		{name: "shared edge", a: Rect{0, 0, 4, 4}, b: Rect{4, 0, 4, 4}, want: true},
		{name: "corner touch", a: Rect{0, 0, 4, 4}, b: Rect{4, 4, 2, 2}, want: true},
		{name: "one cell gap", a: Rect{0, 0, 4, 4}, b: Rect{5, 0, 4, 4}, want: false},
		{name: "below", a: Rect{0, 0, 4, 4}, b: Rect{0, 5, 4, 4}, want: false},
		{name: "far away", a: Rect{0, 0, 1, 1}, b: Rect{20, 20, 1, 1}, want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, Intersects(test.a, test.b))
			require.Equal(t, test.want, Intersects(test.b, test.a))
			require.Equal(t, test.want, NewAABB(test.a).Intersects(test.b))
		})
	}
}

func TestAABBAgreesWithIntersects(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	randRect := func() Rect {
		return Rect{
			X: uint32(r.Intn(30)),
			Y: uint32(r.Intn(30)),
			W: uint32(r.Intn(9) + 1),
			H: uint32(r.Intn(9) + 1),
		}
	}

	for i := 0; i < 5000; i++ {
		a, b := randRect(), randRect()
		require.Equal(t, Intersects(a, b), NewAABB(a).IntersectsAABB(NewAABB(b)), "a=%v b=%v", a, b)
	}
}

func TestAABBRoundTripsOddSizes(t *testing.T) {
	r := Rect{X: 3, Y: 5, W: 7, H: 1}
	b := NewAABB(r)
	require.Equal(t, int64(13), b.MidX2)
	require.Equal(t, int64(11), b.MidY2)
	require.Equal(t, r, b.Rect())
}

func TestRectContains(t *testing.T) {
	outer := Rect{1, 1, 8, 8}
	require.True(t, outer.Contains(Rect{2, 2, 3, 3}))
	require.True(t, outer.Contains(outer))
	require.False(t, outer.Contains(Rect{0, 2, 3, 3}))
	require.False(t, outer.Contains(Rect{6, 6, 4, 3}))
}

func TestRectExpand(t *testing.T) {
	require.Equal(t, Rect{1, 1, 5, 5}, Rect{2, 2, 3, 3}.Expand())
	require.Equal(t, Rect{0, 0, 4, 3}, Rect{0, 0, 3, 2}.Expand())
}
