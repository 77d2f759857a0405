package generator

import (
	"context"
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/world"
	"github.com/stretchr/testify/require"
)

func TestVerifyLevel(t *testing.T) {
	tests := []struct {
		name  string
		rooms []world.Rect
		valid bool
	}{
		{
			name:  "separated",
			rooms: []world.Rect{{X: 1, Y: 1, W: 3, H: 3}, {X: 5, Y: 1, W: 3, H: 3}},
			valid: true,
		},
		{
			name:  "touching",
			rooms: []world.Rect{{X: 1, Y: 1, W: 3, H: 3}, {X: 1, Y: 4, W: 3, H: 3}},
		},
		{
			name:  "overlapping across leaves",
			rooms: []world.Rect{{X: 2, Y: 2, W: 12, H: 12}, {X: 10, Y: 10, W: 3, H: 3}},
		},
		{
			name:  "outside",
			rooms: []world.Rect{{X: 14, Y: 14, W: 4, H: 1}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l := world.NewLevel(16, 16)
			for _, r := range test.rooms {
				l.AddRoom(world.Room{Rect: r})
			}

			for _, depth := range []int{0, 2, 3} {
				err := VerifyLevel(l, depth)
				if test.valid {
					require.NoError(t, err)
					continue
				}
				require.Error(t, err)
				require.True(t, errors.IsType(err, world.ErrTypeInvalidLevel))
			}
		})
	}
}

func TestVerifyLevels(t *testing.T) {
	for _, s := range Strategies() {
		t.Run(s.Name(), func(t *testing.T) {
			g, err := NewLevelGenerator(testConfig(), s)
			require.NoError(t, err)
			require.NoError(t, g.GenerateLevels(context.Background()))
			require.NoError(t, g.VerifyLevels())
		})
	}

	g, err := NewLevelGenerator(testConfig(), FreeListMin)
	require.NoError(t, err)
	require.NoError(t, g.GenerateLevels(context.Background()))
	l := g.Levels()[0]
	require.NotEmpty(t, l.Rooms)
	l.AddRoom(l.Rooms[0])

	err = g.VerifyLevels()
	require.Error(t, err)
	require.True(t, errors.IsType(err, world.ErrTypeInvalidLevel))
}
