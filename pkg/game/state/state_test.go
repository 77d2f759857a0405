package state

import (
	"context"
	"testing"
	"time"

	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/game/generator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewRun(t *testing.T) {
	r := NewRun("freelist-min", generator.DefaultConfig())
	_, err := uuid.Parse(r.ID)
	require.NoError(t, err)
	require.Nil(t, r.BestLevel())
	require.NotEqual(t, r.ID, NewRun("freelist-min", generator.DefaultConfig()).ID)
}

func TestRunFromGenerator(t *testing.T) {
	conf := generator.DefaultConfig()
	conf.NumLevels = 3
	conf.NumRooms = 20

	g, err := generator.NewLevelGenerator(conf, generator.BruteForceOcclusion)
	require.NoError(t, err)
	require.NoError(t, g.GenerateLevels(context.Background()))

	r := NewRun(g.Strategy().Name(), conf)
	r.FromGenerator(g, generator.MostRooms)
	r.AddTiming("generate", time.Millisecond)

	require.Equal(t, "rooms", r.Metric)
	require.Len(t, r.Levels, 3)
	require.NotNil(t, r.BestLevel())
	require.Equal(t, g.Levels()[g.PickLevel(generator.MostRooms)], r.BestLevel())
	require.Equal(t, []Timing{{Name: "generate", Duration: time.Millisecond}}, r.Timings)
}

func TestRunMessagesAreBounded(t *testing.T) {
	r := NewRun("x", generator.DefaultConfig())
	for i := 0; i < 30; i++ {
		r.AddMessage("m")
	}
	require.Len(t, r.Messages, 20)
}
