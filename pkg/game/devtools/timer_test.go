package devtools

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fakeClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func TestTimerSectors(t *testing.T) {
	timer := &Timer{now: fakeClock(time.Second)}
	require.Empty(t, timer.Sectors())
	require.Zero(t, timer.Total())

	timer.MarkBoundary("start")
	timer.MarkBoundary("generate")
	timer.MarkBoundary("pick")

	sectors := timer.Sectors()
	require.Len(t, sectors, 2)
	require.Equal(t, "generate", sectors[0].Name)
	require.Equal(t, time.Second, sectors[0].Duration)
	require.Equal(t, "pick", sectors[1].Name)
	require.Equal(t, 2*time.Second, timer.Total())

	timer.LogTimes("test", true)
}
