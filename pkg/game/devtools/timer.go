package devtools

import (
	"time"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/game/state"
)

type boundary struct {
	name string
	at   time.Time
}

// Timer splits elapsed time into named sectors. The first boundary starts
// the clock; each later boundary closes the sector it names.
type Timer struct {
	now        func() time.Time
	boundaries []boundary
}

// NewTimer creates a timer using the wall clock.
func NewTimer() *Timer {
	return &Timer{now: time.Now}
}

// MarkBoundary records a boundary.
func (t *Timer) MarkBoundary(name string) {
	t.boundaries = append(t.boundaries, boundary{name: name, at: t.now()})
}

// Sectors returns the duration of every closed sector.
func (t *Timer) Sectors() []state.Timing {
	if len(t.boundaries) < 2 {
		return nil
	}
	sectors := make([]state.Timing, 0, len(t.boundaries)-1)
	for i := 1; i < len(t.boundaries); i++ {
		sectors = append(sectors, state.Timing{
			Name:     t.boundaries[i].name,
			Duration: t.boundaries[i].at.Sub(t.boundaries[i-1].at),
		})
	}
	return sectors
}

// Total returns the time between the first and last boundary.
func (t *Timer) Total() time.Duration {
	if len(t.boundaries) < 2 {
		return 0
	}
	return t.boundaries[len(t.boundaries)-1].at.Sub(t.boundaries[0].at)
}

// LogTimes logs the total and, when sectors is set, every sector.
func (t *Timer) LogTimes(prefix string, sectors bool) {
	if sectors {
		for i, s := range t.Sectors() {
			logs.WithTag("timer", prefix).
				WithTag("sector", i+1).
				WithTag("name", s.Name).
				WithTag("seconds", s.Duration.Seconds()).
				Info("sector time")
		}
	}
	logs.WithTag("timer", prefix).
		WithTag("seconds", t.Total().Seconds()).
		Info("total time")
}
