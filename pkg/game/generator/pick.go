package generator

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/world"
)

// LevelMetric ranks generated levels.
type LevelMetric interface {
	Name() string
	// Better reports whether candidate beats best.
	Better(candidate, best *world.Level) bool
}

// Available metrics
var (
	MostRooms  LevelMetric = mostRooms{}
	LeastSpace LevelMetric = leastSpace{}
)

// Metrics returns every metric in a stable order.
func Metrics() []LevelMetric {
	return []LevelMetric{MostRooms, LeastSpace}
}

// MetricByName returns the metric with the given name.
func MetricByName(name string) (LevelMetric, error) {
	for _, m := range Metrics() {
		if m.Name() == name {
			return m, nil
		}
	}
	return nil, errors.New("unknown level metric").
		WithType(ErrTypeUnknownMetric).
		WithTag("name", name)
}

type mostRooms struct{}

func (mostRooms) Name() string {
	return "rooms"
}

func (mostRooms) Better(candidate, best *world.Level) bool {
	return candidate.NumRooms() > best.NumRooms()
}

type leastSpace struct{}

func (leastSpace) Name() string {
	return "space"
}

func (leastSpace) Better(candidate, best *world.Level) bool {
	return candidate.EmptyTiles() < best.EmptyTiles()
}

// PickLevel returns the index of the best level under m. Ties keep the
// earlier level. It returns -1 for an empty slice.
func PickLevel(levels []*world.Level, m LevelMetric) int {
	best := -1
	for i, l := range levels {
		if l == nil {
			continue
		}
		if best == -1 || m.Better(l, levels[best]) {
			best = i
		}
	}
	return best
}
