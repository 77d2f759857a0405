// Package generator fills levels with rooms. Each placement strategy is a
// Strategy value that builds per worker Fillers; LevelGenerator spreads
// levels across workers and picks the best result.
package generator

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/freelist"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/rng"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/world"
)

// FillStats counts what happened while filling one or more levels.
type FillStats struct {
	Rooms         int `json:"rooms"`
	Attempts      int `json:"attempts"`
	Failures      int `json:"failures"`
	Recompactions int `json:"recompactions"`
}

// Add accumulates o into s.
func (s *FillStats) Add(o FillStats) {
	s.Rooms += o.Rooms
	s.Attempts += o.Attempts
	s.Failures += o.Failures
	s.Recompactions += o.Recompactions
}

// Filler places rooms into levels. A Filler owns mutable scratch state and
// must only be used by one goroutine.
type Filler interface {
	FillLevel(l *world.Level, seed *uint32) FillStats
}

// Strategy is a placement algorithm.
type Strategy interface {
	Name() string
	NewFiller(conf Config) Filler
}

// Available strategies
var (
	BruteForceSimple    = &BruteForceStrategy{name: "bruteforce-simple", tester: newSimpleTester}
	BruteForceQuadTree  = &BruteForceStrategy{name: "bruteforce-quadtree", tester: newQuadTreeTester}
	BruteForceOcclusion = &BruteForceStrategy{name: "bruteforce-occlusion", tester: newOcclusionTester}
	FreeListMin         = &FreeListStrategy{name: "freelist-min", selector: freelist.MinSize}
	FreeListMax         = &FreeListStrategy{name: "freelist-max", selector: freelist.MaxSize}
)

// DefaultStrategy is the strategy used when none is configured.
var DefaultStrategy Strategy = FreeListMin

// Strategies returns every strategy in a stable order.
func Strategies() []Strategy {
	return []Strategy{
		BruteForceSimple,
		BruteForceQuadTree,
		BruteForceOcclusion,
		FreeListMin,
		FreeListMax,
	}
}

// StrategyByName returns the strategy with the given name.
func StrategyByName(name string) (Strategy, error) {
	for _, s := range Strategies() {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, errors.New("unknown strategy").
		WithType(ErrTypeUnknownStrategy).
		WithTag("name", name)
}

func randomSize(conf Config, seed *uint32) (uint32, uint32) {
	v := conf.RoomSizeVariance()
	w := rng.Intn(conf.Rand, seed, v) + conf.MinRoomSize
	h := rng.Intn(conf.Rand, seed, v) + conf.MinRoomSize
	return w, h
}

func randomColor(r rng.Generator, seed *uint32) world.RGB {
	return world.RGB{
		uint8(64 + rng.Intn(r, seed, 128)),
		uint8(64 + rng.Intn(r, seed, 128)),
		uint8(64 + rng.Intn(r, seed, 128)),
	}
}
