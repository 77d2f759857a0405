package generator

import (
	"context"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/world"
	"golang.org/x/sync/errgroup"
)

// partition is a contiguous range of level indexes handled by one worker.
type partition struct {
	start int
	end   int
}

// partitionLevels splits numLevels into numWorkers contiguous ranges. When
// the levels do not divide evenly the first workers take one extra.
func partitionLevels(numLevels, numWorkers int) []partition {
	parts := make([]partition, numWorkers)
	base, extra := numLevels/numWorkers, numLevels%numWorkers
	start := 0
	for i := range parts {
		n := base
		if i < extra {
			n++
		}
		parts[i] = partition{start: start, end: start + n}
		start += n
	}
	return parts
}

// workerSeed derives the seed of a worker so that workers draw distinct
// sequences from one configured seed.
func workerSeed(seed uint32, worker int) uint32 {
	n := uint32(worker + 1)
	return seed * n * n
}

// LevelGenerator generates a batch of levels with one strategy.
type LevelGenerator struct {
	conf     Config
	strategy Strategy
	levels   []*world.Level
	stats    FillStats
}

// NewLevelGenerator validates the configuration and creates a generator.
func NewLevelGenerator(conf Config, strategy Strategy) (*LevelGenerator, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if strategy == nil {
		strategy = DefaultStrategy
	}
	return &LevelGenerator{
		conf:     conf,
		strategy: strategy,
	}, nil
}

// Strategy returns the strategy the generator fills levels with.
func (g *LevelGenerator) Strategy() Strategy {
	return g.strategy
}

// GenerateLevels fills NumLevels fresh levels using NumWorkers goroutines.
// Each worker owns its Filler and seed. Cancellation is checked between
// levels.
func (g *LevelGenerator) GenerateLevels(ctx context.Context) error {
	conf := g.conf
	levels := make([]*world.Level, conf.NumLevels)
	stats := make([]FillStats, conf.NumWorkers)
	name := g.strategy.Name()

	eg, ctx := errgroup.WithContext(ctx)
	for i, p := range partitionLevels(conf.NumLevels, conf.NumWorkers) {
		eg.Go(func() error {
			seed := workerSeed(conf.Seed, i)
			filler := g.strategy.NewFiller(conf)

			logs.WithTag("strategy", name).
				WithTag("worker", i).
				WithTag("levels", p.end-p.start).
				Debug("worker started")

			for li := p.start; li < p.end; li++ {
				if err := ctx.Err(); err != nil {
					return errors.New("level generation interrupted").
						WithTag("strategy", name).
						WithTag("level", li).
						Wrap(err)
				}

				l := world.NewLevel(conf.Width, conf.Height)
				start := time.Now()
				s := filler.FillLevel(l, &seed)
				instrumentFill(name, s, start)

				levels[li] = l
				stats[i].Add(s)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	g.levels = levels
	g.stats = FillStats{}
	for _, s := range stats {
		g.stats.Add(s)
	}
	return nil
}

// Levels returns the levels of the last successful GenerateLevels call.
func (g *LevelGenerator) Levels() []*world.Level {
	return g.levels
}

// Stats returns the fill statistics summed over every level.
func (g *LevelGenerator) Stats() FillStats {
	return g.stats
}

// PickLevel returns the index of the best level under m, or -1 when no
// levels were generated.
func (g *LevelGenerator) PickLevel(m LevelMetric) int {
	return PickLevel(g.levels, m)
}
