package generator

import (
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/rng"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/spatial"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/world"
)

// CollisionTester tracks the rooms of the level being filled and rejects
// candidates that would overlap or touch one of them.
type CollisionTester interface {
	Reset()
	Collides(r world.Rect) bool
	Add(r world.Rect)
}

// indexTester answers collisions from a spatial index.
type indexTester struct {
	index spatial.Index
}

func newSimpleTester(conf Config) CollisionTester {
	return &indexTester{index: spatial.NewLinear()}
}

func newQuadTreeTester(conf Config) CollisionTester {
	return &indexTester{index: spatial.NewQuadTree(conf.TreeDepth, conf.Width, conf.Height)}
}

func (t *indexTester) Reset() {
	t.index.Clear()
}

func (t *indexTester) Collides(r world.Rect) bool {
	return t.index.QueryCollision(r)
}

func (t *indexTester) Add(r world.Rect) {
	t.index.Insert(r)
}

// occlusionTester answers collisions by looking at the cells around the
// candidate.
type occlusionTester struct {
	buffer *world.OcclusionBuffer
}

func newOcclusionTester(conf Config) CollisionTester {
	return &occlusionTester{buffer: world.NewOcclusionBuffer(conf.Width, conf.Height)}
}

func (t *occlusionTester) Reset() {
	t.buffer.Clear()
}

func (t *occlusionTester) Collides(r world.Rect) bool {
	return t.buffer.IsExpandedOccluded(r)
}

func (t *occlusionTester) Add(r world.Rect) {
	t.buffer.Occlude(r)
}

// BruteForceStrategy drops randomly sized rooms at random positions and
// keeps those that do not collide. It gives up after MaxRoomAttempts
// consecutive collisions.
type BruteForceStrategy struct {
	name   string
	tester func(Config) CollisionTester
}

func (s *BruteForceStrategy) Name() string {
	return s.name
}

func (s *BruteForceStrategy) NewFiller(conf Config) Filler {
	return &bruteForceFiller{
		conf:   conf,
		tester: s.tester(conf),
	}
}

type bruteForceFiller struct {
	conf   Config
	tester CollisionTester
}

func (f *bruteForceFiller) FillLevel(l *world.Level, seed *uint32) FillStats {
	var stats FillStats
	conf := f.conf
	f.tester.Reset()

	misses := 0
	for len(l.Rooms) < conf.NumRooms {
		w, h := randomSize(conf, seed)
		room := world.Rect{
			X: rng.Intn(conf.Rand, seed, conf.Width-1-w) + 1,
			Y: rng.Intn(conf.Rand, seed, conf.Height-1-h) + 1,
			W: w,
			H: h,
		}
		stats.Attempts++

		if f.tester.Collides(room) {
			stats.Failures++
			misses++
			if misses >= conf.MaxRoomAttempts {
				break
			}
			continue
		}

		l.AddRoom(world.Room{Rect: room, Color: randomColor(conf.Rand, seed)})
		f.tester.Add(room)
		stats.Rooms++
		misses = 0
	}

	l.FillTiles()
	return stats
}
