package generator

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/freelist"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/rng"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/world"
)

// FreeListStrategy places rooms into windows taken from a free rectangle
// catalog. Each room sits one cell inside its window so that neighbouring
// rooms never touch. When the catalog runs dry, or MaxRoomAttempts requests
// in a row find nothing, the catalog is rebuilt from the occlusion buffer.
type FreeListStrategy struct {
	name     string
	selector freelist.Selector
}

func (s *FreeListStrategy) Name() string {
	return s.name
}

func (s *FreeListStrategy) NewFiller(conf Config) Filler {
	var splitter freelist.Splitter = freelist.SplitDominant{}
	if conf.Split == SplitPolicyAlternating {
		splitter = &freelist.SplitAlternating{}
	}

	return &freeListFiller{
		conf:     conf,
		selector: s.selector,
		alloc:    freelist.New(conf.Width, conf.Height, conf.MinUsableSize(), freelist.WithSplitter(splitter)),
		buffer:   world.NewOcclusionBuffer(conf.Width, conf.Height),
	}
}

type freeListFiller struct {
	conf     Config
	selector freelist.Selector
	alloc    *freelist.Allocator
	buffer   *world.OcclusionBuffer
}

func (f *freeListFiller) FillLevel(l *world.Level, seed *uint32) FillStats {
	var stats FillStats
	conf := f.conf

	f.buffer.ClearWithBorders()
	f.alloc.ResetToFullLevel()

	misses := 0
	placedSinceRecompact := 0
	for len(l.Rooms) < conf.NumRooms {
		if f.alloc.Count() == 0 || misses >= conf.MaxRoomAttempts {
			if stats.Recompactions > 0 && placedSinceRecompact == 0 {
				break
			}
			f.alloc.Recompact(f.buffer)
			stats.Recompactions++
			misses = 0
			placedSinceRecompact = 0
			if f.alloc.Count() == 0 {
				break
			}
		}

		w, h := randomSize(conf, seed)
		stats.Attempts++

		handle, ok := f.alloc.Find(w+2, h+2, f.selector)
		if !ok {
			stats.Failures++
			misses++
			continue
		}

		window := handle.Rect()
		room := world.Rect{
			X: window.X + 1 + rng.Intn(conf.Rand, seed, window.W-w-1),
			Y: window.Y + 1 + rng.Intn(conf.Rand, seed, window.H-h-1),
			W: w,
			H: h,
		}
		if err := f.alloc.Consume(handle, room); err != nil {
			logs.Warn(errors.New("consuming free rectangle failed").
				WithTag("window", window.String()).
				Wrap(err))
			break
		}
		f.buffer.Occlude(room)

		l.AddRoom(world.Room{Rect: room, Color: randomColor(conf.Rand, seed)})
		stats.Rooms++
		misses = 0
		placedSinceRecompact++
	}

	l.FillTiles()
	return stats
}
