package generator

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/spatial"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/world"
)

// VerifyLevel checks that every room of l lies inside the level and that no
// two rooms overlap or touch. Neighbours are looked up in a quad-tree of the
// given depth.
func VerifyLevel(l *world.Level, treeDepth int) error {
	if err := l.Validate(); err != nil {
		return err
	}

	tree := spatial.NewQuadTree(treeDepth, l.Width, l.Height)
	for _, r := range l.Rooms {
		tree.Insert(r.Rect)
	}

	for i, r := range l.Rooms {
		for _, j := range tree.Overlapping(r.Rect) {
			if j == i {
				continue
			}
			return errors.New("rooms collide").
				WithType(world.ErrTypeInvalidLevel).
				WithTag("room", i).
				WithTag("other", j).
				WithTag("rect", r.Rect.String()).
				WithTag("other_rect", l.Rooms[j].Rect.String())
		}
	}
	return nil
}

// VerifyLevels runs VerifyLevel on every generated level.
func (g *LevelGenerator) VerifyLevels() error {
	for i, l := range g.levels {
		if err := VerifyLevel(l, g.conf.TreeDepth); err != nil {
			return errors.New("generated level is invalid").
				WithType(world.ErrTypeInvalidLevel).
				WithTag("strategy", g.strategy.Name()).
				WithTag("level", i).
				Wrap(err)
		}
	}
	return nil
}
