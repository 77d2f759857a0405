// Package state holds the result of a generation run as it is handed to
// renderers and exporters.
package state

import (
	"time"

	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/world"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/game/generator"
	"github.com/google/uuid"
)

// Timing is the duration of one named phase of a run.
type Timing struct {
	Name     string        `json:"name"`
	Duration time.Duration `json:"duration"`
}

// Run is one generation run: its configuration, levels and outcome.
type Run struct {
	ID       string              `json:"id"`
	Strategy string              `json:"strategy"`
	Metric   string              `json:"metric"`
	Config   generator.Config    `json:"config"`
	Levels   []*world.Level      `json:"-"`
	Best     int                 `json:"best"`
	Stats    generator.FillStats `json:"stats"`
	Timings  []Timing            `json:"timings"`
	Messages []string            `json:"messages,omitempty"`
}

// NewRun creates a run with a fresh identifier and no selected level.
func NewRun(strategy string, conf generator.Config) *Run {
	return &Run{
		ID:       uuid.NewString(),
		Strategy: strategy,
		Config:   conf,
		Best:     -1,
	}
}

// BestLevel returns the selected level, or nil when none was selected.
func (r *Run) BestLevel() *world.Level {
	if r.Best < 0 || r.Best >= len(r.Levels) {
		return nil
	}
	return r.Levels[r.Best]
}

// AddTiming records the duration of a phase.
func (r *Run) AddTiming(name string, d time.Duration) {
	r.Timings = append(r.Timings, Timing{Name: name, Duration: d})
}

// AddMessage appends a message to the run log, keeping the most recent
// maxMessages.
func (r *Run) AddMessage(msg string) {
	const maxMessages = 20
	r.Messages = append(r.Messages, msg)
	if len(r.Messages) > maxMessages {
		r.Messages = r.Messages[len(r.Messages)-maxMessages:]
	}
}

// FromGenerator copies the levels and statistics of a finished generator
// and selects the best level under m.
func (r *Run) FromGenerator(g *generator.LevelGenerator, m generator.LevelMetric) {
	r.Levels = g.Levels()
	r.Stats = g.Stats()
	r.Metric = m.Name()
	r.Best = g.PickLevel(m)
}
