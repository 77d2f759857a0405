package generator

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const strategyLabel = "strategy"

var (
	levelsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "levgen_levels_generated",
		Help: "The number of levels filled.",
	}, []string{
		strategyLabel,
	})

	roomsPlaced = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "levgen_rooms_placed",
		Help: "The number of rooms placed.",
	}, []string{
		strategyLabel,
	})

	placementAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "levgen_placement_attempts",
		Help: "The number of room placements tried.",
	}, []string{
		strategyLabel,
	})

	placementFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "levgen_placement_failures",
		Help: "The number of room placements that found no space.",
	}, []string{
		strategyLabel,
	})

	recompactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "levgen_recompactions",
		Help: "The number of free rectangle catalog rebuilds.",
	}, []string{
		strategyLabel,
	})

	levelFillLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "levgen_level_fill_seconds",
		Help:    "The time to fill a level.",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	}, []string{
		strategyLabel,
	})
)

func instrumentFill(strategy string, s FillStats, start time.Time) {
	labels := prometheus.Labels{strategyLabel: strategy}

	levelFillLatency.With(labels).Observe(time.Since(start).Seconds())
	levelsGenerated.With(labels).Inc()
	roomsPlaced.With(labels).Add(float64(s.Rooms))
	placementAttempts.With(labels).Add(float64(s.Attempts))
	placementFailures.With(labels).Add(float64(s.Failures))
	recompactions.With(labels).Add(float64(s.Recompactions))
}
