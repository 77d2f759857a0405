package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/rng"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/game/devtools"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/game/generator"
	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
)

type benchmarkResult struct {
	strategy string
	rand     string
	rooms    int
	best     int
	seconds  float64
}

// runBenchmark generates the configured levels with every strategy and every
// random generator, exporting the selected level of each combination when
// an output directory is set.
func runBenchmark(ctx context.Context, conf config, genConf generator.Config, metric generator.LevelMetric) error {
	if conf.Output != "" {
		if err := os.MkdirAll(conf.Output, 0o755); err != nil {
			return errors.New("creating benchmark output directory failed").
				WithTag("path", conf.Output).
				Wrap(err)
		}
	}

	timer := devtools.NewTimer()
	timer.MarkBoundary("begin")

	var results []benchmarkResult
	for _, strategy := range generator.Strategies() {
		for _, randName := range rng.Names() {
			rand, err := rng.ByName(randName)
			if err != nil {
				return err
			}
			c := genConf
			c.Rand = rand

			run, err := generateRun(ctx, c, strategy, metric)
			if err != nil {
				return err
			}
			name := fmt.Sprintf("%s %s", strategy.Name(), randName)
			timer.MarkBoundary(name)
			sectors := timer.Sectors()

			res := benchmarkResult{
				strategy: strategy.Name(),
				rand:     randName,
				best:     run.Best,
				seconds:  sectors[len(sectors)-1].Duration.Seconds(),
			}
			if l := run.BestLevel(); l != nil {
				res.rooms = l.NumRooms()
			}
			results = append(results, res)

			if conf.Output != "" {
				path := filepath.Join(conf.Output, fmt.Sprintf("%s-%s.%s", strategy.Name(), randName, conf.Format))
				if _, err := devtools.SaveRun(path, conf.Format, run); err != nil {
					return err
				}
				timer.MarkBoundary("save " + name)
			}

			logs.WithTag("strategy", res.strategy).
				WithTag("rand", res.rand).
				WithTag("rooms", res.rooms).
				WithTag("seconds", res.seconds).
				Info("benchmark step finished")
		}
	}

	timer.LogTimes("benchmark", true)
	printBenchmark(results)
	return nil
}

func printBenchmark(results []benchmarkResult) {
	color.OpBold.Println(gotext.Get("BENCHMARK_HEADING"))
	for _, r := range results {
		fmt.Printf(gotext.Get("BENCHMARK_RESULT")+"\n",
			color.FgCyan.Sprintf("%-22s", r.strategy),
			color.FgGray.Sprintf("%-6s", r.rand),
			r.rooms,
			r.seconds,
		)
	}
}
