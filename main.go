package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"reflect"
	"syscall"
	"time"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/engine/rng"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/game/devtools"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/game/generator"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/game/renderer"
	ebitenrenderer "github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/game/renderer/ebiten"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/game/renderer/tui"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/game/state"
	"github.com/leonelquinteros/gotext"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/encoding/json"
)

var (
	// The levgen version number. Set at build.
	version = "v0.1.0"

	infoGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name:        "levgen_info",
		Help:        "Level generator information.",
		ConstLabels: prometheus.Labels{"version": version},
	})
)

// Keeps the config field names readable by the cli package when the binary
// is obfuscated.
var _ = reflect.TypeOf(config{})

type config struct {
	Width       int    `cli:""        env:"LEVGEN_WIDTH"        help:"Level width in cells (3<=N<=2000)."`
	Height      int    `cli:""        env:"LEVGEN_HEIGHT"       help:"Level height in cells (3<=N<=2000)."`
	SmallRoom   int    `cli:""        env:"LEVGEN_SMALL_ROOM"   help:"Minimum room size (1<=N<=50)."`
	BigRoom     int    `cli:""        env:"LEVGEN_BIG_ROOM"     help:"Maximum room size, smaller than both level dimensions."`
	Levels      int    `cli:""        env:"LEVGEN_LEVELS"       help:"Number of levels to generate (1<=N<=5000)."`
	Rooms       int    `cli:""        env:"LEVGEN_ROOMS"        help:"Maximum number of rooms per level (1<=N<=50000)."`
	Threads     int    `cli:""        env:"LEVGEN_THREADS"      help:"Number of workers, at most the number of levels."`
	Seed        int    `cli:""        env:"LEVGEN_SEED"         help:"Random number seed."`
	Strategy    string `cli:""        env:"LEVGEN_STRATEGY"     help:"Placement strategy (bruteforce-simple|bruteforce-quadtree|bruteforce-occlusion|freelist-min|freelist-max)."`
	Metric      string `cli:""        env:"LEVGEN_METRIC"       help:"Level selection metric (rooms|space)."`
	Rand        string `cli:""        env:"LEVGEN_RAND"         help:"Random number generator (crand|xor)."`
	Output      string `cli:""        env:"LEVGEN_OUTPUT"       help:"Export path of the selected level. A directory in benchmark mode."`
	Format      string `cli:""        env:"LEVGEN_FORMAT"       help:"Export format (ppm|png|json|txt)."`
	Preview     bool   `cli:""        env:"LEVGEN_PREVIEW"      help:"Print a coloured preview of the selected level."`
	View        bool   `cli:""        env:"LEVGEN_VIEW"         help:"Open the selected level in a window."`
	Benchmark   bool   `cli:""        env:"LEVGEN_BENCHMARK"    help:"Run every strategy with every random generator."`
	MetricsAddr string `cli:""        env:"LEVGEN_METRICS_ADDR" help:"Serve Prometheus metrics on this address until interrupted."`
	LogLevel    string `cli:""        env:"LEVGEN_LOG_LEVEL"    help:"Log level (debug|info|warning|error)."`
	LogIndent   bool   `cli:""        env:"LEVGEN_LOG_INDENT"   help:"Indent logs."`
	Attempts    int    `cli:",hidden" env:"LEVGEN_ATTEMPTS"     help:"Consecutive placement misses before a level is considered full."`
	TreeDepth   int    `cli:",hidden" env:"LEVGEN_TREE_DEPTH"   help:"Depth of the collision quad-tree."`
	Split       string `cli:",hidden" env:"LEVGEN_SPLIT"        help:"Free window split policy (dominant|alternating)."`
	LocaleDir   string `cli:",hidden" env:"LEVGEN_LOCALE_DIR"   help:"Directory holding the translations."`
	Language    string `cli:",hidden" env:"LEVGEN_LANGUAGE"     help:"Language of console messages."`
	Version     bool   `cli:""        env:"-"                   help:"Show version."`
	Help        bool   `cli:""        env:"-"                   help:"Show help."`
}

func defaultConfig() config {
	d := generator.DefaultConfig()
	return config{
		Width:     int(d.Width),
		Height:    int(d.Height),
		SmallRoom: int(d.MinRoomSize),
		BigRoom:   int(d.MaxRoomSize),
		Levels:    d.NumLevels,
		Rooms:     d.NumRooms,
		Threads:   d.NumWorkers,
		Seed:      int(d.Seed),
		Strategy:  generator.DefaultStrategy.Name(),
		Metric:    generator.MostRooms.Name(),
		Rand:      "crand",
		Format:    devtools.FormatPPM,
		LogLevel:  logs.InfoLevel.String(),
		Attempts:  d.MaxRoomAttempts,
		TreeDepth: d.TreeDepth,
		Split:     d.Split,
		LocaleDir: "locales",
		Language:  "en_GB",
	}
}

func main() {
	conf := defaultConfig()

	infoGauge.Set(1)

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cli.Register().
		Help("Generates room filled levels and benchmarks placement strategies.").
		Options(&conf)
	cli.Load()

	if conf.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	if conf.LogIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}
	errors.Encoder = json.Marshal

	gotext.Configure(conf.LocaleDir, conf.Language, "default")

	if err := validateConfig(conf); err != nil {
		logs.Fatal(err)
	}

	genConf, err := generatorConfig(conf)
	if err != nil {
		logs.Fatal(err)
	}

	metric, err := generator.MetricByName(conf.Metric)
	if err != nil {
		logs.Fatal(err)
	}

	var metricsServer *http.Server
	if conf.MetricsAddr != "" {
		metricsServer = serveMetrics(conf.MetricsAddr)
	}

	logs.WithTag("version", version).
		WithTag("log_level", conf.LogLevel).
		WithTag("config", genConf).
		Info("starting level generator")

	if conf.Benchmark {
		err = runBenchmark(ctx, conf, genConf, metric)
	} else {
		err = runSingle(ctx, conf, genConf, metric)
	}
	if err != nil {
		logs.Fatal(err)
	}

	if metricsServer != nil {
		<-ctx.Done()
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelShutdown()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logs.Warn(errors.New("metrics server shutdown failed").Wrap(err))
		}
	}
}

func validateConfig(conf config) error {
	for name, v := range map[string]int{
		"width":      conf.Width,
		"height":     conf.Height,
		"small-room": conf.SmallRoom,
		"big-room":   conf.BigRoom,
		"seed":       conf.Seed,
	} {
		if v < 0 || v > 1<<31-1 {
			return errors.New("option out of range").
				WithType(generator.ErrTypeInvalidConfig).
				WithTag("option", name).
				WithTag("value", v)
		}
	}

	if conf.Preview && conf.Benchmark || conf.View && conf.Benchmark {
		return errors.New("preview and view are not available in benchmark mode").
			WithType(generator.ErrTypeInvalidConfig)
	}

	if !isFormat(conf.Format) {
		return errors.New("unknown export format").
			WithType(generator.ErrTypeInvalidConfig).
			WithTag("format", conf.Format)
	}
	return nil
}

func isFormat(format string) bool {
	for _, f := range devtools.Formats() {
		if f == format {
			return true
		}
	}
	return false
}

// generatorConfig converts the options into a validated generator
// configuration.
func generatorConfig(conf config) (generator.Config, error) {
	rand, err := rng.ByName(conf.Rand)
	if err != nil {
		return generator.Config{}, err
	}

	c := generator.Config{
		Seed:            uint32(conf.Seed),
		Width:           uint32(conf.Width),
		Height:          uint32(conf.Height),
		MinRoomSize:     uint32(conf.SmallRoom),
		MaxRoomSize:     uint32(conf.BigRoom),
		NumLevels:       conf.Levels,
		NumRooms:        conf.Rooms,
		MaxRoomAttempts: conf.Attempts,
		NumWorkers:      conf.Threads,
		TreeDepth:       conf.TreeDepth,
		Split:           conf.Split,
		Rand:            rand,
	}
	if err := c.Validate(); err != nil {
		return generator.Config{}, err
	}
	return c, nil
}

func serveMetrics(addr string) *http.Server {
	var admin http.ServeMux
	admin.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: addr, Handler: &admin}
	go func() {
		logs.WithTag("addr", addr).Info("serving metrics")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logs.Warn(errors.New("metrics server failed").
				WithTag("addr", addr).
				Wrap(err))
		}
	}()
	return srv
}

// runSingle generates the levels of one strategy, exports and renders the
// selected level.
func runSingle(ctx context.Context, conf config, genConf generator.Config, metric generator.LevelMetric) error {
	strategy, err := generator.StrategyByName(conf.Strategy)
	if err != nil {
		return err
	}

	run, err := generateRun(ctx, genConf, strategy, metric)
	if err != nil {
		return err
	}

	if conf.Output != "" {
		path, err := devtools.SaveRun(conf.Output, conf.Format, run)
		if err != nil {
			return err
		}
		run.AddMessage(fmt.Sprintf(gotext.Get("EXPORTED"), path))
		logs.WithTag("run_id", run.ID).
			WithTag("path", path).
			WithTag("format", conf.Format).
			Info("level exported")
	}

	if conf.Preview {
		renderer.SetRenderer(tui.New())
		renderer.Init()
		if err := renderer.RenderRun(run); err != nil {
			return err
		}
	}

	if conf.View {
		renderer.SetRenderer(ebitenrenderer.New())
		renderer.Init()
		if err := renderer.RenderRun(run); err != nil {
			return err
		}
	}
	return nil
}

// generateRun runs one generator and selects the best level, recording the
// phase timings in the returned run.
func generateRun(ctx context.Context, genConf generator.Config, strategy generator.Strategy, metric generator.LevelMetric) (*state.Run, error) {
	run := state.NewRun(strategy.Name(), genConf)
	timer := devtools.NewTimer()
	timer.MarkBoundary("begin")

	g, err := generator.NewLevelGenerator(genConf, strategy)
	if err != nil {
		return nil, err
	}
	if err := g.GenerateLevels(ctx); err != nil {
		return nil, errors.New("generating levels failed").
			WithTag("run_id", run.ID).
			WithTag("strategy", strategy.Name()).
			Wrap(err)
	}
	timer.MarkBoundary("generate")

	if err := g.VerifyLevels(); err != nil {
		return nil, err
	}
	timer.MarkBoundary("verify")

	run.FromGenerator(g, metric)
	timer.MarkBoundary("pick")

	for _, s := range timer.Sectors() {
		run.AddTiming(s.Name, s.Duration)
	}
	timer.LogTimes(run.ID, true)

	logs.WithTag("run_id", run.ID).
		WithTag("strategy", run.Strategy).
		WithTag("best", run.Best).
		WithTag("rooms", run.Stats.Rooms).
		WithTag("attempts", run.Stats.Attempts).
		WithTag("recompactions", run.Stats.Recompactions).
		Info("levels generated")
	return run, nil
}
