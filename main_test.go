package main

import (
	"context"
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/danielhams/Levgen-Algorithm-Benchmarks/pkg/game/generator"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	conf := defaultConfig()
	require.NoError(t, validateConfig(conf))

	genConf, err := generatorConfig(conf)
	require.NoError(t, err)
	require.Equal(t, generator.DefaultConfig().Width, genConf.Width)
	require.NotNil(t, genConf.Rand)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *config)
	}{
		{
			name:   "negative width",
			modify: func(c *config) { c.Width = -1 },
		},
		{
			name:   "negative seed",
			modify: func(c *config) { c.Seed = -5 },
		},
		{
			name:   "unknown format",
			modify: func(c *config) { c.Format = "bmp" },
		},
		{
			name: "preview in benchmark mode",
			modify: func(c *config) {
				c.Benchmark = true
				c.Preview = true
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			conf := defaultConfig()
			test.modify(&conf)
			err := validateConfig(conf)
			require.Error(t, err)
			require.True(t, errors.IsType(err, generator.ErrTypeInvalidConfig))
		})
	}
}

func TestGeneratorConfigRejects(t *testing.T) {
	conf := defaultConfig()
	conf.BigRoom = conf.SmallRoom
	_, err := generatorConfig(conf)
	require.True(t, errors.IsType(err, generator.ErrTypeInvalidConfig))

	conf = defaultConfig()
	conf.Rand = "mersenne"
	_, err = generatorConfig(conf)
	require.Error(t, err)
}

func TestGenerateRun(t *testing.T) {
	conf := defaultConfig()
	conf.Levels = 2
	genConf, err := generatorConfig(conf)
	require.NoError(t, err)

	run, err := generateRun(context.Background(), genConf, generator.FreeListMin, generator.MostRooms)
	require.NoError(t, err)
	require.Len(t, run.Levels, 2)
	require.NotNil(t, run.BestLevel())
	require.Len(t, run.Timings, 3)
	require.Equal(t, "generate", run.Timings[0].Name)
	require.Equal(t, "verify", run.Timings[1].Name)
}

func TestRunBenchmarkExports(t *testing.T) {
	conf := defaultConfig()
	conf.Levels = 1
	conf.Rooms = 10
	conf.Attempts = 200
	conf.Output = t.TempDir()
	conf.Format = "txt"
	genConf, err := generatorConfig(conf)
	require.NoError(t, err)

	require.NoError(t, runBenchmark(context.Background(), conf, genConf, generator.MostRooms))
}
