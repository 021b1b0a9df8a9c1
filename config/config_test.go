package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazesolver/config"
	"github.com/katalvlaran/mazesolver/gridgraph"
	"github.com/katalvlaran/mazesolver/imageio"
	"github.com/katalvlaran/mazesolver/traverse"
)

func newViper(kv map[string]any) *viper.Viper {
	v := viper.New()
	config.SetDefaults(v)
	for k, val := range kv {
		v.Set(k, val)
	}

	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(newViper(map[string]any{
		config.KeyStart: "2,0",
		config.KeyExit:  "1801,1794-1796;1801,1798-1799",
	}))
	require.NoError(t, err)

	assert.Equal(t, "maze.png", cfg.Input)
	assert.Equal(t, "solved_maze.png", cfg.Output)
	assert.Equal(t, gridgraph.Coord{X: 2, Y: 0}, cfg.Start)
	assert.Equal(t, []traverse.ExitRegion{
		{Min: gridgraph.Coord{X: 1801, Y: 1794}, Max: gridgraph.Coord{X: 1801, Y: 1796}},
		{Min: gridgraph.Coord{X: 1801, Y: 1798}, Max: gridgraph.Coord{X: 1801, Y: 1799}},
	}, cfg.Exits)
	assert.Equal(t, traverse.DFS, cfg.Mode)
	assert.False(t, cfg.SaveFrames)
	assert.Equal(t, config.DefaultDFSFrameInterval, cfg.FrameInterval)
	assert.Equal(t, "images", cfg.FrameDir)
	assert.Equal(t, imageio.PNG, cfg.FrameFormat)
	assert.Equal(t, imageio.DefaultCutoff, cfg.Threshold)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FrameIntervalFollowsMode(t *testing.T) {
	cfg, err := config.Load(newViper(map[string]any{
		config.KeyStart: "0,0",
		config.KeyExit:  "3,3",
		config.KeyMode:  "BFS",
	}))
	require.NoError(t, err)
	assert.Equal(t, traverse.BFS, cfg.Mode)
	assert.Equal(t, config.DefaultBFSFrameInterval, cfg.FrameInterval)

	cfg, err = config.Load(newViper(map[string]any{
		config.KeyStart:         "0,0",
		config.KeyExit:          "3,3",
		config.KeyMode:          "bfs",
		config.KeyFrameInterval: 50,
	}))
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.FrameInterval)
}

func TestLoad_Invalid(t *testing.T) {
	base := func() map[string]any {
		return map[string]any{config.KeyStart: "0,0", config.KeyExit: "1,1"}
	}
	cases := []struct {
		name string
		key  string
		val  any
	}{
		{"MissingStart", config.KeyStart, ""},
		{"MissingExit", config.KeyExit, ""},
		{"BadStart", config.KeyStart, "a,b"},
		{"NegativeStart", config.KeyStart, "-1,0"},
		{"BadExit", config.KeyExit, "7"},
		{"ReversedExit", config.KeyExit, "5,9-3"},
		{"BadMode", config.KeyMode, "astar"},
		{"NegativeInterval", config.KeyFrameInterval, -5},
		{"Threshold", config.KeyThreshold, 300},
		{"OutputFormat", config.KeyOutput, "solved.jpg"},
		{"FrameFormat", config.KeyFrameFormat, "gif"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kv := base()
			kv[tc.key] = tc.val
			_, err := config.Load(newViper(kv))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazesolver.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"input: maze0.png\nstart: \"2,0\"\nexit: \"10,3-5\"\nmode: bfs\nsave-frames: true\n"), 0o644))

	v := newViper(nil)
	require.NoError(t, config.ReadFile(v, path))
	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, "maze0.png", cfg.Input)
	assert.True(t, cfg.SaveFrames)
	assert.Equal(t, traverse.BFS, cfg.Mode)
	assert.Equal(t, []traverse.ExitRegion{{
		Min: gridgraph.Coord{X: 10, Y: 3}, Max: gridgraph.Coord{X: 10, Y: 5},
	}}, cfg.Exits)

	assert.Error(t, config.ReadFile(viper.New(), filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestBindEnv(t *testing.T) {
	t.Setenv("MAZESOLVER_FRAME_INTERVAL", "123")
	t.Setenv("MAZESOLVER_START", "4,5")

	v := newViper(map[string]any{config.KeyExit: "9,9"})
	config.BindEnv(v)
	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, 123, cfg.FrameInterval)
	assert.Equal(t, gridgraph.Coord{X: 4, Y: 5}, cfg.Start)
}

func TestParseExits_TwoAxisRegion(t *testing.T) {
	got, err := config.ParseExits(" 0-4,0 ; 9 , 2-3 ")
	require.NoError(t, err)
	assert.Equal(t, []traverse.ExitRegion{
		{Min: gridgraph.Coord{X: 0, Y: 0}, Max: gridgraph.Coord{X: 4, Y: 0}},
		{Min: gridgraph.Coord{X: 9, Y: 2}, Max: gridgraph.Coord{X: 9, Y: 3}},
	}, got)

	_, err = config.ParseExits(";;")
	assert.Error(t, err)
}
