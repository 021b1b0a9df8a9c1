package main

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazesolver/config"
	"github.com/katalvlaran/mazesolver/imageio"
)

// writeCorridor stores a w×1 open corridor with walls at the given x positions.
func writeCorridor(t *testing.T, dir string, w int, walls ...int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, 1))
	for x := 0; x < w; x++ {
		img.SetRGBA(x, 0, imageio.Open)
	}
	for _, x := range walls {
		img.SetRGBA(x, 0, color.RGBA{A: 255})
	}
	path := filepath.Join(dir, "maze.png")
	require.NoError(t, imageio.Save(path, img))

	return path
}

func TestExecute_Solved(t *testing.T) {
	dir := t.TempDir()
	in := writeCorridor(t, dir, 6)
	out := filepath.Join(dir, "solved.png")
	metricsPath := filepath.Join(dir, "metrics.prom")

	code := execute([]string{
		"-i", in, "-o", out, "--start", "0,0", "--exit", "5,0", "--mode", "bfs",
		"--metrics-path", metricsPath, "--log-level", "error",
	})
	require.Equal(t, exitOK, code)

	img, _, err := imageio.Load(out)
	require.NoError(t, err)
	for x := 0; x < 6; x++ {
		assert.Equal(t, color.RGBA{R: 255, A: 255}, color.RGBAModel.Convert(img.At(x, 0)))
	}

	raw, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), `outcome="found"`))
}

func TestExecute_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	in := writeCorridor(t, dir, 5, 2)
	out := filepath.Join(dir, "solved.png")

	cases := []struct {
		name string
		args []string
		want int
	}{
		{"NotFound", []string{"-i", in, "-o", out, "-s", "0,0", "-e", "4,0"}, exitNotFound},
		{"MissingStart", []string{"-i", in, "-o", out, "-e", "4,0"}, exitFailure},
		{"OutOfBounds", []string{"-i", in, "-o", out, "-s", "0,0", "-e", "9,0"}, exitFailure},
		{"MissingInput", []string{"-i", filepath.Join(dir, "nope.png"), "-s", "0,0", "-e", "1,0"}, exitFailure},
		{"UnexpectedArg", []string{"extra"}, exitFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, execute(append(tc.args, "--log-level", "error")))
		})
	}
}

func TestExecute_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := writeCorridor(t, dir, 4)
	out := filepath.Join(dir, "solved.tiff")
	cfgPath := filepath.Join(dir, "mazesolver.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{
  "input": "`+filepath.ToSlash(in)+`",
  "output": "`+filepath.ToSlash(out)+`",
  "start": "0,0",
  "exit": "3,0",
  "save-frames": true,
  "frame-interval": 1,
  "frame-dir": "`+filepath.ToSlash(filepath.Join(dir, "frames"))+`",
  "log-level": "error"
}`), 0o644))

	require.Equal(t, exitOK, execute([]string{"--config", cfgPath}))
	_, err := os.Stat(out)
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "frames", "frame2.png"))
	assert.NoError(t, err)
}

// TestNewRootCmd_BindsEveryKey checks that each configuration key has a flag.
func TestNewRootCmd_BindsEveryKey(t *testing.T) {
	cmd, err := newRootCmd()
	require.NoError(t, err)

	for _, key := range []string{
		config.KeyInput, config.KeyOutput, config.KeyStart, config.KeyExit, config.KeyMode,
		config.KeySaveFrames, config.KeyFrameInterval, config.KeyFrameDir, config.KeyFrameFormat,
		config.KeyThreshold, config.KeyMetricsPath, config.KeyLogLevel, "config",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(key), "flag --%s", key)
	}
}

// TestExecute_FlagOverridesEnv: an explicit flag wins over MAZESOLVER_* env.
func TestExecute_FlagOverridesEnv(t *testing.T) {
	dir := t.TempDir()
	in := writeCorridor(t, dir, 3)
	t.Setenv("MAZESOLVER_EXIT", "9,9")

	code := execute([]string{"-i", in, "-o", filepath.Join(dir, "out.png"),
		"-s", "0,0", "-e", "2,0", "--log-level", "error"})
	assert.Equal(t, exitOK, code)
}
