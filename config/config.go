// Package config loads runtime configuration from flags, environment and an
// optional config file through viper, then applies defaults and validates.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/mazesolver/gridgraph"
	"github.com/katalvlaran/mazesolver/imageio"
	"github.com/katalvlaran/mazesolver/traverse"
)

// Configuration keys, shared by flags, env vars (MAZESOLVER_*) and config files.
const (
	KeyInput         = "input"
	KeyOutput        = "output"
	KeyStart         = "start"
	KeyExit          = "exit"
	KeyMode          = "mode"
	KeySaveFrames    = "save-frames"
	KeyFrameInterval = "frame-interval"
	KeyFrameDir      = "frame-dir"
	KeyFrameFormat   = "frame-format"
	KeyThreshold     = "threshold"
	KeyMetricsPath   = "metrics-path"
	KeyLogLevel      = "log-level"
)

// EnvPrefix prefixes environment overrides, e.g. MAZESOLVER_FRAME_INTERVAL.
const EnvPrefix = "MAZESOLVER"

// Frame intervals tuned for animation: BFS discovers far more cells before
// finishing, so it snapshots less often.
const (
	DefaultDFSFrameInterval = 2000
	DefaultBFSFrameInterval = 10000
)

// ErrInvalid marks any configuration that fails parsing or validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds all runtime configuration parameters
type Config struct {
	Input         string
	Output        string
	Start         gridgraph.Coord
	Exits         []traverse.ExitRegion
	Mode          traverse.Mode
	SaveFrames    bool
	FrameInterval int
	FrameDir      string
	FrameFormat   imageio.Format
	Threshold     int
	MetricsPath   string
	LogLevel      string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyInput, "maze.png")
	v.SetDefault(KeyOutput, "solved_maze.png")
	v.SetDefault(KeyMode, "dfs")
	v.SetDefault(KeySaveFrames, false)
	v.SetDefault(KeyFrameInterval, 0)
	v.SetDefault(KeyFrameDir, "images")
	v.SetDefault(KeyFrameFormat, string(imageio.PNG))
	v.SetDefault(KeyThreshold, imageio.DefaultCutoff)
	v.SetDefault(KeyLogLevel, "info")
}

// BindEnv enables MAZESOLVER_* overrides for every key.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// ReadFile merges a config file (any format viper understands) into v.
func ReadFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	return nil
}

// Load reads, parses and validates configuration from v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Input:         v.GetString(KeyInput),
		Output:        v.GetString(KeyOutput),
		SaveFrames:    v.GetBool(KeySaveFrames),
		FrameInterval: v.GetInt(KeyFrameInterval),
		FrameDir:      v.GetString(KeyFrameDir),
		Threshold:     v.GetInt(KeyThreshold),
		MetricsPath:   v.GetString(KeyMetricsPath),
		LogLevel:      v.GetString(KeyLogLevel),
	}

	var err error
	if raw := v.GetString(KeyStart); raw == "" {
		return nil, fmt.Errorf("%w: %s is required", ErrInvalid, KeyStart)
	} else if cfg.Start, err = ParseCoord(raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, KeyStart, err)
	}
	if raw := v.GetString(KeyExit); raw == "" {
		return nil, fmt.Errorf("%w: %s is required", ErrInvalid, KeyExit)
	} else if cfg.Exits, err = ParseExits(raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, KeyExit, err)
	}
	if cfg.Mode, err = traverse.ParseMode(v.GetString(KeyMode)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if cfg.FrameFormat, err = imageio.ParseFormat(v.GetString(KeyFrameFormat)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	// Apply defaults for missing values
	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return cfg, nil
}

// DefaultFrameInterval returns the snapshot interval used when none is set.
func DefaultFrameInterval(m traverse.Mode) int {
	if m == traverse.BFS {
		return DefaultBFSFrameInterval
	}

	return DefaultDFSFrameInterval
}

// applyDefaults sets default values for unspecified fields
func applyDefaults(cfg *Config) {
	if cfg.FrameInterval == 0 {
		cfg.FrameInterval = DefaultFrameInterval(cfg.Mode)
	}
	if cfg.FrameDir == "" {
		cfg.FrameDir = "images"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// validate checks that required fields are present and values are sensible
func validate(cfg *Config) error {
	if cfg.Input == "" {
		return fmt.Errorf("%s is required", KeyInput)
	}
	if cfg.Output == "" {
		return fmt.Errorf("%s is required", KeyOutput)
	}
	if _, err := imageio.FormatFromPath(cfg.Output); err != nil {
		return fmt.Errorf("%s: %v", KeyOutput, err)
	}
	if cfg.FrameInterval < 1 {
		return fmt.Errorf("%s must be >= 1", KeyFrameInterval)
	}
	if cfg.Threshold < 1 || cfg.Threshold > 255 {
		return fmt.Errorf("%s must be within 1..255", KeyThreshold)
	}
	return nil
}

// ParseCoord parses "x,y" into a Coord. Both values must be non-negative.
func ParseCoord(s string) (gridgraph.Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Coord{}, fmt.Errorf("coordinate %q: want \"x,y\"", s)
	}
	x, err := parseNonNegative(xs)
	if err != nil {
		return gridgraph.Coord{}, fmt.Errorf("coordinate %q: %w", s, err)
	}
	y, err := parseNonNegative(ys)
	if err != nil {
		return gridgraph.Coord{}, fmt.Errorf("coordinate %q: %w", s, err)
	}

	return gridgraph.Coord{X: x, Y: y}, nil
}

// ParseExits parses one or more ';'-separated regions. Each region is "X,Y"
// where X and Y are a value or an inclusive range "lo-hi":
//
//	"1801,1794-1796;1801,1798-1799"  two runs on column 1801
//	"0-4,0"                          the first five pixels of row 0
func ParseExits(s string) ([]traverse.ExitRegion, error) {
	var out []traverse.ExitRegion
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		xs, ys, ok := strings.Cut(part, ",")
		if !ok {
			return nil, fmt.Errorf("exit %q: want \"X,Y\"", part)
		}
		x0, x1, err := parseSpan(xs)
		if err != nil {
			return nil, fmt.Errorf("exit %q: %w", part, err)
		}
		y0, y1, err := parseSpan(ys)
		if err != nil {
			return nil, fmt.Errorf("exit %q: %w", part, err)
		}
		out = append(out, traverse.ExitRegion{
			Min: gridgraph.Coord{X: x0, Y: y0},
			Max: gridgraph.Coord{X: x1, Y: y1},
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no exit region in %q", s)
	}

	return out, nil
}

// parseSpan parses "n" or "lo-hi" with lo <= hi.
func parseSpan(s string) (lo, hi int, err error) {
	los, his, isRange := strings.Cut(s, "-")
	if lo, err = parseNonNegative(los); err != nil {
		return 0, 0, err
	}
	if !isRange {
		return lo, lo, nil
	}
	if hi, err = parseNonNegative(his); err != nil {
		return 0, 0, err
	}
	if hi < lo {
		return 0, 0, fmt.Errorf("range %q is reversed", s)
	}

	return lo, hi, nil
}

func parseNonNegative(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}

	return n, nil
}
