package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mazesolver/config"
	"github.com/katalvlaran/mazesolver/metrics"
	"github.com/katalvlaran/mazesolver/solver"
	"github.com/katalvlaran/mazesolver/traverse"
)

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitNotFound = 2
	exitCorrupt  = 3
)

func main() {
	// Configure logging
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	os.Exit(execute(os.Args[1:]))
}

// execute runs the root command and maps its error to an exit code.
func execute(args []string) int {
	cmd, err := newRootCmd()
	if err == nil {
		cmd.SetArgs(args)
		err = cmd.Execute()
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, traverse.ErrNotFound):
		logrus.Errorf("No solution: %v", err)
		return exitNotFound
	case errors.Is(err, traverse.ErrCorruptProvenance):
		logrus.Errorf("Internal error, search produced a broken path: %v", err)
		return exitCorrupt
	default:
		logrus.Errorf("Failed: %v", err)
		return exitFailure
	}
}

// newRootCmd builds the command with every configuration key bound to a flag.
func newRootCmd() (*cobra.Command, error) {
	v := viper.New()
	config.SetDefaults(v)
	config.BindEnv(v)
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "mazesolver",
		Short: "Solve a maze image with DFS or BFS and paint the path",
		Long: `mazesolver reads a black-and-white maze image, searches from the start
pixel to the exit region and writes a copy with the solution in red and
every other explored pixel in green.

Exit regions are "X,Y" where X or Y may be an inclusive range, several
regions separated by ';', e.g. --exit "1801,1794-1796;1801,1798-1799".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if cfgFile != "" {
				if err := config.ReadFile(v, cfgFile); err != nil {
					return err
				}
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			return run(cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfgFile, "config", "", "optional config file (yaml, json, toml)")
	f.StringP(config.KeyInput, "i", "maze.png", "input maze image")
	f.StringP(config.KeyOutput, "o", "solved_maze.png", "output image (.png, .bmp, .tiff)")
	f.StringP(config.KeyStart, "s", "", `start pixel "x,y" (required)`)
	f.StringP(config.KeyExit, "e", "", `exit region(s) "X,Y[;X,Y...]" (required)`)
	f.StringP(config.KeyMode, "m", "dfs", "search mode: dfs or bfs")
	f.Bool(config.KeySaveFrames, false, "save progress frames for animation")
	f.Int(config.KeyFrameInterval, 0, "discoveries between frames (0: 2000 for dfs, 10000 for bfs)")
	f.String(config.KeyFrameDir, "images", "directory for progress frames")
	f.String(config.KeyFrameFormat, "png", "frame format: png, bmp or tiff")
	f.Int(config.KeyThreshold, 200, "luminance cutoff between wall and open pixels (1-255)")
	f.String(config.KeyMetricsPath, "", "write prometheus metrics to this file")
	f.String(config.KeyLogLevel, "info", "log level: debug, info, warn, error")
	if err := v.BindPFlags(f); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	return cmd, nil
}

// run executes one solve and exports metrics.
func run(cfg *config.Config) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	logrus.Infof("Configuration loaded: input=%s, mode=%s, start=%v, exits=%d, frames=%t",
		cfg.Input, cfg.Mode, cfg.Start, len(cfg.Exits), cfg.SaveFrames)

	rec := metrics.NewRecorder()
	s := solver.New(logrus.StandardLogger(), rec)
	_, runErr := s.Run(cfg)

	logrus.Info("Final stats: " + rec.LogProgress())
	if cfg.MetricsPath != "" {
		if err := rec.WriteToFile(cfg.MetricsPath); err != nil {
			logrus.Errorf("Failed to write metrics: %v", err)
		} else {
			logrus.Infof("Metrics written to %s", cfg.MetricsPath)
		}
	}

	return runErr
}
