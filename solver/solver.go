// Package solver wires the grid adapter, the traversal engine and the
// renderer into a single maze-solving run.
package solver

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazesolver/config"
	"github.com/katalvlaran/mazesolver/gridgraph"
	"github.com/katalvlaran/mazesolver/imageio"
	"github.com/katalvlaran/mazesolver/metrics"
	"github.com/katalvlaran/mazesolver/render"
	"github.com/katalvlaran/mazesolver/traverse"
)

// ErrInvalidThreshold is returned when Request.Threshold is outside 0..255.
var ErrInvalidThreshold = errors.New("solver: threshold must be 0 (default) or within 1..255")

// Snapshotter persists the current canvas as a numbered frame.
type Snapshotter interface {
	Snapshot(img image.Image, frame int) error
}

// Request describes one in-memory solve.
type Request struct {
	Start gridgraph.Coord
	Exits []traverse.ExitRegion
	Mode  traverse.Mode

	// Threshold is the luminance cutoff for normalization and the grid.
	// Zero means imageio.DefaultCutoff; anything else must be within 1..255.
	Threshold int

	// Palette colors discovered and solution cells. Zero value means render.DefaultPalette.
	Palette render.Palette

	// Frames receives a snapshot every FrameInterval discoveries. Nil disables snapshots.
	Frames        Snapshotter
	FrameInterval int
}

// Solution is the outcome of a solve. Image is always set once the search
// has started, including when no path exists.
type Solution struct {
	Image   *image.RGBA
	Result  *traverse.Result
	Path    []gridgraph.Coord
	Elapsed time.Duration
}

// Solver runs searches and reports them to a logger and a metrics recorder.
type Solver struct {
	log logrus.FieldLogger
	rec *metrics.Recorder
}

// New returns a Solver. A nil log uses the logrus standard logger and a nil
// rec gets a fresh Recorder.
func New(log logrus.FieldLogger, rec *metrics.Recorder) *Solver {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if rec == nil {
		rec = metrics.NewRecorder()
	}

	return &Solver{log: log, rec: rec}
}

// Metrics returns the recorder the solver reports to.
func (s *Solver) Metrics() *metrics.Recorder {
	return s.rec
}

// Solve normalizes img, searches it and paints the result onto a copy.
//
// Before searching it returns ErrInvalidThreshold for a cutoff outside
// 1..255 and traverse.ErrInvalidCoordinate if the start or any exit cell is
// outside the image. Afterwards it returns traverse.ErrNotFound (with a
// Solution showing the explored cells) when no exit is reachable, and
// traverse.ErrCorruptProvenance if reconstruction fails.
func (s *Solver) Solve(img image.Image, req Request) (*Solution, error) {
	threshold := req.Threshold
	switch {
	case threshold == 0:
		threshold = imageio.DefaultCutoff
	case threshold < 1 || threshold > 255:
		return nil, fmt.Errorf("%w: got %d", ErrInvalidThreshold, threshold)
	}
	palette := req.Palette
	if palette == (render.Palette{}) {
		palette = render.DefaultPalette()
	}

	normalized := imageio.Normalize(img, uint8(threshold))
	grid, err := gridgraph.FromImage(normalized, gridgraph.GridOptions{Threshold: threshold})
	if err != nil {
		return nil, err
	}
	if err := checkBounds(grid, req); err != nil {
		return nil, err
	}

	canvas := render.NewCanvas(normalized, palette)
	opts := []traverse.Option{
		traverse.WithOnDiscover(func(c gridgraph.Coord, _ int) error {
			canvas.PaintDiscovered(c)
			return nil
		}),
	}
	if req.Frames != nil {
		opts = append(opts, traverse.WithSnapshot(req.FrameInterval, func(frame int) error {
			if err := req.Frames.Snapshot(canvas.Image(), frame); err != nil {
				return err
			}
			s.rec.SnapshotWritten()
			s.log.WithField("frame", frame).Debug("Snapshot written")
			return nil
		}))
	}

	log := s.log.WithFields(logrus.Fields{
		"mode":  req.Mode.String(),
		"start": req.Start.String(),
		"size":  fmt.Sprintf("%dx%d", grid.Width, grid.Height),
	})
	log.Info("Searching maze")

	began := time.Now()
	res, err := traverse.Search(grid, req.Start, traverse.Regions(req.Exits...), req.Mode, opts...)
	sol := &Solution{Image: canvas.Image(), Result: res, Elapsed: time.Since(began)}

	discovered, pushes := 0, 0
	if res != nil {
		discovered, pushes = len(res.Order), res.Pushes
	}
	log = log.WithFields(logrus.Fields{
		"discovered": discovered,
		"elapsed":    sol.Elapsed.Round(time.Millisecond).String(),
	})

	switch {
	case errors.Is(err, traverse.ErrNotFound):
		s.rec.ObserveSearch(req.Mode.String(), metrics.OutcomeNotFound, discovered, pushes, sol.Elapsed)
		log.Warn("No solution: exit unreachable from start")
		return sol, err
	case err != nil:
		s.rec.ObserveSearch(req.Mode.String(), metrics.OutcomeError, discovered, pushes, sol.Elapsed)
		return sol, err
	}

	path, err := res.Path()
	if err != nil {
		s.rec.ObserveSearch(req.Mode.String(), metrics.OutcomeError, discovered, pushes, sol.Elapsed)
		log.WithError(err).Error("Path reconstruction failed")
		return sol, err
	}
	canvas.PaintPath(path)
	sol.Path = path

	s.rec.ObserveSearch(req.Mode.String(), metrics.OutcomeFound, discovered, pushes, sol.Elapsed)
	s.rec.SetPathLength(len(path))
	log.WithFields(logrus.Fields{
		"exit":        res.Exit.String(),
		"path_length": len(path),
	}).Info("Solution found")

	return sol, nil
}

// Run loads cfg.Input, solves it and writes cfg.Output. The output is also
// written when no solution exists, so the explored region can be inspected.
func (s *Solver) Run(cfg *config.Config) (*Solution, error) {
	img, kind, err := imageio.Load(cfg.Input)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	s.log.WithFields(logrus.Fields{
		"path":   cfg.Input,
		"format": kind,
		"size":   fmt.Sprintf("%dx%d", b.Dx(), b.Dy()),
	}).Info("Maze loaded")

	req := Request{
		Start:         cfg.Start,
		Exits:         cfg.Exits,
		Mode:          cfg.Mode,
		Threshold:     cfg.Threshold,
		FrameInterval: cfg.FrameInterval,
	}
	if cfg.SaveFrames {
		req.Frames = render.NewFrameWriter(cfg.FrameDir, cfg.FrameFormat)
		s.log.WithFields(logrus.Fields{
			"dir":      cfg.FrameDir,
			"interval": cfg.FrameInterval,
		}).Info("Saving progress frames")
	}

	sol, err := s.Solve(img, req)
	if sol == nil || (err != nil && !errors.Is(err, traverse.ErrNotFound)) {
		return sol, err
	}
	if saveErr := imageio.Save(cfg.Output, sol.Image); saveErr != nil {
		return sol, errors.Join(err, saveErr)
	}
	s.log.WithField("path", cfg.Output).Info("Output written")

	return sol, err
}

// checkBounds rejects a start or exit region that leaves the grid.
func checkBounds(g *gridgraph.GridGraph, req Request) error {
	if !g.InBounds(req.Start.X, req.Start.Y) {
		return fmt.Errorf("%w: start %v outside %dx%d", traverse.ErrInvalidCoordinate, req.Start, g.Width, g.Height)
	}
	if len(req.Exits) == 0 {
		return traverse.ErrNilExit
	}
	for _, r := range req.Exits {
		if !r.Within(g.Width, g.Height) {
			return fmt.Errorf("%w: exit %v-%v outside %dx%d",
				traverse.ErrInvalidCoordinate, r.Min, r.Max, g.Width, g.Height)
		}
	}

	return nil
}
