package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/katalvlaran/mazesolver/imageio"
)

// FrameWriter stores progress snapshots as <Dir>/frame<N>.<ext>.
// The directory is created on the first snapshot.
type FrameWriter struct {
	Dir     string
	Format  imageio.Format
	ready   bool
	written int
}

// NewFrameWriter returns a writer for dir using format f.
func NewFrameWriter(dir string, f imageio.Format) *FrameWriter {
	return &FrameWriter{Dir: dir, Format: f}
}

// Path returns the file a given frame is written to.
func (fw *FrameWriter) Path(frame int) string {
	return filepath.Join(fw.Dir, fmt.Sprintf("frame%d%s", frame, fw.Format.Ext()))
}

// Snapshot encodes img as frame. Writes are synchronous.
func (fw *FrameWriter) Snapshot(img image.Image, frame int) error {
	if !fw.ready {
		if err := os.MkdirAll(fw.Dir, 0o755); err != nil {
			return fmt.Errorf("render: create frame dir %s: %w", fw.Dir, err)
		}
		fw.ready = true
	}
	if err := imageio.SaveAs(fw.Path(frame), img, fw.Format); err != nil {
		return err
	}
	fw.written++

	return nil
}

// Written reports how many frames were stored.
func (fw *FrameWriter) Written() int {
	return fw.written
}
