// Package render paints search progress and solutions onto a mutable copy
// of a maze image, and writes numbered progress frames.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/katalvlaran/mazesolver/gridgraph"
)

// Palette holds the colors used by a Canvas.
// Walls and open cells keep whatever colors the source image has.
type Palette struct {
	Visited color.RGBA
	Path    color.RGBA
}

// DefaultPalette: green visited cells, red solution.
func DefaultPalette() Palette {
	return Palette{
		Visited: color.RGBA{G: 0xff, A: 0xff},
		Path:    color.RGBA{R: 0xff, A: 0xff},
	}
}

// Canvas is an RGBA copy of the source maze; the source is never modified.
// Coordinates are relative to the source's top-left pixel.
type Canvas struct {
	img     *image.RGBA
	palette Palette
}

// NewCanvas copies src into a fresh RGBA image anchored at (0,0).
func NewCanvas(src image.Image, p Palette) *Canvas {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)

	return &Canvas{img: dst, palette: p}
}

// Image returns the live canvas; later paints are visible through it.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Palette returns the canvas colors.
func (c *Canvas) Palette() Palette {
	return c.palette
}

// PaintDiscovered marks one coordinate as visited.
// Out-of-bounds coordinates are ignored.
func (c *Canvas) PaintDiscovered(pt gridgraph.Coord) {
	c.img.SetRGBA(pt.X, pt.Y, c.palette.Visited)
}

// PaintPath marks every coordinate of path with the solution color,
// overwriting visited marks. Painting the same path twice is a no-op.
func (c *Canvas) PaintPath(path []gridgraph.Coord) {
	for _, pt := range path {
		c.img.SetRGBA(pt.X, pt.Y, c.palette.Path)
	}
}
