package gridgraph

import (
	"image"
	"image/color"
)

// FromImage builds a GridGraph from img, storing the 8-bit gray luminance of
// every pixel as its cell value. Coordinates are relative to img.Bounds().Min,
// so (0,0) is always the top-left pixel.
func FromImage(img image.Image, opts GridOptions) (*GridGraph, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]int, b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := make([]int, b.Dx())
		for x := 0; x < b.Dx(); x++ {
			g := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			row[x] = int(g.Y)
		}
		cells[y] = row
	}

	return &GridGraph{
		Width:      b.Dx(),
		Height:     b.Dy(),
		CellValues: cells,
		Threshold:  opts.Threshold,
	}, nil
}
