package imageio

import (
	"image"
	"image/color"
)

// DefaultCutoff splits scanned mazes whose blacks sit around 10-15 and
// whites around 245-255.
const DefaultCutoff = 200

var (
	// Wall is the normalized wall color.
	Wall = color.RGBA{A: 0xff}
	// Open is the normalized path color.
	Open = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Normalize maps every pixel of src to Wall (gray luminance < cutoff) or
// Open, returning a new RGBA image anchored at (0,0).
// Normalizing an already normalized image is a no-op on pixel classes.
func Normalize(src image.Image, cutoff uint8) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			g := color.GrayModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			if g.Y < cutoff {
				dst.SetRGBA(x, y, Wall)
			} else {
				dst.SetRGBA(x, y, Open)
			}
		}
	}

	return dst
}
