package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/gomaze/maze"
)

// Cell colors for image export.
var (
	wallColor     = color.RGBA{A: 255}
	floorColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	gateColor     = color.RGBA{B: 230, A: 255}
	markerColor   = color.RGBA{R: 220, A: 255}
	shortestColor = color.RGBA{G: 170, A: 255}
)

// gridImage adapts a maze.Grid to image.Image, one pixel per cell.
type gridImage struct {
	grid *maze.Grid
}

// ColorModel implements image.Image.
func (gi *gridImage) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image: one pixel per cell, x = column, y = row.
func (gi *gridImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, gi.grid.Cols(), gi.grid.Rows())
}

// At implements image.Image.
func (gi *gridImage) At(x, y int) color.Color {
	cell, err := gi.grid.At(maze.Position{Row: y, Col: x})
	if err != nil {
		return color.RGBA{}
	}
	switch cell {
	case maze.Wall:
		return wallColor
	case maze.Start, maze.Exit:
		return gateColor
	case maze.PathMark:
		return markerColor
	case maze.ShortestMark:
		return shortestColor
	default:
		return floorColor
	}
}

// Image returns g as an image.Image with one pixel per cell. Annotate a
// working copy with Grid.MarkPath first to include a route in the picture.
func Image(g *maze.Grid) image.Image {
	return &gridImage{grid: g}
}

// ImageOptions contains tunable parameters for PNG export.
type ImageOptions struct {
	// Scale is the edge length, in pixels, of one cell. Values < 1 are
	// treated as 1.
	Scale int
	// Border is the width of the white frame around the picture; 0 draws
	// no frame.
	Border int
}

// DefaultImageOptions returns ImageOptions with 16px cells and a 4px frame.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{Scale: 16, Border: 4}
}

// WritePNG renders g and encodes it as a PNG to w: the grid is scaled up
// with nearest-neighbor resizing and optionally framed with a white border.
func WritePNG(w io.Writer, g *maze.Grid, opts ImageOptions) error {
	if g == nil {
		return fmt.Errorf("render: grid is nil")
	}
	if opts.Scale < 1 {
		opts.Scale = 1
	}

	pic := image_utils.ResizeImage(Image(g), g.Cols()*opts.Scale, g.Rows()*opts.Scale)
	if opts.Border > 0 {
		pic = image_utils.AddImageBorder(pic, color.White, opts.Border)
	}
	if err := png.Encode(w, image_utils.ToRGBA(pic)); err != nil {
		return fmt.Errorf("render: encoding png: %w", err)
	}

	return nil
}
