package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/gridpath/grid"
)

// Palette maps marks to colors.
type Palette struct {
	Background color.RGBA
	Tile       color.RGBA
	Wall       color.RGBA
	End        color.RGBA
	Visited    color.RGBA
	Path       color.RGBA
	Start      color.RGBA
}

// DefaultPalette is the classic look: grey walls, orange visited cells,
// green path and start, red end, white grid lines.
var DefaultPalette = Palette{
	Background: color.RGBA{255, 255, 255, 255},
	Tile:       color.RGBA{210, 210, 210, 255},
	Wall:       color.RGBA{128, 128, 128, 255},
	End:        color.RGBA{255, 0, 0, 255},
	Visited:    color.RGBA{255, 165, 0, 255},
	Path:       color.RGBA{0, 255, 0, 255},
	Start:      color.RGBA{0, 255, 0, 255},
}

func (p Palette) color(m Mark) color.RGBA {
	switch m {
	case MarkWall:
		return p.Wall
	case MarkEnd:
		return p.End
	case MarkVisited:
		return p.Visited
	case MarkPath:
		return p.Path
	case MarkStart:
		return p.Start
	default:
		return p.Tile
	}
}

// Image returns the trace at one pixel per cell.
func Image(g *grid.Grid, path, visited []grid.Position, pal Palette) *image.RGBA {
	f := NewFrame(g, path, visited)
	img := image.NewRGBA(image.Rect(0, 0, g.Cols(), g.Rows()))
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			img.SetRGBA(c, r, pal.color(f.Mark(grid.Position{Row: r, Col: c})))
		}
	}
	return img
}

// Scaled upscales the cell image to width×height pixels and separates
// cells with one-pixel background lines.
func Scaled(g *grid.Grid, path, visited []grid.Position, pal Palette, width, height int) (*image.RGBA, error) {
	if width < g.Cols() || height < g.Rows() {
		return nil, fmt.Errorf("render: %dx%d px is smaller than %dx%d cells", width, height, g.Cols(), g.Rows())
	}
	img := image_utils.ToRGBA(image_utils.ResizeImage(Image(g, path, visited, pal), width, height))

	// Each cell keeps its right column and bottom row for the grid line.
	for c := 1; c <= g.Cols(); c++ {
		x := c*width/g.Cols() - 1
		for y := 0; y < height; y++ {
			img.SetRGBA(x, y, pal.Background)
		}
	}
	for r := 1; r <= g.Rows(); r++ {
		y := r*height/g.Rows() - 1
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, pal.Background)
		}
	}
	return img, nil
}

// EncodePNG writes the scaled trace to w as PNG.
func EncodePNG(w io.Writer, g *grid.Grid, path, visited []grid.Position, pal Palette, size int) error {
	img, err := Scaled(g, path, visited, pal, size, size)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// WritePNG renders the trace into a size×size PNG file at path.
func WritePNG(path string, g *grid.Grid, trace, visited []grid.Position, pal Palette, size int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := EncodePNG(f, g, trace, visited, pal, size); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
