package writer

import (
	"errors"
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/yanky319/Ray-tracing/types"
)

var ErrInvalidGridInterval = errors.New("writer: grid interval must be greater than zero")

// Frame is an in-memory frame buffer. Render workers may call WritePixel
// concurrently as long as each pixel is written by a single worker.
type Frame struct {
	width  int
	height int
	pixels []types.Color
}

// Create a width x height frame filled with black.
func New(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Frame{
		width:  width,
		height: height,
		pixels: make([]types.Color, width*height),
	}
}

// Width of the frame in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height of the frame in pixels.
func (f *Frame) Height() int {
	return f.height
}

// Set the color of a pixel. Out of bounds writes are ignored.
func (f *Frame) WritePixel(col, row int, c types.Color) {
	if col < 0 || row < 0 || col >= f.width || row >= f.height {
		return
	}
	f.pixels[row*f.width+col] = c
}

// Get the color of a pixel.
func (f *Frame) Pixel(col, row int) types.Color {
	if col < 0 || row < 0 || col >= f.width || row >= f.height {
		return types.Black
	}
	return f.pixels[row*f.width+col]
}

// Overwrite every row and column whose index is a multiple of interval
// with the given color.
func (f *Frame) PrintGrid(interval int, c types.Color) error {
	if interval <= 0 {
		return ErrInvalidGridInterval
	}
	for row := 0; row < f.height; row++ {
		for col := 0; col < f.width; col++ {
			if row%interval == 0 || col%interval == 0 {
				f.pixels[row*f.width+col] = c
			}
		}
	}
	return nil
}

// Image converts the frame to an 8-bit image. Color components are clamped
// to [0, 255].
func (f *Frame) Image() image.Image {
	return f.context().Image()
}

// Encode the frame as a png file.
func (f *Frame) SavePNG(path string) error {
	if err := f.context().SavePNG(path); err != nil {
		return fmt.Errorf("writer: could not save frame to %q: %w", path, err)
	}
	return nil
}

func (f *Frame) context() *gg.Context {
	dc := gg.NewContext(f.width, f.height)
	for row := 0; row < f.height; row++ {
		for col := 0; col < f.width; col++ {
			dc.SetColor(f.pixels[row*f.width+col].RGBA())
			dc.SetPixel(col, row)
		}
	}
	return dc
}
