package types

import (
	"fmt"
	"image/color"
	"math"
)

// Color stores unbounded RGB intensities where 255 maps to full brightness.
type Color Vec3

var Black = Color{}

// Define a color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{r, g, b}
}

// Add one or more colors.
func (c Color) Add(others ...Color) Color {
	for _, o := range others {
		c[0] += o[0]
		c[1] += o[1]
		c[2] += o[2]
	}
	return c
}

// Scale all components by k.
func (c Color) Scale(k float64) Color {
	return Color{c[0] * k, c[1] * k, c[2] * k}
}

// Reduce divides all components by k.
func (c Color) Reduce(k float64) Color {
	return Color{c[0] / k, c[1] / k, c[2] / k}
}

// Average the given colors. Returns Black for an empty list.
func Average(colors []Color) Color {
	if len(colors) == 0 {
		return Black
	}
	var sum Color
	for _, c := range colors {
		sum = sum.Add(c)
	}
	return sum.Reduce(float64(len(colors)))
}

// RGBA clamps each component to [0, 255] and converts to an 8-bit color.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{clamp8(c[0]), clamp8(c[1]), clamp8(c[2]), 0xff}
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%3.3f, %3.3f, %3.3f)", c[0], c[1], c[2])
}

func clamp8(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
