package chart

import (
	"fmt"
	"sort"
)

// Colormap maps a normalized value in [0, 1] to a hex color. Heatmap
// cells and colorbar legends draw through one of these.
type Colormap interface {
	// At returns the color for a normalized value, clamped to [0, 1].
	At(value float64) string
	// Colors returns n evenly spaced colors across the map.
	Colors(n int) []string
}

// ColorStop is one fixed color in a gradient colormap.
type ColorStop struct {
	Position float64
	R, G, B  int
}

// GradientColormap linearly interpolates RGB between sorted color stops.
type GradientColormap struct {
	stops []ColorStop
}

// NewGradientColormap creates a colormap from stops, sorting them by
// position.
func NewGradientColormap(stops []ColorStop) *GradientColormap {
	sorted := append([]ColorStop(nil), stops...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})
	return &GradientColormap{stops: sorted}
}

// At returns the interpolated color at value.
func (c *GradientColormap) At(value float64) string {
	if len(c.stops) == 0 {
		return "#000000"
	}
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}

	lower := c.stops[0]
	upper := c.stops[len(c.stops)-1]
	for i, stop := range c.stops {
		if stop.Position >= value {
			upper = stop
			if i > 0 {
				lower = c.stops[i-1]
			}
			break
		}
		lower = stop
	}

	// Coincident stops collapse to the lower color.
	t := 0.0
	if upper.Position != lower.Position {
		t = (value - lower.Position) / (upper.Position - lower.Position)
	}

	return RGBToHex(
		lower.R+int(t*float64(upper.R-lower.R)),
		lower.G+int(t*float64(upper.G-lower.G)),
		lower.B+int(t*float64(upper.B-lower.B)),
	)
}

// Colors returns n evenly spaced colors.
func (c *GradientColormap) Colors(n int) []string {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []string{c.At(0.5)}
	}
	colors := make([]string, n)
	for i := range colors {
		colors[i] = c.At(float64(i) / float64(n-1))
	}
	return colors
}

// ReversedColormap inverts a base colormap: At(v) maps to the base's
// At(1-v) and Colors come back in reverse order.
type ReversedColormap struct {
	Base Colormap
}

func (c *ReversedColormap) At(value float64) string { return c.Base.At(1 - value) }

func (c *ReversedColormap) Colors(n int) []string {
	colors := c.Base.Colors(n)
	for i, j := 0, len(colors)-1; i < j; i, j = i+1, j-1 {
		colors[i], colors[j] = colors[j], colors[i]
	}
	return colors
}

// Stops below are sampled from the standard scientific colormaps. All
// four are perceptually uniform and readable under common color vision
// deficiencies.

// Viridis returns the blue-green-yellow colormap.
func Viridis() Colormap {
	return NewGradientColormap([]ColorStop{
		{0.0, 68, 1, 84},
		{0.125, 72, 40, 120},
		{0.25, 62, 74, 137},
		{0.375, 49, 104, 142},
		{0.5, 38, 130, 142},
		{0.625, 31, 158, 137},
		{0.75, 53, 183, 121},
		{0.875, 109, 205, 89},
		{1.0, 253, 231, 37},
	})
}

// Plasma returns the purple-orange-yellow colormap.
func Plasma() Colormap {
	return NewGradientColormap([]ColorStop{
		{0.0, 13, 8, 135},
		{0.125, 75, 3, 161},
		{0.25, 125, 3, 168},
		{0.375, 168, 34, 150},
		{0.5, 203, 70, 121},
		{0.625, 229, 107, 93},
		{0.75, 248, 148, 65},
		{0.875, 253, 195, 40},
		{1.0, 240, 249, 33},
	})
}

// Inferno returns the black-red-yellow colormap.
func Inferno() Colormap {
	return NewGradientColormap([]ColorStop{
		{0.0, 0, 0, 4},
		{0.125, 40, 11, 84},
		{0.25, 89, 15, 109},
		{0.375, 137, 34, 106},
		{0.5, 181, 54, 81},
		{0.625, 219, 92, 49},
		{0.75, 246, 139, 30},
		{0.875, 252, 196, 59},
		{1.0, 252, 255, 164},
	})
}

// Magma returns the black-purple-pink-white colormap.
func Magma() Colormap {
	return NewGradientColormap([]ColorStop{
		{0.0, 0, 0, 4},
		{0.125, 28, 16, 68},
		{0.25, 79, 18, 123},
		{0.375, 129, 37, 129},
		{0.5, 181, 54, 122},
		{0.625, 229, 80, 100},
		{0.75, 251, 135, 97},
		{0.875, 254, 194, 135},
		{1.0, 252, 253, 191},
	})
}

// ColormapByName looks up a built-in colormap by name.
func ColormapByName(name string) (Colormap, error) {
	switch name {
	case "viridis":
		return Viridis(), nil
	case "plasma":
		return Plasma(), nil
	case "inferno":
		return Inferno(), nil
	case "magma":
		return Magma(), nil
	}
	return nil, fmt.Errorf("chart: unknown colormap %q", name)
}
