// Package render implements the Ebiten backend for chartkit: a Painter
// that draws chart primitives with Ebiten's vector graphics, embedded Go
// fonts for text, and a Dashboard game loop that hosts charts and routes
// mouse input to them.
package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// namedColors maps the CSS color names accepted in dashboard configs to
// their RGBA values.
var namedColors = map[string]color.RGBA{
	"black":   {R: 0, G: 0, B: 0, A: 255},
	"white":   {R: 255, G: 255, B: 255, A: 255},
	"red":     {R: 255, G: 0, B: 0, A: 255},
	"green":   {R: 0, G: 128, B: 0, A: 255},
	"blue":    {R: 0, G: 0, B: 255, A: 255},
	"yellow":  {R: 255, G: 255, B: 0, A: 255},
	"cyan":    {R: 0, G: 255, B: 255, A: 255},
	"magenta": {R: 255, G: 0, B: 255, A: 255},
	"gray":    {R: 128, G: 128, B: 128, A: 255},
	"grey":    {R: 128, G: 128, B: 128, A: 255},
	"silver":  {R: 192, G: 192, B: 192, A: 255},
	"orange":  {R: 255, G: 165, B: 0, A: 255},
	"purple":  {R: 128, G: 0, B: 128, A: 255},
	"navy":    {R: 0, G: 0, B: 128, A: 255},
	"teal":    {R: 0, G: 128, B: 128, A: 255},
	"maroon":  {R: 128, G: 0, B: 0, A: 255},
}

// ParseColor parses a color specification into RGBA. It accepts named CSS
// colors and hex strings in #rgb, #rrggbb, and #rrggbbaa forms.
func ParseColor(spec string) (color.RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if s == "" {
		return color.RGBA{}, fmt.Errorf("empty color")
	}

	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[2*i] = hex[i]
			expanded[2*i+1] = hex[i]
		}
		hex = string(expanded)
	case 6, 8:
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q", spec)
	}

	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", spec, err)
	}

	if len(hex) == 8 {
		return color.RGBA{
			R: uint8(v >> 24),
			G: uint8(v >> 16),
			B: uint8(v >> 8),
			A: uint8(v),
		}, nil
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}

// mustColor parses spec, substituting opaque black for invalid input.
// The painter uses it so a bad color in one element cannot abort a frame.
func mustColor(spec string) color.RGBA {
	c, err := ParseColor(spec)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return c
}
