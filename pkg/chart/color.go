package chart

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHex parses a "#rrggbb" color string into its components. Malformed
// input returns black rather than an error; colors reach this path from
// the model layer where they were already validated or defaulted.
func ParseHex(hex string) (r, g, b int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	rv, err1 := strconv.ParseInt(hex[0:2], 16, 32)
	gv, err2 := strconv.ParseInt(hex[2:4], 16, 32)
	bv, err3 := strconv.ParseInt(hex[4:6], 16, 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0
	}
	return int(rv), int(gv), int(bv)
}

// RGBToHex formats RGB components as a "#rrggbb" string, clamping each
// component to [0, 255].
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clamp8(r), clamp8(g), clamp8(b))
}

// LightenColor moves a hex color toward white by amount in [0, 1]. Hover
// highlighting uses this with amount 0.2.
func LightenColor(hex string, amount float64) string {
	r, g, b := ParseHex(hex)
	r = min255(r + int(float64(255-r)*amount))
	g = min255(g + int(float64(255-g)*amount))
	b = min255(b + int(float64(255-b)*amount))
	return RGBToHex(r, g, b)
}

// BlendColor blends a hex color toward a background color by opacity:
// 1.0 returns the color unchanged, 0.0 returns the background. Area fills
// use this to fake translucency on an opaque surface.
func BlendColor(hex, background string, opacity float64) string {
	r, g, b := ParseHex(hex)
	br, bg, bb := ParseHex(background)
	return RGBToHex(
		int(float64(r)*opacity+float64(br)*(1-opacity)),
		int(float64(g)*opacity+float64(bg)*(1-opacity)),
		int(float64(b)*opacity+float64(bb)*(1-opacity)),
	)
}

// ContrastTextColor picks black or white text for readability against the
// given background color, using perceived luminance.
func ContrastTextColor(hex string) string {
	r, g, b := ParseHex(hex)
	luminance := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	if luminance > 150 {
		return "#000000"
	}
	return "#ffffff"
}

func clamp8(v int) int {
	if v < 0 {
		return 0
	}
	return min255(v)
}

func min255(v int) int {
	if v > 255 {
		return 255
	}
	return v
}
