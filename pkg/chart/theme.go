package chart

// DefaultSeriesColors is the fallback palette for series without an
// explicit color.
var DefaultSeriesColors = []string{
	"#3b82f6", // blue
	"#22c55e", // green
	"#f59e0b", // amber
	"#ef4444", // red
	"#8b5cf6", // violet
	"#06b6d4", // cyan
	"#ec4899", // pink
	"#84cc16", // lime
}

// Theme collects the colors a chart draws its chrome with: background,
// axes, grid, text, and tooltip. Series colors cycle through SeriesColors.
type Theme struct {
	Background    string
	AxisColor     string
	GridColor     string
	TextColor     string
	TextSecondary string
	TitleColor    string
	BorderColor   string
	TooltipBg     string
	TooltipBorder string
	TooltipText   string
	SeriesColors  []string
	IsDark        bool
}

// LightTheme returns the default light theme.
func LightTheme() Theme {
	return Theme{
		Background:    "#ffffff",
		AxisColor:     "#374151",
		GridColor:     "#e5e7eb",
		TextColor:     "#1f2937",
		TextSecondary: "#6b7280",
		TitleColor:    "#111827",
		BorderColor:   "#d1d5db",
		TooltipBg:     "#1f2937",
		TooltipBorder: "#374151",
		TooltipText:   "#ffffff",
		SeriesColors:  append([]string(nil), DefaultSeriesColors...),
		IsDark:        false,
	}
}

// DarkTheme returns the default dark theme.
func DarkTheme() Theme {
	return Theme{
		Background:    "#111827",
		AxisColor:     "#9ca3af",
		GridColor:     "#374151",
		TextColor:     "#f3f4f6",
		TextSecondary: "#9ca3af",
		TitleColor:    "#f9fafb",
		BorderColor:   "#4b5563",
		TooltipBg:     "#374151",
		TooltipBorder: "#6b7280",
		TooltipText:   "#ffffff",
		SeriesColors:  append([]string(nil), DefaultSeriesColors...),
		IsDark:        true,
	}
}

// SeriesColor returns the palette color for a series index, cycling when
// the index exceeds the palette length.
func (t Theme) SeriesColor(index int) string {
	if len(t.SeriesColors) == 0 {
		return DefaultSeriesColors[index%len(DefaultSeriesColors)]
	}
	return t.SeriesColors[index%len(t.SeriesColors)]
}

// WithSeriesColors returns a copy of the theme with a custom palette.
func (t Theme) WithSeriesColors(colors []string) Theme {
	t.SeriesColors = append([]string(nil), colors...)
	return t
}
