package chart

import "github.com/opd-ai/chartkit/pkg/geom"

// Margins are the pixel margins around the plot area.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// DefaultMargins returns the standard chart margins.
func DefaultMargins() Margins {
	return Margins{Top: 40, Right: 20, Bottom: 40, Left: 50}
}

// Layout holds the sub-rectangles a chart renders into, derived from the
// total widget size and margins on every redraw.
type Layout struct {
	// Bounds is the full widget rectangle.
	Bounds geom.Rect
	// PlotArea is the region data is drawn in.
	PlotArea geom.Rect
	// TitleArea spans the full width above the plot.
	TitleArea geom.Rect
	// LegendArea sits below the plot.
	LegendArea geom.Rect
}

const (
	titleHeight  = 30.0
	legendHeight = 30.0
)

// ComputeLayout derives the chart regions for a widget of the given size.
// The title band is allocated only when a title is present, and the
// legend band only when the legend is shown. The plot area is clamped to
// non-negative dimensions so a shrinking widget degrades instead of
// producing inverted rectangles.
func ComputeLayout(size geom.Size, m Margins, hasTitle, showLegend bool) Layout {
	th := 0.0
	if hasTitle {
		th = titleHeight
	}
	lh := 0.0
	if showLegend {
		lh = legendHeight
	}

	bounds := geom.RectOf(0, 0, size.Width, size.Height)

	plot := geom.RectOf(
		m.Left,
		m.Top+th,
		max0(size.Width-m.Left-m.Right),
		max0(size.Height-m.Top-m.Bottom-th-lh),
	)

	title := geom.RectOf(0, 0, size.Width, th+m.Top)

	legend := geom.RectOf(
		m.Left,
		size.Height-lh-m.Bottom/2,
		max0(size.Width-m.Left-m.Right),
		lh,
	)

	return Layout{
		Bounds:     bounds,
		PlotArea:   plot,
		TitleArea:  title,
		LegendArea: legend,
	}
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
