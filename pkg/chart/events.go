package chart

import "github.com/opd-ai/chartkit/pkg/geom"

// MouseEvent carries a pointer position for press, release, drag, and
// move handling.
type MouseEvent struct {
	Pos geom.Point
}

// WheelEvent carries a scroll offset and the cursor position it happened at.
// Positive YOffset scrolls away from the user (zoom in).
type WheelEvent struct {
	Pos     geom.Point
	YOffset float64
}

// HoverEvent is emitted when the cursor enters a chart element.
type HoverEvent struct {
	SeriesIndex int
	DataIndex   int
	Value       float64
	Label       string
	Position    geom.Point
}

// ClickEvent is emitted when a chart element is clicked.
type ClickEvent struct {
	SeriesIndex int
	DataIndex   int
	Value       float64
	Label       string
	Position    geom.Point
}

// VisibilityEvent is emitted when a legend click toggles a series or
// data point.
type VisibilityEvent struct {
	SeriesIndex int
	SeriesName  string
	Visible     bool
}

// ZoomEvent describes the view after a zoom change.
type ZoomEvent struct {
	ZoomLevel float64
	View      ViewBounds
}

// PanEvent describes a pan offset in data units.
type PanEvent struct {
	PanX float64
	PanY float64
}

// HoverFunc handles hover events.
type HoverFunc func(HoverEvent)

// ClickFunc handles click events.
type ClickFunc func(ClickEvent)

// LegendClickFunc handles legend visibility toggles.
type LegendClickFunc func(VisibilityEvent)
