package chart

import (
	"math"

	"github.com/opd-ai/chartkit/pkg/geom"
)

// Element is the closed set of hit-testable chart shapes. Every element
// identifies the data point it was built from so hover and click events
// can be routed back to the model. Elements are rebuilt from current data
// and layout on every redraw; they are never persisted.
type Element interface {
	// Contains reports whether the screen point falls inside the element.
	Contains(p geom.Point) bool
	// SeriesIndex is the index of the owning series.
	SeriesIndex() int
	// DataIndex is the index of the data point within the series.
	DataIndex() int
	// Value is the data value at this element.
	Value() float64
	// Label is the display label for this element.
	Label() string
}

// RectElement is a rectangular hit region, used for bars and heatmap cells.
type RectElement struct {
	Rect   geom.Rect
	Series int
	Data   int
	Val    float64
	Name   string
}

func (e *RectElement) Contains(p geom.Point) bool { return e.Rect.Contains(p) }
func (e *RectElement) SeriesIndex() int           { return e.Series }
func (e *RectElement) DataIndex() int             { return e.Data }
func (e *RectElement) Value() float64             { return e.Val }
func (e *RectElement) Label() string              { return e.Name }

// Center returns the center of the rectangle.
func (e *RectElement) Center() geom.Point { return e.Rect.Center() }

// CircleElement is a circular hit region, used for line and scatter points.
type CircleElement struct {
	Point  geom.Point
	Radius float64
	Series int
	Data   int
	Val    float64
	Name   string
}

func (e *CircleElement) Contains(p geom.Point) bool {
	return e.Point.DistanceTo(p) <= e.Radius
}

func (e *CircleElement) SeriesIndex() int { return e.Series }
func (e *CircleElement) DataIndex() int   { return e.Data }
func (e *CircleElement) Value() float64   { return e.Val }
func (e *CircleElement) Label() string    { return e.Name }

// Top returns the topmost point of the circle, used as a tooltip anchor.
func (e *CircleElement) Top() geom.Point {
	return geom.Pt(e.Point.X, e.Point.Y-e.Radius)
}

// ArcElement is an annulus-sector hit region, used for pie slices and
// gauge arcs. Angles are in radians; the sector sweeps counter-clockwise
// from StartAngle to EndAngle.
type ArcElement struct {
	Point       geom.Point
	InnerRadius float64
	OuterRadius float64
	StartAngle  float64
	EndAngle    float64
	Series      int
	Data        int
	Val         float64
	Name        string
}

func (e *ArcElement) Contains(p geom.Point) bool {
	dist := e.Point.DistanceTo(p)
	if dist < e.InnerRadius || dist > e.OuterRadius {
		return false
	}

	angle := normalizeRadians(math.Atan2(p.Y-e.Point.Y, p.X-e.Point.X))
	start := normalizeRadians(e.StartAngle)
	end := normalizeRadians(e.EndAngle)

	// Counter-clockwise span from start to end. A near-zero span comes
	// from a slice covering the whole circle, not an empty one.
	span := math.Mod(end-start+2*math.Pi, 2*math.Pi)
	if span < 0.001 {
		span = 2 * math.Pi
	}

	toAngle := math.Mod(angle-start+2*math.Pi, 2*math.Pi)
	return toAngle <= span
}

func (e *ArcElement) SeriesIndex() int { return e.Series }
func (e *ArcElement) DataIndex() int   { return e.Data }
func (e *ArcElement) Value() float64   { return e.Val }
func (e *ArcElement) Label() string    { return e.Name }

// Centroid returns the angular and radial midpoint of the sector, used as
// a tooltip anchor.
func (e *ArcElement) Centroid() geom.Point {
	midAngle := (e.StartAngle + e.EndAngle) / 2
	midRadius := (e.InnerRadius + e.OuterRadius) / 2
	return geom.Pt(
		e.Point.X+midRadius*math.Cos(midAngle),
		e.Point.Y+midRadius*math.Sin(midAngle),
	)
}

// LineSegmentElement is a thick line-segment hit region, used for line
// chart segments between points.
type LineSegmentElement struct {
	Start     geom.Point
	End       geom.Point
	Thickness float64
	Series    int
	Segment   int
	Val       float64
	Name      string
}

func (e *LineSegmentElement) Contains(p geom.Point) bool {
	dx := e.End.X - e.Start.X
	dy := e.End.Y - e.Start.Y
	lengthSq := dx*dx + dy*dy

	if lengthSq == 0 {
		return e.Start.DistanceTo(p) <= e.Thickness
	}

	t := ((p.X-e.Start.X)*dx + (p.Y-e.Start.Y)*dy) / lengthSq
	t = math.Max(0, math.Min(1, t))

	closest := geom.Pt(e.Start.X+t*dx, e.Start.Y+t*dy)
	return closest.DistanceTo(p) <= e.Thickness
}

func (e *LineSegmentElement) SeriesIndex() int { return e.Series }
func (e *LineSegmentElement) DataIndex() int   { return e.Segment }
func (e *LineSegmentElement) Value() float64   { return e.Val }
func (e *LineSegmentElement) Label() string    { return e.Name }

// Center returns the midpoint of the segment.
func (e *LineSegmentElement) Center() geom.Point {
	return geom.Pt((e.Start.X+e.End.X)/2, (e.Start.Y+e.End.Y)/2)
}

// LegendItemElement is the hit region for one legend entry. Data is the
// data-point index for per-slice legends (pie charts) and -1 when the
// entry toggles a whole series.
type LegendItemElement struct {
	Rect   geom.Rect
	Series int
	Data   int
	Name   string
}

func (e *LegendItemElement) Contains(p geom.Point) bool { return e.Rect.Contains(p) }
func (e *LegendItemElement) SeriesIndex() int           { return e.Series }
func (e *LegendItemElement) DataIndex() int             { return e.Data }
func (e *LegendItemElement) Value() float64             { return 0 }
func (e *LegendItemElement) Label() string              { return e.Name }

// HitTest returns the topmost element containing the point, or nil.
// Elements are tested in reverse order so that elements drawn last are
// hit first.
func HitTest(elements []Element, p geom.Point) Element {
	for i := len(elements) - 1; i >= 0; i-- {
		if elements[i].Contains(p) {
			return elements[i]
		}
	}
	return nil
}

// HitTestAll returns every element containing the point, topmost first.
func HitTestAll(elements []Element, p geom.Point) []Element {
	var hits []Element
	for i := len(elements) - 1; i >= 0; i-- {
		if elements[i].Contains(p) {
			hits = append(hits, elements[i])
		}
	}
	return hits
}

func normalizeRadians(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
