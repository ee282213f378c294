package chart

import "github.com/opd-ai/chartkit/pkg/geom"

// Painter is the 2D drawing surface charts render onto. Implementations
// live outside this package (the Ebiten backend under internal/render, or
// the recording painter used in tests). Colors are hex strings such as
// "#3b82f6".
//
// Unlike the minimal fill-rect/fill-circle surface the widgets were first
// written against, Painter exposes real line, polygon, and annular-arc
// primitives so the backend can stroke paths natively instead of
// approximating them with sampled circles.
type Painter interface {
	// SetFillColor sets the fill color for subsequent fill calls.
	SetFillColor(hex string)
	// SetStrokeColor sets the stroke color for subsequent stroke calls.
	SetStrokeColor(hex string)
	// SetStrokeWidth sets the stroke width in pixels.
	SetStrokeWidth(w float64)
	// SetFontSize sets the font size for subsequent text calls.
	SetFontSize(size float64)

	FillRect(r geom.Rect)
	StrokeRect(r geom.Rect)
	FillCircle(center geom.Point, radius float64)
	StrokeCircle(center geom.Point, radius float64)
	// StrokeLine draws a line between two points at the current stroke width.
	StrokeLine(from, to geom.Point)
	// FillPolygon fills the polygon described by pts in order.
	FillPolygon(pts []geom.Point)
	// FillArc fills an annulus sector between innerRadius and outerRadius,
	// sweeping counter-clockwise in screen space from startAngle to
	// endAngle (radians). innerRadius of 0 fills a pie wedge.
	FillArc(center geom.Point, innerRadius, outerRadius, startAngle, endAngle float64)

	// FillText draws text with its baseline-left at pos.
	FillText(text string, pos geom.Point)
	// MeasureText returns the rendered width of text at the current font size.
	MeasureText(text string) float64

	// Save pushes the current paint state; Restore pops it.
	Save()
	Restore()
	// Clip restricts subsequent drawing to r until the matching Restore.
	Clip(r geom.Rect)
}
