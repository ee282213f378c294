package chart

import (
	"math"

	"github.com/opd-ai/chartkit/pkg/chartdata"
	"github.com/opd-ai/chartkit/pkg/geom"
)

// ViewBounds is a rectangular window in data space.
type ViewBounds struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

// Width returns the horizontal extent of the bounds.
func (b ViewBounds) Width() float64 { return b.XMax - b.XMin }

// Height returns the vertical extent of the bounds.
func (b ViewBounds) Height() float64 { return b.YMax - b.YMin }

// Center returns the midpoint of the bounds.
func (b ViewBounds) Center() (float64, float64) {
	return (b.XMin + b.XMax) / 2, (b.YMin + b.YMax) / 2
}

// Contains reports whether the data point lies within the bounds.
func (b ViewBounds) Contains(x, y float64) bool {
	return b.XMin <= x && x <= b.XMax && b.YMin <= y && y <= b.YMax
}

// Expand returns bounds scaled around the center by factor.
func (b ViewBounds) Expand(factor float64) ViewBounds {
	cx, cy := b.Center()
	halfW := b.Width() / 2 * factor
	halfH := b.Height() / 2 * factor
	return ViewBounds{
		XMin: cx - halfW,
		XMax: cx + halfW,
		YMin: cy - halfH,
		YMax: cy + halfH,
	}
}

// Transform maps between data space and screen space with zoom and pan
// state. The view window never leaves the data bounds, and screen Y grows
// downward while data Y grows upward.
//
// Transform is observable; every zoom, pan, or reset notifies attached
// observers once.
type Transform struct {
	chartdata.Observable

	// DataBounds is the full extent of the dataset.
	DataBounds ViewBounds
	// View is the currently visible window, always contained in DataBounds.
	View ViewBounds
	// ScreenSize is the pixel area the view maps onto.
	ScreenSize geom.Size

	// MinZoom and MaxZoom clamp the zoom level. 1.0 shows the full data.
	MinZoom float64
	MaxZoom float64
}

// NewTransform creates a transform showing the full data bounds.
func NewTransform(data ViewBounds) *Transform {
	return &Transform{
		DataBounds: data,
		View:       data,
		ScreenSize: geom.Size{Width: 100, Height: 100},
		MinZoom:    1.0,
		MaxZoom:    20.0,
	}
}

// ZoomLevel returns the current zoom: the ratio of data width to view
// width, 1.0 when the full data is visible.
func (t *Transform) ZoomLevel() float64 {
	if t.View.Width() == 0 {
		return 1.0
	}
	return t.DataBounds.Width() / t.View.Width()
}

// SetScreenSize updates the pixel area used for coordinate conversion.
func (t *Transform) SetScreenSize(size geom.Size) {
	t.ScreenSize = size
}

// DataToScreen converts a data point to screen coordinates within the
// current view.
func (t *Transform) DataToScreen(dataX, dataY float64) geom.Point {
	normX := 0.5
	if t.View.Width() != 0 {
		normX = (dataX - t.View.XMin) / t.View.Width()
	}
	normY := 0.5
	if t.View.Height() != 0 {
		normY = (dataY - t.View.YMin) / t.View.Height()
	}

	return geom.Pt(
		normX*t.ScreenSize.Width,
		(1-normY)*t.ScreenSize.Height,
	)
}

// ScreenToData converts a screen point to data coordinates within the
// current view.
func (t *Transform) ScreenToData(p geom.Point) (float64, float64) {
	normX := 0.5
	if t.ScreenSize.Width != 0 {
		normX = p.X / t.ScreenSize.Width
	}
	normY := 0.5
	if t.ScreenSize.Height != 0 {
		normY = 1 - p.Y/t.ScreenSize.Height
	}

	return t.View.XMin + normX*t.View.Width(),
		t.View.YMin + normY*t.View.Height()
}

// Zoom scales the view by factor around a screen point, keeping the data
// point under the cursor at the same screen position. Factors above 1
// zoom in. The resulting zoom level is clamped to [MinZoom, MaxZoom]; a
// clamped no-op leaves the view untouched and does not notify.
func (t *Transform) Zoom(factor float64, center geom.Point) {
	newZoom := t.ZoomLevel() * factor
	newZoom = math.Max(t.MinZoom, math.Min(t.MaxZoom, newZoom))
	if newZoom == t.ZoomLevel() {
		return
	}

	dataX, dataY := t.ScreenToData(center)

	newWidth := t.DataBounds.Width() / newZoom
	newHeight := t.DataBounds.Height() / newZoom

	fracX := 0.5
	if t.ScreenSize.Width != 0 {
		fracX = center.X / t.ScreenSize.Width
	}
	fracY := 0.5
	if t.ScreenSize.Height != 0 {
		fracY = 1 - center.Y/t.ScreenSize.Height
	}

	t.View = ViewBounds{
		XMin: dataX - newWidth*fracX,
		XMax: dataX + newWidth*(1-fracX),
		YMin: dataY - newHeight*fracY,
		YMax: dataY + newHeight*(1-fracY),
	}

	t.clampView()
	t.Notify(ZoomEvent{ZoomLevel: t.ZoomLevel(), View: t.View})
}

// Pan shifts the view by a screen-space delta. Dragging content to the
// right pans the view left; screen Y is inverted relative to data Y.
func (t *Transform) Pan(delta geom.Point) {
	var dataDX, dataDY float64
	if t.ScreenSize.Width != 0 {
		dataDX = delta.X / t.ScreenSize.Width * t.View.Width()
	}
	if t.ScreenSize.Height != 0 {
		dataDY = -delta.Y / t.ScreenSize.Height * t.View.Height()
	}

	t.View = ViewBounds{
		XMin: t.View.XMin - dataDX,
		XMax: t.View.XMax - dataDX,
		YMin: t.View.YMin - dataDY,
		YMax: t.View.YMax - dataDY,
	}

	t.clampView()
	t.Notify(PanEvent{PanX: -dataDX, PanY: -dataDY})
}

// Reset restores the view to the full data bounds.
func (t *Transform) Reset() {
	t.View = t.DataBounds
	t.Notify(nil)
}

// SetDataBounds replaces the data bounds, re-clamping the view to stay
// inside the new extent.
func (t *Transform) SetDataBounds(bounds ViewBounds) {
	t.DataBounds = bounds
	t.clampView()
	t.Notify(nil)
}

// clampView keeps View inside DataBounds: the window is first shrunk to
// the data extent, then shifted to fit.
func (t *Transform) clampView() {
	viewW := math.Min(t.View.Width(), t.DataBounds.Width())
	viewH := math.Min(t.View.Height(), t.DataBounds.Height())

	xMin := math.Max(t.DataBounds.XMin, math.Min(t.DataBounds.XMax-viewW, t.View.XMin))
	yMin := math.Max(t.DataBounds.YMin, math.Min(t.DataBounds.YMax-viewH, t.View.YMin))

	t.View = ViewBounds{
		XMin: xMin,
		XMax: xMin + viewW,
		YMin: yMin,
		YMax: yMin + viewH,
	}
}
