package chart

import (
	"fmt"
	"math"

	"github.com/opd-ai/chartkit/pkg/chartdata"
	"github.com/opd-ai/chartkit/pkg/geom"
	"github.com/opd-ai/chartkit/pkg/scale"
)

// PointShape selects the marker drawn for scatter points.
type PointShape int

const (
	ShapeCircle PointShape = iota
	ShapeSquare
	ShapeDiamond
	ShapeTriangle
)

// ScatterChart renders numeric data as individual point markers without
// connecting lines.
type ScatterChart struct {
	*BaseChart

	data        *chartdata.Numeric
	pointRadius float64
	pointShape  PointShape
	showGrid    bool
}

// NewScatterChart creates a scatter chart over numeric data.
func NewScatterChart(data *chartdata.Numeric, opts Options) *ScatterChart {
	c := &ScatterChart{
		data:        data,
		pointRadius: 5,
		pointShape:  ShapeCircle,
		showGrid:    true,
	}
	c.BaseChart = NewBaseChart(&data.Base, c, opts)
	return c
}

// Data returns the chart's data model.
func (c *ScatterChart) Data() *chartdata.Numeric { return c.data }

// SetPointShape sets the marker shape.
func (c *ScatterChart) SetPointShape(shape PointShape) {
	c.pointShape = shape
	c.MarkDirty()
}

// SetPointRadius sets the marker radius in pixels.
func (c *ScatterChart) SetPointRadius(r float64) {
	c.pointRadius = r
	c.MarkDirty()
}

func (c *ScatterChart) scales(plot geom.Rect) (scale.Linear, scale.Linear) {
	xMin, xMax := c.data.XRange()
	yMin, yMax := c.data.YRange()

	if t := c.Transform(); t != nil && t.ZoomLevel() > 1 {
		xMin, xMax = t.View.XMin, t.View.XMax
		yMin, yMax = t.View.YMin, t.View.YMax
	}

	xScale := scale.NewLinear(xMin, xMax, plot.X, plot.X+plot.Width).WithPadding(0.1)
	yScale := scale.NewLinear(yMin, yMax, plot.Y+plot.Height, plot.Y).WithPadding(0.1)
	return xScale, yScale
}

// BuildElements builds one circle per visible point, regardless of the
// drawn marker shape.
func (c *ScatterChart) BuildElements(layout Layout) []Element {
	plot := layout.PlotArea
	if len(c.data.Series) == 0 {
		return nil
	}

	xScale, yScale := c.scales(plot)

	var elements []Element
	for seriesIdx, series := range c.data.Series {
		if !c.data.IsSeriesVisible(seriesIdx) {
			continue
		}
		for dataIdx, point := range series.Data {
			label := point.Label
			if label == "" {
				label = fmt.Sprintf("(%g, %g)", point.X, point.Y)
			}
			elements = append(elements, &CircleElement{
				Point:  geom.Pt(xScale.Scale(point.X), yScale.Scale(point.Y)),
				Radius: c.pointRadius + 3,
				Series: seriesIdx,
				Data:   dataIdx,
				Val:    point.Y,
				Name:   label,
			})
		}
	}
	return elements
}

// RenderChart draws the grid, axes, markers, and legend.
func (c *ScatterChart) RenderChart(p Painter, layout Layout) {
	plot := layout.PlotArea
	if plot.Width <= 0 || plot.Height <= 0 {
		return
	}

	xScale, yScale := c.scales(plot)

	if c.showGrid {
		renderNumericGrid(c.BaseChart, p, plot, yScale, xScale, true)
	}
	renderNumericAxes(c.BaseChart, p, plot, xScale, yScale, "%.1f")

	p.Save()
	p.Clip(plot)
	for seriesIdx, series := range c.data.Series {
		if !c.data.IsSeriesVisible(seriesIdx) {
			continue
		}

		color := series.Style.Color
		if color == "" {
			color = c.SeriesColor(seriesIdx)
		}

		for dataIdx, point := range series.Data {
			center := geom.Pt(xScale.Scale(point.X), yScale.Scale(point.Y))

			radius := c.pointRadius
			pointColor := color
			hovered := c.IsHovered(seriesIdx, dataIdx)
			if hovered {
				radius *= 1.4
				pointColor = LightenColor(color, 0.2)
				p.SetFillColor("#ffffff")
				c.drawShape(p, center, radius+2)
			}

			p.SetFillColor(pointColor)
			c.drawShape(p, center, radius)
		}
	}
	p.Restore()

	if c.Options().ShowLegend {
		renderSeriesLegend(c.BaseChart, p, layout, numericLegendEntries(c.data))
	}
}

func (c *ScatterChart) drawShape(p Painter, center geom.Point, radius float64) {
	switch c.pointShape {
	case ShapeSquare:
		p.FillRect(geom.RectOf(center.X-radius, center.Y-radius, radius*2, radius*2))
	case ShapeDiamond:
		p.FillPolygon([]geom.Point{
			geom.Pt(center.X, center.Y-radius),
			geom.Pt(center.X+radius, center.Y),
			geom.Pt(center.X, center.Y+radius),
			geom.Pt(center.X-radius, center.Y),
		})
	case ShapeTriangle:
		pts := make([]geom.Point, 3)
		for i := range pts {
			angle := -math.Pi/2 + float64(i)*2*math.Pi/3
			pts[i] = geom.Pt(center.X+radius*math.Cos(angle), center.Y+radius*math.Sin(angle))
		}
		p.FillPolygon(pts)
	default:
		p.FillCircle(center, radius)
	}
}

// ElementAnchor anchors tooltips at the top of the marker.
func (c *ScatterChart) ElementAnchor(el Element) geom.Point {
	if circle, ok := el.(*CircleElement); ok {
		return circle.Top()
	}
	return geom.Pt(0, 0)
}
