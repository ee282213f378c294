package chart

import (
	"fmt"

	"github.com/opd-ai/chartkit/pkg/chartdata"
	"github.com/opd-ai/chartkit/pkg/geom"
	"github.com/opd-ai/chartkit/pkg/scale"
)

// LineChart renders numeric series as connected lines with optional
// point markers.
type LineChart struct {
	*BaseChart

	data        *chartdata.Numeric
	showPoints  bool
	pointRadius float64
	lineWidth   float64
}

// NewLineChart creates a line chart over numeric data.
func NewLineChart(data *chartdata.Numeric, opts Options) *LineChart {
	c := &LineChart{
		data:        data,
		showPoints:  true,
		pointRadius: 4,
		lineWidth:   2,
	}
	c.BaseChart = NewBaseChart(&data.Base, c, opts)
	return c
}

// Data returns the chart's data model.
func (c *LineChart) Data() *chartdata.Numeric { return c.data }

// SetShowPoints toggles point markers.
func (c *LineChart) SetShowPoints(show bool) {
	c.showPoints = show
	c.MarkDirty()
}

// SetLineWidth sets the stroke width of the series lines.
func (c *LineChart) SetLineWidth(w float64) {
	c.lineWidth = w
	c.MarkDirty()
}

// scales returns padded X and Y scales for the current plot area. When a
// transform is attached and zoomed, the scales track the transform's view
// window instead of the full data ranges.
func (c *LineChart) scales(plot geom.Rect) (scale.Linear, scale.Linear) {
	xMin, xMax := c.data.XRange()
	yMin, yMax := c.data.YRange()

	if t := c.Transform(); t != nil && t.ZoomLevel() > 1 {
		xMin, xMax = t.View.XMin, t.View.XMax
		yMin, yMax = t.View.YMin, t.View.YMax
	}

	xScale := scale.NewLinear(xMin, xMax, plot.X, plot.X+plot.Width).WithPadding(0.05)
	yScale := scale.NewLinear(yMin, yMax, plot.Y+plot.Height, plot.Y).WithPadding(0.1)
	return xScale, yScale
}

// BuildElements builds one circle per visible point.
func (c *LineChart) BuildElements(layout Layout) []Element {
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
				Point: geom.Pt(xScale.Scale(point.X), yScale.Scale(point.Y)),
				// Slightly larger than drawn for easier hovering.
				Radius: c.pointRadius + 2,
				Series: seriesIdx,
				Data:   dataIdx,
				Val:    point.Y,
				Name:   label,
			})
		}
	}
	return elements
}

// RenderChart draws grid, axes, series lines, points, and the legend.
func (c *LineChart) RenderChart(p Painter, layout Layout) {
	plot := layout.PlotArea
	if plot.Width <= 0 || plot.Height <= 0 {
		return
	}

	xScale, yScale := c.scales(plot)

	renderNumericGrid(c.BaseChart, p, plot, yScale, scale.Linear{}, false)
	renderNumericAxes(c.BaseChart, p, plot, xScale, yScale, "%.0f")

	p.Save()
	p.Clip(plot)
	for seriesIdx, series := range c.data.Series {
		if !c.data.IsSeriesVisible(seriesIdx) {
			continue
		}
		c.renderSeries(p, seriesIdx, series, xScale, yScale)
	}
	p.Restore()

	if c.Options().ShowLegend {
		renderSeriesLegend(c.BaseChart, p, layout, numericLegendEntries(c.data))
	}
}

func (c *LineChart) renderSeries(p Painter, seriesIdx int, series chartdata.NumericSeries, xScale, yScale scale.Linear) {
	if len(series.Data) == 0 {
		return
	}

	color := series.Style.Color
	if color == "" {
		color = c.SeriesColor(seriesIdx)
	}

	points := make([]geom.Point, len(series.Data))
	for i, point := range series.Data {
		points[i] = geom.Pt(xScale.Scale(point.X), yScale.Scale(point.Y))
	}

	p.SetStrokeColor(color)
	p.SetStrokeWidth(c.lineWidth)
	for i := 0; i < len(points)-1; i++ {
		p.StrokeLine(points[i], points[i+1])
	}

	if !c.showPoints {
		return
	}
	for i, pt := range points {
		radius := c.pointRadius
		pointColor := color
		if c.IsHovered(seriesIdx, i) {
			radius *= 1.5
			pointColor = LightenColor(color, 0.2)
		}

		p.SetFillColor("#ffffff")
		p.FillCircle(pt, radius+2)
		p.SetFillColor(pointColor)
		p.FillCircle(pt, radius)
	}
}

// ElementAnchor anchors tooltips at the top of the point marker.
func (c *LineChart) ElementAnchor(el Element) geom.Point {
	if circle, ok := el.(*CircleElement); ok {
		return circle.Top()
	}
	return geom.Pt(0, 0)
}
