package chart

import (
	"fmt"

	"github.com/opd-ai/chartkit/pkg/chartdata"
	"github.com/opd-ai/chartkit/pkg/geom"
	"github.com/opd-ai/chartkit/pkg/scale"
)

// AreaChart renders numeric series as lines with filled areas beneath
// them. In stacked mode each series sits on top of the previous one and
// the fill spans down to the previous series' line instead of the zero
// line.
type AreaChart struct {
	*BaseChart

	data        *chartdata.Numeric
	showPoints  bool
	pointRadius float64
	lineWidth   float64
	fillOpacity float64
	stacked     bool
}

// NewAreaChart creates an area chart over numeric data.
func NewAreaChart(data *chartdata.Numeric, opts Options) *AreaChart {
	c := &AreaChart{
		data:        data,
		showPoints:  true,
		pointRadius: 4,
		lineWidth:   2,
		fillOpacity: 0.3,
	}
	c.BaseChart = NewBaseChart(&data.Base, c, opts)
	return c
}

// Data returns the chart's data model.
func (c *AreaChart) Data() *chartdata.Numeric { return c.data }

// SetStacked toggles stacked mode.
func (c *AreaChart) SetStacked(stacked bool) {
	c.stacked = stacked
	c.MarkDirty()
}

// SetFillOpacity sets the area fill opacity in [0, 1].
func (c *AreaChart) SetFillOpacity(opacity float64) {
	c.fillOpacity = opacity
	c.MarkDirty()
}

// stackedMax returns the largest per-X sum of visible series values,
// indexed by data position.
func (c *AreaChart) stackedMax() float64 {
	sums := map[int]float64{}
	for seriesIdx, series := range c.data.Series {
		if !c.data.IsSeriesVisible(seriesIdx) {
			continue
		}
		for dataIdx, point := range series.Data {
			sums[dataIdx] += point.Y
		}
	}
	maxSum := 0.0
	for _, sum := range sums {
		if sum > maxSum {
			maxSum = sum
		}
	}
	return maxSum
}

func (c *AreaChart) scales(plot geom.Rect) (scale.Linear, scale.Linear) {
	xMin, xMax := c.data.XRange()
	yMin, yMax := c.data.YRange()

	if c.stacked && len(c.data.Series) > 1 {
		yMin, yMax = 0, c.stackedMax()
	}

	xScale := scale.NewLinear(xMin, xMax, plot.X, plot.X+plot.Width).WithPadding(0.05)
	yScale := scale.NewLinear(yMin, yMax, plot.Y+plot.Height, plot.Y).WithPadding(0.1)
	return xScale, yScale
}

// seriesPoints returns the screen points of each visible series, with
// stacking applied: point i of series n sits at the cumulative height of
// series 0..n at position i.
func (c *AreaChart) seriesPoints(xScale, yScale scale.Linear) map[int][]geom.Point {
	points := map[int][]geom.Point{}
	cumulative := map[int]float64{}

	for seriesIdx, series := range c.data.Series {
		if !c.data.IsSeriesVisible(seriesIdx) {
			continue
		}
		pts := make([]geom.Point, len(series.Data))
		for dataIdx, point := range series.Data {
			y := point.Y
			if c.stacked {
				y += cumulative[dataIdx]
				cumulative[dataIdx] = y
			}
			pts[dataIdx] = geom.Pt(xScale.Scale(point.X), yScale.Scale(y))
		}
		points[seriesIdx] = pts
	}
	return points
}

// BuildElements builds one circle per visible point at its stacked
// position.
func (c *AreaChart) BuildElements(layout Layout) []Element {
	plot := layout.PlotArea
	if len(c.data.Series) == 0 {
		return nil
	}

	xScale, yScale := c.scales(plot)
	points := c.seriesPoints(xScale, yScale)

	var elements []Element
	for seriesIdx, series := range c.data.Series {
		pts, ok := points[seriesIdx]
		if !ok {
			continue
		}
		for dataIdx, point := range series.Data {
			label := point.Label
			if label == "" {
				label = fmt.Sprintf("(%g, %g)", point.X, point.Y)
			}
			elements = append(elements, &CircleElement{
				Point:  pts[dataIdx],
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

// RenderChart draws grid, axes, filled areas, lines, points, and legend.
func (c *AreaChart) RenderChart(p Painter, layout Layout) {
	plot := layout.PlotArea
	if plot.Width <= 0 || plot.Height <= 0 {
		return
	}

	xScale, yScale := c.scales(plot)

	renderNumericGrid(c.BaseChart, p, plot, yScale, scale.Linear{}, false)
	renderNumericAxes(c.BaseChart, p, plot, xScale, yScale, "%.0f")

	points := c.seriesPoints(xScale, yScale)
	baselineY := yScale.Scale(0)

	// Stacked series draw back to front so earlier series end up on top.
	order := make([]int, 0, len(c.data.Series))
	for i := range c.data.Series {
		if c.data.IsSeriesVisible(i) {
			order = append(order, i)
		}
	}
	if c.stacked {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	p.Save()
	p.Clip(plot)
	for _, seriesIdx := range order {
		c.renderSeries(p, seriesIdx, points, baselineY)
	}
	p.Restore()

	if c.Options().ShowLegend {
		renderSeriesLegend(c.BaseChart, p, layout, numericLegendEntries(c.data))
	}
}

// previousVisible returns the nearest visible series index below
// seriesIdx, or -1.
func (c *AreaChart) previousVisible(seriesIdx int) int {
	for i := seriesIdx - 1; i >= 0; i-- {
		if c.data.IsSeriesVisible(i) {
			return i
		}
	}
	return -1
}

func (c *AreaChart) renderSeries(p Painter, seriesIdx int, points map[int][]geom.Point, baselineY float64) {
	pts := points[seriesIdx]
	if len(pts) == 0 {
		return
	}

	series := c.data.Series[seriesIdx]
	color := series.Style.Color
	if color == "" {
		color = c.SeriesColor(seriesIdx)
	}

	// Baseline: previous visible series' line when stacked, else the
	// zero line.
	var baseline []geom.Point
	if prev := c.previousVisible(seriesIdx); c.stacked && prev >= 0 {
		baseline = points[prev]
	}
	if baseline == nil {
		baseline = make([]geom.Point, len(pts))
		for i, pt := range pts {
			baseline[i] = geom.Pt(pt.X, baselineY)
		}
	}

	if len(pts) >= 2 {
		fillColor := BlendColor(color, c.Theme().Background, c.fillOpacity)
		p.SetFillColor(fillColor)

		// One quad per segment keeps the polygon convex even when the
		// baseline crosses the series line.
		for i := 0; i < len(pts)-1; i++ {
			bl := baseline[min(i, len(baseline)-1)]
			br := baseline[min(i+1, len(baseline)-1)]
			p.FillPolygon([]geom.Point{pts[i], pts[i+1], br, bl})
		}
	}

	p.SetStrokeColor(color)
	p.SetStrokeWidth(c.lineWidth)
	for i := 0; i < len(pts)-1; i++ {
		p.StrokeLine(pts[i], pts[i+1])
	}

	if !c.showPoints {
		return
	}
	for i, pt := range pts {
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
func (c *AreaChart) ElementAnchor(el Element) geom.Point {
	if circle, ok := el.(*CircleElement); ok {
		return circle.Top()
	}
	return geom.Pt(0, 0)
}
