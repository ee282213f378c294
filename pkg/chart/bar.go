package chart

import (
	"fmt"

	"github.com/opd-ai/chartkit/pkg/chartdata"
	"github.com/opd-ai/chartkit/pkg/geom"
	"github.com/opd-ai/chartkit/pkg/scale"
)

// BarChart renders categorical data as vertical or horizontal bars, with
// grouped bars when the data has multiple visible series.
type BarChart struct {
	*BaseChart

	data       *chartdata.Categorical
	horizontal bool
	showValues bool
	barGap     float64
	groupGap   float64
}

// NewBarChart creates a bar chart over categorical data.
func NewBarChart(data *chartdata.Categorical, opts Options) *BarChart {
	c := &BarChart{
		data:     data,
		barGap:   0.2,
		groupGap: 0.1,
	}
	c.BaseChart = NewBaseChart(&data.Base, c, opts)
	return c
}

// Data returns the chart's data model.
func (c *BarChart) Data() *chartdata.Categorical { return c.data }

// SetHorizontal switches between vertical and horizontal bars.
func (c *BarChart) SetHorizontal(horizontal bool) {
	c.horizontal = horizontal
	c.MarkDirty()
}

// SetShowValues toggles value labels on bars.
func (c *BarChart) SetShowValues(show bool) {
	c.showValues = show
	c.MarkDirty()
}

// SetBarGap sets the gap between category bands as a fraction of the
// band width.
func (c *BarChart) SetBarGap(gap float64) {
	c.barGap = gap
	c.MarkDirty()
}

// scales returns the category and value scales for the current plot area.
func (c *BarChart) scales(plot geom.Rect) (scale.Band, scale.Linear) {
	rangeMin, rangeMax := plot.X, plot.X+plot.Width
	if c.horizontal {
		rangeMin, rangeMax = plot.Y, plot.Y+plot.Height
	}
	catScale := scale.NewBand(c.data.AllCategories(), rangeMin, rangeMax).
		WithPadding(c.barGap, c.barGap/2)

	maxValue := c.data.MaxValue()
	if maxValue <= 0 {
		maxValue = 1
	}
	valMin, valMax := plot.Y+plot.Height, plot.Y
	if c.horizontal {
		valMin, valMax = plot.X, plot.X+plot.Width
	}
	valScale := scale.LinearFromData([]float64{0, maxValue}, valMin, valMax, true, true)

	return catScale, valScale
}

// visibleSeries returns (index, series) pairs for visible series.
func (c *BarChart) visibleSeries() []int {
	var visible []int
	for i := range c.data.Series {
		if c.data.IsSeriesVisible(i) {
			visible = append(visible, i)
		}
	}
	return visible
}

// BuildElements builds one rectangle per visible bar.
func (c *BarChart) BuildElements(layout Layout) []Element {
	plot := layout.PlotArea
	if len(c.data.Series) == 0 || len(c.data.AllCategories()) == 0 {
		return nil
	}
	visible := c.visibleSeries()
	if len(visible) == 0 {
		return nil
	}

	catScale, valScale := c.scales(plot)

	barWidth := catScale.Bandwidth() / float64(len(visible)) * (1 - c.groupGap)
	barOffset := catScale.Bandwidth() / float64(len(visible))

	var elements []Element
	for pos, seriesIdx := range visible {
		series := c.data.Series[seriesIdx]
		for dataIdx, point := range series.Data {
			var rect geom.Rect
			if c.horizontal {
				rect = geom.RectOf(
					plot.X,
					catScale.Position(point.Category)+float64(pos)*barOffset,
					max0(valScale.Scale(point.Value)-plot.X),
					barWidth,
				)
			} else {
				rect = geom.RectOf(
					catScale.Position(point.Category)+float64(pos)*barOffset,
					valScale.Scale(point.Value),
					barWidth,
					max0(valScale.Scale(0)-valScale.Scale(point.Value)),
				)
			}

			label := point.Label
			if label == "" {
				label = point.Category
			}
			elements = append(elements, &RectElement{
				Rect:   rect,
				Series: seriesIdx,
				Data:   dataIdx,
				Val:    point.Value,
				Name:   label,
			})
		}
	}
	return elements
}

// RenderChart draws axes, bars, value labels, and the legend.
func (c *BarChart) RenderChart(p Painter, layout Layout) {
	plot := layout.PlotArea
	if plot.Width <= 0 || plot.Height <= 0 {
		return
	}

	c.renderAxes(p, layout)

	for _, el := range c.Elements() {
		rect, ok := el.(*RectElement)
		if !ok {
			continue
		}

		color := c.barColor(rect.Series, rect.Data)
		if c.IsHovered(rect.Series, rect.Data) {
			color = LightenColor(color, 0.2)
		}

		if c.data.IsSelected(rect.Series, rect.Data) {
			p.SetStrokeColor("#ffffff")
			p.SetStrokeWidth(2)
			p.StrokeRect(rect.Rect)
		}

		p.SetFillColor(color)
		p.FillRect(rect.Rect)

		if c.showValues {
			c.renderValueLabel(p, rect)
		}
	}

	if c.Options().ShowLegend {
		renderSeriesLegend(c.BaseChart, p, layout, seriesLegendEntries(c.data))
	}
}

// barColor resolves the bar fill: per-point metadata color first, then
// the series style, then the theme palette.
func (c *BarChart) barColor(seriesIdx, dataIdx int) string {
	if seriesIdx >= len(c.data.Series) {
		return c.SeriesColor(seriesIdx)
	}
	series := c.data.Series[seriesIdx]
	if dataIdx < len(series.Data) {
		if pointColor := series.Data[dataIdx].Metadata.String("color"); pointColor != "" {
			return pointColor
		}
	}
	if series.Style.Color != "" {
		return series.Style.Color
	}
	return c.SeriesColor(seriesIdx)
}

func (c *BarChart) renderAxes(p Painter, layout Layout) {
	plot := layout.PlotArea
	theme := c.Theme()

	p.SetStrokeColor(theme.AxisColor)
	p.SetStrokeWidth(1)
	p.StrokeLine(geom.Pt(plot.X, plot.Bottom()), geom.Pt(plot.Right(), plot.Bottom()))
	p.StrokeLine(geom.Pt(plot.X, plot.Y), geom.Pt(plot.X, plot.Bottom()))

	categories := c.data.AllCategories()
	if len(categories) == 0 {
		return
	}

	catScale, valScale := c.scales(plot)

	p.SetFillColor(theme.TextColor)
	p.SetFontSize(11)
	for _, cat := range categories {
		width := p.MeasureText(cat)
		if c.horizontal {
			p.FillText(cat, geom.Pt(plot.X-8-width, catScale.Center(cat)+4))
		} else {
			p.FillText(cat, geom.Pt(catScale.Center(cat)-width/2, plot.Bottom()+16))
		}
	}

	for _, tick := range valScale.Ticks(5) {
		label := fmt.Sprintf("%.0f", tick)
		width := p.MeasureText(label)
		if c.horizontal {
			p.FillText(label, geom.Pt(valScale.Scale(tick)-width/2, plot.Bottom()+16))
		} else {
			p.FillText(label, geom.Pt(plot.X-8-width, valScale.Scale(tick)+4))
		}
	}
}

func (c *BarChart) renderValueLabel(p Painter, el *RectElement) {
	label := fmt.Sprintf("%.1f", el.Val)
	p.SetFillColor(c.Theme().TextColor)
	p.SetFontSize(10)

	width := p.MeasureText(label)
	if c.horizontal {
		p.FillText(label, geom.Pt(el.Rect.Right()+4, el.Center().Y+4))
	} else {
		p.FillText(label, geom.Pt(el.Center().X-width/2, el.Rect.Y-4))
	}
}

// ElementAnchor anchors tooltips at the value end of the bar.
func (c *BarChart) ElementAnchor(el Element) geom.Point {
	if rect, ok := el.(*RectElement); ok {
		if c.horizontal {
			return geom.Pt(rect.Rect.Right(), rect.Center().Y)
		}
		return geom.Pt(rect.Center().X, rect.Rect.Y)
	}
	return geom.Pt(0, 0)
}
