package chart

import (
	"fmt"

	"github.com/opd-ai/chartkit/pkg/chartdata"
	"github.com/opd-ai/chartkit/pkg/geom"
	"github.com/opd-ai/chartkit/pkg/scale"
)

// stackedSegment is one series' contribution to a category's stack, in
// stacked value units.
type stackedSegment struct {
	start     float64
	end       float64
	seriesIdx int
	dataIdx   int
}

// StackedBarChart renders multiple categorical series as stacked bars.
// Normalized mode rescales every stack to 100%.
type StackedBarChart struct {
	*BaseChart

	data       *chartdata.Categorical
	horizontal bool
	showValues bool
	showTotals bool
	normalized bool
	barGap     float64
}

// NewStackedBarChart creates a stacked bar chart over categorical data.
func NewStackedBarChart(data *chartdata.Categorical, opts Options) *StackedBarChart {
	c := &StackedBarChart{
		data:   data,
		barGap: 0.2,
	}
	c.BaseChart = NewBaseChart(&data.Base, c, opts)
	return c
}

// Data returns the chart's data model.
func (c *StackedBarChart) Data() *chartdata.Categorical { return c.data }

// SetHorizontal switches between vertical and horizontal stacks.
func (c *StackedBarChart) SetHorizontal(horizontal bool) {
	c.horizontal = horizontal
	c.MarkDirty()
}

// SetNormalized toggles percentage stacking.
func (c *StackedBarChart) SetNormalized(normalized bool) {
	c.normalized = normalized
	c.MarkDirty()
}

// SetShowValues toggles per-segment value labels.
func (c *StackedBarChart) SetShowValues(show bool) {
	c.showValues = show
	c.MarkDirty()
}

// SetShowTotals toggles stack total labels.
func (c *StackedBarChart) SetShowTotals(show bool) {
	c.showTotals = show
	c.MarkDirty()
}

// stackedValues computes each visible segment's (start, end) interval per
// category. Normalization uses the all-series total per category so a
// hidden series leaves a visible gap at the top rather than reflowing.
func (c *StackedBarChart) stackedValues() map[string][]stackedSegment {
	categories := c.data.AllCategories()
	stacked := make(map[string][]stackedSegment, len(categories))

	totals := map[string]float64{}
	for _, series := range c.data.Series {
		for _, point := range series.Data {
			totals[point.Category] += point.Value
		}
	}

	position := map[string]float64{}
	for seriesIdx, series := range c.data.Series {
		if !c.data.IsSeriesVisible(seriesIdx) {
			continue
		}
		for dataIdx, point := range series.Data {
			cat := point.Category
			start := position[cat]

			value := point.Value
			if c.normalized && totals[cat] > 0 {
				value = point.Value / totals[cat] * 100
			}

			end := start + value
			stacked[cat] = append(stacked[cat], stackedSegment{
				start:     start,
				end:       end,
				seriesIdx: seriesIdx,
				dataIdx:   dataIdx,
			})
			position[cat] = end
		}
	}
	return stacked
}

// maxStackedValue returns the tallest visible stack, 100 in normalized
// mode, and 1 when everything is zero.
func (c *StackedBarChart) maxStackedValue() float64 {
	if c.normalized {
		return 100
	}

	maxVal := 0.0
	for _, cat := range c.data.AllCategories() {
		total := 0.0
		for seriesIdx, series := range c.data.Series {
			if !c.data.IsSeriesVisible(seriesIdx) {
				continue
			}
			for _, point := range series.Data {
				if point.Category == cat {
					total += point.Value
				}
			}
		}
		if total > maxVal {
			maxVal = total
		}
	}

	if maxVal <= 0 {
		return 1
	}
	return maxVal
}

func (c *StackedBarChart) scales(plot geom.Rect) (scale.Band, scale.Linear) {
	rangeMin, rangeMax := plot.X, plot.X+plot.Width
	if c.horizontal {
		rangeMin, rangeMax = plot.Y, plot.Y+plot.Height
	}
	catScale := scale.NewBand(c.data.AllCategories(), rangeMin, rangeMax).
		WithPadding(c.barGap, c.barGap/2)

	valMin, valMax := plot.Y+plot.Height, plot.Y
	if c.horizontal {
		valMin, valMax = plot.X, plot.X+plot.Width
	}
	valScale := scale.LinearFromData([]float64{0, c.maxStackedValue()}, valMin, valMax, true, true)

	return catScale, valScale
}

// BuildElements builds one rectangle per visible stack segment.
func (c *StackedBarChart) BuildElements(layout Layout) []Element {
	plot := layout.PlotArea
	categories := c.data.AllCategories()
	if len(c.data.Series) == 0 || len(categories) == 0 {
		return nil
	}

	catScale, valScale := c.scales(plot)
	stacked := c.stackedValues()
	maxValue := c.maxStackedValue()

	var elements []Element
	for _, cat := range categories {
		barStart := catScale.Position(cat)
		barWidth := catScale.Bandwidth()

		for _, seg := range stacked[cat] {
			series := c.data.Series[seg.seriesIdx]
			point := series.Data[seg.dataIdx]

			var rect geom.Rect
			if c.horizontal {
				rect = geom.RectOf(
					plot.X+seg.start/maxValue*plot.Width,
					barStart,
					(seg.end-seg.start)/maxValue*plot.Width,
					barWidth,
				)
			} else {
				rect = geom.RectOf(
					barStart,
					valScale.Scale(seg.end),
					barWidth,
					max0(valScale.Scale(seg.start)-valScale.Scale(seg.end)),
				)
			}

			elements = append(elements, &RectElement{
				Rect:   rect,
				Series: seg.seriesIdx,
				Data:   seg.dataIdx,
				Val:    point.Value,
				Name:   fmt.Sprintf("%s: %s", cat, series.Name),
			})
		}
	}
	return elements
}

// RenderChart draws axes, segments, totals, and the legend.
func (c *StackedBarChart) RenderChart(p Painter, layout Layout) {
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

		color := c.SeriesColor(rect.Series)
		if rect.Series < len(c.data.Series) && c.data.Series[rect.Series].Style.Color != "" {
			color = c.data.Series[rect.Series].Style.Color
		}
		if c.IsHovered(rect.Series, rect.Data) {
			color = LightenColor(color, 0.2)
		}

		p.SetFillColor(color)
		p.FillRect(rect.Rect)

		if c.showValues && rect.Rect.Height > 15 {
			c.renderSegmentLabel(p, rect)
		}
	}

	if c.showTotals && !c.normalized {
		c.renderTotals(p, layout)
	}

	if c.Options().ShowLegend {
		renderSeriesLegend(c.BaseChart, p, layout, seriesLegendEntries(c.data))
	}
}

func (c *StackedBarChart) renderAxes(p Painter, layout Layout) {
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

	suffix := ""
	if c.normalized {
		suffix = "%"
	}
	for _, tick := range valScale.Ticks(5) {
		label := fmt.Sprintf("%.0f%s", tick, suffix)
		width := p.MeasureText(label)
		if c.horizontal {
			p.FillText(label, geom.Pt(valScale.Scale(tick)-width/2, plot.Bottom()+16))
		} else {
			p.FillText(label, geom.Pt(plot.X-8-width, valScale.Scale(tick)+4))
		}
	}
}

func (c *StackedBarChart) renderSegmentLabel(p Painter, el *RectElement) {
	label := fmt.Sprintf("%.0f", el.Val)
	p.SetFillColor("#ffffff")
	p.SetFontSize(9)

	width := p.MeasureText(label)
	if el.Rect.Width <= width+4 {
		return
	}
	p.FillText(label, geom.Pt(el.Center().X-width/2, el.Center().Y+3))
}

func (c *StackedBarChart) renderTotals(p Painter, layout Layout) {
	plot := layout.PlotArea
	catScale, valScale := c.scales(plot)
	stacked := c.stackedValues()
	maxValue := c.maxStackedValue()

	p.SetFillColor(c.Theme().TextColor)
	p.SetFontSize(10)

	for _, cat := range c.data.AllCategories() {
		segs := stacked[cat]
		if len(segs) == 0 {
			continue
		}
		total := segs[len(segs)-1].end
		label := fmt.Sprintf("%.0f", total)
		width := p.MeasureText(label)

		if c.horizontal {
			p.FillText(label, geom.Pt(plot.X+total/maxValue*plot.Width+4, catScale.Center(cat)+4))
		} else {
			p.FillText(label, geom.Pt(catScale.Center(cat)-width/2, valScale.Scale(total)-4))
		}
	}
}

// ElementAnchor anchors tooltips at the value end of the segment.
func (c *StackedBarChart) ElementAnchor(el Element) geom.Point {
	if rect, ok := el.(*RectElement); ok {
		if c.horizontal {
			return geom.Pt(rect.Rect.Right(), rect.Center().Y)
		}
		return geom.Pt(rect.Center().X, rect.Rect.Y)
	}
	return geom.Pt(0, 0)
}
