package chart

import (
	"fmt"

	"github.com/opd-ai/chartkit/pkg/geom"
	"github.com/opd-ai/chartkit/pkg/scale"
)

// renderNumericGrid draws horizontal grid lines at the Y ticks and, when
// vertical is set, vertical grid lines at the X ticks.
func renderNumericGrid(b *BaseChart, p Painter, plot geom.Rect, yScale, xScale scale.Linear, vertical bool) {
	p.SetStrokeColor(b.Theme().GridColor)
	p.SetStrokeWidth(1)

	for _, tick := range yScale.Ticks(5) {
		y := yScale.Scale(tick)
		p.StrokeLine(geom.Pt(plot.X, y), geom.Pt(plot.Right(), y))
	}

	if vertical {
		for _, tick := range xScale.Ticks(5) {
			x := xScale.Scale(tick)
			p.StrokeLine(geom.Pt(x, plot.Y), geom.Pt(x, plot.Bottom()))
		}
	}
}

// renderNumericAxes draws the X and Y axis lines and tick labels using
// the given printf format for tick values.
func renderNumericAxes(b *BaseChart, p Painter, plot geom.Rect, xScale, yScale scale.Linear, format string) {
	theme := b.Theme()

	p.SetStrokeColor(theme.AxisColor)
	p.SetStrokeWidth(1)
	p.StrokeLine(geom.Pt(plot.X, plot.Bottom()), geom.Pt(plot.Right(), plot.Bottom()))
	p.StrokeLine(geom.Pt(plot.X, plot.Y), geom.Pt(plot.X, plot.Bottom()))

	p.SetFillColor(theme.TextColor)
	p.SetFontSize(11)

	for _, tick := range xScale.Ticks(5) {
		label := fmt.Sprintf(format, tick)
		width := p.MeasureText(label)
		p.FillText(label, geom.Pt(xScale.Scale(tick)-width/2, plot.Bottom()+16))
	}

	for _, tick := range yScale.Ticks(5) {
		label := fmt.Sprintf(format, tick)
		width := p.MeasureText(label)
		p.FillText(label, geom.Pt(plot.X-8-width, yScale.Scale(tick)+4))
	}
}
