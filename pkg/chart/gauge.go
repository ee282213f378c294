package chart

import (
	"fmt"
	"math"
	"sort"

	"github.com/opd-ai/chartkit/pkg/chartdata"
	"github.com/opd-ai/chartkit/pkg/geom"
	"github.com/opd-ai/chartkit/pkg/scale"
)

// GaugeChart renders a single value as a filled arc with color thresholds,
// ticks, and a large center readout.
type GaugeChart struct {
	*BaseChart

	data      *chartdata.Gauge
	showTicks bool
	tickCount int
}

// NewGaugeChart creates a gauge chart. Gauges have no legend.
func NewGaugeChart(data *chartdata.Gauge, opts Options) *GaugeChart {
	opts.ShowLegend = false
	c := &GaugeChart{
		data:      data,
		showTicks: true,
		tickCount: 5,
	}
	c.BaseChart = NewBaseChart(&data.Base, c, opts)
	return c
}

// Data returns the chart's data model.
func (c *GaugeChart) Data() *chartdata.Gauge { return c.data }

// SetShowTicks toggles tick marks along the outer arc.
func (c *GaugeChart) SetShowTicks(show bool) {
	c.showTicks = show
	c.MarkDirty()
}

// SetTickCount sets the number of major tick intervals.
func (c *GaugeChart) SetTickCount(n int) {
	if n < 1 {
		n = 1
	}
	c.tickCount = n
	c.MarkDirty()
}

// gaugeAngle converts a model angle in degrees, measured clockwise from 12
// o'clock, into a screen-space radian angle.
func gaugeAngle(degrees float64) float64 {
	return (degrees - 90) * math.Pi / 180
}

func (c *GaugeChart) polar(plot geom.Rect) scale.Polar {
	radius := math.Min(plot.Width, plot.Height)/2 - 30
	if radius < 0 {
		radius = 0
	}

	center := plot.Center()
	// Half gauges sit lower so the arc fills the plot area.
	if math.Abs(c.data.EndAngle-c.data.StartAngle) <= 180 {
		center.Y = plot.Y + plot.Height*0.7
	}

	p := scale.NewPolar(center, radius-c.data.ArcWidth, radius)
	p.StartAngle = gaugeAngle(c.data.StartAngle)
	p.EndAngle = gaugeAngle(c.data.EndAngle)
	return p
}

// clampedPercentage clamps the gauge value fraction to [0, 1].
func (c *GaugeChart) clampedPercentage() float64 {
	return math.Max(0, math.Min(1, c.data.Percentage()))
}

// BuildElements builds a single arc covering the filled portion of the
// gauge, so hover and click report the current value.
func (c *GaugeChart) BuildElements(layout Layout) []Element {
	polar := c.polar(layout.PlotArea)
	pct := c.clampedPercentage()
	if pct <= 0 {
		return nil
	}

	return []Element{&ArcElement{
		Point:       polar.Center,
		InnerRadius: polar.InnerRadius,
		OuterRadius: polar.OuterRadius,
		StartAngle:  polar.StartAngle,
		EndAngle:    polar.PercentageToAngle(pct),
		Series:      0,
		Data:        0,
		Val:         c.data.Value,
		Name:        fmt.Sprintf(c.data.ValueFormat, c.data.Value),
	}}
}

// RenderChart draws the background track, threshold-colored fill, ticks,
// and the value readout.
func (c *GaugeChart) RenderChart(p Painter, layout Layout) {
	plot := layout.PlotArea
	if plot.Width <= 0 || plot.Height <= 0 {
		return
	}

	polar := c.polar(plot)

	trackColor := c.data.BackgroundColor
	if trackColor == "" {
		trackColor = c.Theme().GridColor
	}
	p.SetFillColor(trackColor)
	p.FillArc(polar.Center, polar.InnerRadius, polar.OuterRadius, polar.StartAngle, polar.EndAngle)

	c.renderFill(p, polar)

	if c.showTicks {
		c.renderTicks(p, polar)
	}
	if c.data.ShowValue {
		c.renderValue(p, polar)
	}
}

// renderFill draws the filled portion of the arc as one segment per
// threshold band, each clipped to the current percentage.
func (c *GaugeChart) renderFill(p Painter, polar scale.Polar) {
	pct := c.clampedPercentage()
	if pct <= 0 {
		return
	}

	thresholds := append([]chartdata.Threshold(nil), c.data.Thresholds...)
	if len(thresholds) == 0 {
		thresholds = []chartdata.Threshold{{Percentage: 0, Color: "#3b82f6"}}
	}
	sort.Slice(thresholds, func(i, j int) bool {
		return thresholds[i].Percentage < thresholds[j].Percentage
	})

	hovered := c.IsHovered(0, 0)
	for i, th := range thresholds {
		if th.Percentage >= pct {
			break
		}
		segEnd := pct
		if i+1 < len(thresholds) && thresholds[i+1].Percentage < segEnd {
			segEnd = thresholds[i+1].Percentage
		}

		color := th.Color
		if hovered {
			color = LightenColor(color, 0.2)
		}
		p.SetFillColor(color)
		p.FillArc(polar.Center, polar.InnerRadius, polar.OuterRadius,
			polar.PercentageToAngle(th.Percentage), polar.PercentageToAngle(segEnd))
	}
}

func (c *GaugeChart) renderTicks(p Painter, polar scale.Polar) {
	theme := c.Theme()
	p.SetStrokeColor(theme.AxisColor)
	p.SetStrokeWidth(1)
	p.SetFillColor(theme.TextSecondary)
	p.SetFontSize(9)

	span := c.data.MaxValue - c.data.MinValue
	for i := 0; i <= c.tickCount; i++ {
		t := float64(i) / float64(c.tickCount)
		angle := polar.PercentageToAngle(t)

		p.StrokeLine(
			polar.PointAt(angle, polar.OuterRadius+2),
			polar.PointAt(angle, polar.OuterRadius+7),
		)

		label := fmt.Sprintf("%.0f", c.data.MinValue+t*span)
		pos := polar.PointAt(angle, polar.OuterRadius+12)
		width := p.MeasureText(label)
		// Shift labels away from the arc based on which side they fall on.
		pos.X -= width * (1 - math.Cos(angle)) / 2
		pos.Y += 4 * (1 + math.Sin(angle)) / 2
		p.FillText(label, pos)
	}
}

func (c *GaugeChart) renderValue(p Painter, polar scale.Polar) {
	label := fmt.Sprintf(c.data.ValueFormat, c.data.Value)

	color := c.data.CurrentColor()
	if c.IsHovered(0, 0) {
		color = LightenColor(color, 0.2)
	}
	p.SetFillColor(color)
	p.SetFontSize(28)
	p.FillText(label, geom.Pt(polar.Center.X-p.MeasureText(label)/2, polar.Center.Y+10))
}

// ElementAnchor anchors tooltips at the arc centroid.
func (c *GaugeChart) ElementAnchor(el Element) geom.Point {
	if arc, ok := el.(*ArcElement); ok {
		return arc.Centroid()
	}
	return geom.Pt(0, 0)
}
