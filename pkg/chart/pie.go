package chart

import (
	"fmt"
	"math"

	"github.com/opd-ai/chartkit/pkg/chartdata"
	"github.com/opd-ai/chartkit/pkg/geom"
	"github.com/opd-ai/chartkit/pkg/scale"
)

// PieChart renders the first series of a categorical model as slices of a
// circle. A nonzero inner radius ratio turns it into a donut chart.
type PieChart struct {
	*BaseChart

	data        *chartdata.Categorical
	innerRatio  float64
	showLabels  bool
	showPercent bool
	startAngle  float64
}

// NewPieChart creates a pie chart. Only the first series is rendered;
// per-slice visibility is driven by the data model's data-point flags.
func NewPieChart(data *chartdata.Categorical, opts Options) *PieChart {
	c := &PieChart{
		data:        data,
		showLabels:  true,
		showPercent: true,
		startAngle:  -math.Pi / 2,
	}
	c.BaseChart = NewBaseChart(&data.Base, c, opts)
	return c
}

// Data returns the chart's data model.
func (c *PieChart) Data() *chartdata.Categorical { return c.data }

// SetInnerRatio sets the donut hole as a fraction of the outer radius.
// Values are clamped to [0, 0.95].
func (c *PieChart) SetInnerRatio(ratio float64) {
	c.innerRatio = math.Max(0, math.Min(0.95, ratio))
	c.MarkDirty()
}

// SetShowLabels toggles category labels outside the slices.
func (c *PieChart) SetShowLabels(show bool) {
	c.showLabels = show
	c.MarkDirty()
}

// SetShowPercent toggles percentage labels inside the slices.
func (c *PieChart) SetShowPercent(show bool) {
	c.showPercent = show
	c.MarkDirty()
}

func (c *PieChart) polar(plot geom.Rect) scale.Polar {
	radius := math.Min(plot.Width, plot.Height)/2 - 20
	if radius < 0 {
		radius = 0
	}
	p := scale.NewPolar(plot.Center(), radius*c.innerRatio, radius)
	p.StartAngle = c.startAngle
	p.EndAngle = c.startAngle + 2*math.Pi
	return p
}

// visibleTotal sums the values of visible slices in the first series.
func (c *PieChart) visibleTotal() float64 {
	total := 0.0
	for i, point := range c.data.Series[0].Data {
		if c.data.IsDataVisible(0, i) {
			total += point.Value
		}
	}
	return total
}

// BuildElements builds one arc per visible slice, walking clockwise from
// the start angle.
func (c *PieChart) BuildElements(layout Layout) []Element {
	if len(c.data.Series) == 0 || len(c.data.Series[0].Data) == 0 {
		return nil
	}

	total := c.visibleTotal()
	if total <= 0 {
		return nil
	}

	polar := c.polar(layout.PlotArea)
	span := polar.AngleSpan()

	var elements []Element
	angle := polar.StartAngle
	for i, point := range c.data.Series[0].Data {
		if !c.data.IsDataVisible(0, i) {
			continue
		}

		sliceSpan := point.Value / total * span
		elements = append(elements, &ArcElement{
			Point:       polar.Center,
			InnerRadius: polar.InnerRadius,
			OuterRadius: polar.OuterRadius,
			StartAngle:  angle,
			EndAngle:    angle + sliceSpan,
			Series:      0,
			Data:        i,
			Val:         point.Value,
			Name:        point.Category,
		})
		angle += sliceSpan
	}
	return elements
}

// RenderChart draws slices, labels, and a per-slice legend.
func (c *PieChart) RenderChart(p Painter, layout Layout) {
	elements := c.Elements()
	if len(elements) == 0 {
		return
	}

	total := c.visibleTotal()

	for _, el := range elements {
		arc, ok := el.(*ArcElement)
		if !ok {
			continue
		}

		color := c.sliceColor(arc.Data)
		center := arc.Point

		if c.IsHovered(arc.Series, arc.Data) {
			color = LightenColor(color, 0.2)
			// Hovered slices pop outward along their mid angle.
			mid := (arc.StartAngle + arc.EndAngle) / 2
			center = center.Add(geom.Pt(5*math.Cos(mid), 5*math.Sin(mid)))
		}

		p.SetFillColor(color)
		p.FillArc(center, arc.InnerRadius, arc.OuterRadius, arc.StartAngle, arc.EndAngle)

		if c.data.IsSelected(arc.Series, arc.Data) {
			p.SetStrokeColor("#ffffff")
			p.SetStrokeWidth(2)
			p.StrokeLine(
				geom.Pt(center.X+arc.InnerRadius*math.Cos(arc.StartAngle), center.Y+arc.InnerRadius*math.Sin(arc.StartAngle)),
				geom.Pt(center.X+arc.OuterRadius*math.Cos(arc.StartAngle), center.Y+arc.OuterRadius*math.Sin(arc.StartAngle)),
			)
			p.StrokeLine(
				geom.Pt(center.X+arc.InnerRadius*math.Cos(arc.EndAngle), center.Y+arc.InnerRadius*math.Sin(arc.EndAngle)),
				geom.Pt(center.X+arc.OuterRadius*math.Cos(arc.EndAngle), center.Y+arc.OuterRadius*math.Sin(arc.EndAngle)),
			)
		}

		if c.showPercent && total > 0 {
			c.renderPercentLabel(p, arc, total)
		}
		if c.showLabels {
			c.renderSliceLabel(p, arc)
		}
	}

	if c.Options().ShowLegend {
		c.renderSliceLegend(p, layout)
	}
}

func (c *PieChart) sliceColor(dataIdx int) string {
	point := c.data.Series[0].Data[dataIdx]
	if color := point.Metadata.String("color"); color != "" {
		return color
	}
	return c.SeriesColor(dataIdx)
}

func (c *PieChart) renderPercentLabel(p Painter, arc *ArcElement, total float64) {
	pct := arc.Val / total * 100
	if pct < 4 {
		return
	}

	mid := (arc.StartAngle + arc.EndAngle) / 2
	r := (arc.InnerRadius + arc.OuterRadius) / 2
	pos := geom.Pt(arc.Point.X+r*math.Cos(mid), arc.Point.Y+r*math.Sin(mid))

	label := fmt.Sprintf("%.0f%%", pct)
	p.SetFillColor(ContrastTextColor(c.sliceColor(arc.Data)))
	p.SetFontSize(11)
	p.FillText(label, geom.Pt(pos.X-p.MeasureText(label)/2, pos.Y+4))
}

func (c *PieChart) renderSliceLabel(p Painter, arc *ArcElement) {
	mid := (arc.StartAngle + arc.EndAngle) / 2
	r := arc.OuterRadius + 20
	pos := geom.Pt(arc.Point.X+r*math.Cos(mid), arc.Point.Y+r*math.Sin(mid))

	p.SetFillColor(c.Theme().TextColor)
	p.SetFontSize(11)

	// Labels on the left half right-align toward the circle.
	if math.Cos(mid) < 0 {
		pos.X -= p.MeasureText(arc.Name)
	}
	p.FillText(arc.Name, geom.Pt(pos.X, pos.Y+4))
}

// renderSliceLegend draws one legend entry per data point of the first
// series, toggling individual slices instead of whole series.
func (c *PieChart) renderSliceLegend(p Painter, layout Layout) {
	entries := make([]legendEntry, 0, len(c.data.Series[0].Data))
	for i, point := range c.data.Series[0].Data {
		entries = append(entries, legendEntry{
			series:  0,
			data:    i,
			name:    point.Category,
			color:   c.sliceColor(i),
			visible: c.data.IsDataVisible(0, i),
		})
	}
	renderSeriesLegend(c.BaseChart, p, layout, entries)
}

// ElementAnchor anchors tooltips at the slice centroid.
func (c *PieChart) ElementAnchor(el Element) geom.Point {
	if arc, ok := el.(*ArcElement); ok {
		return arc.Centroid()
	}
	return geom.Pt(0, 0)
}
