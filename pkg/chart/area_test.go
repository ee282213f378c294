package chart

import (
	"testing"

	"github.com/opd-ai/chartkit/pkg/chartdata"
	"github.com/opd-ai/chartkit/pkg/geom"
)

func stackedNumericData(t *testing.T) *chartdata.Numeric {
	t.Helper()
	d := chartdata.NewNumeric("layers")
	s1, err := chartdata.NumericSeriesFromValues("base", []float64{0, 1, 2}, []float64{10, 20, 30})
	if err != nil {
		t.Fatal(err)
	}
	s2, err := chartdata.NumericSeriesFromValues("extra", []float64{0, 1, 2}, []float64{5, 10, 15})
	if err != nil {
		t.Fatal(err)
	}
	d.AddSeries(s1)
	d.AddSeries(s2)
	return d
}

func TestAreaChartStackedMax(t *testing.T) {
	d := stackedNumericData(t)
	c := NewAreaChart(d, DefaultOptions())
	c.SetStacked(true)

	if got := c.stackedMax(); got != 45 {
		t.Errorf("stackedMax = %v, want 45", got)
	}

	d.SetSeriesVisibility(1, false)
	if got := c.stackedMax(); got != 30 {
		t.Errorf("stackedMax with series hidden = %v, want 30", got)
	}
}

func TestAreaChartStackedPositions(t *testing.T) {
	c := NewAreaChart(stackedNumericData(t), DefaultOptions())
	c.SetStacked(true)

	elements := c.BuildElements(bareLayout(300, 100))
	if len(elements) != 6 {
		t.Fatalf("got %d elements, want 6", len(elements))
	}

	// The second series' point at x=0 sits at the cumulative height
	// 10+5=15, above the first series' point at 10.
	var base0, extra0 *CircleElement
	for _, el := range elements {
		circle := el.(*CircleElement)
		if circle.Data != 0 {
			continue
		}
		if circle.Series == 0 {
			base0 = circle
		} else {
			extra0 = circle
		}
	}
	if base0 == nil || extra0 == nil {
		t.Fatal("missing points at x=0")
	}
	if extra0.Point.Y >= base0.Point.Y {
		t.Errorf("stacked point Y %v should be above base point Y %v", extra0.Point.Y, base0.Point.Y)
	}

	// Elements still report raw values, not cumulative ones.
	if extra0.Value() != 5 {
		t.Errorf("stacked element value = %v, want the raw 5", extra0.Value())
	}
}

func TestAreaChartUnstackedUsesDataRange(t *testing.T) {
	c := NewAreaChart(stackedNumericData(t), DefaultOptions())

	plot := bareLayout(300, 100).PlotArea
	_, yScale := c.scales(plot)

	// Unstacked scale covers the raw Y range with padding, not the sums.
	if yScale.DomainMax >= 45 {
		t.Errorf("unstacked DomainMax = %v, want below the stacked sum", yScale.DomainMax)
	}
}

func TestAreaChartRender(t *testing.T) {
	c := NewAreaChart(stackedNumericData(t), DefaultOptions())
	c.SetStacked(true)

	p := &recordingPainter{}
	c.Redraw(p, geom.Size{Width: 400, Height: 300})

	// Two fill quads per series (three points each).
	if p.polygons != 4 {
		t.Errorf("drew %d fill polygons, want 4", p.polygons)
	}
	if !p.hasText("base") || !p.hasText("extra") {
		t.Error("legend entries missing")
	}
}

func TestAreaChartSingleSeriesStackedScale(t *testing.T) {
	d := chartdata.NewNumeric("single")
	s, _ := chartdata.NumericSeriesFromValues("only", []float64{0, 1}, []float64{10, 20})
	d.AddSeries(s)

	c := NewAreaChart(d, DefaultOptions())
	c.SetStacked(true)

	// A single series never uses the stacked-sum scale.
	plot := bareLayout(300, 100).PlotArea
	_, yScale := c.scales(plot)
	if yScale.DomainMin > 10 {
		t.Errorf("DomainMin = %v, should cover the data range", yScale.DomainMin)
	}
}
