package chart

import (
	"math"
	"testing"

	"github.com/opd-ai/chartkit/pkg/chartdata"
	"github.com/opd-ai/chartkit/pkg/geom"
)

func pieData(t *testing.T) *chartdata.Categorical {
	t.Helper()
	d := chartdata.NewCategorical("share")
	s, err := chartdata.CategoricalSeriesFromValues("market",
		[]string{"north", "south", "east", "west"},
		[]float64{25, 25, 25, 25})
	if err != nil {
		t.Fatal(err)
	}
	d.AddSeries(s)
	return d
}

func TestPieSlicesCoverFullCircle(t *testing.T) {
	c := NewPieChart(pieData(t), DefaultOptions())

	elements := c.BuildElements(bareLayout(400, 400))
	if len(elements) != 4 {
		t.Fatalf("got %d slices, want 4", len(elements))
	}

	totalSpan := 0.0
	for i, el := range elements {
		arc := el.(*ArcElement)
		span := arc.EndAngle - arc.StartAngle
		if !approxEqual(span, math.Pi/2, 1e-9) {
			t.Errorf("slice %d span = %v, want pi/2", i, span)
		}
		totalSpan += span
	}
	if !approxEqual(totalSpan, 2*math.Pi, 1e-9) {
		t.Errorf("total span = %v, want 2*pi", totalSpan)
	}

	// The first slice starts at 12 o'clock.
	first := elements[0].(*ArcElement)
	if !approxEqual(first.StartAngle, -math.Pi/2, 1e-9) {
		t.Errorf("first slice starts at %v, want -pi/2", first.StartAngle)
	}
}

func TestPieHitAt45Degrees(t *testing.T) {
	c := NewPieChart(pieData(t), DefaultOptions())

	layout := bareLayout(400, 400)
	elements := c.BuildElements(layout)

	// 45 degrees clockwise from 12 o'clock lands in the first slice.
	center := layout.PlotArea.Center()
	first := elements[0].(*ArcElement)
	r := first.OuterRadius / 2
	probe := geom.Pt(center.X+r*math.Cos(-math.Pi/4), center.Y+r*math.Sin(-math.Pi/4))

	hit := HitTest(elements, probe)
	if hit == nil {
		t.Fatal("probe missed every slice")
	}
	if hit.DataIndex() != 0 || hit.Label() != "north" {
		t.Errorf("hit slice %d (%q), want slice 0 (north)", hit.DataIndex(), hit.Label())
	}
}

func TestPieHiddenSliceRedistributes(t *testing.T) {
	d := pieData(t)
	c := NewPieChart(d, DefaultOptions())

	d.SetDataVisibility(0, 1, false)

	elements := c.BuildElements(bareLayout(400, 400))
	if len(elements) != 3 {
		t.Fatalf("got %d slices with one hidden, want 3", len(elements))
	}

	// The remaining slices split the circle three ways.
	for _, el := range elements {
		arc := el.(*ArcElement)
		span := arc.EndAngle - arc.StartAngle
		if !approxEqual(span, 2*math.Pi/3, 1e-9) {
			t.Errorf("slice %d span = %v, want 2*pi/3", arc.Data, span)
		}
		if arc.Data == 1 {
			t.Error("hidden slice should not produce an element")
		}
	}
}

func TestPieSingleVisibleSliceIsFullCircle(t *testing.T) {
	d := pieData(t)
	c := NewPieChart(d, DefaultOptions())

	d.SetDataVisibility(0, 1, false)
	d.SetDataVisibility(0, 2, false)
	d.SetDataVisibility(0, 3, false)

	layout := bareLayout(400, 400)
	elements := c.BuildElements(layout)
	if len(elements) != 1 {
		t.Fatalf("got %d slices, want 1", len(elements))
	}

	// A lone slice sweeps the whole circle and hits everywhere inside.
	arc := elements[0].(*ArcElement)
	center := layout.PlotArea.Center()
	for _, angle := range []float64{0, math.Pi / 2, math.Pi, -math.Pi / 2} {
		p := geom.Pt(center.X+50*math.Cos(angle), center.Y+50*math.Sin(angle))
		if !arc.Contains(p) {
			t.Errorf("full-circle slice misses point at angle %v", angle)
		}
	}
}

func TestPieZeroTotal(t *testing.T) {
	d := chartdata.NewCategorical("empty")
	s, _ := chartdata.CategoricalSeriesFromValues("z", []string{"a", "b"}, []float64{0, 0})
	d.AddSeries(s)
	c := NewPieChart(d, DefaultOptions())

	if got := c.BuildElements(bareLayout(400, 400)); got != nil {
		t.Errorf("zero total built %d elements, want none", len(got))
	}
}

func TestPieDonut(t *testing.T) {
	c := NewPieChart(pieData(t), DefaultOptions())
	c.SetInnerRatio(0.5)

	elements := c.BuildElements(bareLayout(400, 400))
	arc := elements[0].(*ArcElement)

	if arc.InnerRadius <= 0 {
		t.Error("donut slices should have a positive inner radius")
	}
	if !approxEqual(arc.InnerRadius, arc.OuterRadius*0.5, 1e-9) {
		t.Errorf("inner radius = %v, want half of outer %v", arc.InnerRadius, arc.OuterRadius)
	}

	// The hole no longer hits.
	if arc.Contains(arc.Point) {
		t.Error("donut hole should not be contained")
	}
}

func TestPieRender(t *testing.T) {
	c := NewPieChart(pieData(t), DefaultOptions())

	p := &recordingPainter{}
	c.Redraw(p, geom.Size{Width: 400, Height: 400})

	if p.arcs != 4 {
		t.Errorf("drew %d arcs, want 4", p.arcs)
	}
	// Slice labels and per-slice legend entries.
	if !p.hasText("north") || !p.hasText("west") {
		t.Errorf("slice labels missing from %v", p.texts)
	}
	if !p.hasText("25%") {
		t.Errorf("percentage labels missing from %v", p.texts)
	}
}
