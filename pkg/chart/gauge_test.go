package chart

import (
	"math"
	"testing"

	"github.com/opd-ai/chartkit/pkg/chartdata"
	"github.com/opd-ai/chartkit/pkg/geom"
)

func TestGaugeFillSpan(t *testing.T) {
	g := chartdata.NewGauge("cpu")
	g.Value = 50
	c := NewGaugeChart(g, DefaultOptions())

	elements := c.BuildElements(bareLayout(400, 400))
	if len(elements) != 1 {
		t.Fatalf("got %d elements, want 1", len(elements))
	}

	arc := elements[0].(*ArcElement)
	// Half of the default 270 degree sweep.
	want := 270.0 / 2 * math.Pi / 180
	if !approxEqual(arc.EndAngle-arc.StartAngle, want, 1e-9) {
		t.Errorf("fill span = %v, want %v", arc.EndAngle-arc.StartAngle, want)
	}
	if arc.Value() != 50 {
		t.Errorf("element value = %v, want 50", arc.Value())
	}
	if arc.Label() != "50" {
		t.Errorf("element label = %q, want formatted value", arc.Label())
	}
}

func TestGaugeEmptyAndOverflow(t *testing.T) {
	g := chartdata.NewGauge("cpu")
	c := NewGaugeChart(g, DefaultOptions())
	layout := bareLayout(400, 400)

	g.Value = 0
	if got := c.BuildElements(layout); got != nil {
		t.Errorf("zero value built %d elements, want none", len(got))
	}

	// Values past the range clamp to a full sweep.
	g.Value = 250
	arc := c.BuildElements(layout)[0].(*ArcElement)
	fullSpan := gaugeAngle(g.EndAngle) - gaugeAngle(g.StartAngle)
	if !approxEqual(arc.EndAngle-arc.StartAngle, fullSpan, 1e-9) {
		t.Errorf("overflow span = %v, want full sweep %v", arc.EndAngle-arc.StartAngle, fullSpan)
	}
}

func TestGaugeLegendDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowLegend = true
	c := NewGaugeChart(chartdata.NewGauge("cpu"), opts)

	if c.Options().ShowLegend {
		t.Error("gauge charts must not show a legend")
	}
}

func TestGaugeRender(t *testing.T) {
	g := chartdata.NewGauge("cpu")
	g.Value = 75

	c := NewGaugeChart(g, DefaultOptions())
	p := &recordingPainter{}
	c.Redraw(p, geom.Size{Width: 400, Height: 400})

	// Background track plus one fill segment per crossed threshold.
	// At 75% all three default thresholds are below the value.
	if p.arcs != 4 {
		t.Errorf("drew %d arcs, want 4", p.arcs)
	}
	if !p.hasText("75") {
		t.Errorf("value readout missing from %v", p.texts)
	}
	// Tick labels for the default 0..100 range.
	if !p.hasText("0") || !p.hasText("100") {
		t.Errorf("tick labels missing from %v", p.texts)
	}
}

func TestGaugeThresholdClipping(t *testing.T) {
	g := chartdata.NewGauge("cpu")
	g.Value = 40 // past the first two thresholds, short of the third

	c := NewGaugeChart(g, DefaultOptions())
	p := &recordingPainter{}
	c.SetShowTicks(false)
	c.Redraw(p, geom.Size{Width: 400, Height: 400})

	// Track plus segments for the 0% and 33% thresholds only.
	if p.arcs != 3 {
		t.Errorf("drew %d arcs, want 3", p.arcs)
	}
}

func TestGaugeCurrentColorDrivesReadout(t *testing.T) {
	g := chartdata.NewGauge("cpu")
	g.Value = 90

	if got := g.CurrentColor(); got != "#22c55e" {
		t.Errorf("CurrentColor at 90%% = %q, want the top threshold color", got)
	}
}
