package chart

import (
	"testing"

	"github.com/opd-ai/chartkit/pkg/chartdata"
	"github.com/opd-ai/chartkit/pkg/geom"
)

func TestSeriesLegendEntries(t *testing.T) {
	d := chartdata.NewCategorical("test")
	s1, _ := chartdata.CategoricalSeriesFromValues("a", []string{"x"}, []float64{1})
	s2, _ := chartdata.CategoricalSeriesFromValues("b", []string{"x"}, []float64{2})
	d.AddSeries(s1)
	d.AddSeries(s2)
	d.SetSeriesVisibility(1, false)

	entries := seriesLegendEntries(d)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].name != "a" || !entries[0].visible {
		t.Errorf("entry 0 = %+v", entries[0])
	}
	if entries[1].name != "b" || entries[1].visible {
		t.Errorf("entry 1 = %+v", entries[1])
	}
	if entries[0].data != -1 {
		t.Error("series entries should carry data index -1")
	}
}

func TestRenderSeriesLegendRegistersHitElements(t *testing.T) {
	d := chartdata.NewCategorical("test")
	s1, _ := chartdata.CategoricalSeriesFromValues("a", []string{"x"}, []float64{1})
	s2, _ := chartdata.CategoricalSeriesFromValues("b", []string{"x"}, []float64{2})
	d.AddSeries(s1)
	d.AddSeries(s2)

	c := NewBarChart(d, DefaultOptions())
	layout := ComputeLayout(geom.Size{Width: 400, Height: 300}, DefaultMargins(), false, true)

	p := &recordingPainter{}
	renderSeriesLegend(c.BaseChart, p, layout, seriesLegendEntries(d))

	if len(c.legendElements) != 2 {
		t.Fatalf("registered %d hit elements, want 2", len(c.legendElements))
	}

	// Entries advance left to right and land inside the legend area.
	first, second := c.legendElements[0], c.legendElements[1]
	if second.Rect.X-first.Rect.X != 100 {
		t.Errorf("entry spacing = %v, want 100", second.Rect.X-first.Rect.X)
	}
	if first.Rect.Y < layout.LegendArea.Y-4 {
		t.Errorf("entry Y = %v, outside legend area at %v", first.Rect.Y, layout.LegendArea.Y)
	}

	// Both swatch and label were drawn per entry.
	if len(p.fillRects) != 2 {
		t.Errorf("drew %d swatches, want 2", len(p.fillRects))
	}
	if !p.hasText("a") || !p.hasText("b") {
		t.Errorf("labels missing from %v", p.texts)
	}
}
