package drilldown

import (
	"testing"

	"github.com/opd-ai/chartkit/pkg/chart"
	"github.com/opd-ai/chartkit/pkg/chartdata"
)

func newTestBarChart(t *testing.T) *BarChart {
	t.Helper()
	opts := chart.DefaultOptions()
	opts.Title = "Sales"
	return NewBarChart(regionTree(), opts)
}

func TestBarChartStartsAtRoot(t *testing.T) {
	c := newTestBarChart(t)

	if c.State().CurrentDepth() != 0 {
		t.Errorf("depth = %d, want 0", c.State().CurrentDepth())
	}
	if c.Title() != "Sales" {
		t.Errorf("title = %q, want Sales", c.Title())
	}
	if len(c.model.Series) != 1 || len(c.model.Series[0].Data) != 2 {
		t.Fatalf("root model = %d series", len(c.model.Series))
	}
}

func TestBarChartClickDescends(t *testing.T) {
	c := newTestBarChart(t)

	// Clicking the NA bar drills into the North America node and swaps
	// the chart data in place.
	c.handleClick(chart.ClickEvent{SeriesIndex: 0, DataIndex: 0})

	if c.State().CurrentDepth() != 1 {
		t.Fatalf("depth after click = %d, want 1", c.State().CurrentDepth())
	}
	series := c.model.Series[0]
	if len(series.Data) != 2 || series.Data[0].Category != "US" {
		t.Errorf("model not refreshed, first category = %q", series.Data[0].Category)
	}
	if c.Title() != "North America" {
		t.Errorf("title = %q, want North America", c.Title())
	}
}

func TestBarChartLeafClick(t *testing.T) {
	c := newTestBarChart(t)

	var leafNode, leafKey string
	c.OnLeafClick(func(node *chartdata.Node, key string) {
		leafNode = node.ID
		leafKey = key
	})

	// EU has no child, so the click falls through to the leaf callback
	// and the view stays put.
	c.handleClick(chart.ClickEvent{SeriesIndex: 0, DataIndex: 1})

	if c.State().CurrentDepth() != 0 {
		t.Errorf("leaf click moved the view to depth %d", c.State().CurrentDepth())
	}
	if leafNode != "world" || leafKey != "EU" {
		t.Errorf("leaf callback got node %q key %q", leafNode, leafKey)
	}
}

func TestBarChartDrillUpRestoresRoot(t *testing.T) {
	c := newTestBarChart(t)
	c.handleClick(chart.ClickEvent{SeriesIndex: 0, DataIndex: 0})

	if !c.DrillUp() {
		t.Fatal("DrillUp failed")
	}
	if c.Title() != "Sales" {
		t.Errorf("title after drill up = %q, want the root title", c.Title())
	}
	if c.model.Series[0].Data[0].Category != "NA" {
		t.Errorf("model not refreshed to root data, got %q", c.model.Series[0].Data[0].Category)
	}
}

func TestBarChartLevelNameTitle(t *testing.T) {
	h := regionTree()
	h.FindNode("na").LevelName = "Region"

	opts := chart.DefaultOptions()
	opts.Title = "Sales"
	c := NewBarChart(h, opts)
	c.handleClick(chart.ClickEvent{SeriesIndex: 0, DataIndex: 0})

	if c.Title() != "Region: North America" {
		t.Errorf("title = %q", c.Title())
	}
}

func TestBarChartIgnoresOutOfRangeClicks(t *testing.T) {
	c := newTestBarChart(t)

	c.handleClick(chart.ClickEvent{SeriesIndex: -1, DataIndex: -1})
	c.handleClick(chart.ClickEvent{SeriesIndex: 5, DataIndex: 0})
	c.handleClick(chart.ClickEvent{SeriesIndex: 0, DataIndex: 9})

	if c.State().CurrentDepth() != 0 {
		t.Errorf("stray clicks moved the view to depth %d", c.State().CurrentDepth())
	}
}
