package chartkit

import (
	"errors"
	"testing"

	"github.com/opd-ai/chartkit/internal/config"
	"github.com/opd-ai/chartkit/pkg/chart"
)

func testChartConfig(typ, src string) config.ChartConfig {
	cc := config.DefaultChartConfig()
	cc.Type = typ
	cc.Source = src
	return cc
}

func TestBuildChartTypes(t *testing.T) {
	cases := []struct {
		typ    string
		source string
	}{
		{"bar", "cpu"},
		{"bar", "memory"},
		{"stacked_bar", "synthetic"},
		{"line", "cpu"},
		{"line", "memory"},
		{"area", "synthetic"},
		{"scatter", "synthetic"},
		{"pie", "memory"},
		{"donut", "synthetic"},
		{"gauge", "cpu"},
		{"gauge", "memory"},
		{"heatmap", "cpu"},
		{"heatmap", "synthetic"},
	}
	for _, tc := range cases {
		cc := testChartConfig(tc.typ, tc.source)
		srcs := newSources([]config.ChartConfig{cc})
		if _, err := buildChart(cc, srcs, chart.LightTheme()); err != nil {
			t.Errorf("buildChart(%s, %s): %v", tc.typ, tc.source, err)
		}
	}
}

func TestBuildChartRejectsUnknowns(t *testing.T) {
	srcs := newSources(nil)

	_, err := buildChart(testChartConfig("sparkline", "cpu"), srcs, chart.LightTheme())
	if !errors.Is(err, config.ErrUnknownChartType) {
		t.Errorf("unknown type error = %v", err)
	}

	_, err = buildChart(testChartConfig("line", "disk"), srcs, chart.LightTheme())
	if !errors.Is(err, config.ErrUnknownSource) {
		t.Errorf("unknown source error = %v", err)
	}
}

func TestBuildChartMemoryHeatmapUnsupported(t *testing.T) {
	srcs := newSources(nil)
	if _, err := buildChart(testChartConfig("heatmap", "memory"), srcs, chart.LightTheme()); err == nil {
		t.Error("memory source should not offer a heatmap model")
	}
}

func TestSourcesShareSamplers(t *testing.T) {
	charts := []config.ChartConfig{
		testChartConfig("line", "cpu"),
		testChartConfig("gauge", "cpu"),
	}
	srcs := newSources(charts)

	for _, cc := range charts {
		if _, err := buildChart(cc, srcs, chart.LightTheme()); err != nil {
			t.Fatalf("buildChart: %v", err)
		}
	}
	if srcs.cpu == nil {
		t.Fatal("cpu sampler not created")
	}
	if srcs.memory != nil || srcs.synthetic != nil {
		t.Error("unused samplers should stay nil")
	}
	if srcs.cpuSource() != srcs.cpu {
		t.Error("cpuSource should return the shared sampler")
	}
}

func TestSourcesHistoryIsMaxRequested(t *testing.T) {
	a := testChartConfig("line", "synthetic")
	a.History = 30
	b := testChartConfig("area", "synthetic")
	b.History = 120

	srcs := newSources([]config.ChartConfig{a, b})
	if got := srcs.histories["synthetic"]; got != 120 {
		t.Errorf("synthetic history = %d, want 120", got)
	}
}

func TestGaugeRangeFromConfig(t *testing.T) {
	cc := testChartConfig("gauge", "synthetic")
	cc.Min = 10
	cc.Max = 90
	srcs := newSources([]config.ChartConfig{cc})

	if _, err := buildChart(cc, srcs, chart.LightTheme()); err != nil {
		t.Fatalf("buildChart: %v", err)
	}
	g := srcs.syntheticSource().Gauge()
	if g.MinValue != 10 || g.MaxValue != 90 {
		t.Errorf("gauge range = [%v, %v], want [10, 90]", g.MinValue, g.MaxValue)
	}
}

func TestBuildChartsBadColormap(t *testing.T) {
	cc := testChartConfig("heatmap", "synthetic")
	cc.Colormap = "rainbow"
	cfg := config.DefaultConfig()
	cfg.Charts = []config.ChartConfig{cc}

	if _, _, err := buildCharts(&cfg); err == nil {
		t.Error("unknown colormap should fail the build")
	}
}

func TestNumericBoundsPadsDegenerateAxes(t *testing.T) {
	srcs := newSources(nil)
	model := srcs.syntheticSource().Series()

	b := numericBounds(model)
	if b.Width() <= 0 || b.Height() <= 0 {
		t.Errorf("empty model bounds %+v should have positive area", b)
	}
}
