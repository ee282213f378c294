//go:build integration

// Package integration exercises the dashboard pipeline end to end: Lua
// configuration parsing, chart building, data sampling, hit-test element
// generation, and in-place config reload.
//
// Everything here runs headless. Tests that would open an ebiten window
// are excluded because ebiten requires a display environment that is not
// available in CI.
package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/opd-ai/chartkit/internal/config"
	"github.com/opd-ai/chartkit/internal/source"
	"github.com/opd-ai/chartkit/pkg/chart"
	"github.com/opd-ai/chartkit/pkg/chartkit"
	"github.com/opd-ai/chartkit/pkg/geom"
)

// noopPainter satisfies chart.Painter without drawing anywhere, so charts
// can lay out and build their hit-test elements headless.
type noopPainter struct{}

func (noopPainter) SetFillColor(string)                                    {}
func (noopPainter) SetStrokeColor(string)                                  {}
func (noopPainter) SetStrokeWidth(float64)                                 {}
func (noopPainter) SetFontSize(float64)                                    {}
func (noopPainter) FillRect(geom.Rect)                                     {}
func (noopPainter) StrokeRect(geom.Rect)                                   {}
func (noopPainter) FillCircle(geom.Point, float64)                         {}
func (noopPainter) StrokeCircle(geom.Point, float64)                       {}
func (noopPainter) StrokeLine(geom.Point, geom.Point)                      {}
func (noopPainter) FillPolygon([]geom.Point)                               {}
func (noopPainter) FillArc(geom.Point, float64, float64, float64, float64) {}
func (noopPainter) FillText(string, geom.Point)                            {}
func (noopPainter) MeasureText(text string) float64                        { return float64(len(text)) * 7 }
func (noopPainter) Save()                                                  {}
func (noopPainter) Restore()                                               {}
func (noopPainter) Clip(geom.Rect)                                         {}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dashboard.lua")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const fullConfig = `
dashboard.config = {
    width = 1200,
    height = 800,
    columns = 3,
    title = "Integration",
    theme = "dark",
    update_interval = 0.1,
}
dashboard.charts = {
    { type = "line", title = "Trend", source = "synthetic", zoom = true, pan = true },
    { type = "bar", title = "Categories", source = "synthetic" },
    { type = "stacked_bar", title = "Stacked", source = "synthetic", normalized = true },
    { type = "area", title = "Area", source = "synthetic" },
    { type = "scatter", title = "Scatter", source = "synthetic" },
    { type = "pie", title = "Pie", source = "synthetic" },
    { type = "donut", title = "Donut", source = "synthetic", inner_ratio = 0.6 },
    { type = "gauge", title = "Gauge", source = "synthetic" },
    { type = "heatmap", title = "Heatmap", source = "synthetic", colormap = "plasma" },
}
`

// TestConfigToAppPipeline parses a configuration covering every chart type
// and builds a dashboard from it.
func TestConfigToAppPipeline(t *testing.T) {
	path := writeConfig(t, fullConfig)

	app, err := chartkit.New(path, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cfg := app.Config()
	if len(cfg.Charts) != 9 {
		t.Fatalf("charts = %d, want 9", len(cfg.Charts))
	}
	if cfg.Theme != "dark" {
		t.Errorf("theme = %q", cfg.Theme)
	}
	if cfg.UpdateInterval != 100*time.Millisecond {
		t.Errorf("update interval = %v", cfg.UpdateInterval)
	}
}

// TestSampleToElementsPipeline drives a synthetic source through the data
// model into a chart and verifies samples become hoverable elements.
func TestSampleToElementsPipeline(t *testing.T) {
	syn := source.NewSynthetic("load", 30, 42)
	provider := source.NewProvider(syn)

	for i := 0; i < 10; i++ {
		if err := provider.Update(); err != nil {
			t.Fatalf("Update %d: %v", i, err)
		}
	}

	opts := chart.DefaultOptions()
	opts.Title = "Load"
	c := chart.NewLineChart(syn.Series(), opts)

	c.Redraw(noopPainter{}, geom.Size{Width: 640, Height: 360})
	if c.Dirty() {
		t.Error("chart should be clean after Redraw")
	}
	if len(c.Elements()) == 0 {
		t.Fatal("sampled chart produced no hit-test elements")
	}

	// Sweeping the cursor across the plot area must hit at least one
	// data point.
	var hovered *chart.HoverEvent
	c.OnHover(func(ev chart.HoverEvent) { hovered = &ev })

	plot := c.Layout().PlotArea
	for y := plot.Y; y < plot.Y+plot.Height && hovered == nil; y += 4 {
		for x := plot.X; x < plot.X+plot.Width && hovered == nil; x += 4 {
			c.CursorPos(chart.MouseEvent{Pos: geom.Pt(x, y)})
		}
	}
	if hovered == nil {
		t.Fatal("cursor sweep over the plot area never hovered a point")
	}
	if !c.IsHovered(hovered.SeriesIndex, hovered.DataIndex) {
		t.Errorf("hovered point (%d, %d) not reflected by IsHovered",
			hovered.SeriesIndex, hovered.DataIndex)
	}
}

// TestReloadPipeline rewrites the config file and reloads the running app.
func TestReloadPipeline(t *testing.T) {
	path := writeConfig(t, fullConfig)

	app, err := chartkit.New(path, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	next := `
dashboard.config = { title = "Integration" }
dashboard.charts = {
    { type = "gauge", title = "Only", source = "cpu" },
}
`
	if err := os.WriteFile(path, []byte(next), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if err := app.ReloadConfig(); err != nil {
		t.Fatalf("ReloadConfig: %v", err)
	}
	if got := app.Config().Charts; len(got) != 1 || got[0].Source != "cpu" {
		t.Errorf("charts after reload = %+v", got)
	}
}

// TestWatcherTriggersReload wires the config watcher to a parser the way
// the app does and checks a file edit produces a fresh config.
func TestWatcherTriggersReload(t *testing.T) {
	path := writeConfig(t, fullConfig)

	reloaded := make(chan int, 1)
	w, err := config.NewWatcher(path, 50*time.Millisecond, func() error {
		p := config.NewParser()
		defer p.Close()
		cfg, err := p.ParseFile(path)
		if err != nil {
			return err
		}
		select {
		case reloaded <- len(cfg.Charts):
		default:
		}
		return nil
	}, func(err error) { t.Logf("watch error: %v", err) })
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	w.Start()
	defer w.Stop()

	next := `dashboard.charts = { { type = "line", source = "synthetic" } }`
	if err := os.WriteFile(path, []byte(next), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	select {
	case n := <-reloaded:
		if n != 1 {
			t.Errorf("reloaded chart count = %d, want 1", n)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not trigger a reload")
	}
}
