package chartkit

import (
	"fmt"
	"time"

	"github.com/opd-ai/chartkit/internal/config"
	"github.com/opd-ai/chartkit/internal/render"
	"github.com/opd-ai/chartkit/internal/source"
	"github.com/opd-ai/chartkit/pkg/chart"
	"github.com/opd-ai/chartkit/pkg/chartdata"
)

// sources creates samplers on demand so that charts reading the same
// source share one sampler and its data models. History per source is
// the maximum any chart bound to it asked for.
type sources struct {
	histories map[string]int

	cpu       *source.CPU
	memory    *source.Memory
	synthetic *source.Synthetic
}

func newSources(charts []config.ChartConfig) *sources {
	s := &sources{histories: make(map[string]int)}
	for _, cc := range charts {
		if cc.History > s.histories[cc.Source] {
			s.histories[cc.Source] = cc.History
		}
	}
	return s
}

func (s *sources) cpuSource() *source.CPU {
	if s.cpu == nil {
		s.cpu = source.NewCPU(s.histories["cpu"])
	}
	return s.cpu
}

func (s *sources) memorySource() *source.Memory {
	if s.memory == nil {
		s.memory = source.NewMemory(s.histories["memory"])
	}
	return s.memory
}

func (s *sources) syntheticSource() *source.Synthetic {
	if s.synthetic == nil {
		s.synthetic = source.NewSynthetic("synthetic", s.histories["synthetic"], time.Now().UnixNano())
	}
	return s.synthetic
}

// provider collects every sampler a chart actually bound to.
func (s *sources) provider() *source.Provider {
	p := source.NewProvider()
	if s.cpu != nil {
		p.Add(s.cpu)
	}
	if s.memory != nil {
		p.Add(s.memory)
	}
	if s.synthetic != nil {
		p.Add(s.synthetic)
	}
	return p
}

func (s *sources) categorical(name string) (*chartdata.Categorical, error) {
	switch name {
	case "cpu":
		return s.cpuSource().Cores(), nil
	case "memory":
		return s.memorySource().Breakdown(), nil
	case "synthetic":
		return s.syntheticSource().Categories(), nil
	}
	return nil, fmt.Errorf("source %q: %w", name, config.ErrUnknownSource)
}

func (s *sources) numeric(name string) (*chartdata.Numeric, error) {
	switch name {
	case "cpu":
		return s.cpuSource().Series(), nil
	case "memory":
		return s.memorySource().Series(), nil
	case "synthetic":
		return s.syntheticSource().Series(), nil
	}
	return nil, fmt.Errorf("source %q: %w", name, config.ErrUnknownSource)
}

func (s *sources) gauge(name string) (*chartdata.Gauge, error) {
	switch name {
	case "cpu":
		return s.cpuSource().Gauge(), nil
	case "memory":
		return s.memorySource().Gauge(), nil
	case "synthetic":
		return s.syntheticSource().Gauge(), nil
	}
	return nil, fmt.Errorf("source %q: %w", name, config.ErrUnknownSource)
}

func (s *sources) heatmap(name string) (*chartdata.Heatmap, error) {
	switch name {
	case "cpu":
		return s.cpuSource().Heatmap(), nil
	case "synthetic":
		return s.syntheticSource().Heatmap(), nil
	case "memory":
		return nil, fmt.Errorf("source %q has no heatmap model", name)
	}
	return nil, fmt.Errorf("source %q: %w", name, config.ErrUnknownSource)
}

// buildCharts turns the parsed configuration into chart widgets bound to
// shared data sources, plus the provider that refreshes those sources.
func buildCharts(cfg *config.Config) ([]render.Chart, *source.Provider, error) {
	srcs := newSources(cfg.Charts)
	theme := chart.LightTheme()
	if cfg.Theme == "dark" {
		theme = chart.DarkTheme()
	}

	charts := make([]render.Chart, 0, len(cfg.Charts))
	for i, cc := range cfg.Charts {
		c, err := buildChart(cc, srcs, theme)
		if err != nil {
			return nil, nil, fmt.Errorf("chart %d: %w", i+1, err)
		}
		charts = append(charts, c)
	}
	return charts, srcs.provider(), nil
}

func buildChart(cc config.ChartConfig, srcs *sources, theme chart.Theme) (render.Chart, error) {
	opts := chart.DefaultOptions()
	opts.Title = cc.Title
	opts.ShowLegend = cc.ShowLegend
	opts.EnableTooltip = cc.EnableTooltip
	opts.EnableZoom = cc.EnableZoom
	opts.EnablePan = cc.EnablePan
	opts.Theme = theme

	switch cc.Type {
	case "bar":
		model, err := srcs.categorical(cc.Source)
		if err != nil {
			return nil, err
		}
		return chart.NewBarChart(model, opts), nil

	case "stacked_bar":
		model, err := srcs.categorical(cc.Source)
		if err != nil {
			return nil, err
		}
		c := chart.NewStackedBarChart(model, opts)
		c.SetNormalized(cc.Normalized)
		return c, nil

	case "pie", "donut":
		model, err := srcs.categorical(cc.Source)
		if err != nil {
			return nil, err
		}
		c := chart.NewPieChart(model, opts)
		if cc.Type == "donut" {
			c.SetInnerRatio(cc.InnerRatio)
		}
		return c, nil

	case "line":
		model, err := srcs.numeric(cc.Source)
		if err != nil {
			return nil, err
		}
		c := chart.NewLineChart(model, opts)
		bindTransform(c, model, cc)
		return c, nil

	case "area":
		model, err := srcs.numeric(cc.Source)
		if err != nil {
			return nil, err
		}
		c := chart.NewAreaChart(model, opts)
		bindTransform(c, model, cc)
		return c, nil

	case "scatter":
		model, err := srcs.numeric(cc.Source)
		if err != nil {
			return nil, err
		}
		c := chart.NewScatterChart(model, opts)
		bindTransform(c, model, cc)
		return c, nil

	case "gauge":
		model, err := srcs.gauge(cc.Source)
		if err != nil {
			return nil, err
		}
		if cc.Max > cc.Min {
			model.MinValue = cc.Min
			model.MaxValue = cc.Max
		}
		return chart.NewGaugeChart(model, opts), nil

	case "heatmap":
		model, err := srcs.heatmap(cc.Source)
		if err != nil {
			return nil, err
		}
		c := chart.NewHeatmapChart(model, opts)
		cm, err := chart.ColormapByName(cc.Colormap)
		if err != nil {
			return nil, err
		}
		c.SetColormap(cm)
		return c, nil
	}
	return nil, fmt.Errorf("type %q: %w", cc.Type, config.ErrUnknownChartType)
}

// transformable is satisfied by every chart embedding chart.BaseChart.
type transformable interface {
	SetTransform(t *chart.Transform)
	MarkDirty()
}

// bindTransform gives zoomable and pannable charts a transform that
// tracks the model's data bounds as samples roll in.
func bindTransform(c transformable, model *chartdata.Numeric, cc config.ChartConfig) {
	if !cc.EnableZoom && !cc.EnablePan {
		return
	}
	tr := chart.NewTransform(numericBounds(model))
	c.SetTransform(tr)
	model.Attach(chartdata.ObserveFunc(func(any) {
		tr.SetDataBounds(numericBounds(model))
	}))
}

// numericBounds computes the data-space window of a numeric model,
// padding degenerate axes so the transform always has area to work with.
func numericBounds(model *chartdata.Numeric) chart.ViewBounds {
	xMin, xMax := model.XRange()
	yMin, yMax := model.YRange()
	if xMax <= xMin {
		xMax = xMin + 1
	}
	if yMax <= yMin {
		yMax = yMin + 1
	}
	return chart.ViewBounds{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}
}
