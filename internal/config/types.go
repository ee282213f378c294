// Package config loads chartkit dashboard configurations written in Lua.
// A config file populates the dashboard.config table with window settings
// and the dashboard.charts array with one entry per chart widget.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownChartType is returned when a chart entry names a type the
// dashboard cannot build.
var ErrUnknownChartType = errors.New("unknown chart type")

// ErrUnknownSource is returned when a chart entry names a data source the
// dashboard cannot sample.
var ErrUnknownSource = errors.New("unknown data source")

// ChartTypes lists the chart type names accepted in dashboard.charts.
var ChartTypes = []string{
	"bar", "stacked_bar", "line", "area", "scatter", "pie", "donut", "gauge", "heatmap",
}

// Sources lists the data source names accepted in dashboard.charts.
var Sources = []string{"cpu", "memory", "synthetic"}

// WindowConfig describes the dashboard window.
type WindowConfig struct {
	Width       int
	Height      int
	Columns     int
	Title       string
	Background  string
	SkipTaskbar bool
	SkipPager   bool
}

// ChartConfig describes one chart cell in the dashboard grid.
type ChartConfig struct {
	Type   string
	Title  string
	Source string

	ShowLegend    bool
	EnableTooltip bool
	EnableZoom    bool
	EnablePan     bool

	// History is the number of samples time-series charts keep.
	History int
	// Min and Max bound gauge charts.
	Min float64
	Max float64
	// InnerRatio carves the hole of donut charts, 0 to 0.95.
	InnerRatio float64
	// Normalized switches stacked bars to percent-of-total mode.
	Normalized bool
	// Colormap names the heatmap gradient (viridis, plasma, coolwarm, grayscale).
	Colormap string
}

// Config is a fully parsed dashboard configuration.
type Config struct {
	Window         WindowConfig
	Theme          string
	UpdateInterval time.Duration
	Charts         []ChartConfig
}

// DefaultConfig returns the configuration used when dashboard.config is
// absent or partial.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:      1024,
			Height:     768,
			Columns:    2,
			Title:      "chartkit",
			Background: "#f5f5f5",
		},
		Theme:          "light",
		UpdateInterval: time.Second,
	}
}

// DefaultChartConfig returns the per-chart defaults applied before a
// dashboard.charts entry overrides them.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Type:          "line",
		Source:        "synthetic",
		ShowLegend:    true,
		EnableTooltip: true,
		History:       60,
		Min:           0,
		Max:           100,
		Colormap:      "viridis",
	}
}

// Validate checks the configuration for values the dashboard cannot run
// with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d is not positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.Columns < 1 {
		return fmt.Errorf("columns must be at least 1, got %d", c.Window.Columns)
	}
	if c.Theme != "light" && c.Theme != "dark" {
		return fmt.Errorf("theme must be light or dark, got %q", c.Theme)
	}
	if c.UpdateInterval <= 0 {
		return fmt.Errorf("update_interval must be positive, got %v", c.UpdateInterval)
	}

	for i, chart := range c.Charts {
		if err := chart.validate(); err != nil {
			return fmt.Errorf("chart %d: %w", i, err)
		}
	}
	return nil
}

func (cc *ChartConfig) validate() error {
	if !contains(ChartTypes, cc.Type) {
		return fmt.Errorf("%w %q", ErrUnknownChartType, cc.Type)
	}
	if !contains(Sources, cc.Source) {
		return fmt.Errorf("%w %q", ErrUnknownSource, cc.Source)
	}
	if cc.History < 2 {
		return fmt.Errorf("history must be at least 2, got %d", cc.History)
	}
	if cc.Max <= cc.Min {
		return fmt.Errorf("max %v must exceed min %v", cc.Max, cc.Min)
	}
	if cc.InnerRatio < 0 || cc.InnerRatio > 0.95 {
		return fmt.Errorf("inner_ratio %v out of range [0, 0.95]", cc.InnerRatio)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
