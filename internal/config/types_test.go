package config

import (
	"errors"
	"testing"
)

func validChart() ChartConfig {
	cc := DefaultChartConfig()
	cc.Type = "bar"
	cc.Source = "cpu"
	return cc
}

func TestValidateDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative height", func(c *Config) { c.Window.Height = -10 }},
		{"zero columns", func(c *Config) { c.Window.Columns = 0 }},
		{"bad theme", func(c *Config) { c.Theme = "solarized" }},
		{"zero interval", func(c *Config) { c.UpdateInterval = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestValidateChartRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ChartConfig)
		wantErr error
	}{
		{"unknown type", func(c *ChartConfig) { c.Type = "treemap" }, ErrUnknownChartType},
		{"unknown source", func(c *ChartConfig) { c.Source = "gpu" }, ErrUnknownSource},
		{"short history", func(c *ChartConfig) { c.History = 1 }, nil},
		{"inverted bounds", func(c *ChartConfig) { c.Min = 10; c.Max = 5 }, nil},
		{"inner ratio too big", func(c *ChartConfig) { c.InnerRatio = 0.99 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			chart := validChart()
			tt.mutate(&chart)
			cfg.Charts = append(cfg.Charts, chart)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
