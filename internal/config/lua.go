package config

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/arnodel/golua/lib"
	rt "github.com/arnodel/golua/runtime"
)

// Parser executes Lua dashboard configurations and extracts the
// dashboard.config table and dashboard.charts array. Scripts run under
// hard CPU and memory limits so a runaway config cannot hang the
// dashboard.
type Parser struct {
	runtime *rt.Runtime
	cleanup func()
	mu      sync.Mutex
}

// NewParser creates a Parser with a fresh Lua runtime. Lua print output
// is discarded.
func NewParser() *Parser {
	return NewParserWithOutput(io.Discard)
}

// NewParserWithOutput creates a Parser whose Lua print output goes to
// stdout.
func NewParserWithOutput(stdout io.Writer) *Parser {
	if stdout == nil {
		stdout = os.Stdout
	}
	runtime := rt.New(stdout)
	cleanup := lib.LoadAll(runtime)
	return &Parser{runtime: runtime, cleanup: cleanup}
}

// ParseFile reads and parses a Lua configuration file.
func (p *Parser) ParseFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return p.Parse(content)
}

// Parse executes the Lua configuration and extracts the dashboard tables.
func (p *Parser) Parse(content []byte) (*Config, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.initDashboardGlobal()

	closure, err := p.runtime.CompileAndLoadLuaChunk(
		"config",
		content,
		rt.TableValue(p.runtime.GlobalEnv()),
	)
	if err != nil {
		return nil, fmt.Errorf("compiling Lua configuration: %w", err)
	}

	ctx := rt.RuntimeContextDef{
		HardLimits: rt.RuntimeResources{
			Cpu:    10_000_000,
			Memory: 50 * 1024 * 1024,
		},
	}
	p.runtime.PushContext(ctx)
	defer p.runtime.PopContext()

	if _, err := rt.Call1(p.runtime.MainThread(), rt.FunctionValue(closure)); err != nil {
		return nil, fmt.Errorf("executing Lua configuration: %w", err)
	}

	cfg, err := p.extract()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Close releases the parser's Lua runtime.
func (p *Parser) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cleanup != nil {
		p.cleanup()
		p.cleanup = nil
	}
	return nil
}

// initDashboardGlobal seeds the dashboard global with empty config and
// charts tables so scripts can assign fields directly.
func (p *Parser) initDashboardGlobal() {
	dashboard := rt.NewTable()
	dashboard.Set(rt.StringValue("config"), rt.TableValue(rt.NewTable()))
	dashboard.Set(rt.StringValue("charts"), rt.TableValue(rt.NewTable()))
	p.runtime.GlobalEnv().Set(rt.StringValue("dashboard"), rt.TableValue(dashboard))
}

func (p *Parser) extract() (*Config, error) {
	cfg := DefaultConfig()

	dashVal := p.runtime.GlobalEnv().Get(rt.StringValue("dashboard"))
	if dashVal == rt.NilValue {
		return &cfg, nil
	}
	dashboard, ok := dashVal.TryTable()
	if !ok {
		return nil, fmt.Errorf("dashboard is not a table")
	}

	if table, ok := dashboard.Get(rt.StringValue("config")).TryTable(); ok {
		p.extractWindow(&cfg, table)
	}

	if charts, ok := dashboard.Get(rt.StringValue("charts")).TryTable(); ok {
		for i := int64(1); ; i++ {
			entry, ok := charts.Get(rt.IntValue(i)).TryTable()
			if !ok {
				break
			}
			chart, err := extractChart(entry)
			if err != nil {
				return nil, fmt.Errorf("chart %d: %w", i, err)
			}
			cfg.Charts = append(cfg.Charts, chart)
		}
	}

	return &cfg, nil
}

func (p *Parser) extractWindow(cfg *Config, table *rt.Table) {
	if v := tableInt(table, "width"); v != nil {
		cfg.Window.Width = *v
	}
	if v := tableInt(table, "height"); v != nil {
		cfg.Window.Height = *v
	}
	if v := tableInt(table, "columns"); v != nil {
		cfg.Window.Columns = *v
	}
	if v := tableString(table, "title"); v != nil {
		cfg.Window.Title = *v
	}
	if v := tableString(table, "background"); v != nil {
		cfg.Window.Background = *v
	}
	if v := tableBool(table, "skip_taskbar"); v != nil {
		cfg.Window.SkipTaskbar = *v
	}
	if v := tableBool(table, "skip_pager"); v != nil {
		cfg.Window.SkipPager = *v
	}
	if v := tableString(table, "theme"); v != nil {
		cfg.Theme = *v
	}
	if v := tableFloat(table, "update_interval"); v != nil {
		cfg.UpdateInterval = time.Duration(*v * float64(time.Second))
	}
}

func extractChart(table *rt.Table) (ChartConfig, error) {
	cc := DefaultChartConfig()

	if v := tableString(table, "type"); v != nil {
		cc.Type = *v
	}
	if v := tableString(table, "title"); v != nil {
		cc.Title = *v
	}
	if v := tableString(table, "source"); v != nil {
		cc.Source = *v
	}
	if v := tableBool(table, "legend"); v != nil {
		cc.ShowLegend = *v
	}
	if v := tableBool(table, "tooltip"); v != nil {
		cc.EnableTooltip = *v
	}
	if v := tableBool(table, "zoom"); v != nil {
		cc.EnableZoom = *v
	}
	if v := tableBool(table, "pan"); v != nil {
		cc.EnablePan = *v
	}
	if v := tableInt(table, "history"); v != nil {
		cc.History = *v
	}
	if v := tableFloat(table, "min"); v != nil {
		cc.Min = *v
	}
	if v := tableFloat(table, "max"); v != nil {
		cc.Max = *v
	}
	if v := tableFloat(table, "inner_ratio"); v != nil {
		cc.InnerRatio = *v
	}
	if v := tableBool(table, "normalized"); v != nil {
		cc.Normalized = *v
	}
	if v := tableString(table, "colormap"); v != nil {
		cc.Colormap = *v
	}

	// The donut type is a pie with a default hole.
	if cc.Type == "donut" && cc.InnerRatio == 0 {
		cc.InnerRatio = 0.5
	}

	return cc, nil
}

// tableBool retrieves a boolean field, or nil when absent or mistyped.
func tableBool(table *rt.Table, key string) *bool {
	val := table.Get(rt.StringValue(key))
	if b, ok := val.TryBool(); ok {
		return &b
	}
	return nil
}

func tableString(table *rt.Table, key string) *string {
	val := table.Get(rt.StringValue(key))
	if s, ok := val.TryString(); ok {
		return &s
	}
	return nil
}

func tableFloat(table *rt.Table, key string) *float64 {
	val := table.Get(rt.StringValue(key))
	if f, ok := val.TryFloat(); ok {
		return &f
	}
	if i, ok := val.TryInt(); ok {
		f := float64(i)
		return &f
	}
	return nil
}

func tableInt(table *rt.Table, key string) *int {
	val := table.Get(rt.StringValue(key))
	if i, ok := val.TryInt(); ok {
		n := int(i)
		return &n
	}
	if f, ok := val.TryFloat(); ok {
		n := int(f)
		return &n
	}
	return nil
}
