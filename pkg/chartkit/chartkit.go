// Package chartkit is the embedding facade for the chart dashboard. It
// parses a Lua configuration file, builds the configured chart widgets
// bound to live data sources, and runs them in an ebiten window with
// optional config hot-reloading.
//
// Example:
//
//	app, err := chartkit.New("dashboard.lua", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := app.Run(context.Background()); err != nil {
//		log.Fatal(err)
//	}
package chartkit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/opd-ai/chartkit/internal/config"
	"github.com/opd-ai/chartkit/internal/render"
	"github.com/opd-ai/chartkit/pkg/chart"
)

// App is a configured dashboard ready to run. Run must be called from
// the main goroutine; ebiten owns the main thread on most platforms.
// The other methods are safe to call concurrently.
type App struct {
	mu         sync.Mutex
	configPath string
	opts       Options
	cfg        *config.Config
	dashboard  *render.Dashboard
	logger     chart.Logger
	onError    render.ErrorHandler
}

// New parses the configuration file and builds the dashboard. The window
// is not opened until Run.
func New(configPath string, opts *Options) (*App, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	logger := o.Logger
	if logger == nil {
		logger = chart.DefaultLogger()
	}

	parser := config.NewParser()
	defer parser.Close()

	cfg, err := parser.ParseFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	applyOverrides(cfg, o)

	charts, provider, err := buildCharts(cfg)
	if err != nil {
		return nil, fmt.Errorf("build charts: %w", err)
	}

	app := &App{
		configPath: configPath,
		opts:       o,
		cfg:        cfg,
		logger:     logger,
		onError:    render.DefaultErrorHandler,
	}

	d := render.NewDashboard(dashboardConfig(cfg, logger))
	for _, c := range charts {
		d.AddChart(c)
	}
	d.SetDataProvider(provider)
	d.SetErrorHandler(func(err error) { app.handleError(err) })
	app.dashboard = d

	logger.Info("dashboard built",
		"config", configPath,
		"charts", len(cfg.Charts),
		"interval", cfg.UpdateInterval)
	return app, nil
}

// Run opens the window and blocks until it closes or the context is
// cancelled. When WatchConfig is enabled, edits to the configuration
// file rebuild the charts in place while the window stays open.
func (a *App) Run(ctx context.Context) error {
	a.mu.Lock()
	d := a.dashboard
	cfg := a.cfg
	a.mu.Unlock()

	d.SetContext(ctx)

	if a.opts.WatchConfig {
		debounce := a.opts.WatchDebounce
		if debounce <= 0 {
			debounce = DefaultWatchDebounce
		}
		w, err := config.NewWatcher(a.configPath, debounce, a.ReloadConfig, func(err error) {
			a.logger.Warn("config watch", "error", err)
		})
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
		w.Start()
		defer w.Stop()
	}

	if cfg.Window.SkipTaskbar || cfg.Window.SkipPager {
		skipTaskbar, skipPager := cfg.Window.SkipTaskbar, cfg.Window.SkipPager
		go func() {
			// The window must exist before hints can be applied.
			time.Sleep(500 * time.Millisecond)
			if err := render.ApplyWindowHints(skipTaskbar, skipPager); err != nil {
				a.logger.Warn("window hints", "error", err)
			}
		}()
		defer render.CloseWindowHints()
	}

	return d.Run()
}

// ReloadConfig re-parses the configuration file and swaps the chart grid
// in place. On parse or build failure the running configuration stays
// active and the error is returned.
func (a *App) ReloadConfig() error {
	parser := config.NewParser()
	defer parser.Close()

	cfg, err := parser.ParseFile(a.configPath)
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	applyOverrides(cfg, a.opts)

	charts, provider, err := buildCharts(cfg)
	if err != nil {
		return fmt.Errorf("build charts: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.cfg = cfg
	a.dashboard.ReplaceCharts(charts)
	a.dashboard.SetDataProvider(provider)
	a.dashboard.ApplyConfig(dashboardConfig(cfg, a.logger))

	a.logger.Info("config reloaded", "charts", len(cfg.Charts))
	return nil
}

// SetErrorHandler replaces the handler for data provider errors. A nil
// handler silently drops them.
func (a *App) SetErrorHandler(h render.ErrorHandler) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onError = h
}

// Config returns a copy of the active configuration.
func (a *App) Config() config.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return *a.cfg
}

func (a *App) handleError(err error) {
	a.mu.Lock()
	h := a.onError
	a.mu.Unlock()
	if h != nil {
		h(err)
	}
}

// applyOverrides lets Options trump the configuration file.
func applyOverrides(cfg *config.Config, o Options) {
	if o.UpdateInterval > 0 {
		cfg.UpdateInterval = o.UpdateInterval
	}
	if o.WindowTitle != "" {
		cfg.Window.Title = o.WindowTitle
	}
}

// dashboardConfig maps a parsed configuration onto the render layer's
// window settings.
func dashboardConfig(cfg *config.Config, logger chart.Logger) render.Config {
	rc := render.DefaultConfig()
	rc.Width = cfg.Window.Width
	rc.Height = cfg.Window.Height
	rc.Title = cfg.Window.Title
	rc.Columns = cfg.Window.Columns
	rc.UpdateInterval = cfg.UpdateInterval

	bg, err := render.ParseColor(cfg.Window.Background)
	if err != nil {
		logger.Warn("bad background color, using default",
			"background", cfg.Window.Background, "error", err)
	} else {
		rc.BackgroundColor = bg
	}
	return rc
}
