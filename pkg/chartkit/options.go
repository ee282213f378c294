package chartkit

import (
	"time"

	"github.com/opd-ai/chartkit/pkg/chart"
)

// DefaultWatchDebounce is the default debounce window for config file
// change events when WatchConfig is enabled.
const DefaultWatchDebounce = 500 * time.Millisecond

// Options configures the dashboard application behavior.
type Options struct {
	// UpdateInterval overrides the configuration file's update_interval.
	// Zero means use the configuration file's value.
	UpdateInterval time.Duration

	// WindowTitle overrides the window title.
	// Empty string means use the configuration file's value.
	WindowTitle string

	// Logger sets a custom logger for debug/info messages.
	// If nil, a default stderr slog logger is used.
	Logger chart.Logger

	// WatchConfig enables automatic hot-reloading when the configuration
	// file changes on disk. Charts are rebuilt in place; the window stays
	// open.
	WatchConfig bool

	// WatchDebounce sets the debounce interval for file change events.
	// Multiple rapid modifications within this window trigger a single
	// reload. Zero means use DefaultWatchDebounce.
	WatchDebounce time.Duration
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		WatchDebounce: DefaultWatchDebounce,
	}
}
