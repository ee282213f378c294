package chartdata

// AxisType identifies the kind of data an axis carries.
type AxisType int

const (
	AxisNumeric AxisType = iota
	AxisCategorical
	AxisTime
)

// AxisPosition identifies where an axis is drawn.
type AxisPosition int

const (
	AxisBottom AxisPosition = iota
	AxisLeft
	AxisTop
	AxisRight
)

// GridStyle configures grid lines drawn at axis ticks.
type GridStyle struct {
	Show      bool
	Color     string
	LineWidth float64
}

// DefaultGridStyle returns the grid styling used when none is set.
func DefaultGridStyle() GridStyle {
	return GridStyle{Show: true, Color: "#e5e7eb", LineWidth: 1.0}
}

// AxisConfig configures one chart axis. Zero min/max with Auto set means the
// range is derived from the data.
type AxisConfig struct {
	Title     string
	Position  AxisPosition
	Type      AxisType
	Auto      bool // derive min/max from data
	MinValue  float64
	MaxValue  float64
	TickCount int
	Grid      GridStyle
}

// DefaultXAxis returns the default bottom numeric axis configuration.
func DefaultXAxis() AxisConfig {
	return AxisConfig{Position: AxisBottom, Auto: true, TickCount: 5, Grid: DefaultGridStyle()}
}

// DefaultYAxis returns the default left numeric axis configuration.
func DefaultYAxis() AxisConfig {
	return AxisConfig{Position: AxisLeft, Auto: true, TickCount: 5, Grid: DefaultGridStyle()}
}

// LegendPosition identifies where the legend is drawn.
type LegendPosition int

const (
	LegendBottom LegendPosition = iota
	LegendTop
	LegendLeft
	LegendRight
	LegendHidden
)

// LegendConfig configures the chart legend.
type LegendConfig struct {
	Position    LegendPosition
	Show        bool
	FontSize    float64
	ItemSpacing float64
	// Interactive makes clicking a legend entry toggle the visibility of
	// the series (or the data point, for per-slice legends).
	Interactive bool
}

// DefaultLegend returns the legend configuration used when none is set.
func DefaultLegend() LegendConfig {
	return LegendConfig{
		Position:    LegendBottom,
		Show:        true,
		FontSize:    12,
		ItemSpacing: 16,
		Interactive: true,
	}
}

// Easing identifies an animation easing function.
type Easing int

const (
	EaseLinear Easing = iota
	EaseIn
	EaseOut
	EaseInOut
	EaseOutCubic
)

// AnimationConfig configures chart entry animations. The core carries the
// configuration; running the timeline is up to the hosting application.
type AnimationConfig struct {
	Enabled    bool
	DurationMS int
	Easing     Easing
	DelayMS    int
	StaggerMS  int
}

// DefaultAnimation returns the animation configuration used when none is set.
func DefaultAnimation() AnimationConfig {
	return AnimationConfig{
		Enabled:    true,
		DurationMS: 500,
		Easing:     EaseOutCubic,
		StaggerMS:  50,
	}
}
