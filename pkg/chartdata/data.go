package chartdata

// PointKey identifies a single data point as (series index, data index).
type PointKey struct {
	Series int
	Data   int
}

// Base holds the state shared by every chart data model: title, legend and
// animation configuration, plus the UI state that is not part of the data
// itself (series/point visibility and point selection).
//
// The visibility and selection maps are sparse: absence means the default
// (visible, not selected). They are never materialized for every index.
type Base struct {
	Observable

	Title     string
	Subtitle  string
	Legend    LegendConfig
	Animation AnimationConfig

	seriesVisibility map[int]bool
	dataVisibility   map[PointKey]bool
	selected         map[PointKey]struct{}
}

// NewBase returns a Base with default legend and animation configuration.
func NewBase(title string) Base {
	return Base{
		Title:     title,
		Legend:    DefaultLegend(),
		Animation: DefaultAnimation(),
	}
}

// IsSeriesVisible reports whether a series is visible. Series are visible by
// default.
func (b *Base) IsSeriesVisible(seriesIndex int) bool {
	if v, ok := b.seriesVisibility[seriesIndex]; ok {
		return v
	}
	return true
}

// SetSeriesVisibility sets a series' visibility and notifies observers.
func (b *Base) SetSeriesVisibility(seriesIndex int, visible bool) {
	if b.seriesVisibility == nil {
		b.seriesVisibility = make(map[int]bool)
	}
	b.seriesVisibility[seriesIndex] = visible
	b.Notify(nil)
}

// ToggleSeriesVisibility flips a series' visibility and notifies observers.
func (b *Base) ToggleSeriesVisibility(seriesIndex int) {
	b.SetSeriesVisibility(seriesIndex, !b.IsSeriesVisible(seriesIndex))
}

// IsDataVisible reports whether a single data point is visible. Points are
// visible by default. Used by pie charts to hide individual slices.
func (b *Base) IsDataVisible(seriesIndex, dataIndex int) bool {
	if v, ok := b.dataVisibility[PointKey{seriesIndex, dataIndex}]; ok {
		return v
	}
	return true
}

// SetDataVisibility sets a data point's visibility and notifies observers.
func (b *Base) SetDataVisibility(seriesIndex, dataIndex int, visible bool) {
	if b.dataVisibility == nil {
		b.dataVisibility = make(map[PointKey]bool)
	}
	b.dataVisibility[PointKey{seriesIndex, dataIndex}] = visible
	b.Notify(nil)
}

// ToggleDataVisibility flips a data point's visibility and notifies observers.
func (b *Base) ToggleDataVisibility(seriesIndex, dataIndex int) {
	b.SetDataVisibility(seriesIndex, dataIndex, !b.IsDataVisible(seriesIndex, dataIndex))
}

// IsSelected reports whether a data point is selected.
func (b *Base) IsSelected(seriesIndex, dataIndex int) bool {
	_, ok := b.selected[PointKey{seriesIndex, dataIndex}]
	return ok
}

// SelectPoint marks a data point as selected and notifies observers.
func (b *Base) SelectPoint(seriesIndex, dataIndex int) {
	if b.selected == nil {
		b.selected = make(map[PointKey]struct{})
	}
	b.selected[PointKey{seriesIndex, dataIndex}] = struct{}{}
	b.Notify(nil)
}

// DeselectPoint removes a data point from the selection and notifies
// observers.
func (b *Base) DeselectPoint(seriesIndex, dataIndex int) {
	delete(b.selected, PointKey{seriesIndex, dataIndex})
	b.Notify(nil)
}

// ClearSelection removes every selected point and notifies observers.
func (b *Base) ClearSelection() {
	clear(b.selected)
	b.Notify(nil)
}

// SelectedPoints returns a copy of the selected point keys.
func (b *Base) SelectedPoints() []PointKey {
	out := make([]PointKey, 0, len(b.selected))
	for k := range b.selected {
		out = append(out, k)
	}
	return out
}

// Categorical is the data model for bar, pie and stacked bar charts.
type Categorical struct {
	Base
	Series []CategoricalSeries
	XAxis  AxisConfig
	YAxis  AxisConfig
}

// NewCategorical creates an empty categorical data model.
func NewCategorical(title string) *Categorical {
	x := DefaultXAxis()
	x.Type = AxisCategorical
	return &Categorical{
		Base:  NewBase(title),
		XAxis: x,
		YAxis: DefaultYAxis(),
	}
}

// AddSeries appends a series and notifies observers.
func (d *Categorical) AddSeries(s CategoricalSeries) {
	d.Series = append(d.Series, s)
	d.Notify(nil)
}

// SetSeries replaces all series and notifies observers.
func (d *Categorical) SetSeries(series []CategoricalSeries) {
	d.Series = series
	d.Notify(nil)
}

// UpdateSeries replaces the series at index and notifies observers.
// Out-of-range indexes are ignored.
func (d *Categorical) UpdateSeries(index int, s CategoricalSeries) {
	if index < 0 || index >= len(d.Series) {
		return
	}
	d.Series[index] = s
	d.Notify(nil)
}

// AllCategories returns the unique categories across all series, in
// first-seen order.
func (d *Categorical) AllCategories() []string {
	var categories []string
	seen := make(map[string]struct{})
	for _, s := range d.Series {
		for _, p := range s.Data {
			if _, ok := seen[p.Category]; !ok {
				seen[p.Category] = struct{}{}
				categories = append(categories, p.Category)
			}
		}
	}
	return categories
}

// MaxValue returns the maximum value across visible series, never negative.
func (d *Categorical) MaxValue() float64 {
	maxVal := 0.0
	for i, s := range d.Series {
		if !d.IsSeriesVisible(i) {
			continue
		}
		for _, p := range s.Data {
			if p.Value > maxVal {
				maxVal = p.Value
			}
		}
	}
	return maxVal
}

// Numeric is the data model for line, scatter and area charts.
type Numeric struct {
	Base
	Series []NumericSeries
	XAxis  AxisConfig
	YAxis  AxisConfig
}

// NewNumeric creates an empty numeric data model.
func NewNumeric(title string) *Numeric {
	return &Numeric{
		Base:  NewBase(title),
		XAxis: DefaultXAxis(),
		YAxis: DefaultYAxis(),
	}
}

// AddSeries appends a series and notifies observers.
func (d *Numeric) AddSeries(s NumericSeries) {
	d.Series = append(d.Series, s)
	d.Notify(nil)
}

// SetSeries replaces all series and notifies observers.
func (d *Numeric) SetSeries(series []NumericSeries) {
	d.Series = series
	d.Notify(nil)
}

// UpdateSeries replaces the series at index and notifies observers.
// Out-of-range indexes are ignored.
func (d *Numeric) UpdateSeries(index int, s NumericSeries) {
	if index < 0 || index >= len(d.Series) {
		return
	}
	d.Series[index] = s
	d.Notify(nil)
}

// XRange returns the (min, max) x extent over visible series, or (0, 1)
// when there is no visible data.
func (d *Numeric) XRange() (float64, float64) {
	return d.visibleRange(func(p NumericDataPoint) float64 { return p.X })
}

// YRange returns the (min, max) y extent over visible series, or (0, 1)
// when there is no visible data.
func (d *Numeric) YRange() (float64, float64) {
	return d.visibleRange(func(p NumericDataPoint) float64 { return p.Y })
}

func (d *Numeric) visibleRange(get func(NumericDataPoint) float64) (float64, float64) {
	found := false
	var lo, hi float64
	for i, s := range d.Series {
		if !d.IsSeriesVisible(i) {
			continue
		}
		for _, p := range s.Data {
			v := get(p)
			if !found {
				lo, hi = v, v
				found = true
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if !found {
		return 0, 1
	}
	return lo, hi
}

// Threshold colors the gauge arc from Percentage up to the next threshold.
type Threshold struct {
	Percentage float64
	Color      string
}

// Gauge is the data model for gauge charts: a single scalar value within a
// range, with color thresholds.
type Gauge struct {
	Base

	Value    float64
	MinValue float64
	MaxValue float64

	ArcWidth   float64
	StartAngle float64 // degrees, -135 = bottom-left
	EndAngle   float64 // degrees, 135 = bottom-right

	// Thresholds must be sorted ascending by percentage.
	Thresholds []Threshold

	BackgroundColor string
	ShowValue       bool
	ValueFormat     string
}

// NewGauge creates a gauge over [0, 100] with the default three-quarter arc
// and red/amber/green thresholds.
func NewGauge(title string) *Gauge {
	return &Gauge{
		Base:       NewBase(title),
		MinValue:   0,
		MaxValue:   100,
		ArcWidth:   20,
		StartAngle: -135,
		EndAngle:   135,
		Thresholds: []Threshold{
			{0.0, "#ef4444"},
			{0.33, "#f59e0b"},
			{0.66, "#22c55e"},
		},
		BackgroundColor: "#e5e7eb",
		ShowValue:       true,
		ValueFormat:     "%.0f",
	}
}

// SetValue sets the gauge value and notifies observers.
func (g *Gauge) SetValue(value float64) {
	g.Value = value
	g.Notify(nil)
}

// Percentage returns the current value as a fraction of the range, or 0 when
// the range is degenerate.
func (g *Gauge) Percentage() float64 {
	span := g.MaxValue - g.MinValue
	if span == 0 {
		return 0
	}
	return (g.Value - g.MinValue) / span
}

// CurrentColor returns the color of the highest threshold at or below the
// current percentage, falling back to the first threshold's color.
func (g *Gauge) CurrentColor() string {
	if len(g.Thresholds) == 0 {
		return "#3b82f6"
	}
	pct := g.Percentage()
	color := g.Thresholds[0].Color
	for _, th := range g.Thresholds {
		if pct >= th.Percentage {
			color = th.Color
		}
	}
	return color
}
