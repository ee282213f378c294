package chartdata

import "fmt"

// SeriesStyle defines the visual appearance of one data series.
// Colors are hex strings ("#rrggbb").
type SeriesStyle struct {
	Color       string
	FillColor   string // empty means use Color
	FillOpacity float64
	LineWidth   float64
	PointRadius float64
	ShowPoints  bool
	ShowLine    bool
}

// DefaultSeriesStyle returns the style applied to series that do not set one.
func DefaultSeriesStyle() SeriesStyle {
	return SeriesStyle{
		Color:       "#3b82f6",
		FillOpacity: 0.3,
		LineWidth:   2.0,
		PointRadius: 4.0,
		ShowPoints:  true,
		ShowLine:    true,
	}
}

// WithColor returns a copy of the style using the given color.
func (s SeriesStyle) WithColor(color string) SeriesStyle {
	s.Color = color
	return s
}

// WithOpacity returns a copy of the style using the given fill opacity.
func (s SeriesStyle) WithOpacity(opacity float64) SeriesStyle {
	s.FillOpacity = opacity
	return s
}

// CategoricalSeries is a named, ordered sequence of categorical data points.
// Series are treated as immutable once constructed.
type CategoricalSeries struct {
	Name  string
	Data  []DataPoint
	Style SeriesStyle
}

// NewCategoricalSeries creates a series from explicit data points with the
// default style.
func NewCategoricalSeries(name string, data []DataPoint) CategoricalSeries {
	return CategoricalSeries{Name: name, Data: data, Style: DefaultSeriesStyle()}
}

// CategoricalSeriesFromValues creates a series from parallel category and
// value slices. Returns ErrLengthMismatch when the slices differ in length.
func CategoricalSeriesFromValues(name string, categories []string, values []float64) (CategoricalSeries, error) {
	if len(categories) != len(values) {
		return CategoricalSeries{}, fmt.Errorf("series %q: %w", name, ErrLengthMismatch)
	}

	data := make([]DataPoint, len(values))
	for i := range values {
		data[i] = DataPoint{
			Category: categories[i],
			Value:    values[i],
			Label:    categories[i],
		}
	}
	return NewCategoricalSeries(name, data), nil
}

// Categories returns the category of each data point, in order.
func (s CategoricalSeries) Categories() []string {
	out := make([]string, len(s.Data))
	for i, p := range s.Data {
		out[i] = p.Category
	}
	return out
}

// Values returns the value of each data point, in order.
func (s CategoricalSeries) Values() []float64 {
	out := make([]float64, len(s.Data))
	for i, p := range s.Data {
		out[i] = p.Value
	}
	return out
}

// NumericSeries is a named, ordered sequence of (x, y) data points.
// Series are treated as immutable once constructed.
type NumericSeries struct {
	Name  string
	Data  []NumericDataPoint
	Style SeriesStyle
}

// NewNumericSeries creates a series from explicit data points with the
// default style.
func NewNumericSeries(name string, data []NumericDataPoint) NumericSeries {
	return NumericSeries{Name: name, Data: data, Style: DefaultSeriesStyle()}
}

// NumericSeriesFromValues creates a series from parallel x and y slices.
// Returns ErrLengthMismatch when the slices differ in length.
func NumericSeriesFromValues(name string, xs, ys []float64) (NumericSeries, error) {
	if len(xs) != len(ys) {
		return NumericSeries{}, fmt.Errorf("series %q: %w", name, ErrLengthMismatch)
	}

	data := make([]NumericDataPoint, len(xs))
	for i := range xs {
		data[i] = NumericDataPoint{
			X:     xs[i],
			Y:     ys[i],
			Label: fmt.Sprintf("(%g, %g)", xs[i], ys[i]),
		}
	}
	return NewNumericSeries(name, data), nil
}

// NumericSeriesFromYValues creates a series whose x values are the indices
// 0, 1, 2, ...
func NumericSeriesFromYValues(name string, ys []float64) NumericSeries {
	data := make([]NumericDataPoint, len(ys))
	for i, y := range ys {
		data[i] = NumericDataPoint{
			X:     float64(i),
			Y:     y,
			Label: fmt.Sprintf("(%d, %g)", i, y),
		}
	}
	return NewNumericSeries(name, data)
}

// XValues returns the x value of each data point, in order.
func (s NumericSeries) XValues() []float64 {
	out := make([]float64, len(s.Data))
	for i, p := range s.Data {
		out[i] = p.X
	}
	return out
}

// YValues returns the y value of each data point, in order.
func (s NumericSeries) YValues() []float64 {
	out := make([]float64, len(s.Data))
	for i, p := range s.Data {
		out[i] = p.Y
	}
	return out
}
