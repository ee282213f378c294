package chartdata

// Metadata carries optional per-point data for custom use, such as the
// "drillable" flag injected by drill-down conversions or per-point colors.
type Metadata map[string]any

// clone returns a copy of the metadata with the given key set.
func (m Metadata) clone(key string, value any) Metadata {
	out := make(Metadata, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out[key] = value
	return out
}

// Bool returns the metadata value for key as a bool, or false.
func (m Metadata) Bool(key string) bool {
	v, _ := m[key].(bool)
	return v
}

// String returns the metadata value for key as a string, or "".
func (m Metadata) String(key string) string {
	v, _ := m[key].(string)
	return v
}

// DataPoint is a single value in a categorical chart (bar, pie, stacked bar).
// Points are treated as immutable: updates replace the whole point.
type DataPoint struct {
	Value    float64
	Label    string
	Category string
	Metadata Metadata
}

// NumericDataPoint is a single (x, y) value in a continuous chart
// (line, scatter, area). Points are treated as immutable.
type NumericDataPoint struct {
	X        float64
	Y        float64
	Label    string
	Metadata Metadata
}

// GaugeDataPoint is a single gauge reading with its value range.
type GaugeDataPoint struct {
	Value    float64
	MinValue float64
	MaxValue float64
	Label    string
}

// Percentage returns the value as a fraction of the gauge range, or 0 when
// the range is degenerate.
func (p GaugeDataPoint) Percentage() float64 {
	span := p.MaxValue - p.MinValue
	if span == 0 {
		return 0
	}
	return (p.Value - p.MinValue) / span
}
