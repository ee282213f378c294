// Package scale provides the coordinate transforms that map chart data values
// to screen positions: linear scales for numeric axes, band scales for
// categorical axes, and polar scales for pie, donut and gauge charts.
package scale

import "math"

// Linear maps numeric data values to pixel coordinates by linear
// interpolation between a data domain and a pixel range.
type Linear struct {
	DomainMin float64
	DomainMax float64
	RangeMin  float64
	RangeMax  float64
}

// NewLinear creates a linear scale with the given domain and range.
func NewLinear(domainMin, domainMax, rangeMin, rangeMax float64) Linear {
	return Linear{
		DomainMin: domainMin,
		DomainMax: domainMax,
		RangeMin:  rangeMin,
		RangeMax:  rangeMax,
	}
}

// Scale maps a domain value to a range (pixel) value.
// A zero-width domain maps every value to RangeMin.
func (s Linear) Scale(value float64) float64 {
	span := s.DomainMax - s.DomainMin
	if span == 0 {
		return s.RangeMin
	}
	normalized := (value - s.DomainMin) / span
	return s.RangeMin + normalized*(s.RangeMax-s.RangeMin)
}

// Invert maps a pixel value back to a domain value.
// A zero-width range maps every pixel to DomainMin.
func (s Linear) Invert(pixel float64) float64 {
	span := s.RangeMax - s.RangeMin
	if span == 0 {
		return s.DomainMin
	}
	normalized := (pixel - s.RangeMin) / span
	return s.DomainMin + normalized*(s.DomainMax-s.DomainMin)
}

// Ticks generates nice round tick values covering the domain.
// count is the approximate number of ticks; values below 2 are clamped to 2.
func (s Linear) Ticks(count int) []float64 {
	if count < 2 {
		count = 2
	}

	span := s.DomainMax - s.DomainMin
	if span == 0 {
		return []float64{s.DomainMin}
	}

	step := span / float64(count-1)
	magnitude := math.Pow(10, math.Floor(math.Log10(step)))
	normalized := step / magnitude

	var nice float64
	switch {
	case normalized <= 1:
		nice = 1
	case normalized <= 2:
		nice = 2
	case normalized <= 5:
		nice = 5
	default:
		nice = 10
	}
	step = nice * magnitude

	start := math.Ceil(s.DomainMin/step) * step
	var ticks []float64
	// Small epsilon tolerance so the top boundary survives float noise.
	for current := start; current <= s.DomainMax+step*0.001; current += step {
		ticks = append(ticks, roundTo(current, 10))
	}
	return ticks
}

// roundTo rounds v to the given number of decimal digits.
func roundTo(v float64, digits int) float64 {
	factor := math.Pow(10, float64(digits))
	return math.Round(v*factor) / factor
}

// LinearFromData creates a scale whose domain covers the given data values.
// If includeZero is set the domain is extended to contain zero; if nice is
// set the bounds are rounded outward to nice numbers.
func LinearFromData(data []float64, rangeMin, rangeMax float64, nice, includeZero bool) Linear {
	if len(data) == 0 {
		return NewLinear(0, 1, rangeMin, rangeMax)
	}

	dMin, dMax := data[0], data[0]
	for _, v := range data[1:] {
		dMin = math.Min(dMin, v)
		dMax = math.Max(dMax, v)
	}

	if includeZero {
		if dMin > 0 {
			dMin = 0
		}
		if dMax < 0 {
			dMax = 0
		}
	}

	if nice {
		dMin, dMax = NiceBounds(dMin, dMax)
	}

	return NewLinear(dMin, dMax, rangeMin, rangeMax)
}

// NiceBounds rounds domain bounds outward to multiples of a nice step
// ({1,2,5,10} times a power of ten). A zero-span domain at zero expands to
// [-1, 1]; otherwise it gains a 10% margin on each side.
func NiceBounds(dMin, dMax float64) (float64, float64) {
	span := dMax - dMin
	if span == 0 {
		if dMin == 0 {
			return -1, 1
		}
		margin := math.Abs(dMin) * 0.1
		return dMin - margin, dMax + margin
	}

	exponent := math.Floor(math.Log10(span))
	fraction := span / math.Pow(10, exponent)

	var nice float64
	switch {
	case fraction <= 1:
		nice = 1
	case fraction <= 2:
		nice = 2
	case fraction <= 5:
		nice = 5
	default:
		nice = 10
	}

	niceSpan := nice * math.Pow(10, exponent)
	return math.Floor(dMin/niceSpan) * niceSpan, math.Ceil(dMax/niceSpan) * niceSpan
}

// WithPadding returns a copy with the domain expanded symmetrically by
// ratio*span on each side. The range is unchanged. Used to keep plotted
// points off the plot-area edges.
func (s Linear) WithPadding(ratio float64) Linear {
	padding := (s.DomainMax - s.DomainMin) * ratio
	return Linear{
		DomainMin: s.DomainMin - padding,
		DomainMax: s.DomainMax + padding,
		RangeMin:  s.RangeMin,
		RangeMax:  s.RangeMax,
	}
}
