package scale

// Band maps an ordered set of category names to contiguous pixel bands,
// as used by bar charts and heatmap axes.
//
// Duplicate category names resolve to the first occurrence's band; callers
// that need distinct bands must supply unique category names.
type Band struct {
	Categories   []string
	RangeMin     float64
	RangeMax     float64
	PaddingInner float64 // fraction of step left between bands (0-1)
	PaddingOuter float64 // fraction of step left at the range edges (0-1)
	Align        float64 // band alignment within its step: 0 left, 0.5 center, 1 right
}

// NewBand creates a band scale with default paddings (0.1) and center
// alignment.
func NewBand(categories []string, rangeMin, rangeMax float64) Band {
	return Band{
		Categories:   categories,
		RangeMin:     rangeMin,
		RangeMax:     rangeMax,
		PaddingInner: 0.1,
		PaddingOuter: 0.1,
		Align:        0.5,
	}
}

// Step returns the distance between consecutive band starts.
func (s Band) Step() float64 {
	n := len(s.Categories)
	if n == 0 {
		return 0
	}
	return (s.RangeMax - s.RangeMin) / float64(n)
}

// Bandwidth returns the width of each band (step minus inner padding).
func (s Band) Bandwidth() float64 {
	if len(s.Categories) == 0 {
		return 0
	}
	return s.Step() * (1 - s.PaddingInner)
}

// Position returns the start pixel position of the category's band.
// Unknown categories map to RangeMin.
func (s Band) Position(category string) float64 {
	idx := s.index(category)
	if idx < 0 {
		return s.RangeMin
	}

	step := s.Step()
	bandStart := s.RangeMin + step*s.PaddingOuter + float64(idx)*step
	return bandStart + step*s.PaddingInner*s.Align
}

// Center returns the center pixel position of the category's band.
func (s Band) Center(category string) float64 {
	return s.Position(category) + s.Bandwidth()/2
}

// BandRange returns the (start, end) pixel interval of the category's band.
func (s Band) BandRange(category string) (float64, float64) {
	start := s.Position(category)
	return start, start + s.Bandwidth()
}

// Invert returns the category whose band contains the pixel position and
// true, or "" and false if the pixel falls between or outside all bands.
func (s Band) Invert(pixel float64) (string, bool) {
	for _, category := range s.Categories {
		start, end := s.BandRange(category)
		if pixel >= start && pixel <= end {
			return category, true
		}
	}
	return "", false
}

// WithCategories returns a copy operating on a different category list.
func (s Band) WithCategories(categories []string) Band {
	s.Categories = categories
	return s
}

// WithPadding returns a copy with the given inner and outer paddings.
func (s Band) WithPadding(inner, outer float64) Band {
	s.PaddingInner = inner
	s.PaddingOuter = outer
	return s
}

// index returns the first occurrence of category, or -1.
func (s Band) index(category string) int {
	for i, c := range s.Categories {
		if c == category {
			return i
		}
	}
	return -1
}
