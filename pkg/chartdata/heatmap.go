package chartdata

import "strconv"

// Heatmap is the data model for heatmap charts: a row-major matrix of values
// with row and column labels, and an automatic or manually overridden value
// range for color normalization.
type Heatmap struct {
	Base

	Values       [][]float64
	RowLabels    []string
	ColumnLabels []string
	ValueFormat  string

	// Manual range override; when unset the range is computed from the
	// matrix and recomputed on every mutation.
	manualMin, manualMax *float64
	computedMin          float64
	computedMax          float64
}

// NewHeatmap creates a heatmap from a row-major matrix. Missing labels fall
// back to stringified indices when queried.
func NewHeatmap(title string, values [][]float64, rowLabels, columnLabels []string) *Heatmap {
	h := &Heatmap{
		Base:         NewBase(title),
		Values:       values,
		RowLabels:    rowLabels,
		ColumnLabels: columnLabels,
		ValueFormat:  "%.2f",
	}
	h.recomputeRange()
	return h
}

func (h *Heatmap) recomputeRange() {
	if len(h.Values) == 0 || len(h.Values[0]) == 0 {
		h.computedMin, h.computedMax = 0, 1
		return
	}

	first := true
	for _, row := range h.Values {
		for _, v := range row {
			if first {
				h.computedMin, h.computedMax = v, v
				first = false
				continue
			}
			if v < h.computedMin {
				h.computedMin = v
			}
			if v > h.computedMax {
				h.computedMax = v
			}
		}
	}
}

// NumRows returns the number of rows in the matrix.
func (h *Heatmap) NumRows() int {
	return len(h.Values)
}

// NumCols returns the number of columns in the matrix.
func (h *Heatmap) NumCols() int {
	if len(h.Values) == 0 {
		return 0
	}
	return len(h.Values[0])
}

// EffectiveMin returns the manual minimum if set, else the computed one.
func (h *Heatmap) EffectiveMin() float64 {
	if h.manualMin != nil {
		return *h.manualMin
	}
	return h.computedMin
}

// EffectiveMax returns the manual maximum if set, else the computed one.
func (h *Heatmap) EffectiveMax() float64 {
	if h.manualMax != nil {
		return *h.manualMax
	}
	return h.computedMax
}

// Value returns the value at (row, col), or 0 when out of bounds. Out of
// bounds reads arise naturally while data is being resized mid-redraw and
// are not errors.
func (h *Heatmap) Value(row, col int) float64 {
	if row < 0 || row >= h.NumRows() || col < 0 || col >= h.NumCols() {
		return 0
	}
	return h.Values[row][col]
}

// RowLabel returns the label for a row, falling back to the index.
func (h *Heatmap) RowLabel(row int) string {
	if row >= 0 && row < len(h.RowLabels) {
		return h.RowLabels[row]
	}
	return strconv.Itoa(row)
}

// ColumnLabel returns the label for a column, falling back to the index.
func (h *Heatmap) ColumnLabel(col int) string {
	if col >= 0 && col < len(h.ColumnLabels) {
		return h.ColumnLabels[col]
	}
	return strconv.Itoa(col)
}

// Normalize maps a raw value into [0, 1] using the effective range.
// A degenerate range maps every value to 0.5.
func (h *Heatmap) Normalize(value float64) float64 {
	lo, hi := h.EffectiveMin(), h.EffectiveMax()
	if hi == lo {
		return 0.5
	}
	return (value - lo) / (hi - lo)
}

// SetValues replaces the matrix, recomputes the range and notifies
// observers.
func (h *Heatmap) SetValues(values [][]float64) {
	h.Values = values
	h.recomputeRange()
	h.Notify(nil)
}

// SetCell sets one cell, recomputes the range and notifies observers.
// Out-of-bounds writes are ignored.
func (h *Heatmap) SetCell(row, col int, value float64) {
	if row < 0 || row >= h.NumRows() || col < 0 || col >= h.NumCols() {
		return
	}
	h.Values[row][col] = value
	h.recomputeRange()
	h.Notify(nil)
}

// SetRowLabels replaces the row labels and notifies observers.
func (h *Heatmap) SetRowLabels(labels []string) {
	h.RowLabels = labels
	h.Notify(nil)
}

// SetColumnLabels replaces the column labels and notifies observers.
func (h *Heatmap) SetColumnLabels(labels []string) {
	h.ColumnLabels = labels
	h.Notify(nil)
}

// SetRange overrides the value range used for color normalization and
// notifies observers.
func (h *Heatmap) SetRange(minValue, maxValue float64) {
	h.manualMin = &minValue
	h.manualMax = &maxValue
	h.Notify(nil)
}

// ClearRange returns to the automatic matrix-derived range and notifies
// observers.
func (h *Heatmap) ClearRange() {
	h.manualMin = nil
	h.manualMax = nil
	h.Notify(nil)
}
