package chart

import (
	"fmt"

	"github.com/opd-ai/chartkit/pkg/chartdata"
	"github.com/opd-ai/chartkit/pkg/geom"
)

// HeatmapChart renders a matrix as a colored cell grid with row and column
// labels and an optional colorbar.
type HeatmapChart struct {
	*BaseChart

	data         *chartdata.Heatmap
	colormap     Colormap
	cellGap      float64
	showValues   bool
	showColorbar bool
}

// NewHeatmapChart creates a heatmap using the viridis colormap. Heatmaps
// have no legend; the colorbar serves that role.
func NewHeatmapChart(data *chartdata.Heatmap, opts Options) *HeatmapChart {
	opts.ShowLegend = false
	// Extra room for row labels on the left and the colorbar on the right.
	opts.Margins.Left += 30
	opts.Margins.Right += colorbarWidth + colorbarPadding + colorbarLabelWidth

	c := &HeatmapChart{
		data:         data,
		colormap:     Viridis(),
		cellGap:      1.0,
		showColorbar: true,
	}
	c.BaseChart = NewBaseChart(&data.Base, c, opts)
	return c
}

const (
	colorbarWidth      = 20
	colorbarPadding    = 10
	colorbarLabelWidth = 50
	colorbarStrips     = 50
)

// Data returns the chart's data model.
func (c *HeatmapChart) Data() *chartdata.Heatmap { return c.data }

// SetColormap replaces the colormap. A nil colormap is ignored.
func (c *HeatmapChart) SetColormap(cm Colormap) {
	if cm == nil {
		return
	}
	c.colormap = cm
	c.MarkDirty()
}

// SetCellGap sets the spacing between cells in pixels.
func (c *HeatmapChart) SetCellGap(gap float64) {
	if gap < 0 {
		gap = 0
	}
	c.cellGap = gap
	c.MarkDirty()
}

// SetShowValues toggles value annotations inside cells.
func (c *HeatmapChart) SetShowValues(show bool) {
	c.showValues = show
	c.MarkDirty()
}

// SetShowColorbar toggles the colorbar on the right edge.
func (c *HeatmapChart) SetShowColorbar(show bool) {
	c.showColorbar = show
	c.MarkDirty()
}

// cellSize returns cell dimensions for the plot area, zero when the matrix
// is empty.
func (c *HeatmapChart) cellSize(plot geom.Rect) (float64, float64) {
	rows, cols := c.data.NumRows(), c.data.NumCols()
	if rows == 0 || cols == 0 {
		return 0, 0
	}
	w := (plot.Width - float64(cols-1)*c.cellGap) / float64(cols)
	h := (plot.Height - float64(rows-1)*c.cellGap) / float64(rows)
	return max0(w), max0(h)
}

// BuildElements builds one rectangle per cell. Series index carries the
// row and data index the column.
func (c *HeatmapChart) BuildElements(layout Layout) []Element {
	plot := layout.PlotArea
	rows, cols := c.data.NumRows(), c.data.NumCols()
	cellW, cellH := c.cellSize(plot)
	if cellW <= 0 || cellH <= 0 {
		return nil
	}

	elements := make([]Element, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			elements = append(elements, &RectElement{
				Rect: geom.RectOf(
					plot.X+float64(col)*(cellW+c.cellGap),
					plot.Y+float64(row)*(cellH+c.cellGap),
					cellW, cellH,
				),
				Series: row,
				Data:   col,
				Val:    c.data.Value(row, col),
				Name:   fmt.Sprintf("%s, %s", c.data.RowLabel(row), c.data.ColumnLabel(col)),
			})
		}
	}
	return elements
}

// RenderChart draws cells, axis labels, and the colorbar.
func (c *HeatmapChart) RenderChart(p Painter, layout Layout) {
	plot := layout.PlotArea
	if plot.Width <= 0 || plot.Height <= 0 {
		return
	}

	for _, el := range c.Elements() {
		rect, ok := el.(*RectElement)
		if !ok {
			continue
		}

		color := c.colormap.At(c.data.Normalize(rect.Val))
		hovered := c.IsHovered(rect.Series, rect.Data)
		if hovered {
			color = LightenColor(color, 0.2)
		}

		p.SetFillColor(color)
		p.FillRect(rect.Rect)

		if hovered {
			p.SetStrokeColor(c.Theme().TextColor)
			p.SetStrokeWidth(2)
			p.StrokeRect(rect.Rect)
		}

		if c.showValues && rect.Rect.Width > 24 && rect.Rect.Height > 14 {
			label := fmt.Sprintf(c.data.ValueFormat, rect.Val)
			p.SetFillColor(ContrastTextColor(color))
			p.SetFontSize(10)
			p.FillText(label, geom.Pt(rect.Center().X-p.MeasureText(label)/2, rect.Center().Y+3))
		}
	}

	c.renderLabels(p, plot)

	if c.showColorbar {
		c.renderColorbar(p, plot)
	}
}

func (c *HeatmapChart) renderLabels(p Painter, plot geom.Rect) {
	rows, cols := c.data.NumRows(), c.data.NumCols()
	cellW, cellH := c.cellSize(plot)

	p.SetFillColor(c.Theme().TextColor)
	p.SetFontSize(10)

	for col := 0; col < cols; col++ {
		label := c.data.ColumnLabel(col)
		x := plot.X + float64(col)*(cellW+c.cellGap) + cellW/2
		p.FillText(label, geom.Pt(x-p.MeasureText(label)/2, plot.Y-8))
	}
	for row := 0; row < rows; row++ {
		label := c.data.RowLabel(row)
		y := plot.Y + float64(row)*(cellH+c.cellGap) + cellH/2
		p.FillText(label, geom.Pt(plot.X-8-p.MeasureText(label), y+4))
	}
}

// renderColorbar draws a vertical gradient bar with the value range's high
// end at the top.
func (c *HeatmapChart) renderColorbar(p Painter, plot geom.Rect) {
	barX := plot.Right() + colorbarPadding
	stripH := plot.Height / colorbarStrips

	for i := 0; i < colorbarStrips; i++ {
		normalized := 1 - float64(i)/colorbarStrips
		p.SetFillColor(c.colormap.At(normalized))
		// Strips overlap by a pixel to avoid seams.
		p.FillRect(geom.RectOf(barX, plot.Y+float64(i)*stripH, colorbarWidth, stripH+1))
	}

	p.SetStrokeColor(c.Theme().BorderColor)
	p.SetStrokeWidth(1)
	p.StrokeRect(geom.RectOf(barX, plot.Y, colorbarWidth, plot.Height))

	vMin, vMax := c.data.EffectiveMin(), c.data.EffectiveMax()
	p.SetFillColor(c.Theme().TextSecondary)
	p.SetFontSize(9)
	for i := 0; i <= 5; i++ {
		t := float64(i) / 5
		value := vMax - t*(vMax-vMin)
		label := fmt.Sprintf(c.data.ValueFormat, value)
		p.FillText(label, geom.Pt(barX+colorbarWidth+8, plot.Y+t*plot.Height+3))
	}
}

// ElementAnchor anchors tooltips at the top of the cell.
func (c *HeatmapChart) ElementAnchor(el Element) geom.Point {
	if rect, ok := el.(*RectElement); ok {
		return geom.Pt(rect.Center().X, rect.Rect.Y)
	}
	return geom.Pt(0, 0)
}
