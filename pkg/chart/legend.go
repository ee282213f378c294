package chart

import (
	"github.com/opd-ai/chartkit/pkg/chartdata"
	"github.com/opd-ai/chartkit/pkg/geom"
)

// legendEntry is one swatch-plus-name slot in a chart legend. data is -1
// for entries that toggle a whole series and a data-point index for
// per-slice legends.
type legendEntry struct {
	series  int
	data    int
	name    string
	color   string
	visible bool
}

// seriesLegendEntries builds one legend entry per series of a
// categorical data set.
func seriesLegendEntries(d *chartdata.Categorical) []legendEntry {
	entries := make([]legendEntry, len(d.Series))
	for i, s := range d.Series {
		entries[i] = legendEntry{
			series:  i,
			data:    -1,
			name:    s.Name,
			color:   s.Style.Color,
			visible: d.IsSeriesVisible(i),
		}
	}
	return entries
}

// numericLegendEntries builds one legend entry per series of a numeric
// data set.
func numericLegendEntries(d *chartdata.Numeric) []legendEntry {
	entries := make([]legendEntry, len(d.Series))
	for i, s := range d.Series {
		entries[i] = legendEntry{
			series:  i,
			data:    -1,
			name:    s.Name,
			color:   s.Style.Color,
			visible: d.IsSeriesVisible(i),
		}
	}
	return entries
}

// renderSeriesLegend draws the legend entries into the layout's legend
// area and registers a parallel hit-test element per entry, so the drawn
// entries and the clickable regions cannot drift apart.
func renderSeriesLegend(b *BaseChart, p Painter, layout Layout, entries []legendEntry) {
	theme := b.Theme()

	const (
		boxSize    = 12.0
		spacing    = 100.0
		itemHeight = 20.0
	)

	x := layout.LegendArea.X
	y := layout.LegendArea.Y + 12

	items := make([]*LegendItemElement, 0, len(entries))
	for i, entry := range entries {
		color := entry.color
		if color == "" {
			color = theme.SeriesColor(i)
		}
		if !entry.visible {
			color = theme.TextSecondary
		}

		p.SetFillColor(color)
		p.FillRect(geom.RectOf(x, y, boxSize, boxSize))

		textColor := theme.TextColor
		if !entry.visible {
			textColor = theme.TextSecondary
		}
		p.SetFillColor(textColor)
		p.SetFontSize(11)
		p.FillText(entry.name, geom.Pt(x+boxSize+6, y+boxSize-2))

		items = append(items, &LegendItemElement{
			Rect:   geom.RectOf(x, y-4, spacing-4, itemHeight),
			Series: entry.series,
			Data:   entry.data,
			Name:   entry.name,
		})

		x += spacing
	}

	b.SetLegendElements(items)
}
