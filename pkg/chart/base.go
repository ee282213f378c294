package chart

import (
	"fmt"
	"math"

	"github.com/opd-ai/chartkit/pkg/chartdata"
	"github.com/opd-ai/chartkit/pkg/geom"
)

// Renderer is what a concrete chart type supplies on top of BaseChart:
// hit-test element construction, content drawing, and tooltip anchoring.
// BuildElements must be a pure function of the current data and layout; it
// is called on every redraw.
type Renderer interface {
	// BuildElements returns the hit-test list for the current data.
	BuildElements(layout Layout) []Element
	// RenderChart draws the chart content into the layout's plot area.
	RenderChart(p Painter, layout Layout)
	// ElementAnchor returns the tooltip anchor point for an element.
	ElementAnchor(el Element) geom.Point
}

// Options configures a chart's chrome and interaction features.
type Options struct {
	Title         string
	Margins       Margins
	ShowLegend    bool
	EnableTooltip bool
	EnableZoom    bool
	EnablePan     bool
	Theme         Theme
}

// DefaultOptions returns the standard chart configuration: legend and
// tooltip on, zoom and pan off, light theme.
func DefaultOptions() Options {
	return Options{
		Margins:       DefaultMargins(),
		ShowLegend:    true,
		EnableTooltip: true,
		Theme:         LightTheme(),
	}
}

// clickThreshold is the maximum pointer travel in pixels for a release to
// count as a click rather than the end of a drag.
const clickThreshold = 5.0

// BaseChart implements the shared behavior of every chart widget: layout
// computation, hit testing, hover and click dispatch, legend toggling,
// and pan/zoom wiring. Concrete charts embed it and register themselves
// as the Renderer.
//
// All methods must be called from the UI goroutine; see the chartdata
// package doc for the threading contract.
type BaseChart struct {
	opts     Options
	renderer Renderer
	model    *chartdata.Base

	layout         Layout
	size           geom.Size
	elements       []Element
	legendElements []*LegendItemElement

	hoveredSeries int
	hoveredData   int
	hoveredElem   Element

	transform *Transform

	panning  bool
	pressPos geom.Point
	havePush bool
	lastPan  geom.Point

	dirty bool

	onHover       HoverFunc
	onClick       ClickFunc
	onLegendClick LegendClickFunc
}

// NewBaseChart creates the shared chart core. model is the embedded
// chartdata.Base of the chart's data variant; renderer is the concrete
// chart. The base attaches itself to the model so data mutations mark the
// chart dirty.
func NewBaseChart(model *chartdata.Base, renderer Renderer, opts Options) *BaseChart {
	b := &BaseChart{
		opts:          opts,
		renderer:      renderer,
		model:         model,
		hoveredSeries: -1,
		hoveredData:   -1,
		dirty:         true,
	}
	model.Attach(chartdata.ObserveFunc(func(any) { b.MarkDirty() }))
	return b
}

// OnHover registers a hover callback.
func (b *BaseChart) OnHover(fn HoverFunc) { b.onHover = fn }

// OnClick registers a click callback.
func (b *BaseChart) OnClick(fn ClickFunc) { b.onClick = fn }

// OnLegendClick registers a legend toggle callback.
func (b *BaseChart) OnLegendClick(fn LegendClickFunc) { b.onLegendClick = fn }

// SetTitle updates the chart title.
func (b *BaseChart) SetTitle(title string) {
	b.opts.Title = title
	b.MarkDirty()
}

// Title returns the chart title.
func (b *BaseChart) Title() string { return b.opts.Title }

// Options returns the chart configuration.
func (b *BaseChart) Options() Options { return b.opts }

// Theme returns the active theme.
func (b *BaseChart) Theme() Theme { return b.opts.Theme }

// SetTheme swaps the active theme.
func (b *BaseChart) SetTheme(t Theme) {
	b.opts.Theme = t
	b.MarkDirty()
}

// SetTransform attaches a zoom/pan transform. Wheel zoom and drag pan
// only take effect while a transform is attached and the matching option
// is enabled.
func (b *BaseChart) SetTransform(t *Transform) {
	b.transform = t
	if t != nil {
		t.Attach(chartdata.ObserveFunc(func(any) { b.MarkDirty() }))
	}
}

// Transform returns the attached transform, or nil.
func (b *BaseChart) Transform() *Transform { return b.transform }

// Layout returns the regions computed during the last redraw.
func (b *BaseChart) Layout() Layout { return b.layout }

// Elements returns the hit-test list built during the last redraw.
func (b *BaseChart) Elements() []Element { return b.elements }

// Dirty reports whether the chart needs redrawing.
func (b *BaseChart) Dirty() bool { return b.dirty }

// MarkDirty flags the chart for redraw.
func (b *BaseChart) MarkDirty() { b.dirty = true }

// SeriesColor returns the theme color for a series index.
func (b *BaseChart) SeriesColor(index int) string {
	return b.opts.Theme.SeriesColor(index)
}

// IsHovered reports whether the element at the given indices is under the
// cursor.
func (b *BaseChart) IsHovered(seriesIndex, dataIndex int) bool {
	return b.hoveredSeries == seriesIndex && b.hoveredData == dataIndex
}

// SetLegendElements replaces the legend hit-test list. Concrete charts
// call this from their legend rendering so the entries drawn and the
// entries clickable stay a parallel pair.
func (b *BaseChart) SetLegendElements(items []*LegendItemElement) {
	b.legendElements = items
}

// MouseDown begins a potential pan or click.
func (b *BaseChart) MouseDown(ev MouseEvent) {
	b.pressPos = ev.Pos
	b.havePush = true
	if b.opts.EnablePan {
		b.panning = true
		b.lastPan = ev.Pos
	}
}

// MouseUp ends a pan and fires a click if the pointer traveled less than
// the click threshold since MouseDown.
func (b *BaseChart) MouseUp(ev MouseEvent) {
	wasPanning := b.panning
	b.panning = false

	moved := math.Inf(1)
	if b.havePush {
		moved = b.pressPos.DistanceTo(ev.Pos)
	}
	if !wasPanning || moved < clickThreshold {
		b.handleClick(ev)
	}
	b.havePush = false
}

// MouseDrag pans the view while panning is active.
func (b *BaseChart) MouseDrag(ev MouseEvent) {
	if !b.panning || !b.opts.EnablePan || b.transform == nil {
		return
	}
	delta := ev.Pos.Sub(b.lastPan)
	b.transform.Pan(delta)
	b.lastPan = ev.Pos
	b.MarkDirty()
}

// CursorPos updates hover state from the cursor position. The hover
// callback fires only when the hovered (series, data) pair changes and
// tooltips are enabled.
func (b *BaseChart) CursorPos(ev MouseEvent) {
	if b.panning {
		return
	}

	elem := HitTest(b.elements, ev.Pos)

	newSeries, newData := -1, -1
	if elem != nil {
		newSeries = elem.SeriesIndex()
		newData = elem.DataIndex()
	}

	if newSeries == b.hoveredSeries && newData == b.hoveredData {
		return
	}

	b.hoveredElem = elem
	b.hoveredSeries = newSeries
	b.hoveredData = newData

	if elem != nil && b.opts.EnableTooltip && b.onHover != nil {
		b.onHover(HoverEvent{
			SeriesIndex: elem.SeriesIndex(),
			DataIndex:   elem.DataIndex(),
			Value:       elem.Value(),
			Label:       elem.Label(),
			Position:    ev.Pos,
		})
	}

	b.MarkDirty()
}

// MouseOut clears hover state when the pointer leaves the widget.
func (b *BaseChart) MouseOut() {
	b.hoveredElem = nil
	b.hoveredSeries = -1
	b.hoveredData = -1
	b.MarkDirty()
}

// MouseWheel zooms around the cursor when zoom is enabled.
func (b *BaseChart) MouseWheel(ev WheelEvent) {
	if !b.opts.EnableZoom || b.transform == nil {
		return
	}
	factor := 0.9
	if ev.YOffset > 0 {
		factor = 1.1
	}
	b.transform.Zoom(factor, ev.Pos)
	b.MarkDirty()
}

// handleClick resolves a click against the legend first, then the chart
// elements.
func (b *BaseChart) handleClick(ev MouseEvent) {
	if b.model.Legend.Interactive {
		for _, item := range b.legendElements {
			if item.Contains(ev.Pos) {
				b.handleLegendClick(item)
				return
			}
		}
	}

	elem := HitTest(b.elements, ev.Pos)
	if elem != nil && b.onClick != nil {
		b.onClick(ClickEvent{
			SeriesIndex: elem.SeriesIndex(),
			DataIndex:   elem.DataIndex(),
			Value:       elem.Value(),
			Label:       elem.Label(),
			Position:    ev.Pos,
		})
	}
}

// handleLegendClick toggles visibility: per data point for per-slice
// legends (DataIndex >= 0), per series otherwise.
func (b *BaseChart) handleLegendClick(item *LegendItemElement) {
	var visible bool
	if item.Data >= 0 {
		b.model.ToggleDataVisibility(item.Series, item.Data)
		visible = b.model.IsDataVisible(item.Series, item.Data)
	} else {
		b.model.ToggleSeriesVisibility(item.Series)
		visible = b.model.IsSeriesVisible(item.Series)
	}

	if b.onLegendClick != nil {
		b.onLegendClick(VisibilityEvent{
			SeriesIndex: item.Series,
			SeriesName:  item.Name,
			Visible:     visible,
		})
	}
	b.MarkDirty()
}

// Redraw renders the chart at the given size: it recomputes the layout,
// refreshes the transform's screen size and the hit-test list, draws the
// background and title, delegates content to the Renderer, and finishes
// with the tooltip on top.
func (b *BaseChart) Redraw(p Painter, size geom.Size) {
	if size.Width <= 0 || size.Height <= 0 {
		return
	}

	b.size = size
	b.layout = ComputeLayout(size, b.opts.Margins, b.opts.Title != "", b.opts.ShowLegend)

	if b.transform != nil {
		b.transform.SetScreenSize(size)
	}

	b.elements = b.renderer.BuildElements(b.layout)

	b.drawBackground(p)

	if b.opts.Title != "" {
		b.renderTitle(p)
	}

	p.Save()
	b.renderer.RenderChart(p, b.layout)
	p.Restore()

	b.renderTooltip(p)

	b.dirty = false
}

func (b *BaseChart) drawBackground(p Painter) {
	p.SetFillColor(b.opts.Theme.Background)
	p.FillRect(b.layout.Bounds)
}

func (b *BaseChart) renderTitle(p Painter) {
	p.SetFillColor(b.opts.Theme.TitleColor)
	p.SetFontSize(16)

	width := p.MeasureText(b.opts.Title)
	x := (b.layout.Bounds.Width - width) / 2
	y := b.layout.TitleArea.Y + 24
	p.FillText(b.opts.Title, geom.Pt(x, y))
}

func (b *BaseChart) renderTooltip(p Painter) {
	if b.hoveredElem == nil || !b.opts.EnableTooltip {
		return
	}

	elem := b.hoveredElem
	anchor := b.renderer.ElementAnchor(elem)

	text := formatTooltip(elem.Label(), elem.Value())

	p.SetFontSize(12)
	textWidth := p.MeasureText(text)
	const textHeight = 14.0
	const padding = 8.0

	tooltipW := textWidth + padding*2
	tooltipH := textHeight + padding*2

	x := anchor.X - tooltipW/2
	y := anchor.Y - tooltipH - 8

	x = math.Max(4, math.Min(x, b.size.Width-tooltipW-4))
	y = math.Max(4, y)

	bg := geom.RectOf(x, y, tooltipW, tooltipH)
	p.SetFillColor(b.opts.Theme.TooltipBg)
	p.FillRect(bg)
	p.SetStrokeColor(b.opts.Theme.TooltipBorder)
	p.SetStrokeWidth(1)
	p.StrokeRect(bg)

	p.SetFillColor(b.opts.Theme.TooltipText)
	p.FillText(text, geom.Pt(x+padding, y+padding+textHeight-2))
}

// formatTooltip builds "label: value", dropping the decimals for whole
// values.
func formatTooltip(label string, value float64) string {
	var valueStr string
	if value == math.Trunc(value) {
		valueStr = fmt.Sprintf("%.0f", value)
	} else {
		valueStr = fmt.Sprintf("%.2f", value)
	}
	if label == "" {
		return valueStr
	}
	return label + ": " + valueStr
}
