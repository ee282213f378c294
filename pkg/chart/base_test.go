package chart

import (
	"testing"

	"github.com/opd-ai/chartkit/pkg/chartdata"
	"github.com/opd-ai/chartkit/pkg/geom"
)

func newTestChart(elements []Element) (*BaseChart, *chartdata.Base) {
	model := chartdata.NewBase("test")
	renderer := &stubRenderer{elements: elements}
	b := NewBaseChart(&model, renderer, DefaultOptions())
	// Prime the hit-test list the way Redraw would.
	b.elements = elements
	return b, &model
}

func TestModelChangeMarksDirty(t *testing.T) {
	b, model := newTestChart(nil)

	b.dirty = false
	model.Notify(nil)
	if !b.Dirty() {
		t.Error("model notification should mark the chart dirty")
	}
}

func TestClickOnElement(t *testing.T) {
	el := &RectElement{Rect: geom.RectOf(10, 10, 50, 50), Series: 0, Data: 2, Val: 42, Name: "Q3"}
	b, _ := newTestChart([]Element{el})

	var clicks []ClickEvent
	b.OnClick(func(ev ClickEvent) { clicks = append(clicks, ev) })

	pos := geom.Pt(30, 30)
	b.MouseDown(MouseEvent{Pos: pos})
	b.MouseUp(MouseEvent{Pos: pos})

	if len(clicks) != 1 {
		t.Fatalf("got %d clicks, want 1", len(clicks))
	}
	if clicks[0].DataIndex != 2 || clicks[0].Value != 42 || clicks[0].Label != "Q3" {
		t.Errorf("click event = %+v", clicks[0])
	}
}

func TestClickThresholdWhilePanning(t *testing.T) {
	el := &RectElement{Rect: geom.RectOf(0, 0, 200, 200)}
	b, _ := newTestChart([]Element{el})
	b.opts.EnablePan = true
	b.SetTransform(NewTransform(ViewBounds{XMax: 100, YMax: 100}))

	var clicks int
	b.OnClick(func(ClickEvent) { clicks++ })

	// A short press-release counts as a click even with pan enabled.
	b.MouseDown(MouseEvent{Pos: geom.Pt(50, 50)})
	b.MouseUp(MouseEvent{Pos: geom.Pt(53, 53)})
	if clicks != 1 {
		t.Fatalf("short drag: got %d clicks, want 1", clicks)
	}

	// Moving past the threshold suppresses the click.
	b.MouseDown(MouseEvent{Pos: geom.Pt(50, 50)})
	b.MouseDrag(MouseEvent{Pos: geom.Pt(80, 80)})
	b.MouseUp(MouseEvent{Pos: geom.Pt(80, 80)})
	if clicks != 1 {
		t.Errorf("long drag: got %d clicks, want still 1", clicks)
	}
}

func TestHoverFiresOncePerElement(t *testing.T) {
	a := &RectElement{Rect: geom.RectOf(0, 0, 50, 50), Series: 0, Data: 0, Name: "a"}
	c := &RectElement{Rect: geom.RectOf(100, 0, 50, 50), Series: 0, Data: 1, Name: "c"}
	b, _ := newTestChart([]Element{a, c})

	var hovers []HoverEvent
	b.OnHover(func(ev HoverEvent) { hovers = append(hovers, ev) })

	b.CursorPos(MouseEvent{Pos: geom.Pt(10, 10)})
	b.CursorPos(MouseEvent{Pos: geom.Pt(20, 20)}) // same element
	if len(hovers) != 1 {
		t.Fatalf("got %d hover events within one element, want 1", len(hovers))
	}
	if hovers[0].Label != "a" {
		t.Errorf("hover label = %q, want %q", hovers[0].Label, "a")
	}

	b.CursorPos(MouseEvent{Pos: geom.Pt(110, 10)}) // different element
	if len(hovers) != 2 || hovers[1].Label != "c" {
		t.Fatalf("hover events after moving = %+v", hovers)
	}

	// Moving to empty space clears hover without a callback.
	b.CursorPos(MouseEvent{Pos: geom.Pt(75, 75)})
	if len(hovers) != 2 {
		t.Errorf("hover into empty space fired a callback")
	}
	if b.IsHovered(0, 0) || b.IsHovered(0, 1) {
		t.Error("hover state should be cleared")
	}
}

func TestHoverRequiresTooltip(t *testing.T) {
	a := &RectElement{Rect: geom.RectOf(0, 0, 50, 50)}
	b, _ := newTestChart([]Element{a})
	b.opts.EnableTooltip = false

	var hovers int
	b.OnHover(func(HoverEvent) { hovers++ })

	b.CursorPos(MouseEvent{Pos: geom.Pt(10, 10)})
	if hovers != 0 {
		t.Error("hover callback should not fire with tooltips disabled")
	}
	// Hover state still updates for highlight rendering.
	if !b.IsHovered(0, 0) {
		t.Error("hover state should update even without tooltips")
	}
}

func TestMouseOutClearsHover(t *testing.T) {
	a := &RectElement{Rect: geom.RectOf(0, 0, 50, 50), Series: 1, Data: 3}
	b, _ := newTestChart([]Element{a})

	b.CursorPos(MouseEvent{Pos: geom.Pt(10, 10)})
	if !b.IsHovered(1, 3) {
		t.Fatal("element should be hovered")
	}

	b.MouseOut()
	if b.IsHovered(1, 3) {
		t.Error("MouseOut should clear hover state")
	}
}

func TestMouseWheelGating(t *testing.T) {
	b, _ := newTestChart(nil)

	// No transform attached: wheel is ignored.
	b.opts.EnableZoom = true
	b.MouseWheel(WheelEvent{Pos: geom.Pt(50, 50), YOffset: 1})

	tr := NewTransform(ViewBounds{XMax: 100, YMax: 100})
	b.SetTransform(tr)

	// Zoom disabled: still ignored.
	b.opts.EnableZoom = false
	b.MouseWheel(WheelEvent{Pos: geom.Pt(50, 50), YOffset: 1})
	if tr.ZoomLevel() != 1.0 {
		t.Error("wheel should be ignored with zoom disabled")
	}

	b.opts.EnableZoom = true
	b.MouseWheel(WheelEvent{Pos: geom.Pt(50, 50), YOffset: 1})
	if !approxEqual(tr.ZoomLevel(), 1.1, 1e-9) {
		t.Errorf("ZoomLevel after wheel up = %v, want 1.1", tr.ZoomLevel())
	}

	// A second wheel up keeps the level above MinZoom so the wheel-down
	// factor is observable unclamped.
	b.MouseWheel(WheelEvent{Pos: geom.Pt(50, 50), YOffset: 1})
	b.MouseWheel(WheelEvent{Pos: geom.Pt(50, 50), YOffset: -1})
	if !approxEqual(tr.ZoomLevel(), 1.1*1.1*0.9, 1e-9) {
		t.Errorf("ZoomLevel after wheel down = %v, want %v", tr.ZoomLevel(), 1.1*1.1*0.9)
	}

	// Zooming out below 1.0 clamps at MinZoom.
	b.MouseWheel(WheelEvent{Pos: geom.Pt(50, 50), YOffset: -1})
	b.MouseWheel(WheelEvent{Pos: geom.Pt(50, 50), YOffset: -1})
	b.MouseWheel(WheelEvent{Pos: geom.Pt(50, 50), YOffset: -1})
	if !approxEqual(tr.ZoomLevel(), 1.0, 1e-9) {
		t.Errorf("ZoomLevel after zooming past the floor = %v, want 1", tr.ZoomLevel())
	}
}

func TestLegendClickTogglesSeries(t *testing.T) {
	b, model := newTestChart(nil)
	b.SetLegendElements([]*LegendItemElement{
		{Rect: geom.RectOf(0, 0, 80, 20), Series: 1, Data: -1, Name: "costs"},
	})

	var events []VisibilityEvent
	b.OnLegendClick(func(ev VisibilityEvent) { events = append(events, ev) })

	b.MouseDown(MouseEvent{Pos: geom.Pt(40, 10)})
	b.MouseUp(MouseEvent{Pos: geom.Pt(40, 10)})

	if model.IsSeriesVisible(1) {
		t.Error("legend click should hide the series")
	}
	if len(events) != 1 || events[0].SeriesName != "costs" || events[0].Visible {
		t.Errorf("visibility events = %+v", events)
	}

	b.MouseDown(MouseEvent{Pos: geom.Pt(40, 10)})
	b.MouseUp(MouseEvent{Pos: geom.Pt(40, 10)})
	if !model.IsSeriesVisible(1) {
		t.Error("second legend click should restore the series")
	}
}

func TestLegendClickTogglesDataPoint(t *testing.T) {
	// Pie legends carry a data index and toggle single slices.
	b, model := newTestChart(nil)
	b.SetLegendElements([]*LegendItemElement{
		{Rect: geom.RectOf(0, 0, 80, 20), Series: 0, Data: 2, Name: "slice"},
	})

	b.MouseDown(MouseEvent{Pos: geom.Pt(10, 10)})
	b.MouseUp(MouseEvent{Pos: geom.Pt(10, 10)})

	if model.IsDataVisible(0, 2) {
		t.Error("legend click should hide the data point")
	}
	if !model.IsSeriesVisible(0) {
		t.Error("series visibility should be untouched")
	}
}

func TestLegendClickIgnoredWhenNotInteractive(t *testing.T) {
	b, model := newTestChart(nil)
	model.Legend.Interactive = false
	b.SetLegendElements([]*LegendItemElement{
		{Rect: geom.RectOf(0, 0, 80, 20), Series: 0, Data: -1},
	})

	b.MouseDown(MouseEvent{Pos: geom.Pt(10, 10)})
	b.MouseUp(MouseEvent{Pos: geom.Pt(10, 10)})

	if !model.IsSeriesVisible(0) {
		t.Error("non-interactive legend should not toggle visibility")
	}
}

func TestRedraw(t *testing.T) {
	el := &RectElement{Rect: geom.RectOf(10, 10, 50, 50)}
	model := chartdata.NewBase("test")
	renderer := &stubRenderer{elements: []Element{el}}
	opts := DefaultOptions()
	opts.Title = "Revenue"
	b := NewBaseChart(&model, renderer, opts)

	p := &recordingPainter{}
	b.Redraw(p, geom.Size{Width: 800, Height: 600})

	if b.Dirty() {
		t.Error("Redraw should clear the dirty flag")
	}
	if renderer.rendered != 1 {
		t.Errorf("RenderChart called %d times, want 1", renderer.rendered)
	}
	if len(b.Elements()) != 1 {
		t.Errorf("elements rebuilt = %d, want 1", len(b.Elements()))
	}
	if !p.hasText("Revenue") {
		t.Error("title text was not drawn")
	}
	if len(p.fillRects) == 0 || p.fillRects[0] != geom.RectOf(0, 0, 800, 600) {
		t.Error("background should be the first fill")
	}
	if p.saveDepth != 0 {
		t.Errorf("unbalanced Save/Restore, depth %d", p.saveDepth)
	}
}

func TestRedrawZeroSize(t *testing.T) {
	b, _ := newTestChart(nil)
	p := &recordingPainter{}

	b.Redraw(p, geom.Size{Width: 0, Height: 100})
	if len(p.fillRects) != 0 {
		t.Error("zero-width redraw should draw nothing")
	}
}

func TestRedrawDrawsTooltip(t *testing.T) {
	el := &RectElement{Rect: geom.RectOf(100, 100, 50, 50), Val: 42, Name: "Q3"}
	model := chartdata.NewBase("test")
	renderer := &stubRenderer{elements: []Element{el}}
	b := NewBaseChart(&model, renderer, DefaultOptions())

	p := &recordingPainter{}
	b.Redraw(p, geom.Size{Width: 800, Height: 600})
	b.CursorPos(MouseEvent{Pos: geom.Pt(120, 120)})

	p = &recordingPainter{}
	b.Redraw(p, geom.Size{Width: 800, Height: 600})
	if !p.hasText("Q3: 42") {
		t.Errorf("tooltip text missing, drew %v", p.texts)
	}
}

func TestFormatTooltip(t *testing.T) {
	tests := []struct {
		label string
		value float64
		want  string
	}{
		{"Q1", 100, "Q1: 100"},
		{"Q1", 99.5, "Q1: 99.50"},
		{"", 7, "7"},
	}
	for _, tt := range tests {
		if got := formatTooltip(tt.label, tt.value); got != tt.want {
			t.Errorf("formatTooltip(%q, %v) = %q, want %q", tt.label, tt.value, got, tt.want)
		}
	}
}
