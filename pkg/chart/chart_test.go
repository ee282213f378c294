package chart

import (
	"github.com/opd-ai/chartkit/pkg/geom"
)

// recordingPainter implements Painter for tests, counting primitive calls
// and remembering drawn text.
type recordingPainter struct {
	fillRects   []geom.Rect
	strokeRects []geom.Rect
	circles     []geom.Point
	lines       int
	polygons    int
	arcs        int
	texts       []string

	fillColor string
	fontSize  float64
	saveDepth int
}

func (p *recordingPainter) SetFillColor(hex string)   { p.fillColor = hex }
func (p *recordingPainter) SetStrokeColor(hex string) {}
func (p *recordingPainter) SetStrokeWidth(w float64)  {}
func (p *recordingPainter) SetFontSize(size float64)  { p.fontSize = size }

func (p *recordingPainter) FillRect(r geom.Rect)   { p.fillRects = append(p.fillRects, r) }
func (p *recordingPainter) StrokeRect(r geom.Rect) { p.strokeRects = append(p.strokeRects, r) }

func (p *recordingPainter) FillCircle(center geom.Point, radius float64) {
	p.circles = append(p.circles, center)
}

func (p *recordingPainter) StrokeCircle(center geom.Point, radius float64) {
	p.circles = append(p.circles, center)
}

func (p *recordingPainter) StrokeLine(from, to geom.Point) { p.lines++ }
func (p *recordingPainter) FillPolygon(pts []geom.Point)   { p.polygons++ }

func (p *recordingPainter) FillArc(center geom.Point, innerRadius, outerRadius, startAngle, endAngle float64) {
	p.arcs++
}

func (p *recordingPainter) FillText(text string, pos geom.Point) {
	p.texts = append(p.texts, text)
}

// MeasureText approximates seven pixels per character, enough for layout
// assertions without a real font.
func (p *recordingPainter) MeasureText(text string) float64 {
	return float64(len(text)) * 7
}

func (p *recordingPainter) Save()            { p.saveDepth++ }
func (p *recordingPainter) Restore()         { p.saveDepth-- }
func (p *recordingPainter) Clip(r geom.Rect) {}

func (p *recordingPainter) hasText(s string) bool {
	for _, t := range p.texts {
		if t == s {
			return true
		}
	}
	return false
}

// stubRenderer is a Renderer with a fixed element list, used to exercise
// BaseChart in isolation.
type stubRenderer struct {
	elements []Element
	rendered int
}

func (r *stubRenderer) BuildElements(layout Layout) []Element { return r.elements }
func (r *stubRenderer) RenderChart(p Painter, layout Layout)  { r.rendered++ }

func (r *stubRenderer) ElementAnchor(el Element) geom.Point {
	if rect, ok := el.(*RectElement); ok {
		return rect.Center()
	}
	return geom.Pt(0, 0)
}

func approxEqual(a, b, tolerance float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}
