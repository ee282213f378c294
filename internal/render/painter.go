package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/opd-ai/chartkit/pkg/geom"
)

// whitePixel is a 1x1 white image used as the texture for filled paths.
var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()

// paintState is the saveable part of a painter: colors, stroke width,
// font size, and the clip target.
type paintState struct {
	fill        color.RGBA
	stroke      color.RGBA
	strokeWidth float32
	fontSize    float64
	dst         *ebiten.Image
}

// Painter draws chart primitives onto an Ebiten image. It implements
// chart.Painter. A painter is not goroutine safe; it is driven from the
// game loop's Draw callback.
type Painter struct {
	fonts *Fonts
	state paintState
	stack []paintState
}

// NewPainter creates a painter targeting dst.
func NewPainter(dst *ebiten.Image) *Painter {
	return &Painter{
		fonts: DefaultFonts(),
		state: paintState{
			fill:        color.RGBA{A: 255},
			stroke:      color.RGBA{A: 255},
			strokeWidth: 1,
			fontSize:    12,
			dst:         dst,
		},
	}
}

// Reset points the painter at a new destination and clears saved state.
// The dashboard reuses one painter per cell across frames.
func (p *Painter) Reset(dst *ebiten.Image) {
	p.stack = p.stack[:0]
	p.state.dst = dst
}

// SetFillColor sets the fill color for subsequent fill calls.
func (p *Painter) SetFillColor(hex string) { p.state.fill = mustColor(hex) }

// SetStrokeColor sets the stroke color for subsequent stroke calls.
func (p *Painter) SetStrokeColor(hex string) { p.state.stroke = mustColor(hex) }

// SetStrokeWidth sets the stroke width in pixels.
func (p *Painter) SetStrokeWidth(w float64) { p.state.strokeWidth = float32(w) }

// SetFontSize sets the font size for subsequent text calls.
func (p *Painter) SetFontSize(size float64) { p.state.fontSize = size }

func (p *Painter) FillRect(r geom.Rect) {
	vector.DrawFilledRect(p.state.dst,
		float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		p.state.fill, true)
}

func (p *Painter) StrokeRect(r geom.Rect) {
	vector.StrokeRect(p.state.dst,
		float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		p.state.strokeWidth, p.state.stroke, true)
}

func (p *Painter) FillCircle(center geom.Point, radius float64) {
	vector.DrawFilledCircle(p.state.dst,
		float32(center.X), float32(center.Y), float32(radius),
		p.state.fill, true)
}

func (p *Painter) StrokeCircle(center geom.Point, radius float64) {
	vector.StrokeCircle(p.state.dst,
		float32(center.X), float32(center.Y), float32(radius),
		p.state.strokeWidth, p.state.stroke, true)
}

// StrokeLine draws a line between two points at the current stroke width.
func (p *Painter) StrokeLine(from, to geom.Point) {
	vector.StrokeLine(p.state.dst,
		float32(from.X), float32(from.Y), float32(to.X), float32(to.Y),
		p.state.strokeWidth, p.state.stroke, true)
}

// FillPolygon fills the polygon described by pts in order.
func (p *Painter) FillPolygon(pts []geom.Point) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		path.LineTo(float32(pt.X), float32(pt.Y))
	}
	path.Close()
	p.fillPath(&path)
}

// FillArc fills an annulus sector between innerRadius and outerRadius,
// sweeping from startAngle to endAngle (radians, increasing clockwise on
// screen). innerRadius of 0 fills a pie wedge.
func (p *Painter) FillArc(center geom.Point, innerRadius, outerRadius, startAngle, endAngle float64) {
	if endAngle <= startAngle || outerRadius <= 0 {
		return
	}
	cx, cy := float32(center.X), float32(center.Y)

	var path vector.Path
	path.Arc(cx, cy, float32(outerRadius), float32(startAngle), float32(endAngle), vector.Clockwise)
	if innerRadius > 0 {
		path.Arc(cx, cy, float32(innerRadius), float32(endAngle), float32(startAngle), vector.CounterClockwise)
	} else {
		path.LineTo(cx, cy)
	}
	path.Close()
	p.fillPath(&path)
}

func (p *Painter) fillPath(path *vector.Path) {
	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)

	r := float32(p.state.fill.R) / 255
	g := float32(p.state.fill.G) / 255
	b := float32(p.state.fill.B) / 255
	a := float32(p.state.fill.A) / 255
	for i := range vertices {
		vertices[i].SrcX = 0
		vertices[i].SrcY = 0
		vertices[i].ColorR = r
		vertices[i].ColorG = g
		vertices[i].ColorB = b
		vertices[i].ColorA = a
	}

	p.state.dst.DrawTriangles(vertices, indices, whitePixel, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	})
}

// FillText draws text with its baseline-left at pos.
func (p *Painter) FillText(str string, pos geom.Point) {
	face := p.fonts.Face(p.state.fontSize, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(p.state.fill)

	text.Draw(p.state.dst, str, face, op)
}

// MeasureText returns the rendered width of text at the current font size.
func (p *Painter) MeasureText(str string) float64 {
	face := p.fonts.Face(p.state.fontSize, false)
	w, _ := text.Measure(str, face, p.state.fontSize*1.2)
	return w
}

// Save pushes the current paint state; Restore pops it.
func (p *Painter) Save() {
	p.stack = append(p.stack, p.state)
}

func (p *Painter) Restore() {
	if len(p.stack) == 0 {
		return
	}
	p.state = p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
}

// Clip restricts subsequent drawing to r until the matching Restore.
// SubImage shares pixels with its parent, so drawing through the clipped
// target writes into the same frame.
func (p *Painter) Clip(r geom.Rect) {
	bounds := image.Rect(int(r.X), int(r.Y), int(r.Right()), int(r.Bottom()))
	bounds = bounds.Intersect(p.state.dst.Bounds())
	sub, ok := p.state.dst.SubImage(bounds).(*ebiten.Image)
	if !ok {
		// SubImage returns nil for an empty rectangle. Route the draws
		// to an offscreen pixel so they land nowhere visible.
		sub = ebiten.NewImage(1, 1)
	}
	p.state.dst = sub
}
