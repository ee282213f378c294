package drilldown

import (
	"github.com/opd-ai/chartkit/pkg/chart"
	"github.com/opd-ai/chartkit/pkg/geom"
)

// crumbRegion is the hit rectangle of one rendered breadcrumb entry.
type crumbRegion struct {
	rect      geom.Rect
	nodeID    string
	clickable bool
}

// Breadcrumbs renders a drill-down state's navigation trail as a
// clickable "root > level > level" bar. Entries past MaxVisible collapse
// into an ellipsis; the last entry is the current node and is not
// clickable.
type Breadcrumbs struct {
	Theme      chart.Theme
	FontSize   float64
	Separator  string
	MaxVisible int

	state   *State
	regions []crumbRegion
}

// NewBreadcrumbs creates a breadcrumb bar over the given state.
func NewBreadcrumbs(state *State) *Breadcrumbs {
	return &Breadcrumbs{
		Theme:      chart.LightTheme(),
		FontSize:   12,
		Separator:  " > ",
		MaxVisible: 5,
		state:      state,
	}
}

// visibleCrumb pairs a breadcrumb with its collapsed-ellipsis flag.
type visibleCrumb struct {
	Breadcrumb
	ellipsis bool
}

// visible returns the entries to draw, collapsing long trails to the
// root, an ellipsis, and the trailing entries.
func (b *Breadcrumbs) visible() []visibleCrumb {
	crumbs := b.state.Breadcrumbs()
	if len(crumbs) <= b.MaxVisible {
		out := make([]visibleCrumb, len(crumbs))
		for i, c := range crumbs {
			out[i] = visibleCrumb{Breadcrumb: c}
		}
		return out
	}

	out := []visibleCrumb{
		{Breadcrumb: crumbs[0]},
		{ellipsis: true},
	}
	for _, c := range crumbs[len(crumbs)-(b.MaxVisible-1):] {
		out = append(out, visibleCrumb{Breadcrumb: c})
	}
	return out
}

// Render draws the trail into area and records the hit regions for Click.
func (b *Breadcrumbs) Render(p chart.Painter, area geom.Rect) {
	entries := b.visible()
	b.regions = b.regions[:0]

	p.SetFontSize(b.FontSize)
	x := area.X
	baseline := area.Y + area.Height/2 + b.FontSize/2 - 2

	for i, entry := range entries {
		last := i == len(entries)-1

		label := entry.Label
		if entry.ellipsis {
			label = "…"
		}
		width := p.MeasureText(label)

		color := b.Theme.TextSecondary
		if last {
			color = b.Theme.TextColor
		}
		p.SetFillColor(color)
		p.FillText(label, geom.Pt(x, baseline))

		if !entry.ellipsis {
			b.regions = append(b.regions, crumbRegion{
				rect:      geom.RectOf(x, area.Y, width, area.Height),
				nodeID:    entry.NodeID,
				clickable: !last,
			})
		}
		x += width

		if !last {
			p.SetFillColor(b.Theme.TextSecondary)
			p.FillText(b.Separator, geom.Pt(x, baseline))
			x += p.MeasureText(b.Separator)
		}
	}
}

// Click navigates to the breadcrumb under pos, if any. It reports whether
// a navigation happened.
func (b *Breadcrumbs) Click(pos geom.Point) bool {
	for _, region := range b.regions {
		if region.clickable && region.rect.Contains(pos) {
			return b.state.NavigateTo(region.nodeID)
		}
	}
	return false
}
