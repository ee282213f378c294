package drilldown

import (
	"github.com/opd-ai/chartkit/pkg/chart"
	"github.com/opd-ai/chartkit/pkg/chartdata"
)

// LeafClickFunc is called when a non-drillable category is clicked.
type LeafClickFunc func(node *chartdata.Node, key string)

// BarChart couples a bar chart widget to a drill-down state: clicking a
// drillable bar descends into its child node and re-derives the chart's
// flat data, and navigation through the state (breadcrumbs, DrillUp)
// refreshes the chart the same way.
type BarChart struct {
	*chart.BarChart

	state       *State
	model       *chartdata.Categorical
	rootTitle   string
	onLeafClick LeafClickFunc
}

// NewBarChart creates a drill-down bar chart positioned at the
// hierarchy's root.
func NewBarChart(h *chartdata.Hierarchy, opts chart.Options) *BarChart {
	state := NewState(h)
	model := ToCategorical(h.Root, h.Title)

	c := &BarChart{
		state:     state,
		model:     model,
		rootTitle: opts.Title,
	}
	c.BarChart = chart.NewBarChart(model, opts)

	state.Attach(chartdata.ObserveFunc(func(any) { c.refresh() }))
	c.OnClick(c.handleClick)
	return c
}

// State returns the navigation state, for wiring breadcrumbs or
// programmatic navigation.
func (c *BarChart) State() *State { return c.state }

// OnLeafClick registers a callback for clicks on categories without
// children.
func (c *BarChart) OnLeafClick(fn LeafClickFunc) { c.onLeafClick = fn }

// DrillUp navigates one level toward the root.
func (c *BarChart) DrillUp() bool { return c.state.DrillUp() }

// categoryAt resolves a click back to the clicked point's category.
func (c *BarChart) categoryAt(seriesIdx, dataIdx int) (string, bool) {
	if seriesIdx < 0 || seriesIdx >= len(c.model.Series) {
		return "", false
	}
	series := c.model.Series[seriesIdx]
	if dataIdx < 0 || dataIdx >= len(series.Data) {
		return "", false
	}
	return series.Data[dataIdx].Category, true
}

func (c *BarChart) handleClick(ev chart.ClickEvent) {
	key, ok := c.categoryAt(ev.SeriesIndex, ev.DataIndex)
	if !ok {
		return
	}
	if c.state.DrillDown(key) {
		return
	}
	if c.onLeafClick != nil {
		c.onLeafClick(c.state.CurrentNode(), key)
	}
}

// refresh re-derives the flat chart data from the current node. The model
// is mutated in place so the chart's observer wiring survives navigation.
func (c *BarChart) refresh() {
	node := c.state.CurrentNode()
	if node == nil {
		return
	}

	fresh := ToCategorical(node, c.model.Title)
	c.model.SetSeries(fresh.Series)

	if c.state.CurrentDepth() == 0 {
		c.SetTitle(c.rootTitle)
	} else {
		c.SetTitle(c.titleFor(node))
	}
}

func (c *BarChart) titleFor(node *chartdata.Node) string {
	title := node.Label
	if title == "" {
		title = node.ID
	}
	if node.LevelName != "" {
		title = node.LevelName + ": " + title
	}
	return title
}
