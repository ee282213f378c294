// Package drilldown implements hierarchical chart navigation: a state
// machine tracking the path from a hierarchy's root to the currently
// displayed node, plus conversions from hierarchy nodes to the flat data
// models the chart widgets render.
package drilldown

import (
	"github.com/opd-ai/chartkit/pkg/chart"
	"github.com/opd-ai/chartkit/pkg/chartdata"
)

// PathEntry is one step in the drill-down path. ClickedKey is the category
// that was clicked to reach this node; it is empty for the root entry.
type PathEntry struct {
	NodeID     string
	ClickedKey string
	Label      string
}

// Breadcrumb is one clickable entry in a breadcrumb trail.
type Breadcrumb struct {
	NodeID string
	Label  string
}

// DrillDownFunc is called after navigating into a child node.
type DrillDownFunc func(node *chartdata.Node, key string)

// DrillUpFunc is called after navigating back toward the root.
type DrillUpFunc func(node *chartdata.Node)

// State tracks the navigation position within a hierarchy. The path always
// starts at the root and its last entry is the current node; every
// navigation keeps that invariant and notifies observers once.
//
// Like the data models, State is confined to the UI goroutine.
type State struct {
	chartdata.Observable

	hierarchy *chartdata.Hierarchy
	path      []PathEntry
	logger    chart.Logger

	onDrillDown DrillDownFunc
	onDrillUp   DrillUpFunc
}

// NewState creates a navigation state positioned at the hierarchy's root.
func NewState(h *chartdata.Hierarchy) *State {
	root := h.Root
	return &State{
		hierarchy: h,
		path: []PathEntry{{
			NodeID: root.ID,
			Label:  rootLabel(root),
		}},
	}
}

func rootLabel(n *chartdata.Node) string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// SetLogger attaches an optional logger for navigation diagnostics.
// A nil logger keeps the state silent.
func (s *State) SetLogger(l chart.Logger) { s.logger = l }

// OnDrillDown registers a callback fired after drilling into a child.
func (s *State) OnDrillDown(fn DrillDownFunc) { s.onDrillDown = fn }

// OnDrillUp registers a callback fired after drilling back up.
func (s *State) OnDrillUp(fn DrillUpFunc) { s.onDrillUp = fn }

// Hierarchy returns the navigated hierarchy.
func (s *State) Hierarchy() *chartdata.Hierarchy { return s.hierarchy }

// CurrentNodeID returns the ID of the displayed node.
func (s *State) CurrentNodeID() string {
	return s.path[len(s.path)-1].NodeID
}

// CurrentNode returns the displayed node.
func (s *State) CurrentNode() *chartdata.Node {
	return s.hierarchy.FindNode(s.CurrentNodeID())
}

// CurrentDepth returns how many levels below the root the view is.
func (s *State) CurrentDepth() int {
	return len(s.path) - 1
}

// Path returns a copy of the navigation path, root first.
func (s *State) Path() []PathEntry {
	return append([]PathEntry(nil), s.path...)
}

// CanDrillDown reports whether the clicked category has a child to
// navigate into.
func (s *State) CanDrillDown(key string) bool {
	node := s.CurrentNode()
	return node != nil && node.HasChildren(key)
}

// CanDrillUp reports whether the view is below the root.
func (s *State) CanDrillUp() bool {
	return len(s.path) > 1
}

// DrillDown navigates into the child registered under the clicked
// category. It returns false, without side effects, when the category has
// no child.
func (s *State) DrillDown(key string) bool {
	node := s.CurrentNode()
	if node == nil {
		return false
	}
	child := node.Child(key)
	if child == nil {
		return false
	}

	label := child.Label
	if label == "" {
		label = key
	}
	s.path = append(s.path, PathEntry{
		NodeID:     child.ID,
		ClickedKey: key,
		Label:      label,
	})

	if s.logger != nil {
		s.logger.Debug("drill down", "key", key, "node", child.ID, "depth", s.CurrentDepth())
	}
	if s.onDrillDown != nil {
		s.onDrillDown(child, key)
	}
	s.Notify(nil)
	return true
}

// DrillUp navigates one level toward the root. At the root it returns
// false without side effects.
func (s *State) DrillUp() bool {
	if len(s.path) <= 1 {
		return false
	}
	s.path = s.path[:len(s.path)-1]

	if s.logger != nil {
		s.logger.Debug("drill up", "node", s.CurrentNodeID(), "depth", s.CurrentDepth())
	}
	if s.onDrillUp != nil {
		s.onDrillUp(s.CurrentNode())
	}
	s.Notify(nil)
	return true
}

// NavigateTo jumps to a node already on the path, truncating everything
// below it. Node IDs not on the path return false; navigating to the
// current node is a no-op returning true.
func (s *State) NavigateTo(nodeID string) bool {
	for i, entry := range s.path {
		if entry.NodeID != nodeID {
			continue
		}
		if i == len(s.path)-1 {
			return true
		}
		s.path = s.path[:i+1]

		if s.onDrillUp != nil {
			s.onDrillUp(s.CurrentNode())
		}
		s.Notify(nil)
		return true
	}
	return false
}

// Reset returns the view to the root.
func (s *State) Reset() {
	if len(s.path) == 1 {
		return
	}
	s.path = s.path[:1]

	if s.onDrillUp != nil {
		s.onDrillUp(s.CurrentNode())
	}
	s.Notify(nil)
}

// Breadcrumbs returns the navigation trail, root first.
func (s *State) Breadcrumbs() []Breadcrumb {
	crumbs := make([]Breadcrumb, len(s.path))
	for i, entry := range s.path {
		crumbs[i] = Breadcrumb{NodeID: entry.NodeID, Label: entry.Label}
	}
	return crumbs
}

// ToCategorical flattens a hierarchy node into the categorical model bar,
// pie, and stacked bar charts render. Multi-series nodes become one series
// per named point set; single-series nodes become one series with
// per-point palette colors and a "drillable" metadata flag per point.
func ToCategorical(node *chartdata.Node, title string) *chartdata.Categorical {
	d := chartdata.NewCategorical(title)

	if node.IsMultiSeries() {
		for i, s := range node.SeriesDataWithDrillable() {
			series := chartdata.NewCategoricalSeries(s.Name, s.Points)
			series.Style.Color = chart.DefaultSeriesColors[i%len(chart.DefaultSeriesColors)]
			d.AddSeries(series)
		}
		return d
	}

	points := node.DataWithDrillable()
	for i := range points {
		if points[i].Metadata.String("color") == "" {
			colored := make(chartdata.Metadata, len(points[i].Metadata)+1)
			for k, v := range points[i].Metadata {
				colored[k] = v
			}
			colored["color"] = chart.DefaultSeriesColors[i%len(chart.DefaultSeriesColors)]
			points[i].Metadata = colored
		}
	}

	name := node.Label
	if name == "" {
		name = node.ID
	}
	series := chartdata.NewCategoricalSeries(name, points)
	if node.Style != nil {
		series.Style = *node.Style
	}
	d.AddSeries(series)
	return d
}

// ToHeatmap flattens a multi-series hierarchy node into the heatmap
// model: the category union becomes rows, series become columns, and
// categories missing from a series read as zero.
func ToHeatmap(node *chartdata.Node, title string) *chartdata.Heatmap {
	rows := node.AllCategories()
	rowIndex := make(map[string]int, len(rows))
	for i, c := range rows {
		rowIndex[c] = i
	}

	columns := make([]string, len(node.SeriesData))
	values := make([][]float64, len(rows))
	for i := range values {
		values[i] = make([]float64, len(columns))
	}
	for col, s := range node.SeriesData {
		columns[col] = s.Name
		for _, p := range s.Points {
			if row, ok := rowIndex[p.Category]; ok {
				values[row][col] = p.Value
			}
		}
	}

	return chartdata.NewHeatmap(title, values, rows, columns)
}
