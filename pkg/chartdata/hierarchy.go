package chartdata

import (
	"sort"
	"strings"
)

// NamedPoints is one named series of data points within a hierarchy node,
// kept as a slice so the series order is stable.
type NamedPoints struct {
	Name   string
	Points []DataPoint
}

// Node is one level in a drill-down hierarchy. The node owns its children;
// ParentID is a non-owning back-reference set when the node is attached.
//
// A category in Data is "drillable" when a child is registered under the
// same key.
type Node struct {
	ID        string
	Label     string
	LevelName string

	// Data holds single-series data for bar and pie charts.
	Data []DataPoint
	// SeriesData holds multi-series data for stacked bar and heatmap
	// charts. Non-empty SeriesData takes precedence over Data.
	SeriesData []NamedPoints

	Children map[string]*Node
	ParentID string
	Style    *SeriesStyle
}

// AddChild registers a child node under a category key and sets the child's
// parent back-reference. Returns the receiver for chaining.
func (n *Node) AddChild(key string, child *Node) *Node {
	if n.Children == nil {
		n.Children = make(map[string]*Node)
	}
	child.ParentID = n.ID
	n.Children[key] = child
	return n
}

// HasChildren reports whether the category key has a registered child.
func (n *Node) HasChildren(key string) bool {
	_, ok := n.Children[key]
	return ok
}

// Child returns the child registered under key, or nil.
func (n *Node) Child(key string) *Node {
	return n.Children[key]
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsMultiSeries reports whether the node carries multi-series data.
func (n *Node) IsMultiSeries() bool {
	return len(n.SeriesData) > 0
}

// DrillableCategories returns the sorted set of categories with children.
func (n *Node) DrillableCategories() []string {
	keys := make([]string, 0, len(n.Children))
	for k := range n.Children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AllCategories returns the node's categories. For multi-series data that is
// the sorted union across series; for single-series data it is the point
// order.
func (n *Node) AllCategories() []string {
	if n.IsMultiSeries() {
		seen := make(map[string]struct{})
		var categories []string
		for _, s := range n.SeriesData {
			for _, p := range s.Points {
				if _, ok := seen[p.Category]; !ok {
					seen[p.Category] = struct{}{}
					categories = append(categories, p.Category)
				}
			}
		}
		sort.Strings(categories)
		return categories
	}

	categories := make([]string, len(n.Data))
	for i, p := range n.Data {
		categories[i] = p.Category
	}
	return categories
}

// DataWithDrillable returns copies of the node's data points with a
// "drillable" metadata flag set per point.
func (n *Node) DataWithDrillable() []DataPoint {
	out := make([]DataPoint, len(n.Data))
	for i, p := range n.Data {
		p.Metadata = p.Metadata.clone("drillable", n.HasChildren(p.Category))
		out[i] = p
	}
	return out
}

// SeriesDataWithDrillable returns copies of the node's multi-series data
// with a "drillable" metadata flag set per point.
func (n *Node) SeriesDataWithDrillable() []NamedPoints {
	out := make([]NamedPoints, len(n.SeriesData))
	for i, s := range n.SeriesData {
		points := make([]DataPoint, len(s.Points))
		for j, p := range s.Points {
			p.Metadata = p.Metadata.clone("drillable", n.HasChildren(p.Category))
			points[j] = p
		}
		out[i] = NamedPoints{Name: s.Name, Points: points}
	}
	return out
}

// Hierarchy is an observable container for a drill-down node tree.
type Hierarchy struct {
	Observable

	Root  *Node
	Title string
}

// NewHierarchy creates a hierarchy around the given root node.
func NewHierarchy(title string, root *Node) *Hierarchy {
	return &Hierarchy{Root: root, Title: title}
}

// FindNode returns the node with the given ID, searching breadth first,
// or nil if absent.
func (h *Hierarchy) FindNode(id string) *Node {
	if h.Root == nil {
		return nil
	}
	queue := []*Node{h.Root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node.ID == id {
			return node
		}
		for _, child := range node.Children {
			queue = append(queue, child)
		}
	}
	return nil
}

// PathToNode returns the nodes from the root to the node with the given ID,
// inclusive, or nil if absent.
func (h *Hierarchy) PathToNode(id string) []*Node {
	if h.Root == nil {
		return nil
	}
	var path []*Node
	var dfs func(*Node) bool
	dfs = func(node *Node) bool {
		path = append(path, node)
		if node.ID == id {
			return true
		}
		for _, child := range node.Children {
			if dfs(child) {
				return true
			}
		}
		path = path[:len(path)-1]
		return false
	}
	if !dfs(h.Root) {
		return nil
	}
	return path
}

// MaxDepth returns the depth of the deepest leaf: 0 for a root-only tree.
func (h *Hierarchy) MaxDepth() int {
	var depth func(*Node) int
	depth = func(n *Node) int {
		if n.IsLeaf() {
			return 0
		}
		maxChild := 0
		for _, child := range n.Children {
			if d := depth(child); d > maxChild {
				maxChild = d
			}
		}
		return 1 + maxChild
	}
	if h.Root == nil {
		return 0
	}
	return depth(h.Root)
}

// NodeSpec describes one hierarchy entry for NodeFromSpec.
type NodeSpec struct {
	Value    float64
	Children map[string]NodeSpec
}

// NodeFromSpec builds a node tree from nested specs. Category keys are
// sorted for deterministic point order; node IDs are derived from labels.
func NodeFromSpec(label string, children map[string]NodeSpec, levelNames []string) *Node {
	return nodeFromSpec(label, children, levelNames, slugify(label), 0)
}

func nodeFromSpec(label string, children map[string]NodeSpec, levelNames []string, id string, depth int) *Node {
	levelName := ""
	if depth < len(levelNames) {
		levelName = levelNames[depth]
	}

	keys := make([]string, 0, len(children))
	for k := range children {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	node := &Node{ID: id, Label: label, LevelName: levelName}
	for _, key := range keys {
		spec := children[key]
		node.Data = append(node.Data, DataPoint{
			Category: key,
			Value:    spec.Value,
			Label:    key,
		})
		if len(spec.Children) > 0 {
			child := nodeFromSpec(key, spec.Children, levelNames, id+"_"+slugify(key), depth+1)
			node.AddChild(key, child)
		}
	}
	return node
}

func slugify(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "_")
}
