package chart

import (
	"math"
	"testing"

	"github.com/opd-ai/chartkit/pkg/geom"
)

func TestRectElementContains(t *testing.T) {
	el := &RectElement{Rect: geom.RectOf(10, 20, 30, 40)}

	tests := []struct {
		name  string
		point geom.Point
		want  bool
	}{
		{"inside", geom.Pt(25, 40), true},
		{"top-left corner", geom.Pt(10, 20), true},
		{"bottom-right corner", geom.Pt(40, 60), true},
		{"left of rect", geom.Pt(9, 40), false},
		{"below rect", geom.Pt(25, 61), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := el.Contains(tt.point); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestCircleElementContains(t *testing.T) {
	el := &CircleElement{Point: geom.Pt(100, 100), Radius: 10}

	if !el.Contains(geom.Pt(100, 100)) {
		t.Error("center should be contained")
	}
	if !el.Contains(geom.Pt(110, 100)) {
		t.Error("boundary point should be contained")
	}
	if el.Contains(geom.Pt(111, 100)) {
		t.Error("point outside radius should not be contained")
	}

	top := el.Top()
	if top.X != 100 || top.Y != 90 {
		t.Errorf("Top() = %v, want (100, 90)", top)
	}
}

func TestArcElementContains(t *testing.T) {
	// First slice of a four-slice pie starting at 12 o'clock: it sweeps
	// from -pi/2 to 0, covering the upper-right quadrant.
	el := &ArcElement{
		Point:       geom.Pt(0, 0),
		OuterRadius: 100,
		StartAngle:  -math.Pi / 2,
		EndAngle:    0,
	}

	// 45 degrees into the sweep, halfway out.
	hit := geom.Pt(50*math.Cos(-math.Pi/4), 50*math.Sin(-math.Pi/4))
	if !el.Contains(hit) {
		t.Errorf("point at mid-sweep %v should be contained", hit)
	}

	// Same distance but in the opposite quadrant.
	miss := geom.Pt(-35, 35)
	if el.Contains(miss) {
		t.Errorf("point outside the sweep %v should not be contained", miss)
	}

	// Beyond the outer radius along the mid angle.
	if el.Contains(geom.Pt(80, -80)) {
		t.Error("point beyond outer radius should not be contained")
	}
}

func TestArcElementDonutHole(t *testing.T) {
	el := &ArcElement{
		Point:       geom.Pt(0, 0),
		InnerRadius: 40,
		OuterRadius: 100,
		StartAngle:  0,
		EndAngle:    math.Pi / 2,
	}

	if el.Contains(geom.Pt(20, 20)) {
		t.Error("point inside the donut hole should not be contained")
	}
	if !el.Contains(geom.Pt(50, 50)) {
		t.Error("point in the annulus should be contained")
	}
}

func TestArcElementFullCircle(t *testing.T) {
	// A single visible slice covers the whole circle: start and end
	// coincide, which must read as a full sweep, not an empty one.
	el := &ArcElement{
		Point:       geom.Pt(0, 0),
		OuterRadius: 100,
		StartAngle:  -math.Pi / 2,
		EndAngle:    -math.Pi/2 + 2*math.Pi,
	}

	for _, p := range []geom.Point{
		geom.Pt(50, 0), geom.Pt(-50, 0), geom.Pt(0, 50), geom.Pt(0, -50),
	} {
		if !el.Contains(p) {
			t.Errorf("full-circle slice should contain %v", p)
		}
	}
}

func TestLineSegmentElementContains(t *testing.T) {
	el := &LineSegmentElement{
		Start:     geom.Pt(0, 0),
		End:       geom.Pt(100, 0),
		Thickness: 5,
	}

	tests := []struct {
		name  string
		point geom.Point
		want  bool
	}{
		{"on the segment", geom.Pt(50, 0), true},
		{"within thickness", geom.Pt(50, 5), true},
		{"outside thickness", geom.Pt(50, 6), false},
		{"past the end, within thickness of endpoint", geom.Pt(104, 0), true},
		{"past the end, beyond thickness", geom.Pt(106, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := el.Contains(tt.point); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestLineSegmentElementDegenerate(t *testing.T) {
	// Zero-length segments degrade to a point test.
	el := &LineSegmentElement{
		Start:     geom.Pt(10, 10),
		End:       geom.Pt(10, 10),
		Thickness: 3,
	}

	if !el.Contains(geom.Pt(12, 10)) {
		t.Error("point within thickness of degenerate segment should be contained")
	}
	if el.Contains(geom.Pt(14, 10)) {
		t.Error("point beyond thickness of degenerate segment should not be contained")
	}
}

func TestHitTestTopmostWins(t *testing.T) {
	bottom := &RectElement{Rect: geom.RectOf(0, 0, 100, 100), Series: 0}
	top := &RectElement{Rect: geom.RectOf(40, 40, 100, 100), Series: 1}
	elements := []Element{bottom, top}

	// In the overlap, the element drawn last wins.
	hit := HitTest(elements, geom.Pt(50, 50))
	if hit != Element(top) {
		t.Errorf("HitTest in overlap = series %d, want series 1", hit.SeriesIndex())
	}

	// Outside the overlap only the bottom element matches.
	hit = HitTest(elements, geom.Pt(10, 10))
	if hit != Element(bottom) {
		t.Error("HitTest outside overlap should return the bottom element")
	}

	if HitTest(elements, geom.Pt(300, 300)) != nil {
		t.Error("HitTest with no match should return nil")
	}
}

func TestHitTestAll(t *testing.T) {
	a := &RectElement{Rect: geom.RectOf(0, 0, 100, 100), Series: 0}
	b := &RectElement{Rect: geom.RectOf(40, 40, 100, 100), Series: 1}

	hits := HitTestAll([]Element{a, b}, geom.Pt(50, 50))
	if len(hits) != 2 {
		t.Fatalf("HitTestAll returned %d hits, want 2", len(hits))
	}
	if hits[0].SeriesIndex() != 1 || hits[1].SeriesIndex() != 0 {
		t.Error("HitTestAll should order hits topmost first")
	}
}

func TestLegendItemElement(t *testing.T) {
	el := &LegendItemElement{
		Rect:   geom.RectOf(10, 10, 90, 20),
		Series: 2,
		Data:   -1,
		Name:   "revenue",
	}

	if !el.Contains(geom.Pt(50, 20)) {
		t.Error("point in legend rect should be contained")
	}
	if el.Value() != 0 {
		t.Error("legend items carry no value")
	}
	if el.Label() != "revenue" {
		t.Errorf("Label = %q, want %q", el.Label(), "revenue")
	}
}
