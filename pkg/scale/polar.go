package scale

import (
	"math"

	"github.com/opd-ai/chartkit/pkg/geom"
)

// Polar maps values to angles and radii around a center point, as used by
// pie charts, donut charts and gauges. Angles are in radians; the default
// orientation starts at 12 o'clock and sweeps a full circle.
type Polar struct {
	Center      geom.Point
	InnerRadius float64 // 0 for pie, >0 for donut
	OuterRadius float64
	StartAngle  float64
	EndAngle    float64
}

// NewPolar creates a polar scale with the default full-circle sweep starting
// at the top (12 o'clock).
func NewPolar(center geom.Point, innerRadius, outerRadius float64) Polar {
	return Polar{
		Center:      center,
		InnerRadius: innerRadius,
		OuterRadius: outerRadius,
		StartAngle:  -math.Pi / 2,
		EndAngle:    3 * math.Pi / 2,
	}
}

// ForGauge creates a polar scale configured for a gauge arc: an annulus of
// the given arc width sweeping between the two angles in degrees.
func ForGauge(center geom.Point, radius, arcWidth, startDegrees, endDegrees float64) Polar {
	return Polar{
		Center:      center,
		InnerRadius: radius - arcWidth,
		OuterRadius: radius,
		StartAngle:  startDegrees * math.Pi / 180,
		EndAngle:    endDegrees * math.Pi / 180,
	}
}

// AngleSpan returns the signed total sweep in radians. A negative span means
// a reversed sweep direction.
func (s Polar) AngleSpan() float64 {
	return s.EndAngle - s.StartAngle
}

// ValueToAngle converts a value to an angle proportional to total.
// A zero total maps every value to the start angle.
func (s Polar) ValueToAngle(value, total float64) float64 {
	if total == 0 {
		return s.StartAngle
	}
	return s.StartAngle + (value/total)*s.AngleSpan()
}

// PercentageToAngle converts a fraction in [0,1] to an angle.
func (s Polar) PercentageToAngle(pct float64) float64 {
	return s.StartAngle + pct*s.AngleSpan()
}

// PointAt returns the point at the given angle and radius from the center.
func (s Polar) PointAt(angle, radius float64) geom.Point {
	return geom.Point{
		X: s.Center.X + radius*math.Cos(angle),
		Y: s.Center.Y + radius*math.Sin(angle),
	}
}

// ArcPoints samples points along an arc at the given radius. numPoints <= 0
// picks a density of roughly one point per five degrees.
func (s Polar) ArcPoints(startAngle, endAngle, radius float64, numPoints int) []geom.Point {
	span := math.Abs(endAngle - startAngle)
	if numPoints <= 0 {
		numPoints = int(span * 180 / math.Pi / 5)
		if numPoints < 2 {
			numPoints = 2
		}
	}

	points := make([]geom.Point, 0, numPoints+1)
	for i := 0; i <= numPoints; i++ {
		t := float64(i) / float64(numPoints)
		points = append(points, s.PointAt(startAngle+t*(endAngle-startAngle), radius))
	}
	return points
}

// SlicePath returns the closed outline of a pie or donut slice. For donuts
// (inner radius > 0) the outline is the outer arc followed by the inner arc
// reversed; for pies it is center, outer arc, center.
func (s Polar) SlicePath(startAngle, endAngle float64) []geom.Point {
	var points []geom.Point
	if s.InnerRadius > 0 {
		points = append(points, s.ArcPoints(startAngle, endAngle, s.OuterRadius, 0)...)
		points = append(points, s.ArcPoints(endAngle, startAngle, s.InnerRadius, 0)...)
	} else {
		points = append(points, s.Center)
		points = append(points, s.ArcPoints(startAngle, endAngle, s.OuterRadius, 0)...)
		points = append(points, s.Center)
	}
	return points
}

// SliceCentroid returns the visual center of a slice, used for labels and
// tooltip anchors.
func (s Polar) SliceCentroid(startAngle, endAngle float64) geom.Point {
	mid := (startAngle + endAngle) / 2
	return s.PointAt(mid, (s.InnerRadius+s.OuterRadius)/2)
}

// LabelPoint returns a point outside the slice for external label placement.
// offset > 1 places the label beyond the outer radius.
func (s Polar) LabelPoint(startAngle, endAngle, offset float64) geom.Point {
	mid := (startAngle + endAngle) / 2
	return s.PointAt(mid, s.OuterRadius*offset)
}

// ContainsPoint reports whether the point lies within the annulus sector
// bounded by the scale's radii and the given angles. Sectors crossing the
// zero angle are handled.
func (s Polar) ContainsPoint(p geom.Point, startAngle, endAngle float64) bool {
	dist := s.Center.DistanceTo(p)
	if dist < s.InnerRadius || dist > s.OuterRadius {
		return false
	}

	angle := normalizeAngle(math.Atan2(p.Y-s.Center.Y, p.X-s.Center.X))
	start := normalizeAngle(startAngle)
	end := normalizeAngle(endAngle)

	if start <= end {
		return angle >= start && angle <= end
	}
	// Sector wraps past the zero angle.
	return angle >= start || angle <= end
}

// normalizeAngle maps an angle into [0, 2*pi).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// WithRadii returns a copy with the given inner and outer radii.
func (s Polar) WithRadii(inner, outer float64) Polar {
	s.InnerRadius = inner
	s.OuterRadius = outer
	return s
}
