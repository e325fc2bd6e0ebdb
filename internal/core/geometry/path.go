package geometry

import (
	"fmt"
	"math"
	"strings"
)

// AngularSegment is one proportional slice of a ring, in degrees
// measured clockwise from the 12 o'clock position (-90 is up).
type AngularSegment struct {
	StartDeg float64
	EndDeg   float64
}

// Span returns the angular width of the segment in degrees.
func (s AngularSegment) Span() float64 { return s.EndDeg - s.StartDeg }

// fullRingDeg is the span a single-value partition would produce. An
// SVG arc whose endpoints coincide renders nothing, so BuildDonutArc
// clamps full rings just short of 360.
const fullRingDeg = 359.999

func coord(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// BuildLinePath traces a stroked path through the points in order.
func BuildLinePath(points []Point) string {
	if len(points) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "M %s %s", coord(points[0].X), coord(points[0].Y))
	for _, p := range points[1:] {
		fmt.Fprintf(&b, " L %s %s", coord(p.X), coord(p.Y))
	}
	return b.String()
}

// BuildAreaPath closes a line path against a horizontal baseline: from
// the baseline at the first x, up to the first point, along all
// points, down to the baseline at the last x, then close. A single
// point still yields a valid zero-width closed path.
func BuildAreaPath(points []Point, baselineY float64) string {
	if len(points) == 0 {
		return ""
	}
	first := points[0]
	last := points[len(points)-1]

	var b strings.Builder
	fmt.Fprintf(&b, "M %s %s", coord(first.X), coord(baselineY))
	for _, p := range points {
		fmt.Fprintf(&b, " L %s %s", coord(p.X), coord(p.Y))
	}
	fmt.Fprintf(&b, " L %s %s Z", coord(last.X), coord(baselineY))
	return b.String()
}

// pointOnCircle converts polar coordinates to pixel space. With the
// y axis growing downward, increasing angles sweep clockwise and -90
// degrees points straight up.
func pointOnCircle(center Point, radius, angleDeg float64) Point {
	rad := angleDeg * math.Pi / 180
	return Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}

// BuildDonutArc describes one ring segment between innerRadius and
// outerRadius from startAngleDeg to endAngleDeg, clockwise. Spans
// above 180 degrees set the large-arc flag; spans covering the whole
// ring are clamped just under 360 so the arc endpoints stay distinct.
func BuildDonutArc(center Point, innerRadius, outerRadius, startAngleDeg, endAngleDeg float64) string {
	span := endAngleDeg - startAngleDeg
	if span <= 0 {
		return ""
	}
	if span >= 360 {
		endAngleDeg = startAngleDeg + fullRingDeg
		span = fullRingDeg
	}

	largeArc := 0
	if span > 180 {
		largeArc = 1
	}

	outerStart := pointOnCircle(center, outerRadius, startAngleDeg)
	outerEnd := pointOnCircle(center, outerRadius, endAngleDeg)
	innerEnd := pointOnCircle(center, innerRadius, endAngleDeg)
	innerStart := pointOnCircle(center, innerRadius, startAngleDeg)

	var b strings.Builder
	fmt.Fprintf(&b, "M %s %s", coord(outerStart.X), coord(outerStart.Y))
	fmt.Fprintf(&b, " A %s %s 0 %d 1 %s %s", coord(outerRadius), coord(outerRadius), largeArc, coord(outerEnd.X), coord(outerEnd.Y))
	fmt.Fprintf(&b, " L %s %s", coord(innerEnd.X), coord(innerEnd.Y))
	fmt.Fprintf(&b, " A %s %s 0 %d 0 %s %s", coord(innerRadius), coord(innerRadius), largeArc, coord(innerStart.X), coord(innerStart.Y))
	b.WriteString(" Z")
	return b.String()
}

// StackAngularSegments partitions the full ring proportionally to the
// values, in input order, starting at -90 degrees. Boundaries come
// from a running sum of the values rather than per-segment spans, so
// adjacent segments share boundaries exactly and the final one ends at
// precisely 270 degrees. A non-positive total yields zero-span
// segments at the start angle.
func StackAngularSegments(values []float64) []AngularSegment {
	const startDeg = -90.0

	total := 0.0
	for _, v := range values {
		total += v
	}

	segments := make([]AngularSegment, 0, len(values))
	if total <= 0 {
		for range values {
			segments = append(segments, AngularSegment{StartDeg: startDeg, EndDeg: startDeg})
		}
		return segments
	}

	cum := 0.0
	prev := startDeg
	for _, v := range values {
		cum += v
		end := startDeg + cum/total*360
		segments = append(segments, AngularSegment{StartDeg: prev, EndDeg: end})
		prev = end
	}
	return segments
}
