package geometry

// Point is a position in pixel space.
type Point struct {
	X float64
	Y float64
}

// Sample is one entry of an abstract series before scaling: X is the
// domain position (typically a Unix timestamp), Y the magnitude.
type Sample struct {
	X float64
	Y float64
}

// Domain is an inclusive value range to be mapped onto pixels.
type Domain struct {
	Min float64
	Max float64
}

// Viewport is the rectangular drawing area a series is mapped into.
type Viewport struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Right returns the x coordinate of the viewport's right edge.
func (v Viewport) Right() float64 { return v.Left + v.Width }

// Bottom returns the y coordinate of the viewport's bottom edge.
func (v Viewport) Bottom() float64 { return v.Top + v.Height }

// LinearScale maps value from [domainMin, domainMax] onto
// [rangeMin, rangeMax]. A degenerate domain (min == max) maps every
// input to rangeMin instead of dividing by zero.
func LinearScale(value, domainMin, domainMax, rangeMin, rangeMax float64) float64 {
	if domainMax == domainMin {
		return rangeMin
	}
	return rangeMin + (value-domainMin)/(domainMax-domainMin)*(rangeMax-rangeMin)
}

// BuildLinePoints maps each sample into the viewport, preserving
// series order. The y axis is inverted so larger values sit higher on
// the drawing surface.
func BuildLinePoints(samples []Sample, xDomain, yDomain Domain, vp Viewport) []Point {
	points := make([]Point, 0, len(samples))
	for _, s := range samples {
		points = append(points, Point{
			X: LinearScale(s.X, xDomain.Min, xDomain.Max, vp.Left, vp.Right()),
			Y: LinearScale(s.Y, yDomain.Min, yDomain.Max, vp.Bottom(), vp.Top),
		})
	}
	return points
}

// BarExtents returns the pixel length of a bar proportional to
// value/maxValue over trackLength. A non-positive maximum yields 0.
func BarExtents(value, maxValue, trackLength float64) float64 {
	if maxValue <= 0 {
		return 0
	}
	return value / maxValue * trackLength
}
