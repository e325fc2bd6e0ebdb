package svg

import "fmt"

func f(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Root creates the <svg> element with a matching viewBox.
func Root(width, height float64) *Node {
	return NewNode("svg").
		Set("xmlns", "http://www.w3.org/2000/svg").
		Set("width", f(width)).
		Set("height", f(height)).
		Set("viewBox", fmt.Sprintf("0 0 %s %s", f(width), f(height)))
}

// Group creates a <g> container.
func Group() *Node {
	return NewNode("g")
}

// Line creates a straight segment between two points.
func Line(x1, y1, x2, y2 float64) *Node {
	return NewNode("line").
		Set("x1", f(x1)).Set("y1", f(y1)).
		Set("x2", f(x2)).Set("y2", f(y2))
}

// Rect creates a rectangle at (x, y).
func Rect(x, y, width, height float64) *Node {
	return NewNode("rect").
		Set("x", f(x)).Set("y", f(y)).
		Set("width", f(width)).Set("height", f(height))
}

// Circle creates a circle centered on (cx, cy).
func Circle(cx, cy, r float64) *Node {
	return NewNode("circle").
		Set("cx", f(cx)).Set("cy", f(cy)).Set("r", f(r))
}

// Path creates a path element from a path-data string.
func Path(d string) *Node {
	return NewNode("path").Set("d", d)
}

// Polyline creates a polyline from a points string.
func Polyline(points string) *Node {
	return NewNode("polyline").Set("points", points).Set("fill", "none")
}

// Text creates a text element anchored at (x, y).
func Text(x, y float64, content string) *Node {
	n := NewNode("text").Set("x", f(x)).Set("y", f(y))
	n.Text = content
	return n
}

// GradientStop is one color stop of a gradient, with Offset in [0, 1].
type GradientStop struct {
	Offset  float64
	Color   string
	Opacity string
}

// LinearGradient creates a vertical <linearGradient> definition that
// charts reference by id via fill="url(#id)".
func LinearGradient(id string, stops ...GradientStop) *Node {
	g := NewNode("linearGradient").
		Set("id", id).
		Set("x1", "0").Set("y1", "0").
		Set("x2", "0").Set("y2", "1")
	for _, s := range stops {
		stop := NewNode("stop").
			Set("offset", fmt.Sprintf("%.0f%%", s.Offset*100)).
			Set("stop-color", s.Color)
		if s.Opacity != "" {
			stop.Set("stop-opacity", s.Opacity)
		}
		g.Append(stop)
	}
	return g
}

// Defs wraps definition nodes such as gradients.
func Defs(children ...*Node) *Node {
	return NewNode("defs").Append(children...)
}
