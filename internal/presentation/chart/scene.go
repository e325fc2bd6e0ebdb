package chart

import (
	"github.com/mattn/go-runewidth"
	"github.com/seriv/go-xp-dashboard/internal/presentation/svg"
)

// EventHover is the only interaction kind the charts register.
const EventHover = "hover"

// Binding declares one interaction the host must wire: when Event
// fires on the primitive identified by TargetID, show TooltipHTML on
// the chart's tooltip surface. Bindings reference primitives of the
// scene they ship with, never an earlier render's.
type Binding struct {
	TargetID    string
	Event       string
	TooltipHTML string
}

// Scene is the complete output of one render call: a vector node tree
// plus the bindings for it. The tree is always fully constructed
// before bindings are attached, so no callback can ever fire against a
// half-built scene, and replacing a Scene orphans the previous one
// wholesale.
type Scene struct {
	Name     string
	Root     *svg.Node
	Bindings []Binding
	Empty    bool
}

// Tooltip returns the singleton tooltip surface for this chart type.
func (s *Scene) Tooltip() svg.Tooltip {
	return svg.TooltipFor(s.Name)
}

// emptyScene is the shared empty-state placeholder: a fixed message
// instead of a chart, with no data primitives and no bindings.
func emptyScene(name string, width, height float64, p Palette) *Scene {
	root := svg.Root(width, height)
	root.Append(
		svg.Text(width/2, height/2, "No data available").
			Set("text-anchor", "middle").
			Set("fill", p.Muted).
			Set("font-size", "14"),
	)
	return &Scene{Name: name, Root: root, Empty: true}
}

// truncateLabel shortens a subject label to the given display width,
// appending an ellipsis. Width is measured in terminal cells so wide
// runes count double and never overflow the label column.
func truncateLabel(label string, maxWidth int) string {
	return runewidth.Truncate(label, maxWidth, "…")
}
