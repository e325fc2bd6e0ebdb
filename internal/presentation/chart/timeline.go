package chart

import (
	"fmt"

	"github.com/seriv/go-xp-dashboard/internal/core/geometry"
	"github.com/seriv/go-xp-dashboard/internal/core/model"
	"github.com/seriv/go-xp-dashboard/internal/presentation/svg"
	"github.com/seriv/go-xp-dashboard/internal/util"
)

// TimelineName is the logical chart name, also keying its tooltip.
const TimelineName = "xp-timeline"

const timelineGradientID = "xp-area-fill"

const dateTickLayout = "Jan 02, 06"

// RenderTimeline draws the cumulative XP series: gridlines with
// compact Y labels, date ticks sampled at even index intervals, a
// gradient-filled area under a stroked line, and one interactive
// marker per point. An empty series short-circuits to the empty state
// before any scaling work.
func RenderTimeline(points []model.TimelinePoint, cfg TimelineConfig) *Scene {
	if len(points) == 0 {
		return emptyScene(TimelineName, cfg.Width, cfg.Height, cfg.Palette)
	}

	vp := geometry.Viewport{
		Left:   cfg.MarginLeft,
		Top:    cfg.MarginTop,
		Width:  cfg.Width - cfg.MarginLeft - cfg.MarginRight,
		Height: cfg.Height - cfg.MarginTop - cfg.MarginBottom,
	}

	samples := make([]geometry.Sample, 0, len(points))
	for _, p := range points {
		samples = append(samples, geometry.Sample{
			X: float64(p.Timestamp.Unix()),
			Y: float64(p.RunningTotal),
		})
	}
	xDomain := geometry.Domain{Min: samples[0].X, Max: samples[len(samples)-1].X}
	yDomain := geometry.Domain{Min: 0, Max: samples[len(samples)-1].Y}
	pixels := geometry.BuildLinePoints(samples, xDomain, yDomain, vp)

	pal := cfg.Palette
	root := svg.Root(cfg.Width, cfg.Height)
	root.Append(svg.Defs(svg.LinearGradient(timelineGradientID,
		svg.GradientStop{Offset: 0, Color: pal.Accent, Opacity: "0.35"},
		svg.GradientStop{Offset: 1, Color: pal.Accent, Opacity: "0.02"},
	)))

	grid := svg.Group()
	labels := svg.Group()
	for i := 0; i < cfg.YTickCount; i++ {
		frac := float64(i) / float64(cfg.YTickCount-1)
		value := yDomain.Max * frac
		y := geometry.LinearScale(value, yDomain.Min, yDomain.Max, vp.Bottom(), vp.Top)
		grid.Append(
			svg.Line(vp.Left, y, vp.Right(), y).
				Set("stroke", pal.Grid).
				Set("stroke-width", "1"),
		)
		labels.Append(
			svg.Text(vp.Left-8, y+4, svg.FormatCompact(value)).
				Set("text-anchor", "end").
				Set("fill", pal.Muted).
				Set("font-size", "11"),
		)
	}

	// Date ticks are sampled at even index intervals, not even time
	// intervals: bursts of transactions stay legible even when the
	// series spans long idle gaps.
	step := len(points) / cfg.XTickCount
	if step < 1 {
		step = 1
	}
	tp := util.GetTimeProvider()
	for i := 0; i < len(points); i += step {
		x := pixels[i].X
		labels.Append(
			svg.Text(x, vp.Bottom()+20, tp.Format(points[i].Timestamp, dateTickLayout)).
				Set("text-anchor", "middle").
				Set("fill", pal.Muted).
				Set("font-size", "11"),
		)
	}

	baseline := vp.Bottom()
	area := svg.Path(geometry.BuildAreaPath(pixels, baseline)).
		Set("fill", fmt.Sprintf("url(#%s)", timelineGradientID)).
		Set("stroke", "none")
	line := svg.Path(geometry.BuildLinePath(pixels)).
		Set("fill", "none").
		Set("stroke", pal.Accent).
		Set("stroke-width", "2")

	markers := svg.Group()
	scene := &Scene{Name: TimelineName}
	for i, px := range pixels {
		id := fmt.Sprintf("xp-marker-%d", i)
		markers.Append(
			svg.Circle(px.X, px.Y, cfg.MarkerRadius).
				Set("id", id).
				Set("fill", pal.Accent).
				Set("stroke", "#ffffff").
				Set("stroke-width", "1.5"),
		)
		p := points[i]
		scene.Bindings = append(scene.Bindings, Binding{
			TargetID: id,
			Event:    EventHover,
			TooltipHTML: fmt.Sprintf("<strong>%s</strong><br>%s<br>+%s XP &middot; total %s",
				truncateLabel(p.SubjectLabel, 32),
				tp.Format(p.Timestamp, dateTickLayout),
				svg.FormatThousands(p.Increment),
				svg.FormatCompact(float64(p.RunningTotal))),
		})
	}

	root.Append(grid, area, line, markers, labels)
	scene.Root = root
	return scene
}
