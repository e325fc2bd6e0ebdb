package chart

import (
	"fmt"

	"github.com/seriv/go-xp-dashboard/internal/core/geometry"
	"github.com/seriv/go-xp-dashboard/internal/core/model"
	"github.com/seriv/go-xp-dashboard/internal/presentation/svg"
)

// RankedName is the logical chart name, also keying its tooltip.
const RankedName = "top-projects"

// RenderRanked draws horizontal bars for the given subject totals,
// already ranked descending by the aggregator. Each row carries the
// rank, the truncated subject label, the absolute value and its share
// of the displayed total; a dashed marker crosses the bars at the
// arithmetic mean of the displayed totals.
func RenderRanked(totals []model.ProjectTotal, cfg RankedConfig) *Scene {
	if len(totals) == 0 {
		return emptyScene(RankedName, cfg.Width, cfg.RowHeight*4, cfg.Palette)
	}

	pal := cfg.Palette
	height := cfg.MarginTop + cfg.MarginBottom + cfg.RowHeight*float64(len(totals))
	trackLength := cfg.Width - cfg.MarginLeft - cfg.MarginRight

	maxTotal := totals[0].Total
	sum := 0
	for _, t := range totals {
		sum += t.Total
	}
	mean := float64(sum) / float64(len(totals))

	root := svg.Root(cfg.Width, height)
	scene := &Scene{Name: RankedName}
	barHeight := cfg.RowHeight * 0.55

	for i, t := range totals {
		rowTop := cfg.MarginTop + cfg.RowHeight*float64(i)
		midY := rowTop + cfg.RowHeight/2
		length := geometry.BarExtents(float64(t.Total), float64(maxTotal), trackLength)
		id := fmt.Sprintf("project-bar-%d", i)

		root.Append(
			svg.Text(cfg.MarginLeft-200, midY+4, fmt.Sprintf("%d.", i+1)).
				Set("fill", pal.Muted).
				Set("font-size", "12"),
			svg.Text(cfg.MarginLeft-8, midY+4, truncateLabel(t.SubjectLabel, cfg.MaxLabelWidth)).
				Set("text-anchor", "end").
				Set("fill", pal.Text).
				Set("font-size", "12"),
			svg.Rect(cfg.MarginLeft, midY-barHeight/2, length, barHeight).
				Set("id", id).
				Set("fill", pal.Accent).
				Set("rx", "3"),
			svg.Text(cfg.MarginLeft+length+8, midY+4,
				fmt.Sprintf("%s (%s)", svg.FormatCompact(float64(t.Total)), svg.FormatPercent(float64(t.Total), float64(sum)))).
				Set("fill", pal.Muted).
				Set("font-size", "11"),
		)
		scene.Bindings = append(scene.Bindings, Binding{
			TargetID: id,
			Event:    EventHover,
			TooltipHTML: fmt.Sprintf("<strong>%s</strong><br>%s XP &middot; %s of top %d",
				t.SubjectLabel,
				svg.FormatThousands(t.Total),
				svg.FormatPercent(float64(t.Total), float64(sum)),
				len(totals)),
		})
	}

	meanX := cfg.MarginLeft + geometry.BarExtents(mean, float64(maxTotal), trackLength)
	root.Append(
		svg.Line(meanX, cfg.MarginTop-8, meanX, height-cfg.MarginBottom).
			Set("stroke", pal.Warning).
			Set("stroke-width", "1.5").
			Set("stroke-dasharray", "4 3"),
		svg.Text(meanX, cfg.MarginTop-12, fmt.Sprintf("mean %s", svg.FormatCompact(mean))).
			Set("text-anchor", "middle").
			Set("fill", pal.Warning).
			Set("font-size", "11"),
	)

	scene.Root = root
	return scene
}
