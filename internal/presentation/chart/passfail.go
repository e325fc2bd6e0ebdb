package chart

import (
	"fmt"

	"github.com/seriv/go-xp-dashboard/internal/core/geometry"
	"github.com/seriv/go-xp-dashboard/internal/core/model"
	"github.com/seriv/go-xp-dashboard/internal/presentation/svg"
)

// PassFailName is the logical chart name, also keying its tooltip.
const PassFailName = "pass-fail"

// RenderPassFail draws two vertical bars scaled to their shared
// maximum, percentage labels against the combined total, and a title
// carrying the total count and overall pass rate. A pass rate at or
// above 50% gets the favorable color treatment.
func RenderPassFail(counts model.PassFail, cfg PassFailConfig) *Scene {
	if counts.Total() == 0 {
		return emptyScene(PassFailName, cfg.Width, cfg.Height, cfg.Palette)
	}

	pal := cfg.Palette
	trackHeight := cfg.Height - cfg.MarginTop - cfg.MarginBottom
	baseline := cfg.Height - cfg.MarginBottom
	maxCount := counts.Passed
	if counts.Failed > maxCount {
		maxCount = counts.Failed
	}

	rateColor := pal.Fail
	if counts.PassRate() >= FavorablePassRate {
		rateColor = pal.Positive
	}

	type bar struct {
		label string
		count int
		color string
	}
	bars := []bar{
		{label: "Passed", count: counts.Passed, color: pal.Positive},
		{label: "Failed", count: counts.Failed, color: pal.Fail},
	}

	root := svg.Root(cfg.Width, cfg.Height)
	root.Append(
		svg.Text(cfg.Width/2, 22, fmt.Sprintf("%s results", svg.FormatThousands(counts.Total()))).
			Set("text-anchor", "middle").
			Set("fill", pal.Text).
			Set("font-size", "15").
			Set("font-weight", "bold"),
		svg.Text(cfg.Width/2, 40, fmt.Sprintf("%.1f%% pass rate", counts.PassRate())).
			Set("text-anchor", "middle").
			Set("fill", rateColor).
			Set("font-size", "12"),
		svg.Line(cfg.Width/4, baseline, cfg.Width*3/4+cfg.BarWidth/2, baseline).
			Set("stroke", pal.Grid).
			Set("stroke-width", "1"),
	)

	scene := &Scene{Name: PassFailName}
	slots := []float64{cfg.Width / 3, cfg.Width * 2 / 3}
	for i, b := range bars {
		h := geometry.BarExtents(float64(b.count), float64(maxCount), trackHeight)
		x := slots[i] - cfg.BarWidth/2
		id := fmt.Sprintf("result-bar-%d", i)
		root.Append(
			svg.Rect(x, baseline-h, cfg.BarWidth, h).
				Set("id", id).
				Set("fill", b.color).
				Set("rx", "4"),
			svg.Text(slots[i], baseline-h-8, svg.FormatPercent(float64(b.count), float64(counts.Total()))).
				Set("text-anchor", "middle").
				Set("fill", pal.Text).
				Set("font-size", "12"),
			svg.Text(slots[i], baseline+18, b.label).
				Set("text-anchor", "middle").
				Set("fill", pal.Muted).
				Set("font-size", "12"),
		)
		scene.Bindings = append(scene.Bindings, Binding{
			TargetID: id,
			Event:    EventHover,
			TooltipHTML: fmt.Sprintf("<strong>%s</strong><br>%s of %s results",
				b.label,
				svg.FormatThousands(b.count),
				svg.FormatThousands(counts.Total())),
		})
	}

	scene.Root = root
	return scene
}
