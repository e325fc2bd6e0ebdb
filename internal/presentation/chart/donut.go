package chart

import (
	"fmt"

	"github.com/seriv/go-xp-dashboard/internal/core/geometry"
	"github.com/seriv/go-xp-dashboard/internal/core/metric"
	"github.com/seriv/go-xp-dashboard/internal/core/model"
	"github.com/seriv/go-xp-dashboard/internal/presentation/svg"
)

// DonutName is the logical chart name, also keying its tooltip.
const DonutName = "audit-ratio"

// RenderDonut draws the audit-ratio ring: exactly two segments in
// fixed order (performed, then received), the ratio to two decimals in
// the center, and a status line chosen by the fixed >= 1 threshold.
// Zero counts on both sides short-circuit to the empty state.
func RenderDonut(audits model.AuditCount, cfg DonutConfig) *Scene {
	if audits.Performed <= 0 && audits.Received <= 0 {
		return emptyScene(DonutName, cfg.Size, cfg.Size, cfg.Palette)
	}

	pal := cfg.Palette
	center := geometry.Point{X: cfg.Size / 2, Y: cfg.Size / 2}
	segments := geometry.StackAngularSegments([]float64{audits.Performed, audits.Received})

	ratio := metric.AuditRatio(audits.Performed, audits.Received)
	status, statusColor := "good", pal.Positive
	if audits.Received <= 0 || audits.Performed/audits.Received < RatioGoodThreshold {
		status, statusColor = "needs improvement", pal.Warning
	}

	type slice struct {
		label string
		value float64
		color string
	}
	slices := []slice{
		{label: "Performed", value: audits.Performed, color: pal.Accent},
		{label: "Received", value: audits.Received, color: pal.AccentDim},
	}

	root := svg.Root(cfg.Size, cfg.Size)
	arcs := svg.Group()
	scene := &Scene{Name: DonutName}
	totalPoints := audits.Performed + audits.Received
	for i, s := range slices {
		d := geometry.BuildDonutArc(center, cfg.InnerRadius, cfg.OuterRadius,
			segments[i].StartDeg, segments[i].EndDeg)
		if d == "" {
			continue
		}
		id := fmt.Sprintf("audit-segment-%d", i)
		arcs.Append(
			svg.Path(d).
				Set("id", id).
				Set("fill", s.color),
		)
		scene.Bindings = append(scene.Bindings, Binding{
			TargetID: id,
			Event:    EventHover,
			TooltipHTML: fmt.Sprintf("<strong>%s</strong><br>%s audit points (%s)",
				s.label,
				svg.FormatThousands(int(s.value)),
				svg.FormatPercent(s.value, totalPoints)),
		})
	}

	root.Append(
		arcs,
		svg.Text(center.X, center.Y-4, ratio).
			Set("text-anchor", "middle").
			Set("fill", pal.Text).
			Set("font-size", "30").
			Set("font-weight", "bold"),
		svg.Text(center.X, center.Y+18, "audit ratio").
			Set("text-anchor", "middle").
			Set("fill", pal.Muted).
			Set("font-size", "12"),
		svg.Text(center.X, center.Y+36, status).
			Set("text-anchor", "middle").
			Set("fill", statusColor).
			Set("font-size", "12"),
	)
	scene.Root = root
	return scene
}
