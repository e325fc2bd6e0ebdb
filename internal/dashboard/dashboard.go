// Package dashboard is the host page: it aggregates fetched records,
// invokes the four chart renderers, wires their interaction bindings
// and writes a single self-contained HTML file. The wiring step is the
// only place scene primitives meet event handling; renderers stay
// display-agnostic.
package dashboard

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	"github.com/seriv/go-xp-dashboard/internal/config"
	"github.com/seriv/go-xp-dashboard/internal/core/metric"
	"github.com/seriv/go-xp-dashboard/internal/core/model"
	"github.com/seriv/go-xp-dashboard/internal/presentation/chart"
	"github.com/seriv/go-xp-dashboard/internal/presentation/svg"
	"github.com/seriv/go-xp-dashboard/internal/util"
)

// Page carries everything the template needs.
type Page struct {
	Login    string
	FullName string
	TotalXP  string
	Charts   []chartBlock
	Tooltips []template.HTML
	Script   template.JS
}

type chartBlock struct {
	Title  string
	Markup template.HTML
}

// Build aggregates the records and renders all four charts. A chart
// whose series is empty contributes its empty-state placeholder; the
// page itself always renders.
func Build(user model.User, transactions []model.Transaction, results []model.ResultRecord, cfg config.Config) *Page {
	palette := applyColors(chart.DefaultPalette(), cfg.Colors)

	timelineCfg := chart.DefaultTimelineConfig()
	timelineCfg.Palette = palette
	donutCfg := chart.DefaultDonutConfig()
	donutCfg.Palette = palette
	passFailCfg := chart.DefaultPassFailConfig()
	passFailCfg.Palette = palette
	rankedCfg := chart.DefaultRankedConfig()
	rankedCfg.Palette = palette
	rankedCfg.TopN = cfg.TopProjects

	scenes := []struct {
		title string
		scene *chart.Scene
	}{
		{"Cumulative XP", chart.RenderTimeline(metric.BuildTimeline(transactions), timelineCfg)},
		{"Audit ratio", chart.RenderDonut(user.Audits, donutCfg)},
		{"Project results", chart.RenderPassFail(metric.PassFailCounts(results), passFailCfg)},
		{fmt.Sprintf("Top %d projects", rankedCfg.TopN), chart.RenderRanked(metric.TopN(transactions, rankedCfg.TopN), rankedCfg)},
	}

	page := &Page{
		Login:    user.Login,
		FullName: strings.TrimSpace(user.FirstName + " " + user.LastName),
		TotalXP:  svg.FormatCompact(float64(metric.SumAmounts(transactions))),
		Script:   template.JS(svg.TooltipScript()),
	}
	for _, s := range scenes {
		wireBindings(s.scene)
		page.Charts = append(page.Charts, chartBlock{
			Title:  s.title,
			Markup: template.HTML(s.scene.Root.Render()),
		})
		page.Tooltips = append(page.Tooltips, template.HTML(s.scene.Tooltip().Markup()))
	}
	return page
}

// wireBindings attaches each declared binding to its primitive as data
// attributes the tooltip script reads. The scene tree is complete
// before this runs, so a binding can never reference a primitive that
// does not exist yet; a binding whose target is missing is a renderer
// bug and is logged rather than dropped silently.
func wireBindings(s *chart.Scene) {
	tooltipID := s.Tooltip().ID
	for _, b := range s.Bindings {
		node := s.Root.FindByID(b.TargetID)
		if node == nil {
			util.LogErrorf("Chart %s declared a binding for missing primitive %s", s.Name, b.TargetID)
			continue
		}
		node.Set("data-tooltip-target", tooltipID).
			Set("data-tooltip-html", b.TooltipHTML).
			Set("cursor", "pointer")
	}
}

func applyColors(p chart.Palette, c config.Colors) chart.Palette {
	if c.Accent != "" {
		p.Accent = c.Accent
	}
	if c.Positive != "" {
		p.Positive = c.Positive
	}
	if c.Warning != "" {
		p.Warning = c.Warning
	}
	if c.Fail != "" {
		p.Fail = c.Fail
	}
	return p
}

// Render writes the page HTML.
func (p *Page) Render(w io.Writer) error {
	return pageTemplate.Execute(w, p)
}

// WriteFile renders the page to path.
func (p *Page) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := p.Render(f); err != nil {
		return fmt.Errorf("rendering dashboard: %w", err)
	}
	return nil
}

var pageTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Login}} — XP dashboard</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 0; background: #f8fafc; color: #374151; }
  header { padding: 24px 32px; background: #ffffff; border-bottom: 1px solid #e5e7eb; }
  header h1 { margin: 0; font-size: 20px; }
  header p { margin: 4px 0 0; color: #9ca3af; }
  main { display: flex; flex-wrap: wrap; gap: 24px; padding: 32px; }
  section { background: #ffffff; border: 1px solid #e5e7eb; border-radius: 8px; padding: 16px; }
  section h2 { margin: 0 0 12px; font-size: 14px; color: #6b7280; text-transform: uppercase; letter-spacing: 0.05em; }
  .chart-tooltip { position: absolute; pointer-events: none; background: #111827; color: #f9fafb; padding: 6px 10px; border-radius: 4px; font-size: 12px; max-width: 260px; z-index: 10; }
</style>
</head>
<body>
<header>
  <h1>{{.Login}}{{if .FullName}} — {{.FullName}}{{end}}</h1>
  <p>{{.TotalXP}} XP total</p>
</header>
<main>
{{range .Charts}}  <section>
    <h2>{{.Title}}</h2>
    {{.Markup}}
  </section>
{{end}}</main>
{{range .Tooltips}}{{.}}
{{end}}<script>{{.Script}}</script>
</body>
</html>
`))
