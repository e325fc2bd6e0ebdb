package chart

import (
	"strings"
	"testing"

	"github.com/seriv/go-xp-dashboard/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRankedEmpty(t *testing.T) {
	scene := RenderRanked(nil, DefaultRankedConfig())

	assert.True(t, scene.Empty)
	assert.Empty(t, scene.Bindings)
}

func TestRenderRanked(t *testing.T) {
	totals := []model.ProjectTotal{
		{SubjectLabel: "graphql", Total: 300},
		{SubjectLabel: "ascii-art", Total: 100},
	}
	scene := RenderRanked(totals, DefaultRankedConfig())

	require.False(t, scene.Empty)
	assert.Equal(t, RankedName, scene.Name)

	require.Len(t, scene.Bindings, 2)
	for _, b := range scene.Bindings {
		assert.NotNil(t, scene.Root.FindByID(b.TargetID))
	}

	out := scene.Root.Render()
	assert.Contains(t, out, ">1.<")
	assert.Contains(t, out, ">2.<")
	// Shares are computed against the displayed totals only.
	assert.Contains(t, out, "(75.0%)")
	assert.Contains(t, out, "(25.0%)")
	assert.Contains(t, out, "mean 200")
}

func TestRenderRankedBarLengths(t *testing.T) {
	cfg := DefaultRankedConfig()
	totals := []model.ProjectTotal{
		{SubjectLabel: "graphql", Total: 300},
		{SubjectLabel: "ascii-art", Total: 100},
	}
	scene := RenderRanked(totals, cfg)

	trackLength := cfg.Width - cfg.MarginLeft - cfg.MarginRight

	leader := scene.Root.FindByID("project-bar-0")
	require.NotNil(t, leader)
	assert.Equal(t, formatPx(trackLength), leader.Attrs["width"])

	runner := scene.Root.FindByID("project-bar-1")
	require.NotNil(t, runner)
	assert.Equal(t, formatPx(trackLength/3), runner.Attrs["width"])
}

func TestRenderRankedLabelTruncation(t *testing.T) {
	long := strings.Repeat("x", 40)
	totals := []model.ProjectTotal{{SubjectLabel: long, Total: 50}}
	scene := RenderRanked(totals, DefaultRankedConfig())

	out := scene.Root.Render()
	assert.Contains(t, out, ">"+strings.Repeat("x", 23)+"…<")
	assert.NotContains(t, out, ">"+long+"<")

	// Tooltips keep the full label even when the row truncates it.
	require.Len(t, scene.Bindings, 1)
	assert.Contains(t, scene.Bindings[0].TooltipHTML, long)
}

func TestRenderRankedTooltip(t *testing.T) {
	totals := []model.ProjectTotal{
		{SubjectLabel: "graphql", Total: 1500},
		{SubjectLabel: "ascii-art", Total: 500},
	}
	scene := RenderRanked(totals, DefaultRankedConfig())

	require.Len(t, scene.Bindings, 2)
	assert.Contains(t, scene.Bindings[0].TooltipHTML, "<strong>graphql</strong>")
	assert.Contains(t, scene.Bindings[0].TooltipHTML, "1,500 XP")
	assert.Contains(t, scene.Bindings[0].TooltipHTML, "75.0% of top 2")
}
