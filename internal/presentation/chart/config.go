// Package chart renders derived series into self-contained SVG scenes
// plus interaction bindings. Renderers are pure: they never touch a
// display surface, and every render rebuilds its scene wholesale.
package chart

// Palette holds the colors shared across the four chart types. The
// semantic entries (Positive, Warning, Fail) back fixed business
// thresholds and are not merely cosmetic.
type Palette struct {
	Accent    string
	AccentDim string
	Positive  string
	Warning   string
	Fail      string
	Grid      string
	Text      string
	Muted     string
}

// DefaultPalette returns the stock dashboard colors.
func DefaultPalette() Palette {
	return Palette{
		Accent:    "#6366f1",
		AccentDim: "#a5b4fc",
		Positive:  "#22c55e",
		Warning:   "#f59e0b",
		Fail:      "#ef4444",
		Grid:      "#e5e7eb",
		Text:      "#374151",
		Muted:     "#9ca3af",
	}
}

// Fixed business rules shared by renderers. RatioGoodThreshold is the
// audit-ratio boundary between "good" and "needs improvement";
// FavorablePassRate is the pass-rate percentage considered favorable.
const (
	RatioGoodThreshold = 1.0
	FavorablePassRate  = 50.0
)

// TimelineConfig parameterizes the cumulative XP chart.
type TimelineConfig struct {
	Width        float64
	Height       float64
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64
	YTickCount   int
	XTickCount   int
	MarkerRadius float64
	Palette      Palette
}

// DefaultTimelineConfig returns the stock timeline dimensions.
func DefaultTimelineConfig() TimelineConfig {
	return TimelineConfig{
		Width:        720,
		Height:       320,
		MarginLeft:   64,
		MarginRight:  24,
		MarginTop:    24,
		MarginBottom: 40,
		YTickCount:   5,
		XTickCount:   6,
		MarkerRadius: 4,
		Palette:      DefaultPalette(),
	}
}

// DonutConfig parameterizes the audit-ratio ring.
type DonutConfig struct {
	Size        float64
	InnerRadius float64
	OuterRadius float64
	Palette     Palette
}

// DefaultDonutConfig returns the stock donut dimensions.
func DefaultDonutConfig() DonutConfig {
	return DonutConfig{
		Size:        260,
		InnerRadius: 78,
		OuterRadius: 110,
		Palette:     DefaultPalette(),
	}
}

// PassFailConfig parameterizes the results bar pair.
type PassFailConfig struct {
	Width        float64
	Height       float64
	MarginTop    float64
	MarginBottom float64
	BarWidth     float64
	Palette      Palette
}

// DefaultPassFailConfig returns the stock pass/fail dimensions.
func DefaultPassFailConfig() PassFailConfig {
	return PassFailConfig{
		Width:        320,
		Height:       300,
		MarginTop:    56,
		MarginBottom: 48,
		BarWidth:     72,
		Palette:      DefaultPalette(),
	}
}

// RankedConfig parameterizes the top-projects chart. MaxLabelWidth is
// the display-width budget (in cells) before a subject label is
// truncated with an ellipsis.
type RankedConfig struct {
	Width         float64
	RowHeight     float64
	MarginLeft    float64
	MarginRight   float64
	MarginTop     float64
	MarginBottom  float64
	TopN          int
	MaxLabelWidth int
	Palette       Palette
}

// DefaultRankedConfig returns the stock ranked-bar dimensions.
func DefaultRankedConfig() RankedConfig {
	return RankedConfig{
		Width:         720,
		RowHeight:     34,
		MarginLeft:    220,
		MarginRight:   110,
		MarginTop:     24,
		MarginBottom:  24,
		TopN:          10,
		MaxLabelWidth: 24,
		Palette:       DefaultPalette(),
	}
}
