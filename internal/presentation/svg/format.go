package svg

import (
	"fmt"
	"strings"
)

// FormatCompact renders a value with a K/M/B suffix and one decimal,
// matching axis labels like "1.2K" or "3.4M". Values under a thousand
// print as-is.
func FormatCompact(n float64) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs < 1_000:
		return fmt.Sprintf("%.0f", n)
	case abs < 1_000_000:
		return fmt.Sprintf("%.1fK", n/1_000)
	case abs < 1_000_000_000:
		return fmt.Sprintf("%.1fM", n/1_000_000)
	default:
		return fmt.Sprintf("%.1fB", n/1_000_000_000)
	}
}

// FormatThousands renders an integer with comma separators.
func FormatThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// FormatPercent renders value/total as a percentage with one decimal.
// A zero total yields "0.0%".
func FormatPercent(value, total float64) string {
	if total <= 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", value/total*100)
}
