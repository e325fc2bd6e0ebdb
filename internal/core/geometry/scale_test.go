package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearScale(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		d0, d1 float64
		r0, r1 float64
		want   float64
	}{
		{name: "midpoint", value: 5, d0: 0, d1: 10, r0: 0, r1: 100, want: 50},
		{name: "domain min maps to range min", value: 0, d0: 0, d1: 10, r0: 20, r1: 120, want: 20},
		{name: "domain max maps to range max", value: 10, d0: 0, d1: 10, r0: 20, r1: 120, want: 120},
		{name: "inverted range", value: 2, d0: 0, d1: 10, r0: 100, r1: 0, want: 80},
		{name: "degenerate domain returns range min", value: 5, d0: 0, d1: 0, r0: 0, r1: 100, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinearScale(tt.value, tt.d0, tt.d1, tt.r0, tt.r1)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestBuildLinePoints(t *testing.T) {
	samples := []Sample{{X: 0, Y: 0}, {X: 5, Y: 50}, {X: 10, Y: 100}}
	vp := Viewport{Left: 10, Top: 20, Width: 100, Height: 200}

	points := BuildLinePoints(samples,
		Domain{Min: 0, Max: 10},
		Domain{Min: 0, Max: 100},
		vp)

	require.Len(t, points, 3)
	// Order preserved, y inverted: max value at the viewport top.
	assert.InDelta(t, 10, points[0].X, 1e-9)
	assert.InDelta(t, 220, points[0].Y, 1e-9)
	assert.InDelta(t, 60, points[1].X, 1e-9)
	assert.InDelta(t, 120, points[1].Y, 1e-9)
	assert.InDelta(t, 110, points[2].X, 1e-9)
	assert.InDelta(t, 20, points[2].Y, 1e-9)
}

func TestBarExtents(t *testing.T) {
	tests := []struct {
		name        string
		value       float64
		max         float64
		track       float64
		want        float64
	}{
		{name: "proportional", value: 25, max: 100, track: 200, want: 50},
		{name: "full track", value: 100, max: 100, track: 200, want: 200},
		{name: "zero max yields zero", value: 25, max: 0, track: 200, want: 0},
		{name: "negative max yields zero", value: 25, max: -5, track: 200, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, BarExtents(tt.value, tt.max, tt.track), 1e-9)
		})
	}
}
