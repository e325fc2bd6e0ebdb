package geometry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLinePath(t *testing.T) {
	assert.Equal(t, "", BuildLinePath(nil))
	assert.Equal(t, "M 1.00 2.00", BuildLinePath([]Point{{X: 1, Y: 2}}))
	assert.Equal(t, "M 1.00 2.00 L 3.00 4.00",
		BuildLinePath([]Point{{X: 1, Y: 2}, {X: 3, Y: 4}}))
}

func TestBuildAreaPath(t *testing.T) {
	points := []Point{{X: 10, Y: 50}, {X: 20, Y: 30}}
	path := BuildAreaPath(points, 100)

	assert.Equal(t, "M 10.00 100.00 L 10.00 50.00 L 20.00 30.00 L 20.00 100.00 Z", path)
}

func TestBuildAreaPathSinglePoint(t *testing.T) {
	// A single point still yields a valid zero-width closed path.
	path := BuildAreaPath([]Point{{X: 10, Y: 50}}, 100)

	assert.True(t, strings.HasPrefix(path, "M 10.00 100.00"))
	assert.True(t, strings.HasSuffix(path, "Z"))
	assert.Contains(t, path, "L 10.00 50.00")
}

func TestBuildAreaPathEmpty(t *testing.T) {
	assert.Equal(t, "", BuildAreaPath(nil, 100))
}

func TestBuildDonutArcLargeArcFlag(t *testing.T) {
	center := Point{X: 0, Y: 0}

	tests := []struct {
		name     string
		startDeg float64
		endDeg   float64
		wantFlag string
	}{
		{name: "quarter ring", startDeg: -90, endDeg: 0, wantFlag: " 0 0 1 "},
		{name: "exactly half ring stays small", startDeg: -90, endDeg: 90, wantFlag: " 0 0 1 "},
		{name: "just over half ring flips large", startDeg: -90, endDeg: 90.1, wantFlag: " 0 1 1 "},
		{name: "three quarters", startDeg: -90, endDeg: 180, wantFlag: " 0 1 1 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := BuildDonutArc(center, 50, 100, tt.startDeg, tt.endDeg)
			require.NotEmpty(t, d)
			assert.Contains(t, d, tt.wantFlag)
		})
	}
}

func TestBuildDonutArcGeometry(t *testing.T) {
	// Quarter segment from 12 o'clock to 3 o'clock: the outer arc runs
	// from (0, -100) to (100, 0) with y growing downward.
	d := BuildDonutArc(Point{X: 0, Y: 0}, 50, 100, -90, 0)

	assert.True(t, strings.HasPrefix(d, "M 0.00 -100.00"), d)
	assert.Contains(t, d, "A 100.00 100.00 0 0 1 100.00 0.00")
	assert.Contains(t, d, "L 50.00 0.00")
	assert.True(t, strings.HasSuffix(d, "Z"))
}

func TestBuildDonutArcDegenerate(t *testing.T) {
	center := Point{X: 0, Y: 0}

	assert.Equal(t, "", BuildDonutArc(center, 50, 100, 0, 0))
	assert.Equal(t, "", BuildDonutArc(center, 50, 100, 90, 0))

	// A full ring is clamped just short of 360 so the arc endpoints
	// stay distinct and the segment still renders.
	full := BuildDonutArc(center, 50, 100, -90, 270)
	assert.NotEmpty(t, full)
	assert.Contains(t, full, " 0 1 1 ")
}

func TestStackAngularSegments(t *testing.T) {
	segments := StackAngularSegments([]float64{3, 1})
	require.Len(t, segments, 2)

	assert.InDelta(t, -90, segments[0].StartDeg, 1e-9)
	assert.InDelta(t, 180, segments[0].EndDeg, 1e-9)
	assert.InDelta(t, 270, segments[0].Span(), 1e-9)

	assert.InDelta(t, 180, segments[1].StartDeg, 1e-9)
	assert.InDelta(t, 270, segments[1].EndDeg, 1e-9)
	assert.InDelta(t, 90, segments[1].Span(), 1e-9)
}

func TestStackAngularSegmentsNoDrift(t *testing.T) {
	// Awkward proportions accumulate through a running sum; the final
	// boundary must land on exactly 270 with no gaps between segments.
	values := []float64{1, 3, 7, 2, 5, 11, 13, 1.5}
	segments := StackAngularSegments(values)
	require.Len(t, segments, len(values))

	assert.Equal(t, -90.0, segments[0].StartDeg)
	for i := 1; i < len(segments); i++ {
		assert.Equal(t, segments[i-1].EndDeg, segments[i].StartDeg)
	}
	assert.Equal(t, 270.0, segments[len(segments)-1].EndDeg)

	total := 0.0
	for _, s := range segments {
		total += s.Span()
	}
	assert.InDelta(t, 360, total, 1e-9)
}

func TestStackAngularSegmentsZeroTotal(t *testing.T) {
	segments := StackAngularSegments([]float64{0, 0})
	require.Len(t, segments, 2)
	for _, s := range segments {
		assert.Equal(t, 0.0, s.Span())
		assert.Equal(t, -90.0, s.StartDeg)
	}
}
