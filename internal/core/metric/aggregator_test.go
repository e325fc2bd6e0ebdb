package metric

import (
	"testing"
	"time"

	"github.com/seriv/go-xp-dashboard/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(amount int, createdAt, subject string) model.Transaction {
	return model.Transaction{
		Kind:      "xp",
		Amount:    amount,
		CreatedAt: createdAt,
		Subject:   model.Subject{Name: subject},
	}
}

func TestBuildTimeline(t *testing.T) {
	tests := []struct {
		name       string
		input      []model.Transaction
		wantTotals []int
		wantLabels []string
	}{
		{
			name: "ordered input",
			input: []model.Transaction{
				tx(100, "2024-03-01T10:00:00Z", "A"),
				tx(50, "2024-03-02T10:00:00Z", "B"),
			},
			wantTotals: []int{100, 150},
			wantLabels: []string{"A", "B"},
		},
		{
			name: "unordered input is sorted by timestamp",
			input: []model.Transaction{
				tx(50, "2024-03-02T10:00:00Z", "B"),
				tx(100, "2024-03-01T10:00:00Z", "A"),
			},
			wantTotals: []int{100, 150},
			wantLabels: []string{"A", "B"},
		},
		{
			name:       "empty input",
			input:      nil,
			wantTotals: nil,
		},
		{
			name: "missing subject name defaults to Unknown",
			input: []model.Transaction{
				tx(25, "2024-03-01T10:00:00Z", ""),
			},
			wantTotals: []int{25},
			wantLabels: []string{"Unknown"},
		},
		{
			name: "malformed timestamp is skipped",
			input: []model.Transaction{
				tx(100, "2024-03-01T10:00:00Z", "A"),
				tx(999, "not-a-timestamp", "B"),
			},
			wantTotals: []int{100},
			wantLabels: []string{"A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := BuildTimeline(tt.input)
			require.Len(t, points, len(tt.wantTotals))
			for i, want := range tt.wantTotals {
				assert.Equal(t, want, points[i].RunningTotal)
			}
			for i, want := range tt.wantLabels {
				assert.Equal(t, want, points[i].SubjectLabel)
			}
		})
	}
}

func TestBuildTimelineInvariants(t *testing.T) {
	input := []model.Transaction{
		tx(300, "2024-05-10T08:00:00Z", "C"),
		tx(100, "2024-01-01T08:00:00Z", "A"),
		tx(200, "2024-03-15T08:00:00Z", "B"),
		tx(50, "2024-02-02T08:00:00Z", "A"),
	}

	points := BuildTimeline(input)
	require.Len(t, points, 4)

	// Ordered ascending, running totals monotone, last total == sum.
	sum := 0
	prev := 0
	var prevTime time.Time
	for _, p := range points {
		assert.True(t, !p.Timestamp.Before(prevTime))
		assert.GreaterOrEqual(t, p.RunningTotal, prev)
		assert.Equal(t, prev+p.Increment, p.RunningTotal)
		prev = p.RunningTotal
		prevTime = p.Timestamp
		sum += p.Increment
	}
	assert.Equal(t, SumAmounts(input), sum)
	assert.Equal(t, SumAmounts(input), points[len(points)-1].RunningTotal)
}

func TestBuildTimelineDoesNotMutateInput(t *testing.T) {
	input := []model.Transaction{
		tx(50, "2024-03-02T10:00:00Z", "B"),
		tx(100, "2024-03-01T10:00:00Z", "A"),
	}

	BuildTimeline(input)

	assert.Equal(t, "B", input[0].Subject.Name)
	assert.Equal(t, "A", input[1].Subject.Name)
}

func TestGroupBySubject(t *testing.T) {
	input := []model.Transaction{
		tx(100, "2024-03-01T10:00:00Z", "A"),
		tx(50, "2024-03-02T10:00:00Z", "B"),
		tx(200, "2024-03-03T10:00:00Z", "A"),
		tx(75, "2024-03-04T10:00:00Z", ""),
	}

	totals := GroupBySubject(input)
	require.Len(t, totals, 3)

	assert.Equal(t, model.ProjectTotal{SubjectLabel: "A", Total: 300}, totals[0])
	assert.Equal(t, model.ProjectTotal{SubjectLabel: "Unknown", Total: 75}, totals[1])
	assert.Equal(t, model.ProjectTotal{SubjectLabel: "B", Total: 50}, totals[2])

	// Lossless partition: group totals sum to the input sum.
	groupSum := 0
	for _, g := range totals {
		groupSum += g.Total
	}
	assert.Equal(t, SumAmounts(input), groupSum)
}

func TestGroupBySubjectTiesKeepEncounterOrder(t *testing.T) {
	input := []model.Transaction{
		tx(100, "2024-03-01T10:00:00Z", "first"),
		tx(100, "2024-03-02T10:00:00Z", "second"),
	}

	totals := GroupBySubject(input)
	require.Len(t, totals, 2)
	assert.Equal(t, "first", totals[0].SubjectLabel)
	assert.Equal(t, "second", totals[1].SubjectLabel)
}

func TestTopN(t *testing.T) {
	input := []model.Transaction{
		tx(10, "2024-03-01T10:00:00Z", "A"),
		tx(30, "2024-03-02T10:00:00Z", "B"),
		tx(20, "2024-03-03T10:00:00Z", "C"),
	}

	tests := []struct {
		name       string
		n          int
		wantLabels []string
	}{
		{name: "fewer groups than n returns all", n: 10, wantLabels: []string{"B", "C", "A"}},
		{name: "n limits the result", n: 2, wantLabels: []string{"B", "C"}},
		{name: "zero n", n: 0, wantLabels: nil},
		{name: "negative n", n: -1, wantLabels: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := TopN(input, tt.n)
			require.Len(t, totals, len(tt.wantLabels))
			for i, want := range tt.wantLabels {
				assert.Equal(t, want, totals[i].SubjectLabel)
			}
		})
	}
}

func TestTopNIsPrefixOfGroupBySubject(t *testing.T) {
	input := []model.Transaction{
		tx(10, "2024-03-01T10:00:00Z", "A"),
		tx(30, "2024-03-02T10:00:00Z", "B"),
		tx(20, "2024-03-03T10:00:00Z", "C"),
		tx(5, "2024-03-04T10:00:00Z", "D"),
	}

	all := GroupBySubject(input)
	top := TopN(input, 2)
	require.Len(t, top, 2)
	assert.Equal(t, all[:2], top)
}

func TestPassFailCounts(t *testing.T) {
	results := []model.ResultRecord{
		{Grade: 1},
		{Grade: 0},
		{Grade: 2},
		{Grade: -1},
	}

	counts := PassFailCounts(results)
	assert.Equal(t, model.PassFail{Passed: 2, Failed: 2}, counts)

	assert.Equal(t, model.PassFail{}, PassFailCounts(nil))
}

func TestAuditRatio(t *testing.T) {
	tests := []struct {
		name      string
		performed float64
		received  float64
		want      string
	}{
		{name: "both zero", performed: 0, received: 0, want: "0.00"},
		{name: "zero received never divides", performed: 5, received: 0, want: "0.00"},
		{name: "exact ratio", performed: 4, received: 2, want: "2.00"},
		{name: "rounded to two decimals", performed: 1, received: 3, want: "0.33"},
		{name: "below one", performed: 3, received: 4, want: "0.75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AuditRatio(tt.performed, tt.received))
		})
	}
}
