package metric

import (
	"fmt"
	"sort"
	"time"

	"github.com/seriv/go-xp-dashboard/internal/core/model"
	"github.com/seriv/go-xp-dashboard/internal/util"
)

// BuildTimeline converts raw transactions into the cumulative XP
// series. The input may arrive unordered and is never mutated: a copy
// is stable-sorted ascending by creation time, then a single scan
// accumulates the running total. An empty input yields an empty
// series, which callers render as an explicit empty state.
func BuildTimeline(transactions []model.Transaction) []model.TimelinePoint {
	if len(transactions) == 0 {
		return nil
	}

	type stamped struct {
		tx model.Transaction
		at time.Time
	}

	stampedTxs := make([]stamped, 0, len(transactions))
	for _, tx := range transactions {
		at, err := time.Parse(time.RFC3339, tx.CreatedAt)
		if err != nil {
			// Upstream contract violation; skip the record and surface
			// it to developer logs, never to the chart.
			util.LogDebug(fmt.Sprintf("Skipping transaction %d with bad timestamp %q: %v", tx.ID, tx.CreatedAt, err))
			continue
		}
		stampedTxs = append(stampedTxs, stamped{tx: tx, at: at})
	}
	if len(stampedTxs) == 0 {
		return nil
	}

	sort.SliceStable(stampedTxs, func(i, j int) bool {
		return stampedTxs[i].at.Before(stampedTxs[j].at)
	})

	points := make([]model.TimelinePoint, 0, len(stampedTxs))
	total := 0
	for _, s := range stampedTxs {
		total += s.tx.Amount
		points = append(points, model.TimelinePoint{
			Timestamp:    s.at,
			Increment:    s.tx.Amount,
			RunningTotal: total,
			SubjectLabel: s.tx.Subject.Label(),
		})
	}

	return points
}

// GroupBySubject sums transaction amounts per distinct subject name
// and returns the totals sorted descending. Subjects without a name
// fall into the "Unknown" bucket. Ties keep the order in which the
// subjects were first encountered, so the grouping is deterministic
// for equal totals.
func GroupBySubject(transactions []model.Transaction) []model.ProjectTotal {
	if len(transactions) == 0 {
		return nil
	}

	index := make(map[string]int, len(transactions))
	totals := make([]model.ProjectTotal, 0, len(transactions))

	for _, tx := range transactions {
		label := tx.Subject.Label()
		i, seen := index[label]
		if !seen {
			index[label] = len(totals)
			totals = append(totals, model.ProjectTotal{SubjectLabel: label})
			i = index[label]
		}
		totals[i].Total += tx.Amount
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total > totals[j].Total
	})

	return totals
}

// TopN returns the n largest subject totals. Fewer than n distinct
// subjects returns all of them; n <= 0 returns nothing.
func TopN(transactions []model.Transaction, n int) []model.ProjectTotal {
	if n <= 0 {
		return nil
	}
	totals := GroupBySubject(transactions)
	if len(totals) > n {
		totals = totals[:n]
	}
	return totals
}

// PassFailCounts tallies results against the fixed passing grade
// (grade >= 1). Empty input yields zero counts, not an error.
func PassFailCounts(results []model.ResultRecord) model.PassFail {
	var pf model.PassFail
	for _, r := range results {
		if r.Passed() {
			pf.Passed++
		} else {
			pf.Failed++
		}
	}
	return pf
}

// AuditRatio formats performed/received to exactly two decimal places.
// A zero or negative received count yields the "0.00" sentinel rather
// than a division fault. The string form is the contract: the donut
// center label shows it verbatim.
func AuditRatio(performed, received float64) string {
	if received <= 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", performed/received)
}

// SumAmounts returns the total XP across all transactions.
func SumAmounts(transactions []model.Transaction) int {
	sum := 0
	for _, tx := range transactions {
		sum += tx.Amount
	}
	return sum
}
