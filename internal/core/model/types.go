// Package model defines the domain records shared across the data and
// presentation layers: raw platform records as the GraphQL API shapes
// them, and the derived series the chart renderers consume.
package model

import "time"

// passingGrade is the fixed boundary between a passed and a failed
// attempt. Grades at or above it pass.
const passingGrade = 1.0

// Subject identifies the object a transaction or result points at,
// usually a project or an exercise.
type Subject struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Label returns the subject name for display, falling back to
// "Unknown" when the record carries none.
func (s Subject) Label() string {
	if s.Name == "" {
		return "Unknown"
	}
	return s.Name
}

// Transaction is one XP grant as the API returns it. CreatedAt stays
// a string here; the aggregator owns parsing and decides what to do
// with malformed stamps.
type Transaction struct {
	ID        int     `json:"id"`
	Kind      string  `json:"type"`
	Amount    int     `json:"amount"`
	CreatedAt string  `json:"createdAt"`
	Path      string  `json:"path"`
	Subject   Subject `json:"object"`
}

// ResultRecord is one graded attempt.
type ResultRecord struct {
	ID      int     `json:"id"`
	Grade   float64 `json:"grade"`
	Subject Subject `json:"object"`
}

// Passed reports whether the attempt met the passing grade.
func (r ResultRecord) Passed() bool {
	return r.Grade >= passingGrade
}

// AuditCount holds the learner's audit volumes in XP points. The API
// calls the directions "up" (audits performed for others) and "down"
// (audits received on own work).
type AuditCount struct {
	Performed float64 `json:"totalUp"`
	Received  float64 `json:"totalDown"`
}

// User is the authenticated learner.
type User struct {
	ID        int    `json:"id"`
	Login     string `json:"login"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Audits    AuditCount
}

// TimelinePoint is one step of the cumulative XP series, ordered
// ascending by timestamp.
type TimelinePoint struct {
	Timestamp    time.Time
	Increment    int
	RunningTotal int
	SubjectLabel string
}

// ProjectTotal is the XP sum for one subject.
type ProjectTotal struct {
	SubjectLabel string
	Total        int
}

// PassFail tallies graded attempts by outcome.
type PassFail struct {
	Passed int
	Failed int
}

// Total returns the number of graded attempts.
func (pf PassFail) Total() int {
	return pf.Passed + pf.Failed
}

// PassRate returns the passed share as a percentage. Zero attempts
// yield a zero rate.
func (pf PassFail) PassRate() float64 {
	if pf.Total() == 0 {
		return 0
	}
	return float64(pf.Passed) / float64(pf.Total()) * 100
}
