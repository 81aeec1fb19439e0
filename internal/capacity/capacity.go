// Package capacity implements daily capacity allocation and sprint capacity
// planning. Every function here is a pure computation over caller-supplied
// snapshots: no clock access beyond the dates passed in, no storage, no
// state between calls.
package capacity

import "time"

// Hours measures task effort against a day's capacity.
type Hours float64

// Points measures story complexity against a sprint's capacity. Hours and
// Points happen to share the same default daily budget, but they are
// different physical quantities and are never converted or compared.
type Points int

const (
	// DefaultDailyTaskHours is the per-day budget for task effort.
	DefaultDailyTaskHours Hours = 8

	// DefaultDailyStoryPoints is the per-day budget for sprint complexity.
	DefaultDailyStoryPoints Points = 8

	// MaxSpilloverDays bounds how far the planner walks forward looking for
	// free capacity. The cap is a safety valve: when it fires, the unplaced
	// remainder is simply absent from the distribution.
	MaxSpilloverDays = 30
)

const dateLayout = "2006-01-02"

// DayOf truncates t to its calendar day in UTC. All planner arithmetic
// operates on values normalized through this function.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
