package capacity

import (
	"fmt"
	"time"
)

// Window is an inclusive calendar date range.
type Window struct {
	Start time.Time
	End   time.Time
}

// ParseWindow builds a Window from "2006-01-02" strings. Malformed input is
// an error rather than a zero time; the calculator never operates on dates
// it could not parse.
func ParseWindow(start, end string) (Window, error) {
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return Window{}, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return Window{}, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	return Window{Start: s, End: e}, nil
}

// Days returns the inclusive day count of the window.
func (w Window) Days() int {
	return int(DayOf(w.End).Sub(DayOf(w.Start)).Hours()/24) + 1
}

// Overlaps reports whether two inclusive windows share at least one day.
// The rule is symmetric: w.Overlaps(o) == o.Overlaps(w).
func (w Window) Overlaps(o Window) bool {
	return !DayOf(w.Start).After(DayOf(o.End)) && !DayOf(w.End).Before(DayOf(o.Start))
}

// Validate applies the candidate-window rules for sprint creation: the
// window must start today or later and must end strictly after it starts.
func (w Window) Validate(today time.Time) error {
	if DayOf(w.Start).Before(DayOf(today)) {
		return fmt.Errorf("sprint start date cannot be in the past")
	}
	if !DayOf(w.End).After(DayOf(w.Start)) {
		return fmt.Errorf("sprint end date must be after the start date")
	}
	return nil
}

// SprintCapacity is the derived capacity summary for a sprint window. It is
// recomputed on demand and never persisted.
type SprintCapacity struct {
	Days          int
	TotalCapacity Points
	UsedPoints    Points
	Remaining     Points
	OverCapacity  bool
}

// ForWindow computes the sprint's capacity against the points already
// assigned to it.
func ForWindow(w Window, used Points, daily Points) SprintCapacity {
	days := w.Days()
	total := Points(days) * daily
	return SprintCapacity{
		Days:          days,
		TotalCapacity: total,
		UsedPoints:    used,
		Remaining:     total - used,
		OverCapacity:  used > total,
	}
}
