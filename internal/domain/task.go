package domain

import "time"

// Task is a unit of work on a project board. EstimatedHours is the effort
// the task is expected to take on the single day it is due. A nil DueDate
// means the task is unscheduled and does not occupy any day's capacity.
type Task struct {
	ID        string
	ProjectID string
	Title     string
	Status    TaskStatus

	// Estimate is nil when no effort has been entered yet; callers that
	// aggregate capacity treat nil as zero.
	EstimatedHours *float64
	DueDate        *time.Time

	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveHours returns the estimate, or 0 when none is set.
func (t *Task) EffectiveHours() float64 {
	if t.EstimatedHours == nil {
		return 0
	}
	return *t.EstimatedHours
}

// Scheduled reports whether the task occupies a day on the calendar.
func (t *Task) Scheduled() bool {
	return t.DueDate != nil && t.DeletedAt == nil
}
