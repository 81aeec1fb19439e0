// Package contract defines the structured results the services expose to
// callers (CLI today, any other front end tomorrow). Dates travel as
// "2006-01-02" strings so the types stay serialization-friendly.
package contract

// DayShare is one day's slice of a proposed allocation.
type DayShare struct {
	Date  string
	Hours float64
}

// ScheduleCheck is the outcome of validating a task's candidate day and
// estimate against the project's capacity ledger. Distribution carries the
// planner's spillover breakdown even on rejection; the UI uses it to explain
// why the day does not fit.
type ScheduleCheck struct {
	Valid           bool
	Reason          string
	CurrentDayHours float64
	DaysNeeded      int
	Distribution    []DayShare
}

// SprintCapacityReport is the derived capacity summary for one sprint.
type SprintCapacityReport struct {
	SprintID      string
	Name          string
	StartDate     string
	EndDate       string
	Days          int
	TotalCapacity int
	UsedPoints    int
	Remaining     int
	OverCapacity  bool
	// Utilization is UsedPoints/TotalCapacity in [0,1+]; above 1 means the
	// sprint is overcommitted.
	Utilization float64
}
