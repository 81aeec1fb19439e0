package capacity

import "time"

// LedgerEntry records effort already committed to a single day by an
// existing scheduled task.
type LedgerEntry struct {
	TaskID string
	Hours  Hours
	Day    time.Time
}

// Ledger is a snapshot of a project's scheduled effort. It is read fresh on
// every evaluation; the planner never mutates it.
type Ledger []LedgerEntry

// OnDay sums the effort already committed to the given calendar day.
func (l Ledger) OnDay(day time.Time) Hours {
	day = DayOf(day)
	var total Hours
	for _, e := range l {
		if DayOf(e.Day).Equal(day) {
			total += e.Hours
		}
	}
	return total
}
