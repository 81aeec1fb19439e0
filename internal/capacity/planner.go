package capacity

import "time"

// DayAllocation is one day's share of a planned amount. Hours may be zero
// when the day was visited but already full.
type DayAllocation struct {
	Day   time.Time
	Hours Hours
}

// AllocationResult is the planner's per-day breakdown for a candidate
// amount. It is transient: recomputed on every input change, never stored.
type AllocationResult struct {
	// CurrentDayHours is the effort already committed to the selected day,
	// before the candidate amount.
	CurrentDayHours Hours

	// DaysNeeded is the number of calendar days the distribution spans.
	DaysNeeded int

	Distribution []DayAllocation
}

// Plan greedily distributes amount across consecutive calendar days starting
// at selected, honoring the daily budget. Every day is a candidate slot,
// weekends included. The walk visits at most MaxSpilloverDays days and
// records an entry for each day visited, so a fully booked stretch yields
// zero-hour entries rather than an unbounded loop; any amount still
// unplaced when the cap fires is dropped from the distribution.
//
// Plan is a pure fold over the ledger: identical inputs always produce an
// identical result.
func Plan(selected time.Time, amount Hours, ledger Ledger, daily Hours) AllocationResult {
	selected = DayOf(selected)
	result := AllocationResult{CurrentDayHours: ledger.OnDay(selected)}

	if amount <= 0 {
		return result
	}

	remaining := amount
	cursor := selected
	for remaining > 0 && len(result.Distribution) < MaxSpilloverDays {
		available := daily - ledger.OnDay(cursor)
		if available < 0 {
			available = 0
		}
		alloc := remaining
		if available < alloc {
			alloc = available
		}
		result.Distribution = append(result.Distribution, DayAllocation{Day: cursor, Hours: alloc})
		remaining -= alloc
		cursor = cursor.AddDate(0, 0, 1)
	}

	result.DaysNeeded = len(result.Distribution)
	return result
}
